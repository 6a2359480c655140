package env

import (
	"path/filepath"
	"quiz_backend/internal/config"
	"testing"
	"time"
)

func TestParseQuizConfig(t *testing.T) {
	cfg, err := ParseQuizConfig([]byte("quiz:\n  target_score: 5\n  decoy_spread: 2\n"))
	if err != nil {
		t.Fatalf("ParseQuizConfig: %v", err)
	}
	if cfg.TargetScore() != 5 {
		t.Errorf("TargetScore = %d, want 5", cfg.TargetScore())
	}
	if cfg.DecoySpread() != 2 {
		t.Errorf("DecoySpread = %d, want 2", cfg.DecoySpread())
	}
	if cfg.MaxOperand() != defaultMaxOperand {
		t.Errorf("MaxOperand = %d, want default %d", cfg.MaxOperand(), defaultMaxOperand)
	}
	if cfg.LeaderboardLimit() != defaultLeaderboardLimit {
		t.Errorf("LeaderboardLimit = %d, want default %d", cfg.LeaderboardLimit(), defaultLeaderboardLimit)
	}
}

func TestParseQuizConfig_Invalid(t *testing.T) {
	cases := map[string]string{
		"zero target":    "quiz:\n  target_score: 0\n",
		"negative max":   "quiz:\n  max_operand: -1\n",
		"broken yaml":    "quiz: [",
		"wrong type":     "quiz:\n  decoy_spread: many\n",
		"zero worksheet": "quiz:\n  worksheet_max_problems: 0\n",
	}
	for name, in := range cases {
		t.Run(name, func(t *testing.T) {
			if _, err := ParseQuizConfig([]byte(in)); err == nil {
				t.Fatalf("expected error for %q", in)
			}
		})
	}
}

func TestNewQuizConfigFromYAML_RepoFile(t *testing.T) {
	cfg, err := NewQuizConfigFromYAML(filepath.Join("..", "..", "..", "config.yaml"))
	if err != nil {
		t.Fatalf("NewQuizConfigFromYAML: %v", err)
	}
	def := DefaultQuizConfig()
	if cfg.TargetScore() != def.TargetScore() || cfg.MaxOperand() != def.MaxOperand() || cfg.DecoySpread() != def.DecoySpread() {
		t.Errorf("config.yaml drifted from defaults: got %d/%d/%d", cfg.TargetScore(), cfg.MaxOperand(), cfg.DecoySpread())
	}
}

func TestNewQuizConfigFromYAML_Missing(t *testing.T) {
	if _, err := NewQuizConfigFromYAML(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestNewTokenConfig(t *testing.T) {
	t.Setenv(sessionTokenKeyEnvName, "secret")
	t.Setenv(sessionTokenDurationEnvName, "")

	cfg, err := NewTokenConfig()
	if err != nil {
		t.Fatalf("NewTokenConfig: %v", err)
	}
	if string(cfg.SessionTokenSecretKey()) != "secret" {
		t.Errorf("secret = %q", cfg.SessionTokenSecretKey())
	}
	if cfg.SessionTokenDuration() != defaultSessionTokenDuration {
		t.Errorf("duration = %v, want %v", cfg.SessionTokenDuration(), defaultSessionTokenDuration)
	}

	t.Setenv(sessionTokenDurationEnvName, "90m")
	cfg, err = NewTokenConfig()
	if err != nil {
		t.Fatalf("NewTokenConfig: %v", err)
	}
	if cfg.SessionTokenDuration() != 90*time.Minute {
		t.Errorf("duration = %v, want 90m", cfg.SessionTokenDuration())
	}

	t.Setenv(sessionTokenDurationEnvName, "soon")
	if _, err := NewTokenConfig(); err == nil {
		t.Error("expected error for bad duration")
	}

	t.Setenv(sessionTokenKeyEnvName, "")
	if _, err := NewTokenConfig(); err == nil {
		t.Error("expected error for missing secret")
	}
}

func TestNewStorageConfig(t *testing.T) {
	t.Setenv(storageDriverEnvName, "")
	t.Setenv(sqliteDSNEnvName, "")
	cfg, err := NewStorageConfig()
	if err != nil {
		t.Fatalf("NewStorageConfig: %v", err)
	}
	if cfg.Driver() != config.StorageSQLite {
		t.Errorf("driver = %s, want sqlite", cfg.Driver())
	}
	if cfg.SQLiteDSN() != defaultSQLiteDSN {
		t.Errorf("dsn = %s", cfg.SQLiteDSN())
	}

	t.Setenv(storageDriverEnvName, "postgres")
	cfg, err = NewStorageConfig()
	if err != nil {
		t.Fatalf("NewStorageConfig: %v", err)
	}
	if cfg.Driver() != config.StoragePostgres {
		t.Errorf("driver = %s, want postgres", cfg.Driver())
	}

	t.Setenv(storageDriverEnvName, "mongo")
	if _, err := NewStorageConfig(); err == nil {
		t.Error("expected error for unsupported driver")
	}
}

func TestNewHTTPConfig(t *testing.T) {
	t.Setenv(httpHostEnvName, "127.0.0.1")
	t.Setenv(httpPortEnvName, "9000")
	cfg, err := NewHTTPConfig()
	if err != nil {
		t.Fatalf("NewHTTPConfig: %v", err)
	}
	if cfg.Address() != "127.0.0.1:9000" {
		t.Errorf("Address = %s", cfg.Address())
	}

	t.Setenv(httpPortEnvName, "http")
	if _, err := NewHTTPConfig(); err == nil {
		t.Error("expected error for non-numeric port")
	}
}

func TestNewPGConfig(t *testing.T) {
	t.Setenv(dsnName, "")
	if _, err := NewPGConfig(); err == nil {
		t.Error("expected error for empty dsn")
	}
	t.Setenv(dsnName, "postgres://localhost/quiz")
	cfg, err := NewPGConfig()
	if err != nil {
		t.Fatalf("NewPGConfig: %v", err)
	}
	if cfg.DSN() != "postgres://localhost/quiz" {
		t.Errorf("DSN = %s", cfg.DSN())
	}
}
