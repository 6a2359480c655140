package app

import (
	"context"
	"database/sql"
	"log"
	quizAPI "quiz_backend/internal/api/quiz"
	"quiz_backend/internal/config"
	"quiz_backend/internal/config/env"
	"quiz_backend/internal/db"
	"quiz_backend/internal/middleware"
	"quiz_backend/internal/repository"
	"quiz_backend/internal/repository/session_lite_repo"
	"quiz_backend/internal/repository/session_repo"
	"quiz_backend/internal/repository/stats_repo"
	"quiz_backend/internal/service"
	"quiz_backend/internal/service/quiz"

	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	trmsql "github.com/avito-tech/go-transaction-manager/drivers/sql/v2"
	"github.com/avito-tech/go-transaction-manager/trm/v2"
	"github.com/avito-tech/go-transaction-manager/trm/v2/manager"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ServiceProvider struct {
	//TXManager
	txManager trm.Manager

	// Database
	storageCfg config.StorageConfig
	pgConfig   config.PGConfig
	dbClient   *pgxpool.Pool
	sqliteDB   *sql.DB

	// Session token
	tokenCfg config.TokenConfig

	// Quiz bits
	quizCfg     config.QuizConfig
	sessionRepo repository.SessionRepository
	resultRepo  repository.ResultRepository
	statsRepo   repository.StatsRepository
	quizServ    service.QuizService
	quizHand    *quizAPI.Handler

	// Router and HTTP config
	httpCfg config.HTTPConfig
	router  chi.Router
}

func newServiceProvider() *ServiceProvider {
	return &ServiceProvider{}
}

func (sp *ServiceProvider) StorageCfg() config.StorageConfig {
	if sp.storageCfg == nil {
		cfg, err := env.NewStorageConfig()
		if err != nil {
			panic("failed to get storage config: " + err.Error())
		}
		sp.storageCfg = cfg
	}
	return sp.storageCfg
}

func (sp *ServiceProvider) PgConfig() config.PGConfig {
	if sp.pgConfig == nil {
		cfg, err := env.NewPGConfig()
		if err != nil {
			panic("failed to get database config: " + err.Error())
		}
		sp.pgConfig = cfg
	}
	return sp.pgConfig
}

func (sp *ServiceProvider) DBClient(ctx context.Context) *pgxpool.Pool {
	if sp.dbClient == nil {
		dbc, err := pgxpool.New(ctx, sp.PgConfig().DSN())
		if err != nil {
			panic("failed to create db pool: " + err.Error())
		}
		err = dbc.Ping(ctx)
		if err != nil {
			panic("failed to ping db: " + err.Error())
		}
		err = db.EnsurePostgresSchema(ctx, dbc)
		if err != nil {
			panic("failed to ensure db schema: " + err.Error())
		}
		sp.dbClient = dbc
	}
	return sp.dbClient
}

func (sp *ServiceProvider) SQLiteDB(ctx context.Context) *sql.DB {
	if sp.sqliteDB == nil {
		dbc, err := db.OpenSQLite(ctx, sp.StorageCfg().SQLiteDSN())
		if err != nil {
			panic("failed to open sqlite: " + err.Error())
		}
		sp.sqliteDB = dbc
	}
	return sp.sqliteDB
}

func (sp *ServiceProvider) usePostgres() bool {
	return sp.StorageCfg().Driver() == config.StoragePostgres
}

func (sp *ServiceProvider) TXManager(ctx context.Context) trm.Manager {
	if sp.txManager == nil {
		var (
			m   *manager.Manager
			err error
		)
		if sp.usePostgres() {
			m, err = manager.New(trmpgx.NewDefaultFactory(sp.DBClient(ctx)))
		} else {
			m, err = manager.New(trmsql.NewDefaultFactory(sp.SQLiteDB(ctx)))
		}
		if err != nil {
			panic("failed to create tx manager: " + err.Error())
		}

		sp.txManager = m
	}

	return sp.txManager
}

// initSessionStorage Один репозиторий хранит и сессии, и результаты
func (sp *ServiceProvider) initSessionStorage(ctx context.Context) {
	if sp.usePostgres() {
		r := session_repo.NewSessionRepository(sp.DBClient(ctx))
		sp.sessionRepo, sp.resultRepo = r, r
		return
	}
	r := session_lite_repo.NewSessionRepository(sp.SQLiteDB(ctx))
	sp.sessionRepo, sp.resultRepo = r, r
}

func (sp *ServiceProvider) SessionRepository(ctx context.Context) repository.SessionRepository {
	if sp.sessionRepo == nil {
		sp.initSessionStorage(ctx)
	}
	return sp.sessionRepo
}

func (sp *ServiceProvider) ResultRepository(ctx context.Context) repository.ResultRepository {
	if sp.resultRepo == nil {
		sp.initSessionStorage(ctx)
	}
	return sp.resultRepo
}

func (sp *ServiceProvider) StatsRepository() repository.StatsRepository {
	if sp.statsRepo == nil {
		sp.statsRepo = stats_repo.NewStatsRepository(0)
	}
	return sp.statsRepo
}

func (sp *ServiceProvider) TokenCfg() config.TokenConfig {
	if sp.tokenCfg == nil {
		cfg, err := env.NewTokenConfig()
		if err != nil {
			panic("failed to get token config: " + err.Error())
		}
		sp.tokenCfg = cfg
	}
	return sp.tokenCfg
}

func (sp *ServiceProvider) QuizCfg() config.QuizConfig {
	if sp.quizCfg == nil {
		cfg, err := env.NewQuizConfigFromYAML("config.yaml")
		if err != nil {
			panic("failed to get quiz config: " + err.Error())
		}
		sp.quizCfg = cfg
	}
	return sp.quizCfg
}

func (sp *ServiceProvider) QuizService(ctx context.Context) service.QuizService {
	if sp.quizServ == nil {
		sp.quizServ = quiz.NewQuizService(
			sp.QuizCfg(),
			sp.TokenCfg(),
			sp.SessionRepository(ctx),
			sp.ResultRepository(ctx),
			sp.StatsRepository(),
			sp.TXManager(ctx),
			nil,
		)
	}
	return sp.quizServ
}

func (sp *ServiceProvider) QuizHandler(ctx context.Context) *quizAPI.Handler {
	if sp.quizHand == nil {
		sp.quizHand = quizAPI.NewHandler(quizAPI.HandlerDeps{
			Serv:        sp.QuizService(ctx),
			TargetScore: sp.QuizCfg().TargetScore(),
		})
	}
	return sp.quizHand
}

func (sp *ServiceProvider) HTTPCfg() config.HTTPConfig {
	if sp.httpCfg == nil {
		cfg, err := env.NewHTTPConfig()
		if err != nil {
			panic("failed to get http config: " + err.Error())
		}
		sp.httpCfg = cfg
	}

	return sp.httpCfg
}

func (sp *ServiceProvider) Router(ctx context.Context) chi.Router {
	if sp.router == nil {
		r := chi.NewRouter()

		r.Use(chimw.RequestID)
		r.Use(chimw.RealIP)
		r.Use(chimw.Logger)
		r.Use(chimw.Recoverer)

		// CORS middleware
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins:   []string{"*"},
			AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
			ExposedHeaders:   []string{"Content-Disposition"},
			AllowCredentials: false,
			MaxAge:           60 * 15,
		}))

		// Quiz endpoints
		quizHandler := sp.QuizHandler(ctx)
		r.Route("/quiz", func(rr chi.Router) {
			rr.Post("/sessions", quizHandler.Start)
			rr.Get("/leaderboard", quizHandler.Leaderboard)
			rr.Get("/stats", quizHandler.Stats)
			rr.Get("/worksheet", quizHandler.Worksheet)

			rr.Group(func(auth chi.Router) {
				auth.Use(middleware.SessionAuth(sp.TokenCfg().SessionTokenSecretKey()))
				auth.Get("/session", quizHandler.Session)
				auth.Post("/session/answer", quizHandler.Answer)
				auth.Post("/session/restart", quizHandler.Restart)
			})
		})

		sp.router = r
	}

	return sp.router
}

// Close освобождает соединения с базой, если они открывались
func (sp *ServiceProvider) Close() {
	if sp.dbClient != nil {
		sp.dbClient.Close()
	}
	if sp.sqliteDB != nil {
		if err := sp.sqliteDB.Close(); err != nil {
			log.Printf("failed to close sqlite: %v", err)
		}
	}
}
