package middleware

import (
	"net/http"
	"net/http/httptest"
	"quiz_backend/pkg/token"
	"testing"
	"time"
)

var secret = []byte("middleware-secret")

func echoSessionID(t *testing.T) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, ok := SessionIDFromContext(r.Context())
		if !ok {
			t.Error("no session id in context")
		}
		w.Write([]byte(id))
	})
}

func TestSessionAuth(t *testing.T) {
	tok, err := token.GenerateSessionToken("sess-1", secret, time.Minute)
	if err != nil {
		t.Fatalf("GenerateSessionToken: %v", err)
	}

	h := SessionAuth(secret)(echoSessionID(t))

	r := httptest.NewRequest(http.MethodGet, "/quiz/session", nil)
	r.Header.Set("Authorization", "Bearer "+tok)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, r)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if got := w.Body.String(); got != "sess-1" {
		t.Errorf("session id = %q", got)
	}
}

func TestSessionAuth_Rejects(t *testing.T) {
	foreign, err := token.GenerateSessionToken("sess-1", []byte("other"), time.Minute)
	if err != nil {
		t.Fatalf("GenerateSessionToken: %v", err)
	}

	cases := map[string]string{
		"no header":   "",
		"no bearer":   "Token abc",
		"garbage":     "Bearer abc",
		"foreign key": "Bearer " + foreign,
	}

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("next handler called")
	})
	h := SessionAuth(secret)(next)

	for name, header := range cases {
		t.Run(name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodGet, "/quiz/session", nil)
			if header != "" {
				r.Header.Set("Authorization", header)
			}
			w := httptest.NewRecorder()
			h.ServeHTTP(w, r)

			if w.Code != http.StatusUnauthorized {
				t.Errorf("status = %d, want 401", w.Code)
			}
		})
	}
}

func TestSessionIDFromContext_Empty(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	if _, ok := SessionIDFromContext(r.Context()); ok {
		t.Error("expected no session id")
	}
}
