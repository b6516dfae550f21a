package service

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"

	"github.com/spec-kit/helpdesk-admin/internal/backend"
	"github.com/spec-kit/helpdesk-admin/internal/observability"
	"github.com/spec-kit/helpdesk-admin/internal/session"
	apperrors "github.com/spec-kit/helpdesk-admin/pkg/util"
)

func issueToken(t *testing.T, userID, email string) string {
	t.Helper()
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":   userID,
		"email": email,
	})
	signed, err := tok.SignedString([]byte("secret"))
	if err != nil {
		t.Fatalf("signing: %v", err)
	}
	return signed
}

func TestLoginOpensSession(t *testing.T) {
	token := issueToken(t, "u-9", "ops@example.com")
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/Auth/login" || r.Method != http.MethodPost {
			t.Fatalf("unexpected call %s %s", r.Method, r.URL.Path)
		}
		var creds map[string]string
		json.NewDecoder(r.Body).Decode(&creds)
		if creds["email"] != "ops@example.com" || creds["password"] != "hunter2" {
			t.Fatalf("credentials not forwarded: %v", creds)
		}
		json.NewEncoder(w).Encode(map[string]string{"token": token})
	}))
	defer srv.Close()

	store := session.NewMemoryStore(time.Minute)
	svc := NewAuthService(backend.New(srv.URL, time.Second, nil, observability.NewMetrics()), store, nil)

	sess, err := svc.Login(context.Background(), "ops@example.com", "hunter2")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if sess.Token != token {
		t.Fatal("session must hold the backend token")
	}
	if sess.Claims.UserID != "u-9" || sess.Claims.Email != "ops@example.com" {
		t.Fatalf("claims not decoded: %+v", sess.Claims)
	}

	loaded, err := store.Get(context.Background(), sess.ID)
	if err != nil || loaded.Token != token {
		t.Fatalf("session not persisted: %v", err)
	}
}

func TestLoginValidatesLocally(t *testing.T) {
	called := false
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	defer srv.Close()

	svc := NewAuthService(backend.New(srv.URL, time.Second, nil, nil), session.NewMemoryStore(time.Minute), nil)

	for _, creds := range [][2]string{{"", "pw"}, {"a@b.c", ""}, {"  ", "pw"}} {
		_, err := svc.Login(context.Background(), creds[0], creds[1])
		de := apperrors.ToDomainError(err)
		if de == nil || de.Code != apperrors.CodeValidation {
			t.Fatalf("credentials %v: expected validation error, got %v", creds, err)
		}
	}
	if called {
		t.Fatal("blank credentials must not reach the backend")
	}
}

func TestLoginSurfacesBackendRejection(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]string{"message": "wrong password"})
	}))
	defer srv.Close()

	svc := NewAuthService(backend.New(srv.URL, time.Second, nil, nil), session.NewMemoryStore(time.Minute), nil)
	_, err := svc.Login(context.Background(), "a@b.c", "nope")
	de := apperrors.ToDomainError(err)
	if de == nil || de.Message != "wrong password" {
		t.Fatalf("expected backend message surfaced, got %v", err)
	}
}

func TestLogoutDestroysSession(t *testing.T) {
	store := session.NewMemoryStore(time.Minute)
	svc := NewAuthService(nil, store, nil)

	sess, err := store.Create(context.Background(), "tok", session.UserClaims{UserID: "u"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := svc.Logout(context.Background(), sess.ID); err != nil {
		t.Fatalf("logout: %v", err)
	}
	if _, err := store.Get(context.Background(), sess.ID); err != session.ErrNotFound {
		t.Fatalf("expected session gone, got %v", err)
	}
	if err := svc.Logout(context.Background(), ""); err != nil {
		t.Fatalf("logout without session must be a no-op, got %v", err)
	}
}
