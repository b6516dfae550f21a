package session

import (
	"context"
	"testing"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"
)

func signedToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte("backend-only-secret"))
	if err != nil {
		t.Fatalf("signing token: %v", err)
	}
	return signed
}

func TestParseClaimsWithoutKey(t *testing.T) {
	tok := signedToken(t, jwt.MapClaims{
		"sub":   "u-17",
		"email": "admin@example.com",
		"name":  "Admin User",
	})

	claims, err := ParseClaims(tok)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if claims.UserID != "u-17" {
		t.Fatalf("expected user id u-17, got %s", claims.UserID)
	}
	if claims.Email != "admin@example.com" {
		t.Fatalf("unexpected email %s", claims.Email)
	}
}

func TestParseClaimsRejectsGarbage(t *testing.T) {
	for _, tok := range []string{"", "not-a-jwt", "a.b"} {
		if _, err := ParseClaims(tok); err == nil {
			t.Fatalf("token %q must fail to parse", tok)
		}
	}
}

func TestParseClaimsRequiresSubject(t *testing.T) {
	tok := signedToken(t, jwt.MapClaims{"email": "x@example.com"})
	if _, err := ParseClaims(tok); err == nil {
		t.Fatal("token without subject must be rejected")
	}
}

func TestMemoryStoreLifecycle(t *testing.T) {
	store := NewMemoryStore(time.Minute)
	ctx := context.Background()

	sess, err := store.Create(ctx, "bearer-tok", UserClaims{UserID: "u-1", Email: "a@b.c"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if sess.ID == "" {
		t.Fatal("session must get an opaque id")
	}

	loaded, err := store.Get(ctx, sess.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if loaded.Token != "bearer-tok" || loaded.Claims.UserID != "u-1" {
		t.Fatalf("loaded session mismatch: %+v", loaded)
	}

	if err := store.Destroy(ctx, sess.ID); err != nil {
		t.Fatalf("destroy: %v", err)
	}
	if _, err := store.Get(ctx, sess.ID); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound after destroy, got %v", err)
	}
}

func TestMemoryStoreExpiry(t *testing.T) {
	store := NewMemoryStore(time.Millisecond)
	ctx := context.Background()
	sess, err := store.Create(ctx, "tok", UserClaims{UserID: "u-1"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	time.Sleep(5 * time.Millisecond)
	if _, err := store.Get(ctx, sess.ID); err != ErrNotFound {
		t.Fatalf("expected expiry, got %v", err)
	}
}
