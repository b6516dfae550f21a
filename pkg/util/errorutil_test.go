package util

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestToDomainErrorPassthrough(t *testing.T) {
	orig := NewBackendError("kayit bulunamadi", http.StatusConflict)
	wrapped := fmt.Errorf("saving brand: %w", orig)

	de := ToDomainError(wrapped)
	if de.Code != CodeBackend {
		t.Fatalf("expected code %s, got %s", CodeBackend, de.Code)
	}
	if de.Message != "kayit bulunamadi" {
		t.Fatalf("unexpected message: %s", de.Message)
	}
	if de.HTTPStatus != http.StatusConflict {
		t.Fatalf("expected status 409, got %d", de.HTTPStatus)
	}
}

func TestToDomainErrorGeneric(t *testing.T) {
	de := ToDomainError(errors.New("boom"))
	if de.Code != CodeInternal {
		t.Fatalf("expected code %s, got %s", CodeInternal, de.Code)
	}
	if de.Message != GenericFailureMessage {
		t.Fatalf("generic errors must never leak raw text, got %s", de.Message)
	}
}

func TestIsSessionExpired(t *testing.T) {
	if !IsSessionExpired(NewSessionExpired()) {
		t.Fatal("expected session-expired error to be recognized")
	}
	if IsSessionExpired(NewBackendError("nope", http.StatusUnauthorized)) {
		t.Fatal("backend errors must not count as session expiry")
	}
	if IsSessionExpired(nil) {
		t.Fatal("nil error must not count as session expiry")
	}
}

func TestNewBackendErrorEmptyMessage(t *testing.T) {
	de := ToDomainError(NewBackendError("", http.StatusBadRequest))
	if de.Message != GenericFailureMessage {
		t.Fatalf("empty backend message must fall back, got %s", de.Message)
	}
}
