package backend

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/spec-kit/helpdesk-admin/internal/observability"
	apperrors "github.com/spec-kit/helpdesk-admin/pkg/util"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) (*Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return New(srv.URL, 5*time.Second, nil, observability.NewMetrics()), srv
}

func TestBearerTokenAttached(t *testing.T) {
	var gotAuth string
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`[]`))
	})

	if _, err := c.Brands().List(context.Background(), "tok-123"); err != nil {
		t.Fatalf("list: %v", err)
	}
	if gotAuth != "Bearer tok-123" {
		t.Fatalf("expected bearer header, got %q", gotAuth)
	}
}

func TestNoTokenMeansUnauthenticatedRequest(t *testing.T) {
	var gotAuth string
	sawHeader := false
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		_, sawHeader = r.Header["Authorization"]
		w.Write([]byte(`[]`))
	})

	if _, err := c.Brands().List(context.Background(), ""); err != nil {
		t.Fatalf("list: %v", err)
	}
	if sawHeader || gotAuth != "" {
		t.Fatalf("no token must mean no Authorization header, got %q", gotAuth)
	}
}

func TestUnauthorizedBecomesSessionExpired(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"message":"token invalid"}`, http.StatusUnauthorized)
	})

	_, err := c.MyTickets(context.Background(), "stale")
	if !apperrors.IsSessionExpired(err) {
		t.Fatalf("expected session-expired error, got %v", err)
	}
	de := apperrors.ToDomainError(err)
	if de.Message != apperrors.SessionExpiredMessage {
		t.Fatalf("401 must carry the fixed message, got %q", de.Message)
	}
}

func TestErrorMessagePriority(t *testing.T) {
	cases := []struct {
		name    string
		body    string
		status  int
		message string
	}{
		{"message field wins", `{"message":"isim zorunlu","error":"other"}`, http.StatusBadRequest, "isim zorunlu"},
		{"error field next", `{"error":"conflict detected"}`, http.StatusConflict, "conflict detected"},
		{"unparseable body falls back", `<html>oops</html>`, http.StatusBadGateway, apperrors.GenericFailureMessage},
		{"empty body falls back", ``, http.StatusInternalServerError, apperrors.GenericFailureMessage},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tc.status)
				w.Write([]byte(tc.body))
			})
			_, err := c.Brands().List(context.Background(), "tok")
			de := apperrors.ToDomainError(err)
			if de == nil {
				t.Fatal("expected an error")
			}
			if de.Message != tc.message {
				t.Fatalf("expected message %q, got %q", tc.message, de.Message)
			}
			if de.HTTPStatus != tc.status {
				t.Fatalf("expected status %d, got %d", tc.status, de.HTTPStatus)
			}
		})
	}
}

func TestTransportFailureNeverLeaksRaw(t *testing.T) {
	c := New("http://127.0.0.1:1", 200*time.Millisecond, nil, nil)
	_, err := c.Brands().List(context.Background(), "tok")
	de := apperrors.ToDomainError(err)
	if de == nil || de.Code != apperrors.CodeTransport {
		t.Fatalf("expected transport error, got %v", err)
	}
	if de.Message != apperrors.GenericFailureMessage {
		t.Fatalf("transport failures must show the generic message, got %q", de.Message)
	}
}

func TestRequestIDForwarded(t *testing.T) {
	var gotID string
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotID = r.Header.Get("X-Request-Id")
		w.Write([]byte(`[]`))
	})

	ctx := WithRequestID(context.Background(), "req-7")
	if _, err := c.Brands().List(ctx, "tok"); err != nil {
		t.Fatalf("list: %v", err)
	}
	if gotID != "req-7" {
		t.Fatalf("expected request id forwarded, got %q", gotID)
	}
}

func TestBackendCallsRecorded(t *testing.T) {
	metrics := observability.NewMetrics()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[]`))
	}))
	defer srv.Close()
	c := New(srv.URL, time.Second, nil, metrics)

	if _, err := c.Brands().List(context.Background(), "tok"); err != nil {
		t.Fatalf("list: %v", err)
	}
	if got := metrics.BackendCalls("/api/Brand", http.MethodGet, http.StatusOK); got != 1 {
		t.Fatalf("expected one recorded call, got %d", got)
	}
}
