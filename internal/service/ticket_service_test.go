package service

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/spec-kit/helpdesk-admin/internal/backend"
	"github.com/spec-kit/helpdesk-admin/internal/domain"
	"github.com/spec-kit/helpdesk-admin/internal/observability"
	apperrors "github.com/spec-kit/helpdesk-admin/pkg/util"
)

// fakeBackend records the requests the service issues.
type fakeBackend struct {
	mu       sync.Mutex
	requests []string
	ticket   domain.Ticket
}

func (f *fakeBackend) handler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		f.requests = append(f.requests, r.Method+" "+r.URL.Path)
		f.mu.Unlock()

		if r.Method == http.MethodGet {
			json.NewEncoder(w).Encode(f.ticket)
			return
		}
		w.WriteHeader(http.StatusOK)
	}
}

func (f *fakeBackend) calls() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string{}, f.requests...)
}

func newService(t *testing.T, f *fakeBackend) *TicketService {
	t.Helper()
	srv := httptest.NewServer(f.handler())
	t.Cleanup(srv.Close)
	client := backend.New(srv.URL, 5*time.Second, nil, observability.NewMetrics())
	return NewTicketService(client)
}

func TestAssignMutatesThenRefetches(t *testing.T) {
	fake := &fakeBackend{ticket: domain.Ticket{ID: 3, UserID: "agent", Status: domain.TicketStatusInProgress}}
	svc := newService(t, fake)

	ticket, err := svc.Assign(context.Background(), "tok", 3)
	if err != nil {
		t.Fatalf("assign: %v", err)
	}
	if ticket.UserID != "agent" {
		t.Fatalf("expected refetched ticket, got %+v", ticket)
	}

	calls := fake.calls()
	want := []string{"POST /api/Ticket/3/assign", "GET /api/Ticket/3"}
	if len(calls) != len(want) || calls[0] != want[0] || calls[1] != want[1] {
		t.Fatalf("expected %v, got %v", want, calls)
	}
}

func TestTransferValidatesBeforeAnyCall(t *testing.T) {
	fake := &fakeBackend{}
	svc := newService(t, fake)

	cases := []domain.TransferRequest{
		{},
		{GroupID: 2, Subject: "printer", Description: "   "},
		{GroupID: 2, Subject: "", Description: "broken"},
		{GroupID: 0, Subject: "printer", Description: "broken"},
	}
	for _, req := range cases {
		_, err := svc.Transfer(context.Background(), "tok", 3, req)
		de := apperrors.ToDomainError(err)
		if de == nil || de.Code != apperrors.CodeValidation {
			t.Fatalf("request %+v: expected validation error, got %v", req, err)
		}
	}
	if len(fake.calls()) != 0 {
		t.Fatalf("invalid transfers must not reach the backend, saw %v", fake.calls())
	}

	if _, err := svc.Transfer(context.Background(), "tok", 3, domain.TransferRequest{
		GroupID: 2, Subject: "printer", Description: "broken",
	}); err != nil {
		t.Fatalf("valid transfer: %v", err)
	}
	calls := fake.calls()
	if len(calls) != 2 || calls[0] != "POST /api/Ticket/3/transfer" {
		t.Fatalf("expected transfer then refetch, got %v", calls)
	}
}

func TestCancelRequiresReason(t *testing.T) {
	fake := &fakeBackend{}
	svc := newService(t, fake)

	_, err := svc.Cancel(context.Background(), "tok", 5, domain.CancelRequest{Note: "dup"})
	de := apperrors.ToDomainError(err)
	if de == nil || de.Code != apperrors.CodeValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
	if len(fake.calls()) != 0 {
		t.Fatal("missing reason must not reach the backend")
	}

	if _, err := svc.Cancel(context.Background(), "tok", 5, domain.CancelRequest{CancelReasonID: 7}); err != nil {
		t.Fatalf("cancel with reason: %v", err)
	}
	calls := fake.calls()
	if len(calls) != 2 || calls[0] != "POST /api/Ticket/5/cancel" || calls[1] != "GET /api/Ticket/5" {
		t.Fatalf("expected cancel then refetch, got %v", calls)
	}
}

func TestSetPriorityRejectsUnknownCodes(t *testing.T) {
	fake := &fakeBackend{}
	svc := newService(t, fake)

	for _, code := range []int{0, 5, -1} {
		_, err := svc.SetPriority(context.Background(), "tok", 9, code)
		de := apperrors.ToDomainError(err)
		if de == nil || de.Code != apperrors.CodeValidation {
			t.Fatalf("code %d: expected validation error, got %v", code, err)
		}
	}
	if len(fake.calls()) != 0 {
		t.Fatal("invalid priorities must not reach the backend")
	}

	if _, err := svc.SetPriority(context.Background(), "tok", 9, domain.PriorityHigh); err != nil {
		t.Fatalf("set priority: %v", err)
	}
	calls := fake.calls()
	if len(calls) != 2 || calls[0] != "PUT /api/Ticket/9/priority" {
		t.Fatalf("expected priority push then refetch, got %v", calls)
	}
}
