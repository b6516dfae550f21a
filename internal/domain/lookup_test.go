package domain

import "testing"

func TestPriorityByCodeDefined(t *testing.T) {
	cases := []struct {
		code  int
		label string
	}{
		{1, "Critical"},
		{2, "High"},
		{3, "Normal"},
		{4, "Low"},
	}
	for _, tc := range cases {
		got := PriorityByCode(tc.code)
		if got.Label != tc.label {
			t.Fatalf("code %d: expected label %s, got %s", tc.code, tc.label, got.Label)
		}
		if got.Code != tc.code {
			t.Fatalf("code %d: lookup returned code %d", tc.code, got.Code)
		}
		if got.Color == "" {
			t.Fatalf("code %d: missing color", tc.code)
		}
	}
}

func TestPriorityByCodeFallsBackToLow(t *testing.T) {
	low := PriorityByCode(PriorityLow)
	for _, code := range []int{0, -1, 5, 99} {
		got := PriorityByCode(code)
		if got != low {
			t.Fatalf("code %d: expected Low fallback %+v, got %+v", code, low, got)
		}
	}
	// Total and idempotent: the fallback of a fallback is itself.
	if PriorityByCode(PriorityByCode(42).Code) != low {
		t.Fatal("fallback must be stable under re-lookup")
	}
}

func TestValidPriority(t *testing.T) {
	for code := 1; code <= 4; code++ {
		if !ValidPriority(code) {
			t.Fatalf("code %d must be valid", code)
		}
	}
	if ValidPriority(0) || ValidPriority(5) {
		t.Fatal("out-of-range codes must be invalid")
	}
}

func TestStatusByNameKnownAndUnknown(t *testing.T) {
	if info := StatusByName(TicketStatusClosed); info.Progress != 100 {
		t.Fatalf("Closed must show 100%% progress, got %d", info.Progress)
	}
	if info := StatusByName(TicketStatusOpen); info.Label != "Open" {
		t.Fatalf("unexpected Open label %s", info.Label)
	}

	unknown := StatusByName(TicketStatus("Weird"))
	if unknown.Progress != 0 || unknown.Label != "Weird" {
		t.Fatalf("unknown status must be neutral, got %+v", unknown)
	}
}

func TestIsTerminal(t *testing.T) {
	terminal := []TicketStatus{TicketStatusResolved, TicketStatusClosed, TicketStatusCancelled}
	for _, s := range terminal {
		if !s.IsTerminal() {
			t.Fatalf("%s must be terminal", s)
		}
	}
	active := []TicketStatus{
		TicketStatusOpen, TicketStatusInProgress, TicketStatusUnderReview,
		TicketStatusReadyForTesting, TicketStatusTesting, TicketStatusReopened,
	}
	for _, s := range active {
		if s.IsTerminal() {
			t.Fatalf("%s must not be terminal", s)
		}
	}
}
