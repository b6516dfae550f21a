package domain

import "time"

// TicketStatus enumerates lifecycle states for tickets. The values mirror
// what the backend serializes; transitions are enforced server-side and the
// admin screens only offer the ones valid for the current state and actor.
type TicketStatus string

const (
	TicketStatusOpen            TicketStatus = "Open"
	TicketStatusInProgress      TicketStatus = "InProgress"
	TicketStatusUnderReview     TicketStatus = "UnderReview"
	TicketStatusReadyForTesting TicketStatus = "ReadyForTesting"
	TicketStatusTesting         TicketStatus = "Testing"
	TicketStatusResolved        TicketStatus = "Resolved"
	TicketStatusClosed          TicketStatus = "Closed"
	TicketStatusReopened        TicketStatus = "Reopened"
	TicketStatusCancelled       TicketStatus = "Cancelled"
)

// IsTerminal reports whether no further workflow actions may be offered.
func (s TicketStatus) IsTerminal() bool {
	switch s {
	case TicketStatusResolved, TicketStatusClosed, TicketStatusCancelled:
		return true
	}
	return false
}

// Ticket priority codes. Anything outside 1..4 is displayed as Low; the
// stored value is never mutated client-side.
const (
	PriorityCritical = 1
	PriorityHigh     = 2
	PriorityNormal   = 3
	PriorityLow      = 4
)

// Ticket is a helpdesk work item as served by the backend. SLA fields
// (timeToAssign, timeToSolve, the overdue flags and display strings) are
// computed server-side and consumed here for display and gating only.
type Ticket struct {
	ID                 int          `json:"id"`
	RegistrationNumber string       `json:"registrationNumber"`
	ProblemType        string       `json:"problemType"`
	Priority           int          `json:"priority"`
	Status             TicketStatus `json:"status"`

	UserID       string     `json:"userId"`
	AssignedDate *time.Time `json:"assignedDate"`

	TimeToAssign         *time.Time `json:"timeToAssign"`
	TimeToSolve          *time.Time `json:"timeToSolve"`
	IsAssignmentOverdue  bool       `json:"isAssignmentOverdue"`
	IsSolutionOverdue    bool       `json:"isSolutionOverdue"`
	TimeToAssignDisplay  string     `json:"timeToAssignDisplay"`
	TimeToSolveDisplay   string     `json:"timeToSolveDisplay"`

	Location   string `json:"location"`
	Room       string `json:"room"`
	Department string `json:"department"`
	GroupID    int    `json:"groupId"`
	Group      string `json:"group"`
	Inventory  string `json:"inventory"`
	CreatedBy  string `json:"createdBy"`

	Subject        string `json:"subject"`
	Description    string `json:"description"`
	AttachmentPath string `json:"attachmentPath,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
}

// IsAssigned reports whether a user currently owns the ticket.
func (t *Ticket) IsAssigned() bool {
	return t.UserID != ""
}

// TicketStat is a row in the dashboard ranking reports
// (most-opened-by-group, most-opened-to-group, most-assigned-to-user).
type TicketStat struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// TransferRequest carries the mandatory fields of a ticket transfer.
type TransferRequest struct {
	GroupID     int    `json:"groupId"`
	Subject     string `json:"subject"`
	Description string `json:"description"`
}

// CancelRequest carries a cancellation with its reason.
type CancelRequest struct {
	CancelReasonID int    `json:"cancelReasonId"`
	Note           string `json:"note,omitempty"`
}
