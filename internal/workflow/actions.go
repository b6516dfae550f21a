package workflow

import "github.com/spec-kit/helpdesk-admin/internal/domain"

// ActionSet lists the workflow affordances offered for one ticket to one
// viewer. The backend enforces the state machine; this only decides what the
// screens offer.
type ActionSet struct {
	CanAssign         bool
	AssignUrgent      bool
	CanTransfer       bool
	CanCancel         bool
	CanClose          bool
	CanChangePriority bool
}

// Any reports whether at least one action is offered.
func (a ActionSet) Any() bool {
	return a.CanAssign || a.CanTransfer || a.CanCancel || a.CanClose || a.CanChangePriority
}

// ActionsFor computes the offered actions for userID viewing ticket.
//
// Assign is offered only while unassigned and never to the ticket's own
// creator. Transfer, cancel and close belong to the current assignee while
// the ticket is not terminal. Priority change is orthogonal to status and
// open to anyone while non-terminal.
func ActionsFor(ticket *domain.Ticket, userID string) ActionSet {
	if ticket == nil || userID == "" {
		return ActionSet{}
	}

	terminal := ticket.Status.IsTerminal()
	assignee := ticket.IsAssigned() && ticket.UserID == userID

	actions := ActionSet{
		CanChangePriority: !terminal,
	}

	if !ticket.IsAssigned() && ticket.CreatedBy != userID && !terminal {
		actions.CanAssign = true
		// Same operation under SLA breach, rendered with urgency.
		actions.AssignUrgent = ticket.IsAssignmentOverdue
	}

	if assignee && !terminal {
		actions.CanTransfer = true
		actions.CanCancel = true
		actions.CanClose = true
	}

	return actions
}
