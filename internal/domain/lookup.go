package domain

// PriorityInfo describes how a priority code is displayed.
type PriorityInfo struct {
	Code  int
	Label string
	Color string
}

var priorityTable = map[int]PriorityInfo{
	PriorityCritical: {Code: PriorityCritical, Label: "Critical", Color: "#d32f2f"},
	PriorityHigh:     {Code: PriorityHigh, Label: "High", Color: "#f57c00"},
	PriorityNormal:   {Code: PriorityNormal, Label: "Normal", Color: "#1976d2"},
	PriorityLow:      {Code: PriorityLow, Label: "Low", Color: "#388e3c"},
}

// PriorityByCode is total: unrecognized codes fall back to the Low entry for
// display. The stored code is never rewritten.
func PriorityByCode(code int) PriorityInfo {
	if info, ok := priorityTable[code]; ok {
		return info
	}
	return priorityTable[PriorityLow]
}

// ValidPriority reports whether code is one of the four defined values.
func ValidPriority(code int) bool {
	_, ok := priorityTable[code]
	return ok
}

// Priorities returns the defined codes in display order.
func Priorities() []PriorityInfo {
	return []PriorityInfo{
		priorityTable[PriorityCritical],
		priorityTable[PriorityHigh],
		priorityTable[PriorityNormal],
		priorityTable[PriorityLow],
	}
}

// StatusInfo describes how a workflow status is displayed, including the
// progress percentage shown on the ticket timeline.
type StatusInfo struct {
	Status   TicketStatus
	Label    string
	Color    string
	Progress int
}

var statusTable = map[TicketStatus]StatusInfo{
	TicketStatusOpen:            {Status: TicketStatusOpen, Label: "Open", Color: "#1976d2", Progress: 10},
	TicketStatusInProgress:      {Status: TicketStatusInProgress, Label: "In Progress", Color: "#f57c00", Progress: 35},
	TicketStatusUnderReview:     {Status: TicketStatusUnderReview, Label: "Under Review", Color: "#7b1fa2", Progress: 55},
	TicketStatusReadyForTesting: {Status: TicketStatusReadyForTesting, Label: "Ready For Testing", Color: "#0288d1", Progress: 65},
	TicketStatusTesting:         {Status: TicketStatusTesting, Label: "Testing", Color: "#00796b", Progress: 80},
	TicketStatusResolved:        {Status: TicketStatusResolved, Label: "Resolved", Color: "#388e3c", Progress: 90},
	TicketStatusClosed:          {Status: TicketStatusClosed, Label: "Closed", Color: "#455a64", Progress: 100},
	TicketStatusReopened:        {Status: TicketStatusReopened, Label: "Reopened", Color: "#c2185b", Progress: 20},
	TicketStatusCancelled:       {Status: TicketStatusCancelled, Label: "Cancelled", Color: "#9e9e9e", Progress: 0},
}

// StatusByName returns display info for a status; unknown values get a
// neutral zero-progress entry rather than an error.
func StatusByName(status TicketStatus) StatusInfo {
	if info, ok := statusTable[status]; ok {
		return info
	}
	return StatusInfo{Status: status, Label: string(status), Color: "#9e9e9e", Progress: 0}
}
