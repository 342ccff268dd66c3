package domain

import (
	"strings"
	"time"
)

// TicketStatus enumerates lifecycle states for tickets.
type TicketStatus string

const (
	TicketStatusOpen       TicketStatus = "open"
	TicketStatusInProgress TicketStatus = "in_progress"
	TicketStatusResolved   TicketStatus = "resolved"
	TicketStatusClosed     TicketStatus = "closed"
)

// TicketStatuses lists statuses in lifecycle order.
var TicketStatuses = []TicketStatus{
	TicketStatusOpen,
	TicketStatusInProgress,
	TicketStatusResolved,
	TicketStatusClosed,
}

var statusAliases = map[string]TicketStatus{
	"open":           TicketStatusOpen,
	"aberto":         TicketStatusOpen,
	"in_progress":    TicketStatusInProgress,
	"em_atendimento": TicketStatusInProgress,
	"resolved":       TicketStatusResolved,
	"resolvido":      TicketStatusResolved,
	"closed":         TicketStatusClosed,
	"fechado":        TicketStatusClosed,
}

// ParseTicketStatus normalizes canonical and Portuguese status names.
func ParseTicketStatus(raw string) (TicketStatus, bool) {
	status, ok := statusAliases[strings.ToLower(strings.TrimSpace(raw))]
	return status, ok
}

// Rank is the position of the status in the lifecycle, or -1 if unknown.
func (s TicketStatus) Rank() int {
	for i, candidate := range TicketStatuses {
		if candidate == s {
			return i
		}
	}
	return -1
}

// CanTransition reports whether next is a forward move from s.
func (s TicketStatus) CanTransition(next TicketStatus) bool {
	from, to := s.Rank(), next.Rank()
	return from >= 0 && to > from
}

// TicketPriority enumerates urgency.
type TicketPriority string

const (
	TicketPriorityLow    TicketPriority = "low"
	TicketPriorityMedium TicketPriority = "medium"
	TicketPriorityHigh   TicketPriority = "high"
)

var priorityAliases = map[string]TicketPriority{
	"low":    TicketPriorityLow,
	"baixa":  TicketPriorityLow,
	"medium": TicketPriorityMedium,
	"media":  TicketPriorityMedium,
	"média":  TicketPriorityMedium,
	"high":   TicketPriorityHigh,
	"alta":   TicketPriorityHigh,
}

// ParseTicketPriority normalizes canonical and Portuguese priority names.
func ParseTicketPriority(raw string) (TicketPriority, bool) {
	priority, ok := priorityAliases[strings.ToLower(strings.TrimSpace(raw))]
	return priority, ok
}

// Weight maps high=3, medium=2, low=1 and anything else to 0.
func (p TicketPriority) Weight() int {
	switch p {
	case TicketPriorityHigh:
		return 3
	case TicketPriorityMedium:
		return 2
	case TicketPriorityLow:
		return 1
	default:
		return 0
	}
}

// Ticket is the aggregate for support requests.
type Ticket struct {
	ID                  string
	Title               string
	Description         string
	Priority            TicketPriority
	Status              TicketStatus
	Department          Department
	AttachmentURLs      []string
	CreatedBy           string
	CreatedByName       string
	CreatedByDepartment Department
	AssignedTo          string
	AssignedToName      string
	Messages            []Message
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// Clone returns a deep copy so callers can read without sharing slices.
func (t Ticket) Clone() Ticket {
	out := t
	if t.AttachmentURLs != nil {
		out.AttachmentURLs = append([]string(nil), t.AttachmentURLs...)
	}
	if t.Messages != nil {
		out.Messages = make([]Message, len(t.Messages))
		for i, msg := range t.Messages {
			out.Messages[i] = msg.Clone()
		}
	}
	return out
}
