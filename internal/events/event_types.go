package events

import (
	"time"

	"github.com/spec-kit/helpdesk/internal/domain"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventTicketCreated       EventType = "ticket_created"
	EventTicketStatusChanged EventType = "ticket_status_changed"
	EventTicketAssigned      EventType = "ticket_assigned"
	EventTicketMessageAdded  EventType = "ticket_message_added"
	EventTicketResolved      EventType = "ticket_resolved"
)

// AllEventTypes lists every event the services emit.
var AllEventTypes = []EventType{
	EventTicketCreated,
	EventTicketStatusChanged,
	EventTicketAssigned,
	EventTicketMessageAdded,
	EventTicketResolved,
}

// Actor identifies the employee that caused an event.
type Actor struct {
	UserID     string            `json:"user_id"`
	Name       string            `json:"name,omitempty"`
	Department domain.Department `json:"department,omitempty"`
}

// Event represents a domain event emitted by services.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	TicketID  string      `json:"ticket_id"`
	Actor     Actor       `json:"actor"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// TicketCreatedPayload payload.
type TicketCreatedPayload struct {
	Department domain.Department     `json:"department"`
	Priority   domain.TicketPriority `json:"priority"`
	Title      string                `json:"title"`
	Images     int                   `json:"images"`
}

// TicketStatusChangedPayload payload.
type TicketStatusChangedPayload struct {
	OldStatus domain.TicketStatus `json:"old_status"`
	NewStatus domain.TicketStatus `json:"new_status"`
}

// TicketAssignedPayload payload.
type TicketAssignedPayload struct {
	Department   domain.Department `json:"department"`
	AssigneeName string            `json:"assignee_name"`
}

// TicketMessageAddedPayload payload.
type TicketMessageAddedPayload struct {
	MessageID   string `json:"message_id"`
	Attachments int    `json:"attachments"`
	BodyPreview string `json:"body_preview"`
}

// TicketResolvedPayload payload.
type TicketResolvedPayload struct {
	OldStatus domain.TicketStatus `json:"old_status"`
	MessageID string              `json:"message_id"`
}

// Preview trims message bodies carried in event payloads.
func Preview(body string) string {
	const limit = 120
	runes := []rune(body)
	if len(runes) <= limit {
		return body
	}
	return string(runes[:limit]) + "..."
}
