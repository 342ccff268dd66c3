package service

import (
	"context"

	"github.com/spec-kit/helpdesk/internal/domain"
	"github.com/spec-kit/helpdesk/internal/events"
	apperrors "github.com/spec-kit/helpdesk/pkg/util"
)

// Assign lets a member of the ticket's department claim it. The ticket
// moves to in_progress and records the department and the claimer's name.
// Admins may claim tickets of any department.
func (s *TicketService) Assign(ctx context.Context, actor *domain.User, ticketID string) (*domain.Ticket, error) {
	if actor == nil {
		return nil, apperrors.NewUnauthenticated("authentication required")
	}

	ticket, err := s.tickets.GetByID(ctx, ticketID)
	if err != nil {
		return nil, ticketError(err, ticketID)
	}
	if !canHandle(actor, ticket) {
		return nil, apperrors.NewForbidden("ticket belongs to another department")
	}
	if ticket.Status != domain.TicketStatusInProgress {
		if err := s.checkTransition(ticket.Status, domain.TicketStatusInProgress); err != nil {
			return nil, err
		}
	}

	now := s.nowFn()
	if err := s.tickets.Assign(ctx, ticket.ID, s.expected(ticket.Status), ticket.Department, actor.Name, now); err != nil {
		return nil, ticketError(err, ticketID)
	}
	ticket.Status = domain.TicketStatusInProgress
	ticket.AssignedTo = string(ticket.Department)
	ticket.AssignedToName = actor.Name
	ticket.UpdatedAt = now

	s.publishEvent(ctx, events.Event{
		Type:     events.EventTicketAssigned,
		TicketID: ticket.ID,
		Actor:    userActor(actor),
		Payload: events.TicketAssignedPayload{
			Department:   ticket.Department,
			AssigneeName: actor.Name,
		},
	})
	return ticket, nil
}

func canHandle(user *domain.User, ticket *domain.Ticket) bool {
	return user.IsAdmin() || user.Department == ticket.Department
}
