package service

import (
	"context"
	"strings"

	"github.com/spec-kit/helpdesk/internal/domain"
	"github.com/spec-kit/helpdesk/internal/events"
	apperrors "github.com/spec-kit/helpdesk/pkg/util"
)

// FinishMessage is the system message appended when a ticket is finished.
const FinishMessage = "Chamado finalizado"

// PostMessage appends a reply to the ticket conversation. A message with
// blank text and no attachments is rejected and the ticket is left as is.
func (s *TicketService) PostMessage(ctx context.Context, author *domain.User, ticketID, text string, attachments []domain.Attachment) (*domain.Message, error) {
	if author == nil {
		return nil, apperrors.NewUnauthenticated("authentication required")
	}

	msg := &domain.Message{
		UserID:   author.ID,
		UserName: author.Name,
		Content:  strings.TrimSpace(text),
	}
	for i, attachment := range attachments {
		url := strings.TrimSpace(attachment.URL)
		if url == "" {
			return nil, apperrors.NewValidationError("attachment url is required", map[string]any{"index": i})
		}
		if attachment.Type != domain.AttachmentImage && attachment.Type != domain.AttachmentVideo {
			return nil, apperrors.NewValidationError("attachment must be an image or a video", map[string]any{
				"index": i,
				"type":  attachment.Type,
			})
		}
		msg.Attachments = append(msg.Attachments, domain.Attachment{Type: attachment.Type, URL: url})
	}
	if msg.IsEmpty() {
		return nil, apperrors.NewValidationError("message needs text or an attachment", map[string]any{"resposta": "required"})
	}

	msg.Timestamp = s.nowFn()
	if err := s.tickets.AppendMessage(ctx, ticketID, msg); err != nil {
		return nil, ticketError(err, ticketID)
	}

	s.publishEvent(ctx, events.Event{
		Type:     events.EventTicketMessageAdded,
		TicketID: ticketID,
		Actor:    userActor(author),
		Payload: events.TicketMessageAddedPayload{
			MessageID:   msg.ID,
			Attachments: len(msg.Attachments),
			BodyPreview: events.Preview(msg.Content),
		},
	})
	return msg, nil
}

// FinishTicket resolves the ticket and appends FinishMessage in a single
// store operation.
func (s *TicketService) FinishTicket(ctx context.Context, actor *domain.User, ticketID string) (*domain.Ticket, error) {
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
	if err := s.checkTransition(ticket.Status, domain.TicketStatusResolved); err != nil {
		return nil, err
	}

	now := s.nowFn()
	msg := &domain.Message{
		UserID:    actor.ID,
		UserName:  actor.Name,
		Content:   FinishMessage,
		Timestamp: now,
	}
	if err := s.tickets.Resolve(ctx, ticket.ID, s.expected(ticket.Status), msg, now); err != nil {
		return nil, ticketError(err, ticketID)
	}

	oldStatus := ticket.Status
	ticket.Status = domain.TicketStatusResolved
	ticket.Messages = append(ticket.Messages, msg.Clone())
	ticket.UpdatedAt = now

	s.publishEvent(ctx, events.Event{
		Type:     events.EventTicketResolved,
		TicketID: ticket.ID,
		Actor:    userActor(actor),
		Payload: events.TicketResolvedPayload{
			OldStatus: oldStatus,
			MessageID: msg.ID,
		},
	})
	return ticket, nil
}
