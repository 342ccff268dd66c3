package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/spec-kit/helpdesk/internal/domain"
	"github.com/spec-kit/helpdesk/internal/events"
	"github.com/spec-kit/helpdesk/internal/repository"
	"github.com/spec-kit/helpdesk/internal/ticketview"
	apperrors "github.com/spec-kit/helpdesk/pkg/util"
)

// TicketService coordinates ticket workflows.
type TicketService struct {
	tickets    repository.TicketRepository
	dispatcher events.Dispatcher
	strict     bool
	nowFn      func() time.Time
}

// TicketDependencies bundles repositories for ticket service.
type TicketDependencies struct {
	TicketRepo repository.TicketRepository
	Dispatcher events.Dispatcher
	// StrictTransitions rejects status changes that do not move forward
	// along open, in_progress, resolved, closed.
	StrictTransitions bool
	Clock             func() time.Time
}

// TicketCreateInput describes ticket creation payload. Values are raw
// request strings; aliases are accepted for priority.
type TicketCreateInput struct {
	Title       string
	Description string
	Priority    string
	Department  string
	ImageURLs   []string
}

// NewTicketService constructs the service.
func NewTicketService(deps TicketDependencies) *TicketService {
	clock := deps.Clock
	if clock == nil {
		clock = time.Now
	}
	return &TicketService{
		tickets:    deps.TicketRepo,
		dispatcher: deps.Dispatcher,
		strict:     deps.StrictTransitions,
		nowFn:      clock,
	}
}

// CreateTicket opens a ticket on behalf of creator.
func (s *TicketService) CreateTicket(ctx context.Context, creator *domain.User, input TicketCreateInput) (*domain.Ticket, error) {
	if creator == nil {
		return nil, apperrors.NewUnauthenticated("authentication required")
	}

	missing := map[string]any{}
	title := strings.TrimSpace(input.Title)
	description := strings.TrimSpace(input.Description)
	if title == "" {
		missing["titulo"] = "required"
	}
	if description == "" {
		missing["descricao"] = "required"
	}
	department := domain.Department(strings.TrimSpace(input.Department))
	if department == "" {
		missing["departamento"] = "required"
	} else if !department.Valid() {
		missing["departamento"] = "unknown department"
	}
	priority := domain.TicketPriorityMedium
	if raw := strings.TrimSpace(input.Priority); raw != "" {
		parsed, ok := domain.ParseTicketPriority(raw)
		if !ok {
			missing["prioridade"] = "must be one of low, medium, high"
		}
		priority = parsed
	}
	if len(missing) > 0 {
		return nil, apperrors.NewValidationError("invalid ticket", missing)
	}

	images := make([]string, 0, len(input.ImageURLs))
	for _, url := range input.ImageURLs {
		if url = strings.TrimSpace(url); url != "" {
			images = append(images, url)
		}
	}

	now := s.nowFn()
	ticket := &domain.Ticket{
		Title:               title,
		Description:         description,
		Priority:            priority,
		Status:              domain.TicketStatusOpen,
		Department:          department,
		AttachmentURLs:      images,
		CreatedBy:           creator.ID,
		CreatedByName:       creator.Name,
		CreatedByDepartment: creator.Department,
		Messages:            []domain.Message{},
		CreatedAt:           now,
		UpdatedAt:           now,
	}
	if err := s.tickets.Create(ctx, ticket); err != nil {
		return nil, apperrors.MapError(err)
	}

	s.publishEvent(ctx, events.Event{
		Type:     events.EventTicketCreated,
		TicketID: ticket.ID,
		Actor:    userActor(creator),
		Payload: events.TicketCreatedPayload{
			Department: ticket.Department,
			Priority:   ticket.Priority,
			Title:      ticket.Title,
			Images:     len(ticket.AttachmentURLs),
		},
	})
	return ticket, nil
}

// ListTickets returns every ticket matching criteria in the requested order.
// Status and department are pushed down to the store; the rest is applied
// by ticketview.
func (s *TicketService) ListTickets(ctx context.Context, criteria ticketview.Criteria, order ticketview.Sort) ([]domain.Ticket, error) {
	all, err := s.tickets.List(ctx, repository.TicketFilter{
		Status:     criteria.Status,
		Department: criteria.Department,
	})
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return ticketview.View(all, criteria, order), nil
}

// ListDepartmentTickets returns the open tickets addressed to the caller's department.
func (s *TicketService) ListDepartmentTickets(ctx context.Context, user *domain.User) ([]domain.Ticket, error) {
	if user == nil {
		return nil, apperrors.NewUnauthenticated("authentication required")
	}
	tickets, err := s.tickets.List(ctx, repository.TicketFilter{
		Status:     domain.TicketStatusOpen,
		Department: user.Department,
	})
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return tickets, nil
}

// GetTicket fetches a single ticket with its conversation.
func (s *TicketService) GetTicket(ctx context.Context, ticketID string) (*domain.Ticket, error) {
	ticket, err := s.tickets.GetByID(ctx, ticketID)
	if err != nil {
		return nil, ticketError(err, ticketID)
	}
	return ticket, nil
}

// PatchStatus moves a ticket to a new status.
func (s *TicketService) PatchStatus(ctx context.Context, actor *domain.User, ticketID, rawStatus string) (*domain.Ticket, error) {
	next, ok := domain.ParseTicketStatus(rawStatus)
	if !ok {
		return nil, apperrors.NewValidationError("invalid status", map[string]any{"status": rawStatus})
	}

	ticket, err := s.tickets.GetByID(ctx, ticketID)
	if err != nil {
		return nil, ticketError(err, ticketID)
	}
	if err := s.checkTransition(ticket.Status, next); err != nil {
		return nil, err
	}

	oldStatus := ticket.Status
	now := s.nowFn()
	if err := s.tickets.UpdateStatus(ctx, ticket.ID, s.expected(ticket.Status), next, now); err != nil {
		return nil, ticketError(err, ticketID)
	}
	ticket.Status = next
	ticket.UpdatedAt = now

	s.publishEvent(ctx, events.Event{
		Type:     events.EventTicketStatusChanged,
		TicketID: ticket.ID,
		Actor:    userActor(actor),
		Payload: events.TicketStatusChangedPayload{
			OldStatus: oldStatus,
			NewStatus: next,
		},
	})
	return ticket, nil
}

func (s *TicketService) checkTransition(current, next domain.TicketStatus) error {
	if !s.strict || current.CanTransition(next) {
		return nil
	}
	return apperrors.NewConflict("invalid status transition", map[string]any{
		"from": current,
		"to":   next,
	})
}

// expected is the status a store write must still find for the checked
// transition to hold. Lenient mode does not guard writes.
func (s *TicketService) expected(current domain.TicketStatus) domain.TicketStatus {
	if !s.strict {
		return ""
	}
	return current
}

func (s *TicketService) publishEvent(ctx context.Context, event events.Event) {
	if s.dispatcher == nil {
		return
	}
	if event.ID == "" {
		event.ID = uuid.NewString()
	}
	if event.Timestamp.IsZero() {
		event.Timestamp = s.nowFn()
	}
	_ = s.dispatcher.Publish(ctx, event)
}

func userActor(user *domain.User) events.Actor {
	if user == nil {
		return events.Actor{}
	}
	return events.Actor{
		UserID:     user.ID,
		Name:       user.Name,
		Department: user.Department,
	}
}

func ticketError(err error, ticketID string) error {
	if errors.Is(err, repository.ErrNotFound) {
		return apperrors.NewNotFound("ticket", map[string]any{"ticket_id": ticketID})
	}
	if errors.Is(err, repository.ErrStatusMismatch) {
		return apperrors.NewConflict("ticket status changed, reload and retry", map[string]any{"ticket_id": ticketID})
	}
	return apperrors.MapError(err)
}
