package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/spec-kit/helpdesk/internal/domain"
)

type memoryTicketRepository struct {
	mu      sync.RWMutex
	tickets map[string]*domain.Ticket
	order   []string
}

// NewMemoryTicketRepository returns a process-local ticket store.
func NewMemoryTicketRepository() TicketRepository {
	return &memoryTicketRepository{tickets: make(map[string]*domain.Ticket)}
}

func (r *memoryTicketRepository) Create(_ context.Context, ticket *domain.Ticket) error {
	if ticket.ID == "" {
		ticket.ID = uuid.NewString()
	}
	stored := ticket.Clone()
	if stored.Messages == nil {
		stored.Messages = []domain.Message{}
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, taken := r.tickets[stored.ID]; taken {
		return ErrDuplicateID
	}
	r.tickets[stored.ID] = &stored
	r.order = append(r.order, stored.ID)
	return nil
}

func (r *memoryTicketRepository) GetByID(_ context.Context, id string) (*domain.Ticket, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	ticket, ok := r.tickets[id]
	if !ok {
		return nil, ErrNotFound
	}
	snapshot := ticket.Clone()
	return &snapshot, nil
}

// List returns newest first, matching the SQL store's ordering.
func (r *memoryTicketRepository) List(_ context.Context, filter TicketFilter) ([]domain.Ticket, error) {
	r.mu.RLock()
	result := make([]domain.Ticket, 0, len(r.order))
	for i := len(r.order) - 1; i >= 0; i-- {
		ticket := r.tickets[r.order[i]]
		if filter.matches(ticket) {
			result = append(result, ticket.Clone())
		}
	}
	r.mu.RUnlock()

	sort.SliceStable(result, func(i, j int) bool {
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})
	return result, nil
}

func (r *memoryTicketRepository) UpdateStatus(_ context.Context, id string, expected, status domain.TicketStatus, at time.Time) error {
	return r.mutate(id, expected, func(t *domain.Ticket) {
		t.Status = status
		t.UpdatedAt = at
	})
}

func (r *memoryTicketRepository) AppendMessage(_ context.Context, id string, msg *domain.Message) error {
	assignMessageID(msg)
	return r.mutate(id, "", func(t *domain.Ticket) {
		t.Messages = append(t.Messages, msg.Clone())
		t.UpdatedAt = msg.Timestamp
	})
}

func (r *memoryTicketRepository) Assign(_ context.Context, id string, expected domain.TicketStatus, department domain.Department, assigneeName string, at time.Time) error {
	return r.mutate(id, expected, func(t *domain.Ticket) {
		t.Status = domain.TicketStatusInProgress
		t.AssignedTo = string(department)
		t.AssignedToName = assigneeName
		t.UpdatedAt = at
	})
}

func (r *memoryTicketRepository) Resolve(_ context.Context, id string, expected domain.TicketStatus, msg *domain.Message, at time.Time) error {
	assignMessageID(msg)
	return r.mutate(id, expected, func(t *domain.Ticket) {
		t.Status = domain.TicketStatusResolved
		t.Messages = append(t.Messages, msg.Clone())
		t.UpdatedAt = at
	})
}

func (r *memoryTicketRepository) mutate(id string, expected domain.TicketStatus, apply func(*domain.Ticket)) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	ticket, ok := r.tickets[id]
	if !ok {
		return ErrNotFound
	}
	if expected != "" && ticket.Status != expected {
		return ErrStatusMismatch
	}
	apply(ticket)
	return nil
}

func assignMessageID(msg *domain.Message) {
	if msg.ID == "" {
		msg.ID = uuid.NewString()
	}
}
