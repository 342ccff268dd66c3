package repository

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/spec-kit/helpdesk/internal/domain"
)

var (
	// ErrNotFound is returned when the requested record does not exist.
	ErrNotFound = errors.New("record not found")
	// ErrDuplicateEmail is returned when a user email is already taken.
	ErrDuplicateEmail = errors.New("email already registered")
	// ErrDuplicateID is returned when a ticket id is already stored.
	ErrDuplicateID = errors.New("record id already exists")
	// ErrStatusMismatch is returned when a ticket no longer has the status
	// the caller based its change on.
	ErrStatusMismatch = errors.New("ticket status changed")
)

// TicketFilter is the equality pre-filter applied by the store.
// Zero-valued fields are ignored.
type TicketFilter struct {
	Status     domain.TicketStatus
	Department domain.Department
	CreatedBy  string
}

// TicketRepository owns tickets and their conversations. Returned tickets
// are snapshots; mutating them does not change stored state.
//
// Status-changing calls take the status the caller expects the ticket to
// have. The check and the write are one atomic step; a mismatch returns
// ErrStatusMismatch and changes nothing. An empty expected status skips
// the check.
type TicketRepository interface {
	Create(ctx context.Context, ticket *domain.Ticket) error
	GetByID(ctx context.Context, id string) (*domain.Ticket, error)
	List(ctx context.Context, filter TicketFilter) ([]domain.Ticket, error)
	UpdateStatus(ctx context.Context, id string, expected, status domain.TicketStatus, at time.Time) error
	AppendMessage(ctx context.Context, id string, msg *domain.Message) error
	Assign(ctx context.Context, id string, expected domain.TicketStatus, department domain.Department, assigneeName string, at time.Time) error
	// Resolve marks the ticket resolved and appends msg as one atomic step.
	Resolve(ctx context.Context, id string, expected domain.TicketStatus, msg *domain.Message, at time.Time) error
}

// UserRepository defines persistence access for employees.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id string) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	// List returns every user ordered by name, then email.
	List(ctx context.Context) ([]domain.User, error)
}

// querier is satisfied by both *pgxpool.Pool and pgx.Tx.
type querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

func mapNoRows(err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}
	return err
}

func (f TicketFilter) matches(t *domain.Ticket) bool {
	if f.Status != "" && t.Status != f.Status {
		return false
	}
	if f.Department != "" && t.Department != f.Department {
		return false
	}
	if f.CreatedBy != "" && t.CreatedBy != f.CreatedBy {
		return false
	}
	return true
}
