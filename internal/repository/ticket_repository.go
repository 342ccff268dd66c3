package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/helpdesk/internal/domain"
)

const ticketColumns = `
        t.id, t.title, t.description, t.priority, t.status, t.department,
        t.created_by, COALESCE(u.name, ''), COALESCE(u.department, ''),
        t.assigned_to, t.assigned_to_name, t.created_at, t.updated_at`

type ticketRepository struct {
	pool *pgxpool.Pool
}

// NewTicketRepository instantiates the Postgres-backed ticket store.
func NewTicketRepository(pool *pgxpool.Pool) TicketRepository {
	return &ticketRepository{pool: pool}
}

func (r *ticketRepository) Create(ctx context.Context, ticket *domain.Ticket) error {
	if ticket.ID == "" {
		ticket.ID = uuid.NewString()
	}
	const query = `
        INSERT INTO tickets (id, title, description, priority, status, department, created_by,
                             assigned_to, assigned_to_name, created_at, updated_at)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11)`
	return pgx.BeginFunc(ctx, r.pool, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, query,
			ticket.ID,
			ticket.Title,
			ticket.Description,
			ticket.Priority,
			ticket.Status,
			ticket.Department,
			ticket.CreatedBy,
			ticket.AssignedTo,
			ticket.AssignedToName,
			ticket.CreatedAt,
			ticket.UpdatedAt,
		); err != nil {
			var pgErr *pgconn.PgError
			if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
				return ErrDuplicateID
			}
			return err
		}
		return insertTicketImages(ctx, tx, ticket.ID, ticket.AttachmentURLs)
	})
}

func (r *ticketRepository) GetByID(ctx context.Context, id string) (*domain.Ticket, error) {
	query := `SELECT ` + ticketColumns + `
        FROM tickets t LEFT JOIN users u ON u.id = t.created_by
        WHERE t.id=$1`

	var ticket domain.Ticket
	if err := scanTicket(r.pool.QueryRow(ctx, query, id), &ticket); err != nil {
		return nil, mapNoRows(err)
	}
	tickets := []domain.Ticket{ticket}
	if err := r.hydrate(ctx, tickets); err != nil {
		return nil, err
	}
	return &tickets[0], nil
}

func (r *ticketRepository) List(ctx context.Context, filter TicketFilter) ([]domain.Ticket, error) {
	base := `SELECT ` + ticketColumns + `
        FROM tickets t LEFT JOIN users u ON u.id = t.created_by`
	clauses := []string{"1=1"}
	args := []any{}

	if filter.Status != "" {
		args = append(args, filter.Status)
		clauses = append(clauses, fmt.Sprintf("t.status = $%d", len(args)))
	}
	if filter.Department != "" {
		args = append(args, filter.Department)
		clauses = append(clauses, fmt.Sprintf("t.department = $%d", len(args)))
	}
	if filter.CreatedBy != "" {
		args = append(args, filter.CreatedBy)
		clauses = append(clauses, fmt.Sprintf("t.created_by = $%d", len(args)))
	}

	query := base + " WHERE " + strings.Join(clauses, " AND ") + " ORDER BY t.created_at DESC, t.seq DESC"

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := []domain.Ticket{}
	for rows.Next() {
		var ticket domain.Ticket
		if err := scanTicket(rows, &ticket); err != nil {
			return nil, err
		}
		result = append(result, ticket)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if err := r.hydrate(ctx, result); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *ticketRepository) UpdateStatus(ctx context.Context, id string, expected, status domain.TicketStatus, at time.Time) error {
	const query = `UPDATE tickets SET status=$1, updated_at=$2 WHERE id=$3` + statusGuard4
	return execGuarded(ctx, r.pool, id, query, status, at, id, expected)
}

func (r *ticketRepository) AppendMessage(ctx context.Context, id string, msg *domain.Message) error {
	return pgx.BeginFunc(ctx, r.pool, func(tx pgx.Tx) error {
		const touch = `UPDATE tickets SET updated_at=$1 WHERE id=$2`
		if err := execOne(ctx, tx, touch, msg.Timestamp, id); err != nil {
			return err
		}
		return insertMessage(ctx, tx, id, msg)
	})
}

func (r *ticketRepository) Assign(ctx context.Context, id string, expected domain.TicketStatus, department domain.Department, assigneeName string, at time.Time) error {
	const query = `
        UPDATE tickets SET status=$1, assigned_to=$2, assigned_to_name=$3, updated_at=$4
        WHERE id=$5 AND ($6::text = '' OR status = $6)`
	return execGuarded(ctx, r.pool, id, query, domain.TicketStatusInProgress, department, assigneeName, at, id, expected)
}

func (r *ticketRepository) Resolve(ctx context.Context, id string, expected domain.TicketStatus, msg *domain.Message, at time.Time) error {
	return pgx.BeginFunc(ctx, r.pool, func(tx pgx.Tx) error {
		const query = `UPDATE tickets SET status=$1, updated_at=$2 WHERE id=$3` + statusGuard4
		if err := execGuarded(ctx, tx, id, query, domain.TicketStatusResolved, at, id, expected); err != nil {
			return err
		}
		return insertMessage(ctx, tx, id, msg)
	})
}

// hydrate loads images and conversations for every ticket in one round trip each.
func (r *ticketRepository) hydrate(ctx context.Context, tickets []domain.Ticket) error {
	if len(tickets) == 0 {
		return nil
	}
	ids := make([]string, len(tickets))
	for i := range tickets {
		ids[i] = tickets[i].ID
	}

	images, err := loadTicketImages(ctx, r.pool, ids)
	if err != nil {
		return err
	}
	messages, err := loadMessages(ctx, r.pool, ids)
	if err != nil {
		return err
	}
	for i := range tickets {
		tickets[i].AttachmentURLs = images[tickets[i].ID]
		tickets[i].Messages = messages[tickets[i].ID]
		if tickets[i].Messages == nil {
			tickets[i].Messages = []domain.Message{}
		}
	}
	return nil
}

func scanTicket(row pgx.Row, ticket *domain.Ticket) error {
	return row.Scan(
		&ticket.ID,
		&ticket.Title,
		&ticket.Description,
		&ticket.Priority,
		&ticket.Status,
		&ticket.Department,
		&ticket.CreatedBy,
		&ticket.CreatedByName,
		&ticket.CreatedByDepartment,
		&ticket.AssignedTo,
		&ticket.AssignedToName,
		&ticket.CreatedAt,
		&ticket.UpdatedAt,
	)
}

// statusGuard4 restricts an update to rows still holding the expected
// status passed as $4; an empty value disables it.
const statusGuard4 = ` AND ($4::text = '' OR status = $4)`

// execGuarded runs a status-guarded update. When no row changes it tells
// a missing ticket apart from one whose status moved on.
func execGuarded(ctx context.Context, q querier, id, query string, args ...any) error {
	cmd, err := q.Exec(ctx, query, args...)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() > 0 {
		return nil
	}
	var exists bool
	if err := q.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM tickets WHERE id=$1)`, id).Scan(&exists); err != nil {
		return err
	}
	if !exists {
		return ErrNotFound
	}
	return ErrStatusMismatch
}

func execOne(ctx context.Context, q querier, query string, args ...any) error {
	cmd, err := q.Exec(ctx, query, args...)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
