// Package ticketview filters and orders ticket snapshots for display.
// Everything here is pure: inputs are never mutated and equal inputs give
// equal outputs.
package ticketview

import (
	"sort"
	"strings"
	"time"

	"github.com/spec-kit/helpdesk/internal/domain"
)

// Criteria are AND-combined; zero values match everything.
type Criteria struct {
	Search     string
	Status     domain.TicketStatus
	Department domain.Department
	Priority   domain.TicketPriority
	From       *time.Time
	To         *time.Time
}

// SortField selects the ordering key.
type SortField string

const (
	SortNone      SortField = ""
	SortCreatedAt SortField = "created_at"
	SortPriority  SortField = "priority"
)

// SortOrder is ascending or descending.
type SortOrder string

const (
	Asc  SortOrder = "asc"
	Desc SortOrder = "desc"
)

// Sort describes the requested ordering.
type Sort struct {
	Field SortField
	Order SortOrder
}

// View returns the tickets matching criteria, ordered by s.
func View(tickets []domain.Ticket, criteria Criteria, s Sort) []domain.Ticket {
	search := strings.ToLower(strings.TrimSpace(criteria.Search))

	out := make([]domain.Ticket, 0, len(tickets))
	for i := range tickets {
		if criteria.matches(&tickets[i], search) {
			out = append(out, tickets[i])
		}
	}

	less := s.less()
	if less != nil {
		sort.SliceStable(out, func(i, j int) bool { return less(&out[i], &out[j]) })
	}
	return out
}

// Matches reports whether one ticket satisfies every predicate.
func (c Criteria) Matches(ticket domain.Ticket) bool {
	return c.matches(&ticket, strings.ToLower(strings.TrimSpace(c.Search)))
}

func (c Criteria) matches(t *domain.Ticket, search string) bool {
	if search != "" &&
		!strings.Contains(strings.ToLower(t.Title), search) &&
		!strings.Contains(strings.ToLower(t.Description), search) {
		return false
	}
	if c.Status != "" && t.Status != c.Status {
		return false
	}
	if c.Department != "" && t.Department != c.Department {
		return false
	}
	if c.Priority != "" && t.Priority != c.Priority {
		return false
	}
	if c.From != nil && t.CreatedAt.Before(*c.From) {
		return false
	}
	if c.To != nil && t.CreatedAt.After(*c.To) {
		return false
	}
	return true
}

func (s Sort) less() func(a, b *domain.Ticket) bool {
	desc := s.Order != Asc
	switch s.Field {
	case SortCreatedAt:
		if desc {
			return func(a, b *domain.Ticket) bool { return a.CreatedAt.After(b.CreatedAt) }
		}
		return func(a, b *domain.Ticket) bool { return a.CreatedAt.Before(b.CreatedAt) }
	case SortPriority:
		if desc {
			return func(a, b *domain.Ticket) bool { return a.Priority.Weight() > b.Priority.Weight() }
		}
		return func(a, b *domain.Ticket) bool { return a.Priority.Weight() < b.Priority.Weight() }
	default:
		return nil
	}
}
