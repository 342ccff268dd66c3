package ticketview

import (
	"fmt"
	"strings"
	"time"

	"github.com/spec-kit/helpdesk/internal/domain"
)

const dateOnly = "2006-01-02"

// Query parameter names accepted by ParseQuery.
const (
	ParamSearch     = "q"
	ParamStatus     = "status"
	ParamDepartment = "departamento"
	ParamPriority   = "prioridade"
	ParamFrom       = "inicio"
	ParamTo         = "fim"
	ParamSortField  = "ordenar"
	ParamSortOrder  = "ordem"
)

// FieldError names the query parameter that could not be parsed.
type FieldError struct {
	Field string
	Value string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("invalid %s: %q", e.Field, e.Value)
}

// ParseQuery builds criteria and sort from query parameters read via get.
// A date-only "fim" covers the whole day.
func ParseQuery(get func(key string) string) (Criteria, Sort, error) {
	var c Criteria
	c.Search = strings.TrimSpace(get(ParamSearch))

	if raw := strings.TrimSpace(get(ParamStatus)); raw != "" {
		status, ok := domain.ParseTicketStatus(raw)
		if !ok {
			return Criteria{}, Sort{}, &FieldError{Field: ParamStatus, Value: raw}
		}
		c.Status = status
	}
	if raw := strings.TrimSpace(get(ParamDepartment)); raw != "" {
		dept := domain.Department(raw)
		if !dept.Valid() {
			return Criteria{}, Sort{}, &FieldError{Field: ParamDepartment, Value: raw}
		}
		c.Department = dept
	}
	if raw := strings.TrimSpace(get(ParamPriority)); raw != "" {
		priority, ok := domain.ParseTicketPriority(raw)
		if !ok {
			return Criteria{}, Sort{}, &FieldError{Field: ParamPriority, Value: raw}
		}
		c.Priority = priority
	}
	if raw := strings.TrimSpace(get(ParamFrom)); raw != "" {
		from, _, err := parseDate(raw)
		if err != nil {
			return Criteria{}, Sort{}, &FieldError{Field: ParamFrom, Value: raw}
		}
		c.From = &from
	}
	if raw := strings.TrimSpace(get(ParamTo)); raw != "" {
		to, wholeDay, err := parseDate(raw)
		if err != nil {
			return Criteria{}, Sort{}, &FieldError{Field: ParamTo, Value: raw}
		}
		if wholeDay {
			to = to.Add(24*time.Hour - time.Nanosecond)
		}
		c.To = &to
	}

	s, err := parseSort(get(ParamSortField), get(ParamSortOrder))
	if err != nil {
		return Criteria{}, Sort{}, err
	}
	return c, s, nil
}

func parseSort(field, order string) (Sort, error) {
	var s Sort
	switch strings.ToLower(strings.TrimSpace(field)) {
	case "":
		s.Field = SortNone
	case "created_at", "criadoem", "data":
		s.Field = SortCreatedAt
	case "priority", "prioridade":
		s.Field = SortPriority
	default:
		return Sort{}, &FieldError{Field: ParamSortField, Value: field}
	}
	switch strings.ToLower(strings.TrimSpace(order)) {
	case "", "desc":
		s.Order = Desc
	case "asc":
		s.Order = Asc
	default:
		return Sort{}, &FieldError{Field: ParamSortOrder, Value: order}
	}
	return s, nil
}

func parseDate(raw string) (time.Time, bool, error) {
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, false, nil
	}
	t, err := time.Parse(dateOnly, raw)
	if err != nil {
		return time.Time{}, false, err
	}
	return t, true, nil
}
