package ticketview

import (
	"fmt"
	"math/rand"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/helpdesk/internal/domain"
)

var base = time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)

func fixture() []domain.Ticket {
	return []domain.Ticket{
		{ID: "1", Title: "Impressora travada", Description: "papel preso", Status: domain.TicketStatusOpen, Department: domain.DepartmentIT, Priority: domain.TicketPriorityLow, CreatedAt: base},
		{ID: "2", Title: "Sem acesso ao ERP", Description: "senha expirada", Status: domain.TicketStatusInProgress, Department: domain.DepartmentIT, Priority: domain.TicketPriorityHigh, CreatedAt: base.Add(1 * time.Hour)},
		{ID: "3", Title: "Reembolso", Description: "nota fiscal", Status: domain.TicketStatusOpen, Department: domain.DepartmentFinance, Priority: domain.TicketPriorityMedium, CreatedAt: base.Add(2 * time.Hour)},
		{ID: "4", Title: "Monitor piscando", Description: "cabo HDMI", Status: domain.TicketStatusOpen, Department: domain.DepartmentIT, Priority: domain.TicketPriorityHigh, CreatedAt: base.Add(3 * time.Hour)},
		{ID: "5", Title: "Campanha", Description: "arte para impressora", Status: domain.TicketStatusResolved, Department: domain.DepartmentMarketing, Priority: domain.TicketPriorityMedium, CreatedAt: base.Add(4 * time.Hour)},
	}
}

func ids(tickets []domain.Ticket) []string {
	out := make([]string, len(tickets))
	for i, t := range tickets {
		out[i] = t.ID
	}
	return out
}

func TestViewDepartmentAndStatusKeepsInputOrder(t *testing.T) {
	got := View(fixture(), Criteria{Department: domain.DepartmentIT, Status: domain.TicketStatusOpen}, Sort{})

	if diff := cmp.Diff([]string{"1", "4"}, ids(got)); diff != "" {
		t.Fatalf("unexpected tickets (-want +got):\n%s", diff)
	}
}

func TestViewSearchIsCaseInsensitiveOverTitleAndDescription(t *testing.T) {
	got := View(fixture(), Criteria{Search: "IMPRESSORA"}, Sort{})
	assert.Equal(t, []string{"1", "5"}, ids(got))
}

func TestViewDateRangeIsInclusive(t *testing.T) {
	from := base.Add(1 * time.Hour)
	to := base.Add(3 * time.Hour)

	got := View(fixture(), Criteria{From: &from, To: &to}, Sort{})
	assert.Equal(t, []string{"2", "3", "4"}, ids(got))
}

func TestViewSortByPriorityDescIsStable(t *testing.T) {
	got := View(fixture(), Criteria{}, Sort{Field: SortPriority, Order: Desc})
	assert.Equal(t, []string{"2", "4", "3", "5", "1"}, ids(got))

	got = View(fixture(), Criteria{}, Sort{Field: SortPriority, Order: Asc})
	assert.Equal(t, []string{"1", "3", "5", "2", "4"}, ids(got))
}

func TestViewSortByCreatedAt(t *testing.T) {
	got := View(fixture(), Criteria{}, Sort{Field: SortCreatedAt, Order: Desc})
	assert.Equal(t, []string{"5", "4", "3", "2", "1"}, ids(got))

	got = View(fixture(), Criteria{}, Sort{Field: SortCreatedAt, Order: Asc})
	assert.Equal(t, []string{"1", "2", "3", "4", "5"}, ids(got))
}

func TestViewDoesNotMutateInputAndIsRepeatable(t *testing.T) {
	input := fixture()
	before := ids(input)

	first := View(input, Criteria{Search: "a"}, Sort{Field: SortPriority, Order: Desc})
	second := View(input, Criteria{Search: "a"}, Sort{Field: SortPriority, Order: Desc})

	assert.Equal(t, before, ids(input))
	assert.Equal(t, ids(first), ids(second))
}

// Randomized check: every returned ticket satisfies the criteria and every
// matching input ticket is returned.
func TestViewHasNoFalsePositivesOrNegatives(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	statuses := domain.TicketStatuses
	priorities := []domain.TicketPriority{domain.TicketPriorityLow, domain.TicketPriorityMedium, domain.TicketPriorityHigh}
	words := []string{"rede", "impressora", "email", "vpn"}

	for round := 0; round < 50; round++ {
		tickets := make([]domain.Ticket, 30)
		for i := range tickets {
			tickets[i] = domain.Ticket{
				ID:          fmt.Sprintf("%d-%d", round, i),
				Title:       words[rng.Intn(len(words))],
				Description: words[rng.Intn(len(words))],
				Status:      statuses[rng.Intn(len(statuses))],
				Department:  domain.Departments[rng.Intn(len(domain.Departments))],
				Priority:    priorities[rng.Intn(len(priorities))],
				CreatedAt:   base.Add(time.Duration(rng.Intn(240)) * time.Hour),
			}
		}
		from := base.Add(time.Duration(rng.Intn(120)) * time.Hour)
		criteria := Criteria{
			Search:   words[rng.Intn(len(words))],
			Status:   statuses[rng.Intn(len(statuses))],
			Priority: priorities[rng.Intn(len(priorities))],
			From:     &from,
		}
		if rng.Intn(2) == 0 {
			criteria.Search = ""
		}

		got := View(tickets, criteria, Sort{Field: SortPriority, Order: Desc})

		returned := make(map[string]bool, len(got))
		for _, ticket := range got {
			require.True(t, criteria.Matches(ticket), "false positive %s", ticket.ID)
			returned[ticket.ID] = true
		}
		for _, ticket := range tickets {
			if criteria.Matches(ticket) {
				require.True(t, returned[ticket.ID], "false negative %s", ticket.ID)
			}
		}
		for i := 1; i < len(got); i++ {
			require.GreaterOrEqual(t, got[i-1].Priority.Weight(), got[i].Priority.Weight())
		}
	}
}

func TestParseQuery(t *testing.T) {
	params := map[string]string{
		"q":            "vpn",
		"status":       "aberto",
		"departamento": "TI",
		"prioridade":   "alta",
		"inicio":       "2024-03-01",
		"fim":          "2024-03-01",
		"ordenar":      "prioridade",
		"ordem":        "asc",
	}
	criteria, s, err := ParseQuery(func(k string) string { return params[k] })
	require.NoError(t, err)

	assert.Equal(t, "vpn", criteria.Search)
	assert.Equal(t, domain.TicketStatusOpen, criteria.Status)
	assert.Equal(t, domain.DepartmentIT, criteria.Department)
	assert.Equal(t, domain.TicketPriorityHigh, criteria.Priority)
	require.NotNil(t, criteria.From)
	require.NotNil(t, criteria.To)
	assert.True(t, criteria.To.After(base.Add(14*time.Hour)), "date-only end covers the whole day")
	assert.Equal(t, Sort{Field: SortPriority, Order: Asc}, s)
}

func TestParseQueryRejectsUnknownValues(t *testing.T) {
	for _, key := range []string{"status", "departamento", "prioridade", "inicio", "fim", "ordenar", "ordem"} {
		t.Run(key, func(t *testing.T) {
			_, _, err := ParseQuery(func(k string) string {
				if k == key {
					return "???"
				}
				return ""
			})
			var fieldErr *FieldError
			require.ErrorAs(t, err, &fieldErr)
			assert.Equal(t, key, fieldErr.Field)
		})
	}
}
