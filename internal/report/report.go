package report

import (
	"encoding/csv"
	"io"
	"sort"
	"strconv"
	"time"

	"github.com/spec-kit/helpdesk/internal/domain"
)

// TopProblemsLimit caps the frequent-problem ranking.
const TopProblemsLimit = 10

// DepartmentStats counts tickets addressed to one department.
type DepartmentStats struct {
	Department domain.Department           `json:"departamento"`
	Total      int                         `json:"total"`
	ByStatus   map[domain.TicketStatus]int `json:"por_status"`
}

// Problem is a ticket title and how many tickets used it.
type Problem struct {
	Title string `json:"titulo"`
	Count int    `json:"ocorrencias"`
}

// Summary is the report over tickets created inside [From, To].
type Summary struct {
	From        *time.Time        `json:"inicio,omitempty"`
	To          *time.Time        `json:"fim,omitempty"`
	Total       int               `json:"total"`
	Departments []DepartmentStats `json:"departamentos"`
	TopProblems []Problem         `json:"problemas_frequentes"`
}

// Build aggregates tickets created within the inclusive range. Nil bounds
// are open. Departments without tickets are omitted; the rest follow the
// fixed department order.
func Build(tickets []domain.Ticket, from, to *time.Time) Summary {
	summary := Summary{From: from, To: to, Departments: []DepartmentStats{}, TopProblems: []Problem{}}

	byDept := make(map[domain.Department]*DepartmentStats)
	counts := make(map[string]int)
	for _, ticket := range tickets {
		if from != nil && ticket.CreatedAt.Before(*from) {
			continue
		}
		if to != nil && ticket.CreatedAt.After(*to) {
			continue
		}
		summary.Total++

		stats, ok := byDept[ticket.Department]
		if !ok {
			stats = &DepartmentStats{Department: ticket.Department, ByStatus: make(map[domain.TicketStatus]int, len(domain.TicketStatuses))}
			for _, status := range domain.TicketStatuses {
				stats.ByStatus[status] = 0
			}
			byDept[ticket.Department] = stats
		}
		stats.Total++
		stats.ByStatus[ticket.Status]++
		counts[ticket.Title]++
	}

	for _, dept := range domain.Departments {
		if stats, ok := byDept[dept]; ok {
			summary.Departments = append(summary.Departments, *stats)
			delete(byDept, dept)
		}
	}
	// Legacy rows with a department outside the fixed set go last.
	var rest []domain.Department
	for dept := range byDept {
		rest = append(rest, dept)
	}
	sort.Slice(rest, func(i, j int) bool { return rest[i] < rest[j] })
	for _, dept := range rest {
		summary.Departments = append(summary.Departments, *byDept[dept])
	}

	for title, count := range counts {
		summary.TopProblems = append(summary.TopProblems, Problem{Title: title, Count: count})
	}
	sort.Slice(summary.TopProblems, func(i, j int) bool {
		a, b := summary.TopProblems[i], summary.TopProblems[j]
		if a.Count != b.Count {
			return a.Count > b.Count
		}
		return a.Title < b.Title
	})
	if len(summary.TopProblems) > TopProblemsLimit {
		summary.TopProblems = summary.TopProblems[:TopProblemsLimit]
	}
	return summary
}

var (
	departmentHeader = []string{
		"Departamento",
		"Total de Chamados",
		"Chamados Abertos",
		"Chamados em Atendimento",
		"Chamados Resolvidos",
		"Chamados Fechados",
	}
	problemHeader = []string{"Problema", "Ocorrências"}
)

// counts lines up with departmentHeader after the department column.
func (d DepartmentStats) counts() []int {
	return []int{
		d.Total,
		d.ByStatus[domain.TicketStatusOpen],
		d.ByStatus[domain.TicketStatusInProgress],
		d.ByStatus[domain.TicketStatusResolved],
		d.ByStatus[domain.TicketStatusClosed],
	}
}

// WriteCSV exports the department table, a blank line, then the problem ranking.
func WriteCSV(w io.Writer, summary Summary) error {
	out := csv.NewWriter(w)
	rows := [][]string{departmentHeader}
	for _, dept := range summary.Departments {
		row := []string{string(dept.Department)}
		for _, n := range dept.counts() {
			row = append(row, strconv.Itoa(n))
		}
		rows = append(rows, row)
	}
	rows = append(rows, []string{}, problemHeader)
	for _, problem := range summary.TopProblems {
		rows = append(rows, []string{problem.Title, strconv.Itoa(problem.Count)})
	}

	if err := out.WriteAll(rows); err != nil {
		return err
	}
	return out.Error()
}
