package handlers

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/spec-kit/helpdesk/internal/report"
	"github.com/spec-kit/helpdesk/internal/service"
	"github.com/spec-kit/helpdesk/internal/ticketview"
	apperrors "github.com/spec-kit/helpdesk/pkg/util"
)

// ReportsHandler serves the admin reports panel.
type ReportsHandler struct {
	tickets *service.TicketService
	logger  *zap.Logger
	nowFn   func() time.Time
}

// NewReportsHandler constructs handler.
func NewReportsHandler(ticketService *service.TicketService, logger *zap.Logger) *ReportsHandler {
	return &ReportsHandler{tickets: ticketService, logger: logger, nowFn: time.Now}
}

// Summary GET /api/reports?inicio=&fim=.
func (h *ReportsHandler) Summary(c *fiber.Ctx) error {
	summary, err := h.build(c)
	if err != nil {
		return err
	}
	return c.JSON(summary)
}

// Export GET /api/reports/export?inicio=&fim=&formato= as an xlsx workbook,
// or CSV when formato=csv.
func (h *ReportsHandler) Export(c *fiber.Ctx) error {
	summary, err := h.build(c)
	if err != nil {
		return err
	}

	format := strings.ToLower(strings.TrimSpace(c.Query("formato", "xlsx")))
	var (
		buf         bytes.Buffer
		contentType string
	)
	switch format {
	case "xlsx":
		err = report.WriteXLSX(&buf, summary)
		contentType = report.XLSXContentType
	case "csv":
		err = report.WriteCSV(&buf, summary)
		contentType = "text/csv; charset=utf-8"
	default:
		return apperrors.NewValidationError("unsupported export format", map[string]any{"formato": format})
	}
	if err != nil {
		return apperrors.NewInternalError(err)
	}

	name := fmt.Sprintf("relatorio_chamados_%s.%s", h.nowFn().Format("2006-01-02"), format)
	c.Set(fiber.HeaderContentType, contentType)
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", name))
	h.logger.Info("report exported", zap.String("format", format), zap.Int("tickets", summary.Total))
	return c.Send(buf.Bytes())
}

func (h *ReportsHandler) build(c *fiber.Ctx) (report.Summary, error) {
	criteria, _, err := ticketview.ParseQuery(func(key string) string {
		if key == ticketview.ParamFrom || key == ticketview.ParamTo {
			return c.Query(key)
		}
		return ""
	})
	if err != nil {
		return report.Summary{}, queryError(err)
	}
	tickets, err := h.tickets.ListTickets(c.UserContext(), ticketview.Criteria{}, ticketview.Sort{})
	if err != nil {
		return report.Summary{}, err
	}
	return report.Build(tickets, criteria.From, criteria.To), nil
}
