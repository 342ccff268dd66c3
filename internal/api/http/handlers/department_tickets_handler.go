package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/helpdesk/internal/api/dto"
	"github.com/spec-kit/helpdesk/internal/auth"
	"github.com/spec-kit/helpdesk/internal/service"
	apperrors "github.com/spec-kit/helpdesk/pkg/util"
)

// DepartmentTicketsHandler serves the department queue: claim and finish.
type DepartmentTicketsHandler struct {
	service *service.TicketService
}

// NewDepartmentTicketsHandler constructs handler.
func NewDepartmentTicketsHandler(ticketService *service.TicketService) *DepartmentTicketsHandler {
	return &DepartmentTicketsHandler{service: ticketService}
}

// ListOpen GET /api/tickets/departamento.
func (h *DepartmentTicketsHandler) ListOpen(c *fiber.Ctx) error {
	user, ok := auth.UserFromContext(c)
	if !ok {
		return apperrors.NewUnauthenticated("authentication required")
	}
	tickets, err := h.service.ListDepartmentTickets(c.UserContext(), user)
	if err != nil {
		return err
	}
	return c.JSON(dto.NewTicketList(tickets))
}

// Assign POST /api/tickets/:id/atribuir.
func (h *DepartmentTicketsHandler) Assign(c *fiber.Ctx) error {
	user, ok := auth.UserFromContext(c)
	if !ok {
		return apperrors.NewUnauthenticated("authentication required")
	}
	ticket, err := h.service.Assign(c.UserContext(), user, c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(dto.NewTicketResponse(ticket))
}

// Finish POST /api/tickets/:id/finalizar.
func (h *DepartmentTicketsHandler) Finish(c *fiber.Ctx) error {
	user, ok := auth.UserFromContext(c)
	if !ok {
		return apperrors.NewUnauthenticated("authentication required")
	}
	ticket, err := h.service.FinishTicket(c.UserContext(), user, c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(dto.NewTicketResponse(ticket))
}
