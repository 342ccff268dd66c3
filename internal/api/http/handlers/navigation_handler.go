package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/helpdesk/internal/api/dto"
	"github.com/spec-kit/helpdesk/internal/auth"
	"github.com/spec-kit/helpdesk/internal/navigation"
	apperrors "github.com/spec-kit/helpdesk/pkg/util"
)

// NavigationHandler tells the client which screen it lands on and what it may open next.
type NavigationHandler struct{}

// NewNavigationHandler constructs handler.
func NewNavigationHandler() *NavigationHandler {
	return &NavigationHandler{}
}

// Navigate GET /api/navigation?from=<screen>&to=<screen>. Without "to" the
// response describes "from" itself.
func (h *NavigationHandler) Navigate(c *fiber.Ctx) error {
	user, ok := auth.UserFromContext(c)
	if !ok {
		return apperrors.NewUnauthenticated("authentication required")
	}

	from := navigation.ScreenMain
	if raw := c.Query("from"); raw != "" {
		screen, ok := navigation.ParseScreen(raw)
		if !ok {
			return apperrors.NewValidationError("unknown screen", map[string]any{"from": raw})
		}
		from = screen
	}
	current := navigation.Navigate(user, from, from)
	if raw := c.Query("to"); raw != "" {
		screen, ok := navigation.ParseScreen(raw)
		if !ok {
			return apperrors.NewValidationError("unknown screen", map[string]any{"to": raw})
		}
		current = navigation.Navigate(user, current, screen)
	}

	resp := dto.NavigationResponse{
		Current: current,
		Screens: navigation.Visible(user, current),
	}
	if current != navigation.ScreenMain {
		resp.Parent = navigation.Parent(current)
	}
	return c.JSON(resp)
}
