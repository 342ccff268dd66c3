package auth

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/helpdesk/internal/domain"
	"github.com/spec-kit/helpdesk/internal/navigation"
	"github.com/spec-kit/helpdesk/internal/repository"
	apperrors "github.com/spec-kit/helpdesk/pkg/util"
)

// RequireAdmin ensures the token carries the admin role.
func RequireAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		principal, ok := PrincipalFromContext(c)
		if !ok {
			return apperrors.NewUnauthenticated("authentication required")
		}
		if !principal.IsAdmin() {
			return apperrors.NewForbidden("admin access required")
		}
		return c.Next()
	}
}

// LoadUser resolves the caller's user record for handlers that need
// the department or display name.
func LoadUser(users repository.UserRepository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if _, err := loadUser(c, users); err != nil {
			return err
		}
		return c.Next()
	}
}

// RequireScreen applies the View Router's access rule to an API route.
func RequireScreen(users repository.UserRepository, screen navigation.Screen) fiber.Handler {
	return func(c *fiber.Ctx) error {
		user, err := loadUser(c, users)
		if err != nil {
			return err
		}
		if !navigation.CanAccess(user, screen) {
			return apperrors.NewForbidden("access to " + string(screen) + " denied")
		}
		return c.Next()
	}
}

func loadUser(c *fiber.Ctx, users repository.UserRepository) (*domain.User, error) {
	if user, ok := UserFromContext(c); ok {
		return user, nil
	}
	principal, ok := PrincipalFromContext(c)
	if !ok {
		return nil, apperrors.NewUnauthenticated("authentication required")
	}
	user, err := users.GetByID(c.UserContext(), principal.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.NewForbidden("user no longer exists")
		}
		return nil, apperrors.MapError(err)
	}
	c.Locals(userKey, user)
	return user, nil
}
