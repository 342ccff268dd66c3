package auth

import (
	"context"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/spec-kit/helpdesk/internal/domain"
	"github.com/spec-kit/helpdesk/internal/navigation"
	"github.com/spec-kit/helpdesk/internal/repository"
	apperrors "github.com/spec-kit/helpdesk/pkg/util"
)

func TestTokenRoundTrip(t *testing.T) {
	tm := NewTokenManager("secret", 30)
	token, exp, err := tm.GenerateToken("u-1", domain.RoleAdmin)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(30*time.Minute), exp, 5*time.Second)

	claims, err := tm.ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, "u-1", claims.UserID)
	assert.Equal(t, domain.RoleAdmin, claims.Role)
}

func TestTokenRejectsWrongSecretAndExpiry(t *testing.T) {
	issuer := NewTokenManager("secret", 30)
	token, _, err := issuer.GenerateToken("u-1", domain.RoleUser)
	require.NoError(t, err)

	_, err = NewTokenManager("other", 30).ParseToken(token)
	assert.Error(t, err)

	later := NewTokenManager("secret", 30)
	later.nowFn = func() time.Time { return time.Now().Add(time.Hour) }
	_, err = later.ParseToken(token)
	assert.Error(t, err)
}

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("segredo", bcrypt.MinCost)
	require.NoError(t, err)
	assert.NotEqual(t, "segredo", hash)
	assert.NoError(t, ComparePassword(hash, "segredo"))
	assert.Error(t, ComparePassword(hash, "outra"))
}

func newAuthApp(tm *TokenManager, guards ...fiber.Handler) *fiber.App {
	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			domainErr := apperrors.ToDomainError(err)
			return c.Status(domainErr.HTTPStatus).SendString(domainErr.Code)
		},
	})
	handlers := append([]fiber.Handler{NewAuthMiddleware(tm).Handle}, guards...)
	handlers = append(handlers, func(c *fiber.Ctx) error {
		principal, ok := PrincipalFromContext(c)
		if !ok {
			return apperrors.NewInternalError(nil)
		}
		name := principal.UserID
		if user, ok := UserFromContext(c); ok {
			name = user.Name
		}
		return c.SendString(name)
	})
	app.Get("/", handlers...)
	return app
}

func call(t *testing.T, app *fiber.App, header string) (int, string) {
	t.Helper()
	req := httptest.NewRequest(fiber.MethodGet, "/", nil)
	if header != "" {
		req.Header.Set(fiber.HeaderAuthorization, header)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, string(body)
}

func TestAuthMiddleware(t *testing.T) {
	tm := NewTokenManager("secret", 30)
	app := newAuthApp(tm)
	token, _, err := tm.GenerateToken("u-7", domain.RoleUser)
	require.NoError(t, err)

	cases := []struct {
		name   string
		header string
		status int
		body   string
	}{
		{"missing header", "", fiber.StatusUnauthorized, apperrors.CodeUnauthenticated},
		{"wrong scheme", "Basic abc", fiber.StatusUnauthorized, apperrors.CodeUnauthenticated},
		{"empty bearer", "Bearer ", fiber.StatusUnauthorized, apperrors.CodeUnauthenticated},
		{"garbage token", "Bearer abc.def.ghi", fiber.StatusForbidden, apperrors.CodeForbidden},
		{"valid token", "Bearer " + token, fiber.StatusOK, "u-7"},
		{"lowercase scheme", "bearer " + token, fiber.StatusOK, "u-7"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			status, body := call(t, app, tc.header)
			assert.Equal(t, tc.status, status)
			assert.Equal(t, tc.body, body)
		})
	}
}

func TestRequireAdmin(t *testing.T) {
	tm := NewTokenManager("secret", 30)
	app := newAuthApp(tm, RequireAdmin())

	userToken, _, _ := tm.GenerateToken("u-1", domain.RoleUser)
	status, _ := call(t, app, "Bearer "+userToken)
	assert.Equal(t, fiber.StatusForbidden, status)

	adminToken, _, _ := tm.GenerateToken("u-2", domain.RoleAdmin)
	status, body := call(t, app, "Bearer "+adminToken)
	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, "u-2", body)
}

func TestRequireScreenAndLoadUser(t *testing.T) {
	ctx := context.Background()
	users := repository.NewMemoryUserRepository()
	itAdmin := &domain.User{Name: "Admin TI", Email: "ti@empresa.com", Role: domain.RoleAdmin, Department: domain.DepartmentIT}
	mktAdmin := &domain.User{Name: "Admin Mkt", Email: "mkt@empresa.com", Role: domain.RoleAdmin, Department: domain.DepartmentMarketing}
	require.NoError(t, users.Create(ctx, itAdmin))
	require.NoError(t, users.Create(ctx, mktAdmin))

	tm := NewTokenManager("secret", 30)
	reports := newAuthApp(tm, RequireScreen(users, navigation.ScreenReports))

	token, _, _ := tm.GenerateToken(itAdmin.ID, itAdmin.Role)
	status, body := call(t, reports, "Bearer "+token)
	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, "Admin TI", body)

	token, _, _ = tm.GenerateToken(mktAdmin.ID, mktAdmin.Role)
	status, _ = call(t, reports, "Bearer "+token)
	assert.Equal(t, fiber.StatusForbidden, status)

	token, _, _ = tm.GenerateToken("ghost", domain.RoleAdmin)
	status, _ = call(t, reports, "Bearer "+token)
	assert.Equal(t, fiber.StatusForbidden, status)

	loaded := newAuthApp(tm, LoadUser(users))
	token, _, _ = tm.GenerateToken(mktAdmin.ID, mktAdmin.Role)
	status, body = call(t, loaded, "Bearer "+token)
	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, "Admin Mkt", body)
}
