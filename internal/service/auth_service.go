package service

import (
	"context"
	"errors"
	"net/mail"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/spec-kit/helpdesk/internal/auth"
	"github.com/spec-kit/helpdesk/internal/config"
	"github.com/spec-kit/helpdesk/internal/domain"
	"github.com/spec-kit/helpdesk/internal/repository"
	apperrors "github.com/spec-kit/helpdesk/pkg/util"
)

const minPasswordLength = 6

// AuthService coordinates login and account creation.
type AuthService struct {
	users      repository.UserRepository
	tokenMgr   *auth.TokenManager
	bcryptCost int
	nowFn      func() time.Time
	logger     *zap.Logger
}

// AuthDependencies encapsulates repo requirements for auth service.
type AuthDependencies struct {
	UserRepo     repository.UserRepository
	TokenManager *auth.TokenManager
	Logger       *zap.Logger
}

// CreateUserInput carries the admin form for a new employee.
type CreateUserInput struct {
	Name       string
	Email      string
	Password   string
	Phone      string
	Role       string
	Department string
}

// NewAuthService builds the service.
func NewAuthService(cfg config.AuthConfig, deps AuthDependencies) *AuthService {
	tokens := deps.TokenManager
	if tokens == nil {
		tokens = auth.NewTokenManager(cfg.JWTSecret, cfg.AccessTokenTTLMinutes)
	}
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AuthService{
		users:      deps.UserRepo,
		tokenMgr:   tokens,
		bcryptCost: cfg.BcryptCost,
		nowFn:      time.Now,
		logger:     logger,
	}
}

// Login authenticates an employee by email and password. Unknown emails and
// wrong passwords produce the same error.
func (s *AuthService) Login(ctx context.Context, email, password string) (*domain.User, string, time.Time, error) {
	invalid := apperrors.NewUnauthenticated("invalid credentials")
	if strings.TrimSpace(email) == "" || password == "" {
		return nil, "", time.Time{}, invalid
	}

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, "", time.Time{}, invalid
		}
		return nil, "", time.Time{}, apperrors.MapError(err)
	}
	if err := auth.ComparePassword(user.PasswordHash, password); err != nil {
		return nil, "", time.Time{}, invalid
	}

	token, exp, err := s.tokenMgr.GenerateToken(user.ID, user.Role)
	if err != nil {
		return nil, "", time.Time{}, apperrors.NewInternalError(err)
	}
	return user, token, exp, nil
}

// CreateUser registers a new employee with a hashed password.
func (s *AuthService) CreateUser(ctx context.Context, input CreateUserInput) (*domain.User, error) {
	invalid := map[string]any{}
	name := strings.TrimSpace(input.Name)
	if name == "" {
		invalid["nome"] = "required"
	}
	email := strings.ToLower(strings.TrimSpace(input.Email))
	if email == "" {
		invalid["email"] = "required"
	} else if _, err := mail.ParseAddress(email); err != nil {
		invalid["email"] = "invalid email"
	}
	if len(input.Password) < minPasswordLength {
		invalid["senha"] = "must have at least 6 characters"
	}
	role := domain.RoleUser
	if raw := strings.TrimSpace(input.Role); raw != "" {
		parsed, ok := domain.ParseRole(raw)
		if !ok {
			invalid["cargo"] = "must be admin or user"
		}
		role = parsed
	}
	department := domain.Department(strings.TrimSpace(input.Department))
	if !department.Valid() {
		invalid["departamento"] = "unknown department"
	}
	if len(invalid) > 0 {
		return nil, apperrors.NewValidationError("invalid user", invalid)
	}

	hash, err := auth.HashPassword(input.Password, s.bcryptCost)
	if err != nil {
		return nil, apperrors.NewInternalError(err)
	}

	user := &domain.User{
		Name:         name,
		Email:        email,
		Phone:        strings.TrimSpace(input.Phone),
		PasswordHash: hash,
		Role:         role,
		Department:   department,
		CreatedAt:    s.nowFn(),
	}
	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return nil, apperrors.NewConflict("email already registered", map[string]any{"email": email})
		}
		return nil, apperrors.MapError(err)
	}
	return user, nil
}

// ListUsers returns every registered employee ordered by name.
func (s *AuthService) ListUsers(ctx context.Context) ([]domain.User, error) {
	users, err := s.users.List(ctx)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return users, nil
}

// EnsureBootstrapAdmin creates the first IT admin when the email is not yet
// registered. It is a no-op when email or password is empty.
func (s *AuthService) EnsureBootstrapAdmin(ctx context.Context, cfg config.AuthConfig) error {
	if cfg.BootstrapAdminEmail == "" || cfg.BootstrapAdminPass == "" {
		return nil
	}
	if _, err := s.users.GetByEmail(ctx, cfg.BootstrapAdminEmail); err == nil {
		return nil
	} else if !errors.Is(err, repository.ErrNotFound) {
		return err
	}

	name := cfg.BootstrapAdminName
	if name == "" {
		name = "Administrador"
	}
	user, err := s.CreateUser(ctx, CreateUserInput{
		Name:       name,
		Email:      cfg.BootstrapAdminEmail,
		Password:   cfg.BootstrapAdminPass,
		Role:       string(domain.RoleAdmin),
		Department: string(domain.DepartmentIT),
	})
	if err != nil {
		if apperrors.HasCode(err, apperrors.CodeConflict) {
			return nil
		}
		return err
	}
	s.logger.Info("bootstrap admin created", zap.String("user_id", user.ID), zap.String("email", user.Email))
	return nil
}

// TokenManager exposes the underlying token manager for middleware usage.
func (s *AuthService) TokenManager() *auth.TokenManager {
	return s.tokenMgr
}
