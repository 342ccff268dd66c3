package dto

import (
	"time"

	"github.com/spec-kit/helpdesk/internal/domain"
)

// LoginRequest payload for login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"senha"`
}

// CreateUserRequest payload for the admin user form.
type CreateUserRequest struct {
	Name       string `json:"nome"`
	Email      string `json:"email"`
	Password   string `json:"senha"`
	Role       string `json:"cargo"`
	Department string `json:"departamento"`
	Phone      string `json:"telefone"`
}

// UserResponse never carries the password hash.
type UserResponse struct {
	ID         string            `json:"id"`
	Name       string            `json:"nome"`
	Email      string            `json:"email"`
	Role       domain.Role       `json:"cargo"`
	Department domain.Department `json:"departamento"`
	Phone      string            `json:"telefone,omitempty"`
}

// LoginResponse standard response for the login endpoint.
type LoginResponse struct {
	Token     string       `json:"token"`
	ExpiresAt time.Time    `json:"expiraEm"`
	User      UserResponse `json:"usuario"`
}

// NewUserResponse maps a domain user.
func NewUserResponse(user *domain.User) UserResponse {
	return UserResponse{
		ID:         user.ID,
		Name:       user.Name,
		Email:      user.Email,
		Role:       user.Role,
		Department: user.Department,
		Phone:      user.Phone,
	}
}

// NewUserList maps users to their public representation.
func NewUserList(users []domain.User) []UserResponse {
	out := make([]UserResponse, 0, len(users))
	for i := range users {
		out = append(out, NewUserResponse(&users[i]))
	}
	return out
}
