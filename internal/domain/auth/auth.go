// Package auth holds the account types exchanged with the backing API's
// authentication endpoints.
package auth

import (
	"strings"

	"github.com/jsamuelsen11/todo-gateway/internal/domain"
)

// Field names used in validation errors.
const (
	FieldUsername = "username"
	FieldEmail    = "email"
	FieldPassword = "password"
)

// User is the account behind a session.
type User struct {
	ID       int64
	Username string
	Email    string
}

// Session is a signed-in user and the bearer token that represents them.
type Session struct {
	User  User
	Token string
}

// Credentials log an existing user in.
type Credentials struct {
	Username string
	Password string
}

// Validate reports missing fields. Password rules belong to the backing API.
func (c Credentials) Validate() error {
	var errs []domain.FieldError
	if strings.TrimSpace(c.Username) == "" {
		errs = append(errs, domain.Required(FieldUsername))
	}
	if c.Password == "" {
		errs = append(errs, domain.Required(FieldPassword))
	}
	return domain.NewValidationError(errs)
}

// Registration creates a new account.
type Registration struct {
	Username string
	Email    string
	Password string
}

// Validate reports missing fields and an email without "@".
func (r Registration) Validate() error {
	var errs []domain.FieldError
	if strings.TrimSpace(r.Username) == "" {
		errs = append(errs, domain.Required(FieldUsername))
	}
	switch email := strings.TrimSpace(r.Email); {
	case email == "":
		errs = append(errs, domain.Required(FieldEmail))
	case !strings.Contains(email, "@"):
		errs = append(errs, domain.InvalidFormat(FieldEmail))
	}
	if r.Password == "" {
		errs = append(errs, domain.Required(FieldPassword))
	}
	return domain.NewValidationError(errs)
}
