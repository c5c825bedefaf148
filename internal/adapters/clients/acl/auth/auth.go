// Package auth holds the backing API's authentication wire shapes.
package auth

import domauth "github.com/jsamuelsen11/todo-gateway/internal/domain/auth"

// UserDTO is the account object the backing API returns.
type UserDTO struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// SessionDTO is the body of a successful login or register.
type SessionDTO struct {
	User  UserDTO `json:"user"`
	Token string  `json:"token"`
}

// LoginRequestDTO is the body of POST /auth/login.
type LoginRequestDTO struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// RegisterRequestDTO is the body of POST /auth/register.
type RegisterRequestDTO struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// ToDomainUser converts a wire user.
func ToDomainUser(dto UserDTO) domauth.User {
	return domauth.User{ID: dto.ID, Username: dto.Username, Email: dto.Email}
}

// ToDomainSession converts a wire session.
func ToDomainSession(dto SessionDTO) domauth.Session {
	return domauth.Session{User: ToDomainUser(dto.User), Token: dto.Token}
}

// ToLoginRequest builds a login body.
func ToLoginRequest(c domauth.Credentials) LoginRequestDTO {
	return LoginRequestDTO{Username: c.Username, Password: c.Password}
}

// ToRegisterRequest builds a register body.
func ToRegisterRequest(r domauth.Registration) RegisterRequestDTO {
	return RegisterRequestDTO{Username: r.Username, Email: r.Email, Password: r.Password}
}
