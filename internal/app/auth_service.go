package app

import (
	"context"
	"log/slog"

	"github.com/jsamuelsen11/todo-gateway/internal/domain/auth"
	"github.com/jsamuelsen11/todo-gateway/internal/ports"
)

var _ ports.AuthService = (*AuthService)(nil)

// AuthService passes account operations through to the backing API, which
// owns users and tokens. It only checks that required fields are present.
type AuthService struct {
	client ports.AuthClient
	logger *slog.Logger
}

// NewAuthService creates an AuthService. A nil logger discards.
func NewAuthService(client ports.AuthClient, logger *slog.Logger) *AuthService {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &AuthService{client: client, logger: logger}
}

// Login exchanges credentials for a session.
func (s *AuthService) Login(ctx context.Context, creds auth.Credentials) (*auth.Session, error) {
	s.logger.InfoContext(ctx, "logging in", slog.String("username", creds.Username))

	if err := creds.Validate(); err != nil {
		return nil, err
	}

	sess, err := s.client.Login(ctx, creds)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to log in",
			slog.String("operation", "Login"),
			slog.String("username", creds.Username),
			slog.Any("error", err),
		)
		return nil, err
	}
	return sess, nil
}

// Register creates an account and returns its first session.
func (s *AuthService) Register(ctx context.Context, reg auth.Registration) (*auth.Session, error) {
	s.logger.InfoContext(ctx, "registering user", slog.String("username", reg.Username))

	if err := reg.Validate(); err != nil {
		return nil, err
	}

	sess, err := s.client.Register(ctx, reg)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to register user",
			slog.String("operation", "Register"),
			slog.String("username", reg.Username),
			slog.Any("error", err),
		)
		return nil, err
	}
	return sess, nil
}

// Logout ends the caller's session.
func (s *AuthService) Logout(ctx context.Context) error {
	s.logger.InfoContext(ctx, "logging out")

	if err := s.client.Logout(ctx); err != nil {
		s.logger.ErrorContext(ctx, "failed to log out",
			slog.String("operation", "Logout"),
			slog.Any("error", err),
		)
		return err
	}
	return nil
}

// CurrentUser returns the account behind the caller's token.
func (s *AuthService) CurrentUser(ctx context.Context) (*auth.User, error) {
	user, err := s.client.CurrentUser(ctx)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to fetch current user",
			slog.String("operation", "CurrentUser"),
			slog.Any("error", err),
		)
		return nil, err
	}
	return user, nil
}
