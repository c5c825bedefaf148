package app

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/mock"

	"github.com/jsamuelsen11/todo-gateway/internal/domain"
	"github.com/jsamuelsen11/todo-gateway/internal/domain/auth"
	"github.com/jsamuelsen11/todo-gateway/mocks"
)

func aliceSession() *auth.Session {
	return &auth.Session{
		User:  auth.User{ID: 7, Username: "alice", Email: "alice@example.com"},
		Token: "jwt",
	}
}

func TestAuthService_Login(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		creds     auth.Credentials
		setupMock func(*mocks.MockAuthClient)
		wantErr   error
	}{
		{
			name:  "returns session",
			creds: auth.Credentials{Username: "alice", Password: "pw"},
			setupMock: func(m *mocks.MockAuthClient) {
				m.EXPECT().Login(mock.Anything, auth.Credentials{Username: "alice", Password: "pw"}).
					Return(aliceSession(), nil)
			},
		},
		{
			name:      "missing password never reaches the API",
			creds:     auth.Credentials{Username: "alice"},
			setupMock: func(*mocks.MockAuthClient) {},
			wantErr:   domain.ErrValidation,
		},
		{
			name:  "bad credentials",
			creds: auth.Credentials{Username: "alice", Password: "nope"},
			setupMock: func(m *mocks.MockAuthClient) {
				m.EXPECT().Login(mock.Anything, mock.Anything).Return(nil, domain.ErrUnauthorized)
			},
			wantErr: domain.ErrUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			client := mocks.NewMockAuthClient(t)
			tt.setupMock(client)
			svc := NewAuthService(client, discardLogger())

			got, err := svc.Login(context.Background(), tt.creds)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("Login() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Login() error = %v", err)
			}
			if got.Token != "jwt" {
				t.Errorf("Token = %q, want %q", got.Token, "jwt")
			}
		})
	}
}

func TestAuthService_Register(t *testing.T) {
	t.Parallel()

	t.Run("rejects an email without @", func(t *testing.T) {
		t.Parallel()
		svc := NewAuthService(mocks.NewMockAuthClient(t), discardLogger())

		_, err := svc.Register(context.Background(), auth.Registration{
			Username: "alice", Email: "alice.example.com", Password: "pw",
		})

		var verr *domain.ValidationError
		if !errors.As(err, &verr) {
			t.Fatalf("Register() error = %v, want *ValidationError", err)
		}
		if len(verr.Errors) != 1 || verr.Errors[0] != domain.InvalidFormat(auth.FieldEmail) {
			t.Errorf("Errors = %v, want [email: invalid_format]", verr.Errors)
		}
	})

	t.Run("returns session", func(t *testing.T) {
		t.Parallel()
		client := mocks.NewMockAuthClient(t)
		reg := auth.Registration{Username: "alice", Email: "alice@example.com", Password: "pw"}
		client.EXPECT().Register(mock.Anything, reg).Return(aliceSession(), nil)
		svc := NewAuthService(client, discardLogger())

		got, err := svc.Register(context.Background(), reg)
		if err != nil {
			t.Fatalf("Register() error = %v", err)
		}
		if got.User.ID != 7 {
			t.Errorf("User.ID = %d, want 7", got.User.ID)
		}
	})
}

func TestAuthService_LogoutAndCurrentUser(t *testing.T) {
	t.Parallel()

	client := mocks.NewMockAuthClient(t)
	client.EXPECT().CurrentUser(mock.Anything).Return(&aliceSession().User, nil)
	client.EXPECT().Logout(mock.Anything).Return(domain.ErrUnauthorized)
	svc := NewAuthService(client, discardLogger())

	user, err := svc.CurrentUser(context.Background())
	if err != nil {
		t.Fatalf("CurrentUser() error = %v", err)
	}
	if user.Username != "alice" {
		t.Errorf("Username = %q, want %q", user.Username, "alice")
	}

	if err := svc.Logout(context.Background()); !errors.Is(err, domain.ErrUnauthorized) {
		t.Errorf("Logout() error = %v, want ErrUnauthorized", err)
	}
}
