package acl

import (
	"context"
	"net/http"

	"github.com/jsamuelsen11/todo-gateway/internal/adapters/clients/acl/auth"
	domauth "github.com/jsamuelsen11/todo-gateway/internal/domain/auth"
	"github.com/jsamuelsen11/todo-gateway/internal/platform/httpclient"
	"github.com/jsamuelsen11/todo-gateway/internal/ports"
)

var _ ports.AuthClient = (*AuthClient)(nil)

// AuthClient implements [ports.AuthClient] over the backing API's /auth/
// endpoints.
type AuthClient struct {
	req *Requester
}

// NewAuthClient sends requests through client.
func NewAuthClient(client *httpclient.Client) *AuthClient {
	return &AuthClient{req: NewRequester(client)}
}

// Login calls POST /auth/login.
func (c *AuthClient) Login(ctx context.Context, creds domauth.Credentials) (*domauth.Session, error) {
	return c.session(ctx, "/auth/login", auth.ToLoginRequest(creds))
}

// Register calls POST /auth/register. The API answers 201 with a session.
func (c *AuthClient) Register(ctx context.Context, reg domauth.Registration) (*domauth.Session, error) {
	var dto auth.SessionDTO
	err := c.req.Do(ctx, Call{
		Method: http.MethodPost,
		Path:   "/auth/register",
		Body:   auth.ToRegisterRequest(reg),
		Want:   http.StatusCreated,
		Into:   &dto,
	})
	if err != nil {
		return nil, err
	}
	s := auth.ToDomainSession(dto)
	return &s, nil
}

// Logout calls POST /auth/logout with the caller's token.
func (c *AuthClient) Logout(ctx context.Context) error {
	return c.req.Do(ctx, Call{Method: http.MethodPost, Path: "/auth/logout", Want: http.StatusNoContent})
}

// CurrentUser calls GET /auth/user with the caller's token.
func (c *AuthClient) CurrentUser(ctx context.Context) (*domauth.User, error) {
	var dto auth.UserDTO
	if err := c.req.Do(ctx, Call{Method: http.MethodGet, Path: "/auth/user", Into: &dto}); err != nil {
		return nil, err
	}
	u := auth.ToDomainUser(dto)
	return &u, nil
}

func (c *AuthClient) session(ctx context.Context, path string, body any) (*domauth.Session, error) {
	var dto auth.SessionDTO
	if err := c.req.Do(ctx, Call{Method: http.MethodPost, Path: path, Body: body, Into: &dto}); err != nil {
		return nil, err
	}
	s := auth.ToDomainSession(dto)
	return &s, nil
}
