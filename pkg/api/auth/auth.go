// Package auth handles the session lifecycle. Login makes the server set
// the session cookie; logout ends the server session.
package auth

import (
	"context"
	"fmt"
	"strings"

	"boardkit/pkg/api"
	"boardkit/pkg/api/transport"
	"boardkit/pkg/api/users"
)

type (
	Client struct {
		t *transport.Client
	}
)

func New(t *transport.Client) *Client {
	return &Client{t: t}
}

func (c *Client) Login(ctx context.Context, email, password string) (*users.User, error) {
	if strings.TrimSpace(email) == "" {
		return nil, api.Validation("please enter an email address")
	}
	if password == "" {
		return nil, api.Validation("please enter a password")
	}

	env, err := c.t.Post(ctx, "/auth/login", &transport.Options{
		Body: transport.JSON(map[string]any{
			"email":    strings.TrimSpace(email),
			"password": password,
		}),
	})
	if err != nil {
		return nil, err
	}

	var u users.User
	if err := env.DecodeData(&u); err != nil {
		return nil, fmt.Errorf("cannot decode the logged-in user: %w", err)
	}
	return &u, nil
}

func (c *Client) Logout(ctx context.Context) error {
	_, err := c.t.Post(ctx, "/auth/logout", nil)
	return err
}
