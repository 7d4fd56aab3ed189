// Package users exposes account operations: signup, the current profile,
// password changes, account deletion and availability checks.
package users

import (
	"context"
	"fmt"
	"strings"
	"time"

	"boardkit/pkg/api"
	"boardkit/pkg/api/transport"
	"boardkit/pkg/validation"
)

type (
	Client struct {
		t *transport.Client

		// nicknameMax is configurable because deployments disagree on the
		// upper bound.
		nicknameMax int
	}

	User struct {
		ID             int64     `json:"id"`
		Email          string    `json:"email"`
		Nickname       string    `json:"nickname"`
		ProfileImageID int64     `json:"profileImageId,omitempty"`
		CreatedAt      time.Time `json:"createdAt"`
	}

	Availability struct {
		Available bool `json:"available"`
	}

	SignUpInput struct {
		Email          string
		Password       string
		Nickname       string
		ProfileImageID *int64
	}

	// UpdateInput carries the profile fields to change; nil fields are left
	// alone. At least one field must be set.
	UpdateInput struct {
		Nickname       *string
		ProfileImageID *int64
	}
)

func New(t *transport.Client) *Client {
	return &Client{t: t, nicknameMax: validation.DefaultNicknameMax}
}

// WithNicknameMax returns a client enforcing a different nickname bound.
func (c *Client) WithNicknameMax(max int) *Client {
	return &Client{t: c.t, nicknameMax: max}
}

func (c *Client) validateNickname(nickname string) error {
	if r := validation.Nickname(strings.TrimSpace(nickname), c.nicknameMax); !r.Valid {
		return api.Validation(r.Message)
	}
	return nil
}

func (c *Client) SignUp(ctx context.Context, in SignUpInput) (*User, error) {
	if r := validation.Email(strings.TrimSpace(in.Email)); !r.Valid {
		return nil, api.Validation(r.Message)
	}
	if r := validation.Password(in.Password); !r.Valid {
		return nil, api.Validation(r.Message)
	}
	if err := c.validateNickname(in.Nickname); err != nil {
		return nil, err
	}

	payload := map[string]any{
		"email":    strings.TrimSpace(in.Email),
		"password": in.Password,
		"nickname": strings.TrimSpace(in.Nickname),
	}
	if in.ProfileImageID != nil {
		payload["profileImageId"] = *in.ProfileImageID
	}

	env, err := c.t.Post(ctx, "/users", &transport.Options{Body: transport.JSON(payload)})
	if err != nil {
		return nil, err
	}

	var u User
	if err := env.DecodeData(&u); err != nil {
		return nil, fmt.Errorf("cannot decode the created user: %w", err)
	}
	return &u, nil
}

func (c *Client) Me(ctx context.Context) (*User, error) {
	env, err := c.t.Get(ctx, "/users/me", nil)
	if err != nil {
		return nil, err
	}

	var u User
	if err := env.DecodeData(&u); err != nil {
		return nil, fmt.Errorf("cannot decode the user profile: %w", err)
	}
	return &u, nil
}

func (c *Client) UpdateMe(ctx context.Context, in UpdateInput) (*User, error) {
	payload := make(map[string]any)

	if in.Nickname != nil {
		if err := c.validateNickname(*in.Nickname); err != nil {
			return nil, err
		}
		payload["nickname"] = strings.TrimSpace(*in.Nickname)
	}
	if in.ProfileImageID != nil {
		payload["profileImageId"] = *in.ProfileImageID
	}

	if len(payload) == 0 {
		return nil, api.Validation("nothing to update")
	}

	env, err := c.t.Patch(ctx, "/users/me", &transport.Options{Body: transport.JSON(payload)})
	if err != nil {
		return nil, err
	}

	var u User
	if err := env.DecodeData(&u); err != nil {
		return nil, fmt.Errorf("cannot decode the updated profile: %w", err)
	}
	return &u, nil
}

func (c *Client) ChangePassword(ctx context.Context, current, next string) error {
	if current == "" {
		return api.Validation("please enter the current password")
	}
	if r := validation.Password(next); !r.Valid {
		return api.Validation(r.Message)
	}

	_, err := c.t.Patch(ctx, "/users/me/password", &transport.Options{
		Body: transport.JSON(map[string]any{
			"currentPassword": current,
			"newPassword":     next,
		}),
	})
	return err
}

func (c *Client) DeleteMe(ctx context.Context) error {
	_, err := c.t.Delete(ctx, "/users/me", nil)
	return err
}

func (c *Client) CheckEmail(ctx context.Context, email string) (bool, error) {
	email = strings.TrimSpace(email)
	if r := validation.Email(email); !r.Valid {
		return false, api.Validation(r.Message)
	}

	env, err := c.t.Get(ctx, "/users/check-email", &transport.Options{
		Query: map[string]any{"email": email},
	})
	if err != nil {
		return false, err
	}

	var a Availability
	if err := env.DecodeData(&a); err != nil {
		return false, fmt.Errorf("cannot decode the availability result: %w", err)
	}
	return a.Available, nil
}

func (c *Client) CheckNickname(ctx context.Context, nickname string) (bool, error) {
	nickname = strings.TrimSpace(nickname)
	if err := c.validateNickname(nickname); err != nil {
		return false, err
	}

	env, err := c.t.Get(ctx, "/users/check-nickname", &transport.Options{
		Query: map[string]any{"nickname": nickname},
	})
	if err != nil {
		return false, err
	}

	var a Availability
	if err := env.DecodeData(&a); err != nil {
		return false, fmt.Errorf("cannot decode the availability result: %w", err)
	}
	return a.Available, nil
}
