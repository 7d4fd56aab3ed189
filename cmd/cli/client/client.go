// Package client wires the resource clients, the cookie jar and the saved
// session together for the CLI commands.
package client

import (
	"fmt"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"os"

	"boardkit/pkg/api/auth"
	"boardkit/pkg/api/comments"
	"boardkit/pkg/api/images"
	"boardkit/pkg/api/posts"
	"boardkit/pkg/api/transport"
	"boardkit/pkg/api/users"
	"boardkit/pkg/constants"
	"boardkit/pkg/session"
)

type (
	Clients struct {
		Transport *transport.Client
		Auth      *auth.Client
		Users     *users.Client
		Posts     *posts.Client
		Comments  *comments.Client
		Images    *images.Client

		store *session.Store
		jar   http.CookieJar
		base  *url.URL
	}
)

const (
	serverEnv     = "BOARDKIT_SERVER"
	defaultServer = "http://localhost:8080"
)

// ServerURL picks the backend address: the -server flag wins, then the
// BOARDKIT_SERVER environment variable, then the local default.
func ServerURL(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	if v := os.Getenv(serverEnv); v != "" {
		return v
	}
	return defaultServer
}

// Connect builds the resource clients against serverURL, seeding the cookie
// jar from the saved session when one exists.
func Connect(serverURL string) (*Clients, error) {
	store, err := session.Open()
	if err != nil {
		return nil, err
	}

	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, fmt.Errorf("cannot create the cookie jar: %w", err)
	}

	t, err := transport.New(transport.Config{
		BaseURL:   serverURL,
		Jar:       jar,
		UserAgent: "boardkit-cli/" + constants.Version,
	})
	if err != nil {
		return nil, err
	}

	base := t.BaseURL()
	if cookies, err := store.Load(base); err == nil {
		jar.SetCookies(base, cookies)
	}

	return &Clients{
		Transport: t,
		Auth:      auth.New(t),
		Users:     users.New(t),
		Posts:     posts.New(t),
		Comments:  comments.New(t),
		Images:    images.New(t),
		store:     store,
		jar:       jar,
		base:      base,
	}, nil
}

// SaveSession persists whatever cookies the jar now holds for the backend.
func (c *Clients) SaveSession() error {
	return c.store.Save(c.base, c.jar.Cookies(c.base))
}

func (c *Clients) ClearSession() error {
	return c.store.Clear()
}
