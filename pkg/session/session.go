// Package session persists the backend session cookie between CLI runs, so
// a login in one invocation carries over to the next. The file lives in the
// user config directory, next to nothing else.
package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"time"
)

type (
	Store struct {
		path string
	}

	record struct {
		Host    string   `json:"host"`
		Cookies []cookie `json:"cookies"`
	}

	cookie struct {
		Name    string    `json:"name"`
		Value   string    `json:"value"`
		Path    string    `json:"path,omitempty"`
		Domain  string    `json:"domain,omitempty"`
		Expires time.Time `json:"expires,omitempty"`
	}
)

var ErrNoSession = errors.New("no saved session")

func Open() (*Store, error) {
	roaming, err := os.UserConfigDir()
	if err != nil {
		return nil, fmt.Errorf("failed to get user config path: %w", err)
	}

	dir := filepath.Join(roaming, "boardkit")
	if err := os.MkdirAll(dir, 0700); err != nil {
		return nil, fmt.Errorf("cannot make the session directory: %w", err)
	}

	return &Store{path: filepath.Join(dir, "session.json")}, nil
}

// OpenAt is Open with an explicit file location, for tests.
func OpenAt(path string) *Store {
	return &Store{path: path}
}

// Save stores the cookies valid for u. An empty cookie list clears the file.
func (s *Store) Save(u *url.URL, cookies []*http.Cookie) error {
	if len(cookies) == 0 {
		return s.Clear()
	}

	rec := record{Host: u.Host}
	for _, c := range cookies {
		rec.Cookies = append(rec.Cookies, cookie{
			Name:    c.Name,
			Value:   c.Value,
			Path:    c.Path,
			Domain:  c.Domain,
			Expires: c.Expires,
		})
	}

	f, err := os.OpenFile(s.path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0600)
	if err != nil {
		return fmt.Errorf("cannot open the session file: %w", err)
	}
	defer f.Close()

	e := json.NewEncoder(f)
	if err := e.Encode(rec); err != nil {
		return fmt.Errorf("cannot write the session file: %w", err)
	}

	return nil
}

// Load returns the cookies saved for u's host, dropping expired ones. A
// session saved for another host is not returned.
func (s *Store) Load(u *url.URL) ([]*http.Cookie, error) {
	content, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, ErrNoSession
		}
		return nil, err
	}

	var rec record
	if err := json.Unmarshal(content, &rec); err != nil {
		return nil, fmt.Errorf("corrupted session file %s: %w", s.path, err)
	}

	if rec.Host != u.Host {
		return nil, ErrNoSession
	}

	now := time.Now()
	var cookies []*http.Cookie
	for _, c := range rec.Cookies {
		if !c.Expires.IsZero() && c.Expires.Before(now) {
			continue
		}
		cookies = append(cookies, &http.Cookie{
			Name:    c.Name,
			Value:   c.Value,
			Path:    c.Path,
			Domain:  c.Domain,
			Expires: c.Expires,
		})
	}

	if len(cookies) == 0 {
		return nil, ErrNoSession
	}

	return cookies, nil
}

func (s *Store) Clear() error {
	err := os.Remove(s.path)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}
