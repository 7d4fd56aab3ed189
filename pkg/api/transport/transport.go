// Package transport performs single HTTP exchanges against the board backend
// and normalizes every outcome into an Envelope or a typed *Error. It never
// retries: callers get exactly one attempt per invocation.
package transport

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
)

type (
	// Config is built once at startup and handed to New. It is never read
	// from ambient state inside request handling.
	Config struct {
		// BaseURL is the backend address every path resolves against.
		BaseURL string

		// Timeout bounds one exchange. Zero means DefaultTimeout.
		Timeout time.Duration

		// DefaultHeaders are applied to every request before per-call
		// overrides.
		DefaultHeaders http.Header

		// LoginPath marks the redirect target that signals an expired
		// session. Zero value is DefaultLoginPath.
		LoginPath string

		UserAgent string

		// Jar carries the session cookie between calls. When nil a fresh
		// in-memory jar is created.
		Jar http.CookieJar

		// HTTPClient replaces the underlying client entirely. Its jar wins
		// over Jar.
		HTTPClient *http.Client
	}

	Client struct {
		base      *url.URL
		hc        *http.Client
		bare      *http.Client
		headers   http.Header
		timeout   time.Duration
		loginPath string
		userAgent string
	}

	// Options tunes one exchange. The zero value asks for the defaults:
	// cookie-bearing, JSON-parsing, client-wide timeout.
	Options struct {
		Headers http.Header

		// Query entries with a nil value are dropped; everything else is
		// string-coerced. Encoding order carries no meaning.
		Query map[string]any

		Body *Body

		// Timeout overrides the client default for this call. Negative
		// disables the deadline entirely.
		Timeout time.Duration

		// WithCredentials nil means true.
		WithCredentials *bool

		// ParseJSON nil means true.
		ParseJSON *bool

		// RawRequest runs on the outgoing request just before it is sent.
		RawRequest func(*http.Request)
	}
)

const (
	DefaultTimeout   = 10 * time.Second
	DefaultLoginPath = "/auth/login"
)

var ErrNoBaseURL = errors.New("a base URL is required")

func New(c Config) (*Client, error) {
	if c.BaseURL == "" {
		return nil, ErrNoBaseURL
	}

	base, err := url.Parse(c.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid base URL %q: %w", c.BaseURL, err)
	}
	if base.Scheme == "" || base.Host == "" {
		return nil, fmt.Errorf("invalid base URL %q: scheme and host are required", c.BaseURL)
	}

	headers := make(http.Header)
	headers.Set("Accept", "application/json")
	for k, vs := range c.DefaultHeaders {
		for _, v := range vs {
			headers.Set(k, v)
		}
	}

	hc := c.HTTPClient
	if hc == nil {
		jar := c.Jar
		if jar == nil {
			jar, err = cookiejar.New(nil)
			if err != nil {
				return nil, fmt.Errorf("cannot create the cookie jar: %w", err)
			}
		}
		hc = &http.Client{Jar: jar}
	}

	// Same client without the jar, for calls that must not carry the
	// session cookie.
	bare := *hc
	bare.Jar = nil

	cli := &Client{
		base:      base,
		hc:        hc,
		bare:      &bare,
		headers:   headers,
		timeout:   c.Timeout,
		loginPath: c.LoginPath,
		userAgent: c.UserAgent,
	}
	if cli.timeout == 0 {
		cli.timeout = DefaultTimeout
	}
	if cli.loginPath == "" {
		cli.loginPath = DefaultLoginPath
	}

	return cli, nil
}

// BaseURL returns a copy of the resolved backend address.
func (c *Client) BaseURL() *url.URL {
	u := *c.base
	return &u
}

func (c *Client) Get(ctx context.Context, path string, opts *Options) (*Envelope, error) {
	return c.Do(ctx, http.MethodGet, path, opts)
}

func (c *Client) Post(ctx context.Context, path string, opts *Options) (*Envelope, error) {
	return c.Do(ctx, http.MethodPost, path, opts)
}

func (c *Client) Patch(ctx context.Context, path string, opts *Options) (*Envelope, error) {
	return c.Do(ctx, http.MethodPatch, path, opts)
}

func (c *Client) Put(ctx context.Context, path string, opts *Options) (*Envelope, error) {
	return c.Do(ctx, http.MethodPut, path, opts)
}

func (c *Client) Delete(ctx context.Context, path string, opts *Options) (*Envelope, error) {
	return c.Do(ctx, http.MethodDelete, path, opts)
}

// Do performs one exchange. On success the returned Envelope holds the
// decoded body; every failure is a *Error.
func (c *Client) Do(ctx context.Context, method, path string, opts *Options) (*Envelope, error) {
	if opts == nil {
		opts = &Options{}
	}

	requestURL, err := c.resolveURL(path, opts.Query)
	if err != nil {
		return nil, err
	}

	var reqBody io.Reader
	var bodyType string
	if opts.Body != nil {
		reqBody, bodyType, err = opts.Body.encode()
		if err != nil {
			return nil, err
		}
	}

	timeout := c.timeout
	if opts.Timeout != 0 {
		timeout = opts.Timeout
	}
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	req, err := http.NewRequestWithContext(ctx, method, requestURL, reqBody)
	if err != nil {
		return nil, fmt.Errorf("cannot build the request: %w", err)
	}

	c.applyHeaders(req, opts, bodyType)

	if opts.RawRequest != nil {
		opts.RawRequest(req)
	}

	hc := c.hc
	if opts.WithCredentials != nil && !*opts.WithCredentials {
		hc = c.bare
	}

	res, err := hc.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, timeoutError()
		}
		return nil, networkError()
	}
	defer res.Body.Close()

	parseJSON := opts.ParseJSON == nil || *opts.ParseJSON

	var raw []byte
	parsed := false
	if parseJSON && shouldParseBody(res.StatusCode, res.Header) {
		raw, err = io.ReadAll(res.Body)
		if err != nil {
			if errors.Is(err, context.DeadlineExceeded) {
				return nil, timeoutError()
			}
			return nil, networkError()
		}
		if !json.Valid(raw) {
			return nil, parseError(res.StatusCode)
		}
		parsed = true
	} else {
		_, _ = io.Copy(io.Discard, res.Body)
	}

	// A redirect that landed on the login page means the session is gone,
	// whatever status the login page answered with.
	if c.redirectedToLogin(res) {
		return nil, authRedirectError()
	}

	var fields envelopeFields
	if parsed {
		fields = decodeEnvelopeFields(raw)
	}

	if res.StatusCode < 200 || res.StatusCode > 299 {
		msg := fields.message
		if msg == "" {
			msg = fmt.Sprintf("request failed with status %d", res.StatusCode)
		}
		return nil, &Error{
			Kind:       KindApplication,
			Message:    msg,
			StatusCode: res.StatusCode,
			Data:       fields.data,
			Errors:     fields.errors,
			Raw:        raw,
		}
	}

	env := &Envelope{
		OK:         true,
		StatusCode: res.StatusCode,
		Header:     res.Header,
		Message:    fields.message,
		Errors:     fields.errors,
	}
	if parsed {
		env.Data = fields.data
		env.Raw = raw
	}

	return env, nil
}

func (c *Client) resolveURL(path string, query map[string]any) (string, error) {
	ref, err := url.Parse(path)
	if err != nil {
		return "", fmt.Errorf("invalid request path %q: %w", path, err)
	}

	u := c.base.ResolveReference(ref)

	if len(query) > 0 {
		q := u.Query()
		for k, v := range query {
			if v == nil {
				continue
			}
			q.Set(k, fmt.Sprint(v))
		}
		u.RawQuery = q.Encode()
	}

	return u.String(), nil
}

func (c *Client) applyHeaders(req *http.Request, opts *Options, bodyType string) {
	for k, vs := range c.headers {
		for _, v := range vs {
			req.Header.Set(k, v)
		}
	}

	for k, vs := range opts.Headers {
		for _, v := range vs {
			if v == "" {
				continue
			}
			req.Header.Set(k, v)
		}
	}

	if bodyType != "" {
		if opts.Body.kind == bodyMultipart {
			// The boundary comes from the multipart writer; a caller
			// override would corrupt the body.
			req.Header.Set("Content-Type", bodyType)
		} else if req.Header.Get("Content-Type") == "" {
			req.Header.Set("Content-Type", bodyType)
		}
	}

	if c.userAgent != "" && req.Header.Get("User-Agent") == "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	if req.Header.Get("X-Request-Id") == "" {
		req.Header.Set("X-Request-Id", uuid.NewString())
	}
}

func (c *Client) redirectedToLogin(res *http.Response) bool {
	if res.Request == nil || res.Request.Response == nil {
		return false
	}
	return strings.Contains(res.Request.URL.Path, c.loginPath)
}
