package transport

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, srv *httptest.Server) *Client {
	t.Helper()

	c, err := New(Config{BaseURL: srv.URL})
	require.NoError(t, err)
	return c
}

func writeJSON(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	io.WriteString(w, body)
}

func TestNewRejectsBadBaseURL(t *testing.T) {
	_, err := New(Config{})
	assert.ErrorIs(t, err, ErrNoBaseURL)

	_, err = New(Config{BaseURL: "not-a-url"})
	assert.Error(t, err)
}

func TestQuerySkipsNilAndCoerces(t *testing.T) {
	var gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		writeJSON(w, 200, `{"data":null}`)
	}))
	defer srv.Close()

	c := newTestClient(t, srv)

	_, err := c.Get(context.Background(), "/posts", &Options{
		Query: map[string]any{
			"limit":  10,
			"sort":   "desc",
			"cursor": nil,
			"flag":   true,
		},
	})
	require.NoError(t, err)

	assert.Contains(t, gotQuery, "limit=10")
	assert.Contains(t, gotQuery, "sort=desc")
	assert.Contains(t, gotQuery, "flag=true")
	assert.NotContains(t, gotQuery, "cursor")
}

func TestJSONBodyHeadersAndRequestID(t *testing.T) {
	var (
		gotContentType string
		gotAccept      string
		gotRequestID   string
		gotBody        []byte
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotContentType = r.Header.Get("Content-Type")
		gotAccept = r.Header.Get("Accept")
		gotRequestID = r.Header.Get("X-Request-Id")
		gotBody, _ = io.ReadAll(r.Body)
		writeJSON(w, 200, `{"data":{"id":1}}`)
	}))
	defer srv.Close()

	c := newTestClient(t, srv)

	_, err := c.Post(context.Background(), "/posts", &Options{
		Body: JSON(map[string]any{"title": "hello"}),
	})
	require.NoError(t, err)

	assert.Equal(t, "application/json; charset=UTF-8", gotContentType)
	assert.Equal(t, "application/json", gotAccept)
	assert.NotEmpty(t, gotRequestID)
	assert.JSONEq(t, `{"title":"hello"}`, string(gotBody))
}

func TestContentTypeOverrideWins(t *testing.T) {
	var gotContentType string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotContentType = r.Header.Get("Content-Type")
		writeJSON(w, 200, `{}`)
	}))
	defer srv.Close()

	c := newTestClient(t, srv)

	_, err := c.Post(context.Background(), "/posts", &Options{
		Headers: http.Header{"Content-Type": []string{"application/vnd.board+json"}},
		Body:    JSON(map[string]any{"a": 1}),
	})
	require.NoError(t, err)

	assert.Equal(t, "application/vnd.board+json", gotContentType)
}

func TestEnvelopeExtraction(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, 200, `{"data":{"id":1},"message":"ok"}`)
	}))
	defer srv.Close()

	c := newTestClient(t, srv)

	env, err := c.Get(context.Background(), "/posts/1", nil)
	require.NoError(t, err)

	assert.True(t, env.OK)
	assert.Equal(t, 200, env.StatusCode)
	assert.Equal(t, "ok", env.Message)
	assert.JSONEq(t, `{"id":1}`, string(env.Data))

	var out struct {
		ID int `json:"id"`
	}
	require.NoError(t, env.DecodeData(&out))
	assert.Equal(t, 1, out.ID)
}

func TestNonObjectBodyLandsInData(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, 200, `[1,2,3]`)
	}))
	defer srv.Close()

	c := newTestClient(t, srv)

	env, err := c.Get(context.Background(), "/ids", nil)
	require.NoError(t, err)
	assert.JSONEq(t, `[1,2,3]`, string(env.Data))
	assert.Empty(t, env.Message)
}

func TestNoContentSkipsParsing(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	c := newTestClient(t, srv)

	env, err := c.Delete(context.Background(), "/posts/1", nil)
	require.NoError(t, err)

	assert.True(t, env.OK)
	assert.Equal(t, http.StatusNoContent, env.StatusCode)
	assert.Nil(t, env.Data)
	assert.Nil(t, env.Raw)
}

func TestNonJSONContentTypeSkipsParsing(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain")
		io.WriteString(w, "pong")
	}))
	defer srv.Close()

	c := newTestClient(t, srv)

	env, err := c.Get(context.Background(), "/ping", nil)
	require.NoError(t, err)
	assert.Nil(t, env.Data)
}

func TestApplicationErrorCarriesServerMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, 404, `{"message":"not found"}`)
	}))
	defer srv.Close()

	c := newTestClient(t, srv)

	_, err := c.Get(context.Background(), "/posts/999", nil)
	require.Error(t, err)

	te, ok := AsError(err)
	require.True(t, ok)
	assert.Equal(t, KindApplication, te.Kind)
	assert.Equal(t, "not found", te.Message)
	assert.Equal(t, 404, te.StatusCode)
}

func TestApplicationErrorFallbackMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := newTestClient(t, srv)

	_, err := c.Get(context.Background(), "/posts", nil)
	require.Error(t, err)

	te, ok := AsError(err)
	require.True(t, ok)
	assert.Equal(t, "request failed with status 500", te.Message)
	assert.Equal(t, 500, te.StatusCode)
}

func TestApplicationErrorCarriesFieldErrors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, 400, `{"message":"invalid input","errors":{"email":"already exists"}}`)
	}))
	defer srv.Close()

	c := newTestClient(t, srv)

	_, err := c.Post(context.Background(), "/users", &Options{Body: JSON(map[string]any{})})
	require.Error(t, err)

	te, ok := AsError(err)
	require.True(t, ok)
	assert.Equal(t, "invalid input", te.Message)
	assert.Equal(t, "already exists", te.Errors["email"])
}

func TestParseErrorOnMalformedJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, 200, `{"data":`)
	}))
	defer srv.Close()

	c := newTestClient(t, srv)

	_, err := c.Get(context.Background(), "/posts", nil)
	require.Error(t, err)

	te, ok := AsError(err)
	require.True(t, ok)
	assert.Equal(t, KindParse, te.Kind)
	assert.Equal(t, 200, te.StatusCode)
}

func TestTimeout(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer srv.Close()
	defer close(release)

	c := newTestClient(t, srv)

	start := time.Now()
	_, err := c.Get(context.Background(), "/slow", &Options{Timeout: 50 * time.Millisecond})
	require.Error(t, err)

	assert.True(t, IsTimeout(err))
	te, _ := AsError(err)
	assert.Equal(t, "request timed out", te.Message)
	assert.Zero(t, te.StatusCode)
	assert.Less(t, time.Since(start), 5*time.Second)
}

func TestNetworkError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	c := newTestClient(t, srv)

	_, err := c.Get(context.Background(), "/posts", nil)
	require.Error(t, err)

	te, ok := AsError(err)
	require.True(t, ok)
	assert.Equal(t, KindNetwork, te.Kind)
	assert.Zero(t, te.StatusCode)
}

func TestAuthRedirectBecomes401(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/private", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/auth/login", http.StatusFound)
	})
	mux.HandleFunc("/auth/login", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, 200, `{"message":"please log in"}`)
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	c := newTestClient(t, srv)

	_, err := c.Get(context.Background(), "/private", nil)
	require.Error(t, err)

	assert.True(t, IsAuthRedirect(err))
	te, _ := AsError(err)
	assert.Equal(t, 401, te.StatusCode)
	assert.Equal(t, "login required", te.Message)
}

func TestMultipartBody(t *testing.T) {
	var (
		gotContentType string
		gotType        string
		gotFile        []byte
		gotFileName    string
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotContentType = r.Header.Get("Content-Type")
		require.NoError(t, r.ParseMultipartForm(1<<20))
		gotType = r.FormValue("type")

		file, header, err := r.FormFile("file")
		require.NoError(t, err)
		defer file.Close()
		gotFileName = header.Filename
		gotFile, _ = io.ReadAll(file)

		writeJSON(w, 200, `{"data":{"id":7}}`)
	}))
	defer srv.Close()

	c := newTestClient(t, srv)

	_, err := c.Post(context.Background(), "/images", &Options{
		Body: Multipart(&MultipartPayload{
			Fields:    map[string]string{"type": "PROFILE"},
			FileField: "file",
			FileName:  "avatar.png",
			File:      strings.NewReader("png-bytes"),
		}),
	})
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(gotContentType, "multipart/form-data; boundary="))
	assert.Equal(t, "PROFILE", gotType)
	assert.Equal(t, "avatar.png", gotFileName)
	assert.Equal(t, "png-bytes", string(gotFile))
}

func TestWithCredentialsFalseSkipsCookies(t *testing.T) {
	var mu sync.Mutex
	seen := make(map[string]bool)
	mux := http.NewServeMux()
	mux.HandleFunc("/auth/login", func(w http.ResponseWriter, r *http.Request) {
		http.SetCookie(w, &http.Cookie{Name: "JSESSIONID", Value: "abc", Path: "/"})
		writeJSON(w, 200, `{"data":{"id":1}}`)
	})
	mux.HandleFunc("/echo", func(w http.ResponseWriter, r *http.Request) {
		_, err := r.Cookie("JSESSIONID")
		mu.Lock()
		seen[r.URL.Query().Get("mode")] = err == nil
		mu.Unlock()
		writeJSON(w, 200, `{}`)
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	c := newTestClient(t, srv)
	ctx := context.Background()

	_, err := c.Post(ctx, "/auth/login", nil)
	require.NoError(t, err)

	_, err = c.Get(ctx, "/echo", &Options{Query: map[string]any{"mode": "with"}})
	require.NoError(t, err)

	off := false
	_, err = c.Get(ctx, "/echo", &Options{
		Query:           map[string]any{"mode": "without"},
		WithCredentials: &off,
	})
	require.NoError(t, err)

	assert.True(t, seen["with"])
	assert.False(t, seen["without"])
}

func TestConcurrentCallsAreIndependent(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/posts/1", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, 200, `{"data":{"id":1}}`)
	})
	mux.HandleFunc("/posts/1/comments", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, 500, `{"message":"boom"}`)
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	c := newTestClient(t, srv)
	ctx := context.Background()

	var wg sync.WaitGroup
	var postEnv *Envelope
	var postErr, commentsErr error

	wg.Add(2)
	go func() {
		defer wg.Done()
		postEnv, postErr = c.Get(ctx, "/posts/1", nil)
	}()
	go func() {
		defer wg.Done()
		_, commentsErr = c.Get(ctx, "/posts/1/comments", nil)
	}()
	wg.Wait()

	require.NoError(t, postErr)
	assert.JSONEq(t, `{"id":1}`, string(postEnv.Data))

	te, ok := AsError(commentsErr)
	require.True(t, ok)
	assert.Equal(t, 500, te.StatusCode)
}

func TestErrorString(t *testing.T) {
	e := &Error{Kind: KindApplication, Message: "not found", StatusCode: 404}
	assert.Equal(t, "not found (status 404)", e.Error())

	e = &Error{Kind: KindTimeout, Message: "request timed out"}
	assert.Equal(t, "request timed out", e.Error())
}

func TestDecodeDataLeavesTargetOnNull(t *testing.T) {
	env := &Envelope{Data: json.RawMessage("null")}
	out := map[string]any{"keep": true}
	require.NoError(t, env.DecodeData(&out))
	assert.True(t, out["keep"].(bool))

	env = &Envelope{}
	require.NoError(t, env.DecodeData(&out))
}

func TestShouldParseBody(t *testing.T) {
	h := http.Header{}
	h.Set("Content-Type", "application/json; charset=utf-8")
	assert.True(t, shouldParseBody(200, h))

	assert.False(t, shouldParseBody(204, http.Header{}))

	withLen := http.Header{}
	withLen.Set("Content-Length", "42")
	assert.True(t, shouldParseBody(204, withLen))

	plain := http.Header{}
	plain.Set("Content-Type", "text/html")
	assert.False(t, shouldParseBody(200, plain))
}

func TestResolveURLKeepsBaseQueryless(t *testing.T) {
	c, err := New(Config{BaseURL: "http://localhost:8080"})
	require.NoError(t, err)

	u, err := c.resolveURL("/posts/3", nil)
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8080/posts/3", u)

	_, err = c.resolveURL("://", nil)
	assert.Error(t, err)
}

func ExampleClient_Get() {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, 200, `{"data":{"id":1,"title":"hello"}}`)
	}))
	defer srv.Close()

	c, _ := New(Config{BaseURL: srv.URL})
	env, _ := c.Get(context.Background(), "/posts/1", nil)

	var post struct {
		Title string `json:"title"`
	}
	_ = env.DecodeData(&post)
	fmt.Println(post.Title)
	// Output: hello
}
