package users

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"boardkit/pkg/api"
	"boardkit/pkg/api/transport"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.Handler) *Client {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	tc, err := transport.New(transport.Config{BaseURL: srv.URL})
	require.NoError(t, err)
	return New(tc)
}

func noRequestExpected(t *testing.T) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("no request expected")
	})
}

func TestSignUpValidatesBeforeNetwork(t *testing.T) {
	c := newTestClient(t, noRequestExpected(t))
	ctx := context.Background()

	cases := []struct {
		name  string
		input SignUpInput
	}{
		{"bad email", SignUpInput{Email: "nope", Password: "Abcdef1!", Nickname: "tester"}},
		{"weak password", SignUpInput{Email: "a@b.co", Password: "short", Nickname: "tester"}},
		{"short nickname", SignUpInput{Email: "a@b.co", Password: "Abcdef1!", Nickname: "x"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := c.SignUp(ctx, tc.input)
			assert.True(t, api.IsValidation(err), "want a validation error, got %v", err)
		})
	}
}

func TestSignUpSendsTrimmedPayload(t *testing.T) {
	var got map[string]any
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, `{"data":{"id":1,"email":"a@b.co","nickname":"tester"}}`)
	}))

	u, err := c.SignUp(context.Background(), SignUpInput{
		Email:    "  a@b.co  ",
		Password: "Abcdef1!",
		Nickname: "  tester  ",
	})
	require.NoError(t, err)

	assert.Equal(t, "a@b.co", got["email"])
	assert.Equal(t, "tester", got["nickname"])
	assert.NotContains(t, got, "profileImageId")
	assert.Equal(t, "tester", u.Nickname)
}

func TestUpdateMeRejectsEmptyInput(t *testing.T) {
	c := newTestClient(t, noRequestExpected(t))

	_, err := c.UpdateMe(context.Background(), UpdateInput{})
	assert.True(t, api.IsValidation(err))
}

func TestUpdateMeSendsOnlySetFields(t *testing.T) {
	var got map[string]any
	var gotMethod, gotPath string
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod, gotPath = r.Method, r.URL.Path
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, `{"data":{"id":1,"nickname":"renamed"}}`)
	}))

	nick := "renamed"
	u, err := c.UpdateMe(context.Background(), UpdateInput{Nickname: &nick})
	require.NoError(t, err)

	assert.Equal(t, http.MethodPatch, gotMethod)
	assert.Equal(t, "/users/me", gotPath)
	assert.Equal(t, map[string]any{"nickname": "renamed"}, got)
	assert.Equal(t, "renamed", u.Nickname)
}

func TestChangePassword(t *testing.T) {
	var got map[string]any
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusNoContent)
	}))
	ctx := context.Background()

	err := c.ChangePassword(ctx, "", "Abcdef1!")
	assert.True(t, api.IsValidation(err))

	err = c.ChangePassword(ctx, "Old1!pwd", "weak")
	assert.True(t, api.IsValidation(err))

	require.NoError(t, c.ChangePassword(ctx, "Old1!pwd", "Abcdef1!"))
	assert.Equal(t, map[string]any{
		"currentPassword": "Old1!pwd",
		"newPassword":     "Abcdef1!",
	}, got)
}

func TestCheckEmail(t *testing.T) {
	var gotQuery string
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, `{"data":{"available":false}}`)
	}))

	available, err := c.CheckEmail(context.Background(), " a@b.co ")
	require.NoError(t, err)

	assert.False(t, available)
	assert.Contains(t, gotQuery, "email=a%40b.co")

	_, err = c.CheckEmail(context.Background(), "broken")
	assert.True(t, api.IsValidation(err))
}

func TestCheckNicknameHonorsConfiguredMax(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, `{"data":{"available":true}}`)
	})).WithNicknameMax(10)
	ctx := context.Background()

	available, err := c.CheckNickname(ctx, strings.Repeat("x", 10))
	require.NoError(t, err)
	assert.True(t, available)

	_, err = c.CheckNickname(ctx, strings.Repeat("x", 11))
	assert.True(t, api.IsValidation(err))
}

func TestDeleteMe(t *testing.T) {
	var gotMethod, gotPath string
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod, gotPath = r.Method, r.URL.Path
		w.WriteHeader(http.StatusNoContent)
	}))

	require.NoError(t, c.DeleteMe(context.Background()))
	assert.Equal(t, http.MethodDelete, gotMethod)
	assert.Equal(t, "/users/me", gotPath)
}
