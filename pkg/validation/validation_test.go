package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEmail(t *testing.T) {
	cases := []struct {
		email string
		valid bool
	}{
		{"user@example.com", true},
		{"a@b.co", true},
		{"first.last@sub.domain.org", true},
		{"", false},
		{"no-at-sign", false},
		{"missing@tld", false},
		{"spaces in@example.com", false},
		{"user@ example.com", false},
	}

	for _, tc := range cases {
		t.Run(tc.email, func(t *testing.T) {
			got := Email(tc.email)
			assert.Equal(t, tc.valid, got.Valid)
			if !tc.valid {
				assert.NotEmpty(t, got.Message)
			}
		})
	}
}

func TestPassword(t *testing.T) {
	cases := []struct {
		name     string
		password string
		valid    bool
	}{
		{"all classes", "Abcdef1!", true},
		{"max length", "Aa1!" + strings.Repeat("x", 16), true},
		{"empty", "", false},
		{"too short", "Aa1!xyz", false},
		{"too long", "Aa1!" + strings.Repeat("x", 17), false},
		{"no uppercase", "abcdef1!", false},
		{"no lowercase", "ABCDEF1!", false},
		{"no digit", "Abcdefg!", false},
		{"no symbol", "Abcdefg1", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.valid, Password(tc.password).Valid)
		})
	}
}

func TestPasswordConfirm(t *testing.T) {
	assert.True(t, PasswordConfirm("Abcdef1!", "Abcdef1!").Valid)
	assert.False(t, PasswordConfirm("Abcdef1!", "").Valid)
	assert.False(t, PasswordConfirm("Abcdef1!", "different").Valid)
}

func TestNickname(t *testing.T) {
	assert.True(t, Nickname("ab", DefaultNicknameMax).Valid)
	assert.True(t, Nickname(strings.Repeat("x", 20), DefaultNicknameMax).Valid)
	assert.False(t, Nickname("", DefaultNicknameMax).Valid)
	assert.False(t, Nickname("a", DefaultNicknameMax).Valid)
	assert.False(t, Nickname(strings.Repeat("x", 21), DefaultNicknameMax).Valid)

	// Length is counted in runes, not bytes.
	assert.True(t, Nickname("가나", DefaultNicknameMax).Valid)

	// A non-positive max falls back to the default.
	assert.True(t, Nickname(strings.Repeat("x", 20), 0).Valid)
	assert.False(t, Nickname(strings.Repeat("x", 11), 10).Valid)
}
