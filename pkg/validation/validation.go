// Package validation checks form input values against the rules the backend
// enforces. Every function is pure and never fails with an error: callers
// get a Result whose message can be shown as-is.
package validation

import (
	"fmt"
	"regexp"
	"strings"
)

type (
	Result struct {
		Valid   bool
		Message string
	}
)

const (
	PasswordMinLen = 8
	PasswordMaxLen = 20

	NicknameMinLen     = 2
	DefaultNicknameMax = 20

	passwordSymbols = `!@#$%^&*(),.?":{}|<>`
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

func ok() Result {
	return Result{Valid: true}
}

func fail(message string) Result {
	return Result{Valid: false, Message: message}
}

func Email(email string) Result {
	if email == "" {
		return fail("please enter an email address")
	}
	if !emailPattern.MatchString(email) {
		return fail("the email address format is invalid")
	}
	return ok()
}

// Password requires 8 to 20 characters with at least one uppercase letter,
// one lowercase letter, one digit and one symbol.
func Password(password string) Result {
	const message = "the password must be 8 to 20 characters long and contain " +
		"an uppercase letter, a lowercase letter, a digit and a symbol"

	if password == "" {
		return fail("please enter a password")
	}
	if len(password) < PasswordMinLen || len(password) > PasswordMaxLen {
		return fail(message)
	}

	var upper, lower, digit, symbol bool
	for _, r := range password {
		switch {
		case r >= 'A' && r <= 'Z':
			upper = true
		case r >= 'a' && r <= 'z':
			lower = true
		case r >= '0' && r <= '9':
			digit = true
		case strings.ContainsRune(passwordSymbols, r):
			symbol = true
		}
	}
	if !upper || !lower || !digit || !symbol {
		return fail(message)
	}

	return ok()
}

func PasswordConfirm(password, confirm string) Result {
	if confirm == "" {
		return fail("please confirm the password")
	}
	if password != confirm {
		return fail("the passwords do not match")
	}
	return ok()
}

// Nickname bounds the length to [NicknameMinLen, max]. The upper bound is a
// parameter because call sites disagree on it; pass DefaultNicknameMax when
// in doubt.
func Nickname(nickname string, max int) Result {
	if max <= 0 {
		max = DefaultNicknameMax
	}
	if nickname == "" {
		return fail("please enter a nickname")
	}
	if n := len([]rune(nickname)); n < NicknameMinLen || n > max {
		return fail(fmt.Sprintf("the nickname must be %d to %d characters long", NicknameMinLen, max))
	}
	return ok()
}
