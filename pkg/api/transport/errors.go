package transport

import (
	"encoding/json"
	"errors"
	"fmt"
)

type (
	// ErrorKind tells apart the failure points of an exchange. There are
	// exactly five: the deadline fired, the connection itself failed, a body
	// that should have been JSON was not, the server bounced us to the login
	// page, or the server answered with a non-2xx status.
	ErrorKind int

	// Error is the single error shape raised for every category of exchange
	// failure. StatusCode is 0 when no HTTP status was received.
	Error struct {
		Kind       ErrorKind
		Message    string
		StatusCode int
		Data       json.RawMessage
		Errors     map[string]string
		Raw        json.RawMessage
	}
)

const (
	KindNetwork ErrorKind = iota + 1
	KindTimeout
	KindParse
	KindAuthRedirect
	KindApplication
)

func (e *Error) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("%s (status %d)", e.Message, e.StatusCode)
	}
	return e.Message
}

// AsError unwraps err into a *Error when the failure came from the transport.
func AsError(err error) (*Error, bool) {
	var te *Error
	if errors.As(err, &te) {
		return te, true
	}
	return nil, false
}

func IsTimeout(err error) bool {
	te, ok := AsError(err)
	return ok && te.Kind == KindTimeout
}

func IsAuthRedirect(err error) bool {
	te, ok := AsError(err)
	return ok && te.Kind == KindAuthRedirect
}

func timeoutError() *Error {
	return &Error{Kind: KindTimeout, Message: "request timed out"}
}

func networkError() *Error {
	return &Error{Kind: KindNetwork, Message: "network error"}
}

func parseError(status int) *Error {
	return &Error{Kind: KindParse, Message: "failed to parse the response body", StatusCode: status}
}

func authRedirectError() *Error {
	return &Error{Kind: KindAuthRedirect, Message: "login required", StatusCode: 401}
}
