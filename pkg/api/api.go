// Package api holds what every resource client shares: the guard error
// raised before any network attempt, and the list-pagination options.
package api

import "errors"

type (
	// ValidationError is raised synchronously by a resource client when the
	// caller input is unusable. The message is meant for direct display.
	ValidationError struct {
		Message string
	}

	// ListOptions drive cursor-based list endpoints. Cursor is an opaque
	// continuation token and is never interpreted client-side.
	ListOptions struct {
		Cursor string
		Sort   string
		Limit  int
	}
)

const (
	SortAsc  = "asc"
	SortDesc = "desc"

	DefaultLimit = 10
	MinLimit     = 1
	MaxLimit     = 50
)

func (e *ValidationError) Error() string {
	return e.Message
}

func Validation(message string) *ValidationError {
	return &ValidationError{Message: message}
}

// IsValidation reports whether err is a client-side guard failure, as
// opposed to a transport outcome.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// Query normalizes the options into outgoing query parameters. The limit
// falls back to DefaultLimit when unset and is clamped into
// [MinLimit, MaxLimit]; any sort other than "asc" becomes "desc"; the
// cursor is only sent when present.
func (o ListOptions) Query() map[string]any {
	limit := o.Limit
	if limit == 0 {
		limit = DefaultLimit
	}
	if limit < MinLimit {
		limit = MinLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}

	sort := SortDesc
	if o.Sort == SortAsc {
		sort = SortAsc
	}

	q := map[string]any{
		"sort":  sort,
		"limit": limit,
	}
	if o.Cursor != "" {
		q["cursor"] = o.Cursor
	}

	return q
}
