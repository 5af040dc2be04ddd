// Package errx formats wrapped errors against a fixed sentinel, the
// convention used throughout this repository: callers declare a package
// level `Err*` sentinel with `errors.New`, then attach call-specific
// context with Wrap or With. The sentinel stays matchable with
// errors.Is; the context is for humans reading logs.
package errx

import "fmt"

// Wrap attaches err to sentinel so that errors.Is(result, sentinel) and
// errors.Is(result, err) both hold.
func Wrap(sentinel, err error) error {
	return fmt.Errorf("%w: %w", sentinel, err)
}

// With attaches a formatted message to sentinel. format is appended
// directly after the sentinel's text, so callers conventionally start it
// with ": ". A trailing "%w" verb may reference an error to wrap, in
// which case errors.Is also matches that error.
func With(sentinel error, format string, args ...any) error {
	return fmt.Errorf("%w"+format, append([]any{sentinel}, args...)...)
}
