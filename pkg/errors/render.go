package errors

import (
	"fmt"
	"strings"
)

// MissingFieldError reports that a required template field was absent
// from an entry. The failure is scoped to that entry; sibling entries
// are unaffected.
type MissingFieldError struct {
	Key   string // citation key of the offending entry
	Field string // field the template required
}

// Error implements the error interface.
func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("entry %q: missing required field %q", e.Key, e.Field)
}

// Code returns the error code for this error type.
func (e *MissingFieldError) Code() Code { return ErrCodeMissingField }

// UnsupportedTypeError reports that a style has no renderer registered
// for an entry's type. Entries never fall through to a default renderer.
type UnsupportedTypeError struct {
	Key   string // citation key of the offending entry
	Type  string // entry type tag
	Style string // active style identifier
}

// Error implements the error interface.
func (e *UnsupportedTypeError) Error() string {
	return fmt.Sprintf("entry %q: style %q has no renderer for entry type %q", e.Key, e.Style, e.Type)
}

// Code returns the error code for this error type.
func (e *UnsupportedTypeError) Code() Code { return ErrCodeUnsupportedType }

// UnknownStyleError reports a style identifier that is not in the
// registry. This aborts a rendering pass before any entry is processed.
type UnknownStyleError struct {
	Style string   // requested style identifier
	Known []string // currently registered identifiers, sorted
}

// Error implements the error interface.
func (e *UnknownStyleError) Error() string {
	if len(e.Known) == 0 {
		return fmt.Sprintf("unknown style %q (no styles registered)", e.Style)
	}
	return fmt.Sprintf("unknown style %q (registered: %s)", e.Style, strings.Join(e.Known, ", "))
}

// Code returns the error code for this error type.
func (e *UnknownStyleError) Code() Code { return ErrCodeUnknownStyle }
