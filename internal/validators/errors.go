package validators

import (
	"errors"
	"sort"
	"strings"
)

// ErrUnsupportedType is returned by [Validator.Validate] when the given
// object does not match any model known to the validator.
var ErrUnsupportedType = errors.New("unsupported type for validation")

// FieldErrors maps a field name to a human-readable validation message.
// Absence of a key means that field is valid; an empty map means the whole
// object is valid (validators return nil instead of an empty map).
//
// FieldErrors implements the error interface so it can travel through
// error-returning call chains; callers recover the per-field view with
// [errors.As].
type FieldErrors map[string]string

// Error implements the error interface. Messages are joined in field-name
// order for deterministic output.
func (e FieldErrors) Error() string {
	if len(e) == 0 {
		return ""
	}

	fields := make([]string, 0, len(e))
	for field := range e {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	parts := make([]string, 0, len(fields))
	for _, field := range fields {
		parts = append(parts, field+": "+e[field])
	}

	return strings.Join(parts, "; ")
}
