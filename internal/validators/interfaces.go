package validators

import "context"

// Validator validates domain models before they reach the persistence layer.
// Implementations dispatch on the dynamic type of obj and may restrict
// validation to a subset of fields via the optional field name arguments.
//
// A nil return means the object is valid. Validation failures are returned
// as [FieldErrors] so that callers can render per-field messages.
type Validator interface {
	Validate(ctx context.Context, obj any, fields ...string) error
}
