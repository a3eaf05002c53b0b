package validators

import (
	"context"
	"strings"

	"github.com/MKhiriev/ranking-mk2/models"
)

// Field name constants used to specify which fields should be validated.
// These constants are passed to Validate to restrict validation to a subset
// of fields (field-level scoping) and double as the keys of [FieldErrors],
// so the HTTP layer can render messages next to the matching form input.
const (
	// FieldAccountName targets the influencer's handle.
	FieldAccountName = "accountName"

	// FieldProfileURL targets the optional profile link.
	FieldProfileURL = "profileUrl"

	// FieldFollowers targets the follower count.
	FieldFollowers = "followers"

	// FieldImageURL targets the optional avatar link.
	FieldImageURL = "imageUrl"
)

// Validation messages shown inline next to form fields.
const (
	msgAccountNameRequired = "アカウント名は必須です"
	msgAccountNamePrefix   = "アカウント名は@から始まる必要があります"
	msgFollowersPositive   = "フォロワー数は1以上である必要があります"
	msgProfileURLInvalid   = "有効なURLを入力してください"
	msgImageURLInvalid     = "有効な画像URLを入力してください"
)

// defaultDraftFields is the field set validated when the caller does not
// scope the validation. Area and store name are free text and unconstrained.
var defaultDraftFields = []string{
	FieldAccountName,
	FieldFollowers,
	FieldProfileURL,
	FieldImageURL,
}

// RankingValidator implements the [Validator] interface for ranking form
// drafts. Validation is purely local and synchronous: it never touches the
// store, and a failed validation blocks the store call entirely.
type RankingValidator struct {
}

// NewRankingValidator constructs a new RankingValidator
// and returns it as the Validator interface.
func NewRankingValidator() Validator {
	return &RankingValidator{}
}

// Validate dispatches validation to the appropriate type-specific method
// based on the dynamic type of obj. Both value and pointer forms of each
// supported model are accepted.
//
// Supported types:
//   - models.RankingDraft / *models.RankingDraft
//
// Returns ErrUnsupportedType if obj does not match any known model, a
// [FieldErrors] value describing every failing field, or nil when obj is
// valid. Optional fields restrict validation to the named subset; when
// omitted, accountName, followers, profileUrl, and imageUrl are validated.
func (v *RankingValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.RankingDraft:
		return v.validateDraft(ctx, value, fields...)
	case *models.RankingDraft:
		return v.validateDraft(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *RankingValidator) validateDraft(_ context.Context, draft models.RankingDraft, fields ...string) error {
	if len(fields) == 0 {
		fields = defaultDraftFields
	}

	fieldErrors := make(FieldErrors)
	for _, field := range fields {
		switch field {
		case FieldAccountName:
			if message, ok := validateAccountName(draft.AccountName); !ok {
				fieldErrors[FieldAccountName] = message
			}
		case FieldFollowers:
			if draft.Followers <= 0 {
				fieldErrors[FieldFollowers] = msgFollowersPositive
			}
		case FieldProfileURL:
			if !validOptionalURL(draft.ProfileURL) {
				fieldErrors[FieldProfileURL] = msgProfileURLInvalid
			}
		case FieldImageURL:
			if !validOptionalURL(draft.ImageURL) {
				fieldErrors[FieldImageURL] = msgImageURLInvalid
			}
		}
	}

	if len(fieldErrors) == 0 {
		return nil
	}

	return fieldErrors
}

func validateAccountName(accountName string) (string, bool) {
	trimmed := strings.TrimSpace(accountName)
	if trimmed == "" {
		return msgAccountNameRequired, false
	}
	if !strings.HasPrefix(trimmed, "@") {
		return msgAccountNamePrefix, false
	}

	return "", true
}

// validOptionalURL reports whether an optional URL field is acceptable:
// blank values pass, non-blank values must start with "http".
func validOptionalURL(rawURL string) bool {
	if strings.TrimSpace(rawURL) == "" {
		return true
	}

	return strings.HasPrefix(rawURL, "http")
}
