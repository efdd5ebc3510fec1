package validators

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/go-blog-records/internal/app"
)

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")
)

// Field rule violations. Every one of them reaches callers wrapped in a
// *ValidationError naming the offending field.
var (
	ErrNameRequired       = errors.New("name is required")
	ErrNameNotUnique      = errors.New("author name must be unique")
	ErrInvalidPhoneNumber = errors.New("phone number must be exactly 10 digits")

	ErrTitleRequired       = errors.New("title is required")
	ErrTitleKeywordMissing = errors.New(`title must contain "Won't Believe", "Secret", "Top", or "Guess"`)
	ErrContentTooShort     = fmt.Errorf("content must be at least %d characters long", MinContentLength)
	ErrSummaryTooLong      = fmt.Errorf("summary must be at most %d characters long", MaxSummaryLength)
	ErrInvalidCategory     = errors.New("category must be one of [Fiction Non-Fiction]")
)

// reasons maps rule sentinels to the messages reported to users.
var reasons = map[error]string{
	ErrNameRequired:        app.MsgNameRequired,
	ErrNameNotUnique:       app.MsgNameNotUnique,
	ErrInvalidPhoneNumber:  app.MsgInvalidPhoneNumber,
	ErrTitleRequired:       app.MsgTitleRequired,
	ErrTitleKeywordMissing: app.MsgTitleKeywordMissing,
	ErrContentTooShort:     app.MsgContentTooShort,
	ErrSummaryTooLong:      app.MsgSummaryTooLong,
	ErrInvalidCategory:     app.MsgInvalidCategory,
}

// ValidationError reports that a candidate value was rejected for Field.
// Err holds the rule sentinel, so callers can match with errors.Is.
type ValidationError struct {
	Field  string
	Reason string
	Err    error
}

// NewValidationError builds a ValidationError for field. Reason is the user
// message registered for the rule sentinel err, or err's own message.
func NewValidationError(field string, err error) *ValidationError {
	reason, ok := reasons[err]
	if !ok {
		reason = err.Error()
	}

	return &ValidationError{
		Field:  field,
		Reason: reason,
		Err:    err,
	}
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// IsValidationError reports whether err carries a *ValidationError.
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
