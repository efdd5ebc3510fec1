package validators

import (
	"context"

	"github.com/MKhiriev/go-blog-records/models"
)

// Field name constants used to restrict author validation to a subset of fields.
const (
	// FieldName targets the unique author name.
	FieldName = "name"

	// FieldPhoneNumber targets the optional author phone number.
	FieldPhoneNumber = "phone_number"
)

// AuthorValidator implements Validator for *models.Author and
// *models.AuthorUpdate. Normalized values (the trimmed name) are written back
// into the validated object, which is why only pointers are accepted.
type AuthorValidator struct {
	finder AuthorFinder
}

// NewAuthorValidator constructs an AuthorValidator that checks name uniqueness
// against the persisted authors visible through finder.
func NewAuthorValidator(finder AuthorFinder) Validator {
	return &AuthorValidator{
		finder: finder,
	}
}

// Validate dispatches on the dynamic type of obj.
//
// Supported types:
//   - *models.Author: default fields are name and phone_number.
//   - *models.AuthorUpdate: only assigned fields are validated unless fields
//     are named explicitly; unassigned named fields are skipped.
//
// Validation stops at the first failing field.
func (v *AuthorValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case *models.Author:
		return v.validateAuthor(ctx, value, fields...)
	case *models.AuthorUpdate:
		return v.validateAuthorUpdate(ctx, value, fields...)
	default:
		return ErrUnsupportedType
	}
}

func (v *AuthorValidator) validateAuthor(ctx context.Context, author *models.Author, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldName, FieldPhoneNumber}
	}

	for _, f := range fields {
		switch f {
		case FieldName:
			name, err := ValidateAuthorName(ctx, v.finder, author.Name, author.ID)
			if err != nil {
				return err
			}
			author.Name = name
		case FieldPhoneNumber:
			if err := ValidatePhoneNumber(author.PhoneNumber); err != nil {
				return err
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *AuthorValidator) validateAuthorUpdate(ctx context.Context, update *models.AuthorUpdate, fields ...string) error {
	if len(fields) == 0 {
		fields = assignedAuthorFields(update)
	}

	for _, f := range fields {
		switch f {
		case FieldName:
			if update.Name == nil {
				continue
			}
			name, err := ValidateAuthorName(ctx, v.finder, *update.Name, update.ID)
			if err != nil {
				return err
			}
			update.Name = &name
		case FieldPhoneNumber:
			// clearing assigns null, which is always accepted
			if update.ClearPhoneNumber {
				continue
			}
			if err := ValidatePhoneNumber(update.PhoneNumber); err != nil {
				return err
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func assignedAuthorFields(update *models.AuthorUpdate) []string {
	fields := make([]string, 0, 2)
	if update.Name != nil {
		fields = append(fields, FieldName)
	}
	if update.PhoneNumber != nil || update.ClearPhoneNumber {
		fields = append(fields, FieldPhoneNumber)
	}
	return fields
}
