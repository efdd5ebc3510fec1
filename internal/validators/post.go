package validators

import (
	"context"

	"github.com/MKhiriev/go-blog-records/models"
)

const (
	FieldTitle    = "title"
	FieldContent  = "content"
	FieldSummary  = "summary"
	FieldCategory = "category"
)

// PostValidator implements Validator for *models.Post and *models.PostUpdate.
// Post rules are pure, so it needs no store access.
type PostValidator struct {
}

func NewPostValidator() Validator {
	return &PostValidator{}
}

// Validate dispatches on the dynamic type of obj. A post is validated in the
// order title, content, summary, category; an update validates its assigned
// fields only.
func (v *PostValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case *models.Post:
		return v.validatePost(value, fields...)
	case *models.PostUpdate:
		return v.validatePostUpdate(value, fields...)
	default:
		return ErrUnsupportedType
	}
}

func (v *PostValidator) validatePost(post *models.Post, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldTitle, FieldContent, FieldSummary, FieldCategory}
	}

	for _, f := range fields {
		switch f {
		case FieldTitle:
			title, err := ValidatePostTitle(post.Title)
			if err != nil {
				return err
			}
			post.Title = title
		case FieldContent:
			if err := ValidatePostContent(post.Content); err != nil {
				return err
			}
		case FieldSummary:
			if err := ValidatePostSummary(post.Summary); err != nil {
				return err
			}
		case FieldCategory:
			if err := ValidatePostCategory(post.Category); err != nil {
				return err
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *PostValidator) validatePostUpdate(update *models.PostUpdate, fields ...string) error {
	if len(fields) == 0 {
		fields = assignedPostFields(update)
	}

	for _, f := range fields {
		switch f {
		case FieldTitle:
			if update.Title == nil {
				continue
			}
			title, err := ValidatePostTitle(*update.Title)
			if err != nil {
				return err
			}
			update.Title = &title
		case FieldContent:
			if update.ClearContent {
				continue
			}
			if err := ValidatePostContent(update.Content); err != nil {
				return err
			}
		case FieldSummary:
			if update.ClearSummary {
				continue
			}
			if err := ValidatePostSummary(update.Summary); err != nil {
				return err
			}
		case FieldCategory:
			if update.Category == nil {
				continue
			}
			if err := ValidatePostCategory(*update.Category); err != nil {
				return err
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func assignedPostFields(update *models.PostUpdate) []string {
	fields := make([]string, 0, 4)
	if update.Title != nil {
		fields = append(fields, FieldTitle)
	}
	if update.Content != nil || update.ClearContent {
		fields = append(fields, FieldContent)
	}
	if update.Summary != nil || update.ClearSummary {
		fields = append(fields, FieldSummary)
	}
	if update.Category != nil {
		fields = append(fields, FieldCategory)
	}
	return fields
}
