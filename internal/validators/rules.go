// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"errors"
	"fmt"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"

	"github.com/MKhiriev/go-blog-records/internal/store"
	"github.com/MKhiriev/go-blog-records/models"
)

const (
	// PhoneNumberLength is the exact number of digits of an author phone number.
	PhoneNumberLength = 10

	// MinContentLength is the minimum length, in characters, of post content.
	MinContentLength = 250

	// MaxSummaryLength is the maximum length, in characters, of a post summary.
	MaxSummaryLength = 250
)

// Keywords are the lower-case phrases of which a post title must contain at least one.
var Keywords = []string{
	"won't believe",
	"secret",
	"top",
	"guess",
}

var (
	phoneNumberRules = []validation.Rule{
		validation.Required,
		validation.RuneLength(PhoneNumberLength, PhoneNumberLength),
		is.Digit,
	}
	contentRules  = []validation.Rule{validation.RuneLength(MinContentLength, 0)}
	summaryRules  = []validation.Rule{validation.RuneLength(0, MaxSummaryLength)}
	categoryRules = []validation.Rule{validation.Required, validation.In(allowedCategories()...)}
	titleRules    = []validation.Rule{validation.By(containsKeyword)}
)

// ValidateAuthorName trims name and checks that it is not blank and that no
// other persisted author already uses it. selfID is the ID of the author being
// updated and is zero for a new author.
//
// The lookup always goes to finder, so only committed authors count. Errors
// from finder other than store.ErrAuthorNotFound are returned wrapped and are
// not validation failures.
func ValidateAuthorName(ctx context.Context, finder AuthorFinder, name string, selfID int64) (string, error) {
	name = strings.TrimSpace(name)
	if err := validation.Validate(name, validation.Required); err != nil {
		return "", NewValidationError(FieldName, ErrNameRequired)
	}

	existing, err := finder.FindAuthorByName(ctx, name)
	if errors.Is(err, store.ErrAuthorNotFound) {
		return name, nil
	}
	if err != nil {
		return "", fmt.Errorf("error checking author name uniqueness: %w", err)
	}

	if existing.ID != selfID {
		return "", NewValidationError(FieldName, ErrNameNotUnique)
	}

	return name, nil
}

// ValidatePhoneNumber accepts a nil phone number. Any other value, the empty
// string included, must be exactly PhoneNumberLength decimal digits.
// A numeric parse is not enough: signs and spaces are rejected.
func ValidatePhoneNumber(phone *string) error {
	if phone == nil {
		return nil
	}

	if err := validation.Validate(*phone, phoneNumberRules...); err != nil {
		return NewValidationError(FieldPhoneNumber, ErrInvalidPhoneNumber)
	}

	return nil
}

// ValidatePostTitle trims title, rejects blank titles and titles that do not
// contain any of Keywords (case-insensitive substring match).
func ValidatePostTitle(title string) (string, error) {
	title = strings.TrimSpace(title)
	if err := validation.Validate(title, validation.Required); err != nil {
		return "", NewValidationError(FieldTitle, ErrTitleRequired)
	}

	if err := validation.Validate(title, titleRules...); err != nil {
		return "", NewValidationError(FieldTitle, ErrTitleKeywordMissing)
	}

	return title, nil
}

// ValidatePostContent accepts absent or empty content; otherwise the content
// must be at least MinContentLength characters.
func ValidatePostContent(content *string) error {
	if err := validation.Validate(content, contentRules...); err != nil {
		return NewValidationError(FieldContent, ErrContentTooShort)
	}
	return nil
}

// ValidatePostSummary accepts absent or empty summaries; otherwise the summary
// must be at most MaxSummaryLength characters.
func ValidatePostSummary(summary *string) error {
	if err := validation.Validate(summary, summaryRules...); err != nil {
		return NewValidationError(FieldSummary, ErrSummaryTooLong)
	}
	return nil
}

// ValidatePostCategory requires category to be one of models.Categories.
// A missing category fails with the same error as an unknown one.
func ValidatePostCategory(category models.Category) error {
	if err := validation.Validate(category, categoryRules...); err != nil {
		return NewValidationError(FieldCategory, ErrInvalidCategory)
	}
	return nil
}

func containsKeyword(value any) error {
	title, err := validation.EnsureString(value)
	if err != nil {
		return err
	}

	lower := strings.ToLower(title)
	for _, keyword := range Keywords {
		if strings.Contains(lower, keyword) {
			return nil
		}
	}

	return ErrTitleKeywordMissing
}

func allowedCategories() []any {
	allowed := make([]any, 0, len(models.Categories))
	for _, c := range models.Categories {
		allowed = append(allowed, c)
	}
	return allowed
}
