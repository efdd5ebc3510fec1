// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-blog-records/internal/mock"
	"github.com/MKhiriev/go-blog-records/internal/store"
	"github.com/MKhiriev/go-blog-records/models"
)

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func ptr(s string) *string { return &s }

func chars(n int) string { return strings.Repeat("a", n) }

func requireValidationError(t *testing.T, err error, field string, sentinel error) {
	t.Helper()

	require.Error(t, err)
	var ve *ValidationError
	require.True(t, errors.As(err, &ve), "expected *ValidationError, got %T: %v", err, err)
	assert.Equal(t, field, ve.Field)
	assert.ErrorIs(t, err, sentinel)
}

// ---------------------------------------------------------------------------
// ValidateAuthorName
// ---------------------------------------------------------------------------

func TestValidateAuthorName_UniqueNameIsTrimmed(t *testing.T) {
	ctrl := gomock.NewController(t)
	finder := mock.NewMockAuthorFinder(ctrl)
	ctx := context.Background()

	finder.EXPECT().FindAuthorByName(ctx, "Ada").Return(models.Author{}, store.ErrAuthorNotFound)

	name, err := ValidateAuthorName(ctx, finder, "  Ada\t", 0)
	require.NoError(t, err)
	assert.Equal(t, "Ada", name)
}

func TestValidateAuthorName_Blank(t *testing.T) {
	for _, name := range []string{"", " ", "\t\n "} {
		t.Run(name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			finder := mock.NewMockAuthorFinder(ctrl)

			// blank names never reach the store
			_, err := ValidateAuthorName(context.Background(), finder, name, 0)
			requireValidationError(t, err, FieldName, ErrNameRequired)
		})
	}
}

func TestValidateAuthorName_TakenByAnotherAuthor(t *testing.T) {
	ctrl := gomock.NewController(t)
	finder := mock.NewMockAuthorFinder(ctrl)

	finder.EXPECT().FindAuthorByName(gomock.Any(), "Ada").Return(models.Author{ID: 1, Name: "Ada"}, nil)

	_, err := ValidateAuthorName(context.Background(), finder, " Ada", 0)
	requireValidationError(t, err, FieldName, ErrNameNotUnique)
	assert.Equal(t, "invalid name: Author name must be unique", err.Error())
}

func TestValidateAuthorName_OwnNameOnUpdate(t *testing.T) {
	ctrl := gomock.NewController(t)
	finder := mock.NewMockAuthorFinder(ctrl)

	finder.EXPECT().FindAuthorByName(gomock.Any(), "Ada").Return(models.Author{ID: 7, Name: "Ada"}, nil)

	name, err := ValidateAuthorName(context.Background(), finder, "Ada", 7)
	require.NoError(t, err)
	assert.Equal(t, "Ada", name)
}

func TestValidateAuthorName_LookupFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	finder := mock.NewMockAuthorFinder(ctrl)
	dbErr := errors.New("connection refused")

	finder.EXPECT().FindAuthorByName(gomock.Any(), "Ada").Return(models.Author{}, dbErr)

	_, err := ValidateAuthorName(context.Background(), finder, "Ada", 0)
	require.Error(t, err)
	assert.ErrorIs(t, err, dbErr)
	assert.False(t, IsValidationError(err), "store failures are not validation failures")
}

// ---------------------------------------------------------------------------
// ValidatePhoneNumber
// ---------------------------------------------------------------------------

func TestValidatePhoneNumber(t *testing.T) {
	tests := []struct {
		name    string
		phone   *string
		wantErr bool
	}{
		{"absent", nil, false},
		{"ten digits", ptr("1234567890"), false},
		{"too short", ptr("12345"), true},
		{"letters", ptr("12345abcde"), true},
		{"signed", ptr("+123456789"), true},
		{"spaces", ptr("123 456 78"), true},
		{"eleven digits", ptr("12345678901"), true},
		{"empty string", ptr(""), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePhoneNumber(tt.phone)
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			requireValidationError(t, err, FieldPhoneNumber, ErrInvalidPhoneNumber)
		})
	}
}

// ---------------------------------------------------------------------------
// ValidatePostTitle
// ---------------------------------------------------------------------------

func TestValidatePostTitle(t *testing.T) {
	tests := []struct {
		name     string
		title    string
		want     string
		sentinel error
	}{
		{name: "top", title: "Top 10 facts", want: "Top 10 facts"},
		{name: "won't believe, any case", title: "You WON'T BELIEVE this", want: "You WON'T BELIEVE this"},
		{name: "guess inside a word", title: "Guesswork", want: "Guesswork"},
		{name: "secret as prefix", title: "Secretive plans", want: "Secretive plans"},
		{name: "trimmed", title: "  Top secret  ", want: "Top secret"},
		{name: "no keyword", title: "Ordinary title", sentinel: ErrTitleKeywordMissing},
		{name: "empty", title: "", sentinel: ErrTitleRequired},
		{name: "blank", title: "   ", sentinel: ErrTitleRequired},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ValidatePostTitle(tt.title)
			if tt.sentinel != nil {
				requireValidationError(t, err, FieldTitle, tt.sentinel)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

// ---------------------------------------------------------------------------
// ValidatePostContent / ValidatePostSummary
// ---------------------------------------------------------------------------

func TestValidatePostContent(t *testing.T) {
	tests := []struct {
		name    string
		content *string
		wantErr bool
	}{
		{"absent", nil, false},
		{"empty", ptr(""), false},
		{"249 chars", ptr(chars(249)), true},
		{"250 chars", ptr(chars(250)), false},
		{"251 chars", ptr(chars(251)), false},
		{"250 multibyte chars", ptr(strings.Repeat("é", 250)), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePostContent(tt.content)
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			requireValidationError(t, err, FieldContent, ErrContentTooShort)
		})
	}
}

func TestValidatePostSummary(t *testing.T) {
	tests := []struct {
		name    string
		summary *string
		wantErr bool
	}{
		{"absent", nil, false},
		{"empty", ptr(""), false},
		{"short", ptr("tl;dr"), false},
		{"250 chars", ptr(chars(250)), false},
		{"251 chars", ptr(chars(251)), true},
		{"250 multibyte chars", ptr(strings.Repeat("ü", 250)), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePostSummary(tt.summary)
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			requireValidationError(t, err, FieldSummary, ErrSummaryTooLong)
		})
	}
}

// ---------------------------------------------------------------------------
// ValidatePostCategory
// ---------------------------------------------------------------------------

func TestValidatePostCategory(t *testing.T) {
	for _, c := range models.Categories {
		assert.NoError(t, ValidatePostCategory(c), c)
	}

	for _, c := range []models.Category{"", "Drama", "fiction", "Non Fiction"} {
		err := ValidatePostCategory(c)
		requireValidationError(t, err, FieldCategory, ErrInvalidCategory)
		assert.Equal(t, "invalid category: Category must be one of ['Fiction', 'Non-Fiction']", err.Error())
	}
}

func TestNewValidationError_Reason(t *testing.T) {
	ve := NewValidationError(FieldContent, ErrContentTooShort)
	assert.Equal(t, "Content must be at least 250 characters long", ve.Reason)
	assert.ErrorIs(t, ve, ErrContentTooShort)

	other := errors.New("custom rule")
	assert.Equal(t, "custom rule", NewValidationError(FieldTitle, other).Reason)
}

func TestErrorMessages(t *testing.T) {
	assert.Equal(t, "content must be at least 250 characters long", ErrContentTooShort.Error())
	assert.Equal(t, "summary must be at most 250 characters long", ErrSummaryTooLong.Error())
	assert.Equal(t, "phone number must be exactly 10 digits", ErrInvalidPhoneNumber.Error())
}
