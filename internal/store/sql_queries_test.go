// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"database/sql"
	"strings"
	"testing"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-blog-records/models"
)

var (
	dollarBuilder   = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
	questionBuilder = sq.StatementBuilder.PlaceholderFormat(sq.Question)
)

func strPtr(s string) *string { return &s }

func Test_buildInsertAuthorQuery(t *testing.T) {
	created := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

	tests := []struct {
		name        string
		builder     sq.StatementBuilderType
		author      models.Author
		placeholder string
		wantPhone   sql.NullString
	}{
		{
			name:        "postgres with phone",
			builder:     dollarBuilder,
			author:      models.Author{Name: "Ada", PhoneNumber: strPtr("1234567890"), CreatedAt: created},
			placeholder: "$3",
			wantPhone:   sql.NullString{String: "1234567890", Valid: true},
		},
		{
			name:        "sqlite without phone",
			builder:     questionBuilder,
			author:      models.Author{Name: "Ada", CreatedAt: created},
			placeholder: "?",
			wantPhone:   sql.NullString{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, args, err := buildInsertAuthorQuery(tt.builder, tt.author)
			require.NoError(t, err)

			q := strings.ToLower(query)
			require.Contains(t, q, "insert into authors")
			require.Contains(t, q, "name,phone_number,created_at")
			require.Contains(t, q, "returning id")
			require.Contains(t, query, tt.placeholder)

			require.Len(t, args, 3)
			assert.Equal(t, "Ada", args[0])
			assert.Equal(t, tt.wantPhone, args[1])
			assert.Equal(t, created, args[2])
		})
	}
}

func Test_buildSelectAuthorsQuery(t *testing.T) {
	t.Run("all authors", func(t *testing.T) {
		query, args, err := buildSelectAuthorsQuery(dollarBuilder, nil)
		require.NoError(t, err)

		q := strings.ToLower(query)
		assert.NotContains(t, q, "where")
		assert.Contains(t, q, "order by id")
		assert.Empty(t, args)
		for _, c := range authorColumns {
			assert.Contains(t, q, c)
		}
	})

	t.Run("by name", func(t *testing.T) {
		query, args, err := buildSelectAuthorsQuery(dollarBuilder, sq.Eq{"name": "Ada"})
		require.NoError(t, err)

		assert.Contains(t, query, "WHERE name = $1")
		assert.Equal(t, []any{"Ada"}, args)
	})
}

func Test_buildUpdateAuthorQuery(t *testing.T) {
	updated := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	author := models.Author{ID: 7, Name: "Ada", UpdatedAt: &updated}

	query, args, err := buildUpdateAuthorQuery(dollarBuilder, author)
	require.NoError(t, err)

	q := strings.ToLower(query)
	assert.Contains(t, q, "update authors set")
	assert.Contains(t, q, "name = $1")
	assert.Contains(t, q, "phone_number = $2")
	assert.Contains(t, q, "updated_at = $3")
	assert.Contains(t, q, "where id = $4")

	require.Len(t, args, 4)
	assert.Equal(t, "Ada", args[0])
	assert.Equal(t, sql.NullString{}, args[1])
	assert.Equal(t, sql.NullTime{Time: updated, Valid: true}, args[2])
	assert.Equal(t, int64(7), args[3])
}

func Test_buildInsertPostQuery(t *testing.T) {
	post := models.Post{Title: "Top", Category: models.Fiction, Summary: strPtr("short")}

	query, args, err := buildInsertPostQuery(questionBuilder, post)
	require.NoError(t, err)

	q := strings.ToLower(query)
	assert.Contains(t, q, "insert into posts")
	assert.Contains(t, q, "title,content,category,summary,created_at")
	assert.Contains(t, q, "returning id")
	assert.NotContains(t, query, "$")

	require.Len(t, args, 5)
	assert.Equal(t, "Top", args[0])
	assert.Equal(t, sql.NullString{}, args[1])
	assert.Equal(t, sql.NullString{String: "Fiction", Valid: true}, args[2])
	assert.Equal(t, sql.NullString{String: "short", Valid: true}, args[3])
}

func Test_buildSelectPostsQuery_ByCategory(t *testing.T) {
	query, args, err := buildSelectPostsQuery(dollarBuilder, sq.Eq{"category": "Non-Fiction"})
	require.NoError(t, err)

	q := strings.ToLower(query)
	assert.Contains(t, q, "from posts")
	assert.Contains(t, q, "where category = $1")
	assert.Contains(t, q, "order by id")
	assert.Equal(t, []any{"Non-Fiction"}, args)
}

func Test_buildUpdatePostQuery(t *testing.T) {
	post := models.Post{ID: 3, Title: "Guess", Content: strPtr("body"), Category: models.NonFiction}

	query, args, err := buildUpdatePostQuery(dollarBuilder, post)
	require.NoError(t, err)

	assert.Contains(t, strings.ToLower(query), "where id = $6")
	require.Len(t, args, 6)
	assert.Equal(t, "Guess", args[0])
	assert.Equal(t, sql.NullString{String: "body", Valid: true}, args[1])
	assert.Equal(t, sql.NullTime{}, args[4])
	assert.Equal(t, int64(3), args[5])
}

func Test_buildDeleteQuery(t *testing.T) {
	query, args, err := buildDeleteQuery(questionBuilder, postsTable, 9)
	require.NoError(t, err)

	assert.Equal(t, "DELETE FROM posts WHERE id = ?", query)
	assert.Equal(t, []any{int64(9)}, args)
}

func Test_nullConversions(t *testing.T) {
	assert.Nil(t, stringPtr(nullString(nil)))
	assert.Equal(t, "x", *stringPtr(nullString(strPtr("x"))))

	assert.False(t, nullCategory("").Valid)
	assert.True(t, nullCategory(models.Fiction).Valid)

	now := time.Now()
	assert.Nil(t, timePtr(nullTime(nil)))
	assert.Equal(t, now, *timePtr(nullTime(&now)))
}
