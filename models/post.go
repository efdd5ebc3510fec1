// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"fmt"
	"time"
)

// Post is a blog post record stored in the "posts" table.
type Post struct {
	// ID is the surrogate identifier assigned by the store on insert.
	ID int64 `json:"id"`

	// Title is the trimmed post title. It must mention one of the
	// clickbait keywords accepted by the validators package.
	Title string `json:"title"`

	// Content is the optional post body, at least 250 characters when set.
	Content *string `json:"content,omitempty"`

	// Summary is the optional teaser, at most 250 characters when set.
	Summary *string `json:"summary,omitempty"`

	// Category is one of Categories. The zero value is rejected.
	Category Category `json:"category"`

	// CreatedAt is stamped by the service clock when the record is inserted.
	CreatedAt time.Time `json:"created_at"`

	// UpdatedAt is stamped on every update and stays nil until the first one.
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
}

// TableName returns the name of the database table
// associated with the Post model.
func (p Post) TableName() string {
	return "posts"
}

func (p Post) String() string {
	return fmt.Sprintf("Post(id=%d, title=%s content=%s, summary=%s)", p.ID, p.Title, deref(p.Content), deref(p.Summary))
}

// PostUpdate describes a partial update of an existing post.
// A nil pointer leaves the field untouched; only assigned fields are validated.
type PostUpdate struct {
	ID int64 `json:"id"`

	Title *string `json:"title,omitempty"`

	Content      *string `json:"content,omitempty"`
	ClearContent bool    `json:"clear_content,omitempty"`

	Summary      *string `json:"summary,omitempty"`
	ClearSummary bool    `json:"clear_summary,omitempty"`

	Category *Category `json:"category,omitempty"`
}

// IsEmpty reports whether the update assigns no field at all.
func (u PostUpdate) IsEmpty() bool {
	return u.Title == nil &&
		u.Content == nil && !u.ClearContent &&
		u.Summary == nil && !u.ClearSummary &&
		u.Category == nil
}

// Apply writes the assigned fields of u onto post.
func (u PostUpdate) Apply(post *Post) {
	if u.Title != nil {
		post.Title = *u.Title
	}
	switch {
	case u.ClearContent:
		post.Content = nil
	case u.Content != nil:
		content := *u.Content
		post.Content = &content
	}
	switch {
	case u.ClearSummary:
		post.Summary = nil
	case u.Summary != nil:
		summary := *u.Summary
		post.Summary = &summary
	}
	if u.Category != nil {
		post.Category = *u.Category
	}
}

func deref(s *string) string {
	if s == nil {
		return "None"
	}
	return *s
}
