// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service holds the record services for authors and posts.
//
// Each service is split in two layers: an inner service that owns
// persistence and the clock, and a validation service that wraps it and
// runs the validators on every write before delegating.
package service

import (
	"context"

	"github.com/MKhiriev/go-blog-records/models"
)

// AuthorService creates, reads, updates and deletes authors.
type AuthorService interface {
	CreateAuthor(ctx context.Context, author models.Author) (models.Author, error)
	GetAuthor(ctx context.Context, id int64) (models.Author, error)
	ListAuthors(ctx context.Context) ([]models.Author, error)
	// UpdateAuthor applies the assigned fields of update to the stored
	// author and returns the result.
	UpdateAuthor(ctx context.Context, update models.AuthorUpdate) (models.Author, error)
	DeleteAuthor(ctx context.Context, id int64) error
}

// PostService creates, reads, updates and deletes posts.
type PostService interface {
	CreatePost(ctx context.Context, post models.Post) (models.Post, error)
	GetPost(ctx context.Context, id int64) (models.Post, error)
	ListPosts(ctx context.Context) ([]models.Post, error)
	ListPostsByCategory(ctx context.Context, category models.Category) ([]models.Post, error)
	// UpdatePost applies the assigned fields of update to the stored post
	// and returns the result.
	UpdatePost(ctx context.Context, update models.PostUpdate) (models.Post, error)
	DeletePost(ctx context.Context, id int64) error
}

// AppInfoService reports static information about the running application.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	GetBuildInfo(ctx context.Context) models.BuildInfo
}

// AuthorServiceWrapper defines middleware composition for AuthorService.
// Implementations wrap an existing AuthorService to add behavior such as
// validation.
type AuthorServiceWrapper interface {
	Wrap(AuthorService) AuthorService
}

// PostServiceWrapper defines middleware composition for PostService.
type PostServiceWrapper interface {
	Wrap(PostService) PostService
}
