// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package store is the durable record store for authors and posts.
//
// Repositories are backed by database/sql and work against PostgreSQL
// (pgx driver) or SQLite (go-sqlite3). SQL is built with squirrel using the
// placeholder format of the active dialect, and driver errors are classified
// per dialect so that a violated UNIQUE constraint surfaces as
// [ErrAuthorNameTaken] regardless of the backend.
package store

import (
	"context"

	"github.com/MKhiriev/go-blog-records/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// AuthorRepository persists [models.Author] records in the "authors" table.
type AuthorRepository interface {
	// CreateAuthor inserts author and returns it with the assigned ID.
	CreateAuthor(ctx context.Context, author models.Author) (models.Author, error)
	GetAuthor(ctx context.Context, id int64) (models.Author, error)
	// FindAuthorByName returns the author whose name equals name exactly,
	// or ErrAuthorNotFound.
	FindAuthorByName(ctx context.Context, name string) (models.Author, error)
	ListAuthors(ctx context.Context) ([]models.Author, error)
	// UpdateAuthor overwrites every column of the stored author with the
	// same ID.
	UpdateAuthor(ctx context.Context, author models.Author) error
	DeleteAuthor(ctx context.Context, id int64) error
}

// PostRepository persists [models.Post] records in the "posts" table.
type PostRepository interface {
	CreatePost(ctx context.Context, post models.Post) (models.Post, error)
	GetPost(ctx context.Context, id int64) (models.Post, error)
	ListPosts(ctx context.Context) ([]models.Post, error)
	ListPostsByCategory(ctx context.Context, category models.Category) ([]models.Post, error)
	UpdatePost(ctx context.Context, post models.Post) error
	DeletePost(ctx context.Context, id int64) error
}
