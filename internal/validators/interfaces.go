// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators is the record validation layer that guards every
// write of an Author or a Post.
//
// Core concepts:
//   - Validator: generic interface to validate (and normalize) a record or an
//     update descriptor. Supports optional field-level scoping so that a single
//     assignment re-validates only the field it touches.
//   - Per-field rules (ValidateAuthorName, ValidatePostTitle, ...): pure
//     functions returning the normalized value or a *ValidationError.
//   - AuthorFinder: read-only view of persisted authors used by the name
//     uniqueness rule.
//
// Usage patterns:
//  1. Inject a Validator into the service that persists records.
//  2. Pass a pointer to the record; normalized values are written back.
//  3. Match failures with errors.Is against the rule sentinels or
//     errors.As against *ValidationError.
package validators

import (
	"context"

	"github.com/MKhiriev/go-blog-records/models"
)

// Validator defines a generic validation interface for records.
// Implementations may normalize the validated fields in place.
type Validator interface {

	// Validate validates the provided input and optionally
	// restricts validation to specific named fields.
	Validate(context.Context, any, ...string) error
}

//go:generate mockgen -source=interfaces.go -destination=../mock/validators_mock.go -package=mock

// AuthorFinder looks up persisted authors by their exact (already trimmed) name.
// It must return store.ErrAuthorNotFound when no author matches.
type AuthorFinder interface {
	FindAuthorByName(ctx context.Context, name string) (models.Author, error)
}
