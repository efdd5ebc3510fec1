// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"fmt"
	"time"
)

// Author is a blog author record stored in the "authors" table.
type Author struct {
	// ID is the surrogate identifier assigned by the store on insert.
	// It never changes after the record is persisted.
	ID int64 `json:"id"`

	// Name is the trimmed display name of the author.
	// No two persisted authors may share the same Name.
	Name string `json:"name"`

	// PhoneNumber is an optional contact number. When set it must consist
	// of exactly ten decimal digits.
	PhoneNumber *string `json:"phone_number,omitempty"`

	// CreatedAt is stamped by the service clock when the record is inserted.
	CreatedAt time.Time `json:"created_at"`

	// UpdatedAt is stamped on every update and stays nil until the first one.
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
}

// TableName returns the name of the database table
// associated with the Author model.
func (a Author) TableName() string {
	return "authors"
}

func (a Author) String() string {
	return fmt.Sprintf("Author(id=%d, name=%s)", a.ID, a.Name)
}

// AuthorUpdate describes a partial update of an existing author.
// A nil pointer leaves the field untouched; only assigned fields are validated.
type AuthorUpdate struct {
	// ID identifies the author being updated.
	ID int64 `json:"id"`

	// Name is the new name, if assigned.
	Name *string `json:"name,omitempty"`

	// PhoneNumber is the new phone number, if assigned.
	PhoneNumber *string `json:"phone_number,omitempty"`

	// ClearPhoneNumber assigns null to the phone number.
	// It takes precedence over PhoneNumber.
	ClearPhoneNumber bool `json:"clear_phone_number,omitempty"`
}

// IsEmpty reports whether the update assigns no field at all.
func (u AuthorUpdate) IsEmpty() bool {
	return u.Name == nil && u.PhoneNumber == nil && !u.ClearPhoneNumber
}

// Apply writes the assigned fields of u onto author.
func (u AuthorUpdate) Apply(author *Author) {
	if u.Name != nil {
		author.Name = *u.Name
	}
	switch {
	case u.ClearPhoneNumber:
		author.PhoneNumber = nil
	case u.PhoneNumber != nil:
		phone := *u.PhoneNumber
		author.PhoneNumber = &phone
	}
}
