// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// go-blog-records services.
//
// All Msg* constants are human-readable message strings that describe why a
// record was rejected. They end up in ValidationError.Reason and in log
// entries, so the wording stays identical wherever a rejection is reported.
package app

const (
	// MsgNameRequired is reported when an author name is empty or blank.
	MsgNameRequired = "Name is required"

	// MsgNameNotUnique is reported when another stored author already has
	// the (trimmed) name.
	MsgNameNotUnique = "Author name must be unique"

	// MsgInvalidPhoneNumber is reported when a phone number is present but
	// is not exactly ten decimal digits.
	MsgInvalidPhoneNumber = "Phone number must be exactly 10 digits"

	// MsgTitleRequired is reported when a post title is empty or blank.
	MsgTitleRequired = "Title is required"

	// MsgTitleKeywordMissing is reported when a post title contains none of
	// the click-bait keywords.
	MsgTitleKeywordMissing = `Title must contain "Won't Believe", "Secret", "Top", or "Guess"`

	// MsgContentTooShort is reported when post content is present but
	// shorter than 250 characters.
	MsgContentTooShort = "Content must be at least 250 characters long"

	// MsgSummaryTooLong is reported when a post summary is longer than 250
	// characters.
	MsgSummaryTooLong = "Summary must be at most 250 characters long"

	// MsgInvalidCategory is reported when a post category is missing or not
	// in the allow-list.
	MsgInvalidCategory = "Category must be one of ['Fiction', 'Non-Fiction']"
)
