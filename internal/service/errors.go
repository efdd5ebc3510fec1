package service

import "errors"

var (
	// ErrNoFieldsToUpdate is returned when an update descriptor assigns
	// nothing.
	ErrNoFieldsToUpdate = errors.New("no fields to update")

	// ErrVersionIsNotSpecified is returned by NewAppInfoService when the
	// application version is empty.
	ErrVersionIsNotSpecified = errors.New("application version is not specified")
)
