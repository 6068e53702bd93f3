package service

import "errors"

var (
	// ErrPermissionDenied is returned when the caller's grants do not
	// authorize the attempted operation. Read operations require the read
	// grant, mutations require the write grant.
	ErrPermissionDenied = errors.New("permission denied")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")

	ErrValidationNoContactID   = errors.New("no contact ID was given")
	ErrValidationNoContactData = errors.New("no contact data was given")
	ErrValidationNoGroupID     = errors.New("no group ID was given")
	ErrValidationNoGroupName   = errors.New("no group name was given")
	ErrValidationNegativePage  = errors.New("negative limit or offset was given")
)
