// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// contact keeper's handlers and middleware.
//
// All Msg* constants are human-readable message strings that are written into
// HTTP response bodies or log entries to describe the outcome of an operation.
// Keeping them in one place ensures consistent wording throughout the API.
package app

const (
	// MsgInvalidJSONProvided is returned when the request body cannot be
	// decoded as JSON.
	MsgInvalidJSONProvided = "invalid JSON was passed"

	// MsgInvalidLimitParam is returned when the `limit` query parameter is
	// present but does not parse as an integer.
	MsgInvalidLimitParam = "invalid `limit` query param"

	// MsgInvalidOffsetParam is returned when the `offset` query parameter is
	// present but does not parse as an integer.
	MsgInvalidOffsetParam = "invalid `offset` query param"
)
