// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes tools for working with context, type-safe keys, grant token
// generation and validation, and other common operations.
package utils

import (
	"context"

	"github.com/MKhiriev/go-contact-keeper/models"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// GrantsCtxKey is the key used to store the caller's permission grants in
// the context. Used together with GetGrantsFromContext for type-safe
// retrieval of the grants from context.Context.
//
// Example of writing a value to the context:
//
//	ctx := context.WithValue(ctx, utils.GrantsCtxKey, grants)
var GrantsCtxKey = contextKey("grants")

// GetGrantsFromContext retrieves the caller's permission grants from the
// context.
//
// Returns the grants and an ok flag:
//   - ok == true  — value is found and has the correct models.Grants type
//   - ok == false — value is missing or has an unexpected type
//
// A missing value means the caller presented no valid grant token; the
// zero-value grants deny everything.
func GetGrantsFromContext(ctx context.Context) (models.Grants, bool) {
	grants, ok := ctx.Value(GrantsCtxKey).(models.Grants)
	return grants, ok
}
