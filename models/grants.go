package models

import "github.com/golang-jwt/jwt/v5"

// Grants carries the permission booleans the engine is handed before any
// store access: read access to contact data and write access to it. The
// engine performs no permission acquisition itself; a missing or invalid
// token simply resolves to the zero value (nothing granted).
type Grants struct {
	ReadContacts  bool `json:"readContacts"`
	WriteContacts bool `json:"writeContacts"`
}

// GrantClaims is the JWT claim set of a permission token. The standard
// registered claims (iss, exp, iat) are validated by the parser; the grant
// booleans are the payload this engine cares about.
type GrantClaims struct {
	jwt.RegisteredClaims

	ReadContacts  bool `json:"read"`
	WriteContacts bool `json:"write"`
}

// Grants extracts the permission booleans from the claim set.
func (c *GrantClaims) Grants() Grants {
	return Grants{
		ReadContacts:  c.ReadContacts,
		WriteContacts: c.WriteContacts,
	}
}
