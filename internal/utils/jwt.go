package utils

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-contact-keeper/models"
	"github.com/golang-jwt/jwt/v5"
)

// GenerateGrantToken creates a signed HMAC-SHA256 permission grant token.
//
// The token includes the following standard claims:
//   - Issuer    (iss): identifies the service that issued the token
//   - IssuedAt  (iat): the current time
//   - ExpiresAt (exp): the current time plus tokenDuration
//
// plus the grant booleans ("read", "write") this engine authorizes by.
//
// All parameters are required. Returns an error if any of them are empty or
// zero.
func GenerateGrantToken(issuer string, grants models.Grants, tokenDuration time.Duration, signKey string) (string, error) {
	if issuer == "" || tokenDuration == 0 || signKey == "" {
		return "", errors.New("invalid params for generating grant token")
	}

	now := time.Now()
	claims := &models.GrantClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			ExpiresAt: jwt.NewNumericDate(now.Add(tokenDuration)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
		ReadContacts:  grants.ReadContacts,
		WriteContacts: grants.WriteContacts,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(signKey))
	if err != nil {
		return "", fmt.Errorf("error occurred during signing grant token: %w", err)
	}

	return tokenString, nil
}

// ValidateAndParseGrantToken validates the given grant token string and
// extracts the permission grants it carries.
//
// Validation includes:
//   - Signature verification using the provided sign key
//   - Issuer (iss) claim check against the provided tokenIssuer
//   - Expiration (exp) claim check
//
// Returns the zero-value grants together with a non-nil error when the token
// does not validate; callers treat that as "nothing granted".
func ValidateAndParseGrantToken(tokenString, tokenSignKey, tokenIssuer string) (models.Grants, error) {
	claims := &models.GrantClaims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		return []byte(tokenSignKey), nil
	}, jwt.WithIssuer(tokenIssuer))
	if err != nil {
		return models.Grants{}, fmt.Errorf("error occurred validating and parsing token: %w", err)
	}

	return claims.Grants(), nil
}

func ParseBearerToken(authorizationHeader string) (string, error) {
	parts := strings.Split(strings.TrimSpace(authorizationHeader), " ")
	if len(parts) != 2 || parts[1] == "" {
		return "", errors.New("invalid authorization header")
	}
	return parts[1], nil
}
