package utils

import (
	"testing"
	"time"

	"github.com/MKhiriev/go-contact-keeper/models"
)

func TestGenerateGrantToken_Success(t *testing.T) {
	issuer := "test-issuer"
	grants := models.Grants{ReadContacts: true, WriteContacts: true}
	duration := time.Hour
	key := "secret-key"

	tokenString, err := GenerateGrantToken(issuer, grants, duration, key)

	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if tokenString == "" {
		t.Error("expected non-empty signed token")
	}

	parsed, err := ValidateAndParseGrantToken(tokenString, key, issuer)
	if err != nil {
		t.Fatalf("expected generated token to validate, got: %v", err)
	}
	if !parsed.ReadContacts || !parsed.WriteContacts {
		t.Errorf("expected full grants, got %+v", parsed)
	}
}

func TestGenerateGrantToken_InvalidParams(t *testing.T) {
	tests := []struct {
		name     string
		issuer   string
		duration time.Duration
		key      string
	}{
		{"empty issuer", "", time.Hour, "key"},
		{"zero duration", "iss", 0, "key"},
		{"empty key", "iss", time.Hour, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := GenerateGrantToken(tt.issuer, models.Grants{}, tt.duration, tt.key)
			if err == nil {
				t.Error("expected error for invalid parameters, got nil")
			}
		})
	}
}

func TestValidateAndParseGrantToken_ReadOnly(t *testing.T) {
	tokenString, err := GenerateGrantToken("iss", models.Grants{ReadContacts: true}, time.Hour, "key")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	grants, err := ValidateAndParseGrantToken(tokenString, "key", "iss")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !grants.ReadContacts {
		t.Error("expected read grant")
	}
	if grants.WriteContacts {
		t.Error("expected no write grant")
	}
}

func TestValidateAndParseGrantToken_WrongKey(t *testing.T) {
	tokenString, err := GenerateGrantToken("iss", models.Grants{ReadContacts: true}, time.Hour, "key")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, err = ValidateAndParseGrantToken(tokenString, "wrong-key", "iss")
	if err == nil {
		t.Error("expected signature validation error, got nil")
	}
}

func TestValidateAndParseGrantToken_WrongIssuer(t *testing.T) {
	tokenString, err := GenerateGrantToken("iss", models.Grants{ReadContacts: true}, time.Hour, "key")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, err = ValidateAndParseGrantToken(tokenString, "key", "other-iss")
	if err == nil {
		t.Error("expected issuer validation error, got nil")
	}
}

func TestValidateAndParseGrantToken_Expired(t *testing.T) {
	tokenString, err := GenerateGrantToken("iss", models.Grants{ReadContacts: true}, time.Nanosecond, "key")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	time.Sleep(10 * time.Millisecond)

	_, err = ValidateAndParseGrantToken(tokenString, "key", "iss")
	if err == nil {
		t.Error("expected expiration error, got nil")
	}
}

func TestValidateAndParseGrantToken_Garbage(t *testing.T) {
	_, err := ValidateAndParseGrantToken("not-a-token", "key", "iss")
	if err == nil {
		t.Error("expected parse error, got nil")
	}
}

func TestParseBearerToken(t *testing.T) {
	tests := []struct {
		name        string
		header      string
		expected    string
		expectError bool
	}{
		{"valid bearer", "Bearer abc.def.ghi", "abc.def.ghi", false},
		{"padded header", "  Bearer abc.def.ghi  ", "abc.def.ghi", false},
		{"missing token", "Bearer ", "", true},
		{"no scheme", "abc.def.ghi", "", true},
		{"empty header", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseBearerToken(tt.header)
			if tt.expectError {
				if err == nil {
					t.Error("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, got)
			}
		})
	}
}
