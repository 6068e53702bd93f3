package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyEmailValue    = errors.New("email address value is required")
	ErrEmptyPhoneValue    = errors.New("phone number value is required")
	ErrEmptyURLValue      = errors.New("url address value is required")
	ErrEmptyPostalAddress = errors.New("postal address must carry at least one component")
)
