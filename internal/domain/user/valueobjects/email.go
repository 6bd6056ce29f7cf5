package valueobjects

import (
	"fmt"
	"net/mail"
	"strings"
)

const maxEmailLength = 255

// Email is a bare address, trimmed and lower-cased. Display-name forms
// such as "Ada <ada@example.com>" are rejected.
type Email struct {
	value string
}

func NewEmail(value string) (Email, error) {
	normalized := strings.ToLower(strings.TrimSpace(value))
	switch {
	case normalized == "":
		return Email{}, fmt.Errorf("email cannot be empty")
	case len(normalized) > maxEmailLength:
		return Email{}, fmt.Errorf("email cannot exceed %d characters", maxEmailLength)
	}

	addr, err := mail.ParseAddress(normalized)
	if err != nil || addr.Address != normalized || !strings.Contains(normalized[strings.LastIndex(normalized, "@"):], ".") {
		return Email{}, fmt.Errorf("invalid email format: %s", value)
	}
	return Email{value: normalized}, nil
}

func (e Email) String() string { return e.value }

func (e Email) IsZero() bool { return e.value == "" }
