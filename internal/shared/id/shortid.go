package id

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"strings"
)

const (
	// Base62 alphabet: 0-9, A-Z, a-z
	alphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"

	// DefaultLength is the default length for generated short IDs
	DefaultLength = 12

	// TicketNumberLength is the random part of a ticket number.
	TicketNumberLength = 10
)

// Ticket number prefixes by purchase path.
const (
	PrefixFreeTicket = "FREE"
	PrefixPaidTicket = "TKT"
)

// Generate creates a random short ID with the specified length using Base62 encoding.
// The generated ID is cryptographically random and URL-safe.
func Generate(length int) (string, error) {
	if length <= 0 {
		length = DefaultLength
	}

	result := make([]byte, length)
	alphabetLen := big.NewInt(int64(len(alphabet)))

	for i := 0; i < length; i++ {
		num, err := rand.Int(rand.Reader, alphabetLen)
		if err != nil {
			return "", fmt.Errorf("failed to generate random number: %w", err)
		}
		result[i] = alphabet[num.Int64()]
	}

	return string(result), nil
}

// MustGenerate creates a random short ID and panics on error.
func MustGenerate(length int) string {
	id, err := Generate(length)
	if err != nil {
		panic(err)
	}
	return id
}

// NewTicketNumber returns a human-readable ticket number such as "TKT-4fT9xQ2bLm".
func NewTicketNumber(prefix string) (string, error) {
	id, err := Generate(TicketNumberLength)
	if err != nil {
		return "", err
	}
	return prefix + "-" + id, nil
}

// ParseTicketNumber splits a ticket number into its prefix and random part.
func ParseTicketNumber(number string) (prefix, shortID string, err error) {
	parts := strings.SplitN(number, "-", 2)
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", fmt.Errorf("invalid ticket number format: %s", number)
	}
	return parts[0], parts[1], nil
}

// IsBase62 reports whether s only contains characters from the ID alphabet.
func IsBase62(s string) bool {
	for _, r := range s {
		if !strings.ContainsRune(alphabet, r) {
			return false
		}
	}
	return s != ""
}
