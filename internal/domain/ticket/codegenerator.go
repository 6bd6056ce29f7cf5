package ticket

import (
	"github.com/google/uuid"

	"github.com/eventora/eventora/internal/shared/id"
)

// CodeGenerator produces the printed ticket number and the secret encoded in its QR code.
type CodeGenerator interface {
	TicketNumber(prefix string) (string, error)
	QRSecret() (string, error)
}

type DefaultCodeGenerator struct{}

func NewDefaultCodeGenerator() *DefaultCodeGenerator {
	return &DefaultCodeGenerator{}
}

func (g *DefaultCodeGenerator) TicketNumber(prefix string) (string, error) {
	return id.NewTicketNumber(prefix)
}

func (g *DefaultCodeGenerator) QRSecret() (string, error) {
	secret, err := uuid.NewRandom()
	if err != nil {
		return "", err
	}
	return secret.String(), nil
}
