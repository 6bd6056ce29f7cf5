package paymentgateway

import (
	"context"
	"strings"
)

const ProviderSimulated = "simulated"

// SimulatedGateway stands in for a real provider: every non-empty
// reference is treated as a settled payment for the requested amount.
type SimulatedGateway struct{}

func NewSimulatedGateway() *SimulatedGateway {
	return &SimulatedGateway{}
}

func (g *SimulatedGateway) VerifyPayment(_ context.Context, req VerifyPaymentRequest) (*Verification, error) {
	reference := strings.TrimSpace(req.Reference)
	return &Verification{
		Verified:  reference != "" && req.Amount > 0,
		Reference: reference,
		Provider:  ProviderSimulated,
	}, nil
}
