package paymentgateway

import "context"

// PaymentGateway confirms that the payment behind a checkout actually happened.
type PaymentGateway interface {
	// VerifyPayment checks the provider reference against the amount owed.
	// Amount is in the smallest currency unit (cents).
	VerifyPayment(ctx context.Context, req VerifyPaymentRequest) (*Verification, error)
}

type VerifyPaymentRequest struct {
	OrderID   uint
	Reference string
	Amount    int64
	Currency  string
}

// Verification is the gateway's answer for a reference.
type Verification struct {
	Verified  bool
	Reference string
	Provider  string
}
