package requests

import (
	"errors"
	"strings"
)

// VerifyPayment carries the redirect query parameters the gateway passes back.
type VerifyPayment struct {
	SessionID string `json:"sessionId"`
	Email     string `json:"email"`
}

func (r *VerifyPayment) Validate() error {
	if strings.TrimSpace(r.SessionID) == "" {
		return errors.New("session_id is required")
	}
	if strings.TrimSpace(r.Email) == "" {
		return errors.New("email is required")
	}
	return nil
}

// PaymentCallback is the server-to-server webhook body from the gateway.
type PaymentCallback struct {
	SessionID     string  `json:"session_id"`
	PaymentStatus string  `json:"payment_status"`
	Amount        float64 `json:"amount"`
	PaymentMethod string  `json:"payment_method,omitempty"`
	CustomerEmail string  `json:"customer_email"`
}

func (r *PaymentCallback) Validate() error {
	if strings.TrimSpace(r.SessionID) == "" {
		return errors.New("session_id is required")
	}
	if strings.TrimSpace(r.PaymentStatus) == "" {
		return errors.New("payment_status is required")
	}
	return nil
}

// CheckoutSession is the outbound request to the gateway when a booking is accepted.
type CheckoutSession struct {
	Amount        float64 `json:"amount"`
	Currency      string  `json:"currency"`
	CustomerEmail string  `json:"customer_email"`
	Description   string  `json:"description"`
	SuccessURL    string  `json:"success_url"`
	CancelURL     string  `json:"cancel_url"`
}
