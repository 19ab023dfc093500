package models

import "time"

type TransactionStatus string

const (
	TransactionPending TransactionStatus = "pending"
	TransactionSettled TransactionStatus = "settled"
	TransactionFailed  TransactionStatus = "failed"
)

// Transaction records a single payment attempt against the checkout gateway.
// SessionID carries a unique index; a settled transaction is immutable.
type Transaction struct {
	ID            string            `json:"id" bson:"_id,omitempty"`
	SessionID     string            `json:"sessionId" bson:"sessionId"`
	AppointmentID string            `json:"appointmentId" bson:"appointmentId"`
	PatientEmail  string            `json:"patientEmail" bson:"patientEmail"`
	Amount        float64           `json:"amount" bson:"amount"`
	Currency      string            `json:"currency" bson:"currency"`
	PaymentMethod string            `json:"paymentMethod,omitempty" bson:"paymentMethod,omitempty"`
	PaymentLink   string            `json:"paymentLink,omitempty" bson:"paymentLink,omitempty"`
	Status        TransactionStatus `json:"status" bson:"status"`
	SettledAt     *time.Time        `json:"settledAt,omitempty" bson:"settledAt,omitempty"`
	TimeModel     `bson:",inline"`
}
