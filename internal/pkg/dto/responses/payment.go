package responses

import "time"

type Transaction struct {
	ID            string     `json:"id"`
	SessionID     string     `json:"sessionId"`
	AppointmentID string     `json:"appointmentId"`
	Amount        float64    `json:"amount"`
	Currency      string     `json:"currency"`
	PaymentMethod string     `json:"paymentMethod,omitempty"`
	Status        string     `json:"status"`
	SettledAt     *time.Time `json:"settledAt,omitempty"`
}

// VerifiedPayment is the normalized payload joining transaction and
// appointment fields after settlement. MeetingPending flags a provisioning
// failure that must never read as a payment failure.
type VerifiedPayment struct {
	Transaction    Transaction `json:"transaction"`
	Appointment    Appointment `json:"appointment"`
	MeetingPending bool        `json:"meetingPending"`
	NotifyFailed   bool        `json:"notifyFailed,omitempty"`
}

// CheckoutSession is the gateway's answer when a payment session is opened.
type CheckoutSession struct {
	SessionID  string `json:"session_id"`
	PaymentURL string `json:"payment_url"`
}

// SessionStatus is the gateway's answer to a settlement status query.
type SessionStatus struct {
	SessionID     string  `json:"session_id"`
	Status        string  `json:"status"`
	AmountTotal   float64 `json:"amount_total"`
	PaymentMethod string  `json:"payment_method,omitempty"`
	CustomerEmail string  `json:"customer_email"`
}
