package contracts

import (
	"context"
	"medibook-service/internal/app/models"
	"time"
)

type TransactionRepository interface {
	// CreateTransaction inserts a pending transaction. When the unique index
	// on sessionId rejects the insert, the already-stored transaction is
	// returned instead so concurrent writers converge on one record.
	CreateTransaction(ctx context.Context, transaction *models.Transaction) (*models.Transaction, error)
	FindBySessionID(ctx context.Context, sessionID string) (*models.Transaction, error)
	FindByAppointmentID(ctx context.Context, appointmentID string) (*models.Transaction, error)
	// SettleWithAppointment marks the transaction settled and the linked
	// appointment confirmed in one multi-document transaction.
	SettleWithAppointment(ctx context.Context, sessionID, paymentMethod string, settledAt time.Time) (*models.Transaction, *models.Appointment, error)
	// FailWithAppointment marks the transaction failed and cancels the linked
	// appointment with the given reason, atomically.
	FailWithAppointment(ctx context.Context, sessionID, reason string) (*models.Transaction, *models.Appointment, error)
}
