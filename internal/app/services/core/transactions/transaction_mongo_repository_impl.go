package transactions

import (
	"context"
	"errors"
	"medibook-service/internal/app/contracts"
	"medibook-service/internal/app/models"
	"medibook-service/internal/pkg/constvars"
	"medibook-service/internal/pkg/exceptions"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

var (
	transactionMongoRepositoryInstance contracts.TransactionRepository
	onceTransactionMongoRepository     sync.Once
)

type TransactionMongoRepository struct {
	Client       *mongo.Client
	Transactions *mongo.Collection
	Appointments *mongo.Collection
}

func NewTransactionMongoRepository(db *mongo.Client, dbName string) contracts.TransactionRepository {
	onceTransactionMongoRepository.Do(func() {
		database := db.Database(dbName)
		transactionMongoRepositoryInstance = &TransactionMongoRepository{
			Client:       db,
			Transactions: database.Collection(constvars.MongoCollectionTransactions),
			Appointments: database.Collection(constvars.MongoCollectionAppointments),
		}
	})
	return transactionMongoRepositoryInstance
}

func (r *TransactionMongoRepository) CreateTransaction(ctx context.Context, transaction *models.Transaction) (*models.Transaction, error) {
	now := time.Now()
	transaction.CreatedAt = now
	transaction.UpdatedAt = now
	if transaction.ID == "" {
		transaction.ID = primitive.NewObjectID().Hex()
	}

	_, err := r.Transactions.InsertOne(ctx, transaction)
	if err != nil {
		// unique sessionId index: a concurrent writer got there first, hand
		// back its record so both callers observe the same transaction
		if mongo.IsDuplicateKeyError(err) {
			return r.FindBySessionID(ctx, transaction.SessionID)
		}
		return nil, exceptions.ErrMongoDBInsertDocument(err)
	}
	return transaction, nil
}

func (r *TransactionMongoRepository) FindBySessionID(ctx context.Context, sessionID string) (*models.Transaction, error) {
	var transaction models.Transaction
	err := r.Transactions.FindOne(ctx, bson.M{"sessionId": sessionID}).Decode(&transaction)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &transaction, nil
}

func (r *TransactionMongoRepository) FindByAppointmentID(ctx context.Context, appointmentID string) (*models.Transaction, error) {
	var transaction models.Transaction
	err := r.Transactions.FindOne(ctx, bson.M{"appointmentId": appointmentID}).Decode(&transaction)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &transaction, nil
}

func (r *TransactionMongoRepository) SettleWithAppointment(ctx context.Context, sessionID, paymentMethod string, settledAt time.Time) (*models.Transaction, *models.Appointment, error) {
	return r.closeWithAppointment(ctx, sessionID, func(sessCtx mongo.SessionContext, transaction *models.Transaction, appointment *models.Appointment) error {
		now := time.Now()
		transaction.Status = models.TransactionSettled
		transaction.PaymentMethod = paymentMethod
		transaction.SettledAt = &settledAt
		transaction.UpdatedAt = now

		appointment.Status = models.AppointmentConfirmed
		appointment.UpdatedAt = now
		return nil
	})
}

func (r *TransactionMongoRepository) FailWithAppointment(ctx context.Context, sessionID, reason string) (*models.Transaction, *models.Appointment, error) {
	return r.closeWithAppointment(ctx, sessionID, func(sessCtx mongo.SessionContext, transaction *models.Transaction, appointment *models.Appointment) error {
		now := time.Now()
		transaction.Status = models.TransactionFailed
		transaction.UpdatedAt = now

		appointment.Status = models.AppointmentCancelled
		appointment.CancelReason = reason
		appointment.UpdatedAt = now
		return nil
	})
}

// closeWithAppointment loads the transaction and its appointment, lets mutate
// rewrite both, and persists the pair inside one mongo session so the
// transaction status and the appointment status can never drift apart.
func (r *TransactionMongoRepository) closeWithAppointment(
	ctx context.Context,
	sessionID string,
	mutate func(sessCtx mongo.SessionContext, transaction *models.Transaction, appointment *models.Appointment) error,
) (*models.Transaction, *models.Appointment, error) {
	session, err := r.Client.StartSession()
	if err != nil {
		return nil, nil, exceptions.ErrMongoDBTransaction(err)
	}
	defer session.EndSession(ctx)

	var transaction *models.Transaction
	var appointment *models.Appointment

	_, err = session.WithTransaction(ctx, func(sessCtx mongo.SessionContext) (interface{}, error) {
		transaction = new(models.Transaction)
		err := r.Transactions.FindOne(sessCtx, bson.M{"sessionId": sessionID}).Decode(transaction)
		if err != nil {
			if err == mongo.ErrNoDocuments {
				return nil, exceptions.ErrTransactionNotExist(err)
			}
			return nil, exceptions.ErrMongoDBFindDocument(err)
		}

		appointment = new(models.Appointment)
		err = r.Appointments.FindOne(sessCtx, bson.M{"_id": transaction.AppointmentID}).Decode(appointment)
		if err != nil {
			if err == mongo.ErrNoDocuments {
				return nil, exceptions.ErrAppointmentNotExist(err)
			}
			return nil, exceptions.ErrMongoDBFindDocument(err)
		}

		err = mutate(sessCtx, transaction, appointment)
		if err != nil {
			return nil, err
		}

		_, err = r.Transactions.ReplaceOne(sessCtx, bson.M{"_id": transaction.ID}, transaction)
		if err != nil {
			return nil, exceptions.ErrMongoDBUpdateDocument(err)
		}
		_, err = r.Appointments.ReplaceOne(sessCtx, bson.M{"_id": appointment.ID}, appointment)
		if err != nil {
			return nil, exceptions.ErrMongoDBUpdateDocument(err)
		}
		return nil, nil
	})
	if err != nil {
		var customErr *exceptions.CustomError
		if errors.As(err, &customErr) {
			return nil, nil, err
		}
		return nil, nil, exceptions.ErrMongoDBTransaction(err)
	}

	return transaction, appointment, nil
}
