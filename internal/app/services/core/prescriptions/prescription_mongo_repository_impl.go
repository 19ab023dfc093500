package prescriptions

import (
	"context"
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
	prescriptionMongoRepositoryInstance contracts.PrescriptionRepository
	oncePrescriptionMongoRepository     sync.Once
)

type PrescriptionMongoRepository struct {
	Collection *mongo.Collection
}

func NewPrescriptionMongoRepository(db *mongo.Client, dbName string) contracts.PrescriptionRepository {
	oncePrescriptionMongoRepository.Do(func() {
		prescriptionMongoRepositoryInstance = &PrescriptionMongoRepository{
			Collection: db.Database(dbName).Collection(constvars.MongoCollectionPrescriptions),
		}
	})
	return prescriptionMongoRepositoryInstance
}

func (r *PrescriptionMongoRepository) CreatePrescription(ctx context.Context, prescription *models.Prescription) (string, error) {
	now := time.Now()
	prescription.CreatedAt = now
	prescription.UpdatedAt = now
	if prescription.ID == "" {
		prescription.ID = primitive.NewObjectID().Hex()
	}

	_, err := r.Collection.InsertOne(ctx, prescription)
	if err != nil {
		// concurrent create for the same appointment loses the insert race
		// against the unique appointmentId index
		if mongo.IsDuplicateKeyError(err) {
			return "", exceptions.ErrPrescriptionAlreadyExist(err)
		}
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	return prescription.ID, nil
}

func (r *PrescriptionMongoRepository) FindByID(ctx context.Context, prescriptionID string) (*models.Prescription, error) {
	var prescription models.Prescription
	err := r.Collection.FindOne(ctx, bson.M{"_id": prescriptionID}).Decode(&prescription)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &prescription, nil
}

func (r *PrescriptionMongoRepository) FindByAppointmentID(ctx context.Context, appointmentID string) (*models.Prescription, error) {
	var prescription models.Prescription
	err := r.Collection.FindOne(ctx, bson.M{"appointmentId": appointmentID}).Decode(&prescription)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &prescription, nil
}

func (r *PrescriptionMongoRepository) UpdateAttachmentKey(ctx context.Context, prescriptionID, objectKey string) error {
	update := bson.M{
		"$set": bson.M{
			"attachmentKey": objectKey,
			"updatedAt":     time.Now(),
		},
	}
	result, err := r.Collection.UpdateOne(ctx, bson.M{"_id": prescriptionID}, update)
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	if result.MatchedCount == 0 {
		return exceptions.ErrPrescriptionNotExist(mongo.ErrNoDocuments)
	}
	return nil
}
