package appointments

import (
	"context"
	"medibook-service/internal/app/contracts"
	"medibook-service/internal/app/models"
	"medibook-service/internal/pkg/constvars"
	"medibook-service/internal/pkg/dto/requests"
	"medibook-service/internal/pkg/exceptions"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var (
	appointmentMongoRepositoryInstance contracts.AppointmentRepository
	onceAppointmentMongoRepository     sync.Once
)

type AppointmentMongoRepository struct {
	Collection *mongo.Collection
}

func NewAppointmentMongoRepository(db *mongo.Client, dbName string) contracts.AppointmentRepository {
	onceAppointmentMongoRepository.Do(func() {
		appointmentMongoRepositoryInstance = &AppointmentMongoRepository{
			Collection: db.Database(dbName).Collection(constvars.MongoCollectionAppointments),
		}
	})
	return appointmentMongoRepositoryInstance
}

func (r *AppointmentMongoRepository) CreateAppointment(ctx context.Context, appointment *models.Appointment) (string, error) {
	now := time.Now()
	appointment.CreatedAt = now
	appointment.UpdatedAt = now
	if appointment.ID == "" {
		appointment.ID = primitive.NewObjectID().Hex()
	}

	_, err := r.Collection.InsertOne(ctx, appointment)
	if err != nil {
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	return appointment.ID, nil
}

func (r *AppointmentMongoRepository) FindByID(ctx context.Context, appointmentID string) (*models.Appointment, error) {
	var appointment models.Appointment
	err := r.Collection.FindOne(ctx, bson.M{"_id": appointmentID}).Decode(&appointment)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &appointment, nil
}

func (r *AppointmentMongoRepository) FindAll(ctx context.Context, query *requests.AppointmentQuery) ([]models.Appointment, error) {
	filter := bson.M{}
	if query.PatientID != "" {
		filter["patientId"] = query.PatientID
	}
	if query.DoctorID != "" {
		filter["doctorId"] = query.DoctorID
	}
	if query.Status != "" {
		filter["status"] = query.Status
	}

	findOptions := options.Find().SetSort(bson.D{{Key: "date", Value: 1}, {Key: "time", Value: 1}})
	if query.Page > 0 && query.PageSize > 0 {
		findOptions.SetSkip(int64((query.Page - 1) * query.PageSize))
		findOptions.SetLimit(int64(query.PageSize))
	}

	cursor, err := r.Collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	appointments := make([]models.Appointment, 0)
	err = cursor.All(ctx, &appointments)
	if err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return appointments, nil
}

func (r *AppointmentMongoRepository) UpdateAppointment(ctx context.Context, appointment *models.Appointment) error {
	appointment.UpdatedAt = time.Now()
	result, err := r.Collection.ReplaceOne(ctx, bson.M{"_id": appointment.ID}, appointment)
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	if result.MatchedCount == 0 {
		return exceptions.ErrAppointmentNotExist(mongo.ErrNoDocuments)
	}
	return nil
}

func (r *AppointmentMongoRepository) UpdateMeeting(ctx context.Context, appointmentID, meetingLink, meetingPassword string) error {
	update := bson.M{
		"$set": bson.M{
			"meetingLink":     meetingLink,
			"meetingPassword": meetingPassword,
			"updatedAt":       time.Now(),
		},
	}
	result, err := r.Collection.UpdateOne(ctx, bson.M{"_id": appointmentID}, update)
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	if result.MatchedCount == 0 {
		return exceptions.ErrAppointmentNotExist(mongo.ErrNoDocuments)
	}
	return nil
}
