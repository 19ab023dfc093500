package doctors

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
	doctorMongoRepositoryInstance contracts.DoctorRepository
	onceDoctorMongoRepository     sync.Once
)

type DoctorMongoRepository struct {
	Collection *mongo.Collection
}

func NewDoctorMongoRepository(db *mongo.Client, dbName string) contracts.DoctorRepository {
	onceDoctorMongoRepository.Do(func() {
		doctorMongoRepositoryInstance = &DoctorMongoRepository{
			Collection: db.Database(dbName).Collection(constvars.MongoCollectionDoctors),
		}
	})
	return doctorMongoRepositoryInstance
}

func (r *DoctorMongoRepository) CreateDoctor(ctx context.Context, doctor *models.Doctor) (string, error) {
	now := time.Now()
	doctor.CreatedAt = now
	doctor.UpdatedAt = now
	if doctor.ID == "" {
		doctor.ID = primitive.NewObjectID().Hex()
	}

	_, err := r.Collection.InsertOne(ctx, doctor)
	if err != nil {
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	return doctor.ID, nil
}

func (r *DoctorMongoRepository) FindByID(ctx context.Context, doctorID string) (*models.Doctor, error) {
	var doctor models.Doctor
	err := r.Collection.FindOne(ctx, bson.M{"_id": doctorID}).Decode(&doctor)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &doctor, nil
}

func (r *DoctorMongoRepository) FindAll(ctx context.Context, query *requests.DoctorQuery) ([]models.Doctor, error) {
	filter := bson.M{}
	if query.Speciality != "" {
		filter["speciality"] = query.Speciality
	}

	findOptions := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})
	if query.Page > 0 && query.PageSize > 0 {
		findOptions.SetSkip(int64((query.Page - 1) * query.PageSize))
		findOptions.SetLimit(int64(query.PageSize))
	}

	cursor, err := r.Collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	doctors := make([]models.Doctor, 0)
	err = cursor.All(ctx, &doctors)
	if err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return doctors, nil
}
