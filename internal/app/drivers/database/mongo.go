package database

import (
	"context"
	"fmt"
	"log"
	"medibook-service/internal/app/config"
	"medibook-service/internal/pkg/constvars"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func NewMongoDB(driverConfig *config.DriverConfig) *mongo.Client {
	connectionString := fmt.Sprintf(
		"mongodb://%s:%s@%s:%s",
		driverConfig.MongoDB.Username,
		driverConfig.MongoDB.Password,
		driverConfig.MongoDB.Host,
		driverConfig.MongoDB.Port,
	)
	dbOptions := options.Client().ApplyURI(connectionString)
	client, err := mongo.Connect(context.TODO(), dbOptions)
	if err != nil {
		log.Fatalf("Failed to connect to mongo database: %s", err.Error())
	}
	err = client.Ping(context.TODO(), nil)
	if err != nil {
		log.Fatalf("Failed to ping or test the connection to mongo database: %s", err.Error())
	}
	err = ensureIndexes(client.Database(driverConfig.MongoDB.DbName))
	if err != nil {
		log.Fatalf("Failed to ensure mongo indexes: %s", err.Error())
	}
	log.Println("Successfully connected to mongo database")
	return client
}

// ensureIndexes creates the unique indexes the domain relies on. The index
// on transactions.sessionId makes duplicate gateway callbacks lose the insert
// race instead of creating a second transaction, the one on
// prescriptions.appointmentId backs the one-prescription-per-appointment rule.
func ensureIndexes(db *mongo.Database) error {
	_, err := db.Collection(constvars.MongoCollectionTransactions).Indexes().CreateOne(
		context.TODO(),
		mongo.IndexModel{
			Keys: bson.D{{Key: "sessionId", Value: 1}},
			Options: options.Index().
				SetUnique(true).
				SetName(constvars.MongoIndexTransactionSessionID),
		},
	)
	if err != nil {
		return err
	}

	_, err = db.Collection(constvars.MongoCollectionUsers).Indexes().CreateOne(
		context.TODO(),
		mongo.IndexModel{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("uniq_users_email"),
		},
	)
	if err != nil {
		return err
	}

	_, err = db.Collection(constvars.MongoCollectionPrescriptions).Indexes().CreateOne(
		context.TODO(),
		mongo.IndexModel{
			Keys: bson.D{{Key: "appointmentId", Value: 1}},
			Options: options.Index().
				SetUnique(true).
				SetName(constvars.MongoIndexPrescriptionAppointmentID),
		},
	)
	return err
}
