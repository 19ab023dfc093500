package main

import (
	"context"
	"log"
	"medibook-service/internal/app/config"
	"medibook-service/internal/app/delivery/http/middlewares"
	"medibook-service/internal/app/delivery/http/routers"
	"medibook-service/internal/app/drivers/database"
	"medibook-service/internal/app/drivers/logger"
	"medibook-service/internal/app/drivers/mailer"
	"medibook-service/internal/app/drivers/messaging"
	"medibook-service/internal/app/drivers/storage"
	"medibook-service/internal/app/services/core/appointments"
	"medibook-service/internal/app/services/core/auth"
	"medibook-service/internal/app/services/core/doctors"
	"medibook-service/internal/app/services/core/notifications"
	"medibook-service/internal/app/services/core/payments"
	"medibook-service/internal/app/services/core/prescriptions"
	"medibook-service/internal/app/services/core/transactions"
	"medibook-service/internal/app/services/core/users"
	"medibook-service/internal/app/services/shared/locker"
	mailerservice "medibook-service/internal/app/services/shared/mailer"
	"medibook-service/internal/app/services/shared/meetings"
	"medibook-service/internal/app/services/shared/payment_gateway"
	"medibook-service/internal/app/services/shared/ratelimiter"
	"medibook-service/internal/app/services/shared/redis"
	"medibook-service/internal/app/services/shared/session"
	storageservice "medibook-service/internal/app/services/shared/storage"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/minio/minio-go/v7"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	zapLogger := logger.NewZapLogger(driverConfig, internalConfig)

	mongoClient := database.NewMongoDB(driverConfig)
	redisClient := database.NewRedisClient(driverConfig)
	rabbitMQConnection := messaging.NewRabbitMQ(driverConfig)
	minioClient := storage.NewMinio(driverConfig)
	smtpClient := mailer.NewSMTPClient(driverConfig)
	chiRouter := chi.NewRouter()

	bootstrap := config.Bootstrap{
		Router:         chiRouter,
		MongoClient:    mongoClient,
		Redis:          redisClient,
		Logger:         zapLogger,
		RabbitMQ:       rabbitMQConnection,
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	}
	bootstrapingTheApp(&bootstrap, smtpClient, minioClient)

	server := &http.Server{
		Addr:    internalConfig.App.Port,
		Handler: chiRouter,
	}

	go func() {
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	log.Println("Waiting for pending requests that already received by server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeoutInSeconds),
	)
	defer cancel()

	err := server.Shutdown(shutdownCtx)
	if err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	err = bootstrap.Shutdown(shutdownCtx)
	if err != nil {
		log.Fatalf("Error shutting down dependencies: %v", err)
	}

	log.Println("Server exiting")
}

func bootstrapingTheApp(bootstrap *config.Bootstrap, smtpClient *mailer.SMTPClient, minioClient *minio.Client) {
	// Shared services
	redisRepository := redis.NewRedisRepository(bootstrap.Redis)
	sessionService := session.NewSessionService(redisRepository)
	lockerService := locker.NewLockService(redisRepository, bootstrap.Logger)
	bookingLimiter := ratelimiter.NewResourceLimiter(redisRepository, bootstrap.Logger)
	gatewayService := payment_gateway.NewGatewayService(bootstrap.InternalConfig, bootstrap.Logger)
	meetingService := meetings.NewMeetingService(bootstrap.InternalConfig, bootstrap.Logger)
	minioStorage := storageservice.NewMinioStorage(minioClient)

	mailerService, err := mailerservice.NewMailerService(bootstrap.RabbitMQ, bootstrap.InternalConfig.RabbitMQ.MailerQueue, bootstrap.Logger)
	if err != nil {
		log.Fatalf("Error creating mailer service: %v", err)
	}

	mailerWorker, err := mailerservice.NewMailerWorker(bootstrap.RabbitMQ, smtpClient, bootstrap.InternalConfig.RabbitMQ.MailerQueue, bootstrap.Logger)
	if err != nil {
		log.Fatalf("Error creating mailer worker: %v", err)
	}
	stopWorker, err := mailerWorker.Start()
	if err != nil {
		log.Fatalf("Error starting mailer worker: %v", err)
	}
	bootstrap.MailerWorkerStop = stopWorker

	// Middlewares
	middlewares := middlewares.NewMiddlewares(bootstrap.Logger, sessionService, bootstrap.InternalConfig)

	// User and auth
	userMongoRepository := users.NewUserMongoRepository(bootstrap.MongoClient, bootstrap.DriverConfig.MongoDB.DbName)
	authUsecase := auth.NewAuthUsecase(userMongoRepository, sessionService, bootstrap.InternalConfig, bootstrap.Logger)
	authController := auth.NewAuthController(bootstrap.Logger, authUsecase)

	// Doctor
	doctorMongoRepository := doctors.NewDoctorMongoRepository(bootstrap.MongoClient, bootstrap.DriverConfig.MongoDB.DbName)
	doctorUsecase := doctors.NewDoctorUsecase(doctorMongoRepository, bootstrap.Logger)
	doctorController := doctors.NewDoctorController(bootstrap.Logger, doctorUsecase)

	// Appointment and transaction
	appointmentMongoRepository := appointments.NewAppointmentMongoRepository(bootstrap.MongoClient, bootstrap.DriverConfig.MongoDB.DbName)
	transactionMongoRepository := transactions.NewTransactionMongoRepository(bootstrap.MongoClient, bootstrap.DriverConfig.MongoDB.DbName)
	appointmentUsecase := appointments.NewAppointmentUsecase(
		appointmentMongoRepository,
		transactionMongoRepository,
		doctorMongoRepository,
		gatewayService,
		bookingLimiter,
		bootstrap.InternalConfig,
		bootstrap.Logger,
	)
	appointmentController := appointments.NewAppointmentController(bootstrap.Logger, appointmentUsecase)

	// Notification
	notificationUsecase := notifications.NewNotificationUsecase(mailerService, bootstrap.InternalConfig, bootstrap.Logger)

	// Payment
	paymentUsecase := payments.NewPaymentUsecase(
		transactionMongoRepository,
		appointmentMongoRepository,
		gatewayService,
		meetingService,
		notificationUsecase,
		lockerService,
		bootstrap.InternalConfig,
		bootstrap.Logger,
	)
	paymentController := payments.NewPaymentController(bootstrap.Logger, paymentUsecase)

	// Prescription
	prescriptionMongoRepository := prescriptions.NewPrescriptionMongoRepository(bootstrap.MongoClient, bootstrap.DriverConfig.MongoDB.DbName)
	prescriptionUsecase := prescriptions.NewPrescriptionUsecase(
		prescriptionMongoRepository,
		appointmentMongoRepository,
		minioStorage,
		bootstrap.InternalConfig,
		bootstrap.Logger,
	)
	prescriptionController := prescriptions.NewPrescriptionController(bootstrap.Logger, prescriptionUsecase)

	routers.SetupRoutes(
		bootstrap.Router,
		bootstrap.InternalConfig,
		middlewares,
		authController,
		doctorController,
		appointmentController,
		paymentController,
		prescriptionController,
	)
}
