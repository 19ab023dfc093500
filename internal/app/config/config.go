package config

import (
	"medibook-service/internal/pkg/utils"

	"github.com/joho/godotenv"
)

func init() {
	godotenv.Load()
}

func NewDriverConfig() *DriverConfig {
	return &DriverConfig{
		MongoDB: MongoDB{
			Port:     utils.GetEnvString("MONGODB_PORT", "27017"),
			Host:     utils.GetEnvString("MONGODB_HOST", "localhost"),
			DbName:   utils.GetEnvString("MONGODB_DB_NAME", "medibook"),
			Username: utils.GetEnvString("MONGODB_USERNAME", "defaultUsername"),
			Password: utils.GetEnvString("MONGODB_PASSWORD", "defaultPassword"),
		},
		Redis: Redis{
			Host:     utils.GetEnvString("REDIS_HOST", "localhost"),
			Port:     utils.GetEnvString("REDIS_PORT", "6379"),
			Password: utils.GetEnvString("REDIS_PASSWORD", "customRedisPass"),
		},
		Logger: Logger{
			Level:               utils.GetEnvString("LOGGER_LEVEL", "debug"),
			OutputFileName:      utils.GetEnvString("LOGGER_OUTPUT_FILENAME", "logger.log"),
			OutputErrorFileName: utils.GetEnvString("LOGGER_OUTPUT_ERROR_FILENAME", "logger_error.log"),
		},
		SMTP: SMTP{
			Host:        utils.GetEnvString("SMTP_HOST", "smtp_host"),
			Username:    utils.GetEnvString("SMTP_USERNAME", ""),
			Password:    utils.GetEnvString("SMTP_PASSWORD", ""),
			EmailSender: utils.GetEnvString("SMTP_EMAIL_SENDER", ""),
			Port:        utils.GetEnvInt("SMTP_PORT", 2525),
		},
		RabbitMQ: RabbitMQ{
			Port:     utils.GetEnvString("RABBITMQ_PORT", "5672"),
			Host:     utils.GetEnvString("RABBITMQ_HOST", "localhost"),
			Username: utils.GetEnvString("RABBITMQ_USERNAME", "defaultUsername"),
			Password: utils.GetEnvString("RABBITMQ_PASSWORD", "defaultPassword"),
		},
		Minio: Minio{
			Port:       utils.GetEnvString("MINIO_PORT", "9000"),
			Host:       utils.GetEnvString("MINIO_HOST", "localhost"),
			Username:   utils.GetEnvString("MINIO_USERNAME", "defaultUsername"),
			Password:   utils.GetEnvString("MINIO_PASSWORD", "defaultPassword"),
			BucketName: utils.GetEnvString("MINIO_BUCKET_NAME", "medibook-prescriptions"),
			UseSSL:     utils.GetEnvBool("MINIO_USE_SSL", false),
		},
	}
}

func NewInternalConfig() *InternalConfig {
	return &InternalConfig{
		App: App{
			Env:                            utils.GetEnvString("APP_ENV", "development"),
			Port:                           utils.GetEnvString("APP_PORT", ":8080"),
			Version:                        utils.GetEnvString("APP_VERSION", "v1.0"),
			Address:                        utils.GetEnvString("APP_ADDRESS", "localhost"),
			Timezone:                       utils.GetEnvString("APP_TIMEZONE", "Asia/Jakarta"),
			EndpointPrefix:                 utils.GetEnvString("APP_ENDPOINT_PREFIX", "/v1"),
			MaxRequests:                    utils.GetEnvInt("APP_MAX_REQUEST", 10),
			ShutdownTimeoutInSeconds:       utils.GetEnvInt("APP_SHUTDOWN_TIMEOUT_IN_SECONDS", 10),
			MaxTimeRequestsPerSeconds:      utils.GetEnvInt("APP_MAX_TIME_REQUESTS_PER_SECONDS", 10),
			RequestBodyLimitInMegabyte:     utils.GetEnvInt("APP_REQUEST_BODY_LIMIT_IN_MEGABYTE", 6),
			LoginSessionExpiredTimeInHours: utils.GetEnvInt("APP_LOGIN_SESSION_EXPIRED_TIME_IN_HOURS", 24),
			BookingMaxAttemptsPerWindow:    utils.GetEnvInt("APP_BOOKING_MAX_ATTEMPTS_PER_WINDOW", 5),
			BookingWindowInSeconds:         utils.GetEnvInt("APP_BOOKING_WINDOW_IN_SECONDS", 60),
			PaymentLockTTLInSeconds:        utils.GetEnvInt("APP_PAYMENT_LOCK_TTL_IN_SECONDS", 30),
			PaymentExpiredTimeInMinutes:    utils.GetEnvInt("APP_PAYMENT_EXPIRED_TIME_IN_MINUTES", 30),
			PaymentMaxRequestsPerMinute:    utils.GetEnvInt("APP_PAYMENT_MAX_REQUESTS_PER_MINUTE", 30),
			PaymentBlockTimeInMinutes:      utils.GetEnvInt("APP_PAYMENT_BLOCK_TIME_IN_MINUTES", 5),
			DefaultConsultationFee:         utils.GetEnvFloat("APP_DEFAULT_CONSULTATION_FEE", 100),
			DefaultCurrency:                utils.GetEnvString("APP_DEFAULT_CURRENCY", "USD"),
		},
		JWT: AppJWT{
			Secret:        utils.GetEnvString("JWT_SECRET", "anyjwt"),
			ExpTimeInHour: utils.GetEnvInt("JWT_EXP_TIME_IN_HOUR", 24),
		},
		Mailer: AppMailer{
			EmailSender: utils.GetEnvString("APP_MAILER_EMAIL_SENDER", ""),
		},
		RabbitMQ: AppRabbitMQ{
			MailerQueue: utils.GetEnvString("APP_RABBITMQ_MAILER_QUEUE", "mailer_queue"),
		},
		Minio: AppMinio{
			BucketName:                          utils.GetEnvString("MINIO_BUCKET_NAME", "medibook-prescriptions"),
			AttachmentMaxUploadSizeInMB:         utils.GetEnvInt64("APP_MINIO_ATTACHMENT_UPLOAD_MAX_SIZE_IN_MB", 5),
			PreSignedUrlObjectExpiryTimeInHours: utils.GetEnvInt("APP_MINIO_PRESIGNED_URL_EXPIRY_TIME_IN_HOURS", 1),
		},
		PaymentGateway: AppPaymentGateway{
			ApiKey:                  utils.GetEnvString("PAYMENT_GATEWAY_API_KEY", ""),
			BaseUrl:                 utils.GetEnvString("PAYMENT_GATEWAY_BASE_URL", "http://localhost:4242"),
			SuccessUrl:              utils.GetEnvString("PAYMENT_GATEWAY_SUCCESS_URL", "http://localhost:3000/payment/success"),
			CancelUrl:               utils.GetEnvString("PAYMENT_GATEWAY_CANCEL_URL", "http://localhost:3000/payment/cancel"),
			RequestTimeoutInSeconds: utils.GetEnvInt("PAYMENT_GATEWAY_REQUEST_TIMEOUT_IN_SECONDS", 10),
		},
		Meeting: AppMeeting{
			BaseUrl:                 utils.GetEnvString("MEETING_BASE_URL", "http://localhost:4444"),
			ApiKey:                  utils.GetEnvString("MEETING_API_KEY", ""),
			RequestTimeoutInSeconds: utils.GetEnvInt("MEETING_REQUEST_TIMEOUT_IN_SECONDS", 10),
		},
	}
}
