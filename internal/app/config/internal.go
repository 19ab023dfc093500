package config

type InternalConfig struct {
	App            App
	JWT            AppJWT
	Mailer         AppMailer
	RabbitMQ       AppRabbitMQ
	Minio          AppMinio
	PaymentGateway AppPaymentGateway
	Meeting        AppMeeting
}

type App struct {
	Env                            string
	Port                           string
	Version                        string
	Address                        string
	Timezone                       string
	EndpointPrefix                 string
	MaxRequests                    int
	ShutdownTimeoutInSeconds       int
	MaxTimeRequestsPerSeconds      int
	RequestBodyLimitInMegabyte     int
	LoginSessionExpiredTimeInHours int
	BookingMaxAttemptsPerWindow    int
	BookingWindowInSeconds         int
	PaymentLockTTLInSeconds        int
	PaymentExpiredTimeInMinutes    int
	PaymentMaxRequestsPerMinute    int
	PaymentBlockTimeInMinutes      int
	DefaultConsultationFee         float64
	DefaultCurrency                string
}

type AppJWT struct {
	Secret        string
	ExpTimeInHour int
}

type AppMailer struct {
	EmailSender string
}

type AppRabbitMQ struct {
	MailerQueue string
}

type AppMinio struct {
	BucketName                          string
	AttachmentMaxUploadSizeInMB         int64
	PreSignedUrlObjectExpiryTimeInHours int
}

type AppPaymentGateway struct {
	ApiKey                  string
	BaseUrl                 string
	SuccessUrl              string
	CancelUrl               string
	RequestTimeoutInSeconds int
}

type AppMeeting struct {
	BaseUrl                 string
	ApiKey                  string
	RequestTimeoutInSeconds int
}
