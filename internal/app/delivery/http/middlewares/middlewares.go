package middlewares

import (
	"net/http"
	"time"

	"medibook-service/internal/app/config"
	"medibook-service/internal/app/contracts"

	"go.uber.org/zap"
)

type Middlewares struct {
	Log            *zap.Logger
	SessionService contracts.SessionService
	InternalConfig *config.InternalConfig
	paymentLimiter *RateLimiter
}

func NewMiddlewares(logger *zap.Logger, sessionService contracts.SessionService, internalConfig *config.InternalConfig) *Middlewares {
	return &Middlewares{
		Log:            logger,
		SessionService: sessionService,
		InternalConfig: internalConfig,
		paymentLimiter: NewRateLimiter(
			internalConfig.App.PaymentMaxRequestsPerMinute,
			time.Minute,
			time.Duration(internalConfig.App.PaymentBlockTimeInMinutes)*time.Minute,
		),
	}
}

// PaymentRateLimit guards the unauthenticated payment endpoints, which are
// reachable without a session and therefore easy to hammer.
func (m *Middlewares) PaymentRateLimit(next http.Handler) http.Handler {
	return m.paymentLimiter.Limit(next)
}
