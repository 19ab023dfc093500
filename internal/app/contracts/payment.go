package contracts

import (
	"context"
	"medibook-service/internal/pkg/dto/requests"
	"medibook-service/internal/pkg/dto/responses"
)

type PaymentUsecase interface {
	VerifyPayment(ctx context.Context, request *requests.VerifyPayment) (*responses.VerifiedPayment, error)
	PaymentCallback(ctx context.Context, request *requests.PaymentCallback) error
}

// PaymentGatewayService is the outbound contract to the checkout gateway.
type PaymentGatewayService interface {
	CreateCheckoutSession(ctx context.Context, request *requests.CheckoutSession) (*responses.CheckoutSession, error)
	GetSessionStatus(ctx context.Context, sessionID string) (*responses.SessionStatus, error)
}
