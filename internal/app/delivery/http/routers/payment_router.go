package routers

import (
	"medibook-service/internal/app/delivery/http/middlewares"
	"medibook-service/internal/app/services/core/payments"

	"github.com/go-chi/chi/v5"
)

func attachPaymentRoutes(router chi.Router, middlewares *middlewares.Middlewares, paymentController *payments.PaymentController) {
	// The gateway redirect and the webhook both arrive without a session.
	router.Use(middlewares.PaymentRateLimit)

	router.Get("/verify", paymentController.VerifyPayment)
	router.Post("/callback", paymentController.PaymentCallback)
}
