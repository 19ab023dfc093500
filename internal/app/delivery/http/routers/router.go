package routers

import (
	"medibook-service/internal/app/config"
	"medibook-service/internal/app/delivery/http/middlewares"
	"medibook-service/internal/app/services/core/appointments"
	"medibook-service/internal/app/services/core/auth"
	"medibook-service/internal/app/services/core/doctors"
	"medibook-service/internal/app/services/core/payments"
	"medibook-service/internal/app/services/core/prescriptions"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
)

func SetupRoutes(
	router *chi.Mux,
	internalConfig *config.InternalConfig,
	middlewares *middlewares.Middlewares,
	authController *auth.AuthController,
	doctorController *doctors.DoctorController,
	appointmentController *appointments.AppointmentController,
	paymentController *payments.PaymentController,
	prescriptionController *prescriptions.PrescriptionController,
) {
	corsOptions := cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-Id"},
		ExposedHeaders:   []string{"Link", "X-Request-Id", "Retry-After"},
		AllowCredentials: true,
		MaxAge:           300,
	}
	router.Use(cors.Handler(corsOptions))

	router.Use(httprate.LimitByIP(internalConfig.App.MaxRequests, time.Second))

	router.Use(middlewares.RequestID)
	router.Use(middlewares.Logging)
	router.Use(middlewares.Recoverer)

	router.Route(internalConfig.App.EndpointPrefix, func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			attachAuthRoutes(r, middlewares, authController)
		})

		r.Route("/doctors", func(r chi.Router) {
			attachDoctorRoutes(r, middlewares, doctorController)
		})

		r.Route("/appointments", func(r chi.Router) {
			attachAppointmentRoutes(r, middlewares, appointmentController)
		})

		r.Route("/payments", func(r chi.Router) {
			attachPaymentRoutes(r, middlewares, paymentController)
		})

		r.Route("/prescriptions", func(r chi.Router) {
			attachPrescriptionRoutes(r, middlewares, prescriptionController)
		})
	})
}
