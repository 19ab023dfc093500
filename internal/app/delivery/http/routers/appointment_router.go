package routers

import (
	"medibook-service/internal/app/delivery/http/middlewares"
	"medibook-service/internal/app/services/core/appointments"

	"github.com/go-chi/chi/v5"
)

func attachAppointmentRoutes(router chi.Router, middlewares *middlewares.Middlewares, appointmentController *appointments.AppointmentController) {
	router.Use(middlewares.Authenticate)

	router.Post("/", appointmentController.CreateAppointment)
	router.Get("/", appointmentController.FindAll)
	router.Get("/{appointment_id}", appointmentController.FindByID)
	router.Patch("/{appointment_id}/status", appointmentController.UpdateStatus)
}
