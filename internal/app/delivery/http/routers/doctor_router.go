package routers

import (
	"medibook-service/internal/app/delivery/http/middlewares"
	"medibook-service/internal/app/services/core/doctors"

	"github.com/go-chi/chi/v5"
)

func attachDoctorRoutes(router chi.Router, middlewares *middlewares.Middlewares, doctorController *doctors.DoctorController) {
	router.Get("/", doctorController.FindAll)
	router.Get("/{doctor_id}", doctorController.FindByID)
	router.With(middlewares.Authenticate).Post("/", doctorController.CreateDoctor)
}
