package routers

import (
	"medibook-service/internal/app/delivery/http/middlewares"
	"medibook-service/internal/app/services/core/prescriptions"

	"github.com/go-chi/chi/v5"
)

func attachPrescriptionRoutes(router chi.Router, middlewares *middlewares.Middlewares, prescriptionController *prescriptions.PrescriptionController) {
	router.Use(middlewares.Authenticate)

	router.Post("/", prescriptionController.CreatePrescription)
	router.Get("/{prescription_id}", prescriptionController.FindByID)
	router.Post("/{prescription_id}/attachment", prescriptionController.UploadAttachment)
	router.Get("/{prescription_id}/attachment", prescriptionController.GetAttachmentURL)
}
