package requests

type PrescriptionMedication struct {
	Name     string `json:"name" validate:"required"`
	Dosage   string `json:"dosage" validate:"required"`
	Duration string `json:"duration,omitempty"`
}

type CreatePrescription struct {
	AppointmentID string                   `json:"appointmentId" validate:"required"`
	Medications   []PrescriptionMedication `json:"medications" validate:"required,min=1,dive"`
	Notes         string                   `json:"notes,omitempty" validate:"max=2000"`
}
