package responses

type PrescriptionMedication struct {
	Name     string `json:"name"`
	Dosage   string `json:"dosage"`
	Duration string `json:"duration,omitempty"`
}

type Prescription struct {
	ID            string                   `json:"id"`
	AppointmentID string                   `json:"appointmentId"`
	DoctorID      string                   `json:"doctorId"`
	PatientID     string                   `json:"patientId"`
	Medications   []PrescriptionMedication `json:"medications"`
	Notes         string                   `json:"notes,omitempty"`
	HasAttachment bool                     `json:"hasAttachment"`
}

type PrescriptionAttachment struct {
	DownloadURL string `json:"downloadUrl"`
	ExpiresIn   int    `json:"expiresInSeconds"`
}
