package models

type Medication struct {
	Name     string `json:"name" bson:"name"`
	Dosage   string `json:"dosage" bson:"dosage"`
	Duration string `json:"duration,omitempty" bson:"duration,omitempty"`
}

// Prescription exists only for appointments that reached completed status.
type Prescription struct {
	ID            string       `json:"id" bson:"_id,omitempty"`
	AppointmentID string       `json:"appointmentId" bson:"appointmentId"`
	DoctorID      string       `json:"doctorId" bson:"doctorId"`
	PatientID     string       `json:"patientId" bson:"patientId"`
	Medications   []Medication `json:"medications" bson:"medications"`
	Notes         string       `json:"notes,omitempty" bson:"notes,omitempty"`
	AttachmentKey string       `json:"attachmentKey,omitempty" bson:"attachmentKey,omitempty"`
	TimeModel     `bson:",inline"`
}
