package requests

// CreateAppointment is the booking intake payload. Patient identity is taken
// from the session, never from the body.
type CreateAppointment struct {
	Speciality string `json:"speciality" validate:"required"`
	DoctorID   string `json:"doctorId" validate:"required"`
	Date       string `json:"date" validate:"required,date_yyyymmdd,not_past_date"`
	Time       string `json:"time" validate:"required,time_hhmm"`
}

type UpdateAppointmentStatus struct {
	Status string `json:"status" validate:"required,oneof=completed cancelled"`
	Reason string `json:"reason,omitempty" validate:"max=500"`
}

type AppointmentQuery struct {
	PatientID string
	DoctorID  string
	Status    string
	Page      int
	PageSize  int
}
