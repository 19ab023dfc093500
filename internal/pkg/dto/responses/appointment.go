package responses

type Appointment struct {
	ID              string  `json:"id"`
	PatientName     string  `json:"patientName"`
	PatientEmail    string  `json:"patientEmail"`
	DoctorID        string  `json:"doctorId"`
	DoctorName      string  `json:"doctorName"`
	Speciality      string  `json:"speciality"`
	Date            string  `json:"date"`
	Time            string  `json:"time"`
	Fee             float64 `json:"fee"`
	Status          string  `json:"status"`
	MeetingLink     string  `json:"meetingLink,omitempty"`
	MeetingPassword string  `json:"meetingPassword,omitempty"`
}

// CreatedAppointment joins the pending appointment with the gateway session
// the client must be redirected to.
type CreatedAppointment struct {
	Appointment Appointment `json:"appointment"`
	SessionID   string      `json:"sessionId"`
	PaymentLink string      `json:"paymentLink"`
}
