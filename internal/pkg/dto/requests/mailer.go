package requests

type EmailPayload struct {
	Subject  string   `json:"subject"`
	From     string   `json:"from"`
	To       []string `json:"to"`
	Cc       []string `json:"cc,omitempty"`
	Bcc      []string `json:"bcc,omitempty"`
	HTMLCode string   `json:"html_code"`
}

// NotificationPayload feeds the appointment confirmation emails for patient
// and doctor. Meeting fields may be empty when provisioning degraded.
type NotificationPayload struct {
	PatientName     string
	PatientEmail    string
	DoctorName      string
	DoctorEmail     string
	Speciality      string
	Date            string
	Time            string
	MeetingLink     string
	MeetingPassword string
}
