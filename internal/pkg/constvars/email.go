package constvars

const (
	EmailAppointmentPatientSubject = "[MEDIBOOK] Your appointment is confirmed"
	EmailAppointmentDoctorSubject  = "[MEDIBOOK] New confirmed appointment"
)

const (
	EmailSendBasicEmailSubjectFormat = "To: %s\r\nSubject: %s\r\n\r\n%s\r\n"
	EmailSendHTMLSubjectFormat       = "To: %s\r\nSubject: %s\r\nMIME-version: 1.0;\r\nContent-Type: text/html; charset=\"UTF-8\";\r\n\r\n%s\r\n"
)
