package models

type AppointmentStatus string

const (
	AppointmentPending   AppointmentStatus = "pending"
	AppointmentConfirmed AppointmentStatus = "confirmed"
	AppointmentCompleted AppointmentStatus = "completed"
	AppointmentCancelled AppointmentStatus = "cancelled"
)

// allowedTransitions encodes the appointment state machine. Confirmation is
// only ever reached from pending, completed and cancelled are terminal.
var allowedTransitions = map[AppointmentStatus][]AppointmentStatus{
	AppointmentPending:   {AppointmentConfirmed, AppointmentCancelled},
	AppointmentConfirmed: {AppointmentCompleted, AppointmentCancelled},
}

func (s AppointmentStatus) CanTransitionTo(next AppointmentStatus) bool {
	for _, allowed := range allowedTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

func (s AppointmentStatus) IsTerminal() bool {
	return s == AppointmentCompleted || s == AppointmentCancelled
}

type Appointment struct {
	ID              string            `json:"id" bson:"_id,omitempty"`
	PatientID       string            `json:"patientId" bson:"patientId"`
	PatientName     string            `json:"patientName" bson:"patientName"`
	PatientEmail    string            `json:"patientEmail" bson:"patientEmail"`
	DoctorID        string            `json:"doctorId" bson:"doctorId"`
	DoctorName      string            `json:"doctorName" bson:"doctorName"`
	DoctorEmail     string            `json:"doctorEmail" bson:"doctorEmail"`
	Speciality      string            `json:"speciality" bson:"speciality"`
	Date            string            `json:"date" bson:"date"`
	Time            string            `json:"time" bson:"time"`
	Fee             float64           `json:"fee" bson:"fee"`
	Status          AppointmentStatus `json:"status" bson:"status"`
	SessionID       string            `json:"sessionId,omitempty" bson:"sessionId,omitempty"`
	MeetingLink     string            `json:"meetingLink,omitempty" bson:"meetingLink,omitempty"`
	MeetingPassword string            `json:"meetingPassword,omitempty" bson:"meetingPassword,omitempty"`
	CancelReason    string            `json:"cancelReason,omitempty" bson:"cancelReason,omitempty"`
	TimeModel       `bson:",inline"`
}
