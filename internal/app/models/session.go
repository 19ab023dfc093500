package models

import "time"

type Session struct {
	SessionID string    `json:"sessionId"`
	UserID    string    `json:"userId"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      UserRole  `json:"role"`
	DoctorID  string    `json:"doctorId,omitempty"`
	ExpiresAt time.Time `json:"expiresAt"`
}

func (s *Session) IsPatient() bool {
	return s.Role == RolePatient
}

func (s *Session) IsDoctor() bool {
	return s.Role == RoleDoctor
}

func (s *Session) IsAdmin() bool {
	return s.Role == RoleAdmin
}
