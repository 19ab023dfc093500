package models

type UserRole string

const (
	RolePatient UserRole = "patient"
	RoleDoctor  UserRole = "doctor"
	RoleAdmin   UserRole = "admin"
)

type User struct {
	ID        string   `bson:"_id,omitempty"`
	Name      string   `bson:"name"`
	Email     string   `bson:"email"`
	Password  string   `bson:"password"`
	Role      UserRole `bson:"role"`
	DoctorID  string   `bson:"doctorId,omitempty"`
	TimeModel `bson:",inline"`
}
