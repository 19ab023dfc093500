package requests

type CreateDoctor struct {
	Name        string  `json:"name" validate:"required,min=2,max=100"`
	Email       string  `json:"email" validate:"required,email"`
	Speciality  string  `json:"speciality" validate:"required"`
	Credentials string  `json:"credentials,omitempty" validate:"max=200"`
	Fee         float64 `json:"fee" validate:"required,gt=0"`
}

type DoctorQuery struct {
	Speciality string
	Page       int
	PageSize   int
}
