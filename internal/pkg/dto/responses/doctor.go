package responses

type Doctor struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Speciality  string  `json:"speciality"`
	Credentials string  `json:"credentials,omitempty"`
	Fee         float64 `json:"fee"`
}
