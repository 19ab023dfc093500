package models

type Doctor struct {
	ID          string  `json:"id" bson:"_id,omitempty"`
	Name        string  `json:"name" bson:"name"`
	Email       string  `json:"email" bson:"email"`
	Speciality  string  `json:"speciality" bson:"speciality"`
	Credentials string  `json:"credentials,omitempty" bson:"credentials,omitempty"`
	Fee         float64 `json:"fee" bson:"fee"`
	TimeModel   `bson:",inline"`
}
