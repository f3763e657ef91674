package models

type Patient struct {
	ID        string `bson:"_id,omitempty"`
	FullName  string `bson:"fullname"`
	Email     string `bson:"email,omitempty"`
	BirthDate string `bson:"birthDate,omitempty"`
	Gender    string `bson:"gender,omitempty"`
	Phone     string `bson:"phone,omitempty"`
	TimeModel `bson:",inline"`
}

type Practitioner struct {
	ID                 string `bson:"_id,omitempty"`
	FullName           string `bson:"fullname"`
	Email              string `bson:"email,omitempty"`
	Specialty          string `bson:"specialty,omitempty"`
	RegistrationNumber string `bson:"registrationNumber,omitempty"`
	TimeModel          `bson:",inline"`
}
