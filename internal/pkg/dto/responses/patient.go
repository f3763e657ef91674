package responses

type Patient struct {
	ID        string `json:"id"`
	FullName  string `json:"fullname"`
	Email     string `json:"email,omitempty"`
	BirthDate string `json:"birth_date,omitempty"`
	Gender    string `json:"gender,omitempty"`
	Phone     string `json:"phone,omitempty"`
}

type Practitioner struct {
	ID                 string `json:"id"`
	FullName           string `json:"fullname"`
	Email              string `json:"email,omitempty"`
	Specialty          string `json:"specialty,omitempty"`
	RegistrationNumber string `json:"registration_number,omitempty"`
}
