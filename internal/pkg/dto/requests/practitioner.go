package requests

type CreatePractitioner struct {
	FullName           string `json:"fullname" validate:"required"`
	Email              string `json:"email" validate:"omitempty,email"`
	Specialty          string `json:"specialty"`
	RegistrationNumber string `json:"registration_number"`
}

type UpdatePractitioner struct {
	FullName           string `json:"fullname" validate:"required"`
	Email              string `json:"email" validate:"omitempty,email"`
	Specialty          string `json:"specialty"`
	RegistrationNumber string `json:"registration_number"`
}
