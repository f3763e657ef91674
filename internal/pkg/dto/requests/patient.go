package requests

type CreatePatient struct {
	FullName  string `json:"fullname" validate:"required"`
	Email     string `json:"email" validate:"omitempty,email"`
	BirthDate string `json:"birth_date" validate:"omitempty,datetime=2006-01-02"`
	Gender    string `json:"gender" validate:"omitempty,oneof=male female other"`
	Phone     string `json:"phone"`
}

type UpdatePatient struct {
	FullName  string `json:"fullname" validate:"required"`
	Email     string `json:"email" validate:"omitempty,email"`
	BirthDate string `json:"birth_date" validate:"omitempty,datetime=2006-01-02"`
	Gender    string `json:"gender" validate:"omitempty,oneof=male female other"`
	Phone     string `json:"phone"`
}
