package schemas

type UserCreate struct {
	Email       string `json:"email" validate:"required,max=255,emailfmt"`
	Username    string `json:"username" validate:"required,max=50"`
	FullName    string `json:"full_name" validate:"required,max=100"`
	PhoneNumber string `json:"phone_number" validate:"omitempty,max=20"`
	Password    string `json:"password" validate:"required,min=8,max=255"`
}

type UserUpdate struct {
	FullName    *string `json:"full_name" validate:"omitempty,max=100"`
	PhoneNumber *string `json:"phone_number" validate:"omitempty,max=20"`
}

type UserLogin struct {
	Email    string `json:"email" validate:"required,max=255"`
	Password string `json:"password" validate:"required,max=255"`
}
