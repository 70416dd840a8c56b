package schemas

type GameCreate struct {
	Name        string `json:"name" validate:"required,max=100"`
	Slug        string `json:"slug" validate:"required,max=100"`
	Description string `json:"description" validate:"omitempty,max=1000"`
	ImageURL    string `json:"image_url" validate:"omitempty,max=500"`
	BannerURL   string `json:"banner_url" validate:"omitempty,max=500"`
}

type GameUpdate struct {
	Name        *string `json:"name" validate:"omitempty,max=100"`
	Description *string `json:"description" validate:"omitempty,max=1000"`
	ImageURL    *string `json:"image_url" validate:"omitempty,max=500"`
	BannerURL   *string `json:"banner_url" validate:"omitempty,max=500"`
	IsActive    *bool   `json:"is_active"`
}
