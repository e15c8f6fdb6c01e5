package validators

type CreateRouteRequest struct {
	From     string  `json:"from" validate:"required,min=2,max=100"`
	To       string  `json:"to" validate:"required,min=2,max=100"`
	Distance float64 `json:"distance" validate:"omitempty,gt=0"`
	Duration string  `json:"duration" validate:"omitempty,max=50"`
	Active   *bool   `json:"active"`
	ImageURL string  `json:"image_url" validate:"omitempty,url"`
}

type UpdateRouteRequest struct {
	From     *string  `json:"from" validate:"omitempty,min=2,max=100"`
	To       *string  `json:"to" validate:"omitempty,min=2,max=100"`
	Distance *float64 `json:"distance" validate:"omitempty,gt=0"`
	Duration *string  `json:"duration" validate:"omitempty,max=50"`
	ImageURL *string  `json:"image_url" validate:"omitempty,url"`
}

type SetRouteActiveRequest struct {
	Active *bool `json:"active" validate:"required"`
}
