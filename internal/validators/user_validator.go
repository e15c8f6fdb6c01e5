package validators

type UpdateProfileRequest struct {
	DisplayName *string `json:"display_name" validate:"omitempty,min=2,max=100"`
	PhotoURL    *string `json:"photo_url" validate:"omitempty,url"`
}

type SetUserRoleRequest struct {
	Role string `json:"role" validate:"required,oneof=user admin"`
}
