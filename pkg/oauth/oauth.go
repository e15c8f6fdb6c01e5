package oauth

import "context"

// Provider validates a social sign-in access token and resolves the
// account it belongs to.
type Provider interface {
	GetUserInfo(ctx context.Context, accessToken string) (*UserInfo, error)
	RevokeToken(ctx context.Context, token string) error
}

// UserInfo is the provider-neutral identity attached to a social login.
type UserInfo struct {
	ID            string `json:"id"`
	Email         string `json:"email"`
	EmailVerified bool   `json:"email_verified"`
	Name          string `json:"name"`
	Picture       string `json:"picture"`
	Provider      string `json:"provider"`
}
