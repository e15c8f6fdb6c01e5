package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type UserRole string
type AuthProvider string

const (
	UserRoleCustomer UserRole = "user"
	UserRoleAdmin    UserRole = "admin"

	AuthProviderEmail  AuthProvider = "email"
	AuthProviderGoogle AuthProvider = "google"
)

type User struct {
	ID          primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Email       string             `json:"email" bson:"email" validate:"required,email"`
	DisplayName string             `json:"display_name" bson:"display_name" validate:"required,min=2,max=50"`
	Password    string             `json:"-" bson:"password"`
	PhotoURL    string             `json:"photo_url" bson:"photo_url"`
	Role        UserRole           `json:"role" bson:"role" default:"user"`
	Provider    AuthProvider       `json:"provider" bson:"provider" default:"email"`
	SocialID    string             `json:"social_id" bson:"social_id"`
	LastLoginAt *time.Time         `json:"last_login_at" bson:"last_login_at"`
	CreatedAt   time.Time          `json:"created_at" bson:"created_at"`
	UpdatedAt   time.Time          `json:"updated_at" bson:"updated_at"`
}

func (u *User) IsAdmin() bool {
	return u.Role == UserRoleAdmin
}
