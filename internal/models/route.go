package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Route is an origin→destination pair offered to customers. Only active
// routes are visible on the customer pricing page.
type Route struct {
	ID        primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	From      string             `json:"from" bson:"from" validate:"required,min=2,max=100"`
	To        string             `json:"to" bson:"to" validate:"required,min=2,max=100"`
	Distance  float64            `json:"distance" bson:"distance"` // kilometers
	Duration  string             `json:"duration" bson:"duration"` // e.g. "2h 30m"
	Active    bool               `json:"active" bson:"active"`
	ImageURL  string             `json:"image_url" bson:"image_url"`
	CreatedAt time.Time          `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time          `json:"updated_at" bson:"updated_at"`
}
