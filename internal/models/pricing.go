package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type TripType string

const (
	TripTypeOneWay    TripType = "one-way"
	TripTypeRoundTrip TripType = "round-trip"
)

// Pricing is a fare entry for one car type on a route. One-way entries carry
// a fixed price; round-trip entries carry a per-kilometre rate and a minimum
// daily distance instead.
type Pricing struct {
	ID         primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	RouteID    primitive.ObjectID `json:"route_id" bson:"route_id"`
	RouteFrom  string             `json:"route_from" bson:"route_from" validate:"required"`
	RouteTo    string             `json:"route_to" bson:"route_to"`
	CarType    string             `json:"car_type" bson:"car_type" validate:"required"`
	CarModel   string             `json:"car_model" bson:"car_model"`
	Capacity   int                `json:"capacity" bson:"capacity"`
	Luggage    string             `json:"luggage" bson:"luggage"`
	TripType   TripType           `json:"trip_type" bson:"trip_type" validate:"required,trip_type"`
	Price      float64            `json:"price" bson:"price"`                   // one-way fixed fare, rupees
	PricePerKm float64            `json:"price_per_km" bson:"price_per_km"`     // round-trip rate, rupees
	MinKm      string             `json:"min_km" bson:"min_km"`                 // e.g. "250km / day"
	ImageURL   string             `json:"image_url" bson:"image_url"`
	Features   []string           `json:"features" bson:"features"`
	CreatedAt  time.Time          `json:"created_at" bson:"created_at"`
	UpdatedAt  time.Time          `json:"updated_at" bson:"updated_at"`
}
