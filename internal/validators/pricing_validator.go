package validators

type CreatePricingRequest struct {
	RouteID    string   `json:"route_id" validate:"omitempty,object_id"`
	RouteFrom  string   `json:"route_from" validate:"required,min=2,max=100"`
	RouteTo    string   `json:"route_to" validate:"omitempty,max=100"`
	CarType    string   `json:"car_type" validate:"required,min=2,max=50"`
	CarModel   string   `json:"car_model" validate:"omitempty,max=100"`
	Capacity   int      `json:"capacity" validate:"omitempty,gt=0,lte=20"`
	Luggage    string   `json:"luggage" validate:"omitempty,max=50"`
	TripType   string   `json:"trip_type" validate:"required,trip_type"`
	Price      float64  `json:"price" validate:"omitempty,gte=0"`
	PricePerKm float64  `json:"price_per_km" validate:"omitempty,gte=0"`
	MinKm      string   `json:"min_km" validate:"omitempty,max=50"`
	ImageURL   string   `json:"image_url" validate:"omitempty,url"`
	Features   []string `json:"features" validate:"omitempty,dive,max=100"`
}

type UpdatePricingRequest struct {
	CarModel   *string  `json:"car_model" validate:"omitempty,max=100"`
	Capacity   *int     `json:"capacity" validate:"omitempty,gt=0,lte=20"`
	Luggage    *string  `json:"luggage" validate:"omitempty,max=50"`
	Price      *float64 `json:"price" validate:"omitempty,gte=0"`
	PricePerKm *float64 `json:"price_per_km" validate:"omitempty,gte=0"`
	MinKm      *string  `json:"min_km" validate:"omitempty,max=50"`
	ImageURL   *string  `json:"image_url" validate:"omitempty,url"`
	Features   []string `json:"features" validate:"omitempty,dive,max=100"`
}
