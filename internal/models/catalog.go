package models

// Catalog presentation types. These are derived, not stored: the pricing
// aggregator folds routes and pricing rows into per-car-type groups the
// site renders directly.

// RoutePrice is one priced route inside a car type group. Price is
// preformatted with the currency symbol.
type RoutePrice struct {
	PricingID string `json:"pricing_id"`
	From      string `json:"from"`
	To        string `json:"to"`
	Price     string `json:"price"`
}

// CarTypeGroup aggregates every one-way pricing row for a single car type.
type CarTypeGroup struct {
	Name     string       `json:"name"`
	Model    string       `json:"model"`
	Capacity string       `json:"capacity"`
	Luggage  string       `json:"luggage"`
	Image    string       `json:"image"`
	Features []string     `json:"features"`
	Warnings []string     `json:"warnings"`
	Routes   []RoutePrice `json:"routes"`
}

// RoundTripOption is the per-day round trip offering for a car type.
type RoundTripOption struct {
	Name       string   `json:"name"`
	Model      string   `json:"model"`
	Capacity   string   `json:"capacity"`
	Luggage    string   `json:"luggage"`
	Image      string   `json:"image"`
	PricePerKm string   `json:"price_per_km"`
	MinKm      string   `json:"min_km"`
	Features   []string `json:"features"`
	Warnings   []string `json:"warnings"`
}

// PricingCatalog is the full pricing page payload.
type PricingCatalog struct {
	OneWay    []CarTypeGroup    `json:"one_way"`
	RoundTrip []RoundTripOption `json:"round_trip"`
}
