package maps

import "context"

// DistanceEstimator resolves the driving distance and duration between two
// place labels. Used to autofill route records created without them.
type DistanceEstimator interface {
	EstimateRoute(ctx context.Context, origin, destination string) (*RouteEstimate, error)
}

type RouteEstimate struct {
	DistanceKm   float64 `json:"distance_km"`
	DistanceText string  `json:"distance_text"`
	Duration     string  `json:"duration"`
	DurationSecs int     `json:"duration_secs"`
}
