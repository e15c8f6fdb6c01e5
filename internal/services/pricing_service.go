package services

import (
	"context"
	"strconv"

	"firstcab/internal/models"
	"firstcab/internal/repositories/interfaces"
	"firstcab/internal/store"
	"firstcab/internal/utils"
	"firstcab/pkg/logger"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type PricingService interface {
	// Catalog aggregation
	GetCatalog(ctx context.Context) (*models.PricingCatalog, error)
	BuildCatalog(pricing []*models.Pricing, routes []*models.Route) *models.PricingCatalog

	// Admin CRUD
	CreatePricing(ctx context.Context, pricing *models.Pricing) error
	GetPricing(ctx context.Context, id primitive.ObjectID) (*models.Pricing, error)
	ListPricing(ctx context.Context, params *utils.PaginationParams) ([]*models.Pricing, int64, error)
	UpdatePricing(ctx context.Context, id primitive.ObjectID, updates map[string]interface{}) error
	DeletePricing(ctx context.Context, id primitive.ObjectID) error
}

// Catalog fallbacks. Rows missing optional fields degrade to these instead
// of erroring.
const (
	defaultCapacity   = "4"
	defaultLuggage    = "2 Large"
	defaultPricePerKm = 11.0
	defaultMinKm      = "250km / day"
	genericCarImage   = "/images/cars/default.png"
)

var (
	defaultOneWayFeatures = []string{"AC Included", "No Hidden Charges"}

	defaultRoundTripFeatures = []string{
		"Night Halt ₹500 (after 12 AM)",
		"Day Halt ₹1200 (after 8 AM)",
		"Toll & Parking Extra",
	}

	defaultWarnings = []string{"Parking charges extra if applicable"}

	carTypeImages = map[string]string{
		"Sedan":         "/images/cars/sedan.png",
		"SUV":           "/images/cars/suv.png",
		"Sports":        "/images/cars/sports.png",
		"Hatchback":     "/images/cars/hatchback.png",
		"Comfort Sedan": "/images/cars/comfort-sedan.png",
		"Family SUV":    "/images/cars/family-suv.png",
		"Premium SUV":   "/images/cars/premium-suv.png",
	}
)

type pricingService struct {
	pricingRepo interfaces.PricingRepository
	routeRepo   interfaces.RouteRepository
	store       *store.Store
	logger      *logger.Logger
}

func NewPricingService(pricingRepo interfaces.PricingRepository, routeRepo interfaces.RouteRepository, store *store.Store, logger *logger.Logger) PricingService {
	return &pricingService{
		pricingRepo: pricingRepo,
		routeRepo:   routeRepo,
		store:       store,
		logger:      logger,
	}
}

func (s *pricingService) GetCatalog(ctx context.Context) (*models.PricingCatalog, error) {
	s.store.PricingPending()

	pricing, err := s.pricingRepo.GetAll(ctx)
	if err != nil {
		s.store.PricingRejected(err.Error())
		return nil, err
	}

	// Only active routes feed the customer catalog.
	routes, err := s.routeRepo.GetActive(ctx)
	if err != nil {
		s.store.PricingRejected(err.Error())
		return nil, err
	}

	catalog := s.BuildCatalog(pricing, routes)
	s.store.PricingFulfilled(pricing, catalog)

	return catalog, nil
}

// BuildCatalog folds pricing rows and active routes into the pricing page
// payload. It never mutates its inputs and is safe to call repeatedly on
// the same data.
//
// One-way rows group by route pair and then car type: duplicate rows for the
// same (route, car type) collapse into one group, scalar fields taking the
// latest row's value while every route and price pair is kept. Round-trip
// rows map one to one onto per-day options.
func (s *pricingService) BuildCatalog(pricing []*models.Pricing, routes []*models.Route) *models.PricingCatalog {
	catalog := &models.PricingCatalog{
		OneWay:    []models.CarTypeGroup{},
		RoundTrip: []models.RoundTripOption{},
	}

	type routePair struct {
		from, to string
	}

	var pairOrder []routePair
	pairGroups := make(map[routePair][]*models.CarTypeGroup)
	groupIndex := make(map[routePair]map[string]*models.CarTypeGroup)

	for _, row := range pricing {
		switch row.TripType {
		case models.TripTypeOneWay:
			pair := routePair{from: row.RouteFrom, to: row.RouteTo}

			byCarType, ok := groupIndex[pair]
			if !ok {
				byCarType = make(map[string]*models.CarTypeGroup)
				groupIndex[pair] = byCarType
				pairOrder = append(pairOrder, pair)
			}

			group, ok := byCarType[row.CarType]
			if !ok {
				group = &models.CarTypeGroup{Name: row.CarType}
				byCarType[row.CarType] = group
				pairGroups[pair] = append(pairGroups[pair], group)
			}

			group.Model = row.CarModel
			group.Capacity = capacityString(row.Capacity)
			group.Luggage = fallbackString(row.Luggage, defaultLuggage)
			group.Image = resolveOneWayImage(row, routes)
			group.Features = fallbackSlice(row.Features, defaultOneWayFeatures)
			group.Warnings = defaultWarnings
			group.Routes = append(group.Routes, models.RoutePrice{
				PricingID: row.ID.Hex(),
				From:      row.RouteFrom,
				To:        row.RouteTo,
				Price:     utils.FormatRupees(row.Price),
			})

		case models.TripTypeRoundTrip:
			rate := row.PricePerKm
			if rate == 0 {
				rate = defaultPricePerKm
			}

			catalog.RoundTrip = append(catalog.RoundTrip, models.RoundTripOption{
				Name:       row.CarType,
				Model:      row.CarModel,
				Capacity:   capacityString(row.Capacity),
				Luggage:    fallbackString(row.Luggage, defaultLuggage),
				Image:      resolveRoundTripImage(row, routes),
				PricePerKm: utils.FormatRupees(rate),
				MinKm:      fallbackString(row.MinKm, defaultMinKm),
				Features:   fallbackSlice(row.Features, defaultRoundTripFeatures),
				Warnings:   defaultWarnings,
			})
		}
	}

	for _, pair := range pairOrder {
		for _, group := range pairGroups[pair] {
			catalog.OneWay = append(catalog.OneWay, *group)
		}
	}

	return catalog
}

// Admin CRUD

func (s *pricingService) CreatePricing(ctx context.Context, pricing *models.Pricing) error {
	if err := s.pricingRepo.Create(ctx, pricing); err != nil {
		return err
	}

	s.logger.WithFields(map[string]interface{}{
		"pricing_id": pricing.ID.Hex(),
		"car_type":   pricing.CarType,
		"trip_type":  pricing.TripType,
	}).Info("Pricing created")

	return nil
}

func (s *pricingService) GetPricing(ctx context.Context, id primitive.ObjectID) (*models.Pricing, error) {
	return s.pricingRepo.GetByID(ctx, id)
}

func (s *pricingService) ListPricing(ctx context.Context, params *utils.PaginationParams) ([]*models.Pricing, int64, error) {
	return s.pricingRepo.List(ctx, params)
}

func (s *pricingService) UpdatePricing(ctx context.Context, id primitive.ObjectID, updates map[string]interface{}) error {
	return s.pricingRepo.Update(ctx, id, updates)
}

func (s *pricingService) DeletePricing(ctx context.Context, id primitive.ObjectID) error {
	return s.pricingRepo.Delete(ctx, id)
}

// Image resolution order: the row's own image, then a matching route image,
// then the car type default, then the generic fallback.
func resolveOneWayImage(row *models.Pricing, routes []*models.Route) string {
	if row.ImageURL != "" {
		return row.ImageURL
	}

	for _, route := range routes {
		if route.From == row.RouteFrom && route.To == row.RouteTo && route.ImageURL != "" {
			return route.ImageURL
		}
	}

	return carTypeImage(row.CarType)
}

func resolveRoundTripImage(row *models.Pricing, routes []*models.Route) string {
	if row.ImageURL != "" {
		return row.ImageURL
	}

	for _, route := range routes {
		if route.ImageURL != "" {
			return route.ImageURL
		}
	}

	return carTypeImage(row.CarType)
}

func carTypeImage(carType string) string {
	if image, ok := carTypeImages[carType]; ok {
		return image
	}
	return genericCarImage
}

func capacityString(capacity int) string {
	if capacity <= 0 {
		return defaultCapacity
	}
	return strconv.Itoa(capacity)
}

func fallbackString(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}

func fallbackSlice(values, fallback []string) []string {
	if len(values) == 0 {
		return fallback
	}
	return values
}
