package services

import (
	"testing"

	"firstcab/internal/models"
	"firstcab/internal/store"
	"firstcab/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func newTestLogger(t *testing.T) *logger.Logger {
	t.Helper()

	log, err := logger.NewLogger(&logger.Config{Level: logger.ErrorLevel, Format: "json", Output: "stderr"})
	require.NoError(t, err)

	return log
}

func newCatalogService(t *testing.T) PricingService {
	t.Helper()
	return NewPricingService(nil, nil, store.New(), newTestLogger(t))
}

func oneWayRow(carType, from, to string, price float64) *models.Pricing {
	return &models.Pricing{
		ID:        primitive.NewObjectID(),
		RouteFrom: from,
		RouteTo:   to,
		CarType:   carType,
		TripType:  models.TripTypeOneWay,
		Price:     price,
	}
}

func TestBuildCatalogGroupsByRouteAndCarType(t *testing.T) {
	svc := newCatalogService(t)

	pricing := []*models.Pricing{
		oneWayRow("Sedan", "Mumbai", "Pune", 4500),
		oneWayRow("Sedan", "Mumbai", "Pune", 4800),
		oneWayRow("SUV", "Mumbai", "Pune", 6000),
		oneWayRow("Sedan", "Mumbai", "Nashik", 5200),
	}

	catalog := svc.BuildCatalog(pricing, nil)

	require.Len(t, catalog.OneWay, 3, "duplicate rows for the same route and car type must collapse into one group")

	sedan := catalog.OneWay[0]
	assert.Equal(t, "Sedan", sedan.Name)
	require.Len(t, sedan.Routes, 2, "all route/price pairs must be retained")
	assert.Equal(t, "₹4500", sedan.Routes[0].Price)
	assert.Equal(t, "₹4800", sedan.Routes[1].Price)

	suv := catalog.OneWay[1]
	assert.Equal(t, "SUV", suv.Name)
	assert.Len(t, suv.Routes, 1)

	nashikSedan := catalog.OneWay[2]
	assert.Equal(t, "Sedan", nashikSedan.Name)
	require.Len(t, nashikSedan.Routes, 1, "the same car type on another route is a separate group")
	assert.Equal(t, "Nashik", nashikSedan.Routes[0].To)
}

func TestBuildCatalogLastWriteWinsOnScalars(t *testing.T) {
	svc := newCatalogService(t)

	first := oneWayRow("Sedan", "Mumbai", "Pune", 4500)
	first.CarModel = "Dzire"
	second := oneWayRow("Sedan", "Mumbai", "Pune", 4800)
	second.CarModel = "Etios"

	catalog := svc.BuildCatalog([]*models.Pricing{first, second}, nil)

	require.Len(t, catalog.OneWay, 1)
	assert.Equal(t, "Etios", catalog.OneWay[0].Model)
	assert.Len(t, catalog.OneWay[0].Routes, 2)
}

func TestBuildCatalogDefaults(t *testing.T) {
	svc := newCatalogService(t)

	catalog := svc.BuildCatalog([]*models.Pricing{oneWayRow("Sedan", "Mumbai", "Pune", 4500)}, nil)

	require.Len(t, catalog.OneWay, 1)
	group := catalog.OneWay[0]
	assert.Equal(t, "4", group.Capacity)
	assert.Equal(t, "2 Large", group.Luggage)
	assert.Equal(t, []string{"AC Included", "No Hidden Charges"}, group.Features)
	assert.Equal(t, []string{"Parking charges extra if applicable"}, group.Warnings)
}

func TestBuildCatalogRoundTripDefaults(t *testing.T) {
	svc := newCatalogService(t)

	row := &models.Pricing{
		ID:       primitive.NewObjectID(),
		CarType:  "SUV",
		TripType: models.TripTypeRoundTrip,
	}

	catalog := svc.BuildCatalog([]*models.Pricing{row}, nil)

	require.Len(t, catalog.RoundTrip, 1)
	option := catalog.RoundTrip[0]
	assert.Equal(t, "₹11", option.PricePerKm)
	assert.Equal(t, "250km / day", option.MinKm)
	assert.Contains(t, option.Features, "Night Halt ₹500 (after 12 AM)")
	assert.Contains(t, option.Features, "Toll & Parking Extra")
}

func TestBuildCatalogPartitionsByTripType(t *testing.T) {
	svc := newCatalogService(t)

	pricing := []*models.Pricing{
		oneWayRow("Sedan", "Mumbai", "Pune", 4500),
		{ID: primitive.NewObjectID(), CarType: "Sedan", TripType: models.TripTypeRoundTrip, PricePerKm: 13},
	}

	catalog := svc.BuildCatalog(pricing, nil)

	require.Len(t, catalog.OneWay, 1)
	require.Len(t, catalog.RoundTrip, 1)
	assert.Len(t, catalog.OneWay[0].Routes, 1, "round trip rows must not leak into one way groups")
	assert.Equal(t, "₹13", catalog.RoundTrip[0].PricePerKm)
}

func TestBuildCatalogImageResolution(t *testing.T) {
	svc := newCatalogService(t)

	routes := []*models.Route{
		{ID: primitive.NewObjectID(), From: "Mumbai", To: "Pune", ImageURL: "https://cdn.example.com/mumbai-pune.jpg"},
		{ID: primitive.NewObjectID(), From: "Mumbai", To: "Nashik"},
	}

	withOwnImage := oneWayRow("Sedan", "Mumbai", "Pune", 4500)
	withOwnImage.ImageURL = "https://cdn.example.com/own.jpg"

	fromRoute := oneWayRow("SUV", "Mumbai", "Pune", 6000)
	fromCarType := oneWayRow("Hatchback", "Mumbai", "Nashik", 3500)
	generic := oneWayRow("Limousine", "Mumbai", "Nashik", 9000)

	catalog := svc.BuildCatalog([]*models.Pricing{withOwnImage, fromRoute, fromCarType, generic}, routes)

	require.Len(t, catalog.OneWay, 4)
	assert.Equal(t, "https://cdn.example.com/own.jpg", catalog.OneWay[0].Image)
	assert.Equal(t, "https://cdn.example.com/mumbai-pune.jpg", catalog.OneWay[1].Image)
	assert.Equal(t, "/images/cars/hatchback.png", catalog.OneWay[2].Image)
	assert.Equal(t, "/images/cars/default.png", catalog.OneWay[3].Image)
}

func TestBuildCatalogIdempotentAndNonMutating(t *testing.T) {
	svc := newCatalogService(t)

	row := oneWayRow("Sedan", "Mumbai", "Pune", 4500)
	row.Features = []string{"Custom Feature"}
	pricing := []*models.Pricing{row}

	first := svc.BuildCatalog(pricing, nil)
	second := svc.BuildCatalog(pricing, nil)

	assert.Equal(t, first, second)
	assert.Equal(t, []string{"Custom Feature"}, row.Features, "inputs must not be mutated")
	assert.Equal(t, 4500.0, row.Price)
}

func TestBuildCatalogEmptyInputs(t *testing.T) {
	svc := newCatalogService(t)

	catalog := svc.BuildCatalog(nil, nil)

	assert.NotNil(t, catalog.OneWay)
	assert.NotNil(t, catalog.RoundTrip)
	assert.Empty(t, catalog.OneWay)
	assert.Empty(t, catalog.RoundTrip)
}
