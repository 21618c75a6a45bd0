package application

import (
	"context"
	"time"

	"github.com/GreenRoute/service-ecoroute/internal/domain/route"
	tripDomain "github.com/GreenRoute/service-ecoroute/internal/domain/trip"
	"github.com/GreenRoute/service-ecoroute/internal/events"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// APIKeysDTO carries the caller-supplied upstream credentials. Keys are never
// stored; they live for the duration of one request.
type APIKeysDTO struct {
	EIA              string `json:"EIA_API_KEY"`
	CarbonInterface  string `json:"CARBON_INTERFACE_API_KEY"`
	Weather          string `json:"WEATHER_API_KEY"`
	OpenRouteService string `json:"OPENROUTESERVICE_API_KEY"`
	OpenAI           string `json:"OPENAI_API_KEY"`
}

// PlanRequest is the request DTO for computing an eco-route plan.
// Coordinates are [lat, lon] pairs.
type PlanRequest struct {
	OriginCoords      []float64            `json:"origin_coords"`
	DestinationCoords []float64            `json:"destination_coords"`
	Vehicle           route.VehicleProfile `json:"vehicle"`
	APIKeys           APIKeysDTO           `json:"api_keys"`
}

// PlanResponse is the terminal aggregate returned to the caller. It is never
// mutated after construction.
type PlanResponse struct {
	Route          [][]float64           `json:"route"`
	Directions     []string              `json:"directions"`
	Comparison     route.RouteComparison `json:"comparison"`
	Recommendation string                `json:"recommendation"`
}

// PlanService orchestrates the five upstream adapters into one eco-route
// plan: route first (fatal), then energy/weather/emissions fanned out, then
// the derived optimized estimate and the generated recommendation.
type PlanService struct {
	routes      route.RouteAdapter
	energy      route.EnergyPriceAdapter
	weather     route.WeatherAdapter
	emissions   route.EmissionsAdapter
	recommender route.RecommendationAdapter
	optimizer   route.RouteOptimizer

	originLocation      string
	destinationLocation string

	trips    tripDomain.TripRepository // nil disables history recording
	producer *events.Producer          // nil disables event publishing
	logger   *zap.Logger
}

// NewPlanService creates a PlanService. trips and producer may be nil when
// history recording or event publishing is not configured.
func NewPlanService(
	routes route.RouteAdapter,
	energy route.EnergyPriceAdapter,
	weather route.WeatherAdapter,
	emissions route.EmissionsAdapter,
	recommender route.RecommendationAdapter,
	optimizer route.RouteOptimizer,
	originLocation, destinationLocation string,
	trips tripDomain.TripRepository,
	producer *events.Producer,
	logger *zap.Logger,
) *PlanService {
	return &PlanService{
		routes:              routes,
		energy:              energy,
		weather:             weather,
		emissions:           emissions,
		recommender:         recommender,
		optimizer:           optimizer,
		originLocation:      originLocation,
		destinationLocation: destinationLocation,
		trips:               trips,
		producer:            producer,
		logger:              logger,
	}
}

// PlanRoute runs the whole pipeline for one request. Single pass, no retries:
// route and energy failures abort, weather/emissions/recommendation failures
// degrade to their documented substitute values.
func (s *PlanService) PlanRoute(ctx context.Context, req PlanRequest) (*PlanResponse, error) {
	origin, destination, err := validatePlanRequest(req)
	if err != nil {
		return nil, err
	}

	rt, err := s.routes.GetRoute(ctx, origin, destination, req.APIKeys.OpenRouteService)
	if err != nil {
		// Fatal: nothing downstream is computed, no other upstream call is issued.
		s.logger.Warn("route lookup failed", zap.Error(err))
		return nil, route.NewRouteUnavailableError("unable to resolve a route between the given coordinates")
	}

	var (
		price              *route.EnergyPrice
		originWeather      route.WeatherConditions
		destinationWeather route.WeatherConditions
		emissions          route.EmissionsResult
	)

	// Energy, both weather lookups and emissions are mutually independent;
	// only the energy error survives the join.
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		p, err := s.energy.CurrentPrice(gctx, req.APIKeys.EIA)
		if err != nil {
			s.logger.Warn("energy price lookup failed", zap.Error(err))
			return route.NewEnergyUnavailableError("unable to resolve the current energy price")
		}
		price = p
		return nil
	})

	g.Go(func() error {
		w, err := s.weather.CurrentConditions(gctx, s.originLocation, req.APIKeys.Weather)
		if err != nil {
			s.logger.Warn("origin weather lookup failed, using defaults",
				zap.String("location", s.originLocation),
				zap.Error(err),
			)
			originWeather = route.DefaultOriginConditions()
			return nil
		}
		originWeather = *w
		return nil
	})

	g.Go(func() error {
		w, err := s.weather.CurrentConditions(gctx, s.destinationLocation, req.APIKeys.Weather)
		if err != nil {
			s.logger.Warn("destination weather lookup failed, using defaults",
				zap.String("location", s.destinationLocation),
				zap.Error(err),
			)
			destinationWeather = route.DefaultDestinationConditions()
			return nil
		}
		destinationWeather = *w
		return nil
	})

	g.Go(func() error {
		em, err := s.emissions.EstimateEmissions(gctx, rt.DistanceKm, req.APIKeys.CarbonInterface)
		if err != nil {
			s.logger.Warn("emissions estimate failed, using linear fallback",
				zap.Float64("distance_km", rt.DistanceKm),
				zap.Error(err),
			)
			emissions = route.FallbackEmissions(rt.DistanceKm)
			return nil
		}
		emissions = *em
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	rt.AttachEmissions(emissions)
	optimized := s.optimizer.Optimize(rt)

	prompt := route.BuildRecommendationPrompt(route.PromptInputs{
		Route:               rt,
		Price:               *price,
		Emissions:           emissions,
		OriginLocation:      s.originLocation,
		OriginWeather:       originWeather,
		DestinationLocation: s.destinationLocation,
		DestinationWeather:  destinationWeather,
		Vehicle:             req.Vehicle,
	})

	recommendation, err := s.recommender.GenerateRecommendation(ctx, prompt, req.APIKeys.OpenAI)
	recommended := err == nil
	if err != nil {
		s.logger.Warn("recommendation generation failed, using placeholder", zap.Error(err))
		recommendation = route.RecommendationPlaceholder
	}

	comparison := route.NewRouteComparison(rt, optimized)

	s.recordTrip(ctx, origin, destination, req.Vehicle, comparison, recommended)
	s.publishRouteComputed(ctx, origin, destination, req.Vehicle, comparison, recommended)

	return &PlanResponse{
		Route:          toPairs(rt.Path),
		Directions:     rt.Directions,
		Comparison:     comparison,
		Recommendation: recommendation,
	}, nil
}

// validatePlanRequest checks both coordinates and all five credentials before
// any upstream call is attempted.
func validatePlanRequest(req PlanRequest) (route.Coordinate, route.Coordinate, error) {
	var zero route.Coordinate

	if len(req.OriginCoords) != 2 {
		return zero, zero, route.NewValidationError("origin_coords must be a [lat, lon] pair")
	}
	if len(req.DestinationCoords) != 2 {
		return zero, zero, route.NewValidationError("destination_coords must be a [lat, lon] pair")
	}

	keys := []struct {
		name  string
		value string
	}{
		{"EIA_API_KEY", req.APIKeys.EIA},
		{"CARBON_INTERFACE_API_KEY", req.APIKeys.CarbonInterface},
		{"WEATHER_API_KEY", req.APIKeys.Weather},
		{"OPENROUTESERVICE_API_KEY", req.APIKeys.OpenRouteService},
		{"OPENAI_API_KEY", req.APIKeys.OpenAI},
	}
	for _, k := range keys {
		if k.value == "" {
			return zero, zero, route.NewValidationError("missing required API key: " + k.name)
		}
	}

	origin := route.Coordinate{Latitude: req.OriginCoords[0], Longitude: req.OriginCoords[1]}
	destination := route.Coordinate{Latitude: req.DestinationCoords[0], Longitude: req.DestinationCoords[1]}
	return origin, destination, nil
}

func toPairs(path []route.Coordinate) [][]float64 {
	pairs := make([][]float64, len(path))
	for i, c := range path {
		pairs[i] = []float64{c.Latitude, c.Longitude}
	}
	return pairs
}

// recordTrip persists the plan to the history store. Failures are logged and
// never surface to the caller.
func (s *PlanService) recordTrip(
	ctx context.Context,
	origin, destination route.Coordinate,
	vehicle route.VehicleProfile,
	comparison route.RouteComparison,
	recommended bool,
) {
	if s.trips == nil {
		return
	}

	t, err := tripDomain.NewTrip(origin, destination, vehicle, comparison, recommended)
	if err != nil {
		s.logger.Error("failed to build trip record", zap.Error(err))
		return
	}
	if err := s.trips.Save(ctx, t); err != nil {
		s.logger.Error("failed to record trip",
			zap.String("trip_id", t.ID().String()),
			zap.Error(err),
		)
	}
}

// publishRouteComputed emits a route.computed event. Failures are logged and
// never surface to the caller.
func (s *PlanService) publishRouteComputed(
	ctx context.Context,
	origin, destination route.Coordinate,
	vehicle route.VehicleProfile,
	comparison route.RouteComparison,
	recommended bool,
) {
	if s.producer == nil {
		return
	}

	evt := events.RouteComputedEvent{
		OriginLat:                origin.Latitude,
		OriginLng:                origin.Longitude,
		DestinationLat:           destination.Latitude,
		DestinationLng:           destination.Longitude,
		VehicleType:              vehicle.Type,
		FuelType:                 vehicle.FuelType,
		DistanceKm:               comparison.Original.DistanceKm,
		DurationMinutes:          comparison.Original.DurationMinutes,
		KilogramsCO2:             comparison.Original.KilogramsCO2,
		OptimizedDurationMinutes: comparison.Optimized.DurationMinutes,
		OptimizedKilogramsCO2:    comparison.Optimized.KilogramsCO2,
		Recommended:              recommended,
		OccurredAt:               time.Now().UTC(),
	}

	ce, err := events.NewCloudEvent("service-ecoroute", events.RouteComputed, evt)
	if err != nil {
		s.logger.Error("failed to create cloud event", zap.Error(err))
		return
	}
	if err := s.producer.PublishEvent(ctx, events.TopicRouteEvents, ce); err != nil {
		s.logger.Error("failed to publish route.computed event", zap.Error(err))
	}
}
