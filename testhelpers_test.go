//go:build integration

package main_test

import (
	"context"
	"fmt"
	"net"
	"testing"
	"time"

	"github.com/GreenRoute/service-ecoroute/internal/domain/route"
	"github.com/GreenRoute/service-ecoroute/internal/events"
	"github.com/GreenRoute/service-ecoroute/internal/repository"
	"github.com/google/uuid"
	kafkago "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	kafkamodule "github.com/testcontainers/testcontainers-go/modules/kafka"
	"github.com/testcontainers/testcontainers-go/wait"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// testInfra holds shared test infrastructure.
type testInfra struct {
	DB           *gorm.DB
	KafkaBrokers []string
	Cleanup      func()
}

// setupContainers starts PostgreSQL and Kafka testcontainers and returns a connected GORM DB.
func setupContainers(t *testing.T) *testInfra {
	t.Helper()
	ctx := context.Background()

	pgReq := testcontainers.ContainerRequest{
		Image:        "postgres:16-alpine",
		ExposedPorts: []string{"5432/tcp"},
		Env: map[string]string{
			"POSTGRES_USER":     "test",
			"POSTGRES_PASSWORD": "test",
			"POSTGRES_DB":       "test_ecoroute",
		},
		WaitingFor: wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2).
			WithStartupTimeout(60 * time.Second),
	}
	pgContainer, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: pgReq,
		Started:          true,
	})
	require.NoError(t, err, "failed to start PostgreSQL container")

	pgHost, err := pgContainer.Host(ctx)
	require.NoError(t, err)
	pgPort, err := pgContainer.MappedPort(ctx, "5432")
	require.NoError(t, err)

	dsn := fmt.Sprintf("host=%s port=%s user=test password=test dbname=test_ecoroute sslmode=disable", pgHost, pgPort.Port())

	// Poll until GORM can actually connect and ping.
	var db *gorm.DB
	require.Eventually(t, func() bool {
		var err error
		db, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
		if err != nil {
			return false
		}
		sqlDB, err := db.DB()
		if err != nil {
			return false
		}
		return sqlDB.Ping() == nil
	}, 30*time.Second, 1*time.Second, "PostgreSQL not ready for connections")

	require.NoError(t, db.AutoMigrate(&repository.TripModel{}))

	// Start Kafka container using confluent-local (supports KRaft natively).
	kafkaContainer, err := kafkamodule.Run(ctx, "confluentinc/confluent-local:7.5.0")
	require.NoError(t, err, "failed to start Kafka container")

	kafkaBrokers, err := kafkaContainer.Brokers(ctx)
	require.NoError(t, err, "failed to get Kafka brokers")

	// Pre-create required topics.
	createTopics(t, kafkaBrokers, events.TopicRouteEvents)

	cleanup := func() {
		if err := kafkaContainer.Terminate(ctx); err != nil {
			t.Logf("failed to terminate Kafka container: %v", err)
		}
		if err := pgContainer.Terminate(ctx); err != nil {
			t.Logf("failed to terminate PostgreSQL container: %v", err)
		}
	}

	return &testInfra{
		DB:           db,
		KafkaBrokers: kafkaBrokers,
		Cleanup:      cleanup,
	}
}

// seedTrip inserts a trip row directly for repository tests.
func seedTrip(t *testing.T, db *gorm.DB, fuelType string, createdAt time.Time) uuid.UUID {
	t.Helper()
	id := uuid.New()
	model := repository.TripModel{
		ID:             id,
		OriginLat:      37.7749,
		OriginLng:      -122.4194,
		DestinationLat: 34.0522,
		DestinationLng: -118.2437,
		VehicleType:    "Sedan",
		FuelType:       fuelType,
		Comparison:     []byte(`{"original":{"distance_km":559,"duration_minutes":300,"kilograms_co2":50},"optimized":{"distance_km":559,"duration_minutes":285,"kilograms_co2":45}}`),
		Recommended:    true,
		CreatedAt:      createdAt,
	}
	require.NoError(t, db.Create(&model).Error, "failed to seed trip")
	return id
}

// consumeOneEvent reads from a Kafka topic until it finds an event of the expected type.
func consumeOneEvent(t *testing.T, brokers []string, topic, expectedType string, timeout time.Duration) events.CloudEvent {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	groupID := fmt.Sprintf("test-assert-%s", uuid.New().String()[:8])
	reader := kafkago.NewReader(kafkago.ReaderConfig{
		Brokers:     brokers,
		GroupID:     groupID,
		Topic:       topic,
		MinBytes:    1,
		MaxBytes:    10e6,
		StartOffset: kafkago.FirstOffset,
	})
	defer func() { _ = reader.Close() }()

	for {
		msg, err := reader.ReadMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				t.Fatalf("timed out waiting for event type %q on topic %q", expectedType, topic)
			}
			continue
		}
		ce, err := events.ParseCloudEvent(msg.Value)
		if err != nil {
			continue
		}
		if ce.Type == expectedType {
			return ce
		}
	}
}

// createTopics pre-creates Kafka topics so producers don't fail with "Unknown Topic".
func createTopics(t *testing.T, brokers []string, topics ...string) {
	t.Helper()
	conn, err := kafkago.Dial("tcp", brokers[0])
	require.NoError(t, err, "failed to dial Kafka for topic creation")
	defer conn.Close()

	controller, err := conn.Controller()
	require.NoError(t, err, "failed to get Kafka controller")

	controllerConn, err := kafkago.Dial("tcp", net.JoinHostPort(controller.Host, fmt.Sprintf("%d", controller.Port)))
	require.NoError(t, err, "failed to connect to Kafka controller")
	defer controllerConn.Close()

	topicConfigs := make([]kafkago.TopicConfig, len(topics))
	for i, topic := range topics {
		topicConfigs[i] = kafkago.TopicConfig{
			Topic:             topic,
			NumPartitions:     1,
			ReplicationFactor: 1,
		}
	}
	err = controllerConn.CreateTopics(topicConfigs...)
	require.NoError(t, err, "failed to create Kafka topics")
}

// --- Happy-path upstream stubs so the pipeline can run without real credentials ---

type stubRouteAdapter struct{}

func (stubRouteAdapter) GetRoute(ctx context.Context, origin, destination route.Coordinate, apiKey string) (*route.RouteResult, error) {
	return &route.RouteResult{
		DistanceKm:      559.0,
		DurationMinutes: 300,
		Path:            []route.Coordinate{origin, destination},
		Directions:      []string{"Head south"},
	}, nil
}

type stubEnergyAdapter struct{}

func (stubEnergyAdapter) CurrentPrice(ctx context.Context, apiKey string) (*route.EnergyPrice, error) {
	return &route.EnergyPrice{PricePerUnit: 12.9, Period: "2026-05"}, nil
}

type stubWeatherAdapter struct{}

func (stubWeatherAdapter) CurrentConditions(ctx context.Context, location, apiKey string) (*route.WeatherConditions, error) {
	return &route.WeatherConditions{TemperatureC: 18, Description: "light rain", WindSpeedMps: 3.4}, nil
}

type stubEmissionsAdapter struct{}

func (stubEmissionsAdapter) EstimateEmissions(ctx context.Context, distanceKm float64, apiKey string) (*route.EmissionsResult, error) {
	return &route.EmissionsResult{GramsCO2: 50000, KilogramsCO2: 50.0}, nil
}

type stubRecommendationAdapter struct{}

func (stubRecommendationAdapter) GenerateRecommendation(ctx context.Context, prompt, apiKey string) (string, error) {
	return "Keep a steady speed.\n1. Avoid rush hour.", nil
}
