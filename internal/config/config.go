package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// ServiceConfig holds all configuration for the eco-route service.
type ServiceConfig struct {
	Port     string
	AppEnv   string
	Upstream UpstreamConfig
	DB       DatabaseConfig
	Kafka    KafkaConfig
}

// UpstreamConfig configures the five external services the pipeline talks to.
// Base URLs are overridable so adapters can be pointed at test servers.
type UpstreamConfig struct {
	RouteBaseURL          string
	EnergyBaseURL         string
	EnergySeriesID        string
	EmissionsBaseURL      string
	VehicleModelID        string
	WeatherBaseURL        string
	OriginLocation        string
	DestinationLocation   string
	RecommendationBaseURL string
	RecommendationModel   string
	Timeout               time.Duration
}

// DatabaseConfig holds the optional trip-history database settings.
type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
}

// Enabled reports whether trip history persistence is configured.
func (c DatabaseConfig) Enabled() bool {
	return c.Host != ""
}

// DSN returns the GORM/pgx connection string.
func (c DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}

// DatabaseURL returns the URL form used by the migration runner.
func (c DatabaseConfig) DatabaseURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode)
}

// KafkaConfig holds the optional event publishing settings.
type KafkaConfig struct {
	Brokers []string
}

// Enabled reports whether event publishing is configured.
func (c KafkaConfig) Enabled() bool {
	return len(c.Brokers) > 0
}

// Load reads configuration from ECOROUTE_-prefixed environment variables.
func Load() (*ServiceConfig, error) {
	v := viper.New()
	v.SetEnvPrefix("ECOROUTE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("SERVICE_PORT", ":8080")
	v.SetDefault("APP_ENV", "development")

	v.SetDefault("ROUTE_BASE_URL", "https://api.openrouteservice.org")
	v.SetDefault("ENERGY_BASE_URL", "https://api.eia.gov")
	v.SetDefault("ENERGY_SERIES_ID", "ELEC.PRICE.US-ALL.M")
	v.SetDefault("EMISSIONS_BASE_URL", "https://www.carboninterface.com")
	v.SetDefault("VEHICLE_MODEL_ID", "passenger_vehicle")
	v.SetDefault("WEATHER_BASE_URL", "https://api.openweathermap.org")
	v.SetDefault("WEATHER_ORIGIN_LOCATION", "San Francisco")
	v.SetDefault("WEATHER_DESTINATION_LOCATION", "Los Angeles")
	v.SetDefault("RECOMMENDATION_BASE_URL", "https://api.openai.com")
	v.SetDefault("RECOMMENDATION_MODEL", "gpt-4o-mini")
	v.SetDefault("UPSTREAM_TIMEOUT", "10s")

	v.SetDefault("DB_HOST", "")
	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("DB_USER", "postgres")
	v.SetDefault("DB_PASSWORD", "")
	v.SetDefault("DB_NAME", "ecoroute")
	v.SetDefault("DB_SSLMODE", "disable")

	v.SetDefault("KAFKA_BROKERS", "")

	timeout, err := time.ParseDuration(v.GetString("UPSTREAM_TIMEOUT"))
	if err != nil {
		return nil, fmt.Errorf("invalid upstream timeout: %w", err)
	}

	var brokers []string
	if raw := v.GetString("KAFKA_BROKERS"); raw != "" {
		for _, b := range strings.Split(raw, ",") {
			if b = strings.TrimSpace(b); b != "" {
				brokers = append(brokers, b)
			}
		}
	}

	return &ServiceConfig{
		Port:   v.GetString("SERVICE_PORT"),
		AppEnv: v.GetString("APP_ENV"),
		Upstream: UpstreamConfig{
			RouteBaseURL:          v.GetString("ROUTE_BASE_URL"),
			EnergyBaseURL:         v.GetString("ENERGY_BASE_URL"),
			EnergySeriesID:        v.GetString("ENERGY_SERIES_ID"),
			EmissionsBaseURL:      v.GetString("EMISSIONS_BASE_URL"),
			VehicleModelID:        v.GetString("VEHICLE_MODEL_ID"),
			WeatherBaseURL:        v.GetString("WEATHER_BASE_URL"),
			OriginLocation:        v.GetString("WEATHER_ORIGIN_LOCATION"),
			DestinationLocation:   v.GetString("WEATHER_DESTINATION_LOCATION"),
			RecommendationBaseURL: v.GetString("RECOMMENDATION_BASE_URL"),
			RecommendationModel:   v.GetString("RECOMMENDATION_MODEL"),
			Timeout:               timeout,
		},
		DB: DatabaseConfig{
			Host:     v.GetString("DB_HOST"),
			Port:     v.GetString("DB_PORT"),
			User:     v.GetString("DB_USER"),
			Password: v.GetString("DB_PASSWORD"),
			DBName:   v.GetString("DB_NAME"),
			SSLMode:  v.GetString("DB_SSLMODE"),
		},
		Kafka: KafkaConfig{
			Brokers: brokers,
		},
	}, nil
}
