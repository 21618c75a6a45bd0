package route

import "errors"

// Adapter-level failure conditions. These are wrapped by the adapters and
// either escalated to a client-visible DomainError (route, energy) or absorbed
// with a documented fallback value (weather, emissions, recommendation).
var (
	ErrRouteUnavailable          = errors.New("route data unavailable")
	ErrEnergyDataUnavailable     = errors.New("energy price data unavailable")
	ErrWeatherDataUnavailable    = errors.New("weather data unavailable")
	ErrEmissionsUnavailable      = errors.New("emissions data unavailable")
	ErrRecommendationUnavailable = errors.New("recommendation unavailable")
)

// Error codes carried by DomainError and mapped to HTTP statuses by the
// response layer.
const (
	CodeValidation        = "VALIDATION_ERROR"
	CodeRouteUnavailable  = "ROUTE_UNAVAILABLE"
	CodeEnergyUnavailable = "ENERGY_DATA_UNAVAILABLE"
	CodeNotFound          = "NOT_FOUND"
	CodeInternal          = "INTERNAL_ERROR"
)

// DomainError is a client-visible pipeline failure.
type DomainError struct {
	Code    string
	Message string
}

// Error implements the error interface.
func (e *DomainError) Error() string {
	return e.Message
}

// NewValidationError creates an error for missing or malformed caller input.
func NewValidationError(message string) *DomainError {
	return &DomainError{Code: CodeValidation, Message: message}
}

// NewRouteUnavailableError creates the fatal error for a failed routing call.
// It is attributable to the supplied coordinates, so it maps to a client error.
func NewRouteUnavailableError(message string) *DomainError {
	return &DomainError{Code: CodeRouteUnavailable, Message: message}
}

// NewEnergyUnavailableError creates the fatal error for a failed energy price
// lookup. An absent energy price has no substitute value.
func NewEnergyUnavailableError(message string) *DomainError {
	return &DomainError{Code: CodeEnergyUnavailable, Message: message}
}

// NewNotFoundError creates an error for a missing resource.
func NewNotFoundError(message string) *DomainError {
	return &DomainError{Code: CodeNotFound, Message: message}
}

// NewInternalError creates an error for an unexpected internal failure.
func NewInternalError(message string) *DomainError {
	return &DomainError{Code: CodeInternal, Message: message}
}
