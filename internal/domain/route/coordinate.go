package route

// Coordinate is a geographic point in floating-point degrees.
// The whole system works in (latitude, longitude) order; any axis
// reordering an upstream protocol requires happens inside its adapter.
type Coordinate struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}
