package domain

// Coordinate - точка для Directions API
type Coordinate struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// LineString - GeoJSON геометрия, координаты в порядке [lng, lat]
type LineString struct {
	Type        string      `json:"type"`
	Coordinates [][]float64 `json:"coordinates"`
}

// DirectionsRoute - один маршрут из ответа Directions API
type DirectionsRoute struct {
	Geometry LineString `json:"geometry"`
	Distance float64    `json:"distance"` // meters
	Duration float64    `json:"duration"` // seconds
}

// DirectionsResponse - ответ Mapbox Directions API
type DirectionsResponse struct {
	Code    string            `json:"code"`
	Message string            `json:"message,omitempty"`
	Routes  []DirectionsRoute `json:"routes"`
}
