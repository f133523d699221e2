package domain

// ExploredSegment - сегмент в том виде, в котором его отдаёт /segments/explore
type ExploredSegment struct {
	ID                int64     `json:"id"`
	Name              string    `json:"name"`
	ClimbCategory     int       `json:"climb_category"`
	ClimbCategoryDesc string    `json:"climb_category_desc"`
	AvgGrade          float64   `json:"avg_grade"`
	StartLatLng       []float64 `json:"start_latlng"`
	EndLatLng         []float64 `json:"end_latlng"`
	ElevDifference    float64   `json:"elev_difference"` // meters
	Distance          float64   `json:"distance"`        // meters
	Points            string    `json:"points"`          // encoded polyline
	Starred           bool      `json:"starred"`
}

// ExploreResponse - тело ответа /segments/explore
type ExploreResponse struct {
	Segments []ExploredSegment `json:"segments"`
}

// Activity types accepted by the explorer.
const (
	ActivityRunning = "running"
	ActivityRiding  = "riding"
)
