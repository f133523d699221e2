package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrRouteBinNotFound = errors.New("route bin not found")

// RouteSegment - сегмент, выбранный пользователем в route builder.
// Points хранятся уже в порядке [lng, lat].
type RouteSegment struct {
	ID             int64       `json:"id,omitempty"`
	Name           string      `json:"name"`
	AvgGrade       float64     `json:"avg_grade"`
	ElevDifference string      `json:"elev_difference"`
	Distance       string      `json:"distance"`
	Points         [][]float64 `json:"points"`
}

// First returns the first [lng, lat] pair of the segment.
func (s RouteSegment) First() ([]float64, bool) {
	if len(s.Points) == 0 {
		return nil, false
	}
	return s.Points[0], true
}

// Last returns the last [lng, lat] pair of the segment.
func (s RouteSegment) Last() ([]float64, bool) {
	if len(s.Points) == 0 {
		return nil, false
	}
	return s.Points[len(s.Points)-1], true
}

// RouteBin - набор сегментов, собранный пользователем
type RouteBin struct {
	ID        uuid.UUID      `json:"id"`
	Segments  []RouteSegment `json:"segments"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
}
