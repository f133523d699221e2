package dto

import (
	"strconv"

	"github.com/runanywhere/runanywhere/internal/domain"
)

// NearbySegmentsRequest - центр поиска сегментов
type NearbySegmentsRequest struct {
	Lat float64 `query:"lat" validate:"min=-90,max=90"`
	Lon float64 `query:"long" validate:"min=-180,max=180"`
}

// Segment - сегмент в формате карты: points в порядке [lng, lat]
type Segment struct {
	ID             int64       `json:"id,omitempty"`
	Name           string      `json:"name" validate:"required"`
	AvgGrade       float64     `json:"avg_grade"`
	ElevDifference string      `json:"elev_difference"`
	Distance       string      `json:"distance"`
	Points         [][]float64 `json:"points" validate:"required,min=1,dive,len=2"`
}

// NearbySegmentsResponse keeps the {"data": [...]} envelope the map page expects.
type NearbySegmentsResponse struct {
	Data []Segment `json:"data"`
}

// FormatMeters renders "<num> m" with the shortest number form.
func FormatMeters(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64) + " m"
}

// ConvertSegment maps an explorer segment with already decoded [lng, lat] points.
func ConvertSegment(s domain.ExploredSegment, points [][]float64) Segment {
	return Segment{
		ID:             s.ID,
		Name:           s.Name,
		AvgGrade:       s.AvgGrade,
		ElevDifference: FormatMeters(s.ElevDifference),
		Distance:       FormatMeters(s.Distance),
		Points:         points,
	}
}

func (s Segment) ToDomain() domain.RouteSegment {
	return domain.RouteSegment{
		ID:             s.ID,
		Name:           s.Name,
		AvgGrade:       s.AvgGrade,
		ElevDifference: s.ElevDifference,
		Distance:       s.Distance,
		Points:         s.Points,
	}
}

func SegmentFromDomain(s domain.RouteSegment) Segment {
	return Segment{
		ID:             s.ID,
		Name:           s.Name,
		AvgGrade:       s.AvgGrade,
		ElevDifference: s.ElevDifference,
		Distance:       s.Distance,
		Points:         s.Points,
	}
}
