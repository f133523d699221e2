package dto

import (
	"time"

	"github.com/google/uuid"

	"github.com/runanywhere/runanywhere/internal/domain"
	"github.com/runanywhere/runanywhere/internal/pkg/utils"
)

// RouteBinResponse - набор сегментов с суммарной длиной
type RouteBinResponse struct {
	ID              uuid.UUID `json:"id"`
	Segments        []Segment `json:"segments"`
	TotalDistanceKm float64   `json:"total_distance_km"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

func ConvertRouteBin(bin *domain.RouteBin) *RouteBinResponse {
	segments := make([]Segment, 0, len(bin.Segments))
	var total float64
	for _, s := range bin.Segments {
		segments = append(segments, SegmentFromDomain(s))
		total += utils.LineLengthKm(s.Points)
	}

	return &RouteBinResponse{
		ID:              bin.ID,
		Segments:        segments,
		TotalDistanceKm: total,
		CreatedAt:       bin.CreatedAt,
		UpdatedAt:       bin.UpdatedAt,
	}
}

// Connector - пешеходная связка между концом сегмента From и началом сегмента To
type Connector struct {
	From     int               `json:"from"`
	To       int               `json:"to"`
	Geometry domain.LineString `json:"geometry"`
	Distance float64           `json:"distance"` // meters
	Duration float64           `json:"duration"` // seconds
}

type ConnectorsResponse struct {
	BinID      uuid.UUID   `json:"bin_id"`
	Connectors []Connector `json:"connectors"`
}
