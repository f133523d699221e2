package handler

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/runanywhere/runanywhere/internal/pkg/errors"
	"github.com/runanywhere/runanywhere/internal/pkg/utils"
	"github.com/runanywhere/runanywhere/internal/usecase/dto"
)

// SegmentHandler - поиск сегментов для карты
type SegmentHandler struct {
	segmentUC SegmentService
	logger    *zap.Logger
}

func NewSegmentHandler(segmentUC SegmentService, logger *zap.Logger) *SegmentHandler {
	return &SegmentHandler{
		segmentUC: segmentUC,
		logger:    logger,
	}
}

// GetRoutes godoc
// @Summary Сегменты рядом с точкой
// @Description Ищет беговые сегменты в квадрате lat/long ± 0.01°. Точки сегментов в порядке [lng, lat].
// @Tags Segments
// @Produce json
// @Param lat query number false "Широта" default(0)
// @Param long query number false "Долгота" default(0)
// @Success 200 {object} dto.NearbySegmentsResponse
// @Failure 400 {object} utils.ErrorResponse
// @Failure 502 {object} utils.ErrorResponse
// @Router /get_routes [get]
func (h *SegmentHandler) GetRoutes(c *fiber.Ctx) error {
	lat, err := queryFloat(c, "lat")
	if err != nil {
		return utils.SendError(c, err)
	}
	lon, err := queryFloat(c, "long")
	if err != nil {
		return utils.SendError(c, err)
	}

	result, err := h.segmentUC.NearbySegments(c.Context(), dto.NearbySegmentsRequest{Lat: lat, Lon: lon})
	if err != nil {
		return utils.SendError(c, err)
	}

	return c.JSON(result)
}

// queryFloat: отсутствующий параметр = 0
func queryFloat(c *fiber.Ctx, name string) (float64, error) {
	raw := c.Query(name)
	if raw == "" {
		return 0, nil
	}

	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, errors.ErrInvalidRequest.WithDetails(map[string]interface{}{name: "number"})
	}
	return v, nil
}
