package handler

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/runanywhere/runanywhere/internal/pkg/errors"
	"github.com/runanywhere/runanywhere/internal/pkg/utils"
	"github.com/runanywhere/runanywhere/internal/usecase/dto"
)

// BinHandler - route builder: наборы сегментов, GPX и пешеходные связки
type BinHandler struct {
	binUC  RouteBinService
	logger *zap.Logger
}

func NewBinHandler(binUC RouteBinService, logger *zap.Logger) *BinHandler {
	return &BinHandler{
		binUC:  binUC,
		logger: logger,
	}
}

// Create godoc
// @Summary Создать route bin
// @Description Создаёт bin с одним сегментом
// @Tags RouteBins
// @Accept json
// @Produce json
// @Param segment body dto.Segment true "Сегмент"
// @Success 201 {object} utils.SuccessResponse{data=dto.RouteBinResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/v1/bins [post]
func (h *BinHandler) Create(c *fiber.Ctx) error {
	var segment dto.Segment
	if err := c.BodyParser(&segment); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	result, err := h.binUC.Create(c.Context(), segment)
	if err != nil {
		return utils.SendError(c, err)
	}

	c.Status(fiber.StatusCreated)
	return utils.SendSuccess(c, result, &utils.Meta{Total: len(result.Segments)})
}

// Get godoc
// @Summary Получить route bin
// @Tags RouteBins
// @Produce json
// @Param id path string true "Bin ID"
// @Success 200 {object} utils.SuccessResponse{data=dto.RouteBinResponse}
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/bins/{id} [get]
func (h *BinHandler) Get(c *fiber.Ctx) error {
	result, err := h.binUC.Get(c.Context(), c.Params("id"))
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, &utils.Meta{Total: len(result.Segments)})
}

// Append godoc
// @Summary Добавить сегмент в route bin
// @Tags RouteBins
// @Accept json
// @Produce json
// @Param id path string true "Bin ID"
// @Param segment body dto.Segment true "Сегмент"
// @Success 200 {object} utils.SuccessResponse{data=dto.RouteBinResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/bins/{id} [put]
func (h *BinHandler) Append(c *fiber.Ctx) error {
	var segment dto.Segment
	if err := c.BodyParser(&segment); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	result, err := h.binUC.Append(c.Context(), c.Params("id"), segment)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, &utils.Meta{Total: len(result.Segments)})
}

// ExportGPX godoc
// @Summary Экспорт route bin в GPX
// @Tags RouteBins
// @Produce application/gpx+xml
// @Param id path string true "Bin ID"
// @Success 200 {file} file
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/bins/{id}/gpx [get]
func (h *BinHandler) ExportGPX(c *fiber.Ctx) error {
	id := c.Params("id")

	data, err := h.binUC.ExportGPX(c.Context(), id)
	if err != nil {
		return utils.SendError(c, err)
	}

	c.Set(fiber.HeaderContentType, "application/gpx+xml")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="route-%s.gpx"`, id))
	return c.Send(data)
}

// Connectors godoc
// @Summary Пешеходные связки между сегментами
// @Description Для каждой пары соседних сегментов маршрут Mapbox walking от конца предыдущего до начала следующего
// @Tags RouteBins
// @Produce json
// @Param id path string true "Bin ID"
// @Success 200 {object} utils.SuccessResponse{data=dto.ConnectorsResponse}
// @Failure 404 {object} utils.ErrorResponse
// @Failure 502 {object} utils.ErrorResponse
// @Router /api/v1/bins/{id}/connectors [get]
func (h *BinHandler) Connectors(c *fiber.Ctx) error {
	result, err := h.binUC.Connectors(c.Context(), c.Params("id"))
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, &utils.Meta{Total: len(result.Connectors)})
}
