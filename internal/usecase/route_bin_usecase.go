package usecase

import (
	"context"
	stderrors "errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/tkrajina/gpxgo/gpx"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/runanywhere/runanywhere/internal/domain"
	"github.com/runanywhere/runanywhere/internal/domain/repository"
	"github.com/runanywhere/runanywhere/internal/pkg/errors"
	"github.com/runanywhere/runanywhere/internal/pkg/utils"
	"github.com/runanywhere/runanywhere/internal/pkg/validator"
	"github.com/runanywhere/runanywhere/internal/usecase/dto"
)

const gpxCreator = "RunAnywhere"

type RouteBinUseCase struct {
	binRepo        repository.RouteBinRepository
	mapbox         repository.MapboxRepository
	logger         *zap.Logger
	maxConcurrency int
}

func NewRouteBinUseCase(
	binRepo repository.RouteBinRepository,
	mapbox repository.MapboxRepository,
	maxConcurrency int,
	logger *zap.Logger,
) *RouteBinUseCase {
	if maxConcurrency <= 0 {
		maxConcurrency = 4
	}
	return &RouteBinUseCase{
		binRepo:        binRepo,
		mapbox:         mapbox,
		logger:         logger,
		maxConcurrency: maxConcurrency,
	}
}

// Create создаёт bin с одним сегментом
func (uc *RouteBinUseCase) Create(ctx context.Context, segment dto.Segment) (*dto.RouteBinResponse, error) {
	if err := validateSegment(segment); err != nil {
		return nil, err
	}

	bin, err := uc.binRepo.Create(ctx, []domain.RouteSegment{segment.ToDomain()})
	if err != nil {
		uc.logger.Error("Failed to create route bin", zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	uc.logger.Info("Route bin created", zap.String("bin_id", bin.ID.String()))
	return dto.ConvertRouteBin(bin), nil
}

func (uc *RouteBinUseCase) Get(ctx context.Context, id string) (*dto.RouteBinResponse, error) {
	bin, err := uc.load(ctx, id)
	if err != nil {
		return nil, err
	}
	return dto.ConvertRouteBin(bin), nil
}

// Append дописывает сегмент в конец bin
func (uc *RouteBinUseCase) Append(ctx context.Context, id string, segment dto.Segment) (*dto.RouteBinResponse, error) {
	binID, err := parseBinID(id)
	if err != nil {
		return nil, err
	}
	if err := validateSegment(segment); err != nil {
		return nil, err
	}

	bin, err := uc.binRepo.Append(ctx, binID, segment.ToDomain())
	if err != nil {
		return nil, uc.mapRepoError(err, binID)
	}
	return dto.ConvertRouteBin(bin), nil
}

// ExportGPX - один трек на bin, по track segment на каждый сегмент
func (uc *RouteBinUseCase) ExportGPX(ctx context.Context, id string) ([]byte, error) {
	bin, err := uc.load(ctx, id)
	if err != nil {
		return nil, err
	}

	track := gpx.GPXTrack{Name: fmt.Sprintf("RunAnywhere route %s", bin.ID)}
	for _, s := range bin.Segments {
		trackSegment := gpx.GPXTrackSegment{}
		for _, p := range s.Points {
			if len(p) < 2 {
				continue
			}
			// points are [lng, lat]
			trackSegment.Points = append(trackSegment.Points, gpx.GPXPoint{
				Point: gpx.Point{Latitude: p[1], Longitude: p[0]},
			})
		}
		track.Segments = append(track.Segments, trackSegment)
	}

	doc := &gpx.GPX{
		Version: "1.1",
		Creator: gpxCreator,
		Name:    track.Name,
		Tracks:  []gpx.GPXTrack{track},
	}

	data, err := doc.ToXml(gpx.ToXmlParams{Version: "1.1", Indent: true})
	if err != nil {
		uc.logger.Error("Failed to render GPX", zap.String("bin_id", bin.ID.String()), zap.Error(err))
		return nil, errors.ErrInternalServer
	}
	return data, nil
}

// Connectors строит пешеходные связки между соседними сегментами.
// Запросы к Directions API идут параллельно, порядок результата совпадает с порядком сегментов.
func (uc *RouteBinUseCase) Connectors(ctx context.Context, id string) (*dto.ConnectorsResponse, error) {
	bin, err := uc.load(ctx, id)
	if err != nil {
		return nil, err
	}

	if len(bin.Segments) < 2 {
		return &dto.ConnectorsResponse{BinID: bin.ID, Connectors: []dto.Connector{}}, nil
	}

	results := make([]*dto.Connector, len(bin.Segments)-1)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(uc.maxConcurrency)

	for i := 1; i < len(bin.Segments); i++ {
		from, okFrom := bin.Segments[i-1].Last()
		to, okTo := bin.Segments[i].First()
		if !okFrom || !okTo || len(from) < 2 || len(to) < 2 {
			uc.logger.Warn("Skipping connector for segment without points",
				zap.String("bin_id", bin.ID.String()),
				zap.Int("to", i),
			)
			continue
		}

		idx := i
		g.Go(func() error {
			route, err := uc.mapbox.GetWalkingRoute(gctx,
				domain.Coordinate{Lat: from[1], Lon: from[0]},
				domain.Coordinate{Lat: to[1], Lon: to[0]},
			)
			if err != nil {
				return fmt.Errorf("connector %d->%d: %w", idx-1, idx, err)
			}
			results[idx-1] = &dto.Connector{
				From:     idx - 1,
				To:       idx,
				Geometry: route.Geometry,
				Distance: route.Distance,
				Duration: route.Duration,
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		uc.logger.Error("Failed to build connectors", zap.String("bin_id", bin.ID.String()), zap.Error(err))
		return nil, errors.ErrDirectionsUpstream
	}

	connectors := make([]dto.Connector, 0, len(results))
	for _, c := range results {
		if c != nil {
			connectors = append(connectors, *c)
		}
	}

	return &dto.ConnectorsResponse{BinID: bin.ID, Connectors: connectors}, nil
}

func (uc *RouteBinUseCase) load(ctx context.Context, id string) (*domain.RouteBin, error) {
	binID, err := parseBinID(id)
	if err != nil {
		return nil, err
	}

	bin, err := uc.binRepo.Get(ctx, binID)
	if err != nil {
		return nil, uc.mapRepoError(err, binID)
	}
	return bin, nil
}

func (uc *RouteBinUseCase) mapRepoError(err error, binID uuid.UUID) error {
	if stderrors.Is(err, domain.ErrRouteBinNotFound) {
		return errors.ErrBinNotFound
	}
	uc.logger.Error("Route bin repository failed", zap.String("bin_id", binID.String()), zap.Error(err))
	return errors.ErrDatabaseError
}

func validateSegment(segment dto.Segment) error {
	if len(segment.Points) == 0 {
		return errors.ErrEmptySegment
	}
	if err := validator.Validate(segment); err != nil {
		return err
	}
	// точки приходят как [lng, lat]
	for _, p := range segment.Points {
		if !utils.ValidateCoordinates(p[1], p[0]) {
			return errors.ErrInvalidCoordinates
		}
	}
	return nil
}

// parseBinID: невалидный id неотличим от несуществующего
func parseBinID(id string) (uuid.UUID, error) {
	binID, err := uuid.Parse(id)
	if err != nil {
		return uuid.Nil, errors.ErrBinNotFound
	}
	return binID, nil
}
