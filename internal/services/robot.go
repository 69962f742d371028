package services

import (
	"context"
	"fmt"
	"net/http"

	"golang.org/x/sync/errgroup"

	"github.com/robocompare/robocompare-backend/internal/catalog"
	"github.com/robocompare/robocompare-backend/internal/clients/notion"
	"github.com/robocompare/robocompare-backend/internal/logger"
	"github.com/robocompare/robocompare-backend/internal/normalization"
	"github.com/robocompare/robocompare-backend/internal/platform/apierr"
	"github.com/robocompare/robocompare-backend/internal/types"
)

// Records are fetched in one bounded page, sorted upstream by company name.
const (
	recordPageSize = 100
	sortProperty   = "Company"
)

type RobotService interface {
	GetRobots(ctx context.Context, categoryID string) (*types.RobotData, error)
}

type robotService struct {
	log      *logger.Logger
	registry *catalog.Registry
	notion   notion.API
}

func NewRobotService(baseLog *logger.Logger, registry *catalog.Registry, notionClient notion.API) RobotService {
	return &robotService{
		log:      baseLog.With("service", "RobotService"),
		registry: registry,
		notion:   notionClient,
	}
}

func (s *robotService) GetRobots(ctx context.Context, categoryID string) (*types.RobotData, error) {
	databaseID, err := s.registry.DatabaseID(categoryID)
	if err != nil {
		return nil, apierr.New(http.StatusNotFound, "category_not_found", err)
	}

	var (
		schema  types.PropertySchema
		records []notion.Record
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		schema, err = s.notion.RetrieveSchema(gctx, databaseID)
		return err
	})
	g.Go(func() error {
		var err error
		records, err = s.notion.QueryRecords(gctx, databaseID, sortProperty, recordPageSize)
		return err
	})
	if err := g.Wait(); err != nil {
		s.log.Error("Category load failed", "category", categoryID, "error", err)
		return nil, fmt.Errorf("load category %q: %w", categoryID, err)
	}

	cls := normalization.Classify(schema)

	robots := make([]*types.Robot, 0, len(records))
	for _, rec := range records {
		robots = append(robots, normalization.NormalizeRecord(rec, cls))
	}

	properties := cls.Generic
	if properties == nil {
		properties = []types.PropertyDescriptor{}
	}

	s.log.Debug("Normalized category", "category", categoryID, "robots", len(robots), "properties", len(properties))
	return &types.RobotData{
		Robots:     robots,
		Properties: properties,
		HasKSP:     cls.HasHighlights(),
	}, nil
}
