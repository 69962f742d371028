package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sync"

	"github.com/robocompare/robocompare-backend/internal/clients/notion"
	"github.com/robocompare/robocompare-backend/internal/logger"
	"github.com/robocompare/robocompare-backend/internal/platform/apierr"
	"github.com/robocompare/robocompare-backend/internal/types"
)

var ErrConfigStoreUnconfigured = errors.New("config store not configured")

// ConfigService persists per-category display configuration blobs in a
// dedicated upstream database. Configuration is advisory: reads degrade to
// an empty result when the store is unconfigured, the row is missing, or
// the stored payload is not valid JSON. Writes must fail loudly instead of
// pretending to succeed.
type ConfigService interface {
	GetConfig(ctx context.Context, category string) (*types.CategoryConfig, error)
	SaveConfig(ctx context.Context, category string, specGroups []types.SpecGroup) error
}

type configService struct {
	log        *logger.Logger
	notion     notion.API
	databaseID string

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func NewConfigService(baseLog *logger.Logger, notionClient notion.API, databaseID string) ConfigService {
	return &configService{
		log:        baseLog.With("service", "ConfigService"),
		notion:     notionClient,
		databaseID: databaseID,
		locks:      map[string]*sync.Mutex{},
	}
}

func emptyConfig() *types.CategoryConfig {
	return &types.CategoryConfig{SpecGroups: []types.SpecGroup{}}
}

func (s *configService) GetConfig(ctx context.Context, category string) (*types.CategoryConfig, error) {
	if s.databaseID == "" {
		s.log.Debug("Config store unconfigured, returning empty config", "category", category)
		return emptyConfig(), nil
	}

	rows, err := s.notion.QueryConfigRows(ctx, s.databaseID, category)
	if err != nil {
		return nil, fmt.Errorf("load config for %q: %w", category, err)
	}
	if len(rows) == 0 {
		return emptyConfig(), nil
	}

	var cfg types.CategoryConfig
	if err := json.Unmarshal([]byte(rows[0].Payload), &cfg); err != nil {
		s.log.Warn("Stored config payload is not valid JSON, treating as unset", "category", category, "error", err)
		return emptyConfig(), nil
	}
	if cfg.SpecGroups == nil {
		cfg.SpecGroups = []types.SpecGroup{}
	}
	return &cfg, nil
}

func (s *configService) SaveConfig(ctx context.Context, category string, specGroups []types.SpecGroup) error {
	if s.databaseID == "" {
		return apierr.New(http.StatusInternalServerError, "config_store_unconfigured", ErrConfigStoreUnconfigured)
	}

	// Category uniqueness in the config database holds only by
	// query-before-write, so writes for one category are serialized here.
	lock := s.lockFor(category)
	lock.Lock()
	defer lock.Unlock()

	payload, err := json.Marshal(types.CategoryConfig{SpecGroups: specGroups})
	if err != nil {
		return fmt.Errorf("encode config for %q: %w", category, err)
	}

	rows, err := s.notion.QueryConfigRows(ctx, s.databaseID, category)
	if err != nil {
		return fmt.Errorf("lookup config row for %q: %w", category, err)
	}

	if len(rows) > 0 {
		if err := s.notion.UpdateConfigRow(ctx, rows[0].PageID, string(payload)); err != nil {
			return fmt.Errorf("update config for %q: %w", category, err)
		}
		s.log.Info("Updated category config", "category", category)
		return nil
	}

	if err := s.notion.CreateConfigRow(ctx, s.databaseID, category, string(payload)); err != nil {
		return fmt.Errorf("create config for %q: %w", category, err)
	}
	s.log.Info("Created category config", "category", category)
	return nil
}

func (s *configService) lockFor(category string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	lock, ok := s.locks[category]
	if !ok {
		lock = &sync.Mutex{}
		s.locks[category] = lock
	}
	return lock
}
