package services

import (
	"context"
	"sync"
	"time"

	"github.com/robocompare/robocompare-backend/internal/logger"
	"github.com/robocompare/robocompare-backend/internal/types"
)

type cacheEntry struct {
	data      *types.RobotData
	fetchedAt time.Time
}

// CachedRobotService memoizes GetRobots results per category for a fixed
// TTL. The mutex only guards the map; concurrent misses for the same
// category each run their own refresh, and a failed refresh writes
// nothing, so a stale entry is never served past its TTL.
type CachedRobotService struct {
	log   *logger.Logger
	inner RobotService
	ttl   time.Duration
	now   func() time.Time

	mu      sync.Mutex
	entries map[string]cacheEntry
}

func NewCachedRobotService(baseLog *logger.Logger, inner RobotService, ttl time.Duration) *CachedRobotService {
	return &CachedRobotService{
		log:     baseLog.With("service", "CachedRobotService"),
		inner:   inner,
		ttl:     ttl,
		now:     time.Now,
		entries: map[string]cacheEntry{},
	}
}

func (s *CachedRobotService) GetRobots(ctx context.Context, categoryID string) (*types.RobotData, error) {
	s.mu.Lock()
	entry, ok := s.entries[categoryID]
	if ok && s.now().Sub(entry.fetchedAt) < s.ttl {
		s.mu.Unlock()
		s.log.Debug("Cache hit", "category", categoryID)
		return entry.data, nil
	}
	s.mu.Unlock()

	data, err := s.inner.GetRobots(ctx, categoryID)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.entries[categoryID] = cacheEntry{data: data, fetchedAt: s.now()}
	s.mu.Unlock()
	s.log.Debug("Cache refreshed", "category", categoryID)
	return data, nil
}
