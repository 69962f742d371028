package services

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/robocompare/robocompare-backend/internal/types"
)

type countingRobotService struct {
	mu    sync.Mutex
	calls int
	err   error
}

func (s *countingRobotService) GetRobots(ctx context.Context, categoryID string) (*types.RobotData, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return &types.RobotData{Robots: []*types.Robot{}, Properties: []types.PropertyDescriptor{}}, nil
}

func (s *countingRobotService) callCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls
}

func TestCacheServesFreshEntryByIdentity(t *testing.T) {
	inner := &countingRobotService{}
	svc := NewCachedRobotService(testLogger(t), inner, time.Minute)

	current := time.Unix(1_700_000_000, 0)
	svc.now = func() time.Time { return current }

	first, err := svc.GetRobots(context.Background(), "humanoid")
	require.NoError(t, err)
	require.Equal(t, 1, inner.callCount())

	current = current.Add(30 * time.Second)
	second, err := svc.GetRobots(context.Background(), "humanoid")
	require.NoError(t, err)
	require.Same(t, first, second)
	require.Equal(t, 1, inner.callCount())
}

func TestCacheRefreshesAfterTTL(t *testing.T) {
	inner := &countingRobotService{}
	svc := NewCachedRobotService(testLogger(t), inner, time.Minute)

	current := time.Unix(1_700_000_000, 0)
	svc.now = func() time.Time { return current }

	first, err := svc.GetRobots(context.Background(), "humanoid")
	require.NoError(t, err)

	current = current.Add(61 * time.Second)
	second, err := svc.GetRobots(context.Background(), "humanoid")
	require.NoError(t, err)
	require.NotSame(t, first, second)
	require.Equal(t, 2, inner.callCount())

	// back inside the fresh window, no third pass
	current = current.Add(10 * time.Second)
	_, err = svc.GetRobots(context.Background(), "humanoid")
	require.NoError(t, err)
	require.Equal(t, 2, inner.callCount())
}

func TestCacheEntriesPerCategory(t *testing.T) {
	inner := &countingRobotService{}
	svc := NewCachedRobotService(testLogger(t), inner, time.Minute)

	_, err := svc.GetRobots(context.Background(), "humanoid")
	require.NoError(t, err)
	_, err = svc.GetRobots(context.Background(), "drone")
	require.NoError(t, err)
	require.Equal(t, 2, inner.callCount())
}

func TestCacheDoesNotStoreFailedRefresh(t *testing.T) {
	inner := &countingRobotService{err: errors.New("boom")}
	svc := NewCachedRobotService(testLogger(t), inner, time.Minute)

	_, err := svc.GetRobots(context.Background(), "humanoid")
	require.Error(t, err)

	// failure must not have produced an entry, so the next call hits
	// the inner service again
	inner.mu.Lock()
	inner.err = nil
	inner.mu.Unlock()

	_, err = svc.GetRobots(context.Background(), "humanoid")
	require.NoError(t, err)
	require.Equal(t, 2, inner.callCount())
}
