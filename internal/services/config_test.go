package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/robocompare/robocompare-backend/internal/platform/apierr"
	"github.com/robocompare/robocompare-backend/internal/types"
)

const testConfigDB = "config-db"

func sampleGroups() []types.SpecGroup {
	return []types.SpecGroup{{
		ID:     "mobility",
		Name:   "Mobility",
		Icon:   "🦿",
		Specs:  []string{"Speed", "Range"},
		Better: []string{"max", "max"},
	}}
}

func TestConfigRoundTrip(t *testing.T) {
	fake := newFakeNotion()
	svc := NewConfigService(testLogger(t), fake, testConfigDB)

	groups := sampleGroups()
	require.NoError(t, svc.SaveConfig(context.Background(), "humanoid", groups))

	cfg, err := svc.GetConfig(context.Background(), "humanoid")
	require.NoError(t, err)
	require.Equal(t, groups, cfg.SpecGroups)
}

func TestConfigSaveUpdatesExistingRow(t *testing.T) {
	fake := newFakeNotion()
	svc := NewConfigService(testLogger(t), fake, testConfigDB)

	require.NoError(t, svc.SaveConfig(context.Background(), "humanoid", sampleGroups()))
	require.NoError(t, svc.SaveConfig(context.Background(), "humanoid", nil))

	require.Equal(t, 1, fake.createCalls)
	require.Equal(t, 1, fake.updateCalls)
	require.Len(t, fake.configPages, 1)
}

func TestConfigReadMissingRow(t *testing.T) {
	svc := NewConfigService(testLogger(t), newFakeNotion(), testConfigDB)

	cfg, err := svc.GetConfig(context.Background(), "humanoid")
	require.NoError(t, err)
	require.NotNil(t, cfg.SpecGroups)
	require.Empty(t, cfg.SpecGroups)
}

func TestConfigReadInvalidPayload(t *testing.T) {
	fake := newFakeNotion()
	fake.configPages["humanoid"] = "row-humanoid"
	fake.configPayloads["row-humanoid"] = "{not json"
	svc := NewConfigService(testLogger(t), fake, testConfigDB)

	cfg, err := svc.GetConfig(context.Background(), "humanoid")
	require.NoError(t, err)
	require.Empty(t, cfg.SpecGroups)
}

func TestConfigReadUpstreamFailure(t *testing.T) {
	fake := newFakeNotion()
	fake.configQueryErr = errors.New("store down")
	svc := NewConfigService(testLogger(t), fake, testConfigDB)

	_, err := svc.GetConfig(context.Background(), "humanoid")
	require.Error(t, err)
}

func TestConfigUnconfiguredStore(t *testing.T) {
	svc := NewConfigService(testLogger(t), newFakeNotion(), "")

	// reads degrade quietly
	cfg, err := svc.GetConfig(context.Background(), "humanoid")
	require.NoError(t, err)
	require.Empty(t, cfg.SpecGroups)

	// writes must fail loudly
	err = svc.SaveConfig(context.Background(), "humanoid", sampleGroups())
	require.ErrorIs(t, err, ErrConfigStoreUnconfigured)

	var ae *apierr.Error
	require.ErrorAs(t, err, &ae)
	require.Equal(t, 500, ae.Status)
}
