package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/robocompare/robocompare-backend/internal/catalog"
	"github.com/robocompare/robocompare-backend/internal/clients/notion"
	"github.com/robocompare/robocompare-backend/internal/platform/apierr"
	"github.com/robocompare/robocompare-backend/internal/types"
)

func textRuns(s string) []notion.RichText {
	return []notion.RichText{{PlainText: s}}
}

func float(f float64) *float64 { return &f }

func scenarioFake() *fakeNotion {
	fake := newFakeNotion()
	fake.schema = types.PropertySchema{
		"Model":   {Type: "title"},
		"Company": {Type: "select"},
		"KSP-1":   {Type: "rich_text"},
		"KSP-2":   {Type: "rich_text"},
		"Speed":   {Type: "number"},
	}
	fake.records = []notion.Record{{
		ID: "page-1",
		Properties: map[string]notion.PropertyValue{
			"Model":   {Type: "title", Title: textRuns("X1")},
			"Company": {Type: "select", Select: &notion.SelectOption{Name: "Acme"}},
			"KSP-1":   {Type: "rich_text", RichText: textRuns("Fast")},
			"KSP-2":   {Type: "rich_text"},
			"Speed":   {Type: "number", Number: float(5)},
		},
	}}
	return fake
}

func testRegistry(t *testing.T) *catalog.Registry {
	t.Helper()
	registry, err := catalog.Load(testLogger(t))
	require.NoError(t, err)
	return registry
}

func TestGetRobotsScenario(t *testing.T) {
	fake := scenarioFake()
	svc := NewRobotService(testLogger(t), testRegistry(t), fake)

	data, err := svc.GetRobots(context.Background(), "humanoid")
	require.NoError(t, err)

	require.True(t, data.HasKSP)
	require.Len(t, data.Robots, 1)

	robot := data.Robots[0]
	require.Equal(t, "X1", robot.Model)
	require.Equal(t, "Acme", robot.Company)
	require.Equal(t, []string{"Fast"}, robot.Highlights)
	require.Equal(t, map[string]any{"Speed": float64(5)}, robot.Specs)

	require.Equal(t, []types.PropertyDescriptor{{Name: "Speed", Type: "number"}}, data.Properties)
}

func TestGetRobotsCategoryNotFound(t *testing.T) {
	svc := NewRobotService(testLogger(t), testRegistry(t), newFakeNotion())

	_, err := svc.GetRobots(context.Background(), "submarine")
	require.Error(t, err)
	require.ErrorIs(t, err, catalog.ErrCategoryNotFound)

	var ae *apierr.Error
	require.ErrorAs(t, err, &ae)
	require.Equal(t, 404, ae.Status)
}

func TestGetRobotsUpstreamFailure(t *testing.T) {
	fake := scenarioFake()
	fake.schemaErr = errors.New("upstream exploded")
	svc := NewRobotService(testLogger(t), testRegistry(t), fake)

	_, err := svc.GetRobots(context.Background(), "humanoid")
	require.Error(t, err)
	require.Contains(t, err.Error(), "upstream exploded")
}

func TestGetRobotsEmptyCategory(t *testing.T) {
	fake := newFakeNotion()
	fake.schema = types.PropertySchema{"Model": {Type: "title"}}
	svc := NewRobotService(testLogger(t), testRegistry(t), fake)

	data, err := svc.GetRobots(context.Background(), "drone")
	require.NoError(t, err)
	require.Empty(t, data.Robots)
	require.NotNil(t, data.Properties)
	require.False(t, data.HasKSP)
}
