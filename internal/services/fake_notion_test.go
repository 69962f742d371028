package services

import (
	"context"
	"sync"
	"testing"

	"github.com/robocompare/robocompare-backend/internal/clients/notion"
	"github.com/robocompare/robocompare-backend/internal/logger"
	"github.com/robocompare/robocompare-backend/internal/types"
)

func testLogger(t *testing.T) *logger.Logger {
	t.Helper()
	log, err := logger.New("development")
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

// fakeNotion is an in-memory stand-in for the upstream store.
type fakeNotion struct {
	mu sync.Mutex

	schema     types.PropertySchema
	schemaErr  error
	records    []notion.Record
	recordsErr error

	schemaCalls int
	queryCalls  int

	configPages    map[string]string // category → page id
	configPayloads map[string]string // page id → payload
	configQueryErr error
	createErr      error
	updateErr      error
	createCalls    int
	updateCalls    int
}

func newFakeNotion() *fakeNotion {
	return &fakeNotion{
		configPages:    map[string]string{},
		configPayloads: map[string]string{},
	}
}

func (f *fakeNotion) RetrieveSchema(ctx context.Context, databaseID string) (types.PropertySchema, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.schemaCalls++
	if f.schemaErr != nil {
		return nil, f.schemaErr
	}
	return f.schema, nil
}

func (f *fakeNotion) QueryRecords(ctx context.Context, databaseID, sortProperty string, pageSize int) ([]notion.Record, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.queryCalls++
	if f.recordsErr != nil {
		return nil, f.recordsErr
	}
	return f.records, nil
}

func (f *fakeNotion) QueryConfigRows(ctx context.Context, databaseID, category string) ([]notion.ConfigRow, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.configQueryErr != nil {
		return nil, f.configQueryErr
	}
	pageID, ok := f.configPages[category]
	if !ok {
		return nil, nil
	}
	return []notion.ConfigRow{{PageID: pageID, Payload: f.configPayloads[pageID]}}, nil
}

func (f *fakeNotion) CreateConfigRow(ctx context.Context, databaseID, category, payload string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.createCalls++
	if f.createErr != nil {
		return f.createErr
	}
	pageID := "row-" + category
	f.configPages[category] = pageID
	f.configPayloads[pageID] = payload
	return nil
}

func (f *fakeNotion) UpdateConfigRow(ctx context.Context, pageID, payload string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.updateCalls++
	if f.updateErr != nil {
		return f.updateErr
	}
	f.configPayloads[pageID] = payload
	return nil
}
