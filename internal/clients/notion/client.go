package notion

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/robocompare/robocompare-backend/internal/logger"
	"github.com/robocompare/robocompare-backend/internal/pkg/httpx"
	"github.com/robocompare/robocompare-backend/internal/types"
	"github.com/robocompare/robocompare-backend/internal/utils"
)

// API is the set of upstream store capabilities the rest of the system
// consumes. The store's schema is not under our control and may differ per
// database and over time.
type API interface {
	RetrieveSchema(ctx context.Context, databaseID string) (types.PropertySchema, error)
	QueryRecords(ctx context.Context, databaseID, sortProperty string, pageSize int) ([]Record, error)
	QueryConfigRows(ctx context.Context, databaseID, category string) ([]ConfigRow, error)
	CreateConfigRow(ctx context.Context, databaseID, category, payload string) error
	UpdateConfigRow(ctx context.Context, pageID, payload string) error
}

type client struct {
	log        *logger.Logger
	baseURL    string
	token      string
	version    string
	httpClient *http.Client
	maxRetries int
}

func NewClient(log *logger.Logger) (API, error) {
	token := strings.TrimSpace(os.Getenv("NOTION_TOKEN"))
	if token == "" {
		return nil, fmt.Errorf("missing NOTION_TOKEN")
	}

	baseURL := utils.GetEnv("NOTION_BASE_URL", "https://api.notion.com", log)
	version := utils.GetEnv("NOTION_VERSION", "2022-06-28", log)
	timeoutSec := utils.GetEnvAsInt("NOTION_TIMEOUT_SECONDS", 30, log)
	maxRetries := utils.GetEnvAsInt("NOTION_MAX_RETRIES", 3, log)

	return &client{
		log:        log.With("client", "NotionClient"),
		baseURL:    strings.TrimRight(baseURL, "/"),
		token:      token,
		version:    version,
		httpClient: &http.Client{Timeout: time.Duration(timeoutSec) * time.Second},
		maxRetries: maxRetries,
	}, nil
}

type notionHTTPError struct {
	StatusCode int
	Body       string
}

func (e *notionHTTPError) Error() string {
	return fmt.Sprintf("notion http %d: %s", e.StatusCode, e.Body)
}

func (e *notionHTTPError) HTTPStatusCode() int { return e.StatusCode }

const (
	retryBase = 500 * time.Millisecond
	retryMax  = 10 * time.Second
)

func sleepCtx(ctx context.Context, d time.Duration) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(d):
		return nil
	}
}

func (c *client) do(ctx context.Context, method, path string, body any, out any) error {
	var payload []byte
	if body != nil {
		var err error
		payload, err = json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}
	}

	for attempt := 0; ; attempt++ {
		var reader io.Reader
		if payload != nil {
			reader = bytes.NewReader(payload)
		}
		req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
		if err != nil {
			return fmt.Errorf("build request: %w", err)
		}
		req.Header.Set("Authorization", "Bearer "+c.token)
		req.Header.Set("Notion-Version", c.version)
		if payload != nil {
			req.Header.Set("Content-Type", "application/json")
		}

		resp, err := c.httpClient.Do(req)
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			if attempt >= c.maxRetries || !httpx.IsRetryableError(err) {
				return err
			}
			c.log.Warn("Upstream request failed, retrying", "method", method, "path", path, "attempt", attempt, "error", err)
			if err := sleepCtx(ctx, httpx.BackoffDelay(nil, attempt, retryBase, retryMax)); err != nil {
				return err
			}
			continue
		}

		respBody, readErr := io.ReadAll(resp.Body)
		resp.Body.Close()
		if readErr != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			if attempt >= c.maxRetries {
				return fmt.Errorf("read response: %w", readErr)
			}
			c.log.Warn("Reading upstream response failed, retrying", "method", method, "path", path, "attempt", attempt, "error", readErr)
			if err := sleepCtx(ctx, httpx.BackoffDelay(nil, attempt, retryBase, retryMax)); err != nil {
				return err
			}
			continue
		}

		if resp.StatusCode >= 200 && resp.StatusCode < 300 {
			if out == nil {
				return nil
			}
			if err := json.Unmarshal(respBody, out); err != nil {
				return fmt.Errorf("decode response: %w", err)
			}
			return nil
		}

		httpErr := &notionHTTPError{StatusCode: resp.StatusCode, Body: strings.TrimSpace(string(respBody))}
		if attempt >= c.maxRetries || !httpx.IsRetryableHTTPStatus(resp.StatusCode) {
			return httpErr
		}
		c.log.Warn("Upstream returned retryable status", "method", method, "path", path, "status", resp.StatusCode, "attempt", attempt)
		if err := sleepCtx(ctx, httpx.BackoffDelay(resp, attempt, retryBase, retryMax)); err != nil {
			return err
		}
	}
}

func (c *client) RetrieveSchema(ctx context.Context, databaseID string) (types.PropertySchema, error) {
	var resp databaseResponse
	if err := c.do(ctx, http.MethodGet, "/v1/databases/"+databaseID, nil, &resp); err != nil {
		return nil, fmt.Errorf("retrieve schema: %w", err)
	}
	schema := make(types.PropertySchema, len(resp.Properties))
	for name, prop := range resp.Properties {
		spec := types.PropertySpec{Type: prop.Type}
		if prop.Select != nil {
			for _, opt := range prop.Select.Options {
				spec.Options = append(spec.Options, opt.Name)
			}
		}
		schema[name] = spec
	}
	return schema, nil
}

func (c *client) QueryRecords(ctx context.Context, databaseID, sortProperty string, pageSize int) ([]Record, error) {
	req := queryRequest{
		Sorts:    []querySort{{Property: sortProperty, Direction: "ascending"}},
		PageSize: pageSize,
	}
	var resp queryResponse
	if err := c.do(ctx, http.MethodPost, "/v1/databases/"+databaseID+"/query", req, &resp); err != nil {
		return nil, fmt.Errorf("query records: %w", err)
	}
	return resp.Results, nil
}

func (c *client) QueryConfigRows(ctx context.Context, databaseID, category string) ([]ConfigRow, error) {
	req := queryRequest{
		Filter: &queryFilter{Property: "Category", Title: titleFilter{Equals: category}},
	}
	var resp queryResponse
	if err := c.do(ctx, http.MethodPost, "/v1/databases/"+databaseID+"/query", req, &resp); err != nil {
		return nil, fmt.Errorf("query config rows: %w", err)
	}
	rows := make([]ConfigRow, 0, len(resp.Results))
	for _, page := range resp.Results {
		row := ConfigRow{PageID: page.ID}
		if cfg, ok := page.Properties["Config"]; ok && len(cfg.RichText) > 0 {
			row.Payload = cfg.RichText[0].PlainText
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func (c *client) CreateConfigRow(ctx context.Context, databaseID, category, payload string) error {
	req := createPageRequest{
		Parent: pageParent{DatabaseID: databaseID},
		Properties: map[string]any{
			"Category": map[string]any{"title": []textRun{{Text: textContent{Content: category}}}},
			"Config":   map[string]any{"rich_text": []textRun{{Text: textContent{Content: payload}}}},
		},
	}
	if err := c.do(ctx, http.MethodPost, "/v1/pages", req, nil); err != nil {
		return fmt.Errorf("create config row: %w", err)
	}
	return nil
}

func (c *client) UpdateConfigRow(ctx context.Context, pageID, payload string) error {
	req := updatePageRequest{
		Properties: map[string]any{
			"Config": map[string]any{"rich_text": []textRun{{Text: textContent{Content: payload}}}},
		},
	}
	if err := c.do(ctx, http.MethodPatch, "/v1/pages/"+pageID, req, nil); err != nil {
		return fmt.Errorf("update config row: %w", err)
	}
	return nil
}
