// Package notion is a thin client for the Notion workspace API, covering the
// handful of endpoints the site reads: database data-source resolution,
// data-source queries, block children, and page icons.
package notion

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const (
	defaultBaseURL = "https://api.notion.com"
	apiVersion     = "2025-09-03"
)

// Client talks to the workspace API with a bearer credential.
type Client struct {
	token   string
	baseURL string
	http    *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL overrides the API base URL. Tests point this at a local server.
func WithBaseURL(u string) Option {
	return func(c *Client) {
		c.baseURL = u
	}
}

// WithHTTPClient overrides the underlying HTTP client.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) {
		c.http = h
	}
}

// NewClient creates a Client authenticated with the given integration token.
func NewClient(token string, opts ...Option) *Client {
	c := &Client{
		token:   token,
		baseURL: defaultBaseURL,
		http:    &http.Client{Timeout: 30 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reqBody io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reqBody = bytes.NewReader(encoded)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Notion-Version", apiVersion)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		data, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("notion: %s %s: status %d: %s", method, path, resp.StatusCode, data)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

// DataSourceID resolves the database to its first data source. Databases
// gained multiple data sources in the 2025 API; this site only ever has one.
func (c *Client) DataSourceID(ctx context.Context, databaseID string) (string, error) {
	var resp struct {
		DataSources []struct {
			ID string `json:"id"`
		} `json:"data_sources"`
	}
	if err := c.do(ctx, http.MethodGet, "/v1/databases/"+databaseID, nil, &resp); err != nil {
		return "", err
	}
	if len(resp.DataSources) == 0 {
		return "", fmt.Errorf("notion: database %s has no data sources", databaseID)
	}
	return resp.DataSources[0].ID, nil
}

// QueryDataSource returns the pages of a data source whose Status is
// "Completed", sorted by creation time descending. Filtering and ordering
// happen server-side; callers must not re-sort.
func (c *Client) QueryDataSource(ctx context.Context, dataSourceID string) ([]Page, error) {
	body := map[string]any{
		"filter": map[string]any{
			"property": "Status",
			"status":   map[string]string{"equals": "Completed"},
		},
		"sorts": []map[string]string{
			{"timestamp": "created_time", "direction": "descending"},
		},
	}
	var resp struct {
		Results []Page `json:"results"`
	}
	if err := c.do(ctx, http.MethodPost, "/v1/data_sources/"+dataSourceID+"/query", body, &resp); err != nil {
		return nil, err
	}
	return resp.Results, nil
}

// BlockChildren lists the child blocks of a page or block, following
// pagination cursors until the full list is read.
func (c *Client) BlockChildren(ctx context.Context, blockID string) ([]Block, error) {
	var all []Block
	cursor := ""
	for {
		path := "/v1/blocks/" + blockID + "/children?page_size=100"
		if cursor != "" {
			path += "&start_cursor=" + cursor
		}
		var resp struct {
			Results    []Block `json:"results"`
			HasMore    bool    `json:"has_more"`
			NextCursor string  `json:"next_cursor"`
		}
		if err := c.do(ctx, http.MethodGet, path, nil, &resp); err != nil {
			return nil, err
		}
		all = append(all, resp.Results...)
		if !resp.HasMore || resp.NextCursor == "" {
			return all, nil
		}
		cursor = resp.NextCursor
	}
}

// PageIcon retrieves a page's icon. Pages without one (or with an icon shape
// the site does not render) yield a zero Icon.
func (c *Client) PageIcon(ctx context.Context, pageID string) (Icon, error) {
	var resp struct {
		Icon *struct {
			Type     string   `json:"type"`
			Emoji    string   `json:"emoji"`
			File     *FileRef `json:"file"`
			External *FileRef `json:"external"`
		} `json:"icon"`
	}
	if err := c.do(ctx, http.MethodGet, "/v1/pages/"+pageID, nil, &resp); err != nil {
		return Icon{}, err
	}
	if resp.Icon == nil {
		return Icon{}, nil
	}
	switch resp.Icon.Type {
	case "emoji":
		return Icon{Kind: "emoji", Value: resp.Icon.Emoji}, nil
	case "file":
		if resp.Icon.File != nil {
			return Icon{Kind: "url", Value: resp.Icon.File.URL}, nil
		}
	case "external":
		if resp.Icon.External != nil {
			return Icon{Kind: "url", Value: resp.Icon.External.URL}, nil
		}
	}
	return Icon{}, nil
}
