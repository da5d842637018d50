package pinot

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/julez-dev/pinotui/httputil"
)

// databaseHeader scopes table and schema requests to a database.
const databaseHeader = "database"

var ErrNotFound = errors.New("resource not found")

// APIError is returned for every non 200 response of the controller besides 404.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("non 200 response code (%d): %s", e.StatusCode, e.Body)
}

type ClientOption func(*Client)

func WithToken(token string) ClientOption {
	return func(c *Client) {
		c.token = token
	}
}

func WithDatabase(database string) ClientOption {
	return func(c *Client) {
		c.database = database
	}
}

type Client struct {
	httpClient *http.Client
	baseURL    string
	token      string
	database   string
}

func NewClient(baseURL string, httpClient *http.Client, opts ...ClientOption) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	c := &Client{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		httpClient: httpClient,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// BaseURL returns the controller address the client talks to.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Database returns the database requests are scoped to, empty for the default database.
func (c *Client) Database() string {
	return c.database
}

// ForDatabase returns a copy of the client scoped to another database.
func (c *Client) ForDatabase(database string) *Client {
	clone := *c
	clone.database = database
	return &clone
}

func (c *Client) ListTables(ctx context.Context) ([]string, error) {
	resp, err := do[tablesResponse](ctx, c, "/tables")
	if err != nil {
		return nil, err
	}

	return nonNil(resp.Tables), nil
}

func (c *Client) ListSchemas(ctx context.Context) ([]string, error) {
	resp, err := do[[]string](ctx, c, "/schemas")
	if err != nil {
		return nil, err
	}

	return nonNil(resp), nil
}

func (c *Client) ListDatabases(ctx context.Context) ([]string, error) {
	resp, err := do[[]string](ctx, c, "/databases")
	if err != nil {
		return nil, err
	}

	return nonNil(resp), nil
}

func (c *Client) ListInstances(ctx context.Context) ([]string, error) {
	resp, err := do[instancesResponse](ctx, c, "/instances")
	if err != nil {
		return nil, err
	}

	return nonNil(resp.Instances), nil
}

func (c *Client) TableSize(ctx context.Context, table string) (TableSize, error) {
	if table == "" {
		return TableSize{}, fmt.Errorf("expected a table name")
	}

	return do[TableSize](ctx, c, "/tables/"+url.PathEscape(table)+"/size")
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}

	return s
}

func do[T any](ctx context.Context, client *Client, path string) (T, error) {
	var respData T

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, client.baseURL+path, nil)
	if err != nil {
		return respData, err
	}

	req.Header.Set("Accept", "application/json")

	if client.token != "" {
		req.Header.Set("Authorization", "Bearer "+client.token)
	}

	if client.database != "" {
		req.Header.Set(databaseHeader, client.database)
	}

	resp, err := httputil.RetryOnThrottle(ctx, func() (*http.Response, error) {
		clone, err := httputil.CloneRequest(req)
		if err != nil {
			return nil, err
		}

		return client.httpClient.Do(clone)
	})
	if err != nil {
		return respData, err
	}

	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return respData, err
	}

	if resp.StatusCode == http.StatusNotFound {
		return respData, fmt.Errorf("%s: %w", path, ErrNotFound)
	}

	if resp.StatusCode != http.StatusOK {
		return respData, &APIError{
			StatusCode: resp.StatusCode,
			Body:       string(bytes.Trim(bodyBytes, "\n")),
		}
	}

	if err := json.Unmarshal(bodyBytes, &respData); err != nil {
		return respData, fmt.Errorf("error while decoding %s response: %w", path, err)
	}

	return respData, nil
}
