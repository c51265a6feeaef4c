package forkify

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
	"time"

	"tastebook/internal/recipe"
)

// Catalog defines the operations the session layer needs from the recipe
// catalog. Implemented by *Client; tests can substitute their own.
type Catalog interface {
	GetRecipe(ctx context.Context, id string) (recipe.Recipe, error)
	Search(ctx context.Context, query string) ([]recipe.SearchResult, error)
	CreateRecipe(ctx context.Context, upload RecipeUpload) (recipe.Recipe, error)
}

// Ensure Client implements Catalog at compile time.
var _ Catalog = (*Client)(nil)

const (
	// DefaultBaseURL is the public Forkify v2 catalog.
	DefaultBaseURL = "https://forkify-api.jonas.io/api/v2/recipes/"

	// DefaultTimeout bounds every request; see Client.do.
	DefaultTimeout = 10 * time.Second

	defaultUserAgent = "tastebook/0.1"
)

// Option configures a Client.
type Option func(*Client)

// WithTimeout overrides the per-request timeout bound.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.timeout = d
		}
	}
}

// Client talks to the Forkify recipe catalog over HTTP. A zero API key is
// valid: requests simply go out unauthenticated.
type Client struct {
	baseURL   *url.URL
	apiKey    string
	timeout   time.Duration
	http      *http.Client
	userAgent string
}

// NewClient builds a Client for the given catalog base URL. An empty rawURL
// selects the public catalog.
func NewClient(rawURL, apiKey string, opts ...Option) (*Client, error) {
	base, err := parseBaseURL(rawURL)
	if err != nil {
		return nil, err
	}
	c := &Client{
		baseURL:   base,
		apiKey:    apiKey,
		timeout:   DefaultTimeout,
		http:      &http.Client{},
		userAgent: defaultUserAgent,
	}
	for _, o := range opts {
		o(c)
	}
	return c, nil
}

// GetRecipe fetches one full recipe by catalog id.
func (c *Client) GetRecipe(ctx context.Context, id string) (recipe.Recipe, error) {
	if c == nil {
		return recipe.Recipe{}, fmt.Errorf("client is nil")
	}
	if strings.TrimSpace(id) == "" {
		return recipe.Recipe{}, fmt.Errorf("recipe id required")
	}
	var payload recipeEnvelope
	if err := c.do(ctx, http.MethodGet, c.recipeURL(id, nil), nil, &payload); err != nil {
		return recipe.Recipe{}, err
	}
	return toRecipe(payload.Data.Recipe), nil
}

// Search returns the lightweight listing projection for every catalog match.
func (c *Client) Search(ctx context.Context, query string) ([]recipe.SearchResult, error) {
	if c == nil {
		return nil, fmt.Errorf("client is nil")
	}
	values := url.Values{}
	values.Set("search", query)
	var payload searchEnvelope
	if err := c.do(ctx, http.MethodGet, c.recipeURL("", values), nil, &payload); err != nil {
		return nil, err
	}
	results := make([]recipe.SearchResult, 0, len(payload.Data.Recipes))
	for _, item := range payload.Data.Recipes {
		results = append(results, toSearchResult(item))
	}
	return results, nil
}

// CreateRecipe submits a user-authored recipe and returns the normalized
// entity the catalog stored, including the generated id and owner key.
func (c *Client) CreateRecipe(ctx context.Context, upload RecipeUpload) (recipe.Recipe, error) {
	if c == nil {
		return recipe.Recipe{}, fmt.Errorf("client is nil")
	}
	var payload recipeEnvelope
	if err := c.do(ctx, http.MethodPost, c.recipeURL("", nil), upload, &payload); err != nil {
		return recipe.Recipe{}, err
	}
	return toRecipe(payload.Data.Recipe), nil
}

// recipeURL resolves the catalog URL for an optional id and query, appending
// the API key parameter when one is configured.
func (c *Client) recipeURL(id string, values url.Values) *url.URL {
	u := *c.baseURL
	if id != "" {
		u.Path = strings.TrimSuffix(u.Path, "/") + "/" + id
	}
	if values == nil {
		values = url.Values{}
	}
	if c.apiKey != "" {
		values.Set("key", c.apiKey)
	}
	u.RawQuery = values.Encode()
	return &u
}

// do performs a single request attempt, bounded by the client timeout, and
// classifies failures into the TimeoutError / NetworkError / APIError
// taxonomy. No retries.
func (c *Client) do(ctx context.Context, method string, reqURL *url.URL, body any, dest any) error {
	reqCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request body: %w", err)
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(reqCtx, method, reqURL.String(), reader)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return c.classify(ctx, reqCtx, err)
	}
	defer func() { _ = resp.Body.Close() }()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return c.classify(ctx, reqCtx, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var envelope errorEnvelope
		_ = json.Unmarshal(raw, &envelope)
		return &APIError{Status: resp.StatusCode, Message: envelope.Message}
	}
	if dest == nil {
		return nil
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// classify distinguishes the timeout bound firing from caller cancellation
// and plain connectivity failures.
func (c *Client) classify(callerCtx, reqCtx context.Context, err error) error {
	switch {
	case reqCtx.Err() != nil && callerCtx.Err() == nil:
		return &TimeoutError{Limit: c.timeout}
	case errors.Is(err, context.Canceled):
		return err
	default:
		return &NetworkError{Err: err}
	}
}

func parseBaseURL(rawURL string) (*url.URL, error) {
	trimmed := strings.TrimSpace(rawURL)
	if trimmed == "" {
		trimmed = DefaultBaseURL
	}
	u, err := url.Parse(trimmed)
	if err != nil {
		return nil, fmt.Errorf("parse api_url %q: %w", rawURL, err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("api_url %q must be absolute", rawURL)
	}
	u.RawQuery = ""
	u.Fragment = ""
	return u, nil
}
