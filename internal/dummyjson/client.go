package dummyjson

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/oklog/ulid/v2"

	"github.com/five82/pantry/internal/logging"
)

// Gateway defines the read-only recipe operations the rest of the program
// depends on. It is implemented by *Client and by test fakes.
type Gateway interface {
	ListRecipes(ctx context.Context, offset, limit int, query string) (Page, error)
	GetRecipe(ctx context.Context, id int) (Recipe, error)
}

// Ensure Client implements Gateway at compile time.
var _ Gateway = (*Client)(nil)

// Client talks to the DummyJSON recipes API.
type Client struct {
	baseURL   *url.URL
	http      *http.Client
	userAgent string
	logger    *slog.Logger
	validate  *validator.Validate
}

const (
	// DefaultBaseURL is the public API the browser reads from.
	DefaultBaseURL   = "https://dummyjson.com"
	defaultUserAgent = "pantry/0.1"
	requestTimeout   = 10 * time.Second

	requestIDHeader = "X-Request-ID"
)

// Option customises a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.http = hc
		}
	}
}

// WithTimeout sets the per-request timeout of the underlying http.Client.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.http.Timeout = d
		}
	}
}

// WithLogger sets the logger used for request tracing.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(c *Client) {
		if ua = strings.TrimSpace(ua); ua != "" {
			c.userAgent = ua
		}
	}
}

// NewClient builds a Client for the given base URL. An empty base URL uses
// DefaultBaseURL.
func NewClient(baseURL string, opts ...Option) (*Client, error) {
	base, err := parseBaseURL(baseURL)
	if err != nil {
		return nil, err
	}
	c := &Client{
		baseURL: base,
		http: &http.Client{
			Timeout: requestTimeout,
		},
		userAgent: defaultUserAgent,
		logger:    logging.Discard(),
		validate:  validator.New(validator.WithRequiredStructEnabled()),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// ListRecipes fetches one page of recipes. A non-blank query targets the
// search endpoint, otherwise the plain listing.
func (c *Client) ListRecipes(ctx context.Context, offset, limit int, query string) (Page, error) {
	if c == nil {
		return Page{}, fmt.Errorf("client is nil")
	}
	if offset < 0 {
		return Page{}, shapeError(fmt.Sprintf("invalid offset %d", offset), nil)
	}
	if limit <= 0 {
		return Page{}, shapeError(fmt.Sprintf("invalid limit %d", limit), nil)
	}

	values := url.Values{}
	path := "/recipes"
	if q := strings.TrimSpace(query); q != "" {
		path = "/recipes/search"
		values.Set("q", q)
	}
	values.Set("limit", strconv.Itoa(limit))
	values.Set("skip", strconv.Itoa(offset))
	// Spaces go out as %20; a literal '+' is already escaped as %2B.
	rel := &url.URL{Path: path, RawQuery: strings.ReplaceAll(values.Encode(), "+", "%20")}

	var payload Page
	if err := c.doURL(ctx, http.MethodGet, rel, &payload); err != nil {
		return Page{}, err
	}
	if err := c.validate.Struct(payload); err != nil {
		return Page{}, shapeError("invalid response format", err)
	}
	return payload, nil
}

// GetRecipe fetches a single recipe by id.
func (c *Client) GetRecipe(ctx context.Context, id int) (Recipe, error) {
	if c == nil {
		return Recipe{}, fmt.Errorf("client is nil")
	}
	if id <= 0 {
		return Recipe{}, shapeError(fmt.Sprintf("invalid recipe id %d", id), nil)
	}
	rel := &url.URL{Path: "/recipes/" + strconv.Itoa(id)}

	var payload Recipe
	if err := c.doURL(ctx, http.MethodGet, rel, &payload); err != nil {
		return Recipe{}, err
	}
	if err := c.validate.Struct(payload); err != nil {
		return Recipe{}, shapeError("invalid recipe data", err)
	}
	return payload, nil
}

func (c *Client) doURL(ctx context.Context, method string, rel *url.URL, dest any) error {
	requestID := ulid.Make().String()
	ctx = logging.AppendCtx(ctx, slog.String("request_id", requestID))

	reqURL := *c.baseURL
	reqURL.Path = c.baseURL.Path + rel.Path
	reqURL.RawQuery = rel.RawQuery
	req, err := http.NewRequestWithContext(ctx, method, reqURL.String(), nil)
	if err != nil {
		return transportError(0, "create request", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set(requestIDHeader, requestID)

	started := time.Now()
	c.logger.DebugContext(ctx, "api request", slog.String("method", method), slog.String("url", reqURL.String()))

	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.WarnContext(ctx, "api request failed", slog.Any("error", err))
		return transportError(0, "execute request", err)
	}
	defer func() { _ = resp.Body.Close() }()

	c.logger.DebugContext(ctx, "api response",
		slog.Int("status", resp.StatusCode),
		slog.Duration("elapsed", time.Since(started)))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return transportError(resp.StatusCode,
			fmt.Sprintf("%s %s returned status %d", method, rel.Path, resp.StatusCode), nil)
	}
	if dest == nil {
		return nil
	}
	decoder := json.NewDecoder(resp.Body)
	if err := decoder.Decode(dest); err != nil {
		return shapeError("decode response", err)
	}
	return nil
}

func parseBaseURL(raw string) (*url.URL, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		trimmed = DefaultBaseURL
	}
	if !strings.Contains(trimmed, "://") {
		trimmed = "https://" + trimmed
	}
	u, err := url.Parse(trimmed)
	if err != nil {
		return nil, fmt.Errorf("parse base url %q: %w", raw, err)
	}
	if u.Host == "" {
		return nil, fmt.Errorf("parse base url %q: missing host", raw)
	}
	u.Path = strings.TrimRight(u.Path, "/")
	u.RawQuery = ""
	u.Fragment = ""
	return u, nil
}
