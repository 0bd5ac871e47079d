package woocommerce

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"algowoo/internal/logger"

	"golang.org/x/time/rate"
)

const apiPath = "/wp-json/wc/v3"

var ErrNotFound = errors.New("woocommerce resource not found")

// APIError is returned for non-2xx responses.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("API request failed: %d - %s", e.StatusCode, e.Body)
}

type Client struct {
	baseURL        string
	consumerKey    string
	consumerSecret string
	httpClient     *http.Client
	limiter        *rate.Limiter
	logger         *logger.Logger
}

// NewClient builds a REST client for the shop at storeURL. rps bounds the
// request rate; zero or less disables limiting.
func NewClient(storeURL, consumerKey, consumerSecret string, rps int, logger *logger.Logger) *Client {
	limit := rate.Inf
	burst := 1
	if rps > 0 {
		limit = rate.Limit(rps)
		burst = rps
	}
	return &Client{
		baseURL:        strings.TrimRight(storeURL, "/"),
		consumerKey:    consumerKey,
		consumerSecret: consumerSecret,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		limiter: rate.NewLimiter(limit, burst),
		logger:  logger,
	}
}

// ListProducts fetches one page of products with the given status. An empty
// status lists every status.
func (c *Client) ListProducts(ctx context.Context, page, perPage int, status string) (*ProductsPage, error) {
	q := url.Values{}
	q.Set("page", strconv.Itoa(page))
	q.Set("per_page", strconv.Itoa(perPage))
	if status != "" {
		q.Set("status", status)
	}

	var products []Product
	resp, err := c.get(ctx, "/products", q, &products)
	if err != nil {
		return nil, err
	}

	totalPages, _ := strconv.Atoi(resp.Header.Get("X-WP-TotalPages"))
	total, _ := strconv.Atoi(resp.Header.Get("X-WP-Total"))
	return &ProductsPage{
		Products:   products,
		Page:       page,
		TotalPages: totalPages,
		Total:      total,
	}, nil
}

// GetProduct fetches a single product by ID
func (c *Client) GetProduct(ctx context.Context, id int64) (*Product, error) {
	var product Product
	if _, err := c.get(ctx, fmt.Sprintf("/products/%d", id), nil, &product); err != nil {
		return nil, err
	}
	return &product, nil
}

// ListAttributes fetches the global attribute taxonomies
func (c *Client) ListAttributes(ctx context.Context) ([]AttributeTaxonomy, error) {
	var attrs []AttributeTaxonomy
	if _, err := c.get(ctx, "/products/attributes", nil, &attrs); err != nil {
		return nil, err
	}
	return attrs, nil
}

func (c *Client) get(ctx context.Context, path string, query url.Values, out interface{}) (*http.Response, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limiter: %w", err)
	}

	endpoint := c.baseURL + apiPath + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.SetBasicAuth(c.consumerKey, c.consumerSecret)
	req.Header.Set("Accept", "application/json")

	c.logger.Debug("GET %s", endpoint)
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to make request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, fmt.Errorf("GET %s: %w", path, ErrNotFound)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, &APIError{StatusCode: resp.StatusCode, Body: string(body)}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	return resp, nil
}
