package catalog

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"atelier-admin-core/internal/domain"
	"atelier-admin-core/internal/ports"

	"github.com/rs/zerolog"
)

// APIError is a non-2xx response from the catalog API.
type APIError struct {
	Status int
	Body   string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("catalog api: status %d: %s", e.Status, e.Body)
}

// Client is the HTTP adapter for the catalog API. Every call is a single
// attempt with a bounded timeout; retry policy belongs to the human clicking
// the button again.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     zerolog.Logger
}

// NewClient creates a catalog client for the given base URL
// (e.g. http://localhost:5000/api).
func NewClient(baseURL string, logger zerolog.Logger) ports.CatalogClient {
	return &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
		logger: logger,
	}
}

var _ ports.CatalogClient = (*Client)(nil)

func (c *Client) doJSON(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("catalog request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		apiErr := &APIError{Status: resp.StatusCode, Body: strings.TrimSpace(string(raw))}
		c.logger.Debug().
			Str("method", method).
			Str("path", path).
			Int("status", resp.StatusCode).
			Msg("Catalog API returned an error status")
		return apiErr
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}
	return nil
}

// Category API

func (c *Client) FetchCategories(ctx context.Context) ([]domain.Category, error) {
	var raw []remoteCategory
	if err := c.doJSON(ctx, http.MethodGet, "/categories", nil, &raw); err != nil {
		return nil, fmt.Errorf("failed to fetch categories: %w", err)
	}
	categories := make([]domain.Category, 0, len(raw))
	for _, r := range raw {
		categories = append(categories, r.toDomain())
	}
	return categories, nil
}

func (c *Client) CreateCategory(ctx context.Context, input domain.CategoryInput) (*domain.CategoryEcho, error) {
	var raw remoteCategory
	if err := c.doJSON(ctx, http.MethodPost, "/categories", categoryPayloadFromInput(input), &raw); err != nil {
		return nil, fmt.Errorf("failed to create category: %w", err)
	}
	echo := raw.toEcho()
	return &echo, nil
}

func (c *Client) UpdateCategory(ctx context.Context, id string, patch domain.CategoryPatch) (*domain.CategoryEcho, error) {
	var raw remoteCategory
	if err := c.doJSON(ctx, http.MethodPut, "/categories/"+id, categoryPayloadFromPatch(patch), &raw); err != nil {
		return nil, fmt.Errorf("failed to update category: %w", err)
	}
	echo := raw.toEcho()
	return &echo, nil
}

func (c *Client) DeleteCategory(ctx context.Context, id string) error {
	if err := c.doJSON(ctx, http.MethodDelete, "/categories/"+id, nil, nil); err != nil {
		return fmt.Errorf("failed to delete category: %w", err)
	}
	return nil
}

// Product API

func (c *Client) FetchProducts(ctx context.Context) ([]domain.Product, error) {
	var raw []remoteProduct
	if err := c.doJSON(ctx, http.MethodGet, "/products", nil, &raw); err != nil {
		return nil, fmt.Errorf("failed to fetch products: %w", err)
	}
	products := make([]domain.Product, 0, len(raw))
	for _, r := range raw {
		products = append(products, r.toDomain())
	}
	return products, nil
}

func (c *Client) CreateProduct(ctx context.Context, input domain.ProductInput) (*domain.ProductEcho, error) {
	var raw remoteProduct
	if err := c.doJSON(ctx, http.MethodPost, "/products", productPayloadFromInput(input), &raw); err != nil {
		return nil, fmt.Errorf("failed to create product: %w", err)
	}
	echo := raw.toEcho()
	return &echo, nil
}

func (c *Client) UpdateProduct(ctx context.Context, id string, patch domain.ProductPatch) (*domain.ProductEcho, error) {
	var raw remoteProduct
	if err := c.doJSON(ctx, http.MethodPut, "/products/"+id, productPayloadFromPatch(patch), &raw); err != nil {
		return nil, fmt.Errorf("failed to update product: %w", err)
	}
	echo := raw.toEcho()
	return &echo, nil
}

func (c *Client) DeleteProduct(ctx context.Context, id string) error {
	if err := c.doJSON(ctx, http.MethodDelete, "/products/"+id, nil, nil); err != nil {
		return fmt.Errorf("failed to delete product: %w", err)
	}
	return nil
}
