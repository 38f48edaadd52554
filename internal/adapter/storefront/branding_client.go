package storefront

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"storefront-docs/internal/core/domain/models"
)

// BrandingClient fetches store branding from the backend REST API.
// Failures here are treated as "no branding" by the caller, never as
// fatal errors.
type BrandingClient struct {
	baseURL string
	client  *http.Client
}

func NewBrandingClient(baseURL string) *BrandingClient {
	return &BrandingClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		// No client timeout: a hung lookup is bounded only by the
		// request context and the transport layer.
		client: &http.Client{},
	}
}

func (c *BrandingClient) GetBranding(ctx context.Context, websiteID string) (models.Branding, error) {
	url := fmt.Sprintf("%s/api/websites/%s", c.baseURL, websiteID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return models.Branding{}, fmt.Errorf("failed to build branding request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return models.Branding{}, fmt.Errorf("branding lookup failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return models.Branding{}, fmt.Errorf("branding lookup returned status %d", resp.StatusCode)
	}

	var branding models.Branding
	if err := json.NewDecoder(resp.Body).Decode(&branding); err != nil {
		return models.Branding{}, fmt.Errorf("failed to decode branding response: %w", err)
	}

	return branding, nil
}
