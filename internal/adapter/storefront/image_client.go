package storefront

import (
	"context"
	"fmt"
	"io"
	"net/http"
)

// Refuse to buffer logos larger than this
const maxImageBytes = 10 << 20

// ImageClient downloads remote images. Requests carry no cookies or
// credentials; the logo must be publicly readable.
type ImageClient struct {
	client *http.Client
}

func NewImageClient() *ImageClient {
	return &ImageClient{
		client: &http.Client{},
	}
}

func (c *ImageClient) FetchImage(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build image request: %w", err)
	}
	req.Header.Set("Accept", "image/*")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("image fetch failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("image fetch returned status %d", resp.StatusCode)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxImageBytes+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read image body: %w", err)
	}
	if len(data) > maxImageBytes {
		return nil, fmt.Errorf("image exceeds %d bytes", maxImageBytes)
	}

	return data, nil
}
