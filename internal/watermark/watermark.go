// Package watermark calls the external service that stamps identity photos.
package watermark

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Stamper returns the watermarked version of an image.
type Stamper interface {
	Stamp(ctx context.Context, contentType string, image []byte) ([]byte, error)
}

type Client struct {
	url  string
	http *http.Client
}

func NewClient(url string, timeout time.Duration) *Client {
	return &Client{url: url, http: &http.Client{Timeout: timeout}}
}

func (c *Client) Stamp(ctx context.Context, contentType string, image []byte) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(image))
	if err != nil {
		return nil, fmt.Errorf("watermark request: %w", err)
	}
	req.Header.Set("Content-Type", contentType)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("watermark call: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("watermark service returned %d", resp.StatusCode)
	}

	out, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("watermark read: %w", err)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("watermark service returned an empty body")
	}
	return out, nil
}

// Passthrough is used when no service is configured.
type Passthrough struct{}

func (Passthrough) Stamp(_ context.Context, _ string, image []byte) ([]byte, error) {
	return image, nil
}
