// Package remote fetches the dialogue script and its images over HTTP.
package remote

import (
	"context"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"net/http"
	"time"

	"github.com/younwookim/taskshow/internal/domain/dialogue"
	_ "golang.org/x/image/webp"
)

// ErrStatus is returned when the server answers with a non-2xx status.
var ErrStatus = errors.New("unexpected HTTP status")

// maxBody caps how much of a response is read.
const maxBody = 8 << 20

// Client fetches remote resources.
type Client struct {
	http      *http.Client
	scriptURL string
}

// NewClient creates a client with the given request timeout.
func NewClient(scriptURL string, timeout time.Duration) *Client {
	return &Client{
		http:      &http.Client{Timeout: timeout},
		scriptURL: scriptURL,
	}
}

// ScriptURL returns the configured script endpoint.
func (c *Client) ScriptURL() string {
	return c.scriptURL
}

// FetchScript downloads and decodes the dialogue script.
func (c *Client) FetchScript(ctx context.Context) (*dialogue.Script, error) {
	body, err := c.get(ctx, c.scriptURL)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch script: %w", err)
	}
	defer body.Close()

	script, err := dialogue.Decode(body)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch script: %w", err)
	}
	return script, nil
}

// FetchImage downloads and decodes a PNG, JPEG, GIF or WebP image.
func (c *Client) FetchImage(ctx context.Context, url string) (image.Image, error) {
	body, err := c.get(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch image %s: %w", url, err)
	}
	defer body.Close()

	img, _, err := image.Decode(body)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image %s: %w", url, err)
	}
	return img, nil
}

func (c *Client) get(ctx context.Context, url string) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		resp.Body.Close()
		return nil, fmt.Errorf("%w: %d", ErrStatus, resp.StatusCode)
	}
	return struct {
		io.Reader
		io.Closer
	}{io.LimitReader(resp.Body, maxBody), resp.Body}, nil
}
