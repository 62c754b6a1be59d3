// Package wallpaper fetches a desktop background image and turns it into
// half-block cell art.
package wallpaper

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
	"strconv"
	"strings"
	"time"

	_ "golang.org/x/image/webp"
)

// DefaultURLTemplate is a random photo sized to the viewport. {nonce}
// defeats caching so every refresh picks a new image.
const DefaultURLTemplate = "https://picsum.photos/{width}/{height}?t={nonce}"

// DefaultTimeout bounds one fetch.
const DefaultTimeout = 10 * time.Second

// maxBody caps the downloaded image size.
const maxBody = 16 << 20

var (
	// ErrBadStatus is returned when the server answers with a non-2xx code.
	ErrBadStatus = errors.New("wallpaper: unexpected status")
	// ErrBadSize is returned for non-positive dimensions.
	ErrBadSize = errors.New("wallpaper: invalid size")
)

// Provider resolves an image for a viewport of the given pixel size.
type Provider interface {
	Fetch(ctx context.Context, width, height int) (image.Image, error)
}

// HTTPProvider downloads images from a URL template with {width}, {height}
// and {nonce} placeholders.
type HTTPProvider struct {
	Client      *http.Client
	URLTemplate string
	Timeout     time.Duration
	// Nonce returns the value substituted for {nonce}.
	Nonce func() string
}

// NewHTTPProvider creates a provider. An empty template selects
// DefaultURLTemplate and a non-positive timeout selects DefaultTimeout.
func NewHTTPProvider(tmpl string, timeout time.Duration) *HTTPProvider {
	if tmpl == "" {
		tmpl = DefaultURLTemplate
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &HTTPProvider{
		Client:      &http.Client{},
		URLTemplate: tmpl,
		Timeout:     timeout,
		Nonce: func() string {
			return strconv.FormatInt(time.Now().UnixMilli(), 10)
		},
	}
}

// URL expands the template for a size.
func (p *HTTPProvider) URL(width, height int) string {
	nonce := ""
	if p.Nonce != nil {
		nonce = p.Nonce()
	}
	return strings.NewReplacer(
		"{width}", strconv.Itoa(width),
		"{height}", strconv.Itoa(height),
		"{nonce}", nonce,
	).Replace(p.URLTemplate)
}

// Fetch downloads and decodes one image. Any failure is final for this
// attempt; callers fall back to a solid background.
func (p *HTTPProvider) Fetch(ctx context.Context, width, height int) (image.Image, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrBadSize, width, height)
	}
	if p.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.Timeout)
		defer cancel()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.URL(width, height), nil)
	if err != nil {
		return nil, fmt.Errorf("wallpaper: build request: %w", err)
	}
	client := p.Client
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("wallpaper: fetch: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: %s", ErrBadStatus, resp.Status)
	}
	img, _, err := image.Decode(io.LimitReader(resp.Body, maxBody))
	if err != nil {
		return nil, fmt.Errorf("wallpaper: decode: %w", err)
	}
	return img, nil
}
