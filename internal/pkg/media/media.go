// Package media uploads validated images to the CDN.
package media

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/gabriel-vasile/mimetype"
)

// MaxImageSize is the largest accepted upload.
const MaxImageSize = 5 << 20

var (
	ErrTooLarge      = errors.New("image exceeds maximum size")
	ErrUnsupported   = errors.New("unsupported image type")
	ErrEmpty         = errors.New("empty image")
	ErrNotConfigured = errors.New("image cdn is not configured")
)

var allowedTypes = []string{"image/jpeg", "image/png", "image/gif", "image/webp"}

// Preset describes where an upload lands and the bounding box the CDN
// scales it into.
type Preset struct {
	Folder    string
	MaxWidth  int
	MaxHeight int
}

var (
	ProductImage  = Preset{Folder: "interplast/products", MaxWidth: 1000, MaxHeight: 1000}
	CategoryImage = Preset{Folder: "interplast/categories", MaxWidth: 500, MaxHeight: 500}
)

// Transformation renders the preset as a CDN transformation string.
func (p Preset) Transformation() string {
	return fmt.Sprintf("c_limit,w_%d,h_%d,q_auto:good", p.MaxWidth, p.MaxHeight)
}

// Asset is a stored image.
type Asset struct {
	URL      string
	PublicID string
}

// Uploader stores and removes images on the CDN.
type Uploader interface {
	Upload(ctx context.Context, data []byte, preset Preset) (*Asset, error)
	Destroy(ctx context.Context, publicID string) error
}

// Image is an upload that passed Read.
type Image struct {
	Data     []byte
	MIMEType string
}

// Read consumes at most MaxImageSize bytes from r and checks the content is
// one of the accepted image formats. The declared content type is ignored.
func Read(r io.Reader) (*Image, error) {
	data, err := io.ReadAll(io.LimitReader(r, MaxImageSize+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read image: %w", err)
	}
	return Inspect(data)
}

// Inspect validates an in-memory upload.
func Inspect(data []byte) (*Image, error) {
	if len(data) == 0 {
		return nil, ErrEmpty
	}
	if len(data) > MaxImageSize {
		return nil, ErrTooLarge
	}

	mtype := mimetype.Detect(data)
	for _, allowed := range allowedTypes {
		if mtype.Is(allowed) {
			return &Image{Data: data, MIMEType: allowed}, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrUnsupported, mtype.String())
}

// Disabled is used when no CDN credentials are configured. Every upload
// fails with ErrNotConfigured.
type Disabled struct{}

func (Disabled) Upload(context.Context, []byte, Preset) (*Asset, error) {
	return nil, ErrNotConfigured
}

func (Disabled) Destroy(context.Context, string) error {
	return ErrNotConfigured
}

func reader(data []byte) io.Reader {
	return bytes.NewReader(data)
}
