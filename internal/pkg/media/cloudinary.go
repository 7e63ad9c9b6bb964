package media

import (
	"context"
	"fmt"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"go.uber.org/zap"
)

// Cloudinary stores images as WebP under the preset folder.
type Cloudinary struct {
	cld    *cloudinary.Cloudinary
	logger *zap.Logger
}

func NewCloudinary(cloudName, apiKey, apiSecret string, logger *zap.Logger) (*Cloudinary, error) {
	cld, err := cloudinary.NewFromParams(cloudName, apiKey, apiSecret)
	if err != nil {
		return nil, fmt.Errorf("failed to configure cloudinary: %w", err)
	}
	cld.Config.URL.Secure = true
	return &Cloudinary{cld: cld, logger: logger}, nil
}

func (c *Cloudinary) Upload(ctx context.Context, data []byte, preset Preset) (*Asset, error) {
	resp, err := c.cld.Upload.Upload(ctx, reader(data), uploader.UploadParams{
		Folder:         preset.Folder,
		ResourceType:   "image",
		Transformation: preset.Transformation(),
		Format:         "webp",
	})
	if err != nil {
		return nil, fmt.Errorf("cloudinary upload: %w", err)
	}
	if resp.Error.Message != "" {
		return nil, fmt.Errorf("cloudinary upload: %s", resp.Error.Message)
	}

	c.logger.Info("image uploaded",
		zap.String("folder", preset.Folder),
		zap.String("public_id", resp.PublicID),
	)
	return &Asset{URL: resp.SecureURL, PublicID: resp.PublicID}, nil
}

func (c *Cloudinary) Destroy(ctx context.Context, publicID string) error {
	if publicID == "" {
		return nil
	}
	resp, err := c.cld.Upload.Destroy(ctx, uploader.DestroyParams{
		PublicID:     publicID,
		ResourceType: "image",
		Invalidate:   api.Bool(true),
	})
	if err != nil {
		return fmt.Errorf("cloudinary destroy: %w", err)
	}
	if resp.Error.Message != "" {
		return fmt.Errorf("cloudinary destroy: %s", resp.Error.Message)
	}
	return nil
}
