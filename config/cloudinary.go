package config

import (
	"fmt"

	"github.com/cloudinary/cloudinary-go/v2"
	"go.uber.org/zap"
)

// ConnectCloudinary returns nil when CLOUDINARY_URL is unset.
func ConnectCloudinary(cfg *Config, z *zap.Logger) (*cloudinary.Cloudinary, error) {
	if cfg.CloudinaryURL == "" {
		z.Info("cloudinary disabled, imports are not archived")
		return nil, nil
	}
	cld, err := cloudinary.NewFromURL(cfg.CloudinaryURL)
	if err != nil {
		return nil, fmt.Errorf("cloudinary: %w", err)
	}
	return cld, nil
}
