package services

import (
	"bytes"
	"context"
	"fmt"
	"path"
	"strings"
	"time"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

// Archiver stores a copy of an uploaded file and returns where it lives.
type Archiver interface {
	Archive(ctx context.Context, fileName string, data []byte) (string, error)
}

type CloudinaryArchiver struct {
	cld    *cloudinary.Cloudinary
	folder string
}

func NewCloudinaryArchiver(cld *cloudinary.Cloudinary) *CloudinaryArchiver {
	return &CloudinaryArchiver{cld: cld, folder: "imports"}
}

func (a *CloudinaryArchiver) Archive(ctx context.Context, fileName string, data []byte) (string, error) {
	base := strings.TrimSuffix(path.Base(fileName), path.Ext(fileName))
	publicID := fmt.Sprintf("%s-%d", base, time.Now().UTC().Unix())

	res, err := a.cld.Upload.Upload(ctx, bytes.NewReader(data), uploader.UploadParams{
		PublicID:     publicID,
		Folder:       a.folder,
		ResourceType: "raw",
	})
	if err != nil {
		return "", err
	}
	if res.Error.Message != "" {
		return "", fmt.Errorf("cloudinary: %s", res.Error.Message)
	}
	return res.SecureURL, nil
}

// NopArchiver archives nothing.
type NopArchiver struct{}

func (NopArchiver) Archive(context.Context, string, []byte) (string, error) { return "", nil }
