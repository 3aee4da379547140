// services/media.go
package services

import (
	"fmt"
	"mime/multipart"
	"path/filepath"
	"strings"

	"github.com/alphabatem/common/context"
	"github.com/google/uuid"

	"github.com/qazkids/qazkids_api/dto"
	"github.com/qazkids/qazkids_api/shared"
)

// MediaService handles admin uploads of catalog images (game cards, film
// thumbnails) into object storage and hands back the public URL to store
// on the catalog row.
type MediaService struct {
	context.DefaultService

	minioSvc *MinIOService
}

const MEDIA_SVC = "media_svc"

const maxImageSize = 5 << 20 // 5 MiB

var allowedImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/webp": true,
}

func (svc MediaService) Id() string {
	return MEDIA_SVC
}

func (svc *MediaService) Configure(ctx *context.Context) error {
	return svc.DefaultService.Configure(ctx)
}

func (svc *MediaService) Start() error {
	svc.minioSvc = svc.Service(MINIO_SVC).(*MinIOService)
	return nil
}

// UploadCatalogImage stores one image under the given prefix (games or
// films) and returns its object key and public URL.
func (svc *MediaService) UploadCatalogImage(prefix string, file *multipart.FileHeader) (*dto.MediaUploadResponse, error) {
	if file.Size > maxImageSize {
		return nil, shared.NewBadRequestError(fmt.Errorf("file size %d", file.Size), "Image exceeds the 5MB limit")
	}

	contentType := file.Header.Get("Content-Type")
	if !allowedImageTypes[contentType] {
		return nil, shared.NewBadRequestError(fmt.Errorf("content type %q", contentType), "Only JPEG, PNG and WebP images are accepted")
	}

	src, err := file.Open()
	if err != nil {
		return nil, err
	}
	defer src.Close()

	id, _ := uuid.NewV7()
	ext := strings.ToLower(filepath.Ext(file.Filename))
	objectKey := fmt.Sprintf("%s/%s%s", prefix, id.String(), ext)

	info, err := svc.minioSvc.UploadFile(objectKey, src, file.Size, contentType)
	if err != nil {
		return nil, err
	}

	return &dto.MediaUploadResponse{
		ObjectKey: objectKey,
		URL:       svc.minioSvc.PublicURL(objectKey),
		Size:      info.Size,
		MimeType:  contentType,
	}, nil
}

// DeleteCatalogImage removes a previously uploaded image. Only keys under the
// catalog prefixes are deletable; anything else in the bucket is off limits.
func (svc *MediaService) DeleteCatalogImage(objectKey string) error {
	if !strings.HasPrefix(objectKey, "games/") && !strings.HasPrefix(objectKey, "films/") {
		return shared.NewBadRequestError(fmt.Errorf("object key %q", objectKey), "Unknown media path")
	}

	return svc.minioSvc.DeleteFile(objectKey)
}
