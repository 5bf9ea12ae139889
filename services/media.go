package services

import (
	"fmt"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/alphabatem/common/context"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"github.com/retroden/arcade_api/shared"
)

// MediaService stores user avatars and game artwork in object storage and
// hands back publicly servable URLs.
type MediaService struct {
	context.DefaultService
	minioSvc  *MinIOService
	publicURL string
}

const MEDIA_SVC = "media_svc"

const maxImageSize = 5 * 1024 * 1024

func (svc MediaService) Id() string {
	return MEDIA_SVC
}

func (svc *MediaService) Configure(ctx *context.Context) error {
	svc.publicURL = os.Getenv("MINIO_PUBLIC_URL")
	if svc.publicURL == "" {
		svc.publicURL = "http://localhost:9000"
	}

	return svc.DefaultService.Configure(ctx)
}

func (svc *MediaService) Start() error {
	svc.minioSvc = svc.Service(MINIO_SVC).(*MinIOService)
	return nil
}

// UploadAvatar stores a profile picture and returns its public URL.
func (svc *MediaService) UploadAvatar(file *multipart.FileHeader) (string, error) {
	return svc.uploadImage(file, "avatars")
}

// UploadGameArt stores catalog artwork (static image or animation).
func (svc *MediaService) UploadGameArt(file *multipart.FileHeader) (string, error) {
	return svc.uploadImage(file, "games")
}

func (svc *MediaService) uploadImage(file *multipart.FileHeader, prefix string) (string, error) {
	if !svc.isValidImageFile(file.Filename) {
		return "", shared.NewBadRequestError(nil, "Invalid image format. Supported: JPG, PNG, GIF, WEBP")
	}

	if file.Size > maxImageSize {
		return "", shared.NewBadRequestError(nil, "Image too large. Maximum size: 5MB")
	}

	src, err := file.Open()
	if err != nil {
		return "", shared.NewInternalError(err, "Failed to read uploaded file")
	}
	defer src.Close()

	id, _ := uuid.NewV7()
	objectName := fmt.Sprintf("%s/%s%s", prefix, id.String(), strings.ToLower(filepath.Ext(file.Filename)))

	contentType := file.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	if _, err := svc.minioSvc.UploadFile(objectName, src, file.Size, contentType); err != nil {
		return "", shared.NewInternalError(err, "Failed to store file")
	}

	url := fmt.Sprintf("%s/%s/%s", svc.publicURL, svc.minioSvc.GetBucketName(), objectName)

	log.WithFields(log.Fields{
		"object": objectName,
		"size":   file.Size,
	}).Info("Uploaded media file")

	return url, nil
}

// DeleteByURL removes a previously uploaded object given its public URL.
// URLs not served from our bucket are ignored.
func (svc *MediaService) DeleteByURL(url string) error {
	prefix := fmt.Sprintf("%s/%s/", svc.publicURL, svc.minioSvc.GetBucketName())
	if !strings.HasPrefix(url, prefix) {
		return nil
	}

	objectName := strings.TrimPrefix(url, prefix)
	if err := svc.minioSvc.DeleteFile(objectName); err != nil {
		return err
	}

	log.WithField("object", objectName).Info("Deleted media file")
	return nil
}

func (svc *MediaService) isValidImageFile(filename string) bool {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".jpg", ".jpeg", ".png", ".gif", ".webp":
		return true
	}
	return false
}
