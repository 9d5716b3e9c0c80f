package service

import (
	"context"
	"strings"

	"toolindex-backend/internal/domains/upload/model"
	"toolindex-backend/internal/infrastructure/storage"
	"toolindex-backend/internal/shared/utils"
	"toolindex-backend/pkg/logger"
)

type UploadService interface {
	// Upload validates the file against the kind's rules and stores
	// it under a fresh key
	Upload(ctx context.Context, kind model.Kind, filename, contentType string, data []byte) (*model.UploadResponse, error)
}

// ObjectStorage is the slice of the storage layer uploads need.
type ObjectStorage interface {
	Upload(ctx context.Context, key string, data []byte, contentType string) (string, error)
}

type uploadService struct {
	storage   ObjectStorage
	processor *storage.ImageProcessor
}

func NewUploadService(st ObjectStorage, processor *storage.ImageProcessor) UploadService {
	return &uploadService{
		storage:   st,
		processor: processor,
	}
}

func (s *uploadService) Upload(ctx context.Context, kind model.Kind, filename, contentType string, data []byte) (*model.UploadResponse, error) {
	if int64(len(data)) > kind.MaxSize {
		return nil, model.ErrTooLarge
	}
	if !kind.Accepts(contentType) {
		return nil, model.ErrInvalidType
	}

	// Formats the decoder understands must actually decode as what
	// they claim. SVG and webp pass on the declared type alone.
	format := strings.TrimPrefix(contentType, "image/")
	if format == "jpg" {
		format = "jpeg"
	}
	switch format {
	case "png", "jpeg", "gif":
		if err := s.processor.ValidateImage(data, format); err != nil {
			return nil, model.ErrInvalidType
		}
	}

	key := utils.GenerateObjectKey(kind.Prefix, filename)
	url, err := s.storage.Upload(ctx, key, data, contentType)
	if err != nil {
		return nil, err
	}

	logger.Info("file uploaded", map[string]interface{}{
		"path": key,
		"size": len(data),
	})

	return &model.UploadResponse{
		URL:  url,
		Path: key,
	}, nil
}
