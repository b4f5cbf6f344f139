package upload

import (
	"context"
	"fmt"
	"mime/multipart"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/veeda241/DAC-website/internal/modules/upload/dto"
	"github.com/veeda241/DAC-website/pkg/apperror"
	"github.com/veeda241/DAC-website/pkg/storage"
)

var allowedFolders = map[string]bool{
	"events":  true,
	"reports": true,
	"gallery": true,
	"avatars": true,
}

type UploadService interface {
	Upload(ctx context.Context, folder string, file *multipart.FileHeader) (*dto.UploadResponse, error)
}

type uploadService struct {
	storage storage.FileStorage
}

func NewUploadService(fileStorage storage.FileStorage) UploadService {
	return &uploadService{storage: fileStorage}
}

func (s *uploadService) Upload(ctx context.Context, folder string, file *multipart.FileHeader) (*dto.UploadResponse, error) {
	if s.storage == nil {
		return nil, apperror.New(503, "file storage is not configured", nil)
	}
	if !allowedFolders[folder] {
		return nil, apperror.New(400, fmt.Sprintf("unknown upload folder %q", folder), nil)
	}

	src, err := file.Open()
	if err != nil {
		return nil, apperror.New(400, "cannot read uploaded file", err)
	}
	defer src.Close()

	ext := strings.ToLower(filepath.Ext(file.Filename))
	fileName := uuid.NewString() + ext

	url, err := s.storage.Upload(ctx, src, folder, fileName)
	if err != nil {
		return nil, apperror.New(502, "upload to storage failed", err)
	}

	return &dto.UploadResponse{FileURL: url}, nil
}
