package service

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"

	"github.com/h2non/filetype"
	"github.com/h2non/filetype/types"
	"github.com/postloom/postloom/internal/apperr"
	"github.com/postloom/postloom/internal/models"
	"github.com/postloom/postloom/internal/repository"
	gonanoid "github.com/matoous/go-nanoid/v2"
)

type MediaService interface {
	Upload(ctx context.Context, userID int64, files []*multipart.FileHeader) ([]*models.MediaAsset, error)
	List(ctx context.Context, userID int64) ([]*models.MediaAsset, error)
}

type mediaService struct {
	ma repository.MediaAssetRepository
	r2 R2Service
}

func NewMediaService(ma repository.MediaAssetRepository, r2 R2Service) MediaService {
	return &mediaService{ma: ma, r2: r2}
}

// Upload sniffs each file's real type, stores it, and records an asset row.
// The returned URLs are what clients put into a post's mediaUrls.
func (s *mediaService) Upload(ctx context.Context, userID int64, files []*multipart.FileHeader) ([]*models.MediaAsset, error) {
	if len(files) == 0 {
		return nil, apperr.Validation("no files provided")
	}

	allowedTypes := map[string]struct{}{
		"mp4": {}, "mov": {}, "jpeg": {}, "png": {}, "jpg": {},
	}

	var assets []*models.MediaAsset
	for _, file := range files {
		fileContent, err := file.Open()
		if err != nil {
			return nil, fmt.Errorf("error opening file: %w", err)
		}

		fileBytes, err := io.ReadAll(fileContent)
		fileContent.Close()
		if err != nil {
			return nil, fmt.Errorf("error reading file content: %w", err)
		}

		fileType, err := filetype.Match(fileBytes)
		if err != nil || fileType == types.Unknown {
			return nil, apperr.Validation("unsupported file type")
		}
		if _, ok := allowedTypes[fileType.Extension]; !ok {
			return nil, apperr.Validation("file type %s is not allowed", fileType.Extension)
		}

		key, err := gonanoid.New()
		if err != nil {
			slog.Info(err.Error())
			return nil, err
		}

		fileURL, err := s.r2.UploadToR2(ctx, key, fileBytes, fileType.MIME.Value)
		if err != nil {
			return nil, fmt.Errorf("error uploading file: %w", err)
		}

		asset := models.MediaAsset{
			UserID:   userID,
			FileName: key,
			FileType: fileType.MIME.Value,
			FileSize: int64(len(fileBytes)),
			FileURL:  fileURL,
		}
		assetID, err := s.ma.Create(ctx, nil, &asset)
		if err != nil {
			return nil, fmt.Errorf("error saving media asset: %w", err)
		}
		asset.ID = assetID
		assets = append(assets, &asset)
	}

	return assets, nil
}

func (s *mediaService) List(ctx context.Context, userID int64) ([]*models.MediaAsset, error) {
	assets, err := s.ma.ListByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("error getting media assets: %w", err)
	}
	return assets, nil
}
