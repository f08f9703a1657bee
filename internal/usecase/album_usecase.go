package usecase

import (
	"context"
	"time"

	"porosemi/internal/domain/entity"
	"porosemi/internal/domain/repository"
	"porosemi/internal/domain/service"
	"porosemi/pkg/logger"
	"porosemi/pkg/utils"
)

// AlbumUseCase manages gallery photos. Unlike pipeline media these are
// stored straight into the staging provider's permanent album folder
// and served from the provider's own CDN URL, so no blob ever lands in
// the blob store.
type AlbumUseCase struct {
	albumRepo repository.AlbumRepository
	staging   service.StagingStore
	folder    string
	maxBytes  int64
}

func NewAlbumUseCase(albumRepo repository.AlbumRepository, staging service.StagingStore, folder string, maxBytes int64) *AlbumUseCase {
	return &AlbumUseCase{
		albumRepo: albumRepo,
		staging:   staging,
		folder:    folder,
		maxBytes:  maxBytes,
	}
}

type AlbumInput struct {
	Title string `json:"title" validate:"required"`
}

func (uc *AlbumUseCase) Create(ctx context.Context, input AlbumInput, uploads []Upload) ([]*entity.Album, error) {
	albums := make([]*entity.Album, 0, len(uploads))

	for _, upload := range uploads {
		staged, err := uc.staging.Put(ctx, upload.Data, utils.StagingID("album"), uc.folder)
		if err != nil {
			return albums, err
		}

		album := &entity.Album{
			Title:     input.Title,
			URL:       staged.URL,
			PublicID:  staged.PublicID,
			Width:     staged.Width,
			Height:    staged.Height,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		}

		if err := uc.albumRepo.Create(ctx, album); err != nil {
			if delErr := uc.staging.Delete(ctx, staged.PublicID); delErr != nil {
				logger.Warn("Could not delete staged album photo %s: %v", staged.PublicID, delErr)
			}
			return albums, err
		}

		albums = append(albums, album)
	}

	return albums, nil
}

func (uc *AlbumUseCase) MaxUploadBytes() int64 {
	return uc.maxBytes
}

func (uc *AlbumUseCase) GetByID(ctx context.Context, id string) (*entity.Album, error) {
	return uc.albumRepo.GetByID(ctx, id)
}

func (uc *AlbumUseCase) List(ctx context.Context, limit, offset int) ([]*entity.Album, int64, error) {
	return uc.albumRepo.List(ctx, limit, offset)
}

func (uc *AlbumUseCase) Delete(ctx context.Context, id string) error {
	album, err := uc.albumRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := uc.albumRepo.Delete(ctx, id); err != nil {
		return err
	}

	if album.PublicID != "" {
		if err := uc.staging.Delete(ctx, album.PublicID); err != nil {
			logger.Warn("Could not delete album photo %s: %v", album.PublicID, err)
		}
	}

	return nil
}
