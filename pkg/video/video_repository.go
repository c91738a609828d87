package video

import (
	"context"
	"errors"

	"github.com/ppdew9811-hash/eduvoice/domain"
	"github.com/ppdew9811-hash/eduvoice/entities"
	"gorm.io/gorm"
)

type (
	VideoRepository interface {
		CreateVideo(ctx context.Context, video *entities.Video) error
		GetVideoByID(ctx context.Context, id string) (*entities.Video, error)
		UpdateVideo(ctx context.Context, video *entities.Video) error
		GetUserVideos(ctx context.Context, userID string) ([]*entities.Video, error)
	}

	videoRepository struct {
		db *gorm.DB
	}
)

func NewVideoRepository(db *gorm.DB) VideoRepository {
	return &videoRepository{
		db: db,
	}
}

func (r *videoRepository) CreateVideo(ctx context.Context, video *entities.Video) error {
	return r.db.WithContext(ctx).Create(video).Error
}

func (r *videoRepository) GetVideoByID(ctx context.Context, id string) (*entities.Video, error) {
	var video entities.Video
	if err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&video).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrVideoNotFound
		}
		return nil, err
	}
	return &video, nil
}

func (r *videoRepository) UpdateVideo(ctx context.Context, video *entities.Video) error {
	return r.db.WithContext(ctx).Save(video).Error
}

func (r *videoRepository) GetUserVideos(ctx context.Context, userID string) ([]*entities.Video, error) {
	var videos []*entities.Video
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&videos).Error; err != nil {
		return nil, err
	}
	return videos, nil
}
