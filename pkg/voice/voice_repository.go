package voice

import (
	"context"
	"errors"

	"github.com/ppdew9811-hash/eduvoice/domain"
	"github.com/ppdew9811-hash/eduvoice/entities"
	"gorm.io/gorm"
)

type (
	VoiceRepository interface {
		CreateVoiceModel(ctx context.Context, model *entities.VoiceModel) error
		GetVoiceModelByID(ctx context.Context, id string) (*entities.VoiceModel, error)
		UpdateVoiceModel(ctx context.Context, model *entities.VoiceModel) error
		GetUserVoiceModels(ctx context.Context, userID string) ([]*entities.VoiceModel, error)

		CreateCelebrityVoice(ctx context.Context, voice *entities.CelebrityVoice) error
		GetCelebrityVoices(ctx context.Context) ([]*entities.CelebrityVoice, error)
	}

	voiceRepository struct {
		db *gorm.DB
	}
)

func NewVoiceRepository(db *gorm.DB) VoiceRepository {
	return &voiceRepository{
		db: db,
	}
}

func (r *voiceRepository) CreateVoiceModel(ctx context.Context, model *entities.VoiceModel) error {
	return r.db.WithContext(ctx).Create(model).Error
}

func (r *voiceRepository) GetVoiceModelByID(ctx context.Context, id string) (*entities.VoiceModel, error) {
	var model entities.VoiceModel
	if err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrVoiceModelNotFound
		}
		return nil, err
	}
	return &model, nil
}

func (r *voiceRepository) UpdateVoiceModel(ctx context.Context, model *entities.VoiceModel) error {
	return r.db.WithContext(ctx).Save(model).Error
}

func (r *voiceRepository) GetUserVoiceModels(ctx context.Context, userID string) ([]*entities.VoiceModel, error) {
	var models []*entities.VoiceModel
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&models).Error; err != nil {
		return nil, err
	}
	return models, nil
}

func (r *voiceRepository) CreateCelebrityVoice(ctx context.Context, voice *entities.CelebrityVoice) error {
	return r.db.WithContext(ctx).Create(voice).Error
}

func (r *voiceRepository) GetCelebrityVoices(ctx context.Context) ([]*entities.CelebrityVoice, error) {
	var voices []*entities.CelebrityVoice
	if err := r.db.WithContext(ctx).
		Order("name ASC").
		Find(&voices).Error; err != nil {
		return nil, err
	}
	return voices, nil
}
