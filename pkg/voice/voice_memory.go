package voice

import (
	"context"
	"sort"
	"sync"

	"github.com/ppdew9811-hash/eduvoice/domain"
	"github.com/ppdew9811-hash/eduvoice/entities"
)

// memoryVoiceRepository keeps voice models and the celebrity catalog in
// process-local maps. Used in demo mode (no database configured) and by
// tests.
type memoryVoiceRepository struct {
	mu          sync.RWMutex
	models      map[string]entities.VoiceModel
	celebrities map[string]entities.CelebrityVoice
}

func NewMemoryVoiceRepository() VoiceRepository {
	return &memoryVoiceRepository{
		models:      make(map[string]entities.VoiceModel),
		celebrities: make(map[string]entities.CelebrityVoice),
	}
}

func (r *memoryVoiceRepository) CreateVoiceModel(_ context.Context, model *entities.VoiceModel) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.models[model.ID.String()] = *model
	return nil
}

func (r *memoryVoiceRepository) GetVoiceModelByID(_ context.Context, id string) (*entities.VoiceModel, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	model, ok := r.models[id]
	if !ok {
		return nil, domain.ErrVoiceModelNotFound
	}
	return &model, nil
}

func (r *memoryVoiceRepository) UpdateVoiceModel(_ context.Context, model *entities.VoiceModel) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.models[model.ID.String()]; !ok {
		return domain.ErrVoiceModelNotFound
	}
	r.models[model.ID.String()] = *model
	return nil
}

func (r *memoryVoiceRepository) GetUserVoiceModels(_ context.Context, userID string) ([]*entities.VoiceModel, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	models := make([]*entities.VoiceModel, 0)
	for _, model := range r.models {
		if model.UserID.String() == userID {
			m := model
			models = append(models, &m)
		}
	}
	sort.Slice(models, func(i, j int) bool {
		return models[i].CreatedAt.After(models[j].CreatedAt)
	})
	return models, nil
}

func (r *memoryVoiceRepository) CreateCelebrityVoice(_ context.Context, voice *entities.CelebrityVoice) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.celebrities[voice.ID.String()] = *voice
	return nil
}

func (r *memoryVoiceRepository) GetCelebrityVoices(_ context.Context) ([]*entities.CelebrityVoice, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	voices := make([]*entities.CelebrityVoice, 0, len(r.celebrities))
	for _, voice := range r.celebrities {
		v := voice
		voices = append(voices, &v)
	}
	sort.Slice(voices, func(i, j int) bool {
		return voices[i].Name < voices[j].Name
	})
	return voices, nil
}
