package video

import (
	"context"
	"sort"
	"sync"

	"github.com/ppdew9811-hash/eduvoice/domain"
	"github.com/ppdew9811-hash/eduvoice/entities"
)

// memoryVideoRepository keeps videos in a process-local map. Used in demo
// mode (no database configured) and by tests.
type memoryVideoRepository struct {
	mu     sync.RWMutex
	videos map[string]entities.Video
}

func NewMemoryVideoRepository() VideoRepository {
	return &memoryVideoRepository{
		videos: make(map[string]entities.Video),
	}
}

func (r *memoryVideoRepository) CreateVideo(_ context.Context, video *entities.Video) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.videos[video.ID.String()] = *video
	return nil
}

func (r *memoryVideoRepository) GetVideoByID(_ context.Context, id string) (*entities.Video, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	video, ok := r.videos[id]
	if !ok {
		return nil, domain.ErrVideoNotFound
	}
	return &video, nil
}

func (r *memoryVideoRepository) UpdateVideo(_ context.Context, video *entities.Video) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.videos[video.ID.String()]; !ok {
		return domain.ErrVideoNotFound
	}
	r.videos[video.ID.String()] = *video
	return nil
}

func (r *memoryVideoRepository) GetUserVideos(_ context.Context, userID string) ([]*entities.Video, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	videos := make([]*entities.Video, 0)
	for _, video := range r.videos {
		if video.UserID.String() == userID {
			v := video
			videos = append(videos, &v)
		}
	}
	sort.Slice(videos, func(i, j int) bool {
		return videos[i].CreatedAt.After(videos[j].CreatedAt)
	})
	return videos, nil
}
