package video

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/ppdew9811-hash/eduvoice/domain"
	"github.com/ppdew9811-hash/eduvoice/entities"
	"github.com/ppdew9811-hash/eduvoice/pkg/credit"
	"github.com/ppdew9811-hash/eduvoice/pkg/jobs"
	"github.com/ppdew9811-hash/eduvoice/pkg/user"
)

const (
	// Simulated processing time of the video rendering backend.
	renderDelay = 5 * time.Second

	// Placeholder result attached to finished demo renders.
	demoVideoURL      = "https://commondatastorage.googleapis.com/gtv-videos-bucket/sample/BigBuckBunny.mp4"
	demoVideoDuration = 120
)

type (
	VideoService interface {
		Generate(ctx context.Context, req domain.GenerateVideoRequest, userID string) (*domain.GenerateVideoResponse, error)
		GetVideoByID(ctx context.Context, id, userID string) (*domain.VideoResponse, error)
		ListVideos(ctx context.Context, userID string) ([]*domain.VideoResponse, error)
		// CompleteRendering finalizes a generation job. It is idempotent: a
		// video that already reached ready or failed is left untouched and
		// ErrVideoAlreadyFinal is returned. The demo timer and the render
		// webhook both land here.
		CompleteRendering(ctx context.Context, videoID string, status string) error
	}

	videoService struct {
		videoRepository VideoRepository
		userRepository  user.UserRepository
		creditService   credit.CreditService
		scheduler       jobs.Scheduler
		completeMu      sync.Mutex
	}
)

func NewVideoService(
	videoRepository VideoRepository,
	userRepository user.UserRepository,
	creditService credit.CreditService,
	scheduler jobs.Scheduler,
) VideoService {
	return &videoService{
		videoRepository: videoRepository,
		userRepository:  userRepository,
		creditService:   creditService,
		scheduler:       scheduler,
	}
}

func (s *videoService) Generate(ctx context.Context, req domain.GenerateVideoRequest, userID string) (*domain.GenerateVideoResponse, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return nil, domain.ErrParseUUID
	}

	topic := req.Topic
	if len(topic) > 50 {
		topic = topic[:50] + "..."
	}
	description := fmt.Sprintf("Generate video: %s", topic)

	if _, err := s.creditService.Debit(ctx, userID, domain.COST_VIDEO_GENERATION, domain.TransactionTypeVideoGeneration, description); err != nil {
		return nil, err
	}

	videoID := uuid.New()
	video := &entities.Video{
		ID:             videoID,
		UserID:         userUUID,
		Topic:          req.Topic,
		VoiceModelID:   req.VoiceModelID,
		VoiceModelType: req.VoiceModelType,
		Status:         domain.VideoStatusGenerating,
		CreditsUsed:    domain.COST_VIDEO_GENERATION,
		Timestamp: entities.Timestamp{
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
	}

	if err := s.videoRepository.CreateVideo(ctx, video); err != nil {
		// The debit and the job record go together, give the credits back.
		if refundErr := s.creditService.Refund(ctx, userID, domain.COST_VIDEO_GENERATION, domain.TransactionTypeVideoGeneration, description); refundErr != nil {
			log.Printf("failed to refund video generation for user %s: %v", userID, refundErr)
		}
		return nil, err
	}

	s.scheduler.Schedule(renderDelay, func() {
		if err := s.CompleteRendering(context.Background(), videoID.String(), domain.VideoStatusReady); err != nil &&
			!errors.Is(err, domain.ErrVideoAlreadyFinal) {
			log.Printf("failed to complete video generation %s: %v", videoID.String(), err)
		}
	})

	userData, err := s.userRepository.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &domain.GenerateVideoResponse{
		Video:            toVideoResponse(video),
		CreditsRemaining: userData.Credits,
	}, nil
}

func (s *videoService) GetVideoByID(ctx context.Context, id, userID string) (*domain.VideoResponse, error) {
	video, err := s.videoRepository.GetVideoByID(ctx, id)
	if err != nil {
		return nil, err
	}

	// A foreign owner learns nothing, not even that the video exists.
	if video.UserID.String() != userID {
		return nil, domain.ErrVideoNotFound
	}

	resp := toVideoResponse(video)
	return &resp, nil
}

func (s *videoService) ListVideos(ctx context.Context, userID string) ([]*domain.VideoResponse, error) {
	videos, err := s.videoRepository.GetUserVideos(ctx, userID)
	if err != nil {
		return nil, err
	}

	result := make([]*domain.VideoResponse, 0, len(videos))
	for _, video := range videos {
		resp := toVideoResponse(video)
		result = append(result, &resp)
	}
	return result, nil
}

func (s *videoService) CompleteRendering(ctx context.Context, videoID string, status string) error {
	s.completeMu.Lock()
	defer s.completeMu.Unlock()

	video, err := s.videoRepository.GetVideoByID(ctx, videoID)
	if err != nil {
		return err
	}

	if video.Status != domain.VideoStatusGenerating {
		return domain.ErrVideoAlreadyFinal
	}

	video.Status = status
	if status == domain.VideoStatusReady {
		video.VideoURL = demoVideoURL
		video.Duration = demoVideoDuration
	}
	video.UpdatedAt = time.Now()
	return s.videoRepository.UpdateVideo(ctx, video)
}

func toVideoResponse(video *entities.Video) domain.VideoResponse {
	return domain.VideoResponse{
		ID:             video.ID.String(),
		UserID:         video.UserID.String(),
		Topic:          video.Topic,
		VoiceModelID:   video.VoiceModelID,
		VoiceModelType: video.VoiceModelType,
		VideoURL:       video.VideoURL,
		Duration:       video.Duration,
		Status:         video.Status,
		CreditsUsed:    video.CreditsUsed,
		CreatedAt:      video.CreatedAt,
	}
}
