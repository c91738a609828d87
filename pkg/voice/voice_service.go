package voice

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
	"github.com/ppdew9811-hash/eduvoice/internal/utils/storage"
	"github.com/ppdew9811-hash/eduvoice/pkg/credit"
	"github.com/ppdew9811-hash/eduvoice/pkg/jobs"
	"github.com/ppdew9811-hash/eduvoice/pkg/user"
)

const (
	// Simulated processing time of the voice synthesis backend.
	trainingDelay = 3 * time.Second

	defaultSimilarityScore = 0.90
)

type (
	VoiceService interface {
		GetCelebrityVoices(ctx context.Context) ([]*domain.CelebrityVoiceResponse, error)
		Train(ctx context.Context, req domain.TrainVoiceRequest, userID string) (*domain.TrainVoiceResponse, error)
		ListVoiceModels(ctx context.Context, userID string) ([]*domain.VoiceModelResponse, error)
		// CompleteTraining finalizes a training job. It is idempotent: a
		// model that already reached ready or failed is left untouched and
		// ErrVoiceModelAlreadyFinal is returned. The demo timer and the
		// training webhook both land here.
		CompleteTraining(ctx context.Context, modelID string, status string) error
	}

	voiceService struct {
		voiceRepository VoiceRepository
		userRepository  user.UserRepository
		creditService   credit.CreditService
		scheduler       jobs.Scheduler
		s3              storage.AwsS3
		completeMu      sync.Mutex
	}
)

func NewVoiceService(
	voiceRepository VoiceRepository,
	userRepository user.UserRepository,
	creditService credit.CreditService,
	scheduler jobs.Scheduler,
	s3 storage.AwsS3,
) VoiceService {
	return &voiceService{
		voiceRepository: voiceRepository,
		userRepository:  userRepository,
		creditService:   creditService,
		scheduler:       scheduler,
		s3:              s3,
	}
}

func (s *voiceService) GetCelebrityVoices(ctx context.Context) ([]*domain.CelebrityVoiceResponse, error) {
	voices, err := s.voiceRepository.GetCelebrityVoices(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]*domain.CelebrityVoiceResponse, 0, len(voices))
	for _, voice := range voices {
		result = append(result, &domain.CelebrityVoiceResponse{
			ID:              voice.ID.String(),
			Name:            voice.Name,
			Description:     voice.Description,
			Category:        voice.Category,
			ImageURL:        voice.ImageURL,
			SimilarityScore: voice.SimilarityScore,
		})
	}
	return result, nil
}

func (s *voiceService) Train(ctx context.Context, req domain.TrainVoiceRequest, userID string) (*domain.TrainVoiceResponse, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return nil, domain.ErrParseUUID
	}

	modelID := uuid.New()

	// Upload the sample before touching the balance so a rejected file
	// costs nothing.
	audioURL := req.AudioURL
	if req.Audio != nil && s.s3 != nil {
		objectKey, err := s.s3.UploadFile(
			fmt.Sprintf("voice-sample-%s", modelID.String()),
			req.Audio,
			"voice-samples",
			storage.AllowAudio...,
		)
		if err != nil {
			return nil, err
		}
		audioURL = s.s3.GetPublicLinkKey(objectKey)
	}

	description := fmt.Sprintf("Train voice model: %s", req.Name)
	if _, err := s.creditService.Debit(ctx, userID, domain.COST_VOICE_TRAINING, domain.TransactionTypeVoiceTraining, description); err != nil {
		return nil, err
	}

	model := &entities.VoiceModel{
		ID:              modelID,
		UserID:          userUUID,
		Name:            req.Name,
		AudioURL:        audioURL,
		Status:          domain.VoiceStatusTraining,
		SimilarityScore: defaultSimilarityScore,
		Timestamp: entities.Timestamp{
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
	}

	if err := s.voiceRepository.CreateVoiceModel(ctx, model); err != nil {
		// The debit and the job record go together, give the credits back.
		if refundErr := s.creditService.Refund(ctx, userID, domain.COST_VOICE_TRAINING, domain.TransactionTypeVoiceTraining, description); refundErr != nil {
			log.Printf("failed to refund voice training for user %s: %v", userID, refundErr)
		}
		return nil, err
	}

	s.scheduler.Schedule(trainingDelay, func() {
		if err := s.CompleteTraining(context.Background(), modelID.String(), domain.VoiceStatusReady); err != nil &&
			!errors.Is(err, domain.ErrVoiceModelAlreadyFinal) {
			log.Printf("failed to complete voice training %s: %v", modelID.String(), err)
		}
	})

	userData, err := s.userRepository.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &domain.TrainVoiceResponse{
		Model:            toVoiceModelResponse(model),
		CreditsRemaining: userData.Credits,
	}, nil
}

func (s *voiceService) ListVoiceModels(ctx context.Context, userID string) ([]*domain.VoiceModelResponse, error) {
	models, err := s.voiceRepository.GetUserVoiceModels(ctx, userID)
	if err != nil {
		return nil, err
	}

	result := make([]*domain.VoiceModelResponse, 0, len(models))
	for _, model := range models {
		resp := toVoiceModelResponse(model)
		result = append(result, &resp)
	}
	return result, nil
}

func (s *voiceService) CompleteTraining(ctx context.Context, modelID string, status string) error {
	s.completeMu.Lock()
	defer s.completeMu.Unlock()

	model, err := s.voiceRepository.GetVoiceModelByID(ctx, modelID)
	if err != nil {
		return err
	}

	if model.Status != domain.VoiceStatusTraining {
		return domain.ErrVoiceModelAlreadyFinal
	}

	model.Status = status
	model.UpdatedAt = time.Now()
	return s.voiceRepository.UpdateVoiceModel(ctx, model)
}

func toVoiceModelResponse(model *entities.VoiceModel) domain.VoiceModelResponse {
	return domain.VoiceModelResponse{
		ID:              model.ID.String(),
		UserID:          model.UserID.String(),
		Name:            model.Name,
		AudioURL:        model.AudioURL,
		Status:          model.Status,
		SimilarityScore: model.SimilarityScore,
		CreatedAt:       model.CreatedAt,
	}
}
