package voice

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/ppdew9811-hash/eduvoice/domain"
	"github.com/ppdew9811-hash/eduvoice/entities"
	"github.com/ppdew9811-hash/eduvoice/pkg/credit"
	"github.com/ppdew9811-hash/eduvoice/pkg/user"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// manualScheduler collects completion callbacks so tests decide when the
// simulated backend finishes.
type manualScheduler struct {
	callbacks []func()
}

func (s *manualScheduler) Schedule(_ time.Duration, complete func()) {
	s.callbacks = append(s.callbacks, complete)
}

func (s *manualScheduler) Fire() {
	for _, cb := range s.callbacks {
		cb()
	}
	s.callbacks = nil
}

func newTestVoiceService(t *testing.T) (VoiceService, VoiceRepository, user.UserRepository, *manualScheduler) {
	t.Helper()
	voiceRepo := NewMemoryVoiceRepository()
	userRepo := user.NewMemoryUserRepository()
	creditService := credit.NewCreditService(credit.NewMemoryCreditRepository(), userRepo)
	scheduler := &manualScheduler{}
	svc := NewVoiceService(voiceRepo, userRepo, creditService, scheduler, nil)
	return svc, voiceRepo, userRepo, scheduler
}

func createTestUser(t *testing.T, repo user.UserRepository, credits int) *entities.User {
	t.Helper()
	u := &entities.User{
		ID:      uuid.New(),
		Email:   uuid.New().String() + "@example.com",
		Name:    "Test User",
		Credits: credits,
		Role:    domain.RoleUser,
		Timestamp: entities.Timestamp{
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
	}
	require.NoError(t, repo.CreateUser(context.Background(), u))
	return u
}

func TestTrainDebitsCreditsAndStartsJob(t *testing.T) {
	svc, _, userRepo, _ := newTestVoiceService(t)
	ctx := context.Background()
	u := createTestUser(t, userRepo, 50)

	res, err := svc.Train(ctx, domain.TrainVoiceRequest{
		Name:     "Suara Ayah",
		AudioURL: "https://example.com/sample.mp3",
	}, u.ID.String())
	require.NoError(t, err)

	assert.Equal(t, domain.VoiceStatusTraining, res.Model.Status)
	assert.Equal(t, 0.90, res.Model.SimilarityScore)
	assert.Equal(t, 25, res.CreditsRemaining)

	updated, err := userRepo.GetUserByID(ctx, u.ID.String())
	require.NoError(t, err)
	assert.Equal(t, 25, updated.Credits)
}

func TestTrainInsufficientCredits(t *testing.T) {
	svc, _, userRepo, _ := newTestVoiceService(t)
	ctx := context.Background()
	u := createTestUser(t, userRepo, 10)

	_, err := svc.Train(ctx, domain.TrainVoiceRequest{Name: "Suara Ayah"}, u.ID.String())
	assert.ErrorIs(t, err, domain.ErrInsufficientCredits)

	models, err := svc.ListVoiceModels(ctx, u.ID.String())
	require.NoError(t, err)
	assert.Empty(t, models)
}

func TestTrainingCompletesToReady(t *testing.T) {
	svc, _, userRepo, scheduler := newTestVoiceService(t)
	ctx := context.Background()
	u := createTestUser(t, userRepo, 50)

	res, err := svc.Train(ctx, domain.TrainVoiceRequest{Name: "Suara Ayah"}, u.ID.String())
	require.NoError(t, err)

	scheduler.Fire()

	models, err := svc.ListVoiceModels(ctx, u.ID.String())
	require.NoError(t, err)
	require.Len(t, models, 1)
	assert.Equal(t, res.Model.ID, models[0].ID)
	assert.Equal(t, domain.VoiceStatusReady, models[0].Status)
}

func TestCompleteTrainingIdempotent(t *testing.T) {
	svc, _, userRepo, scheduler := newTestVoiceService(t)
	ctx := context.Background()
	u := createTestUser(t, userRepo, 50)

	res, err := svc.Train(ctx, domain.TrainVoiceRequest{Name: "Suara Ayah"}, u.ID.String())
	require.NoError(t, err)

	// Webhook reports failure before the demo timer fires.
	require.NoError(t, svc.CompleteTraining(ctx, res.Model.ID, domain.VoiceStatusFailed))

	// The late timer must not flip the final status back.
	scheduler.Fire()

	models, err := svc.ListVoiceModels(ctx, u.ID.String())
	require.NoError(t, err)
	require.Len(t, models, 1)
	assert.Equal(t, domain.VoiceStatusFailed, models[0].Status)

	err = svc.CompleteTraining(ctx, res.Model.ID, domain.VoiceStatusReady)
	assert.ErrorIs(t, err, domain.ErrVoiceModelAlreadyFinal)
}

func TestCompleteTrainingUnknownModel(t *testing.T) {
	svc, _, _, _ := newTestVoiceService(t)
	err := svc.CompleteTraining(context.Background(), uuid.New().String(), domain.VoiceStatusReady)
	assert.ErrorIs(t, err, domain.ErrVoiceModelNotFound)
}

func TestListVoiceModelsOnlyOwn(t *testing.T) {
	svc, _, userRepo, _ := newTestVoiceService(t)
	ctx := context.Background()
	alice := createTestUser(t, userRepo, 50)
	bob := createTestUser(t, userRepo, 50)

	_, err := svc.Train(ctx, domain.TrainVoiceRequest{Name: "Suara Alice"}, alice.ID.String())
	require.NoError(t, err)

	models, err := svc.ListVoiceModels(ctx, bob.ID.String())
	require.NoError(t, err)
	assert.Empty(t, models)
}

func TestGetCelebrityVoicesSorted(t *testing.T) {
	svc, voiceRepo, _, _ := newTestVoiceService(t)
	ctx := context.Background()

	for _, name := range []string{"Raditya Dika", "Deddy Corbuzier", "Najwa Shihab"} {
		require.NoError(t, voiceRepo.CreateCelebrityVoice(ctx, &entities.CelebrityVoice{
			ID:              uuid.New(),
			Name:            name,
			SimilarityScore: 0.90,
		}))
	}

	voices, err := svc.GetCelebrityVoices(ctx)
	require.NoError(t, err)
	require.Len(t, voices, 3)
	assert.Equal(t, "Deddy Corbuzier", voices[0].Name)
	assert.Equal(t, "Najwa Shihab", voices[1].Name)
	assert.Equal(t, "Raditya Dika", voices[2].Name)
}
