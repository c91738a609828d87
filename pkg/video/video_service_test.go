package video

import (
	"context"
	"strings"
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

func newTestVideoService(t *testing.T) (VideoService, credit.CreditService, user.UserRepository, *manualScheduler) {
	t.Helper()
	videoRepo := NewMemoryVideoRepository()
	userRepo := user.NewMemoryUserRepository()
	creditService := credit.NewCreditService(credit.NewMemoryCreditRepository(), userRepo)
	scheduler := &manualScheduler{}
	svc := NewVideoService(videoRepo, userRepo, creditService, scheduler)
	return svc, creditService, userRepo, scheduler
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

func TestGenerateDebitsCreditsAndStartsJob(t *testing.T) {
	svc, _, userRepo, _ := newTestVideoService(t)
	ctx := context.Background()
	u := createTestUser(t, userRepo, 50)

	res, err := svc.Generate(ctx, domain.GenerateVideoRequest{
		Topic:          "Fotosintesis pada tumbuhan",
		VoiceModelID:   uuid.New().String(),
		VoiceModelType: domain.VoiceModelTypeCelebrity,
	}, u.ID.String())
	require.NoError(t, err)

	assert.Equal(t, domain.VideoStatusGenerating, res.Video.Status)
	assert.Equal(t, 10, res.Video.CreditsUsed)
	assert.Empty(t, res.Video.VideoURL)
	assert.Equal(t, 40, res.CreditsRemaining)
}

func TestGenerateInsufficientCredits(t *testing.T) {
	svc, _, userRepo, _ := newTestVideoService(t)
	ctx := context.Background()
	u := createTestUser(t, userRepo, 5)

	_, err := svc.Generate(ctx, domain.GenerateVideoRequest{
		Topic:          "Fotosintesis",
		VoiceModelID:   uuid.New().String(),
		VoiceModelType: domain.VoiceModelTypeCustom,
	}, u.ID.String())
	assert.ErrorIs(t, err, domain.ErrInsufficientCredits)

	videos, err := svc.ListVideos(ctx, u.ID.String())
	require.NoError(t, err)
	assert.Empty(t, videos)
}

func TestRenderCompletesWithResult(t *testing.T) {
	svc, _, userRepo, scheduler := newTestVideoService(t)
	ctx := context.Background()
	u := createTestUser(t, userRepo, 50)

	res, err := svc.Generate(ctx, domain.GenerateVideoRequest{
		Topic:          "Fotosintesis",
		VoiceModelID:   uuid.New().String(),
		VoiceModelType: domain.VoiceModelTypeCelebrity,
	}, u.ID.String())
	require.NoError(t, err)

	scheduler.Fire()

	video, err := svc.GetVideoByID(ctx, res.Video.ID, u.ID.String())
	require.NoError(t, err)
	assert.Equal(t, domain.VideoStatusReady, video.Status)
	assert.Equal(t, demoVideoURL, video.VideoURL)
	assert.Equal(t, demoVideoDuration, video.Duration)
}

func TestCompleteRenderingIdempotent(t *testing.T) {
	svc, _, userRepo, scheduler := newTestVideoService(t)
	ctx := context.Background()
	u := createTestUser(t, userRepo, 50)

	res, err := svc.Generate(ctx, domain.GenerateVideoRequest{
		Topic:          "Fotosintesis",
		VoiceModelID:   uuid.New().String(),
		VoiceModelType: domain.VoiceModelTypeCelebrity,
	}, u.ID.String())
	require.NoError(t, err)

	// Webhook reports failure before the demo timer fires.
	require.NoError(t, svc.CompleteRendering(ctx, res.Video.ID, domain.VideoStatusFailed))
	scheduler.Fire()

	video, err := svc.GetVideoByID(ctx, res.Video.ID, u.ID.String())
	require.NoError(t, err)
	assert.Equal(t, domain.VideoStatusFailed, video.Status)
	assert.Empty(t, video.VideoURL)

	err = svc.CompleteRendering(ctx, res.Video.ID, domain.VideoStatusReady)
	assert.ErrorIs(t, err, domain.ErrVideoAlreadyFinal)
}

func TestGetVideoByIDForeignOwner(t *testing.T) {
	svc, _, userRepo, _ := newTestVideoService(t)
	ctx := context.Background()
	alice := createTestUser(t, userRepo, 50)
	bob := createTestUser(t, userRepo, 50)

	res, err := svc.Generate(ctx, domain.GenerateVideoRequest{
		Topic:          "Fotosintesis",
		VoiceModelID:   uuid.New().String(),
		VoiceModelType: domain.VoiceModelTypeCelebrity,
	}, alice.ID.String())
	require.NoError(t, err)

	_, err = svc.GetVideoByID(ctx, res.Video.ID, bob.ID.String())
	assert.ErrorIs(t, err, domain.ErrVideoNotFound)
}

func TestGenerateTruncatesLongTopicInDescription(t *testing.T) {
	svc, creditService, userRepo, _ := newTestVideoService(t)
	ctx := context.Background()
	u := createTestUser(t, userRepo, 50)

	longTopic := strings.Repeat("a", 80)
	_, err := svc.Generate(ctx, domain.GenerateVideoRequest{
		Topic:          longTopic,
		VoiceModelID:   uuid.New().String(),
		VoiceModelType: domain.VoiceModelTypeCustom,
	}, u.ID.String())
	require.NoError(t, err)

	history, err := creditService.GetTransactionHistory(ctx, u.ID.String())
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, "Generate video: "+strings.Repeat("a", 50)+"...", history[0].Description)
}
