package user

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/ppdew9811-hash/eduvoice/domain"
	"github.com/ppdew9811-hash/eduvoice/entities"
	"github.com/ppdew9811-hash/eduvoice/pkg/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newTestUserService(t *testing.T) (UserService, UserRepository) {
	t.Helper()
	repo := NewMemoryUserRepository()
	return NewUserService(repo, jwt.NewJWTService()), repo
}

func TestRegisterGrantsStartingCredits(t *testing.T) {
	svc, _ := newTestUserService(t)

	res, err := svc.Register(context.Background(), domain.RegisterRequest{
		Email:    "budi@example.com",
		Password: "rahasia-banget",
		Name:     "Budi",
	})
	require.NoError(t, err)

	assert.Equal(t, "budi@example.com", res.User.Email)
	assert.Equal(t, domain.StartingCredits, res.User.Credits)
	assert.False(t, res.User.IsPremium)
	assert.NotEmpty(t, res.Token)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc, _ := newTestUserService(t)
	ctx := context.Background()

	req := domain.RegisterRequest{
		Email:    "budi@example.com",
		Password: "rahasia-banget",
		Name:     "Budi",
	}
	_, err := svc.Register(ctx, req)
	require.NoError(t, err)

	_, err = svc.Register(ctx, req)
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

func TestRegisterHashesPassword(t *testing.T) {
	svc, repo := newTestUserService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, domain.RegisterRequest{
		Email:    "budi@example.com",
		Password: "rahasia-banget",
		Name:     "Budi",
	})
	require.NoError(t, err)

	stored, err := repo.GetUserByEmail(ctx, "budi@example.com")
	require.NoError(t, err)
	assert.NotEqual(t, "rahasia-banget", stored.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("rahasia-banget")))
}

func TestLogin(t *testing.T) {
	svc, _ := newTestUserService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, domain.RegisterRequest{
		Email:    "budi@example.com",
		Password: "rahasia-banget",
		Name:     "Budi",
	})
	require.NoError(t, err)

	res, err := svc.Login(ctx, domain.LoginRequest{
		Email:    "budi@example.com",
		Password: "rahasia-banget",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, res.Token)

	_, err = svc.Login(ctx, domain.LoginRequest{
		Email:    "budi@example.com",
		Password: "salah",
	})
	assert.ErrorIs(t, err, domain.ErrCredentialsInvalid)

	_, err = svc.Login(ctx, domain.LoginRequest{
		Email:    "tidak-ada@example.com",
		Password: "rahasia-banget",
	})
	assert.ErrorIs(t, err, domain.ErrCredentialsInvalid)
}

func TestMeDowngradesExpiredPremium(t *testing.T) {
	svc, repo := newTestUserService(t)
	ctx := context.Background()

	expired := time.Now().AddDate(0, 0, -1)
	u := &entities.User{
		ID:               uuid.New(),
		Email:            "premium@example.com",
		Name:             "Premium User",
		Credits:          1000,
		IsPremium:        true,
		PremiumExpiresAt: &expired,
		Role:             domain.RoleUser,
		Timestamp: entities.Timestamp{
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
	}
	require.NoError(t, repo.CreateUser(ctx, u))

	res, err := svc.Me(ctx, u.ID.String())
	require.NoError(t, err)
	assert.False(t, res.IsPremium)
}

func TestMeUnknownUser(t *testing.T) {
	svc, _ := newTestUserService(t)
	_, err := svc.Me(context.Background(), uuid.New().String())
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}
