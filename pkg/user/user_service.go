package user

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/ppdew9811-hash/eduvoice/domain"
	"github.com/ppdew9811-hash/eduvoice/entities"
	"github.com/ppdew9811-hash/eduvoice/internal/utils"
	"github.com/ppdew9811-hash/eduvoice/internal/utils/mailing"
	"github.com/ppdew9811-hash/eduvoice/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
)

type (
	UserService interface {
		Register(ctx context.Context, req domain.RegisterRequest) (*domain.AuthResponse, error)
		Login(ctx context.Context, req domain.LoginRequest) (*domain.AuthResponse, error)
		Me(ctx context.Context, userID string) (*domain.UserResponse, error)
		SendVerificationEmail(ctx context.Context, email string) error
		VerifyEmail(ctx context.Context, token string) error
	}

	userService struct {
		userRepository UserRepository
		jwtService     jwt.JWTService
	}
)

func NewUserService(userRepository UserRepository, jwtService jwt.JWTService) UserService {
	return &userService{
		userRepository: userRepository,
		jwtService:     jwtService,
	}
}

func (s *userService) Register(ctx context.Context, req domain.RegisterRequest) (*domain.AuthResponse, error) {
	if _, err := s.userRepository.GetUserByEmail(ctx, req.Email); err == nil {
		return nil, domain.ErrEmailAlreadyExists
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &entities.User{
		ID:           uuid.New(),
		Email:        req.Email,
		PasswordHash: string(hash),
		Name:         req.Name,
		Credits:      domain.StartingCredits,
		IsPremium:    false,
		Role:         domain.RoleUser,
		Timestamp: entities.Timestamp{
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
	}

	if err := s.userRepository.CreateUser(ctx, user); err != nil {
		return nil, err
	}

	// Verification mail is best effort, registration succeeds without it.
	go func() {
		if err := s.SendVerificationEmail(context.Background(), user.Email); err != nil {
			log.Printf("failed to send verification email to %s: %v", user.Email, err)
		}
	}()

	token := s.jwtService.GenerateTokenUser(user.ID.String(), user.Role)

	return &domain.AuthResponse{
		User:  toUserResponse(user),
		Token: token,
	}, nil
}

func (s *userService) Login(ctx context.Context, req domain.LoginRequest) (*domain.AuthResponse, error) {
	user, err := s.userRepository.GetUserByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrCredentialsInvalid
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, domain.ErrCredentialsInvalid
	}

	token := s.jwtService.GenerateTokenUser(user.ID.String(), user.Role)

	return &domain.AuthResponse{
		User:  toUserResponse(user),
		Token: token,
	}, nil
}

func (s *userService) Me(ctx context.Context, userID string) (*domain.UserResponse, error) {
	user, err := s.userRepository.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	resp := toUserResponse(user)
	return &resp, nil
}

func (s *userService) SendVerificationEmail(ctx context.Context, email string) error {
	user, err := s.userRepository.GetUserByEmail(ctx, email)
	if err != nil {
		return err
	}

	if user.IsVerified {
		return domain.ErrEmailAlreadyVerified
	}

	token, err := s.jwtService.GenerateTokenVerifyEmail(map[string]any{
		"user_id": user.ID.String(),
	}, 24*time.Hour)
	if err != nil {
		return err
	}

	verifyLink := fmt.Sprintf("%s/api/v1/users/verify?token=%s", utils.GetConfig("APP_URL"), token)
	body := fmt.Sprintf(
		"<p>Halo %s,</p><p>Klik link berikut untuk verifikasi akun EduVoice kamu:</p><p><a href=\"%s\">Verifikasi Email</a></p>",
		user.Name, verifyLink,
	)

	return mailing.SendMail(user.Email, "Verifikasi Email EduVoice", body)
}

func (s *userService) VerifyEmail(ctx context.Context, token string) error {
	claims, err := s.jwtService.ValidateTokenVerifyEmail(token)
	if err != nil {
		return err
	}

	userID, ok := claims["user_id"].(string)
	if !ok {
		return domain.ErrTokenInvalid
	}

	user, err := s.userRepository.GetUserByID(ctx, userID)
	if err != nil {
		return err
	}

	if user.IsVerified {
		return domain.ErrEmailAlreadyVerified
	}

	user.IsVerified = true
	user.UpdatedAt = time.Now()
	return s.userRepository.UpdateUser(ctx, user)
}

// toUserResponse hides the password hash and downgrades the premium flag
// once the expiry timestamp has passed.
func toUserResponse(user *entities.User) domain.UserResponse {
	isPremium := user.IsPremium
	if isPremium && user.PremiumExpiresAt != nil && user.PremiumExpiresAt.Before(time.Now()) {
		isPremium = false
	}

	return domain.UserResponse{
		ID:               user.ID.String(),
		Email:            user.Email,
		Name:             user.Name,
		Credits:          user.Credits,
		IsPremium:        isPremium,
		PremiumExpiresAt: user.PremiumExpiresAt,
		IsVerified:       user.IsVerified,
		CreatedAt:        user.CreatedAt,
	}
}
