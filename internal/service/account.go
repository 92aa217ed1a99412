package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/Henry-Iheonu/Events/internal/domain"
	"github.com/Henry-Iheonu/Events/internal/service/ports"
	"github.com/Henry-Iheonu/Events/internal/token"
)

const minPasswordLength = 8

type AccountService struct {
	userRepo ports.UserRepo
	tokens   *token.Manager
}

func NewAccountService(userRepo ports.UserRepo, tokens *token.Manager) *AccountService {
	return &AccountService{
		userRepo: userRepo,
		tokens:   tokens,
	}
}

// Signup creates the account together with its profile.
func (s *AccountService) Signup(ctx context.Context, input domain.SignupInput) (*domain.User, error) {
	if input.Username == "" {
		return nil, fmt.Errorf("%w: username is required", domain.ErrValidation)
	}
	if !emailRegexp.MatchString(input.Email) {
		return nil, fmt.Errorf("%w: invalid email", domain.ErrValidation)
	}
	if len(input.Password) < minPasswordLength {
		return nil, fmt.Errorf("%w: password must be at least %d characters", domain.ErrValidation, minPasswordLength)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &domain.User{
		ID:           uuid.New().String(),
		Username:     input.Username,
		Email:        input.Email,
		PasswordHash: string(hash),
		CreatedAt:    time.Now().UTC(),
	}
	profile := &domain.Profile{
		ID:          uuid.New().String(),
		UserID:      user.ID,
		FullName:    input.FullName,
		PhoneNumber: input.PhoneNumber,
		Bio:         input.Bio,
		Location:    input.Location,
		Interests:   input.Interests,
	}

	if err = s.userRepo.Create(ctx, user, profile); err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}

	return user, nil
}

func (s *AccountService) Login(ctx context.Context, username, password string) (token.Pair, error) {
	user, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return token.Pair{}, domain.ErrInvalidCredentials
		}
		return token.Pair{}, fmt.Errorf("get user: %w", err)
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return token.Pair{}, domain.ErrInvalidCredentials
	}

	pair, err := s.tokens.NewPair(user.ID)
	if err != nil {
		return token.Pair{}, fmt.Errorf("issue tokens: %w", err)
	}

	return pair, nil
}

func (s *AccountService) Refresh(ctx context.Context, refreshToken string) (token.Pair, error) {
	userID, err := s.tokens.Verify(refreshToken, token.TypeRefresh)
	if err != nil {
		return token.Pair{}, err
	}

	// Reject refresh tokens of deleted accounts.
	if _, err = s.userRepo.GetByID(ctx, userID); err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return token.Pair{}, token.ErrInvalidToken
		}
		return token.Pair{}, fmt.Errorf("get user: %w", err)
	}

	pair, err := s.tokens.NewPair(userID)
	if err != nil {
		return token.Pair{}, fmt.Errorf("issue tokens: %w", err)
	}

	return pair, nil
}
