package service

import (
	"context"
	"fmt"

	"github.com/Henry-Iheonu/Events/internal/domain"
	"github.com/Henry-Iheonu/Events/internal/service/ports"
)

type ProfileService struct {
	profileRepo ports.ProfileRepo
	userRepo    ports.UserRepo
	eventRepo   ports.EventRepo
}

func NewProfileService(profileRepo ports.ProfileRepo, userRepo ports.UserRepo, eventRepo ports.EventRepo) *ProfileService {
	return &ProfileService{
		profileRepo: profileRepo,
		userRepo:    userRepo,
		eventRepo:   eventRepo,
	}
}

// Get assembles the profile with the account identity and the user's events
// on both sides of the ledger.
func (s *ProfileService) Get(ctx context.Context, userID string) (*domain.ProfileDetails, error) {
	profile, err := s.profileRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get profile: %w", err)
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}

	ownStats, err := s.eventRepo.ListByOwner(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list created events: %w", err)
	}
	created := make([]*domain.Event, 0, len(ownStats))
	for _, st := range ownStats {
		e := st.Event
		created = append(created, &e)
	}

	registered, err := s.eventRepo.ListRegisteredBy(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list registered events: %w", err)
	}

	return &domain.ProfileDetails{
		Profile:          *profile,
		Username:         user.Username,
		Email:            user.Email,
		CreatedEvents:    created,
		RegisteredEvents: registered,
	}, nil
}

func (s *ProfileService) Update(ctx context.Context, userID string, input domain.UpdateProfileInput) (*domain.Profile, error) {
	profile, err := s.profileRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get profile: %w", err)
	}

	if input.FullName != nil {
		profile.FullName = *input.FullName
	}
	if input.ProfilePicture != nil {
		profile.ProfilePicture = input.ProfilePicture
	}
	if input.PhoneNumber != nil {
		profile.PhoneNumber = *input.PhoneNumber
	}
	if input.Bio != nil {
		profile.Bio = *input.Bio
	}
	if input.Location != nil {
		profile.Location = *input.Location
	}
	if input.Interests != nil {
		profile.Interests = *input.Interests
	}

	if err = s.profileRepo.Update(ctx, profile); err != nil {
		return nil, fmt.Errorf("update profile: %w", err)
	}

	return profile, nil
}
