package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Henry-Iheonu/Events/internal/domain"
	"github.com/Henry-Iheonu/Events/internal/service/ports/mocks"
)

func TestProfileService_Get_Success(t *testing.T) {
	profileRepo := mocks.NewMockProfileRepo(t)
	userRepo := mocks.NewMockUserRepo(t)
	eventRepo := mocks.NewMockEventRepo(t)

	svc := NewProfileService(profileRepo, userRepo, eventRepo)

	profile := &domain.Profile{ID: "p1", UserID: "u1", FullName: "Ada Obi"}
	user := &domain.User{ID: "u1", Username: "ada", Email: "ada@example.com"}
	owned := []*domain.EventStats{
		{Event: domain.Event{ID: "e1", Title: "Go Meetup"}, RegistrationCount: 10},
	}
	registered := []*domain.Event{{ID: "e2", Title: "DevFest"}}

	profileRepo.EXPECT().GetByUserID(mock.Anything, "u1").Return(profile, nil)
	userRepo.EXPECT().GetByID(mock.Anything, "u1").Return(user, nil)
	eventRepo.EXPECT().ListByOwner(mock.Anything, "u1").Return(owned, nil)
	eventRepo.EXPECT().ListRegisteredBy(mock.Anything, "u1").Return(registered, nil)

	details, err := svc.Get(context.Background(), "u1")

	require.NoError(t, err)
	assert.Equal(t, "ada", details.Username)
	assert.Equal(t, "ada@example.com", details.Email)
	assert.Equal(t, "Ada Obi", details.Profile.FullName)
	require.Len(t, details.CreatedEvents, 1)
	assert.Equal(t, "e1", details.CreatedEvents[0].ID)
	require.Len(t, details.RegisteredEvents, 1)
	assert.Equal(t, "e2", details.RegisteredEvents[0].ID)
}

func TestProfileService_Get_NotFound(t *testing.T) {
	profileRepo := mocks.NewMockProfileRepo(t)
	userRepo := mocks.NewMockUserRepo(t)
	eventRepo := mocks.NewMockEventRepo(t)

	svc := NewProfileService(profileRepo, userRepo, eventRepo)

	profileRepo.EXPECT().GetByUserID(mock.Anything, "u1").Return(nil, domain.ErrProfileNotFound)

	_, err := svc.Get(context.Background(), "u1")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrProfileNotFound)
}

func TestProfileService_Update_PartialMerge(t *testing.T) {
	profileRepo := mocks.NewMockProfileRepo(t)
	userRepo := mocks.NewMockUserRepo(t)
	eventRepo := mocks.NewMockEventRepo(t)

	svc := NewProfileService(profileRepo, userRepo, eventRepo)

	stored := &domain.Profile{
		ID:       "p1",
		UserID:   "u1",
		FullName: "Ada Obi",
		Bio:      "Gopher",
		Location: "Lagos",
	}
	profileRepo.EXPECT().GetByUserID(mock.Anything, "u1").Return(stored, nil)

	var updated *domain.Profile
	profileRepo.EXPECT().Update(mock.Anything, mock.Anything).Run(func(_ context.Context, p *domain.Profile) {
		updated = p
	}).Return(nil)

	result, err := svc.Update(context.Background(), "u1", domain.UpdateProfileInput{
		Bio:            strPtr("Senior Gopher"),
		ProfilePicture: strPtr("https://cdn.example.com/ada.png"),
	})

	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, "Senior Gopher", result.Bio)
	assert.Equal(t, "Ada Obi", result.FullName)
	assert.Equal(t, "Lagos", result.Location)
	require.NotNil(t, result.ProfilePicture)
	assert.Equal(t, "https://cdn.example.com/ada.png", *result.ProfilePicture)
}

func TestProfileService_Update_NotFound(t *testing.T) {
	profileRepo := mocks.NewMockProfileRepo(t)
	userRepo := mocks.NewMockUserRepo(t)
	eventRepo := mocks.NewMockEventRepo(t)

	svc := NewProfileService(profileRepo, userRepo, eventRepo)

	profileRepo.EXPECT().GetByUserID(mock.Anything, "u1").Return(nil, domain.ErrProfileNotFound)

	_, err := svc.Update(context.Background(), "u1", domain.UpdateProfileInput{Bio: strPtr("x")})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrProfileNotFound)
}
