package service

import (
	"context"
	"fmt"
	"regexp"
	"time"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/logger"

	"github.com/Henry-Iheonu/Events/internal/domain"
	"github.com/Henry-Iheonu/Events/internal/service/ports"
)

var (
	emailRegexp = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)
	phoneRegexp = regexp.MustCompile(`^\+?\d{7,15}$`)
)

type RegistrationService struct {
	regRepo   ports.RegistrationRepo
	eventRepo ports.EventRepo
	notifier  ports.RegistrationNotifier
	logger    logger.Logger
}

func NewRegistrationService(
	regRepo ports.RegistrationRepo,
	eventRepo ports.EventRepo,
	notifier ports.RegistrationNotifier,
	logger logger.Logger,
) *RegistrationService {
	return &RegistrationService{
		regRepo:   regRepo,
		eventRepo: eventRepo,
		notifier:  notifier,
		logger:    logger,
	}
}

func (s *RegistrationService) Register(ctx context.Context, eventID, userID string, input domain.RegisterInput) (*domain.Registration, error) {
	event, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("check event: %w", err)
	}

	if err = validateRegisterInput(input); err != nil {
		return nil, err
	}

	reg := &domain.Registration{
		ID:                     uuid.New().String(),
		UserID:                 &userID,
		EventID:                eventID,
		FullName:               input.FullName,
		Email:                  input.Email,
		PhoneNumber:            input.PhoneNumber,
		PreferredContactMethod: input.PreferredContactMethod,
		City:                   input.City,
		EventAttendanceMode:    input.EventAttendanceMode,
		EmergencyContact:       input.EmergencyContact,
		RegisteredAt:           time.Now().UTC(),
	}

	// Capacity and duplicate checks happen inside the repo transaction.
	if err = s.regRepo.Create(ctx, reg); err != nil {
		return nil, fmt.Errorf("create registration: %w", err)
	}

	s.logger.Info("registration created",
		logger.String("registration_id", reg.ID),
		logger.String("event_id", eventID),
		logger.String("user_id", userID),
	)

	// Delivery is best-effort after commit; failure never unwinds the row.
	s.notifier.RegistrationCreated(context.WithoutCancel(ctx), reg, event)

	return reg, nil
}

func (s *RegistrationService) Unregister(ctx context.Context, eventID, userID string) error {
	if _, err := s.eventRepo.GetByID(ctx, eventID); err != nil {
		return fmt.Errorf("check event: %w", err)
	}

	if err := s.regRepo.DeleteByEventAndUser(ctx, eventID, userID); err != nil {
		return fmt.Errorf("delete registration: %w", err)
	}

	s.logger.Info("registration removed",
		logger.String("event_id", eventID),
		logger.String("user_id", userID),
	)

	return nil
}

func (s *RegistrationService) ListForEvent(ctx context.Context, eventID string) ([]*domain.Registration, error) {
	if _, err := s.eventRepo.GetByID(ctx, eventID); err != nil {
		return nil, fmt.Errorf("check event: %w", err)
	}

	return s.regRepo.ListByEvent(ctx, eventID)
}

func (s *RegistrationService) CountForEvent(ctx context.Context, eventID string) (int, error) {
	if _, err := s.eventRepo.GetByID(ctx, eventID); err != nil {
		return 0, fmt.Errorf("check event: %w", err)
	}

	return s.regRepo.CountByEvent(ctx, eventID)
}

func validateRegisterInput(input domain.RegisterInput) error {
	if input.FullName == "" {
		return fmt.Errorf("%w: full_name is required", domain.ErrValidation)
	}
	if !emailRegexp.MatchString(input.Email) {
		return fmt.Errorf("%w: invalid email", domain.ErrValidation)
	}
	if !phoneRegexp.MatchString(input.PhoneNumber) {
		return fmt.Errorf("%w: invalid phone_number", domain.ErrValidation)
	}
	if !input.PreferredContactMethod.Valid() {
		return fmt.Errorf("%w: preferred_contact_method must be Email or Phone", domain.ErrValidation)
	}
	if input.City == "" {
		return fmt.Errorf("%w: city is required", domain.ErrValidation)
	}
	if !input.EventAttendanceMode.Valid() {
		return fmt.Errorf("%w: event_attendance_mode must be In-Person or Virtual", domain.ErrValidation)
	}
	if input.EmergencyContact == "" {
		return fmt.Errorf("%w: emergency_contact is required", domain.ErrValidation)
	}
	return nil
}
