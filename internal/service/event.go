package service

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"

	"github.com/Henry-Iheonu/Events/internal/domain"
	"github.com/Henry-Iheonu/Events/internal/service/ports"
)

const (
	eventCodeAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	eventCodeAttempts = 3
	eventTimeLayout   = "15:04:05"
)

type EventService struct {
	repo ports.EventRepo
}

func NewEventService(repo ports.EventRepo) *EventService {
	return &EventService{repo: repo}
}

func (s *EventService) Create(ctx context.Context, ownerID string, input domain.CreateEventInput) (*domain.Event, error) {
	if err := validateEventInput(input.Title, input.Organizer, input.Location, input.EventType, input.Capacity, input.EventTime); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	event := &domain.Event{
		ID:          uuid.New().String(),
		OwnerID:     &ownerID,
		Title:       input.Title,
		Description: input.Description,
		EventDate:   input.EventDate,
		EventTime:   input.EventTime,
		Location:    input.Location,
		EventType:   input.EventType,
		Organizer:   input.Organizer,
		Capacity:    input.Capacity,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	// Regenerate on code collision instead of assuming it never happens.
	var err error
	for range eventCodeAttempts {
		event.EventCode, err = newEventCode()
		if err != nil {
			return nil, fmt.Errorf("generate event code: %w", err)
		}

		err = s.repo.Create(ctx, event)
		if !errors.Is(err, domain.ErrEventCodeTaken) {
			break
		}
	}
	if err != nil {
		return nil, fmt.Errorf("create event: %w", err)
	}

	return event, nil
}

func (s *EventService) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *EventService) List(ctx context.Context) ([]*domain.Event, error) {
	return s.repo.List(ctx)
}

func (s *EventService) Update(ctx context.Context, id string, input domain.UpdateEventInput) (*domain.Event, error) {
	event, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Title != nil {
		event.Title = *input.Title
	}
	if input.Description != nil {
		event.Description = *input.Description
	}
	if input.EventDate != nil {
		event.EventDate = *input.EventDate
	}
	if input.EventTime != nil {
		event.EventTime = input.EventTime
	}
	if input.Location != nil {
		event.Location = *input.Location
	}
	if input.EventType != nil {
		event.EventType = *input.EventType
	}
	if input.Organizer != nil {
		event.Organizer = *input.Organizer
	}
	if input.Capacity != nil {
		event.Capacity = *input.Capacity
	}

	if err = validateEventInput(event.Title, event.Organizer, event.Location, event.EventType, event.Capacity, event.EventTime); err != nil {
		return nil, err
	}

	event.UpdatedAt = time.Now().UTC()
	if err = s.repo.Update(ctx, event); err != nil {
		return nil, fmt.Errorf("update event: %w", err)
	}

	return event, nil
}

func (s *EventService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

func (s *EventService) ListMine(ctx context.Context, ownerID string) ([]*domain.EventStats, error) {
	stats, err := s.repo.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list own events: %w", err)
	}

	for _, st := range stats {
		st.ProgressPercentage = ProgressPercentage(st.RegistrationCount, st.Event.Capacity)
	}

	return stats, nil
}

// ProgressPercentage is count/capacity as a percentage rounded to two
// decimals, or 0 for zero capacity.
func ProgressPercentage(count, capacity int) float64 {
	if capacity == 0 {
		return 0
	}
	return math.Round(float64(count)/float64(capacity)*100*100) / 100
}

func validateEventInput(title, organizer, location, eventType string, capacity int, eventTime *string) error {
	if title == "" {
		return fmt.Errorf("%w: title is required", domain.ErrValidation)
	}
	if organizer == "" {
		return fmt.Errorf("%w: organizer is required", domain.ErrValidation)
	}
	if location == "" {
		return fmt.Errorf("%w: location is required", domain.ErrValidation)
	}
	if eventType == "" {
		return fmt.Errorf("%w: event_type is required", domain.ErrValidation)
	}
	if capacity <= 0 {
		return fmt.Errorf("%w: capacity must be positive", domain.ErrValidation)
	}
	if eventTime != nil {
		if _, err := time.Parse(eventTimeLayout, *eventTime); err != nil {
			return fmt.Errorf("%w: event_time must be in HH:MM:SS format", domain.ErrValidation)
		}
	}
	return nil
}

func newEventCode() (string, error) {
	buf := make([]byte, domain.EventCodeLength)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}

	code := make([]byte, domain.EventCodeLength)
	for i, b := range buf {
		code[i] = eventCodeAlphabet[int(b)%len(eventCodeAlphabet)]
	}

	return "#" + string(code), nil
}
