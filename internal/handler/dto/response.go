package dto

import (
	"time"

	"github.com/Henry-Iheonu/Events/internal/domain"
	"github.com/Henry-Iheonu/Events/internal/token"
)

const dateLayout = "2006-01-02"

type EventResponse struct {
	ID          string  `json:"id"`
	OwnerID     *string `json:"owner_id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Date        string  `json:"date"`
	Time        *string `json:"time"`
	Location    string  `json:"location"`
	EventType   string  `json:"event_type"`
	Organizer   string  `json:"organizer"`
	Capacity    int     `json:"capacity"`
	EventCode   string  `json:"event_code"`
	CreatedAt   string  `json:"created_at"`
}

type EventStatsResponse struct {
	EventResponse
	RegistrationCount  int     `json:"registration_count"`
	ProgressPercentage float64 `json:"progress_percentage"`
}

type RegistrationResponse struct {
	ID                     string  `json:"id"`
	UserID                 *string `json:"user_id"`
	EventID                string  `json:"event_id"`
	FullName               string  `json:"full_name"`
	Email                  string  `json:"email"`
	PhoneNumber            string  `json:"phone_number"`
	PreferredContactMethod string  `json:"preferred_contact_method"`
	City                   string  `json:"city"`
	EventAttendanceMode    string  `json:"event_attendance_mode"`
	EmergencyContact       string  `json:"emergency_contact"`
	RegisteredAt           string  `json:"registered_at"`
}

type RegistrationCountResponse struct {
	RegistrationCount int `json:"registration_count"`
}

type TokenPairResponse struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type ProfileResponse struct {
	FullName       string  `json:"full_name"`
	ProfilePicture *string `json:"profile_picture"`
	PhoneNumber    string  `json:"phone_number"`
	Bio            string  `json:"bio"`
	Location       string  `json:"location"`
	Interests      string  `json:"interests"`
}

type ProfileDetailsResponse struct {
	Username         string          `json:"username"`
	Email            string          `json:"email"`
	ProfileResponse
	CreatedEvents    []EventResponse `json:"created_events"`
	RegisteredEvents []EventResponse `json:"registered_events"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func ToEventResponse(e *domain.Event) EventResponse {
	return EventResponse{
		ID:          e.ID,
		OwnerID:     e.OwnerID,
		Title:       e.Title,
		Description: e.Description,
		Date:        e.EventDate.Format(dateLayout),
		Time:        e.EventTime,
		Location:    e.Location,
		EventType:   e.EventType,
		Organizer:   e.Organizer,
		Capacity:    e.Capacity,
		EventCode:   e.EventCode,
		CreatedAt:   e.CreatedAt.Format(time.RFC3339),
	}
}

func ToEventResponses(events []*domain.Event) []EventResponse {
	res := make([]EventResponse, 0, len(events))
	for _, e := range events {
		res = append(res, ToEventResponse(e))
	}
	return res
}

func ToEventStatsResponse(s *domain.EventStats) EventStatsResponse {
	return EventStatsResponse{
		EventResponse:      ToEventResponse(&s.Event),
		RegistrationCount:  s.RegistrationCount,
		ProgressPercentage: s.ProgressPercentage,
	}
}

func ToRegistrationResponse(r *domain.Registration) RegistrationResponse {
	return RegistrationResponse{
		ID:                     r.ID,
		UserID:                 r.UserID,
		EventID:                r.EventID,
		FullName:               r.FullName,
		Email:                  r.Email,
		PhoneNumber:            r.PhoneNumber,
		PreferredContactMethod: string(r.PreferredContactMethod),
		City:                   r.City,
		EventAttendanceMode:    string(r.EventAttendanceMode),
		EmergencyContact:       r.EmergencyContact,
		RegisteredAt:           r.RegisteredAt.Format(time.RFC3339),
	}
}

func ToTokenPairResponse(p token.Pair) TokenPairResponse {
	return TokenPairResponse{Access: p.Access, Refresh: p.Refresh}
}

func ToProfileResponse(p *domain.Profile) ProfileResponse {
	return ProfileResponse{
		FullName:       p.FullName,
		ProfilePicture: p.ProfilePicture,
		PhoneNumber:    p.PhoneNumber,
		Bio:            p.Bio,
		Location:       p.Location,
		Interests:      p.Interests,
	}
}

func ToProfileDetailsResponse(d *domain.ProfileDetails) ProfileDetailsResponse {
	return ProfileDetailsResponse{
		Username:         d.Username,
		Email:            d.Email,
		ProfileResponse:  ToProfileResponse(&d.Profile),
		CreatedEvents:    ToEventResponses(d.CreatedEvents),
		RegisteredEvents: ToEventResponses(d.RegisteredEvents),
	}
}
