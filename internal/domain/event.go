package domain

import "time"

// EventCodeLength is the number of characters following the '#' prefix.
const EventCodeLength = 19

type Event struct {
	ID          string    `json:"id"`
	OwnerID     *string   `json:"owner_id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	EventDate   time.Time `json:"event_date"`
	// EventTime is an optional time of day in "15:04:05" form.
	EventTime *string   `json:"event_time"`
	Location  string    `json:"location"`
	EventType string    `json:"event_type"`
	Organizer string    `json:"organizer"`
	Capacity  int       `json:"capacity"`
	EventCode string    `json:"event_code"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// EventStats is an owner's view of an event with registration progress.
type EventStats struct {
	Event              Event   `json:"event"`
	RegistrationCount  int     `json:"registration_count"`
	ProgressPercentage float64 `json:"progress_percentage"`
}

type CreateEventInput struct {
	Title       string
	Description string
	EventDate   time.Time
	EventTime   *string
	Location    string
	EventType   string
	Organizer   string
	Capacity    int
}

// UpdateEventInput carries a partial update; nil fields keep stored values.
// EventCode and OwnerID are immutable and therefore absent.
type UpdateEventInput struct {
	Title       *string
	Description *string
	EventDate   *time.Time
	EventTime   *string
	Location    *string
	EventType   *string
	Organizer   *string
	Capacity    *int
}
