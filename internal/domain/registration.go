package domain

import "time"

type ContactMethod string

const (
	ContactMethodEmail ContactMethod = "Email"
	ContactMethodPhone ContactMethod = "Phone"
)

func (m ContactMethod) Valid() bool {
	return m == ContactMethodEmail || m == ContactMethodPhone
}

type AttendanceMode string

const (
	AttendanceModeInPerson AttendanceMode = "In-Person"
	AttendanceModeVirtual  AttendanceMode = "Virtual"
)

func (m AttendanceMode) Valid() bool {
	return m == AttendanceModeInPerson || m == AttendanceModeVirtual
}

type Registration struct {
	ID                     string         `json:"id"`
	UserID                 *string        `json:"user_id"`
	EventID                string         `json:"event_id"`
	FullName               string         `json:"full_name"`
	Email                  string         `json:"email"`
	PhoneNumber            string         `json:"phone_number"`
	PreferredContactMethod ContactMethod  `json:"preferred_contact_method"`
	City                   string         `json:"city"`
	EventAttendanceMode    AttendanceMode `json:"event_attendance_mode"`
	EmergencyContact       string         `json:"emergency_contact"`
	RegisteredAt           time.Time      `json:"registered_at"`
}

type RegisterInput struct {
	FullName               string
	Email                  string
	PhoneNumber            string
	PreferredContactMethod ContactMethod
	City                   string
	EventAttendanceMode    AttendanceMode
	EmergencyContact       string
}
