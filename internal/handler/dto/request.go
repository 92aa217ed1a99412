package dto

type SignupRequest struct {
	Username    string `json:"username" binding:"required"`
	Email       string `json:"email" binding:"required"`
	Password    string `json:"password" binding:"required"`
	FullName    string `json:"full_name"`
	PhoneNumber string `json:"phone_number"`
	Bio         string `json:"bio"`
	Location    string `json:"location"`
	Interests   string `json:"interests"`
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type RefreshRequest struct {
	Refresh string `json:"refresh" binding:"required"`
}

type CreateEventRequest struct {
	Title       string  `json:"title" binding:"required"`
	Description string  `json:"description"`
	Date        string  `json:"date" binding:"required"`
	Time        *string `json:"time"`
	Location    string  `json:"location" binding:"required"`
	EventType   string  `json:"event_type" binding:"required"`
	Organizer   string  `json:"organizer" binding:"required"`
	Capacity    int     `json:"capacity" binding:"required,gt=0"`
}

// UpdateEventRequest is a partial update: absent fields keep stored values.
type UpdateEventRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Date        *string `json:"date"`
	Time        *string `json:"time"`
	Location    *string `json:"location"`
	EventType   *string `json:"event_type"`
	Organizer   *string `json:"organizer"`
	Capacity    *int    `json:"capacity"`
}

type RegisterForEventRequest struct {
	FullName               string `json:"full_name" binding:"required"`
	Email                  string `json:"email" binding:"required"`
	PhoneNumber            string `json:"phone_number" binding:"required"`
	PreferredContactMethod string `json:"preferred_contact_method" binding:"required"`
	City                   string `json:"city" binding:"required"`
	EventAttendanceMode    string `json:"event_attendance_mode" binding:"required"`
	EmergencyContact       string `json:"emergency_contact" binding:"required"`
}

type UpdateProfileRequest struct {
	FullName       *string `json:"full_name"`
	ProfilePicture *string `json:"profile_picture"`
	PhoneNumber    *string `json:"phone_number"`
	Bio            *string `json:"bio"`
	Location       *string `json:"location"`
	Interests      *string `json:"interests"`
}
