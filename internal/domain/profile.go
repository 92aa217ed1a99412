package domain

type Profile struct {
	ID             string  `json:"id"`
	UserID         string  `json:"user_id"`
	FullName       string  `json:"full_name"`
	ProfilePicture *string `json:"profile_picture"`
	PhoneNumber    string  `json:"phone_number"`
	Bio            string  `json:"bio"`
	Location       string  `json:"location"`
	Interests      string  `json:"interests"`
}

// ProfileDetails joins the profile with its account identity and the
// user's event activity on both sides of the ledger.
type ProfileDetails struct {
	Profile          Profile  `json:"profile"`
	Username         string   `json:"username"`
	Email            string   `json:"email"`
	CreatedEvents    []*Event `json:"created_events"`
	RegisteredEvents []*Event `json:"registered_events"`
}

// UpdateProfileInput carries a partial update; nil fields keep stored values.
type UpdateProfileInput struct {
	FullName       *string
	ProfilePicture *string
	PhoneNumber    *string
	Bio            *string
	Location       *string
	Interests      *string
}
