package domain

import "time"

type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

type SignupInput struct {
	Username    string
	Email       string
	Password    string
	FullName    string
	PhoneNumber string
	Bio         string
	Location    string
	Interests   string
}
