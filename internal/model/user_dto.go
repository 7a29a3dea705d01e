package model

import (
	"errors"
	"time"
)

// ErrDuplicateEmail is returned by user stores when the e-mail is already taken.
var ErrDuplicateEmail = errors.New("email already registered")

type UserDTO struct {
	ID          string    `json:"id"`
	Email       string    `json:"email"`
	Username    string    `json:"username,omitempty"`
	DisplayName string    `json:"display_name,omitempty"`
	Confirmed   bool      `json:"email_confirmed"`
	CreatedAt   time.Time `json:"created_at"`
}

type CreateUserDTO struct {
	Email        string
	PasswordHash string
	Username     string
	DisplayName  string
	Confirmed    bool
}

type UserRecord struct {
	UserDTO
	PasswordHash string
}
