package users

import (
	"errors"
	"time"
)

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrUserExists         = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("wrong credentials")
	ErrValidation         = errors.New("validation failed")
)

type User struct {
	ID           int       `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	IsSuperuser  bool      `json:"isSuperuser"`
	CreatedAt    time.Time `json:"createdAt"`
}

type Info struct {
	UserID      int    `json:"userId"`
	Username    string `json:"username"`
	Email       string `json:"email"`
	DisplayName string `json:"displayName"`
}

// NewUser is a user about to be stored, password already hashed.
type NewUser struct {
	Username     string
	Email        string
	PasswordHash string
	DisplayName  string
	IsSuperuser  bool
	CreatedAt    time.Time
}
