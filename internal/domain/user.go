package domain

import (
	"context"
	"errors"
	"time"
)

// Common domain errors
var ErrNotFound = errors.New("resource not found")

type User struct {
	ID          int64     `json:"id"`
	Email       string    `json:"email"`
	Password    string    `json:"-"`
	FirstName   string    `json:"first_name"`
	LastName    string    `json:"last_name"`
	PhoneNumber *string   `json:"phone_number"`
	ImageURL    *string   `json:"image_url"`
	UserType    string    `json:"user_type"`
	IsConfirmed bool      `json:"is_confirmed"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// UpdateUserInput applies only its non-nil fields. ID and email are fixed at
// registration and identify the row to touch.
type UpdateUserInput struct {
	UserID      int64   `json:"-"`
	Email       string  `json:"-"`
	FirstName   *string `json:"first_name"`
	LastName    *string `json:"last_name"`
	PhoneNumber *string `json:"phone_number"`
	ImageURL    *string `json:"image_url"`
	Password    *string `json:"password"`
}

type UserRepository interface {
	GetByEmail(ctx context.Context, email string) (*User, error)
	GetByID(ctx context.Context, id int64) (*User, error)
	Update(ctx context.Context, in *UpdateUserInput) error
	Confirm(ctx context.Context, userID int64) error
}

type UserUsecase interface {
	GetByEmail(ctx context.Context, email string) (*User, error)
	UpdateProfile(ctx context.Context, in *UpdateUserInput) error
	ConfirmEmail(ctx context.Context, token string) error
}
