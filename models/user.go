package models

import "time"

// User defines the structure for user profiles
type User struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Email         string    `json:"email"`
	Age           string    `json:"age"`
	Bio           string    `json:"bio"`
	Location      string    `json:"location"`
	ProfilePhoto  string    `json:"profilePhoto"`
	WorkoutTypes  []string  `json:"workoutTypes"`
	PreferredTime string    `json:"preferredTime"`
	IsOnline      bool      `json:"isOnline"`
	LastSeen      time.Time `json:"lastSeen"`
	CreatedAt     time.Time `json:"createdAt"`
}

// CreateUserInput carries the fields accepted when creating a user.
// The store assigns id and timestamps.
type CreateUserInput struct {
	Name          string   `json:"name" validate:"required"`
	Email         string   `json:"email" validate:"required,email"`
	Age           string   `json:"age" validate:"required"`
	Bio           string   `json:"bio" validate:"required"`
	Location      string   `json:"location" validate:"required"`
	ProfilePhoto  string   `json:"profilePhoto" validate:"required"`
	WorkoutTypes  []string `json:"workoutTypes" validate:"required"`
	PreferredTime string   `json:"preferredTime" validate:"required"`
	IsOnline      bool     `json:"isOnline"`
}

// UpdateUserInput is a partial update: nil fields are left untouched.
type UpdateUserInput struct {
	Name          *string   `json:"name"`
	Email         *string   `json:"email" validate:"omitempty,email"`
	Age           *string   `json:"age"`
	Bio           *string   `json:"bio"`
	Location      *string   `json:"location"`
	ProfilePhoto  *string   `json:"profilePhoto"`
	WorkoutTypes  *[]string `json:"workoutTypes"`
	PreferredTime *string   `json:"preferredTime"`
	IsOnline      *bool     `json:"isOnline"`
}

// UpdateOnlineStatusInput toggles a user's online flag.
type UpdateOnlineStatusInput struct {
	IsOnline *bool `json:"isOnline" validate:"required"`
}
