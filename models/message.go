package models

import "time"

// Message belongs to exactly one match and is immutable once created.
type Message struct {
	ID        string    `json:"id"`
	MatchID   string    `json:"matchId"`
	SenderID  string    `json:"senderId"`
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
}

// CreateMessageInput carries the fields accepted when sending a message.
type CreateMessageInput struct {
	MatchID  string `json:"matchId" validate:"required"`
	SenderID string `json:"senderId" validate:"required"`
	Content  string `json:"content" validate:"required"`
}
