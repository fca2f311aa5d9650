package models

import "time"

// Match statuses
const (
	MatchStatusPending  = "pending"
	MatchStatusAccepted = "accepted"
	MatchStatusDeclined = "declined"
)

// Match is a proposed or confirmed pairing between two users.
// UserID1/UserID2 are stored in canonical order (smaller id first) so the
// pair is compared as unordered.
type Match struct {
	ID        string    `json:"id"`
	UserID1   string    `json:"userId1"`
	UserID2   string    `json:"userId2"`
	Status    string    `json:"status"` // pending, accepted, declined
	CreatedAt time.Time `json:"createdAt"`
}

// Involves reports whether userID is one of the match participants.
func (m *Match) Involves(userID string) bool {
	return m.UserID1 == userID || m.UserID2 == userID
}

// OtherUser returns the participant that is not userID.
func (m *Match) OtherUser(userID string) string {
	if m.UserID1 == userID {
		return m.UserID2
	}
	return m.UserID1
}

// CreateMatchInput carries the fields accepted when creating a match.
// Status defaults to pending when omitted.
type CreateMatchInput struct {
	UserID1 string `json:"userId1" validate:"required"`
	UserID2 string `json:"userId2" validate:"required"`
	Status  string `json:"status" validate:"omitempty,oneof=pending accepted declined"`
}

// UpdateMatchStatusInput resolves a match request.
type UpdateMatchStatusInput struct {
	Status string `json:"status" validate:"required,oneof=accepted declined"`
}
