package models

// Conversation is the inbox view of an accepted match: the match itself, its
// most recent message and the counterpart user.
type Conversation struct {
	Match       Match   `json:"match"`
	LastMessage Message `json:"lastMessage"`
	OtherUser   User    `json:"otherUser"`
}
