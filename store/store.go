package store

import "fitmatch_server/models"

// Store is the contract the services program against. The only implementation
// today is the in-memory one; the seam exists so a database-backed store can
// be dropped in without touching the service layer.
type Store interface {
	// User operations
	CreateUser(input models.CreateUserInput) models.User
	GetUser(id string) *models.User
	GetUserByEmail(email string) *models.User
	UpdateUser(id string, updates models.UpdateUserInput) *models.User
	GetAllUsers() []models.User
	GetUsersNearby(userID string) []models.User
	UpdateUserOnlineStatus(id string, isOnline bool)

	// Match operations
	CreateMatch(userID1, userID2, status string) models.Match
	GetMatch(id string) *models.Match
	GetMatchBetweenUsers(userID1, userID2 string) *models.Match
	UpdateMatchStatus(id, status string) *models.Match
	GetUserMatches(userID string) []models.Match

	// Message operations
	CreateMessage(matchID, senderID, content string) models.Message
	GetMessage(id string) *models.Message
	GetMatchMessages(matchID string) []models.Message
	GetUserConversations(userID string) []models.Conversation
}
