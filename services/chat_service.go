package services

import (
	"context"

	"fitmatch_server/models"
	"fitmatch_server/store"

	"github.com/rs/zerolog"
)

// ChatService handles messages and the conversation inbox.
type ChatService struct {
	Store  store.Store
	Logger zerolog.Logger
}

// SendMessage stores a new message on a match. Match and sender existence are
// not verified, matching the store contract.
func (s *ChatService) SendMessage(ctx context.Context, input models.CreateMessageInput) (models.Message, error) {
	message := s.Store.CreateMessage(input.MatchID, input.SenderID, input.Content)
	s.Logger.Info().
		Str("messageId", message.ID).
		Str("matchId", message.MatchID).
		Str("senderId", message.SenderID).
		Msg("message sent")
	return message, nil
}

// GetMatchMessages returns a match's messages oldest first.
func (s *ChatService) GetMatchMessages(ctx context.Context, matchID string) ([]models.Message, error) {
	return s.Store.GetMatchMessages(matchID), nil
}

// GetUserConversations returns the user's inbox, most recent first.
func (s *ChatService) GetUserConversations(ctx context.Context, userID string) ([]models.Conversation, error) {
	return s.Store.GetUserConversations(userID), nil
}
