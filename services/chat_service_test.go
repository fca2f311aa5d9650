package services

import (
	"context"
	"testing"

	"fitmatch_server/models"
	"fitmatch_server/store"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newChatFixture() (*ChatService, *store.MemoryStore) {
	s := store.NewMemoryStore()
	return &ChatService{Store: s, Logger: zerolog.Nop()}, s
}

func TestSendAndGetMessages(t *testing.T) {
	svc, s := newChatFixture()
	ctx := context.Background()
	match := s.CreateMatch("u1", "u2", models.MatchStatusAccepted)

	for _, content := range []string{"A", "B", "C"} {
		_, err := svc.SendMessage(ctx, models.CreateMessageInput{
			MatchID:  match.ID,
			SenderID: "u1",
			Content:  content,
		})
		require.NoError(t, err)
	}

	messages, err := svc.GetMatchMessages(ctx, match.ID)
	require.NoError(t, err)
	require.Len(t, messages, 3)
	assert.Equal(t, "A", messages[0].Content)
	assert.Equal(t, "B", messages[1].Content)
	assert.Equal(t, "C", messages[2].Content)
}

func TestConversationDerivation(t *testing.T) {
	svc, s := newChatFixture()
	ctx := context.Background()

	u1 := s.CreateUser(models.CreateUserInput{Name: "Alex", Email: "alex@test.com"})
	u2 := s.CreateUser(models.CreateUserInput{Name: "Sarah", Email: "sarah@test.com"})
	match := s.CreateMatch(u1.ID, u2.ID, models.MatchStatusAccepted)

	_, err := svc.SendMessage(ctx, models.CreateMessageInput{MatchID: match.ID, SenderID: u1.ID, Content: "hi"})
	require.NoError(t, err)
	m2, err := svc.SendMessage(ctx, models.CreateMessageInput{MatchID: match.ID, SenderID: u2.ID, Content: "hi back"})
	require.NoError(t, err)

	conversations, err := svc.GetUserConversations(ctx, u1.ID)
	require.NoError(t, err)
	require.Len(t, conversations, 1)
	assert.Equal(t, m2.ID, conversations[0].LastMessage.ID)
	assert.Equal(t, u2.ID, conversations[0].OtherUser.ID)
}

func TestConversationsExcludePendingAndEmpty(t *testing.T) {
	svc, s := newChatFixture()
	ctx := context.Background()

	u1 := s.CreateUser(models.CreateUserInput{Name: "Alex", Email: "alex@test.com"})
	u2 := s.CreateUser(models.CreateUserInput{Name: "Sarah", Email: "sarah@test.com"})
	u3 := s.CreateUser(models.CreateUserInput{Name: "Mike", Email: "mike@test.com"})

	// pending with messages: excluded
	pending := s.CreateMatch(u1.ID, u2.ID, models.MatchStatusPending)
	_, err := svc.SendMessage(ctx, models.CreateMessageInput{MatchID: pending.ID, SenderID: u2.ID, Content: "hi"})
	require.NoError(t, err)

	// accepted with no messages: excluded
	s.CreateMatch(u1.ID, u3.ID, models.MatchStatusAccepted)

	conversations, err := svc.GetUserConversations(ctx, u1.ID)
	require.NoError(t, err)
	assert.Empty(t, conversations)
}
