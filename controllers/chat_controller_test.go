package controllers_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"fitmatch_server/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChatEndpoints(t *testing.T) {
	t.Run("CreateMessage", func(t *testing.T) {
		router, memStore := newTestServer()
		match := memStore.CreateMatch("u1", "u2", models.MatchStatusAccepted)

		w := doJSON(t, router, http.MethodPost, "/api/messages", map[string]string{
			"matchId":  match.ID,
			"senderId": "u1",
			"content":  "hey there",
		})
		require.Equal(t, http.StatusCreated, w.Code)

		var message models.Message
		require.NoError(t, json.NewDecoder(w.Body).Decode(&message))
		assert.NotEmpty(t, message.ID)
		assert.Equal(t, "hey there", message.Content)
		assert.False(t, message.Timestamp.IsZero())
	})

	t.Run("CreateMessageMissingContent", func(t *testing.T) {
		router, _ := newTestServer()

		w := doJSON(t, router, http.MethodPost, "/api/messages", map[string]string{
			"matchId": "m1", "senderId": "u1",
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("GetMatchMessagesOrdered", func(t *testing.T) {
		router, memStore := newTestServer()
		match := memStore.CreateMatch("u1", "u2", models.MatchStatusAccepted)
		memStore.CreateMessage(match.ID, "u1", "A")
		memStore.CreateMessage(match.ID, "u2", "B")
		memStore.CreateMessage(match.ID, "u1", "C")

		w := doJSON(t, router, http.MethodGet, "/api/matches/"+match.ID+"/messages", nil)
		require.Equal(t, http.StatusOK, w.Code)

		var messages []models.Message
		require.NoError(t, json.NewDecoder(w.Body).Decode(&messages))
		require.Len(t, messages, 3)
		assert.Equal(t, "A", messages[0].Content)
		assert.Equal(t, "C", messages[2].Content)
	})

	t.Run("GetUserConversations", func(t *testing.T) {
		router, memStore := newTestServer()
		u1 := memStore.CreateUser(models.CreateUserInput{Name: "Alex", Email: "alex@test.com"})
		u2 := memStore.CreateUser(models.CreateUserInput{Name: "Sarah", Email: "sarah@test.com"})
		match := memStore.CreateMatch(u1.ID, u2.ID, models.MatchStatusAccepted)
		memStore.CreateMessage(match.ID, u1.ID, "hi")
		last := memStore.CreateMessage(match.ID, u2.ID, "hi back")

		w := doJSON(t, router, http.MethodGet, "/api/users/"+u1.ID+"/conversations", nil)
		require.Equal(t, http.StatusOK, w.Code)

		var conversations []models.Conversation
		require.NoError(t, json.NewDecoder(w.Body).Decode(&conversations))
		require.Len(t, conversations, 1)
		assert.Equal(t, last.ID, conversations[0].LastMessage.ID)
		assert.Equal(t, u2.ID, conversations[0].OtherUser.ID)
	})

	t.Run("ConversationsEmptyWithoutMessages", func(t *testing.T) {
		router, memStore := newTestServer()
		u1 := memStore.CreateUser(models.CreateUserInput{Name: "Alex", Email: "alex@test.com"})
		u2 := memStore.CreateUser(models.CreateUserInput{Name: "Sarah", Email: "sarah@test.com"})
		memStore.CreateMatch(u1.ID, u2.ID, models.MatchStatusAccepted)

		w := doJSON(t, router, http.MethodGet, "/api/users/"+u1.ID+"/conversations", nil)
		require.Equal(t, http.StatusOK, w.Code)

		var conversations []models.Conversation
		require.NoError(t, json.NewDecoder(w.Body).Decode(&conversations))
		assert.Empty(t, conversations)
	})
}
