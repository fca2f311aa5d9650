package controllers

import (
	"net/http"

	"fitmatch_server/helpers"
	"fitmatch_server/models"
	"fitmatch_server/services"

	"github.com/gorilla/mux"
)

// ChatController handles HTTP requests for messages and conversations
type ChatController struct {
	ChatService *services.ChatService
}

// NewChatController creates a new ChatController instance
func NewChatController(chatService *services.ChatService) *ChatController {
	return &ChatController{ChatService: chatService}
}

// CreateMessage handles sending a message on a match
func (cc *ChatController) CreateMessage(w http.ResponseWriter, r *http.Request) {
	var input models.CreateMessageInput
	if err := decodeAndValidate(r, &input); err != nil {
		helpers.WriteErrorResponse(w, http.StatusBadRequest, "Invalid message data")
		return
	}

	message, err := cc.ChatService.SendMessage(r.Context(), input)
	if err != nil {
		helpers.WriteAppError(w, err)
		return
	}
	helpers.WriteJSONResponse(w, http.StatusCreated, message)
}

// GetMatchMessages handles fetching a match's messages, oldest first
func (cc *ChatController) GetMatchMessages(w http.ResponseWriter, r *http.Request) {
	matchID := mux.Vars(r)["matchId"]

	messages, err := cc.ChatService.GetMatchMessages(r.Context(), matchID)
	if err != nil {
		helpers.WriteErrorResponse(w, http.StatusInternalServerError, "Failed to fetch messages")
		return
	}
	helpers.WriteJSONResponse(w, http.StatusOK, messages)
}

// GetUserConversations handles fetching a user's inbox, most recent first
func (cc *ChatController) GetUserConversations(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	conversations, err := cc.ChatService.GetUserConversations(r.Context(), id)
	if err != nil {
		helpers.WriteErrorResponse(w, http.StatusInternalServerError, "Failed to fetch conversations")
		return
	}
	helpers.WriteJSONResponse(w, http.StatusOK, conversations)
}
