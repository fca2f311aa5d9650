package routes

import (
	"fitmatch_server/controllers"
	"fitmatch_server/services"

	"github.com/gorilla/mux"
)

// RegisterChatRoutes sets up routes for messages and conversations
func RegisterChatRoutes(r *mux.Router, chatService *services.ChatService) {
	controller := controllers.NewChatController(chatService)

	r.HandleFunc("/api/messages", controller.CreateMessage).Methods("POST")
	r.HandleFunc("/api/matches/{matchId}/messages", controller.GetMatchMessages).Methods("GET")
	r.HandleFunc("/api/users/{id}/conversations", controller.GetUserConversations).Methods("GET")
}
