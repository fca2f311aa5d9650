package routes

import (
	"fitmatch_server/controllers"
	"fitmatch_server/services"

	"github.com/gorilla/mux"
)

// RegisterMatchRoutes sets up routes for match operations
func RegisterMatchRoutes(r *mux.Router, matchService *services.MatchService) {
	controller := controllers.NewMatchController(matchService)

	matchRouter := r.PathPrefix("/api/matches").Subrouter()

	matchRouter.HandleFunc("", controller.CreateMatch).Methods("POST")
	matchRouter.HandleFunc("/{id}", controller.UpdateMatchStatus).Methods("PUT")

	// a user's matches live under the users prefix
	r.HandleFunc("/api/users/{id}/matches", controller.GetUserMatches).Methods("GET")
}
