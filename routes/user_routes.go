package routes

import (
	"fitmatch_server/controllers"
	"fitmatch_server/services"

	"github.com/gorilla/mux"
)

// RegisterUserRoutes sets up routes for user operations under /api/users
func RegisterUserRoutes(r *mux.Router, userService *services.UserService) {
	controller := controllers.NewUserController(userService)

	userRouter := r.PathPrefix("/api/users").Subrouter()

	userRouter.HandleFunc("", controller.GetAllUsers).Methods("GET")
	userRouter.HandleFunc("", controller.CreateUser).Methods("POST")
	userRouter.HandleFunc("/{id}", controller.GetUser).Methods("GET")
	userRouter.HandleFunc("/{id}", controller.UpdateUser).Methods("PUT")
	userRouter.HandleFunc("/{id}/nearby", controller.GetNearbyUsers).Methods("GET")
	userRouter.HandleFunc("/{id}/status", controller.UpdateOnlineStatus).Methods("PUT")
}
