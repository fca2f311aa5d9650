package controllers

import (
	"net/http"

	"fitmatch_server/helpers"
	"fitmatch_server/models"
	"fitmatch_server/services"

	"github.com/gorilla/mux"
)

// UserController handles HTTP requests for user profiles
type UserController struct {
	UserService *services.UserService
}

// NewUserController creates a new UserController instance
func NewUserController(userService *services.UserService) *UserController {
	return &UserController{UserService: userService}
}

// GetAllUsers handles fetching every user
func (uc *UserController) GetAllUsers(w http.ResponseWriter, r *http.Request) {
	users, err := uc.UserService.GetAllUsers(r.Context())
	if err != nil {
		helpers.WriteErrorResponse(w, http.StatusInternalServerError, "Failed to fetch users")
		return
	}
	helpers.WriteJSONResponse(w, http.StatusOK, users)
}

// GetUser handles fetching a single user by id
func (uc *UserController) GetUser(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	user, err := uc.UserService.GetUser(r.Context(), id)
	if err != nil {
		helpers.WriteAppError(w, err)
		return
	}
	helpers.WriteJSONResponse(w, http.StatusOK, user)
}

// CreateUser handles creating a new user profile
func (uc *UserController) CreateUser(w http.ResponseWriter, r *http.Request) {
	var input models.CreateUserInput
	if err := decodeAndValidate(r, &input); err != nil {
		helpers.WriteErrorResponse(w, http.StatusBadRequest, "Invalid user data")
		return
	}

	user, err := uc.UserService.CreateUser(r.Context(), input)
	if err != nil {
		helpers.WriteAppError(w, err)
		return
	}
	helpers.WriteJSONResponse(w, http.StatusCreated, user)
}

// UpdateUser handles a partial profile update
func (uc *UserController) UpdateUser(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var updates models.UpdateUserInput
	if err := decodeAndValidate(r, &updates); err != nil {
		helpers.WriteErrorResponse(w, http.StatusBadRequest, "Invalid update data")
		return
	}

	user, err := uc.UserService.UpdateUser(r.Context(), id, updates)
	if err != nil {
		helpers.WriteAppError(w, err)
		return
	}
	helpers.WriteJSONResponse(w, http.StatusOK, user)
}

// GetNearbyUsers handles fetching every user except the requester
func (uc *UserController) GetNearbyUsers(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	users, err := uc.UserService.GetUsersNearby(r.Context(), id)
	if err != nil {
		helpers.WriteErrorResponse(w, http.StatusInternalServerError, "Failed to fetch nearby users")
		return
	}
	helpers.WriteJSONResponse(w, http.StatusOK, users)
}

// UpdateOnlineStatus handles toggling a user's online flag. Unknown ids
// succeed silently, matching the store contract.
func (uc *UserController) UpdateOnlineStatus(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var input models.UpdateOnlineStatusInput
	if err := decodeAndValidate(r, &input); err != nil {
		helpers.WriteErrorResponse(w, http.StatusBadRequest, "Invalid status data")
		return
	}

	if err := uc.UserService.SetOnlineStatus(r.Context(), id, *input.IsOnline); err != nil {
		helpers.WriteAppError(w, err)
		return
	}
	helpers.WriteJSONResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}
