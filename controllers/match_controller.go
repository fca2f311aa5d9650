package controllers

import (
	"net/http"

	"fitmatch_server/helpers"
	"fitmatch_server/models"
	"fitmatch_server/services"

	"github.com/gorilla/mux"
)

// MatchController handles HTTP requests for match operations
type MatchController struct {
	MatchService *services.MatchService
}

// NewMatchController creates a new MatchController instance
func NewMatchController(matchService *services.MatchService) *MatchController {
	return &MatchController{MatchService: matchService}
}

// CreateMatch handles creating a match between two users
func (mc *MatchController) CreateMatch(w http.ResponseWriter, r *http.Request) {
	var input models.CreateMatchInput
	if err := decodeAndValidate(r, &input); err != nil {
		helpers.WriteErrorResponse(w, http.StatusBadRequest, "Invalid match data")
		return
	}

	match, err := mc.MatchService.CreateMatch(r.Context(), input)
	if err != nil {
		helpers.WriteAppError(w, err)
		return
	}
	helpers.WriteJSONResponse(w, http.StatusCreated, match)
}

// UpdateMatchStatus handles accepting or declining a match request
func (mc *MatchController) UpdateMatchStatus(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var input models.UpdateMatchStatusInput
	if err := decodeAndValidate(r, &input); err != nil {
		helpers.WriteErrorResponse(w, http.StatusBadRequest, "Invalid status")
		return
	}

	match, err := mc.MatchService.UpdateStatus(r.Context(), id, input.Status)
	if err != nil {
		helpers.WriteAppError(w, err)
		return
	}
	helpers.WriteJSONResponse(w, http.StatusOK, match)
}

// GetUserMatches handles fetching every match a user participates in
func (mc *MatchController) GetUserMatches(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	matches, err := mc.MatchService.GetUserMatches(r.Context(), id)
	if err != nil {
		helpers.WriteErrorResponse(w, http.StatusInternalServerError, "Failed to fetch matches")
		return
	}
	helpers.WriteJSONResponse(w, http.StatusOK, matches)
}
