package controllers

import (
	"encoding/json"
	"errors"
	"net/http"

	"fitmatch_server/helpers"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// decodeAndValidate parses a JSON request body into dst and runs its
// validation tags.
func decodeAndValidate(r *http.Request, dst interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return errors.New("malformed JSON body")
	}
	return validate.Struct(dst)
}

// HealthCheckHandler provides a basic health check
func HealthCheckHandler(w http.ResponseWriter, r *http.Request) {
	helpers.WriteJSONResponse(w, http.StatusOK, map[string]string{"status": "healthy"})
}

// WelcomeHandler provides a welcome message
func WelcomeHandler(w http.ResponseWriter, r *http.Request) {
	helpers.WriteJSONResponse(w, http.StatusOK, map[string]string{"message": "Welcome to the FitMatch API"})
}
