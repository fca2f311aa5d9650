package helpers

import (
	"encoding/json"
	"net/http"

	"fitmatch_server/apperrors"
)

// WriteJSONResponse writes a JSON body with the given status code.
func WriteJSONResponse(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload != nil {
		_ = json.NewEncoder(w).Encode(payload)
	}
}

// WriteErrorResponse writes the `{"error": ...}` envelope.
func WriteErrorResponse(w http.ResponseWriter, status int, msg string) {
	WriteJSONResponse(w, status, map[string]string{"error": msg})
}

// WriteAppError translates a service error into its HTTP response.
func WriteAppError(w http.ResponseWriter, err error) {
	WriteErrorResponse(w, apperrors.HTTPStatus(err), err.Error())
}
