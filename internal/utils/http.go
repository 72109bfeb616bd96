package utils

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/thingfulapp/thingful-server/models"
)

// WriteJSON serializes data to JSON and writes it to the HTTP response with
// the given status code, setting the "Content-Type" header to
// "application/json".
//
// If marshaling fails, it responds with 500 Internal Server Error and
// returns a wrapped error.
func WriteJSON(w http.ResponseWriter, data any, statusCode int) (int, error) {
	jsonData, err := json.Marshal(data)
	if err != nil {
		http.Error(w, "error writing data to JSON", http.StatusInternalServerError)
		return 0, fmt.Errorf("error writing data to JSON: %w", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	return w.Write(jsonData)
}

// WriteJSONError writes the uniform `{"error": message}` body used by every
// endpoint for client-visible failures.
func WriteJSONError(w http.ResponseWriter, message string, statusCode int) {
	_, _ = WriteJSON(w, models.ErrorResponse{Error: message}, statusCode)
}
