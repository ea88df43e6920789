package utils

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-job-board/models"
)

// fallbackBody is sent when the payload itself cannot be encoded.
var fallbackBody = []byte(`{"error":"internal server error"}`)

// WriteJSON encodes data and writes it with the given status code and a
// JSON content type. If data cannot be encoded the client gets a 500 with
// a generic error body and the encoding error is returned.
//
//	WriteJSON(w, result.View(), http.StatusOK)
func WriteJSON(w http.ResponseWriter, data any, statusCode int) (int, error) {
	w.Header().Set("Content-Type", "application/json")

	jsonData, err := json.Marshal(data)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write(fallbackBody)
		return 0, fmt.Errorf("error writing data to JSON: %w", err)
	}

	w.WriteHeader(statusCode)
	return w.Write(jsonData)
}

// WriteError writes the {"error": msg} body every failing endpoint returns.
func WriteError(w http.ResponseWriter, msg string, statusCode int) {
	_, _ = WriteJSON(w, models.ErrorResponse{Error: msg}, statusCode)
}
