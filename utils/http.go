package utils

import (
	"encoding/json"
	"net/http"
)

// MessageResponse is the single-key payload the stub endpoints return.
type MessageResponse struct {
	Msg string `json:"msg"`
}

// ErrorResponse represents a structured error response
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// WriteJSON writes a JSON response with the given status code
func WriteJSON(w http.ResponseWriter, status int, data interface{}) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if data == nil {
		return nil
	}

	return json.NewEncoder(w).Encode(data)
}

// WriteMessage writes a 200 OK response with a {"msg": ...} body
func WriteMessage(w http.ResponseWriter, msg string) error {
	return WriteJSON(w, http.StatusOK, MessageResponse{Msg: msg})
}

// WriteNotFound writes a 404 Not Found response
func WriteNotFound(w http.ResponseWriter, message string) error {
	if message == "" {
		message = "Resource not found"
	}
	return WriteJSON(w, http.StatusNotFound, ErrorResponse{
		Error:   "not_found",
		Message: message,
	})
}
