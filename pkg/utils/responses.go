package utils

import (
	"encoding/json"
	"net/http"
)

type dataResponse struct {
	Data any `json:"data"`
}

type messageResponse struct {
	Message string `json:"message"`
}

type errorMessageResponse struct {
	ErrorMessage string `json:"errorMessage"`
}

// ResponseJSON writes payload as JSON with custom status code
func ResponseJSON(w http.ResponseWriter, code int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(payload)
}

// ResponseData writes a {"data": ...} body. A nil data marshals to
// {"data":null}, which the review detail endpoint relies on.
func ResponseData(w http.ResponseWriter, code int, data any) {
	ResponseJSON(w, code, dataResponse{Data: data})
}

// ResponseMessage writes a {"message": ...} body
func ResponseMessage(w http.ResponseWriter, code int, message string) {
	ResponseJSON(w, code, messageResponse{Message: message})
}

// ResponseErrorMessage writes a {"errorMessage": ...} body. Only the review
// missing-field failures use this key; every other error uses "message".
func ResponseErrorMessage(w http.ResponseWriter, code int, message string) {
	ResponseJSON(w, code, errorMessageResponse{ErrorMessage: message})
}
