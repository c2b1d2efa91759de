package rest

import (
	"encoding/json"
	"net/http"
)

type SuccessResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data"`
}

func WriteJSON(w http.ResponseWriter, statusCode int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(body)
}

func WriteSuccess(w http.ResponseWriter, statusCode int, data interface{}) {
	WriteJSON(w, statusCode, SuccessResponse{Success: true, Data: data})
}

// DecodeJSON rejects unknown fields so client typos fail loudly instead of
// silently defaulting.
func DecodeJSON(r *http.Request, dst interface{}) error {
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	return decoder.Decode(dst)
}

// WriteBadRequest reports malformed payloads that never reached the domain.
func WriteBadRequest(w http.ResponseWriter, message string) {
	WriteJSON(w, http.StatusBadRequest, ErrorResponse{
		Error: ErrorDetail{
			Code:    "MALFORMED_REQUEST",
			Message: message,
		},
	})
}
