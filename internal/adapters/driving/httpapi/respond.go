package httpapi

import (
	"encoding/json"
	"net/http"
)

func setHeaders(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "no-store")
	w.Header().Set("X-Content-Type-Options", "nosniff")
}

// respondJSON writes payload with status 200.
func respondJSON(w http.ResponseWriter, payload any) {
	setHeaders(w)
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	_ = enc.Encode(payload)
}

// respondError writes a transport-level error.
func respondError(w http.ResponseWriter, status int, err error) {
	setHeaders(w)
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(struct {
		Success bool   `json:"success"`
		Error   string `json:"error"`
		Status  int    `json:"status"`
	}{
		Error:  err.Error(),
		Status: status,
	})
}

// failure is the body of a business failure, sent with status 200.
type failure struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
	TaskID  string `json:"task_id,omitempty"`
}

func respondFailure(w http.ResponseWriter, msg, taskID string) {
	respondJSON(w, failure{Error: msg, TaskID: taskID})
}
