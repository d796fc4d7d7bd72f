package httputil

import (
	"encoding/json"
	"net/http"
	"strings"

	"go.uber.org/zap"
)

// ErrorResponse represents an API error response
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
	Code    int    `json:"code"`
}

// RespondJSON sends a JSON response
func RespondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			http.Error(w, "failed to encode response", http.StatusInternalServerError)
		}
	}
}

// RespondError sends an error response
func RespondError(w http.ResponseWriter, status int, err error, message string) {
	RespondJSON(w, status, ErrorResponse{
		Error:   err.Error(),
		Message: message,
		Code:    status,
	})
}

// RespondErrorMessage sends an error response with just a message
func RespondErrorMessage(w http.ResponseWriter, status int, message string) {
	RespondJSON(w, status, ErrorResponse{
		Error: message,
		Code:  status,
	})
}

// CheckETag sets a weak ETag on the response and reports whether the
// request's If-None-Match already matches it. When it does, a 304 has been
// written and the caller must not write a body.
//
// The tag is weak because the same body may go out gzip-encoded or not.
// If-None-Match uses weak comparison, so a strong candidate also matches.
func CheckETag(w http.ResponseWriter, r *http.Request, tag string) bool {
	opaque := `"` + tag + `"`
	w.Header().Set("ETag", "W/"+opaque)

	for _, candidate := range strings.Split(r.Header.Get("If-None-Match"), ",") {
		candidate = strings.TrimSpace(candidate)
		if strings.TrimPrefix(candidate, "W/") == opaque || candidate == "*" {
			w.WriteHeader(http.StatusNotModified)
			return true
		}
	}
	return false
}

// LogError logs an error with context
func LogError(logger *zap.Logger, err error, message string, fields ...zap.Field) {
	allFields := append([]zap.Field{zap.Error(err)}, fields...)
	logger.Error(message, allFields...)
}
