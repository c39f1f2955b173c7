// Package response writes JSON envelopes for the formatd HTTP API.
package response

import (
	"encoding/json"
	"errors"
	"net/http"
)

// Envelope is the body of every JSON response.
type Envelope struct {
	Data  any          `json:"data,omitempty"`
	Meta  any          `json:"meta,omitempty"`
	Error *ErrorDetail `json:"error,omitempty"`
}

// ErrorDetail describes a failed request.
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message,omitempty"`
}

// JSON writes data with status 200.
func JSON(w http.ResponseWriter, data any) error {
	return write(w, http.StatusOK, Envelope{Data: data})
}

// JSONWithMeta writes data and meta with status 200.
func JSONWithMeta(w http.ResponseWriter, data, meta any) error {
	return write(w, http.StatusOK, Envelope{Data: data, Meta: meta})
}

// Error writes err. An HTTPError anywhere in the chain sets the status code
// and key; any other error is a 500 with its message.
func Error(w http.ResponseWriter, err error) error {
	status := http.StatusInternalServerError
	detail := &ErrorDetail{Code: ErrInternalServerError.Key, Message: err.Error()}

	var httpErr HTTPError
	if errors.As(err, &httpErr) {
		status = httpErr.Code
		detail.Code = httpErr.Key
		if err.Error() == httpErr.Key {
			detail.Message = http.StatusText(httpErr.Code)
		}
	}
	return write(w, status, Envelope{Error: detail})
}

func write(w http.ResponseWriter, status int, body Envelope) error {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	return json.NewEncoder(w).Encode(body)
}
