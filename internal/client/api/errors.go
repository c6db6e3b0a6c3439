package api

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/credkarma/credkarma/internal/models"
)

// ServerError is a non-2xx response from the backend. Message holds the
// server-reported text verbatim and is what gets shown to the user.
type ServerError struct {
	StatusCode int
	Message    string
	Errors     []models.FieldError
}

func (e *ServerError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("server returned status %d", e.StatusCode)
}

// decodeServerError reads a failed response into a *ServerError. A body that
// is not the documented {message, errors?} payload degrades to a generic
// status message rather than an error about the error.
func decodeServerError(resp *http.Response) error {
	serr := &ServerError{StatusCode: resp.StatusCode}
	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err == nil && len(body) > 0 {
		var payload models.ErrorResponse
		if json.Unmarshal(body, &payload) == nil && payload.Message != "" {
			serr.Message = payload.Message
			serr.Errors = payload.Errors
		}
	}
	return serr
}
