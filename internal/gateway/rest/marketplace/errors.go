package marketplace

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// ErrBackendUnreachable marks transport-level failures where no response
// arrived from the marketplace at all.
var ErrBackendUnreachable = errors.New("marketplace backend unreachable")

const maxErrorBody = 4 << 10

// StatusError carries the HTTP status and the backend-provided message for
// any non-2xx response.
type StatusError struct {
	Code    int
	Message string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("marketplace responded %d: %s", e.Code, e.Message)
}

func newStatusError(resp *http.Response) error {
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))

	// Бэкенд отдает {"message": "..."}, но на 500 может прийти и plain text
	var payload struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	_ = json.Unmarshal(raw, &payload)

	msg := payload.Message
	if msg == "" {
		msg = payload.Error
	}
	if msg == "" {
		msg = strings.TrimSpace(string(raw))
	}
	if msg == "" {
		msg = http.StatusText(resp.StatusCode)
	}

	return &StatusError{Code: resp.StatusCode, Message: msg}
}
