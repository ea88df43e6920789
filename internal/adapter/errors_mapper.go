package adapter

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
)

func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}
	return newStatusError(resp.StatusCode(), resp.Body())
}

func newStatusError(status int, body []byte) *StatusError {
	return NewStatusError(status, messageFromBody(status, body))
}

// messageFromBody reads {"error": "..."}; verify-token rejections carry the
// same field next to "valid".
func messageFromBody(status int, body []byte) string {
	var payload struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(body, &payload); err == nil && payload.Error != "" {
		return payload.Error
	}

	if msg := strings.TrimSpace(string(body)); msg != "" {
		return msg
	}
	return http.StatusText(status)
}
