package utils

import (
	"time"

	"github.com/go-resty/resty/v2"
)

// HTTPClient is the resty client shared by the outbound HTTP integrations:
// the client's server adapter and the Google identity provider.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient returns a client that asks for JSON and gives up after
// timeout. With an empty baseURL request URLs must be absolute.
//
//	client := utils.NewHTTPClient("http://localhost:8080", 10*time.Second)
//	resp, err := client.R().Get("/version")
func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	client := resty.New().
		SetTimeout(timeout).
		SetHeader("Accept", "application/json")
	if baseURL != "" {
		client.SetBaseURL(baseURL)
	}
	return &HTTPClient{Client: client}
}
