package utils

import (
	"time"

	"github.com/go-resty/resty/v2"
)

const (
	defaultClientRetries  = 2
	defaultClientWaitTime = 200 * time.Millisecond
)

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly,
// while allowing extension with additional application-specific behavior.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient returns a resty client with the given timeout that retries
// transport failures and 503 answers. Request bodies are allowed on GET
// because the relay reads the decryption password from the body.
//
// Example usage:
//
//	client := utils.NewHTTPClient(10 * time.Second)
//	resp, err := client.R().Get("http://localhost:8080/health")
func NewHTTPClient(timeout time.Duration) *HTTPClient {
	client := resty.New().
		SetAllowGetMethodPayload(true).
		SetRetryCount(defaultClientRetries).
		SetRetryWaitTime(defaultClientWaitTime).
		AddRetryCondition(func(resp *resty.Response, err error) bool {
			if err != nil {
				return true
			}
			return resp.StatusCode() == 503
		})

	if timeout > 0 {
		client.SetTimeout(timeout)
	}

	return &HTTPClient{Client: client}
}
