package utils

import (
	"github.com/go-resty/resty/v2"
)

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly.
//
// Example usage:
//
//	client := utils.NewHTTPClient("notepad-sync/1.0.0")
//	resp, err := client.R().Get("https://example.com")
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient creates and returns a new HTTPClient instance that sends
// userAgent with every request. resty's own retry machinery is disabled;
// callers own the retry policy.
//
// Each call returns an independent client instance with its own
// configuration, connection pool, and state.
func NewHTTPClient(userAgent string) *HTTPClient {
	client := resty.New().SetRetryCount(0)
	if userAgent != "" {
		client.SetHeader("User-Agent", userAgent)
	}

	return &HTTPClient{Client: client}
}
