package utils

import (
	"crypto/tls"
	"time"

	"github.com/go-resty/resty/v2"
)

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly,
// while allowing extension with additional application-specific behavior.
//
// Example usage:
//
//	client := utils.NewHTTPClient()
//	resp, err := client.R().Get("https://example.com")
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient creates and returns a new HTTPClient instance
// with a default-configured underlying resty.Client.
//
// Each call returns an independent client instance with its own
// configuration, connection pool, and state.
func NewHTTPClient() *HTTPClient {
	return &HTTPClient{Client: resty.New()}
}

// NewFirewallHTTPClient returns an HTTPClient tuned for firewall management
// APIs: a per-request timeout and, unless verifyTLS is set, acceptance of
// the self-signed certificates firewalls ship with.
//
// Example usage:
//
//	client := utils.NewFirewallHTTPClient(10*time.Second, false)
func NewFirewallHTTPClient(timeout time.Duration, verifyTLS bool) *HTTPClient {
	client := NewHTTPClient()
	client.SetTimeout(timeout)
	if !verifyTLS {
		client.SetTLSClientConfig(&tls.Config{InsecureSkipVerify: true})
	}
	return client
}
