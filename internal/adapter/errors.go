package adapter

import "errors"

var (
	// ErrInvalidAddress is returned when a target address cannot be turned
	// into an HTTPS base URL.
	ErrInvalidAddress = errors.New("invalid firewall address")

	// ErrUnauthorized is returned when the firewall rejects the API key.
	ErrUnauthorized = errors.New("firewall rejected api key")

	// ErrNotFound is returned for a 404 from the firewall.
	ErrNotFound = errors.New("firewall endpoint not found")

	// ErrUnexpectedStatus is returned for any other non-2xx status.
	ErrUnexpectedStatus = errors.New("unexpected firewall response status")

	// ErrInvalidResponse is returned when the body cannot be parsed.
	ErrInvalidResponse = errors.New("invalid firewall response")

	// ErrCommandFailed is returned when the firewall answers with
	// status="error" or a status other than success.
	ErrCommandFailed = errors.New("firewall command failed")

	// ErrInterfaceNotFound is returned when the counters response does not
	// contain the requested interface.
	ErrInterfaceNotFound = errors.New("interface not found")
)
