package models

// ConnectivityOutcome classifies the result of a connectivity test.
type ConnectivityOutcome string

const (
	ConnectivitySuccess ConnectivityOutcome = "success"
	ConnectivityTimeout ConnectivityOutcome = "timeout"
	ConnectivityFailure ConnectivityOutcome = "failure"
)

// Messages reported for each connectivity outcome.
const (
	MsgConnectionSuccessful = "Connection successful"
	MsgInvalidResponse      = "Invalid response from firewall"
	MsgConnectionTimeout    = "Connection timeout"
	MsgConnectionFailed     = "Connection failed"
)

// ConnectivityResult is the outcome of a minimal query against a firewall.
type ConnectivityResult struct {
	Outcome  ConnectivityOutcome `json:"outcome"`
	Message  string              `json:"message"`
	Hostname string              `json:"hostname,omitempty"`
}

// Success reports whether the firewall answered with a valid response.
func (r ConnectivityResult) Success() bool {
	return r.Outcome == ConnectivitySuccess
}

// FirewallTarget is the resolved address and plaintext API key of a firewall.
type FirewallTarget struct {
	Address string
	APIKey  string
}
