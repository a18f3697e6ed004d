package adapter

import (
	"context"
	"errors"
	"fmt"
	"net"

	"github.com/csmblade/PANfm/models"
)

// TestConnectivity implements [FirewallClient]. It runs `show system info`
// under the connect timeout and reports success only if the response names
// the firewall's hostname.
func (c *panosClient) TestConnectivity(ctx context.Context, target models.FirewallTarget) models.ConnectivityResult {
	if c.connectTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.connectTimeout)
		defer cancel()
	}

	root, err := c.op(ctx, target, "test-connection", cmdSystemInfo)
	result := classifyConnectivity(root, err)

	c.logger.Debug().
		Str("address", target.Address).
		Str("outcome", string(result.Outcome)).
		Msg("connectivity test finished")

	return result
}

func classifyConnectivity(root *xmlNode, err error) models.ConnectivityResult {
	switch {
	case err == nil:
		hostname := root.descendantText("hostname")
		if hostname == "" {
			return models.ConnectivityResult{Outcome: models.ConnectivityFailure, Message: models.MsgInvalidResponse}
		}
		return models.ConnectivityResult{
			Outcome:  models.ConnectivitySuccess,
			Message:  models.MsgConnectionSuccessful,
			Hostname: hostname,
		}
	case isTimeout(err):
		return models.ConnectivityResult{Outcome: models.ConnectivityTimeout, Message: models.MsgConnectionTimeout}
	case errors.Is(err, ErrUnauthorized),
		errors.Is(err, ErrNotFound),
		errors.Is(err, ErrUnexpectedStatus),
		errors.Is(err, ErrCommandFailed):
		return models.ConnectivityResult{Outcome: models.ConnectivityFailure, Message: models.MsgInvalidResponse}
	default:
		return models.ConnectivityResult{
			Outcome: models.ConnectivityFailure,
			Message: fmt.Sprintf("%s: %v", models.MsgConnectionFailed, err),
		}
	}
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}
