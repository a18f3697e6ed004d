// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The PANfm Authors

package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/csmblade/PANfm/internal/config"
	"github.com/csmblade/PANfm/internal/logger"
	"github.com/csmblade/PANfm/internal/metrics"
	"github.com/csmblade/PANfm/internal/utils"
	"github.com/csmblade/PANfm/models"
	"github.com/go-resty/resty/v2"
)

const (
	opPath            = "/api/"
	securityRulesPath = "/restapi/v11.0/Policies/SecurityRules"
	defaultVsys       = "vsys1"
	apiKeyHeader      = "X-PAN-KEY"
	callResultOK      = "ok"
	callResultError   = "error"
)

type panosClient struct {
	client *utils.HTTPClient

	connectTimeout time.Duration

	recorder CallRecorder
	logger   *logger.Logger
}

// NewPANOSClient constructs a PAN-OS implementation of [FirewallClient].
// Requests use cfg.RequestTimeout, connectivity tests use cfg.ConnectTimeout,
// and certificate verification is skipped unless cfg.VerifyTLS is set since
// firewalls ship with self-signed management certificates.
//
// recorder is notified once per request issued; it may be nil.
func NewPANOSClient(cfg config.Firewall, recorder CallRecorder, logger *logger.Logger) FirewallClient {
	if recorder == nil {
		recorder = noopRecorder{}
	}

	return &panosClient{
		client:         utils.NewFirewallHTTPClient(cfg.RequestTimeout, cfg.VerifyTLS),
		connectTimeout: cfg.ConnectTimeout,
		recorder:       recorder,
		logger:         logger,
	}
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("%w: empty address", ErrInvalidAddress)
	}

	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidAddress, err)
	}
	if u.Host == "" {
		return "", fmt.Errorf("%w: address must include host", ErrInvalidAddress)
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// op issues an operational command through the XML API and returns the
// parsed response root. A status="error" response is mapped to
// [ErrCommandFailed].
func (c *panosClient) op(ctx context.Context, target models.FirewallTarget, command, cmd string) (*xmlNode, error) {
	baseURL, err := normalizeBaseURL(target.Address)
	if err != nil {
		return nil, err
	}

	resp, err := c.send(command, func() (*resty.Response, error) {
		return c.client.R().
			SetContext(ctx).
			SetQueryParams(map[string]string{
				"type": "op",
				"cmd":  cmd,
				"key":  target.APIKey,
			}).
			Get(baseURL + opPath)
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", command, err)
	}

	root, err := parseXML(resp.Body())
	if err != nil {
		return nil, fmt.Errorf("%s: %w", command, err)
	}
	if err = mapCommandError(command, root); err != nil {
		return nil, err
	}

	return root, nil
}

// rest issues a GET against the REST API and decodes the JSON body into dst.
func (c *panosClient) rest(ctx context.Context, target models.FirewallTarget, command, path string, params map[string]string, dst any) error {
	baseURL, err := normalizeBaseURL(target.Address)
	if err != nil {
		return err
	}

	resp, err := c.send(command, func() (*resty.Response, error) {
		return c.client.R().
			SetContext(ctx).
			SetHeader(apiKeyHeader, target.APIKey).
			SetHeader("Content-Type", "application/json").
			SetQueryParams(params).
			Get(baseURL + path)
	})
	if err != nil {
		return fmt.Errorf("%s: %w", command, err)
	}

	if err = json.Unmarshal(resp.Body(), dst); err != nil {
		return fmt.Errorf("%s: %w: %w", command, ErrInvalidResponse, err)
	}
	return nil
}

// send executes one request, records it and maps non-2xx statuses.
func (c *panosClient) send(command string, do func() (*resty.Response, error)) (*resty.Response, error) {
	c.recorder.RecordCall()
	started := time.Now()

	resp, err := do()
	if err == nil {
		err = mapHTTPError(resp)
	}

	metrics.FirewallCallDuration.WithLabelValues(command).Observe(time.Since(started).Seconds())
	result := callResultOK
	if err != nil {
		result = callResultError
	}
	metrics.FirewallCallsTotal.WithLabelValues(command, result).Inc()

	if err != nil {
		c.logger.Debug().Err(err).Str("command", command).Msg("firewall request failed")
		return nil, err
	}
	return resp, nil
}
