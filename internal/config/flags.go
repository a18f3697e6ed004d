package config

import (
	"errors"
	"flag"
	"fmt"
	"net"
	"os"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// ParseFlags parses the server configuration flags from args (normally
// os.Args[1:]).
//
// Flags:
//
//	-a listen address in format [host]:[port]
//	-c/-config json or yaml file path with configs
//	-d data directory holding the persisted documents
//	-k encryption key file path
//	-session-sign-key session signing key
//	-session-timeout session idle lifetime (e.g., "30m")
//	-request-timeout inbound request timeout (e.g., "30s", "1m")
//	-firewall-timeout firewall query timeout (e.g., "10s")
//	-poll-interval background poll interval, 0 disables (e.g., "15s")
func ParseFlags(args []string) (*StructuredConfig, error) {
	var serverAddress NetAddress
	var configPath string
	var dataDir string
	var keyFile string
	var sessionSignKey string
	var sessionTimeout time.Duration
	var requestTimeout time.Duration
	var firewallTimeout time.Duration
	var pollInterval time.Duration

	fs := flag.NewFlagSet("panfm", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.StringVar(&configPath, "c", "", "JSON or YAML config file path")
	fs.StringVar(&configPath, "config", "", "JSON or YAML config file path (alias)")
	fs.StringVar(&dataDir, "d", "", "Data directory")
	fs.StringVar(&keyFile, "k", "", "Encryption key file path")
	fs.StringVar(&sessionSignKey, "session-sign-key", "", "Session signing key")
	fs.DurationVar(&sessionTimeout, "session-timeout", 0, "Session timeout (e.g., 30m)")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.DurationVar(&firewallTimeout, "firewall-timeout", 0, "Firewall query timeout (e.g., 10s)")
	fs.DurationVar(&pollInterval, "poll-interval", 0, "Background poll interval, 0 disables")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			SessionSignKey: sessionSignKey,
			SessionTimeout: sessionTimeout,
		},
		Storage: Storage{
			DataDir: dataDir,
			KeyFile: keyFile,
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Firewall: Firewall{
			RequestTimeout: firewallTimeout,
		},
		Workers: Workers{
			PollInterval: pollInterval,
		},
		FilePath: configPath,
	}, nil
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is "localhost"
// or empty, and returns an error if the format or values are invalid.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number must be in range 1-65535")
	}

	if host != "localhost" && host != "" {
		ip := net.ParseIP(host)
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
