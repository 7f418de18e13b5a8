package config

import (
	"errors"
	"flag"
	"fmt"
	"net"
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

// ParseFlags parses configuration flags from args (normally os.Args[1:]).
//
// Flags:
//
//	-a feedback API address, a URL or [host]:[port]
//	-t request timeout (e.g., "15s")
//	-token survey token or survey link to open on start
//	-log-level log level (debug, info, warn, error)
//	-log-file client log file path
//	-c/-config json file path with configs
//	-sandbox-address sandbox listen address in format [host]:[port]
//	-sandbox-public-url origin of survey links issued by the sandbox
//	-sandbox-link-ttl survey token lifetime (e.g., "168h")
func ParseFlags(args []string) (*StructuredConfig, error) {
	var sandboxAddress NetAddress
	var apiAddress string
	var requestTimeout time.Duration
	var surveyLink string
	var logLevel, logFile string
	var jsonConfigPath string
	var sandboxPublicURL string
	var sandboxLinkTTL time.Duration

	fs := flag.NewFlagSet("feedback", flag.ContinueOnError)
	fs.StringVar(&apiAddress, "a", "", "Feedback API address (URL or host:port)")
	fs.DurationVar(&requestTimeout, "t", 0, "Request timeout (e.g., 15s)")
	fs.StringVar(&surveyLink, "token", "", "Survey token or survey link")
	fs.StringVar(&logLevel, "log-level", "", "Log level")
	fs.StringVar(&logFile, "log-file", "", "Client log file path")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.Var(&sandboxAddress, "sandbox-address", "Sandbox listen address host:port")
	fs.StringVar(&sandboxPublicURL, "sandbox-public-url", "", "Origin of survey links issued by the sandbox")
	fs.DurationVar(&sandboxLinkTTL, "sandbox-link-ttl", 0, "Survey token lifetime (e.g., 168h)")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			LogLevel:   logLevel,
			LogFile:    logFile,
			SurveyLink: surveyLink,
		},
		Adapter: Adapter{
			HTTPAddress:    apiAddress,
			RequestTimeout: requestTimeout,
		},
		Sandbox: Sandbox{
			HTTPAddress: sandboxAddress.String(),
			PublicURL:   sandboxPublicURL,
			LinkTTL:     sandboxLinkTTL,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}

// String returns a canonical host:port string for a NetAddress, or an empty
// string when neither Host nor Port is set.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is
// "localhost" or empty, and returns an error if the format or values are
// invalid.
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
