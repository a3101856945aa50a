package config

import (
	"errors"
	"flag"
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

// ParseFlags parses all configuration flags from the process arguments.
//
// Flags:
//
//	-a tracking service base address (e.g. "https://tracking.local")
//	-api-address local API listen address in format [host]:[port]
//	-d database DSN
//	-attachments attachment directory
//	-c/-config json file path with configs
//	-token tracking service bearer token
//	-user display name attached to published notes
//	-log-file client log file path
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-rate-limit outbound requests per second
//	-poll-interval playlist polling interval (e.g., "5s")
//	-tombstone-retention removed version retention (e.g., "720h")
//	-janitor-interval tombstone janitor period (e.g., "1h")
func ParseFlags(args []string) (*StructuredConfig, error) {
	return parseFlags(args)
}

func parseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet("review-keeper", flag.ContinueOnError)

	var apiAddress NetAddress
	var adapterAddress string
	var databaseDSN string
	var attachmentDir string
	var jsonConfigPath string
	var token string
	var userName string
	var logFile string
	var requestTimeout time.Duration
	var rateLimit float64
	var pollInterval time.Duration
	var tombstoneRetention time.Duration
	var janitorInterval time.Duration

	fs.StringVar(&adapterAddress, "a", "", "Tracking service base address")
	fs.Var(&apiAddress, "api-address", "Local API net address host:port")
	fs.StringVar(&databaseDSN, "d", "", "Database DSN")
	fs.StringVar(&attachmentDir, "attachments", "", "Attachment directory")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&token, "token", "", "Tracking service bearer token")
	fs.StringVar(&userName, "user", "", "Display name for published notes")
	fs.StringVar(&logFile, "log-file", "", "Client log file path")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.Float64Var(&rateLimit, "rate-limit", 0, "Outbound requests per second")
	fs.DurationVar(&pollInterval, "poll-interval", 0, "Playlist polling interval (e.g., 5s)")
	fs.DurationVar(&tombstoneRetention, "tombstone-retention", 0, "Removed version retention (e.g., 720h)")
	fs.DurationVar(&janitorInterval, "janitor-interval", 0, "Tombstone janitor period (e.g., 1h)")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	return &StructuredConfig{
		App: App{
			UserName: userName,
			LogFile:  logFile,
		},
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
			Files: Files{
				AttachmentDir: attachmentDir,
			},
		},
		Adapter: Adapter{
			HTTPAddress:    adapterAddress,
			RequestTimeout: requestTimeout,
			RateLimit:      rateLimit,
			Token:          token,
		},
		API: API{
			HTTPAddress: apiAddress.String(),
		},
		Workers: Workers{
			PollInterval:       pollInterval,
			TombstoneRetention: tombstoneRetention,
			JanitorInterval:    janitorInterval,
		},
		JSONFilePath: jsonConfigPath,
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
// It validates the port range, checks IP correctness unless host is "localhost",
// and returns an error if the format or values are invalid.
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
		return errors.New("port number must be in range 1..65535")
	}

	if host != "localhost" {
		ip := net.ParseIP(hostAndPort[0])
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
