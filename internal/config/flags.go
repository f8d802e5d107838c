package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
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

// parseFlags parses command-line arguments into a [StructuredConfig].
//
// Flags:
//
//	-consul remote store base URL
//	-status-path health probe path
//	-kv-path configuration context path
//	-keys comma separated value keys
//	-jwks-key store key of the key set
//	-version-key store key of the version
//	-request-timeout remote request timeout (e.g., "5s")
//	-working-dir directory for fallback files
//	-jwks-file JWKS fallback file name
//	-version-file version fallback file name
//	-a demo host address in format [host]:[port]
//	-log-level log level
//	-c/-config json file path with configs
func parseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet("go-app-config", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var serverAddress NetAddress
	var consulAddress, statusPath, kvPath, keys, jwksKey, versionKey string
	var requestTimeout time.Duration
	var workingDir, jwksFile, versionFile string
	var logLevel string
	var jsonConfigPath string

	fs.StringVar(&consulAddress, "consul", "", "Remote key-value store base URL")
	fs.StringVar(&statusPath, "status-path", "", "Health probe path")
	fs.StringVar(&kvPath, "kv-path", "", "Configuration context path")
	fs.StringVar(&keys, "keys", "", "Comma separated value keys")
	fs.StringVar(&jwksKey, "jwks-key", "", "Store key of the key set")
	fs.StringVar(&versionKey, "version-key", "", "Store key of the version")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Remote request timeout (e.g., 5s)")
	fs.StringVar(&workingDir, "working-dir", "", "Directory for fallback files")
	fs.StringVar(&jwksFile, "jwks-file", "", "JWKS fallback file name")
	fs.StringVar(&versionFile, "version-file", "", "Version fallback file name")
	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.StringVar(&logLevel, "log-level", "", "Log level")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		Consul: Consul{
			Address:        consulAddress,
			StatusPath:     statusPath,
			KVPath:         kvPath,
			Keys:           splitKeys(keys),
			JWKSKey:        jwksKey,
			VersionKey:     versionKey,
			RequestTimeout: requestTimeout,
		},
		Files: Files{
			WorkingDir: workingDir,
			JWKS:       jwksFile,
			Version:    versionFile,
		},
		Server: Server{
			HTTPAddress: serverAddress.String(),
		},
		Log:          Log{Level: logLevel},
		JSONFilePath: jsonConfigPath,
	}, nil
}

func splitKeys(raw string) []string {
	var keys []string
	for _, k := range strings.Split(raw, ",") {
		if k = strings.TrimSpace(k); k != "" {
			keys = append(keys, k)
		}
	}
	return keys
}

// String returns a canonical host:port string for a NetAddress.
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
		return errors.New("port number must be in range 1-65535")
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
