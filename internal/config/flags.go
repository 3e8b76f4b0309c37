// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

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

// parseFlags parses command-line arguments into a partial [StructuredConfig].
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-d database DSN
//	-c/-config json file path with configs
//	-token-sign-key token signing key
//	-token-issuer expected token issuer
//	-token-audience expected token audience
//	-disable-token-lifetime-check skip exp/nbf validation
//	-token-clock-skew leeway for time-based claims (e.g. "30s")
//	-log-level minimal log level
//	-read-timeout / -write-timeout / -shutdown-timeout server timeouts
//	-cors-allowed-origins comma separated list of origins
//	-rate-limit requests per second, -rate-burst bucket size
func parseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet(programName(), flag.ContinueOnError)

	var serverAddress NetAddress
	var databaseDSN, jsonConfigPath string
	var tokenSignKey, tokenIssuer, tokenAudience string
	var disableLifetimeCheck bool
	var tokenClockSkew time.Duration
	var logLevel string
	var readTimeout, writeTimeout, shutdownTimeout time.Duration
	var corsOrigins string
	var rateLimit float64
	var rateBurst int

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.StringVar(&databaseDSN, "d", "", "Database DSN (empty keeps users in memory)")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&tokenSignKey, "token-sign-key", "", "Token signing key")
	fs.StringVar(&tokenIssuer, "token-issuer", "", "Expected token issuer")
	fs.StringVar(&tokenAudience, "token-audience", "", "Expected token audience")
	fs.BoolVar(&disableLifetimeCheck, "disable-token-lifetime-check", false, "Accept expired tokens")
	fs.DurationVar(&tokenClockSkew, "token-clock-skew", 0, "Leeway for time-based token claims (e.g., 30s)")
	fs.StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	fs.DurationVar(&readTimeout, "read-timeout", 0, "Server read timeout (e.g., 10s)")
	fs.DurationVar(&writeTimeout, "write-timeout", 0, "Server write timeout (e.g., 10s)")
	fs.DurationVar(&shutdownTimeout, "shutdown-timeout", 0, "Graceful shutdown timeout (e.g., 5s)")
	fs.StringVar(&corsOrigins, "cors-allowed-origins", "", "Comma separated list of allowed CORS origins")
	fs.Float64Var(&rateLimit, "rate-limit", 0, "Requests per second (0 disables rate limiting)")
	fs.IntVar(&rateBurst, "rate-burst", 0, "Rate limiter burst size")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			TokenSignKey:              tokenSignKey,
			TokenIssuer:               tokenIssuer,
			TokenAudience:             tokenAudience,
			DisableTokenLifetimeCheck: disableLifetimeCheck,
			TokenClockSkew:            tokenClockSkew,
			LogLevel:                  logLevel,
		},
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
		},
		Server: Server{
			HTTPAddress:        serverAddress.String(),
			ReadTimeout:        readTimeout,
			WriteTimeout:       writeTimeout,
			ShutdownTimeout:    shutdownTimeout,
			CORSAllowedOrigins: splitList(corsOrigins),
			RateLimit:          rateLimit,
			RateBurst:          rateBurst,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}

// String returns a canonical host:port string for a NetAddress.
// An unset address yields an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// The host may be empty (all interfaces), "localhost" or an IP address.
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

	if host != "" && host != "localhost" && net.ParseIP(host) == nil {
		return errors.New("incorrect IP-address provided")
	}

	a.Host = host
	a.Port = port
	return nil
}

func splitList(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}

	var items []string
	for _, item := range strings.Split(s, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}

func programName() string {
	if len(os.Args) > 0 {
		return os.Args[0]
	}
	return "server"
}
