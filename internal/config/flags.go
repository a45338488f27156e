// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"flag"
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

func osArgs() []string {
	if len(os.Args) < 2 {
		return nil
	}
	return os.Args[1:]
}

// parseFlags parses all configuration flags from args.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-adapter-address server address used by the client
//	-storage storage driver (memory, file, sqlite, postgres, s3)
//	-d database DSN
//	-f JSON file store path
//	-c/-config json file path with configs
//	-token-sign-key token signing key
//	-token-issuer token issuer name
//	-token-duration token duration (e.g., "1h", "30m")
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-seed seed accounts JSON file
//	-log-level zerolog level
//	-trial-watch-interval trial watcher interval
//	-status-poll-interval client status refresh interval
func parseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet("go-pay-trial", flag.ContinueOnError)

	var serverAddress NetAddress
	var adapterAddress, driver, databaseDSN, filePath, jsonConfigPath string
	var tokenSignKey, tokenIssuer, seedPath, logLevel string
	var tokenDuration, requestTimeout, watchInterval, pollInterval time.Duration

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.StringVar(&adapterAddress, "adapter-address", "", "Server address used by the client")
	fs.StringVar(&driver, "storage", "", "Storage driver")
	fs.StringVar(&databaseDSN, "d", "", "Database DSN")
	fs.StringVar(&filePath, "f", "", "JSON file store path")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&tokenSignKey, "token-sign-key", "", "Token signing key")
	fs.StringVar(&tokenIssuer, "token-issuer", "", "Token issuer")
	fs.DurationVar(&tokenDuration, "token-duration", 0, "Token duration (e.g., 1h, 30m)")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.StringVar(&seedPath, "seed", "", "Seed accounts JSON file")
	fs.StringVar(&logLevel, "log-level", "", "Log level")
	fs.DurationVar(&watchInterval, "trial-watch-interval", 0, "Trial watcher interval")
	fs.DurationVar(&pollInterval, "status-poll-interval", 0, "Client status refresh interval")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	return &StructuredConfig{
		App: App{
			TokenSignKey:     tokenSignKey,
			TokenIssuer:      tokenIssuer,
			TokenDuration:    tokenDuration,
			SeedAccountsPath: seedPath,
			LogLevel:         logLevel,
		},
		Storage: Storage{
			Driver: driver,
			DB:     DB{DSN: databaseDSN},
			Files:  Files{Path: filePath},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Adapter: Adapter{
			HTTPAddress: adapterAddress,
		},
		Workers: Workers{
			TrialWatchInterval: watchInterval,
			StatusPollInterval: pollInterval,
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

	if port < 1 {
		return errors.New("port number is a positive integer")
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
