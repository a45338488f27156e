// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"time"
)

// Storage drivers accepted by [Storage.Driver].
const (
	DriverMemory   = "memory"
	DriverFile     = "file"
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
	DriverS3       = "s3"
)

const (
	defaultHTTPAddress    = "localhost:8080"
	defaultRequestTimeout = 30 * time.Second
	defaultTokenIssuer    = "go-pay-trial"
	defaultTokenDuration  = 24 * time.Hour
	defaultFilesPath      = "pay-trial.json"
	defaultS3Prefix       = "pay-trial/"
	defaultClientTimeout  = 15 * time.Second
	defaultStatusPoll     = 5 * time.Second
)

// applyDefaults fills zero-valued settings that have a sensible default.
// Secrets never get a default.
func (cfg *StructuredConfig) applyDefaults() {
	if cfg.Storage.Driver == "" {
		cfg.Storage.Driver = DriverMemory
	}
	if cfg.Storage.Driver == DriverFile && cfg.Storage.Files.Path == "" {
		cfg.Storage.Files.Path = defaultFilesPath
	}
	if cfg.Storage.Driver == DriverS3 && cfg.Storage.S3.Prefix == "" {
		cfg.Storage.S3.Prefix = defaultS3Prefix
	}
	if cfg.Server.HTTPAddress == "" {
		cfg.Server.HTTPAddress = defaultHTTPAddress
	}
	if cfg.Server.RequestTimeout == 0 {
		cfg.Server.RequestTimeout = defaultRequestTimeout
	}
	if cfg.App.TokenIssuer == "" {
		cfg.App.TokenIssuer = defaultTokenIssuer
	}
	if cfg.App.TokenDuration == 0 {
		cfg.App.TokenDuration = defaultTokenDuration
	}
	if cfg.Adapter.HTTPAddress == "" {
		cfg.Adapter.HTTPAddress = defaultHTTPAddress
	}
	if cfg.Adapter.RequestTimeout == 0 {
		cfg.Adapter.RequestTimeout = defaultClientTimeout
	}
	if cfg.Workers.StatusPollInterval == 0 {
		cfg.Workers.StatusPollInterval = defaultStatusPoll
	}
}

// validate checks that the merged [StructuredConfig] selects a known storage
// driver and carries the settings that driver needs.
func (cfg *StructuredConfig) validate() error {
	switch cfg.Storage.Driver {
	case DriverMemory:
	case DriverFile:
		if cfg.Storage.Files.Path == "" {
			return fmt.Errorf("%w: empty file path", ErrInvalidStorageConfigs)
		}
	case DriverSQLite, DriverPostgres:
		if cfg.Storage.DB.DSN == "" {
			return fmt.Errorf("%w: empty DSN for %s", ErrInvalidStorageConfigs, cfg.Storage.Driver)
		}
	case DriverS3:
		if cfg.Storage.S3.Bucket == "" || cfg.Storage.S3.Region == "" {
			return fmt.Errorf("%w: s3 bucket and region are required", ErrInvalidStorageConfigs)
		}
	default:
		return fmt.Errorf("%w: unknown driver %q", ErrInvalidStorageConfigs, cfg.Storage.Driver)
	}

	return nil
}

// ValidateServer checks the settings only the server binary needs.
func (cfg *StructuredConfig) ValidateServer() error {
	if cfg.App.TokenSignKey == "" {
		return fmt.Errorf("%w: empty token sign key", ErrInvalidAppConfigs)
	}
	if cfg.Server.HTTPAddress == "" {
		return ErrInvalidServerConfigs
	}

	return nil
}
