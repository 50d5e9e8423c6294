// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"flag"
	"fmt"
	"time"

	"dario.cat/mergo"

	"github.com/MKhiriev/go-accounts/models"
)

// Client defaults applied when a value is not configured.
const (
	DefaultClientAddress        = "localhost:8000"
	DefaultClientRequestTimeout = 10 * time.Second
)

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// HTTPAddress is the base address of the accounts server.
	// Env: CLIENT_ADDRESS
	HTTPAddress string `env:"ADDRESS"`
	// RequestTimeout is the default timeout for outbound client requests.
	// Env: CLIENT_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// ClientCredentials are used to obtain a token pair when no token is given.
type ClientCredentials struct {
	// Env: CLIENT_USERNAME
	Username string `env:"USERNAME"`
	// Env: CLIENT_PASSWORD
	Password string `env:"PASSWORD"`
	// Token is a ready access token; it takes precedence over credentials.
	// Env: CLIENT_TOKEN
	Token string `env:"TOKEN"`
}

// ClientConfig is the top-level configuration of the command-line client.
type ClientConfig struct {
	Adapter     ClientAdapter     `envPrefix:"CLIENT_"`
	Credentials ClientCredentials `envPrefix:"CLIENT_"`
}

// GetClientConfig builds and validates the client configuration from
// environment variables and the global flags in args. It returns the
// remaining (non-flag) arguments, which form the client sub-command.
func GetClientConfig(args []string) (*ClientConfig, []string, error) {
	envCfg := &ClientConfig{}
	if err := parseEnv(envCfg); err != nil {
		return nil, nil, err
	}

	flagsCfg, rest, err := parseClientFlags(args)
	if err != nil {
		return nil, nil, err
	}

	cfg := new(ClientConfig)
	for _, src := range []*ClientConfig{envCfg, flagsCfg} {
		if err := mergo.Merge(cfg, src, mergo.WithOverride); err != nil {
			return nil, nil, fmt.Errorf("error merging configs: %w", err)
		}
	}

	if cfg.Adapter.HTTPAddress == "" {
		cfg.Adapter.HTTPAddress = DefaultClientAddress
	}
	if cfg.Adapter.RequestTimeout == 0 {
		cfg.Adapter.RequestTimeout = DefaultClientRequestTimeout
	}

	return cfg, rest, cfg.validate()
}

func parseClientFlags(args []string) (*ClientConfig, []string, error) {
	fs := flag.NewFlagSet("client", flag.ContinueOnError)

	cfg := &ClientConfig{}
	fs.StringVar(&cfg.Adapter.HTTPAddress, "a", "", "Server address (host:port or URL)")
	fs.DurationVar(&cfg.Adapter.RequestTimeout, "timeout", 0, "Request timeout (e.g., 10s)")
	fs.StringVar(&cfg.Credentials.Username, "u", "", "Username")
	fs.StringVar(&cfg.Credentials.Password, "p", "", "Password")
	fs.StringVar(&cfg.Credentials.Token, "t", "", "Access token")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, nil, err
		}
		return nil, nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return cfg, fs.Args(), nil
}

// Credentials returns the username and password as token request input.
func (c ClientCredentials) Credentials() models.Credentials {
	return models.Credentials{Username: c.Username, Password: c.Password}
}
