// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"flag"
	"fmt"
	"time"

	"dario.cat/mergo"
	"github.com/caarlos0/env/v11"
)

// clientEnvPrefix prefixes every environment variable read by the client.
const clientEnvPrefix = "BLOG_"

// ErrInvalidClientConfigs indicates that the client has no server address.
var ErrInvalidClientConfigs = errors.New("invalid client configuration")

// Client is the configuration of the command-line API client.
type Client struct {
	// Address is the base URL of the blog server.
	// Env: BLOG_ADDRESS
	Address string `env:"ADDRESS"`

	// Token is the bearer token attached to authenticated requests.
	// Env: BLOG_TOKEN
	Token string `env:"TOKEN"`

	// RequestTimeout bounds every request sent by the client.
	// Env: BLOG_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// LogLevel is the level of the diagnostics written to stderr.
	// Env: BLOG_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`

	// DotEnvPath is the .env file loaded before the environment is read.
	DotEnvPath string `env:"-"`
}

func defaultClientConfig() *Client {
	return &Client{
		Address:        "http://localhost:8080",
		RequestTimeout: 15 * time.Second,
		LogLevel:       "info",
		DotEnvPath:     ".env",
	}
}

// GetClientConfig builds the client configuration from defaults, the .env
// file, BLOG_* environment variables and the flags in args, in increasing
// priority. The arguments left after the flags are returned as the command.
func GetClientConfig(args []string) (*Client, []string, error) {
	flags, rest, err := parseClientFlags(args)
	if err != nil {
		return nil, nil, err
	}

	defaults := defaultClientConfig()
	dotEnvPath := defaults.DotEnvPath
	if flags.DotEnvPath != "" {
		dotEnvPath = flags.DotEnvPath
	}
	if err = loadDotEnv(dotEnvPath); err != nil {
		return nil, nil, err
	}

	envCfg := &Client{}
	if err = env.ParseWithOptions(envCfg, env.Options{Prefix: clientEnvPrefix}); err != nil {
		return nil, nil, fmt.Errorf("error getting env configs: %w", err)
	}

	cfg := new(Client)
	for _, src := range []*Client{defaults, envCfg, flags} {
		if err = mergo.Merge(cfg, src, mergo.WithOverride); err != nil {
			return nil, nil, fmt.Errorf("error merging configs: %w", err)
		}
	}

	if cfg.Address == "" {
		return nil, nil, fmt.Errorf("%w: empty server address", ErrInvalidClientConfigs)
	}

	return cfg, rest, nil
}

// parseClientFlags parses the client flags from args (without the program
// name).
//
// Flags:
//
//	-a server base URL
//	-token bearer token
//	-timeout request timeout (e.g., "10s")
//	-log-level log level
//	-env .env file path
func parseClientFlags(args []string) (*Client, []string, error) {
	fs := flag.NewFlagSet("go-blog-client", flag.ContinueOnError)

	cfg := &Client{}
	fs.StringVar(&cfg.Address, "a", "", "Server base URL")
	fs.StringVar(&cfg.Token, "token", "", "Bearer token")
	fs.DurationVar(&cfg.RequestTimeout, "timeout", 0, "Request timeout (e.g., 10s)")
	fs.StringVar(&cfg.LogLevel, "log-level", "", "Log level")
	fs.StringVar(&cfg.DotEnvPath, "env", "", ".env file path")

	if err := fs.Parse(args); err != nil {
		return nil, nil, fmt.Errorf("error parsing client flags: %w", err)
	}

	return cfg, fs.Args(), nil
}
