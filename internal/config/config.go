// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Dmitry Khalenko

// Package config assembles the mirror client configuration from layered
// sources: environment variables take precedence over command-line flags,
// which take precedence over an optional JSON file, which takes precedence
// over built-in defaults. Layers are merged with mergo, empty fields being
// filled from the next source down.
package config

import "time"

// ClientConfig is the full configuration surface of the mirror client.
type ClientConfig struct {
	Server       Server  `json:"server" envPrefix:"PASS_MIRROR_"`
	Storage      Storage `json:"storage" envPrefix:"PASS_MIRROR_"`
	Sync         Sync    `json:"sync" envPrefix:"PASS_MIRROR_SYNC_"`
	jsonFilePath string
}

// Server describes the remote catalog endpoint.
type Server struct {
	BaseURL        string        `json:"base_url" env:"SERVER_URL"`
	RequestTimeout time.Duration `json:"request_timeout" env:"REQUEST_TIMEOUT"`
	// SessionToken is the bearer token of an already established session.
	// Environment only: tokens do not belong in config files or argv.
	SessionToken string `json:"-" env:"SESSION_TOKEN"`
}

// Storage describes the local mirror database location.
type Storage struct {
	MirrorPath string `json:"mirror_path" env:"MIRROR_PATH"`
}

// Sync describes the synchronization schedule and pipeline shape.
type Sync struct {
	Interval time.Duration `json:"interval" env:"INTERVAL"`
	// Mode is "serial" or "concurrent".
	Mode      string `json:"mode" env:"MODE"`
	MaxTasks  int    `json:"max_tasks" env:"MAX_TASKS"`
	ChunkSize int    `json:"chunk_size" env:"CHUNK_SIZE"`
}

// defaults returns the built-in bottom layer of the configuration.
func defaults() *ClientConfig {
	return &ClientConfig{
		Server: Server{
			BaseURL:        "http://localhost:8080",
			RequestTimeout: 15 * time.Second,
		},
		Storage: Storage{
			MirrorPath: "mirror.db",
		},
		Sync: Sync{
			Interval:  5 * time.Minute,
			Mode:      "serial",
			MaxTasks:  4,
			ChunkSize: 100,
		},
	}
}

// GetClientConfig builds, merges and validates the client configuration.
func GetClientConfig() (*ClientConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		withDefaults().
		build()
}
