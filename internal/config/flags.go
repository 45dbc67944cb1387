// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Dmitry Khalenko

package config

import (
	"flag"
	"time"
)

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-s server base URL
//	-m mirror database path
//	-c/-config json file path with configs
//	-sync-interval background sync period (e.g., "5m")
//	-sync-mode page pipeline scheduling: "serial" or "concurrent"
//	-sync-max-tasks max concurrent page pipelines
//	-sync-chunk-size page size requested from the server
//	-request-timeout request timeout (e.g., "30s", "1m")
func ParseFlags() *ClientConfig {
	var serverURL string
	var mirrorPath string
	var jsonConfigPath string
	var syncInterval time.Duration
	var syncMode string
	var syncMaxTasks int
	var syncChunkSize int
	var requestTimeout time.Duration

	flag.StringVar(&serverURL, "s", "", "Server base URL")
	flag.StringVar(&mirrorPath, "m", "", "Mirror database path")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	flag.DurationVar(&syncInterval, "sync-interval", 0, "Background sync period (e.g., 5m)")
	flag.StringVar(&syncMode, "sync-mode", "", "Sync mode: serial or concurrent")
	flag.IntVar(&syncMaxTasks, "sync-max-tasks", 0, "Max concurrent page pipelines")
	flag.IntVar(&syncChunkSize, "sync-chunk-size", 0, "Page size requested from the server")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")

	flag.Parse()

	return &ClientConfig{
		Server: Server{
			BaseURL:        serverURL,
			RequestTimeout: requestTimeout,
		},
		Storage: Storage{
			MirrorPath: mirrorPath,
		},
		Sync: Sync{
			Interval:  syncInterval,
			Mode:      syncMode,
			MaxTasks:  syncMaxTasks,
			ChunkSize: syncChunkSize,
		},
		jsonFilePath: jsonConfigPath,
	}
}
