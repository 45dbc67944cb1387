// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Dmitry Khalenko

package config

import (
	"errors"
	"fmt"
)

var (
	ErrEmptyServerURL  = errors.New("server base URL is empty")
	ErrEmptyMirrorPath = errors.New("mirror database path is empty")
	ErrBadSyncMode     = errors.New(`sync mode must be "serial" or "concurrent"`)
	ErrBadMaxTasks     = errors.New("max concurrent tasks must be positive in concurrent mode")
	ErrBadChunkSize    = errors.New("sync chunk size must be positive")
)

// validate checks the merged configuration for internally consistent
// values. Called once by the builder after all layers are merged.
func (c *ClientConfig) validate() error {
	var errs []error

	if c.Server.BaseURL == "" {
		errs = append(errs, ErrEmptyServerURL)
	}
	if c.Storage.MirrorPath == "" {
		errs = append(errs, ErrEmptyMirrorPath)
	}
	if c.Sync.Mode != "serial" && c.Sync.Mode != "concurrent" {
		errs = append(errs, fmt.Errorf("%w: got %q", ErrBadSyncMode, c.Sync.Mode))
	}
	if c.Sync.Mode == "concurrent" && c.Sync.MaxTasks <= 0 {
		errs = append(errs, ErrBadMaxTasks)
	}
	if c.Sync.ChunkSize <= 0 {
		errs = append(errs, ErrBadChunkSize)
	}

	return errors.Join(errs...)
}
