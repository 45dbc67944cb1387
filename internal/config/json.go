// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Dmitry Khalenko

package config

import (
	"encoding/json"
	"fmt"
	"os"
)

// parseJSON loads a configuration layer from the JSON file at path.
func parseJSON(path string) (*ClientConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading json config %s: %w", path, err)
	}

	cfg := &ClientConfig{}
	if err = json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("error decoding json config %s: %w", path, err)
	}

	return cfg, nil
}
