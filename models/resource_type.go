// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Dmitry Khalenko

package models

import "github.com/google/uuid"

// FieldSpec describes one field of a resource type schema: its wire
// name, value type, whether it is mandatory, whether its value is
// stored encrypted, and optional length bounds.
type FieldSpec struct {
	Name      string `json:"name"`
	Type      string `json:"type"`
	Required  bool   `json:"required"`
	Encrypted bool   `json:"encrypted"`
	MinLength int    `json:"min_length,omitempty"`
	MaxLength int    `json:"max_length,omitempty"`
}

// ResourceType is an immutable catalog entry describing the schema of
// one resource kind. Types whose field specs fail to parse are dropped
// before persistence; resources referencing a dropped type are dropped
// with them.
type ResourceType struct {
	ID         uuid.UUID   `json:"id"`
	Slug       string      `json:"slug"`
	Name       string      `json:"name"`
	FieldSpecs []FieldSpec `json:"field_specs"`
}
