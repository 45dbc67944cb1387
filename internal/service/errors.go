// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Dmitry Khalenko

package service

import "errors"

var (
	// ErrCatalogFetch wraps a failure to fetch the resource-type
	// catalog. Fatal for the pass; no local mutation has happened yet,
	// the caller may retry the whole pass.
	ErrCatalogFetch = errors.New("resource type catalog fetch failed")

	// ErrPageFetch wraps a failure to fetch one resource page. Fatal
	// for the remaining pages of that pipeline; pages committed before
	// the failure are retained.
	ErrPageFetch = errors.New("resource page fetch failed")
)
