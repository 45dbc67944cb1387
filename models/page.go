// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Dmitry Khalenko

package models

// Page is one page of the paginated resource listing.
type Page struct {
	Items      []Resource `json:"items"`
	PageNumber int        `json:"page"`
	PageSize   int        `json:"limit"`
	TotalCount int        `json:"total_count"`
}

// HasMore reports whether another page must be requested after this
// one, given the cumulative number of items received so far. An empty
// page always terminates the fetch loop regardless of TotalCount.
func (p Page) HasMore(received int) bool {
	if len(p.Items) == 0 {
		return false
	}
	return received < p.TotalCount && p.PageNumber*p.PageSize < p.TotalCount
}
