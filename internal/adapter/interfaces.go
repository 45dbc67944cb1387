// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Dmitry Khalenko

package adapter

//go:generate mockgen -source=interfaces.go -destination=../mock/catalog_client_mock.go -package=mock

import (
	"context"

	"github.com/dkhalenko/go-pass-mirror/models"
)

// CatalogClient is the consumed interface of the remote catalog: the
// resource-type catalog, the paginated resource listing, and the
// auxiliary relations that lack a server-side diff API (folders, tags).
type CatalogClient interface {
	// FetchResourceTypes returns the resource-type catalog. Types whose
	// field specs failed to parse are already dropped; a warning is
	// logged per dropped type.
	FetchResourceTypes(ctx context.Context) ([]models.ResourceType, error)

	// FetchResourcePage returns one page of the resource listing for
	// the scope. Rows that fail typed decoding are dropped with a
	// warning and do not fail the page.
	FetchResourcePage(ctx context.Context, scope models.Scope, pageNumber, pageSize int) (models.Page, error)

	// FetchFolders returns the full folder set for the scope, in
	// arbitrary order.
	FetchFolders(ctx context.Context, scope models.Scope) ([]models.Folder, error)

	// FetchTags returns the full tag set for the scope.
	FetchTags(ctx context.Context, scope models.Scope) ([]models.Tag, error)
}

// SessionCatalogClient is a CatalogClient bound to a session token.
// The session-lifecycle layer sets the token after login; the scope it
// encodes is passed to every synchronize call.
type SessionCatalogClient interface {
	CatalogClient

	// SetToken stores the session bearer token issued at login.
	SetToken(token string)

	// SessionScope recovers the account/user scope from the session
	// token claims. Returns ErrNoSession before SetToken is called.
	SessionScope() (models.Scope, error)
}
