// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Dmitry Khalenko

package adapter

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dkhalenko/go-pass-mirror/internal/logger"
	"github.com/dkhalenko/go-pass-mirror/models"
)

var adapterScope = models.Scope{
	AccountID: uuid.MustParse("aaaaaaaa-aaaa-aaaa-aaaa-aaaaaaaaaaaa"),
	UserID:    uuid.MustParse("bbbbbbbb-bbbb-bbbb-bbbb-bbbbbbbbbbbb"),
}

func newTestClient(t *testing.T, handler http.HandlerFunc) SessionCatalogClient {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return NewHTTPCatalogClient(HTTPClientConfig{
		BaseURL: srv.URL,
		Timeout: 5 * time.Second,
	}, logger.Nop())
}

func signedTestToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return token
}

// ── FetchResourceTypes ───────────────────────────────────────────────────────

func TestHTTPCatalogClient_FetchResourceTypes(t *testing.T) {
	goodID := uuid.New()
	badID := uuid.New()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/resource-types.json", r.URL.Path)
		assert.Equal(t, "Bearer session-token", r.Header.Get("Authorization"))

		fmt.Fprintf(w, `{"body": [
			{"id": %q, "slug": "password-v5", "name": "Password",
			 "definition": {"fields": [{"name": "password", "type": "string", "required": true, "encrypted": true}]}},
			{"id": %q, "slug": "totp-v5", "name": "TOTP",
			 "definition": {"unexpected": "shape"}}
		]}`, goodID, badID)
	})
	client.SetToken("session-token")

	types, err := client.FetchResourceTypes(context.Background())
	require.NoError(t, err)

	// Тип с нечитаемым definition отброшен целиком.
	require.Len(t, types, 1)
	assert.Equal(t, goodID, types[0].ID)
	assert.Equal(t, "password-v5", types[0].Slug)
	require.Len(t, types[0].FieldSpecs, 1)
	assert.True(t, types[0].FieldSpecs[0].Encrypted)
}

func TestHTTPCatalogClient_FetchResourceTypes_Unauthorized(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})

	_, err := client.FetchResourceTypes(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnauthorized)
}

// ── FetchResourcePage ────────────────────────────────────────────────────────

func TestHTTPCatalogClient_FetchResourcePage(t *testing.T) {
	goodID := uuid.New()
	typeID := uuid.New()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/resources.json", r.URL.Path)
		assert.Equal(t, "2", r.URL.Query().Get("page"))
		assert.Equal(t, "50", r.URL.Query().Get("limit"))
		assert.Equal(t, adapterScope.AccountID.String(), r.URL.Query().Get("account_id"))

		fmt.Fprintf(w, `{
			"header": {"pagination": {"page": 2, "limit": 50, "count": 120}},
			"body": [
				{"id": %q, "resource_type_id": %q, "name": "gmail", "modified": "2026-03-10T12:00:00Z"},
				{"id": "not-a-uuid", "resource_type_id": %q, "name": "broken", "modified": "2026-03-10T12:00:00Z"}
			]
		}`, goodID, typeID, typeID)
	})

	page, err := client.FetchResourcePage(context.Background(), adapterScope, 2, 50)
	require.NoError(t, err)

	assert.Equal(t, 2, page.PageNumber)
	assert.Equal(t, 50, page.PageSize)
	assert.Equal(t, 120, page.TotalCount)
	// Нечитаемая строка отброшена, страница не падает.
	require.Len(t, page.Items, 1)
	assert.Equal(t, goodID, page.Items[0].ID)
}

func TestHTTPCatalogClient_FetchResourcePage_ServerError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "upstream exploded", http.StatusBadGateway)
	})

	_, err := client.FetchResourcePage(context.Background(), adapterScope, 1, 100)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "502")
}

// ── FetchFolders / FetchTags ─────────────────────────────────────────────────

func TestHTTPCatalogClient_FetchFolders(t *testing.T) {
	rootID := uuid.New()
	childID := uuid.New()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/folders.json", r.URL.Path)
		fmt.Fprintf(w, `{"body": [
			{"id": %q, "name": "work"},
			{"id": %q, "name": "aws", "folder_parent_id": %q}
		]}`, rootID, childID, rootID)
	})

	folders, err := client.FetchFolders(context.Background(), adapterScope)
	require.NoError(t, err)

	require.Len(t, folders, 2)
	assert.Nil(t, folders[0].FolderParentID)
	require.NotNil(t, folders[1].FolderParentID)
	assert.Equal(t, rootID, *folders[1].FolderParentID)
}

func TestHTTPCatalogClient_FetchTags(t *testing.T) {
	tagID := uuid.New()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/tags.json", r.URL.Path)
		fmt.Fprintf(w, `{"body": [{"id": %q, "slug": "work", "is_shared": true}]}`, tagID)
	})

	tags, err := client.FetchTags(context.Background(), adapterScope)
	require.NoError(t, err)

	require.Len(t, tags, 1)
	assert.Equal(t, models.Tag{ID: tagID, Slug: "work", IsShared: true}, tags[0])
}

// ── SessionScope ─────────────────────────────────────────────────────────────

func TestHTTPCatalogClient_SessionScope(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {})

	token := signedTestToken(t, jwt.MapClaims{
		"account_id": adapterScope.AccountID.String(),
		"sub":        adapterScope.UserID.String(),
	})
	client.SetToken(token)

	scope, err := client.SessionScope()
	require.NoError(t, err)
	assert.Equal(t, adapterScope, scope)
}

func TestHTTPCatalogClient_SessionScope_NoToken(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {})

	_, err := client.SessionScope()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNoSession)
}

func TestHTTPCatalogClient_SessionScope_BadClaims(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {})

	tests := []struct {
		name   string
		claims jwt.MapClaims
	}{
		{
			name:   "missing account_id",
			claims: jwt.MapClaims{"sub": adapterScope.UserID.String()},
		},
		{
			name:   "account_id not a uuid",
			claims: jwt.MapClaims{"account_id": "42", "sub": adapterScope.UserID.String()},
		},
		{
			name:   "missing subject",
			claims: jwt.MapClaims{"account_id": adapterScope.AccountID.String()},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client.SetToken(signedTestToken(t, tt.claims))
			_, err := client.SessionScope()
			require.Error(t, err)
		})
	}
}
