// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Dmitry Khalenko

package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/dkhalenko/go-pass-mirror/internal/logger"
	"github.com/dkhalenko/go-pass-mirror/models"
)

type HTTPClientConfig struct {
	BaseURL string
	Timeout time.Duration
}

// httpCatalogClient implements [CatalogClient] over the server's JSON
// API using resty. The session bearer token is attached to every
// request; the account/user ids forming the sync scope are recovered
// from the token's claims (unverified parse — the server is the
// verifier, the client only needs the identifiers).
type httpCatalogClient struct {
	client *resty.Client
	logger *logger.Logger

	mu    sync.RWMutex
	token string
}

func NewHTTPCatalogClient(cfg HTTPClientConfig, log *logger.Logger) SessionCatalogClient {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "http://localhost:8080"
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 15 * time.Second
	}

	cli := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetTimeout(cfg.Timeout)

	return &httpCatalogClient{client: cli, logger: log}
}

// SetToken stores the session bearer token issued at login.
func (h *httpCatalogClient) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

func (h *httpCatalogClient) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// SessionScope recovers the account/user scope from the session token
// claims ("account_id" and "sub").
func (h *httpCatalogClient) SessionScope() (models.Scope, error) {
	token := h.Token()
	if token == "" {
		return models.Scope{}, ErrNoSession
	}

	claims := jwt.MapClaims{}
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(token, claims); err != nil {
		return models.Scope{}, fmt.Errorf("parse session token: %w", err)
	}

	accountRaw, _ := claims["account_id"].(string)
	accountID, err := uuid.Parse(accountRaw)
	if err != nil {
		return models.Scope{}, fmt.Errorf("parse account_id claim: %w", err)
	}

	userRaw, err := claims.GetSubject()
	if err != nil {
		return models.Scope{}, fmt.Errorf("get subject claim: %w", err)
	}
	userID, err := uuid.Parse(userRaw)
	if err != nil {
		return models.Scope{}, fmt.Errorf("parse subject claim: %w", err)
	}

	return models.Scope{AccountID: accountID, UserID: userID}, nil
}

type typesEnvelope struct {
	Body []rawResourceType `json:"body"`
}

type pageEnvelope struct {
	Header struct {
		Pagination struct {
			Page  int `json:"page"`
			Limit int `json:"limit"`
			Count int `json:"count"`
		} `json:"pagination"`
	} `json:"header"`
	Body []rawResource `json:"body"`
}

type foldersEnvelope struct {
	Body []rawFolder `json:"body"`
}

type tagsEnvelope struct {
	Body []rawTag `json:"body"`
}

func (h *httpCatalogClient) FetchResourceTypes(ctx context.Context) ([]models.ResourceType, error) {
	log := logger.FromContext(ctx)

	resp, err := h.authedRequest(ctx).Get("/resource-types.json")
	if err != nil {
		return nil, fmt.Errorf("fetch resource types request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var envelope typesEnvelope
	if err = json.Unmarshal(resp.Body(), &envelope); err != nil {
		return nil, fmt.Errorf("decode resource types response: %w", err)
	}

	types := make([]models.ResourceType, 0, len(envelope.Body))
	for _, raw := range envelope.Body {
		typed, decodeErr := raw.decode()
		if decodeErr != nil {
			log.Warn().
				Str("func", "httpCatalogClient.FetchResourceTypes").
				Str("type_id", raw.ID).
				Err(decodeErr).
				Msg("dropping resource type with unparseable definition")
			continue
		}
		types = append(types, typed)
	}

	return types, nil
}

func (h *httpCatalogClient) FetchResourcePage(ctx context.Context, scope models.Scope, pageNumber, pageSize int) (models.Page, error) {
	log := logger.FromContext(ctx)

	resp, err := h.authedRequest(ctx).
		SetQueryParam("page", strconv.Itoa(pageNumber)).
		SetQueryParam("limit", strconv.Itoa(pageSize)).
		SetQueryParam("account_id", scope.AccountID.String()).
		Get("/resources.json")
	if err != nil {
		return models.Page{}, fmt.Errorf("fetch resource page %d request: %w", pageNumber, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Page{}, err
	}

	var envelope pageEnvelope
	if err = json.Unmarshal(resp.Body(), &envelope); err != nil {
		return models.Page{}, fmt.Errorf("decode resource page %d response: %w", pageNumber, err)
	}

	page := models.Page{
		Items:      make([]models.Resource, 0, len(envelope.Body)),
		PageNumber: envelope.Header.Pagination.Page,
		PageSize:   envelope.Header.Pagination.Limit,
		TotalCount: envelope.Header.Pagination.Count,
	}
	if page.PageNumber == 0 {
		page.PageNumber = pageNumber
	}
	if page.PageSize == 0 {
		page.PageSize = pageSize
	}

	for _, raw := range envelope.Body {
		typed, decodeErr := raw.decode()
		if decodeErr != nil {
			log.Warn().
				Str("func", "httpCatalogClient.FetchResourcePage").
				Int("page", pageNumber).
				Str("resource_id", raw.ID).
				Err(decodeErr).
				Msg("dropping undecodable resource row")
			continue
		}
		page.Items = append(page.Items, typed)
	}

	return page, nil
}

func (h *httpCatalogClient) FetchFolders(ctx context.Context, scope models.Scope) ([]models.Folder, error) {
	log := logger.FromContext(ctx)

	resp, err := h.authedRequest(ctx).
		SetQueryParam("account_id", scope.AccountID.String()).
		Get("/folders.json")
	if err != nil {
		return nil, fmt.Errorf("fetch folders request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var envelope foldersEnvelope
	if err = json.Unmarshal(resp.Body(), &envelope); err != nil {
		return nil, fmt.Errorf("decode folders response: %w", err)
	}

	folders := make([]models.Folder, 0, len(envelope.Body))
	for _, raw := range envelope.Body {
		typed, decodeErr := raw.decode()
		if decodeErr != nil {
			log.Warn().
				Str("func", "httpCatalogClient.FetchFolders").
				Str("folder_id", raw.ID).
				Err(decodeErr).
				Msg("dropping undecodable folder row")
			continue
		}
		folders = append(folders, typed)
	}

	return folders, nil
}

func (h *httpCatalogClient) FetchTags(ctx context.Context, scope models.Scope) ([]models.Tag, error) {
	log := logger.FromContext(ctx)

	resp, err := h.authedRequest(ctx).
		SetQueryParam("account_id", scope.AccountID.String()).
		Get("/tags.json")
	if err != nil {
		return nil, fmt.Errorf("fetch tags request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var envelope tagsEnvelope
	if err = json.Unmarshal(resp.Body(), &envelope); err != nil {
		return nil, fmt.Errorf("decode tags response: %w", err)
	}

	tags := make([]models.Tag, 0, len(envelope.Body))
	for _, raw := range envelope.Body {
		typed, decodeErr := raw.decode()
		if decodeErr != nil {
			log.Warn().
				Str("func", "httpCatalogClient.FetchTags").
				Str("tag_id", raw.ID).
				Err(decodeErr).
				Msg("dropping undecodable tag row")
			continue
		}
		tags = append(tags, typed)
	}

	return tags, nil
}

func (h *httpCatalogClient) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}

func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	if resp.StatusCode() == http.StatusUnauthorized {
		return ErrUnauthorized
	}

	body := strings.TrimSpace(string(resp.Body()))
	if body == "" {
		body = http.StatusText(resp.StatusCode())
	}
	return fmt.Errorf("http %d: %s", resp.StatusCode(), body)
}
