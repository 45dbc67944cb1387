// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Dmitry Khalenko

package adapter

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/dkhalenko/go-pass-mirror/models"
)

// Wire rows arrive with string identifiers and loosely typed columns.
// Each raw type carries a decode method performing the runtime checks
// once, so everything past the adapter works with typed models and the
// reconciliation logic never sees a malformed row.

type rawResource struct {
	ID              string          `json:"id"`
	TypeID          string          `json:"resource_type_id"`
	FolderParentID  *string         `json:"folder_parent_id"`
	FavoriteID      *string         `json:"favorite_id"`
	Name            string          `json:"name"`
	Username        string          `json:"username"`
	URI             string          `json:"uri"`
	Description     string          `json:"description"`
	Permission      string          `json:"permission"`
	TagIDs          []string        `json:"tag_ids"`
	GroupPerms      []rawPermission `json:"group_permissions"`
	UserPerms       []rawPermission `json:"user_permissions"`
	Modified        string          `json:"modified"`
	MetadataKeyID   *string         `json:"metadata_key_id"`
	MetadataKeyType string          `json:"metadata_key_type"`
	Metadata        string          `json:"metadata"`
}

type rawPermission struct {
	ID            string `json:"id"`
	ACO           string `json:"aco"`
	ACOForeignKey string `json:"aco_foreign_key"`
	ARO           string `json:"aro"`
	AROForeignKey string `json:"aro_foreign_key"`
	Type          int    `json:"type"`
}

type rawResourceType struct {
	ID         string          `json:"id"`
	Slug       string          `json:"slug"`
	Name       string          `json:"name"`
	Definition json.RawMessage `json:"definition"`
}

type rawFolder struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	FolderParentID *string         `json:"folder_parent_id"`
	Permissions    []rawPermission `json:"permissions"`
}

type rawTag struct {
	ID       string `json:"id"`
	Slug     string `json:"slug"`
	IsShared bool   `json:"is_shared"`
}

func (r rawResource) decode() (models.Resource, error) {
	fail := func(err error) (models.Resource, error) {
		return models.Resource{}, &DecodeError{Entity: "resource", RawID: r.ID, Err: err}
	}

	id, err := uuid.Parse(r.ID)
	if err != nil {
		return fail(fmt.Errorf("id: %w", err))
	}
	typeID, err := uuid.Parse(r.TypeID)
	if err != nil {
		return fail(fmt.Errorf("resource_type_id: %w", err))
	}

	modified, err := time.Parse(time.RFC3339, r.Modified)
	if err != nil {
		return fail(fmt.Errorf("modified: %w", err))
	}

	folderID, err := parseOptionalID(r.FolderParentID)
	if err != nil {
		return fail(fmt.Errorf("folder_parent_id: %w", err))
	}
	favoriteID, err := parseOptionalID(r.FavoriteID)
	if err != nil {
		return fail(fmt.Errorf("favorite_id: %w", err))
	}

	res := models.Resource{
		ID:             id,
		TypeID:         typeID,
		FolderParentID: folderID,
		FavoriteID:     favoriteID,
		Name:           r.Name,
		Username:       r.Username,
		URI:            r.URI,
		Description:    r.Description,
		Permission:     r.Permission,
		ModifiedAt:     modified,
		Metadata:       r.Metadata,
	}

	for _, raw := range r.TagIDs {
		tagID, tagErr := uuid.Parse(raw)
		if tagErr != nil {
			return fail(fmt.Errorf("tag id %q: %w", raw, tagErr))
		}
		res.TagIDs = append(res.TagIDs, tagID)
	}

	for _, raw := range r.GroupPerms {
		edge, permErr := raw.decode()
		if permErr != nil {
			return fail(permErr)
		}
		res.GroupPermissions = append(res.GroupPermissions, edge)
	}
	for _, raw := range r.UserPerms {
		edge, permErr := raw.decode()
		if permErr != nil {
			return fail(permErr)
		}
		res.UserPermissions = append(res.UserPermissions, edge)
	}

	// Ciphertext bookkeeping fields travel together or not at all.
	if r.Metadata != "" {
		if r.MetadataKeyID == nil {
			return fail(fmt.Errorf("metadata present without metadata_key_id"))
		}
		keyID, keyErr := uuid.Parse(*r.MetadataKeyID)
		if keyErr != nil {
			return fail(fmt.Errorf("metadata_key_id: %w", keyErr))
		}
		keyType := models.MetadataKeyType(r.MetadataKeyType)
		if keyType != models.MetadataKeyShared && keyType != models.MetadataKeyUser {
			return fail(fmt.Errorf("metadata_key_type %q unknown", r.MetadataKeyType))
		}
		res.MetadataKeyID = &keyID
		res.MetadataKeyType = keyType
	}

	return res, nil
}

func (r rawPermission) decode() (models.PermissionEdge, error) {
	id, err := uuid.Parse(r.ID)
	if err != nil {
		return models.PermissionEdge{}, fmt.Errorf("permission id: %w", err)
	}
	aco, err := uuid.Parse(r.ACOForeignKey)
	if err != nil {
		return models.PermissionEdge{}, fmt.Errorf("permission aco_foreign_key: %w", err)
	}
	aro, err := uuid.Parse(r.AROForeignKey)
	if err != nil {
		return models.PermissionEdge{}, fmt.Errorf("permission aro_foreign_key: %w", err)
	}

	return models.PermissionEdge{
		ID:            id,
		ACO:           r.ACO,
		ACOForeignKey: aco,
		ARO:           r.ARO,
		AROForeignKey: aro,
		Type:          r.Type,
	}, nil
}

// decode parses the type row including its full field-spec definition.
// An unparseable definition invalidates the whole type: the caller
// drops it, and every resource referencing it, from the pass.
func (r rawResourceType) decode() (models.ResourceType, error) {
	fail := func(err error) (models.ResourceType, error) {
		return models.ResourceType{}, &DecodeError{Entity: "resource type", RawID: r.ID, Err: err}
	}

	id, err := uuid.Parse(r.ID)
	if err != nil {
		return fail(fmt.Errorf("id: %w", err))
	}
	if r.Slug == "" {
		return fail(fmt.Errorf("slug is empty"))
	}

	var definition struct {
		Fields []models.FieldSpec `json:"fields"`
	}
	dec := json.NewDecoder(bytes.NewReader(r.Definition))
	dec.DisallowUnknownFields()
	if err = dec.Decode(&definition); err != nil {
		return fail(fmt.Errorf("definition: %w", err))
	}
	if len(definition.Fields) == 0 {
		return fail(fmt.Errorf("definition has no fields"))
	}
	for _, spec := range definition.Fields {
		if spec.Name == "" || spec.Type == "" {
			return fail(fmt.Errorf("field spec missing name or type"))
		}
	}

	return models.ResourceType{
		ID:         id,
		Slug:       r.Slug,
		Name:       r.Name,
		FieldSpecs: definition.Fields,
	}, nil
}

func (r rawFolder) decode() (models.Folder, error) {
	fail := func(err error) (models.Folder, error) {
		return models.Folder{}, &DecodeError{Entity: "folder", RawID: r.ID, Err: err}
	}

	id, err := uuid.Parse(r.ID)
	if err != nil {
		return fail(fmt.Errorf("id: %w", err))
	}
	parentID, err := parseOptionalID(r.FolderParentID)
	if err != nil {
		return fail(fmt.Errorf("folder_parent_id: %w", err))
	}

	folder := models.Folder{
		ID:             id,
		Name:           r.Name,
		FolderParentID: parentID,
	}
	for _, raw := range r.Permissions {
		edge, permErr := raw.decode()
		if permErr != nil {
			return fail(permErr)
		}
		folder.Permissions = append(folder.Permissions, edge)
	}

	return folder, nil
}

func (r rawTag) decode() (models.Tag, error) {
	id, err := uuid.Parse(r.ID)
	if err != nil {
		return models.Tag{}, &DecodeError{Entity: "tag", RawID: r.ID, Err: fmt.Errorf("id: %w", err)}
	}

	return models.Tag{ID: id, Slug: r.Slug, IsShared: r.IsShared}, nil
}

func parseOptionalID(raw *string) (*uuid.UUID, error) {
	if raw == nil || *raw == "" {
		return nil, nil
	}
	id, err := uuid.Parse(*raw)
	if err != nil {
		return nil, err
	}
	return &id, nil
}
