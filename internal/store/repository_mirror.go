// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Dmitry Khalenko

package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/dkhalenko/go-pass-mirror/internal/logger"
	"github.com/dkhalenko/go-pass-mirror/models"
)

// mirrorRepository is the SQLite-backed implementation of [MirrorStore].
// It executes all mirror writes directly against the local database
// using the embedded [*DB] connection.
//
// Every public method obtains a context-scoped logger via
// [logger.FromContext] so that all database interactions are traced
// with structured fields (account_id, record counts, iteration index).
type mirrorRepository struct {
	*DB
	logger *logger.Logger
}

// NewMirrorRepository constructs a [MirrorStore] backed by the provided
// database connection and logger.
func NewMirrorRepository(db *DB, logger *logger.Logger) MirrorStore {
	return &mirrorRepository{
		DB:     db,
		logger: logger,
	}
}

// SaveResourceTypes implements [MirrorStore]. The accepted catalog is
// small (tens of rows), so it is replaced wholesale: delete everything,
// insert the new set through a prepared statement, one transaction.
func (m *mirrorRepository) SaveResourceTypes(ctx context.Context, types []models.ResourceType) error {
	log := logger.FromContext(ctx)

	tx, err := m.DB.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).
			Str("func", "mirrorRepository.SaveResourceTypes").
			Int("types_count", len(types)).
			Msg("failed to begin transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	if _, err = tx.ExecContext(ctx, deleteResourceTypes); err != nil {
		log.Err(err).
			Str("func", "mirrorRepository.SaveResourceTypes").
			Msg("failed to clear resource types")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	stmt, err := tx.PrepareContext(ctx, saveResourceType)
	if err != nil {
		log.Err(err).
			Str("func", "mirrorRepository.SaveResourceTypes").
			Msg("failed to prepare statement")
		return fmt.Errorf("%w: %w", ErrPreparingStatement, err)
	}
	defer stmt.Close()

	for idx, rt := range types {
		specs, marshalErr := json.Marshal(rt.FieldSpecs)
		if marshalErr != nil {
			log.Err(marshalErr).
				Str("func", "mirrorRepository.SaveResourceTypes").
				Str("type_id", rt.ID.String()).
				Msg("failed to marshal field specs")
			return fmt.Errorf("marshal field specs for type %s: %w", rt.ID, marshalErr)
		}

		if _, err = stmt.ExecContext(ctx, rt.ID.String(), rt.Slug, rt.Name, string(specs)); err != nil {
			log.Err(err).
				Str("func", "mirrorRepository.SaveResourceTypes").
				Int("iteration", idx+1).
				Str("type_id", rt.ID.String()).
				Msg("failed to insert resource type")
			return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
		}
	}

	if commitErr := tx.Commit(); commitErr != nil {
		log.Err(commitErr).
			Str("func", "mirrorRepository.SaveResourceTypes").
			Int("types_count", len(types)).
			Msg("failed to commit transaction")
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, commitErr)
	}

	return nil
}

// BulkMarkPending implements [MirrorStore]. A single UPDATE covers the
// whole scope; there is no per-id loop.
func (m *mirrorRepository) BulkMarkPending(ctx context.Context, scope models.Scope) error {
	log := logger.FromContext(ctx)

	res, err := m.DB.ExecContext(ctx, markAllPending, models.StatePendingVerification, scope.AccountID.String())
	if err != nil {
		log.Err(err).
			Str("func", "mirrorRepository.BulkMarkPending").
			Str("account_id", scope.AccountID.String()).
			Msg("failed to mark cached resources pending")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	marked, _ := res.RowsAffected()
	log.Debug().
		Str("func", "mirrorRepository.BulkMarkPending").
		Str("account_id", scope.AccountID.String()).
		Int64("marked", marked).
		Msg("marked cached resources pending verification")

	return nil
}

// KnownModifiedAt implements [MirrorStore].
func (m *mirrorRepository) KnownModifiedAt(ctx context.Context, scope models.Scope) (map[uuid.UUID]time.Time, error) {
	log := logger.FromContext(ctx)

	rows, err := m.DB.QueryContext(ctx, getKnownModifiedAt, scope.AccountID.String())
	if err != nil {
		log.Err(err).
			Str("func", "mirrorRepository.KnownModifiedAt").
			Str("account_id", scope.AccountID.String()).
			Msg("failed to execute query for known modification timestamps")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	known := make(map[uuid.UUID]time.Time, 50)

	for rows.Next() {
		var rawID string
		var modifiedAt time.Time

		if scanErr := rows.Scan(&rawID, &modifiedAt); scanErr != nil {
			log.Err(scanErr).
				Str("func", "mirrorRepository.KnownModifiedAt").
				Str("account_id", scope.AccountID.String()).
				Msg("failed to scan resource row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		id, parseErr := uuid.Parse(rawID)
		if parseErr != nil {
			log.Err(parseErr).
				Str("func", "mirrorRepository.KnownModifiedAt").
				Str("resource_id", rawID).
				Msg("failed to parse cached resource id")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, parseErr)
		}

		known[id] = modifiedAt
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "mirrorRepository.KnownModifiedAt").
			Str("account_id", scope.AccountID.String()).
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return known, nil
}

// UpsertResources implements [MirrorStore]. All records of one page
// chunk are written inside a single transaction using a prepared
// statement; each record's tag and permission edges are rebuilt from
// scratch in the same transaction.
//
// The transaction is rolled back automatically (via defer) if any
// individual write fails; the commit is attempted only after all
// records succeed. Chunks committed by earlier calls are unaffected.
func (m *mirrorRepository) UpsertResources(ctx context.Context, scope models.Scope, records []models.Resource) error {
	log := logger.FromContext(ctx)

	if len(records) == 0 {
		return nil
	}

	tx, err := m.DB.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).
			Str("func", "mirrorRepository.UpsertResources").
			Int("records_count", len(records)).
			Msg("failed to begin transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, upsertResource)
	if err != nil {
		log.Err(err).
			Str("func", "mirrorRepository.UpsertResources").
			Int("records_count", len(records)).
			Msg("failed to prepare statement")
		return fmt.Errorf("%w: %w", ErrPreparingStatement, err)
	}
	defer stmt.Close()

	for idx, record := range records {
		log.Debug().
			Str("func", "mirrorRepository.UpsertResources").
			Int("iteration", idx+1).
			Int("total", len(records)).
			Str("resource_id", record.ID.String()).
			Msg("upserting resource in transaction")

		_, execErr := stmt.ExecContext(ctx,
			record.ID.String(),
			scope.AccountID.String(),
			record.TypeID.String(),
			uuidPtrToNull(record.FolderParentID),
			uuidPtrToNull(record.FavoriteID),
			record.Name,
			record.Username,
			record.URI,
			record.Description,
			record.Permission,
			record.ModifiedAt,
			models.StateStable,
		)
		if execErr != nil {
			log.Err(execErr).
				Str("func", "mirrorRepository.UpsertResources").
				Int("iteration", idx+1).
				Str("resource_id", record.ID.String()).
				Msg("failed to upsert resource")
			return fmt.Errorf("%w: %w", ErrExecutingQuery, execErr)
		}

		if err = m.rebuildTagEdges(ctx, tx, record); err != nil {
			return err
		}
		if err = m.rebuildPermissionEdges(ctx, tx, scope, record); err != nil {
			return err
		}
	}

	if commitErr := tx.Commit(); commitErr != nil {
		log.Err(commitErr).
			Str("func", "mirrorRepository.UpsertResources").
			Int("records_count", len(records)).
			Msg("failed to commit transaction")
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, commitErr)
	}

	return nil
}

func (m *mirrorRepository) rebuildTagEdges(ctx context.Context, tx *sql.Tx, record models.Resource) error {
	log := logger.FromContext(ctx)

	if _, err := tx.ExecContext(ctx, deleteResourceTagEdges, record.ID.String()); err != nil {
		log.Err(err).
			Str("func", "mirrorRepository.rebuildTagEdges").
			Str("resource_id", record.ID.String()).
			Msg("failed to clear tag edges")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	for _, tagID := range record.TagIDs {
		if _, err := tx.ExecContext(ctx, insertResourceTagEdge, record.ID.String(), tagID.String()); err != nil {
			log.Err(err).
				Str("func", "mirrorRepository.rebuildTagEdges").
				Str("resource_id", record.ID.String()).
				Str("tag_id", tagID.String()).
				Msg("failed to insert tag edge")
			return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
		}
	}

	return nil
}

// rebuildPermissionEdges clears the record's resource permission edges
// before inserting the current set, so edges revoked server-side do not
// survive the upsert.
func (m *mirrorRepository) rebuildPermissionEdges(ctx context.Context, tx *sql.Tx, scope models.Scope, record models.Resource) error {
	log := logger.FromContext(ctx)

	if _, err := tx.ExecContext(ctx, deleteResourcePermissionEdges, scope.AccountID.String(), record.ID.String()); err != nil {
		log.Err(err).
			Str("func", "mirrorRepository.rebuildPermissionEdges").
			Str("resource_id", record.ID.String()).
			Msg("failed to clear permission edges")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	edges := make([]models.PermissionEdge, 0, len(record.GroupPermissions)+len(record.UserPermissions))
	edges = append(edges, record.GroupPermissions...)
	edges = append(edges, record.UserPermissions...)

	for _, edge := range edges {
		_, err := tx.ExecContext(ctx, upsertPermissionEdge,
			edge.ID.String(),
			scope.AccountID.String(),
			edge.ACO,
			edge.ACOForeignKey.String(),
			edge.ARO,
			edge.AROForeignKey.String(),
			edge.Type,
		)
		if err != nil {
			log.Err(err).
				Str("func", "mirrorRepository.rebuildPermissionEdges").
				Str("resource_id", record.ID.String()).
				Str("permission_id", edge.ID.String()).
				Msg("failed to upsert permission edge")
			return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
		}
	}

	return nil
}

// MarkStable implements [MirrorStore]. The IN clause is built with
// squirrel since the id list length varies per page.
func (m *mirrorRepository) MarkStable(ctx context.Context, scope models.Scope, ids []uuid.UUID) error {
	log := logger.FromContext(ctx)

	if len(ids) == 0 {
		return nil
	}

	rawIDs := make([]string, 0, len(ids))
	for _, id := range ids {
		rawIDs = append(rawIDs, id.String())
	}

	query, args, err := sq.Update("resources").
		Set("sync_state", models.StateStable).
		Where(sq.Eq{"account_id": scope.AccountID.String(), "id": rawIDs}).
		ToSql()
	if err != nil {
		log.Err(err).
			Str("func", "mirrorRepository.MarkStable").
			Int("ids_count", len(ids)).
			Msg("failed to build mark-stable query")
		return fmt.Errorf("build mark-stable query: %w", err)
	}

	if _, err = m.DB.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "mirrorRepository.MarkStable").
			Int("ids_count", len(ids)).
			Msg("failed to mark resources stable")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return nil
}

// DeletePending implements [MirrorStore]. Records still pending after
// the last page are first transitioned to [models.StateRemoved], then
// their tag and permission edges go, then the records themselves, all
// in one transaction.
func (m *mirrorRepository) DeletePending(ctx context.Context, scope models.Scope) error {
	log := logger.FromContext(ctx)

	tx, err := m.DB.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).
			Str("func", "mirrorRepository.DeletePending").
			Str("account_id", scope.AccountID.String()).
			Msg("failed to begin transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	account := scope.AccountID.String()

	if _, err = tx.ExecContext(ctx, markPendingRemoved, models.StateRemoved, account, models.StatePendingVerification); err != nil {
		log.Err(err).
			Str("func", "mirrorRepository.DeletePending").
			Msg("failed to mark unconfirmed resources removed")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	if _, err = tx.ExecContext(ctx, deletePendingTagEdges, account, models.StateRemoved); err != nil {
		log.Err(err).
			Str("func", "mirrorRepository.DeletePending").
			Msg("failed to delete tag edges of removed resources")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	if _, err = tx.ExecContext(ctx, deletePendingPermissionEdges, account, account, models.StateRemoved); err != nil {
		log.Err(err).
			Str("func", "mirrorRepository.DeletePending").
			Msg("failed to delete permission edges of removed resources")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	res, err := tx.ExecContext(ctx, deletePendingResources, account, models.StateRemoved)
	if err != nil {
		log.Err(err).
			Str("func", "mirrorRepository.DeletePending").
			Msg("failed to delete removed resources")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	if commitErr := tx.Commit(); commitErr != nil {
		log.Err(commitErr).
			Str("func", "mirrorRepository.DeletePending").
			Msg("failed to commit transaction")
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, commitErr)
	}

	swept, _ := res.RowsAffected()
	log.Info().
		Str("func", "mirrorRepository.DeletePending").
		Str("account_id", account).
		Int64("swept", swept).
		Msg("swept unconfirmed resources")

	return nil
}

// ReplaceFolders implements [MirrorStore]. The caller guarantees the
// slice is ordered parent-before-child; inserts run in slice order so
// the folder_parent_id foreign key is satisfied at every step.
func (m *mirrorRepository) ReplaceFolders(ctx context.Context, scope models.Scope, ordered []models.Folder) error {
	log := logger.FromContext(ctx)

	tx, err := m.DB.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).
			Str("func", "mirrorRepository.ReplaceFolders").
			Int("folders_count", len(ordered)).
			Msg("failed to begin transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	if _, err = tx.ExecContext(ctx, deleteAccountFolders, scope.AccountID.String()); err != nil {
		log.Err(err).
			Str("func", "mirrorRepository.ReplaceFolders").
			Msg("failed to clear folders")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	stmt, err := tx.PrepareContext(ctx, insertFolder)
	if err != nil {
		log.Err(err).
			Str("func", "mirrorRepository.ReplaceFolders").
			Msg("failed to prepare statement")
		return fmt.Errorf("%w: %w", ErrPreparingStatement, err)
	}
	defer stmt.Close()

	for idx, folder := range ordered {
		log.Debug().
			Str("func", "mirrorRepository.ReplaceFolders").
			Int("iteration", idx+1).
			Int("total", len(ordered)).
			Str("folder_id", folder.ID.String()).
			Msg("inserting folder in transaction")

		_, execErr := stmt.ExecContext(ctx,
			folder.ID.String(),
			scope.AccountID.String(),
			folder.Name,
			uuidPtrToNull(folder.FolderParentID),
		)
		if execErr != nil {
			log.Err(execErr).
				Str("func", "mirrorRepository.ReplaceFolders").
				Int("iteration", idx+1).
				Str("folder_id", folder.ID.String()).
				Msg("failed to insert folder")
			return fmt.Errorf("%w: %w", ErrExecutingQuery, execErr)
		}
	}

	if commitErr := tx.Commit(); commitErr != nil {
		log.Err(commitErr).
			Str("func", "mirrorRepository.ReplaceFolders").
			Int("folders_count", len(ordered)).
			Msg("failed to commit transaction")
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, commitErr)
	}

	return nil
}

// ReplaceTags implements [MirrorStore].
func (m *mirrorRepository) ReplaceTags(ctx context.Context, scope models.Scope, tags []models.Tag) error {
	log := logger.FromContext(ctx)

	tx, err := m.DB.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).
			Str("func", "mirrorRepository.ReplaceTags").
			Int("tags_count", len(tags)).
			Msg("failed to begin transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	if _, err = tx.ExecContext(ctx, deleteAccountTags, scope.AccountID.String()); err != nil {
		log.Err(err).
			Str("func", "mirrorRepository.ReplaceTags").
			Msg("failed to clear tags")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	stmt, err := tx.PrepareContext(ctx, insertTag)
	if err != nil {
		log.Err(err).
			Str("func", "mirrorRepository.ReplaceTags").
			Msg("failed to prepare statement")
		return fmt.Errorf("%w: %w", ErrPreparingStatement, err)
	}
	defer stmt.Close()

	for idx, tag := range tags {
		if _, execErr := stmt.ExecContext(ctx, tag.ID.String(), scope.AccountID.String(), tag.Slug, tag.IsShared); execErr != nil {
			log.Err(execErr).
				Str("func", "mirrorRepository.ReplaceTags").
				Int("iteration", idx+1).
				Str("tag_id", tag.ID.String()).
				Msg("failed to insert tag")
			return fmt.Errorf("%w: %w", ErrExecutingQuery, execErr)
		}
	}

	if commitErr := tx.Commit(); commitErr != nil {
		log.Err(commitErr).
			Str("func", "mirrorRepository.ReplaceTags").
			Int("tags_count", len(tags)).
			Msg("failed to commit transaction")
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, commitErr)
	}

	return nil
}

// ReplacePermissions implements [MirrorStore]. Only edges of the given
// ACO kind are cleared, so folder edges and resource edges can be
// replaced independently.
func (m *mirrorRepository) ReplacePermissions(ctx context.Context, scope models.Scope, aco string, edges []models.PermissionEdge) error {
	log := logger.FromContext(ctx)

	tx, err := m.DB.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).
			Str("func", "mirrorRepository.ReplacePermissions").
			Int("edges_count", len(edges)).
			Msg("failed to begin transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	if _, err = tx.ExecContext(ctx, deleteAccountPermissionsByACO, scope.AccountID.String(), aco); err != nil {
		log.Err(err).
			Str("func", "mirrorRepository.ReplacePermissions").
			Msg("failed to clear permissions")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	stmt, err := tx.PrepareContext(ctx, upsertPermissionEdge)
	if err != nil {
		log.Err(err).
			Str("func", "mirrorRepository.ReplacePermissions").
			Msg("failed to prepare statement")
		return fmt.Errorf("%w: %w", ErrPreparingStatement, err)
	}
	defer stmt.Close()

	for idx, edge := range edges {
		_, execErr := stmt.ExecContext(ctx,
			edge.ID.String(),
			scope.AccountID.String(),
			edge.ACO,
			edge.ACOForeignKey.String(),
			edge.ARO,
			edge.AROForeignKey.String(),
			edge.Type,
		)
		if execErr != nil {
			log.Err(execErr).
				Str("func", "mirrorRepository.ReplacePermissions").
				Int("iteration", idx+1).
				Str("permission_id", edge.ID.String()).
				Msg("failed to insert permission edge")
			return fmt.Errorf("%w: %w", ErrExecutingQuery, execErr)
		}
	}

	if commitErr := tx.Commit(); commitErr != nil {
		log.Err(commitErr).
			Str("func", "mirrorRepository.ReplacePermissions").
			Int("edges_count", len(edges)).
			Msg("failed to commit transaction")
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, commitErr)
	}

	return nil
}

// uuidPtrToNull converts an optional uuid into a nullable TEXT column
// value.
func uuidPtrToNull(id *uuid.UUID) any {
	if id == nil {
		return nil
	}
	return id.String()
}
