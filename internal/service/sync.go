// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Dmitry Khalenko

package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/dkhalenko/go-pass-mirror/internal/adapter"
	"github.com/dkhalenko/go-pass-mirror/internal/crypto"
	"github.com/dkhalenko/go-pass-mirror/internal/logger"
	"github.com/dkhalenko/go-pass-mirror/internal/store"
	"github.com/dkhalenko/go-pass-mirror/models"
)

const defaultChunkSize = 100

// mirrorSyncService is the reconciliation driver: it orchestrates one
// synchronization pass over the remote catalog, converging the local
// mirror to server state by mark-and-sweep.
//
// The driver holds no long-lived lock and no per-pass mutable state of
// its own; the only shared mutable resource is the mirror store, and
// every write goes through one of its per-chunk transactions. Each page
// pipeline is an independent unit of work, which is what makes the
// bounded-concurrency mode sound.
type mirrorSyncService struct {
	catalog   adapter.CatalogClient
	decryptor crypto.MetadataDecryptor
	mirror    store.MirrorStore
	logger    *logger.Logger
}

func NewMirrorSyncService(
	catalog adapter.CatalogClient,
	decryptor crypto.MetadataDecryptor,
	mirror store.MirrorStore,
	log *logger.Logger,
) MirrorSyncService {
	return &mirrorSyncService{
		catalog:   catalog,
		decryptor: decryptor,
		mirror:    mirror,
		logger:    log,
	}
}

// Synchronize implements [MirrorSyncService].
//
// Pass structure:
//  1. fetch and persist the filtered resource-type catalog (failure
//     here aborts before any record mutation);
//  2. bulk-mark every cached record of the scope pending verification;
//  3. capture the known modification timestamps in one bulk lookup;
//  4. drive the page pipelines, serially or concurrently;
//  5. sweep records still pending after every pipeline has finished.
//
// A page fetch or commit failure terminates the pass but does not roll
// back pages committed before it; partial convergence is preserved and
// the next pass completes the rest.
func (s *mirrorSyncService) Synchronize(ctx context.Context, scope models.Scope, mode models.SyncMode) error {
	log := logger.FromContext(ctx)

	if mode.ChunkSize <= 0 {
		mode.ChunkSize = defaultChunkSize
	}

	types, err := s.catalog.FetchResourceTypes(ctx)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrCatalogFetch, err)
	}
	if err = s.mirror.SaveResourceTypes(ctx, types); err != nil {
		return fmt.Errorf("persist resource types: %w", err)
	}

	if err = s.mirror.BulkMarkPending(ctx, scope); err != nil {
		return fmt.Errorf("mark cached resources pending: %w", err)
	}

	known, err := s.mirror.KnownModifiedAt(ctx, scope)
	if err != nil {
		return fmt.Errorf("load known modification timestamps: %w", err)
	}

	reconciler := NewReconciler(types, s.decryptor.HasAccess)

	if mode.Kind == models.SyncConcurrent {
		err = s.runConcurrent(ctx, scope, mode, reconciler, known)
	} else {
		err = s.runSerial(ctx, scope, mode, reconciler, known)
	}
	if err != nil {
		return err
	}

	if err = s.mirror.DeletePending(ctx, scope); err != nil {
		return fmt.Errorf("sweep unconfirmed resources: %w", err)
	}

	log.Info().
		Str("func", "mirrorSyncService.Synchronize").
		Str("account_id", scope.AccountID.String()).
		Int("accepted_types", len(types)).
		Msg("synchronization pass converged")

	return nil
}

// runSerial requests page n+1 only after page n is fully reconciled
// and committed. Cancellation is checked between pages.
func (s *mirrorSyncService) runSerial(
	ctx context.Context,
	scope models.Scope,
	mode models.SyncMode,
	reconciler *Reconciler,
	known map[uuid.UUID]time.Time,
) error {
	received := 0

	for pageNumber := 1; ; pageNumber++ {
		if err := ctx.Err(); err != nil {
			return err
		}

		page, err := s.catalog.FetchResourcePage(ctx, scope, pageNumber, mode.ChunkSize)
		if err != nil {
			return fmt.Errorf("%w: page %d: %w", ErrPageFetch, pageNumber, err)
		}

		if err = s.reconcilePage(ctx, scope, page, reconciler, known); err != nil {
			return err
		}

		received += len(page.Items)
		if !page.HasMore(received) {
			return nil
		}
	}
}

// runConcurrent fetches the first page to learn the total count, then
// dispatches the remaining page pipelines to a bounded errgroup. Page
// commit order across pipelines is irrelevant: every item's decision
// depends only on its own id and the timestamp map captured before the
// first fetch. The group join guarantees the caller's sweep runs only
// after every pipeline has finished.
func (s *mirrorSyncService) runConcurrent(
	ctx context.Context,
	scope models.Scope,
	mode models.SyncMode,
	reconciler *Reconciler,
	known map[uuid.UUID]time.Time,
) error {
	first, err := s.catalog.FetchResourcePage(ctx, scope, 1, mode.ChunkSize)
	if err != nil {
		return fmt.Errorf("%w: page 1: %w", ErrPageFetch, err)
	}
	if err = s.reconcilePage(ctx, scope, first, reconciler, known); err != nil {
		return err
	}
	if !first.HasMore(len(first.Items)) {
		return nil
	}

	totalPages := (first.TotalCount + mode.ChunkSize - 1) / mode.ChunkSize

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(1, mode.MaxTasks))

	for pageNumber := 2; pageNumber <= totalPages; pageNumber++ {
		pageNumber := pageNumber
		g.Go(func() error {
			page, fetchErr := s.catalog.FetchResourcePage(gctx, scope, pageNumber, mode.ChunkSize)
			if fetchErr != nil {
				return fmt.Errorf("%w: page %d: %w", ErrPageFetch, pageNumber, fetchErr)
			}
			return s.reconcilePage(gctx, scope, page, reconciler, known)
		})
	}

	return g.Wait()
}

// reconcilePage classifies every item of one page and commits the
// accepted records as a single store transaction. Record-scoped
// failures (decryption, missing decrypted name) drop the body write
// but still confirm the id, and never abort the page; only the commit
// itself can fail the pipeline.
func (s *mirrorSyncService) reconcilePage(
	ctx context.Context,
	scope models.Scope,
	page models.Page,
	reconciler *Reconciler,
	known map[uuid.UUID]time.Time,
) error {
	log := logger.FromContext(ctx)

	upserts := make([]models.Resource, 0, len(page.Items))
	seen := make([]uuid.UUID, 0, len(page.Items))

	for _, item := range page.Items {
		var knownAt *time.Time
		if ts, ok := known[item.ID]; ok {
			knownAt = &ts
		}

		decision := reconciler.Decide(item, knownAt)

		switch decision.Kind {
		case models.DecisionIgnore:
			log.Debug().
				Str("func", "mirrorSyncService.reconcilePage").
				Str("resource_id", item.ID.String()).
				Str("reason", string(decision.Reason)).
				Msg("ignoring remote record")

		case models.DecisionSkipUnchanged:
			// Seen but unchanged: the state transition alone protects
			// the record from the sweep.
			seen = append(seen, item.ID)

		case models.DecisionUpsert:
			upserts = append(upserts, item)

		case models.DecisionUpsertAfterDecrypt:
			record, ok := s.decryptRecord(ctx, item)
			if !ok {
				// The page still confirmed the id exists. Confirming it
				// keeps a previously cached copy out of the sweep when
				// the fresh blob is corrupt; for an uncached id the
				// state update matches no row.
				seen = append(seen, item.ID)
				continue
			}
			upserts = append(upserts, record)

		case models.DecisionDeferInaccessible:
			// Neither created nor deleted. Confirming the id keeps an
			// existing local copy out of the sweep; for an unknown id
			// the state update matches no row and writes nothing.
			seen = append(seen, item.ID)
			log.Debug().
				Str("func", "mirrorSyncService.reconcilePage").
				Str("resource_id", item.ID.String()).
				Msg("metadata key inaccessible, leaving record untouched")
		}
	}

	if len(upserts) > 0 {
		if err := s.mirror.UpsertResources(ctx, scope, upserts); err != nil {
			return fmt.Errorf("commit page %d: %w", page.PageNumber, err)
		}
	}
	if len(seen) > 0 {
		if err := s.mirror.MarkStable(ctx, scope, seen); err != nil {
			return fmt.Errorf("confirm unchanged records of page %d: %w", page.PageNumber, err)
		}
	}

	return nil
}

// decryptRecord resolves an UpsertAfterDecrypt decision. Keys may
// differ per record, so decryption is one call per item. A failure
// drops the single record's body write: one corrupt record must never
// block convergence of the rest of the account's data.
func (s *mirrorSyncService) decryptRecord(ctx context.Context, item models.Resource) (models.Resource, bool) {
	log := logger.FromContext(ctx)

	doc, err := s.decryptor.Decrypt(item.Metadata, *item.MetadataKeyID, item.MetadataKeyType)
	if err != nil {
		log.Warn().
			Str("func", "mirrorSyncService.decryptRecord").
			Str("resource_id", item.ID.String()).
			Err(err).
			Msg("metadata decryption failed, degrading record to ignore")
		return models.Resource{}, false
	}

	doc.Apply(&item)
	if !item.HasName() {
		log.Warn().
			Str("func", "mirrorSyncService.decryptRecord").
			Str("resource_id", item.ID.String()).
			Msg("decrypted metadata carries no name, discarding record")
		return models.Resource{}, false
	}

	return item, true
}
