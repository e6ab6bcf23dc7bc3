package workermanager

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/goto/salt/log"
	"github.com/raystack/meridian/core/asset"
)

type ReconcilerConfig struct {
	Enabled   bool          `mapstructure:"enabled"`
	Interval  time.Duration `mapstructure:"interval" default:"1h"`
	BatchSize int           `mapstructure:"batch_size" default:"100"`
}

//go:generate mockery --name=AssetRepository -r --case underscore --structname AssetRepository --filename asset_repository_mock.go --output=./mocks

// AssetRepository is the subset of the system of record the reconciler
// reads from.
type AssetRepository interface {
	GetAll(ctx context.Context, flt asset.Filter) ([]asset.Asset, error)
	GetByID(ctx context.Context, id string) (asset.Asset, error)
}

//go:generate mockery --name=DiscoveryIndex -r --case underscore --structname DiscoveryIndex --filename discovery_index_mock.go --output=./mocks

// DiscoveryIndex is the subset of the search store the reconciler scans
// and repairs.
type DiscoveryIndex interface {
	ListIDs(ctx context.Context, size, offset int) ([]string, error)
	DeleteByID(ctx context.Context, assetID string) error
}

// Reconciler periodically repairs drift between the system of record and
// the search store. Rows updated since the last sweep are re-enqueued for
// indexing, and documents whose source row no longer exists are removed.
type Reconciler struct {
	assetRepo AssetRepository
	discovery DiscoveryIndex
	worker    asset.Worker
	logger    log.Logger

	interval  time.Duration
	batchSize int

	running    atomic.Bool
	checkpoint time.Time
}

func NewReconciler(
	cfg ReconcilerConfig,
	assetRepo AssetRepository,
	discovery DiscoveryIndex,
	wrkr asset.Worker,
	logger log.Logger,
) *Reconciler {
	interval := cfg.Interval
	if interval <= 0 {
		interval = time.Hour
	}
	batchSize := cfg.BatchSize
	if batchSize <= 0 {
		batchSize = 100
	}

	return &Reconciler{
		assetRepo: assetRepo,
		discovery: discovery,
		worker:    wrkr,
		logger:    logger,
		interval:  interval,
		batchSize: batchSize,
	}
}

// Run sweeps on a fixed interval until the context is cancelled. The first
// sweep starts after one full interval so that startup traffic settles.
func (r *Reconciler) Run(ctx context.Context) error {
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case <-ticker.C:
			if err := r.RunOnce(ctx); err != nil && !errors.Is(err, context.Canceled) {
				r.logger.Error("reconciler sweep failed", "err", err)
			}
		}
	}
}

// RunOnce performs a single sweep. Overlapping sweeps are skipped rather
// than queued.
func (r *Reconciler) RunOnce(ctx context.Context) error {
	if !r.running.CompareAndSwap(false, true) {
		r.logger.Warn("previous reconciler sweep still in progress, skipping")
		return nil
	}
	defer r.running.Store(false)

	sweepStart := time.Now()

	indexed, err := r.sweepUpdatedAssets(ctx)
	if err != nil {
		return fmt.Errorf("reconcile updated assets: %w", err)
	}

	removed, err := r.sweepOrphanedDocuments(ctx)
	if err != nil {
		return fmt.Errorf("reconcile orphaned documents: %w", err)
	}

	r.checkpoint = sweepStart
	r.logger.Info("reconciler sweep done",
		"re_enqueued", indexed,
		"orphans_removed", removed,
		"took", time.Since(sweepStart).String(),
	)
	return nil
}

// sweepUpdatedAssets pages over rows touched since the previous sweep and
// re-enqueues an index job for each. Indexing is idempotent, so enqueueing
// an already-mirrored asset is harmless.
func (r *Reconciler) sweepUpdatedAssets(ctx context.Context) (int, error) {
	var enqueued int
	for offset := 0; ; offset += r.batchSize {
		assets, err := r.assetRepo.GetAll(ctx, asset.Filter{
			UpdatedAfter:  r.checkpoint,
			Size:          r.batchSize,
			Offset:        offset,
			SortBy:        "updated_at",
			SortDirection: "asc",
		})
		if err != nil {
			return enqueued, fmt.Errorf("fetch assets batch at offset %d: %w", offset, err)
		}
		if len(assets) == 0 {
			return enqueued, nil
		}

		for _, ast := range assets {
			if err := r.worker.EnqueueIndexAssetJob(ctx, ast); err != nil {
				return enqueued, fmt.Errorf("enqueue index job for urn '%s': %w", ast.URN, err)
			}
			enqueued++
		}

		if len(assets) < r.batchSize {
			return enqueued, nil
		}
	}
}

// sweepOrphanedDocuments scans document IDs in the search store and removes
// those whose source row is gone. The offset only advances past documents
// that were kept: deletions shrink the result set, so advancing past a page
// with removals would skip the documents that slid into the vacated slots.
func (r *Reconciler) sweepOrphanedDocuments(ctx context.Context) (int, error) {
	var removed int
	for offset := 0; ; {
		ids, err := r.discovery.ListIDs(ctx, r.batchSize, offset)
		if err != nil {
			return removed, fmt.Errorf("list document IDs at offset %d: %w", offset, err)
		}
		if len(ids) == 0 {
			return removed, nil
		}

		kept := 0
		for _, id := range ids {
			_, err := r.assetRepo.GetByID(ctx, id)
			if err == nil {
				kept++
				continue
			}

			var notFound asset.NotFoundError
			if !errors.As(err, &notFound) {
				return removed, fmt.Errorf("check asset '%s': %w", id, err)
			}

			if err := r.discovery.DeleteByID(ctx, id); err != nil {
				return removed, fmt.Errorf("remove orphaned document '%s': %w", id, err)
			}
			removed++
		}

		if len(ids) < r.batchSize {
			return removed, nil
		}
		offset += kept
	}
}
