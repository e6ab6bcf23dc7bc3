package workermanager_test

import (
	"errors"
	"testing"

	"github.com/goto/salt/log"
	"github.com/raystack/meridian/core/asset"
	assetmocks "github.com/raystack/meridian/core/asset/mocks"
	"github.com/raystack/meridian/internal/workermanager"
	"github.com/raystack/meridian/internal/workermanager/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestReconciler(
	assetRepo *mocks.AssetRepository,
	discovery *mocks.DiscoveryIndex,
	wrkr *assetmocks.Worker,
) *workermanager.Reconciler {
	return workermanager.NewReconciler(
		workermanager.ReconcilerConfig{BatchSize: 2},
		assetRepo,
		discovery,
		wrkr,
		log.NewNoop(),
	)
}

func TestReconciler_RunOnce(t *testing.T) {
	t.Run("re-enqueues updated assets and removes orphans", func(t *testing.T) {
		assets := []asset.Asset{
			{ID: "a1", URN: "urn::a1"},
			{ID: "a2", URN: "urn::a2"},
		}

		assetRepo := new(mocks.AssetRepository)
		assetRepo.On("GetAll", ctx, mock.MatchedBy(func(flt asset.Filter) bool {
			return flt.Offset == 0 && flt.Size == 2
		})).Return(assets, nil)
		assetRepo.On("GetAll", ctx, mock.MatchedBy(func(flt asset.Filter) bool {
			return flt.Offset == 2
		})).Return([]asset.Asset{}, nil)
		assetRepo.On("GetByID", ctx, "a1").Return(assets[0], nil)
		assetRepo.On("GetByID", ctx, "gone").Return(asset.Asset{}, asset.NotFoundError{AssetID: "gone"})

		discovery := new(mocks.DiscoveryIndex)
		discovery.On("ListIDs", ctx, 2, 0).Return([]string{"a1", "gone"}, nil)
		discovery.On("ListIDs", ctx, 2, 1).Return([]string{}, nil)
		discovery.On("DeleteByID", ctx, "gone").Return(nil)

		wrkr := new(assetmocks.Worker)
		wrkr.On("EnqueueIndexAssetJob", ctx, assets[0]).Return(nil)
		wrkr.On("EnqueueIndexAssetJob", ctx, assets[1]).Return(nil)

		r := newTestReconciler(assetRepo, discovery, wrkr)
		require.NoError(t, r.RunOnce(ctx))

		assetRepo.AssertExpectations(t)
		discovery.AssertExpectations(t)
		wrkr.AssertExpectations(t)
	})

	t.Run("stops at a short batch without fetching the next page", func(t *testing.T) {
		assetRepo := new(mocks.AssetRepository)
		assetRepo.On("GetAll", ctx, mock.Anything).Return([]asset.Asset{{ID: "a1"}}, nil).Once()

		discovery := new(mocks.DiscoveryIndex)
		discovery.On("ListIDs", ctx, 2, 0).Return(nil, nil)

		wrkr := new(assetmocks.Worker)
		wrkr.On("EnqueueIndexAssetJob", ctx, mock.Anything).Return(nil)

		r := newTestReconciler(assetRepo, discovery, wrkr)
		require.NoError(t, r.RunOnce(ctx))
		assetRepo.AssertExpectations(t)
	})

	t.Run("re-queries a page slot after deleting from it", func(t *testing.T) {
		// deleting documents shifts later ones into the vacated slots, so a
		// fully-orphaned page must be fetched again from the same offset
		assetRepo := new(mocks.AssetRepository)
		assetRepo.On("GetAll", ctx, mock.Anything).Return(nil, nil)
		assetRepo.On("GetByID", ctx, "gone1").Return(asset.Asset{}, asset.NotFoundError{AssetID: "gone1"})
		assetRepo.On("GetByID", ctx, "gone2").Return(asset.Asset{}, asset.NotFoundError{AssetID: "gone2"})
		assetRepo.On("GetByID", ctx, "gone3").Return(asset.Asset{}, asset.NotFoundError{AssetID: "gone3"})

		discovery := new(mocks.DiscoveryIndex)
		discovery.On("ListIDs", ctx, 2, 0).Return([]string{"gone1", "gone2"}, nil).Once()
		discovery.On("ListIDs", ctx, 2, 0).Return([]string{"gone3"}, nil).Once()
		discovery.On("DeleteByID", ctx, "gone1").Return(nil)
		discovery.On("DeleteByID", ctx, "gone2").Return(nil)
		discovery.On("DeleteByID", ctx, "gone3").Return(nil)

		r := newTestReconciler(assetRepo, discovery, new(assetmocks.Worker))
		require.NoError(t, r.RunOnce(ctx))

		discovery.AssertExpectations(t)
	})

	t.Run("propagates repository errors", func(t *testing.T) {
		assetRepo := new(mocks.AssetRepository)
		assetRepo.On("GetAll", ctx, mock.Anything).Return(nil, errors.New("db down"))

		r := newTestReconciler(assetRepo, new(mocks.DiscoveryIndex), new(assetmocks.Worker))
		err := r.RunOnce(ctx)
		assert.ErrorContains(t, err, "reconcile updated assets")
		assert.ErrorContains(t, err, "db down")
	})

	t.Run("keeps documents whose lookup fails with a transient error", func(t *testing.T) {
		assetRepo := new(mocks.AssetRepository)
		assetRepo.On("GetAll", ctx, mock.Anything).Return(nil, nil)
		assetRepo.On("GetByID", ctx, "a1").Return(asset.Asset{}, errors.New("timeout"))

		discovery := new(mocks.DiscoveryIndex)
		discovery.On("ListIDs", ctx, 2, 0).Return([]string{"a1"}, nil)

		r := newTestReconciler(assetRepo, discovery, new(assetmocks.Worker))
		err := r.RunOnce(ctx)
		assert.ErrorContains(t, err, "reconcile orphaned documents")
		discovery.AssertNotCalled(t, "DeleteByID", ctx, "a1")
	})
}
