package workermanager_test

import (
	"errors"
	"testing"

	"github.com/raystack/meridian/core/asset"
	"github.com/raystack/meridian/internal/workermanager"
	"github.com/raystack/meridian/internal/workermanager/mocks"
	"github.com/stretchr/testify/assert"
)

func TestInSituWorker_EnqueueIndexAssetJob(t *testing.T) {
	sampleAsset := asset.Asset{ID: "some-id", URN: "some-urn", Type: asset.TypeTable, Service: "bigquery"}

	cases := []struct {
		name        string
		upsertErr   error
		expectedErr string
	}{
		{name: "Success"},
		{
			name:        "Failure",
			upsertErr:   errors.New("fail"),
			expectedErr: "index asset: upsert into discovery repo: fail: urn 'some-urn'",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			discoveryRepo := new(mocks.DiscoveryRepository)
			discoveryRepo.On("Upsert", ctx, sampleAsset).Return(tc.upsertErr)
			defer discoveryRepo.AssertExpectations(t)

			wrkr := workermanager.NewInSituWorker(workermanager.Deps{DiscoveryRepo: discoveryRepo})
			err := wrkr.EnqueueIndexAssetJob(ctx, sampleAsset)
			if tc.expectedErr != "" {
				assert.ErrorContains(t, err, tc.expectedErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestInSituWorker_EnqueueDeleteAssetJob(t *testing.T) {
	cases := []struct {
		name        string
		deleteErr   error
		expectedErr string
	}{
		{name: "Success"},
		{
			name:        "Failure",
			deleteErr:   errors.New("fail"),
			expectedErr: "delete asset from discovery repo: fail: urn 'some-urn'",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			discoveryRepo := new(mocks.DiscoveryRepository)
			discoveryRepo.On("DeleteByURN", ctx, "some-urn").Return(tc.deleteErr)
			defer discoveryRepo.AssertExpectations(t)

			wrkr := workermanager.NewInSituWorker(workermanager.Deps{DiscoveryRepo: discoveryRepo})
			err := wrkr.EnqueueDeleteAssetJob(ctx, "some-urn")
			if tc.expectedErr != "" {
				assert.ErrorContains(t, err, tc.expectedErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestInSituWorker_Close(t *testing.T) {
	wrkr := workermanager.NewInSituWorker(workermanager.Deps{})
	assert.NoError(t, wrkr.Close())
}
