package postgres_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/goto/salt/log"
	"github.com/raystack/meridian/core/asset"
	"github.com/raystack/meridian/internal/store/postgres"
	"github.com/stretchr/testify/suite"
)

type AssetRepositoryTestSuite struct {
	suite.Suite
	ctx        context.Context
	client     *postgres.Client
	repository *postgres.AssetRepository
	userRepo   *postgres.UserRepository
}

func (r *AssetRepositoryTestSuite) SetupSuite() {
	var err error

	logger := log.NewLogrus()
	r.client, err = newTestClient(r.T(), logger)
	if err != nil {
		r.T().Fatal(err)
	}

	r.ctx = context.Background()
	r.userRepo, err = postgres.NewUserRepository(r.client)
	if err != nil {
		r.T().Fatal(err)
	}

	r.repository, err = postgres.NewAssetRepository(r.client, r.userRepo, defaultGetMaxSize, defaultProviderName)
	if err != nil {
		r.T().Fatal(err)
	}
}

func (r *AssetRepositoryTestSuite) TestUpsert() {
	r.Run("should create a new asset with the base version", func() {
		ast := getAsset("user-upsert-1@raystack.io", "urn-u-1", "table")

		id, err := r.repository.Upsert(r.ctx, ast)
		r.Require().NoError(err)
		r.NotEmpty(id)

		fetched, err := r.repository.GetByID(r.ctx, id)
		r.Require().NoError(err)
		r.Equal("urn-u-1", fetched.URN)
		r.Equal(asset.BaseVersion, fetched.Version)
	})

	r.Run("should lazily create the updated_by user", func() {
		ast := getAsset("user-upsert-2@raystack.io", "urn-u-2", "table")

		_, err := r.repository.Upsert(r.ctx, ast)
		r.Require().NoError(err)

		usr, err := r.userRepo.GetByEmail(r.ctx, "user-upsert-2@raystack.io")
		r.Require().NoError(err)
		r.Equal(defaultProviderName, usr.Provider)
	})

	r.Run("should return the first id when the same urn is upserted again", func() {
		ast := getAsset("user-upsert-3@raystack.io", "urn-u-3", "table")
		firstID, err := r.repository.Upsert(r.ctx, ast)
		r.Require().NoError(err)

		updated := getAsset("user-upsert-3@raystack.io", "urn-u-3", "table")
		updated.Name = "renamed"
		secondID, err := r.repository.Upsert(r.ctx, updated)
		r.Require().NoError(err)

		r.Equal(firstID, secondID)

		fetched, err := r.repository.GetByID(r.ctx, firstID)
		r.Require().NoError(err)
		r.Equal("renamed", fetched.Name)
		r.Equal("0.2", fetched.Version)
	})

	r.Run("should not bump the version for an identical payload", func() {
		ast := getAsset("user-upsert-4@raystack.io", "urn-u-4", "table")
		id, err := r.repository.Upsert(r.ctx, ast)
		r.Require().NoError(err)

		replay := getAsset("user-upsert-4@raystack.io", "urn-u-4", "table")
		replayID, err := r.repository.Upsert(r.ctx, replay)
		r.Require().NoError(err)
		r.Equal(id, replayID)

		fetched, err := r.repository.GetByID(r.ctx, id)
		r.Require().NoError(err)
		r.Equal(asset.BaseVersion, fetched.Version)

		versions, err := r.repository.GetVersionHistory(r.ctx, asset.Filter{}, id)
		r.Require().NoError(err)
		r.Len(versions, 1)
	})
}

func (r *AssetRepositoryTestSuite) TestGetByID() {
	r.Run("should return an invalid error for a malformed id", func() {
		_, err := r.repository.GetByID(r.ctx, "not-a-uuid")
		r.ErrorAs(err, &asset.InvalidError{})
	})

	r.Run("should return a not found error for an unknown id", func() {
		randomID := uuid.NewString()
		_, err := r.repository.GetByID(r.ctx, randomID)
		r.ErrorIs(err, asset.NotFoundError{AssetID: randomID})
	})

	r.Run("should fetch the stored asset", func() {
		ast, err := createAsset(r.repository, "user-get-1@raystack.io", "urn-g-1", "topic")
		r.Require().NoError(err)

		fetched, err := r.repository.GetByID(r.ctx, ast.ID)
		r.Require().NoError(err)
		r.Equal(ast.URN, fetched.URN)
		r.Equal(ast.Type, fetched.Type)
		r.Equal(ast.Service, fetched.Service)
	})
}

func (r *AssetRepositoryTestSuite) TestGetByURN() {
	r.Run("should return a not found error for an unknown urn", func() {
		_, err := r.repository.GetByURN(r.ctx, "urn-does-not-exist")
		r.ErrorIs(err, asset.NotFoundError{URN: "urn-does-not-exist"})
	})

	r.Run("should fetch the stored asset", func() {
		ast, err := createAsset(r.repository, "user-get-2@raystack.io", "urn-g-2", "job")
		r.Require().NoError(err)

		fetched, err := r.repository.GetByURN(r.ctx, "urn-g-2")
		r.Require().NoError(err)
		r.Equal(ast.ID, fetched.ID)
	})
}

func (r *AssetRepositoryTestSuite) TestVersions() {
	ast := getAsset("user-version-1@raystack.io", "urn-v-1", "table")
	id, err := r.repository.Upsert(r.ctx, ast)
	r.Require().NoError(err)

	updated := getAsset("user-version-1@raystack.io", "urn-v-1", "table")
	updated.Description = "new description"
	_, err = r.repository.Upsert(r.ctx, updated)
	r.Require().NoError(err)

	r.Run("should list versions latest first", func() {
		versions, err := r.repository.GetVersionHistory(r.ctx, asset.Filter{}, id)
		r.Require().NoError(err)
		r.Require().Len(versions, 2)
		r.Equal("0.2", versions[0].Version)
		r.Equal(asset.BaseVersion, versions[1].Version)
		r.NotEmpty(versions[0].Changelog)
	})

	r.Run("should fetch a specific version snapshot", func() {
		snapshot, err := r.repository.GetByVersionWithID(r.ctx, id, asset.BaseVersion)
		r.Require().NoError(err)
		r.Equal(asset.BaseVersion, snapshot.Version)
		r.Empty(snapshot.Description)
	})

	r.Run("should return a not found error for an unknown version", func() {
		_, err := r.repository.GetByVersionWithID(r.ctx, id, "0.9")
		r.Error(err)
	})
}

func (r *AssetRepositoryTestSuite) TestDelete() {
	r.Run("should return an invalid error for a malformed id", func() {
		err := r.repository.DeleteByID(r.ctx, "not-a-uuid")
		r.ErrorAs(err, &asset.InvalidError{})
	})

	r.Run("should return a not found error for an unknown id", func() {
		randomID := uuid.NewString()
		err := r.repository.DeleteByID(r.ctx, randomID)
		r.ErrorIs(err, asset.NotFoundError{AssetID: randomID})
	})

	r.Run("should delete the asset by id", func() {
		ast, err := createAsset(r.repository, "user-delete-1@raystack.io", "urn-d-1", "table")
		r.Require().NoError(err)

		r.Require().NoError(r.repository.DeleteByID(r.ctx, ast.ID))

		_, err = r.repository.GetByID(r.ctx, ast.ID)
		r.ErrorIs(err, asset.NotFoundError{AssetID: ast.ID})
	})

	r.Run("should delete the asset by urn", func() {
		_, err := createAsset(r.repository, "user-delete-2@raystack.io", "urn-d-2", "table")
		r.Require().NoError(err)

		r.Require().NoError(r.repository.DeleteByURN(r.ctx, "urn-d-2"))

		err = r.repository.DeleteByURN(r.ctx, "urn-d-2")
		r.ErrorIs(err, asset.NotFoundError{URN: "urn-d-2"})
	})
}

func (r *AssetRepositoryTestSuite) TestGetAll() {
	_, err := createAsset(r.repository, "user-all-1@raystack.io", "urn-all-1", "dashboard")
	r.Require().NoError(err)
	_, err = createAsset(r.repository, "user-all-1@raystack.io", "urn-all-2", "dashboard")
	r.Require().NoError(err)

	r.Run("should filter assets by type", func() {
		assets, err := r.repository.GetAll(r.ctx, asset.Filter{Types: []asset.Type{asset.TypeDashboard}})
		r.Require().NoError(err)
		r.Require().Len(assets, 2)
		for _, ast := range assets {
			r.Equal(asset.TypeDashboard, ast.Type)
		}
	})

	r.Run("should count assets matching the filter", func() {
		total, err := r.repository.GetCount(r.ctx, asset.Filter{Types: []asset.Type{asset.TypeDashboard}})
		r.Require().NoError(err)
		r.Equal(2, total)
	})
}

func TestAssetRepository(t *testing.T) {
	suite.Run(t, &AssetRepositoryTestSuite{})
}
