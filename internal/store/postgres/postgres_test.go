package postgres_test

import (
	"context"
	"testing"

	"github.com/goto/salt/log"
	_ "github.com/jackc/pgx/v4/stdlib"
	"github.com/raystack/meridian/core/asset"
	"github.com/raystack/meridian/core/user"
	"github.com/raystack/meridian/internal/store/postgres"
	"github.com/raystack/meridian/internal/testutils"
)

const (
	defaultProviderName = "shield"
	defaultGetMaxSize   = 7
)

func newTestClient(t *testing.T, logger log.Logger) (*postgres.Client, error) {
	t.Helper()

	port, err := testutils.RunTestPG(t, logger)
	if err != nil {
		return nil, err
	}

	cfg := postgres.Config{
		Host:     testutils.PGHost,
		Port:     port,
		Name:     testutils.PGName,
		User:     testutils.PGUsername,
		Password: testutils.PGPassword,
		SSLMode:  "disable",
	}

	pgClient, err := postgres.NewClient(cfg)
	if err != nil {
		return nil, err
	}

	if err := testutils.RunMigrationsWithClient(t, pgClient, cfg); err != nil {
		return nil, err
	}

	t.Cleanup(func() {
		if err := pgClient.Close(); err != nil {
			t.Fatal(err)
		}
	})

	return pgClient, nil
}

func createUser(userRepo user.Repository, email string) (string, error) {
	return userRepo.Create(context.Background(), getUser(email))
}

func getUser(email string) *user.User {
	return &user.User{
		Email:    email,
		Provider: defaultProviderName,
	}
}

func createAsset(assetRepo asset.Repository, ownerEmail, assetURN, assetType string) (*asset.Asset, error) {
	ast := getAsset(ownerEmail, assetURN, assetType)
	id, err := assetRepo.Upsert(context.Background(), ast)
	if err != nil {
		return nil, err
	}
	ast.ID = id
	return ast, nil
}

func getAsset(ownerEmail, assetURN, assetType string) *asset.Asset {
	return &asset.Asset{
		URN:     assetURN,
		Type:    asset.Type(assetType),
		Service: "bigquery",
		UpdatedBy: user.User{
			Email: ownerEmail,
		},
	}
}
