package star

//go:generate mockery --name=Repository -r --case underscore --structname StarRepository --filename star_repository.go --output=./mocks

import (
	"context"
	"errors"
	"fmt"

	"github.com/raystack/meridian/core/asset"
	"github.com/raystack/meridian/core/user"
)

var (
	ErrEmptyUserID  = errors.New("star is missing user id")
	ErrEmptyAssetID = errors.New("star is missing asset id")
)

// Repository manages the (user, asset) star relation. Both Create and
// Delete are idempotent: starring twice keeps a single row, unstarring an
// absent star is a no-op success.
type Repository interface {
	Create(ctx context.Context, userID, assetID string) (string, error)
	GetStargazers(ctx context.Context, flt Filter, assetID string) ([]user.User, error)
	GetAllAssetsByUserID(ctx context.Context, flt Filter, userID string) ([]asset.Asset, error)
	GetAssetByUserID(ctx context.Context, userID, assetID string) (asset.Asset, error)
	Delete(ctx context.Context, userID, assetID string) error
}

type Filter struct {
	Size   int
	Offset int
}

type NotFoundError struct {
	AssetID string
	UserID  string
}

func (e NotFoundError) Error() string {
	cause := "could not find starred asset"
	if e.AssetID != "" {
		cause += fmt.Sprintf(" with asset id %q", e.AssetID)
	}
	if e.UserID != "" {
		cause += fmt.Sprintf(" for user id %q", e.UserID)
	}
	return cause
}

type InvalidError struct {
	AssetID string
	UserID  string
}

func (e InvalidError) Error() string {
	return fmt.Sprintf("invalid star with user id %q and asset id %q", e.UserID, e.AssetID)
}
