package asset

//go:generate mockery --name=Repository -r --case underscore --structname AssetRepository --filename asset_repository.go --output=./mocks
import (
	"context"
	"time"

	"github.com/r3labs/diff/v2"
	"github.com/raystack/meridian/core/user"
)

// Repository is the system of record for assets. It owns URN uniqueness and
// version history; the discovery index is always derived from it.
type Repository interface {
	GetAll(context.Context, Filter) ([]Asset, error)
	GetCount(context.Context, Filter) (int, error)
	GetByID(ctx context.Context, id string) (Asset, error)
	GetByURN(ctx context.Context, urn string) (Asset, error)
	GetVersionHistory(ctx context.Context, flt Filter, id string) ([]Asset, error)
	GetByVersionWithID(ctx context.Context, id, version string) (Asset, error)
	GetByVersionWithURN(ctx context.Context, urn, version string) (Asset, error)
	Upsert(ctx context.Context, ast *Asset) (string, error)
	DeleteByID(ctx context.Context, id string) error
	DeleteByURN(ctx context.Context, urn string) error
}

// Asset is a model that wraps arbitrary metadata with Meridian's context
type Asset struct {
	ID          string                 `json:"id" diff:"-"`
	URN         string                 `json:"urn" diff:"-"`
	Type        Type                   `json:"type" diff:"-"`
	Service     string                 `json:"service" diff:"-"`
	Name        string                 `json:"name" diff:"name"`
	Description string                 `json:"description" diff:"description"`
	Data        map[string]interface{} `json:"data" diff:"data"`
	URL         string                 `json:"url" diff:"url"`
	Labels      map[string]string      `json:"labels" diff:"labels"`
	CreatedAt   time.Time              `json:"created_at" diff:"-"`
	UpdatedAt   time.Time              `json:"updated_at" diff:"-"`
	Version     string                 `json:"version" diff:"-"`
	UpdatedBy   user.User              `json:"updated_by" diff:"-"`
	Changelog   diff.Changelog         `json:"changelog,omitempty" diff:"-"`
}

// Diff returns nil changelog with nil error if equal
// returns wrapped r3labs/diff Changelog struct with nil error if not equal
func (a *Asset) Diff(otherAsset *Asset) (diff.Changelog, error) {
	return diff.Diff(a, otherAsset, diff.DiscardComplexOrigin(), diff.AllowTypeMismatch(true))
}

// Patch merges the fields present in patchData into the asset. It mutates
// the asset itself. A key that is present replaces the corresponding field;
// a key that is absent leaves the field untouched.
func (a *Asset) Patch(patchData map[string]interface{}) {
	patchAsset(a, patchData)
}

// Validate returns an error when the asset misses its identity fields or
// carries an unregistered type.
func (a *Asset) Validate() error {
	if a == nil {
		return ErrNilAsset
	}
	if a.URN == "" {
		return ErrEmptyURN
	}
	if !a.Type.IsValid() {
		return ErrUnknownType
	}
	return nil
}
