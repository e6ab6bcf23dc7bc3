package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/raystack/meridian/core/asset"
	"github.com/raystack/meridian/core/star"
	"github.com/raystack/meridian/core/user"
)

type starClauses struct {
	Limit            int
	Offset           int
	SortKey          string
	SortDirectionKey string
}

// StarRepository is a type that manages star operation to the primary database
type StarRepository struct {
	client *Client
}

// NewStarRepository initializes star repository
func NewStarRepository(c *Client) (*StarRepository, error) {
	if c == nil {
		return nil, errNilPostgresClient
	}
	return &StarRepository{
		client: c,
	}, nil
}

// Create records that a user stars an asset. Starring the same asset
// again keeps the single existing row and returns its id.
func (r *StarRepository) Create(ctx context.Context, userID, assetID string) (string, error) {
	if userID == "" {
		return "", star.ErrEmptyUserID
	}
	if assetID == "" {
		return "", star.ErrEmptyAssetID
	}

	if !isValidUUID(userID) {
		return "", star.InvalidError{UserID: userID}
	}
	if !isValidUUID(assetID) {
		return "", star.InvalidError{AssetID: assetID}
	}

	var starID string
	if err := r.client.db.QueryRowxContext(ctx, `
					INSERT INTO
					stars
						(user_id, asset_id)
					VALUES
						($1, $2)
					ON CONFLICT (user_id, asset_id) DO NOTHING
					RETURNING id
					`, userID, assetID).Scan(&starID); err != nil {
		err = checkPostgresError(err)
		if errors.Is(err, sql.ErrNoRows) {
			// conflict path, the star already exists
			if gerr := r.client.db.QueryRowxContext(ctx, `
					SELECT id FROM stars WHERE user_id = $1 AND asset_id = $2
					`, userID, assetID).Scan(&starID); gerr != nil {
				return "", fmt.Errorf("failed fetching existing star: %w", gerr)
			}
			return starID, nil
		}
		if errors.Is(err, errForeignKeyViolation) {
			return "", star.NotFoundError{AssetID: assetID, UserID: userID}
		}
		return "", err
	}
	if starID == "" {
		return "", fmt.Errorf("error star ID is empty from DB")
	}
	return starID, nil
}

// GetStargazers fetch list of users that star an asset
func (r *StarRepository) GetStargazers(ctx context.Context, flt star.Filter, assetID string) ([]user.User, error) {
	if assetID == "" {
		return nil, star.ErrEmptyAssetID
	}

	if !isValidUUID(assetID) {
		return nil, star.InvalidError{AssetID: assetID}
	}

	clauses := r.buildClausesValue(flt)
	var userModels UserModels
	if err := r.client.db.SelectContext(ctx, &userModels, `
		SELECT
			DISTINCT ON (u.id) u.id,
			u.email,
			u.provider,
			u.created_at,
			u.updated_at
		FROM
			stars s
		JOIN
			users u ON s.user_id = u.id
		WHERE
			s.asset_id = $1
		LIMIT $2
		OFFSET $3
	`, assetID, clauses.Limit, clauses.Offset); err != nil {
		return nil, fmt.Errorf("failed fetching users of star: %w", err)
	}

	if len(userModels) == 0 {
		return nil, star.NotFoundError{AssetID: assetID}
	}

	return userModels.toUsers(), nil
}

// GetAllAssetsByUserID fetch list of assets starred by a user
func (r *StarRepository) GetAllAssetsByUserID(ctx context.Context, flt star.Filter, userID string) ([]asset.Asset, error) {
	if userID == "" {
		return nil, star.ErrEmptyUserID
	}

	if !isValidUUID(userID) {
		return nil, star.InvalidError{UserID: userID}
	}

	clauses := r.buildClausesValue(flt)

	var assetModels []AssetModel
	if err := r.client.db.SelectContext(ctx, &assetModels, `
		SELECT
			a.id as id,
			a.urn as urn,
			a.type as type,
			a.name as name,
			a.service as service,
			a.description as description,
			a.data as data,
			COALESCE(a.url, '') as url,
			a.labels as labels,
			a.version as version,
			a.created_at as created_at,
			a.updated_at as updated_at,
			u.id as "updated_by.id",
			u.email as "updated_by.email",
			u.provider as "updated_by.provider",
			u.created_at as "updated_by.created_at",
			u.updated_at as "updated_by.updated_at"
		FROM
			stars s
		INNER JOIN
			assets a ON s.asset_id = a.id
		LEFT JOIN
			users u ON a.updated_by = u.id
		WHERE
			s.user_id = $1
		ORDER BY
			s.created_at DESC
		LIMIT
			$2
		OFFSET
			$3
	`, userID, clauses.Limit, clauses.Offset); err != nil {
		return nil, fmt.Errorf("failed fetching stars by user: %w", err)
	}

	assets := []asset.Asset{}
	for _, am := range assetModels {
		assets = append(assets, am.toAsset())
	}
	return assets, nil
}

// GetAssetByUserID fetch a specific starred asset by user id
func (r *StarRepository) GetAssetByUserID(ctx context.Context, userID, assetID string) (asset.Asset, error) {
	if userID == "" {
		return asset.Asset{}, star.ErrEmptyUserID
	}
	if assetID == "" {
		return asset.Asset{}, star.ErrEmptyAssetID
	}

	if !isValidUUID(userID) {
		return asset.Asset{}, star.InvalidError{UserID: userID}
	}
	if !isValidUUID(assetID) {
		return asset.Asset{}, star.InvalidError{AssetID: assetID}
	}

	var am AssetModel
	err := r.client.db.GetContext(ctx, &am, `
		SELECT
			a.id,
			a.urn,
			a.type,
			a.service,
			a.name,
			a.description,
			a.data,
			COALESCE(a.url, '') as url,
			a.labels,
			a.version,
			a.created_at,
			a.updated_at,
			u.id as "updated_by.id",
			u.email as "updated_by.email",
			u.provider as "updated_by.provider",
			u.created_at as "updated_by.created_at",
			u.updated_at as "updated_by.updated_at"
		FROM
			stars s
		INNER JOIN
			assets a ON s.asset_id = a.id
		LEFT JOIN
			users u ON a.updated_by = u.id
		WHERE
			s.user_id = $1 AND s.asset_id = $2
		LIMIT 1
	`, userID, assetID)
	if errors.Is(err, sql.ErrNoRows) {
		return asset.Asset{}, star.NotFoundError{AssetID: assetID, UserID: userID}
	}
	if err != nil {
		return asset.Asset{}, fmt.Errorf("failed fetching star by user: %w", err)
	}

	return am.toAsset(), nil
}

// Delete will delete/unstar a starred asset for a user id. Removing a
// star that does not exist succeeds without touching anything.
func (r *StarRepository) Delete(ctx context.Context, userID, assetID string) error {
	if userID == "" {
		return star.ErrEmptyUserID
	}
	if assetID == "" {
		return star.ErrEmptyAssetID
	}

	if !isValidUUID(userID) {
		return star.InvalidError{UserID: userID}
	}
	if !isValidUUID(assetID) {
		return star.InvalidError{AssetID: assetID}
	}

	if _, err := r.client.db.ExecContext(ctx, `
		DELETE FROM
			stars
		WHERE
			user_id = $1 AND asset_id = $2
	`, userID, assetID); err != nil {
		return fmt.Errorf("failed to unstar an asset: %w", err)
	}

	return nil
}

func (r *StarRepository) buildClausesValue(flt star.Filter) starClauses {
	limit := flt.Size
	if limit == 0 {
		limit = DefaultMaxResultSize
	}

	return starClauses{
		Limit:            limit,
		Offset:           flt.Offset,
		SortKey:          columnNameCreatedAt,
		SortDirectionKey: sortDirectionDescending,
	}
}
