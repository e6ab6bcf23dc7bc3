package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
	"github.com/r3labs/diff/v2"
	"github.com/raystack/meridian/core/asset"
	"github.com/raystack/meridian/core/user"
)

// AssetRepository is a type that manages asset operation to the primary database
type AssetRepository struct {
	client              *Client
	userRepo            *UserRepository
	defaultGetMaxSize   int
	defaultUserProvider string
}

// NewAssetRepository initializes asset repository clients
func NewAssetRepository(c *Client, userRepo *UserRepository, defaultGetMaxSize int, defaultUserProvider string) (*AssetRepository, error) {
	if c == nil {
		return nil, errNilPostgresClient
	}
	if defaultGetMaxSize == 0 {
		defaultGetMaxSize = DefaultMaxResultSize
	}
	if defaultUserProvider == "" {
		defaultUserProvider = "unknown"
	}

	return &AssetRepository{
		client:              c,
		userRepo:            userRepo,
		defaultGetMaxSize:   defaultGetMaxSize,
		defaultUserProvider: defaultUserProvider,
	}, nil
}

// GetAll retrieves list of assets with filters
func (r *AssetRepository) GetAll(ctx context.Context, flt asset.Filter) ([]asset.Asset, error) {
	builder := r.getAssetSQL().Offset(uint64(flt.Offset))
	if flt.Size > 0 {
		builder = builder.Limit(uint64(flt.Size))
	}
	builder = r.buildFilterQuery(builder, flt)
	builder = r.buildOrderQuery(builder, flt)
	query, args, err := r.buildSQL(builder)
	if err != nil {
		return nil, fmt.Errorf("error building query: %w", err)
	}

	var ams []*AssetModel
	err = r.client.db.SelectContext(ctx, &ams, query, args...)
	if err != nil {
		return nil, fmt.Errorf("error getting asset list: %w", err)
	}

	assets := []asset.Asset{}
	for _, am := range ams {
		assets = append(assets, am.toAsset())
	}

	return assets, nil
}

// GetCount retrieves the number of assets matching the filter
func (r *AssetRepository) GetCount(ctx context.Context, flt asset.Filter) (total int, err error) {
	builder := sq.Select("count(1)").From("assets")
	builder = r.buildFilterQuery(builder, flt)
	query, args, err := r.buildSQL(builder)
	if err != nil {
		err = fmt.Errorf("error building count query: %w", err)
		return
	}
	err = r.client.db.GetContext(ctx, &total, query, args...)
	if err != nil {
		err = fmt.Errorf("error getting asset count: %w", err)
	}

	return
}

// GetByID retrieves asset by its ID
func (r *AssetRepository) GetByID(ctx context.Context, id string) (asset.Asset, error) {
	if !isValidUUID(id) {
		return asset.Asset{}, asset.InvalidError{AssetID: id}
	}

	ast, err := r.getWithPredicate(ctx, sq.Eq{"a.id": id})
	if errors.Is(err, sql.ErrNoRows) {
		return asset.Asset{}, asset.NotFoundError{AssetID: id}
	}
	if err != nil {
		return asset.Asset{}, fmt.Errorf("error getting asset with ID = %q: %w", id, err)
	}

	return ast, nil
}

func (r *AssetRepository) GetByURN(ctx context.Context, urn string) (asset.Asset, error) {
	ast, err := r.getWithPredicate(ctx, sq.Eq{"a.urn": urn})
	if errors.Is(err, sql.ErrNoRows) {
		return asset.Asset{}, asset.NotFoundError{URN: urn}
	}
	if err != nil {
		return asset.Asset{}, fmt.Errorf("error getting asset with URN = %q: %w", urn, err)
	}

	return ast, nil
}

func (r *AssetRepository) getWithPredicate(ctx context.Context, pred sq.Eq) (asset.Asset, error) {
	builder := r.getAssetSQL().
		Where(pred).
		Limit(1)
	query, args, err := r.buildSQL(builder)
	if err != nil {
		return asset.Asset{}, fmt.Errorf("error building query: %w", err)
	}

	var am AssetModel
	if err := r.client.db.GetContext(ctx, &am, query, args...); err != nil {
		return asset.Asset{}, err
	}

	return am.toAsset(), nil
}

// GetVersionHistory retrieves the versions of an asset
func (r *AssetRepository) GetVersionHistory(ctx context.Context, flt asset.Filter, id string) (avs []asset.Asset, err error) {
	if !isValidUUID(id) {
		err = asset.InvalidError{AssetID: id}
		return
	}

	size := flt.Size
	if size == 0 {
		size = r.defaultGetMaxSize
	}

	builder := r.getAssetVersionSQL().
		Where(sq.Eq{"a.asset_id": id}).
		OrderBy("string_to_array(version, '.')::int[] DESC").
		Limit(uint64(size)).
		Offset(uint64(flt.Offset))
	query, args, err := r.buildSQL(builder)
	if err != nil {
		err = fmt.Errorf("error building query: %w", err)
		return
	}

	var assetModels []AssetModel
	err = r.client.db.SelectContext(ctx, &assetModels, query, args...)
	if err != nil {
		err = fmt.Errorf("failed fetching last versions: %w", err)
		return
	}

	if len(assetModels) == 0 {
		err = asset.NotFoundError{AssetID: id}
		return
	}

	for _, am := range assetModels {
		av, ferr := am.toAssetVersion()
		if ferr != nil {
			err = fmt.Errorf("failed converting asset model to asset version: %w", ferr)
			return
		}
		avs = append(avs, av)
	}

	return avs, nil
}

// GetByVersionWithID retrieves the specific asset version
func (r *AssetRepository) GetByVersionWithID(ctx context.Context, id string, version string) (asset.Asset, error) {
	if !isValidUUID(id) {
		return asset.Asset{}, asset.InvalidError{AssetID: id}
	}

	ast, err := r.getByVersion(ctx, id, version, r.GetByID, sq.Eq{
		"a.asset_id": id,
		"a.version":  version,
	})
	if errors.Is(err, sql.ErrNoRows) {
		return asset.Asset{}, asset.NotFoundError{AssetID: id}
	}
	if err != nil {
		return asset.Asset{}, err
	}

	return ast, nil
}

func (r *AssetRepository) GetByVersionWithURN(ctx context.Context, urn string, version string) (asset.Asset, error) {
	ast, err := r.getByVersion(ctx, urn, version, r.GetByURN, sq.Eq{
		"a.urn":     urn,
		"a.version": version,
	})
	if errors.Is(err, sql.ErrNoRows) {
		return asset.Asset{}, asset.NotFoundError{URN: urn}
	}
	if err != nil {
		return asset.Asset{}, err
	}

	return ast, nil
}

type getAssetFunc func(context.Context, string) (asset.Asset, error)

func (r *AssetRepository) getByVersion(
	ctx context.Context, id, version string, get getAssetFunc, pred sq.Eq,
) (asset.Asset, error) {
	latest, err := get(ctx, id)
	if err != nil {
		return asset.Asset{}, err
	}

	if latest.Version == version {
		return latest, nil
	}

	builder := r.getAssetVersionSQL().
		Where(pred)
	query, args, err := r.buildSQL(builder)
	if err != nil {
		return asset.Asset{}, fmt.Errorf("error building query: %w", err)
	}

	var am AssetModel
	err = r.client.db.GetContext(ctx, &am, query, args...)
	if err != nil {
		return asset.Asset{}, fmt.Errorf("failed fetching asset version: %w", err)
	}

	return am.toVersionedAsset(latest)
}

// Upsert creates a new asset when the URN is unseen and updates the
// stored row otherwise. The whole read-modify-write runs inside one
// transaction holding an advisory lock on the URN, so concurrent
// upserts of the same URN serialize instead of racing the version
// bump.
func (r *AssetRepository) Upsert(ctx context.Context, ast *asset.Asset) (id string, err error) {
	err = r.client.RunWithinTx(ctx, func(tx *sqlx.Tx) error {
		if _, err := tx.ExecContext(ctx, `SELECT pg_advisory_xact_lock(hashtext($1))`, ast.URN); err != nil {
			return fmt.Errorf("error acquiring advisory lock: %w", err)
		}

		fetched, err := r.getByURNWithTx(ctx, tx, ast.URN)
		if err != nil && !errors.As(err, new(asset.NotFoundError)) {
			return fmt.Errorf("error getting asset by URN: %w", err)
		}

		if fetched.ID == "" {
			id, err = r.insert(ctx, tx, ast)
			if err != nil {
				return fmt.Errorf("error inserting asset to DB: %w", err)
			}
			return nil
		}

		changelog, err := fetched.Diff(ast)
		if err != nil {
			return fmt.Errorf("error diffing two assets: %w", err)
		}

		if err := r.update(ctx, tx, ast, &fetched, changelog); err != nil {
			return fmt.Errorf("error updating asset to DB: %w", err)
		}
		id = fetched.ID
		return nil
	})

	return id, err
}

// DeleteByID removes asset using its ID
func (r *AssetRepository) DeleteByID(ctx context.Context, id string) error {
	if !isValidUUID(id) {
		return asset.InvalidError{AssetID: id}
	}

	affectedRows, err := r.deleteWithPredicate(ctx, sq.Eq{"id": id})
	if err != nil {
		return fmt.Errorf("error deleting asset with ID = %q: %w", id, err)
	}
	if affectedRows == 0 {
		return asset.NotFoundError{AssetID: id}
	}

	return nil
}

func (r *AssetRepository) DeleteByURN(ctx context.Context, urn string) error {
	affectedRows, err := r.deleteWithPredicate(ctx, sq.Eq{"urn": urn})
	if err != nil {
		return fmt.Errorf("error deleting asset with URN = %q: %w", urn, err)
	}
	if affectedRows == 0 {
		return asset.NotFoundError{URN: urn}
	}

	return nil
}

func (r *AssetRepository) deleteWithPredicate(ctx context.Context, pred sq.Eq) (int64, error) {
	query, args, err := r.buildSQL(sq.Delete("assets").Where(pred))
	if err != nil {
		return 0, fmt.Errorf("error building query: %w", err)
	}

	res, err := r.client.db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, err
	}

	affectedRows, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("error getting affected rows: %w", err)
	}

	return affectedRows, nil
}

func (r *AssetRepository) getByURNWithTx(ctx context.Context, tx *sqlx.Tx, urn string) (asset.Asset, error) {
	builder := r.getAssetSQL().
		Where(sq.Eq{"a.urn": urn}).
		Limit(1)
	query, args, err := r.buildSQL(builder)
	if err != nil {
		return asset.Asset{}, fmt.Errorf("error building query: %w", err)
	}

	var am AssetModel
	if err := tx.GetContext(ctx, &am, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return asset.Asset{}, asset.NotFoundError{URN: urn}
		}
		return asset.Asset{}, err
	}

	return am.toAsset(), nil
}

func (r *AssetRepository) insert(ctx context.Context, tx *sqlx.Tx, ast *asset.Asset) (id string, err error) {
	updatedBy, err := r.resolveUpdatedBy(ctx, tx, ast)
	if err != nil {
		return "", err
	}

	ast.CreatedAt = time.Now()
	ast.UpdatedAt = ast.CreatedAt
	query, args, err := sq.Insert("assets").
		Columns("urn", "type", "service", "name", "description", "data", "url", "labels", "created_at", "updated_by", "updated_at", "version").
		Values(ast.URN, ast.Type, ast.Service, ast.Name, ast.Description, JSONMap(ast.Data), ast.URL, newLabelsJSONMap(ast.Labels), ast.CreatedAt, updatedBy, ast.UpdatedAt, asset.BaseVersion).
		Suffix("RETURNING \"id\"").
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return "", fmt.Errorf("error building insert query: %w", err)
	}

	ast.Version = asset.BaseVersion

	if err := tx.QueryRowContext(ctx, query, args...).Scan(&id); err != nil {
		return "", fmt.Errorf("error running insert query: %w", checkPostgresError(err))
	}

	ast.ID = id
	if err := r.insertAssetVersion(ctx, tx, ast, updatedBy, diff.Changelog{}); err != nil {
		return "", err
	}

	return id, nil
}

func (r *AssetRepository) update(ctx context.Context, tx *sqlx.Tx, newAsset, oldAsset *asset.Asset, clog diff.Changelog) error {
	// identical payload, nothing to write
	if len(clog) == 0 {
		newAsset.ID = oldAsset.ID
		newAsset.Version = oldAsset.Version
		return nil
	}

	updatedBy, err := r.resolveUpdatedBy(ctx, tx, newAsset)
	if err != nil {
		return err
	}

	newVersion, err := asset.IncreaseMinorVersion(oldAsset.Version)
	if err != nil {
		return err
	}
	newAsset.Version = newVersion
	newAsset.ID = oldAsset.ID
	newAsset.UpdatedAt = time.Now()
	newAsset.CreatedAt = oldAsset.CreatedAt

	query, args, err := r.buildSQL(sq.Update("assets").
		Set("urn", newAsset.URN).
		Set("type", newAsset.Type).
		Set("service", newAsset.Service).
		Set("name", newAsset.Name).
		Set("description", newAsset.Description).
		Set("data", JSONMap(newAsset.Data)).
		Set("url", newAsset.URL).
		Set("labels", newLabelsJSONMap(newAsset.Labels)).
		Set("updated_at", newAsset.UpdatedAt).
		Set("updated_by", updatedBy).
		Set("version", newAsset.Version).
		Where(sq.Eq{"id": newAsset.ID}))
	if err != nil {
		return fmt.Errorf("build query: %w", err)
	}

	if err := r.execContext(ctx, tx, query, args...); err != nil {
		return fmt.Errorf("error running update asset query: %w", err)
	}

	return r.insertAssetVersion(ctx, tx, newAsset, updatedBy, clog)
}

func (r *AssetRepository) insertAssetVersion(ctx context.Context, execer sqlx.ExecerContext, ast *asset.Asset, updatedBy string, clog diff.Changelog) error {
	if ast == nil {
		return asset.ErrNilAsset
	}

	if clog == nil {
		return fmt.Errorf("changelog is nil when insert to asset version")
	}

	jsonChangelog, err := json.Marshal(clog)
	if err != nil {
		return err
	}
	query, args, err := sq.Insert("assets_versions").
		Columns("asset_id", "urn", "type", "service", "name", "description", "data", "url", "labels", "created_at", "updated_at", "updated_by", "version", "changelog").
		Values(ast.ID, ast.URN, ast.Type, ast.Service, ast.Name, ast.Description, JSONMap(ast.Data), ast.URL, newLabelsJSONMap(ast.Labels),
			ast.CreatedAt, ast.UpdatedAt, updatedBy, ast.Version, jsonChangelog).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("error building insert query: %w", err)
	}

	if err := r.execContext(ctx, execer, query, args...); err != nil {
		return fmt.Errorf("error running insert asset version query: %w", err)
	}

	return nil
}

// resolveUpdatedBy maps the asset's updated_by identity to a stored
// user row, creating the user lazily on first sight.
func (r *AssetRepository) resolveUpdatedBy(ctx context.Context, tx *sqlx.Tx, ast *asset.Asset) (string, error) {
	if ast.UpdatedBy.ID != "" {
		return ast.UpdatedBy.ID, nil
	}
	if ast.UpdatedBy.Email == "" {
		return "", asset.InvalidError{AssetID: ast.ID}
	}

	fetched, err := r.userRepo.GetByEmailWithTx(ctx, tx, ast.UpdatedBy.Email)
	switch {
	case errors.As(err, new(user.NotFoundError)):
		u := ast.UpdatedBy
		if u.Provider == "" {
			u.Provider = r.defaultUserProvider
		}
		userID, err := r.userRepo.CreateWithTx(ctx, tx, &u)
		if err != nil {
			return "", fmt.Errorf("error creating updated_by user: %w", err)
		}
		ast.UpdatedBy.ID = userID
		return userID, nil
	case err != nil:
		return "", fmt.Errorf("error getting updated_by user: %w", err)
	}

	ast.UpdatedBy.ID = fetched.ID
	return fetched.ID, nil
}

func (r *AssetRepository) execContext(ctx context.Context, execer sqlx.ExecerContext, query string, args ...interface{}) error {
	res, err := execer.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("error running query: %w", err)
	}

	affectedRows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("error getting affected rows: %w", err)
	}
	if affectedRows == 0 {
		return errors.New("query affected 0 rows")
	}

	return nil
}

type sqlBuilder interface {
	ToSql() (string, []interface{}, error)
}

func (r *AssetRepository) buildSQL(builder sqlBuilder) (query string, args []interface{}, err error) {
	query, args, err = builder.ToSql()
	if err != nil {
		err = fmt.Errorf("error transforming to sql")
		return
	}
	query, err = sq.Dollar.ReplacePlaceholders(query)
	if err != nil {
		err = fmt.Errorf("error replacing placeholders to dollar")
		return
	}

	return
}

func (r *AssetRepository) getAssetSQL() sq.SelectBuilder {
	return sq.Select(`
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
		`).
		From("assets a").
		LeftJoin("users u ON a.updated_by = u.id")
}

func (r *AssetRepository) getAssetVersionSQL() sq.SelectBuilder {
	return sq.Select(`
		a.asset_id as id,
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
		a.changelog as changelog,
		u.id as "updated_by.id",
		u.email as "updated_by.email",
		u.provider as "updated_by.provider",
		u.created_at as "updated_by.created_at",
		u.updated_at as "updated_by.updated_at"
		`).
		From("assets_versions a").
		LeftJoin("users u ON a.updated_by = u.id")
}

// buildFilterQuery retrieves the sql query based on applied filter in the queryString
func (r *AssetRepository) buildFilterQuery(builder sq.SelectBuilder, flt asset.Filter) sq.SelectBuilder {
	if len(flt.Types) > 0 {
		builder = builder.Where(sq.Eq{"type": flt.Types})
	}

	if len(flt.Services) > 0 {
		builder = builder.Where(sq.Eq{"service": flt.Services})
	}

	if !flt.UpdatedAfter.IsZero() {
		builder = builder.Where(sq.Gt{"updated_at": flt.UpdatedAfter})
	}

	if len(flt.QueryFields) > 0 && flt.Query != "" {
		orClause := sq.Or{}

		for _, field := range flt.QueryFields {
			finalQuery := field

			if strings.Contains(field, "data") {
				finalQuery = r.buildDataField(
					strings.TrimPrefix(field, "data."),
					false,
				)
			}
			orClause = append(orClause, sq.ILike{
				finalQuery: fmt.Sprint("%", flt.Query, "%"),
			})
		}
		builder = builder.Where(orClause)
	}

	if len(flt.Data) > 0 {
		for key, vals := range flt.Data {
			if len(vals) == 1 && vals[0] == "_nonempty" {
				field := r.buildDataField(key, true)
				whereClause := sq.And{
					sq.NotEq{field: nil},    // IS NOT NULL (field exists)
					sq.NotEq{field: "null"}, // field is not "null" JSON
					sq.NotEq{field: "[]"},   // field is not empty array
					sq.NotEq{field: "{}"},   // field is not empty object
					sq.NotEq{field: "\"\""}, // field is not empty string
				}
				builder = builder.Where(whereClause)
			} else {
				dataOrClause := sq.Or{}
				for _, v := range vals {
					finalQuery := r.buildDataField(key, false)
					dataOrClause = append(dataOrClause, sq.Eq{finalQuery: v})
				}

				builder = builder.Where(dataOrClause)
			}
		}
	}

	return builder
}

// buildOrderQuery retrieves the ordered sql query based on the sorting filter used in queryString
func (r *AssetRepository) buildOrderQuery(builder sq.SelectBuilder, flt asset.Filter) sq.SelectBuilder {
	if flt.SortBy == "" {
		return builder
	}

	orderDirection := sortDirectionAscending
	if flt.SortDirection != "" {
		orderDirection = flt.SortDirection
	}

	return builder.OrderBy(flt.SortBy + " " + orderDirection)
}

// buildDataField is a helper function to build nested data fields
func (r *AssetRepository) buildDataField(key string, asJsonB bool) (finalQuery string) {
	var queries []string

	queries = append(queries, "data")
	nestedParams := strings.Split(key, ".")
	totalParams := len(nestedParams)
	for i := 0; i < totalParams-1; i++ {
		nestedQuery := fmt.Sprintf("->'%s'", nestedParams[i])
		queries = append(queries, nestedQuery)
	}

	var lastParam string
	if asJsonB {
		lastParam = fmt.Sprintf("->'%s'", nestedParams[totalParams-1])
	} else {
		lastParam = fmt.Sprintf("->>'%s'", nestedParams[totalParams-1])
	}

	queries = append(queries, lastParam)
	finalQuery = strings.Join(queries, "")

	return finalQuery
}
