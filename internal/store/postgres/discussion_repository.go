package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/raystack/meridian/core/discussion"
)

// DiscussionRepository is a type that manages discussion operation to the primary database
type DiscussionRepository struct {
	client            *Client
	defaultGetMaxSize int
}

// NewDiscussionRepository initializes discussion repository clients
func NewDiscussionRepository(c *Client, defaultGetMaxSize int) (*DiscussionRepository, error) {
	if c == nil {
		return nil, errNilPostgresClient
	}
	if defaultGetMaxSize == 0 {
		defaultGetMaxSize = DefaultMaxResultSize
	}

	return &DiscussionRepository{
		client:            c,
		defaultGetMaxSize: defaultGetMaxSize,
	}, nil
}

// GetAll fetchs all discussion data
func (r *DiscussionRepository) GetAll(ctx context.Context, flt discussion.Filter) ([]discussion.Discussion, error) {
	builder := r.selectSQL()
	builder = r.buildSelectFilterQuery(builder, flt)
	builder = r.buildSelectOrderQuery(builder, flt)
	builder = r.buildSelectLimitQuery(builder, flt)
	query, args, err := r.buildSQL(builder)
	if err != nil {
		return nil, fmt.Errorf("error building query: %w", err)
	}

	dms := []DiscussionModel{}
	err = r.client.db.SelectContext(ctx, &dms, query, args...)
	if err != nil {
		return nil, fmt.Errorf("error getting discussion list: %w", err)
	}

	discussions := []discussion.Discussion{}
	for _, dm := range dms {
		discussions = append(discussions, dm.toDiscussion())
	}

	return discussions, nil
}

// Create inserts a new discussion data
func (r *DiscussionRepository) Create(ctx context.Context, dsc *discussion.Discussion) (string, error) {
	dm := newDiscussionModel(dsc)
	var discussionID string
	query, args, err := sq.Insert("discussions").
		Columns("title",
			"body",
			"state",
			"type",
			"owner",
			"labels",
			"assets",
			"assignees").
		Values(dm.Title, dm.Body, discussion.StateOpen, dm.Type, dm.Owner.ID, dm.Labels, dm.Assets, dm.Assignees).
		Suffix("RETURNING \"id\"").
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return "", fmt.Errorf("error building insert query: %w", err)
	}

	err = r.client.db.QueryRowContext(ctx, query, args...).Scan(&discussionID)
	if err != nil {
		return "", fmt.Errorf("error running insert query: %w", checkPostgresError(err))
	}

	if discussionID == "" {
		return "", fmt.Errorf("error discussion ID is empty from DB")
	}

	return discussionID, nil
}

// Get returns a specific discussion by id
func (r *DiscussionRepository) Get(ctx context.Context, did string) (discussion.Discussion, error) {
	builder := r.selectSQL()
	builder = builder.Where("d.id = ?", did).Limit(1)
	query, args, err := r.buildSQL(builder)
	if err != nil {
		return discussion.Discussion{}, fmt.Errorf("error building query: %w", err)
	}

	var dm DiscussionModel
	err = r.client.db.GetContext(ctx, &dm, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return discussion.Discussion{}, discussion.NotFoundError{DiscussionID: did}
	}
	if err != nil {
		return discussion.Discussion{}, fmt.Errorf("failed fetching discussion with id %s: %w", did, err)
	}

	return dm.toDiscussion(), nil
}

// Patch updates only the discussion fields the patch carries
func (r *DiscussionRepository) Patch(ctx context.Context, did string, patch *discussion.Patch) error {
	if did == "" {
		return discussion.ErrInvalidID
	}

	builder := r.patchSQL(did, patch)
	query, args, err := r.buildSQL(builder)
	if err != nil {
		return fmt.Errorf("error building query: %w", err)
	}

	res, err := r.client.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed updating discussion with id %s: %w", did, err)
	}
	affectedRows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("error getting affected rows: %w", err)
	}
	if affectedRows == 0 {
		return discussion.NotFoundError{DiscussionID: did}
	}

	return nil
}

func (r *DiscussionRepository) patchSQL(did string, patch *discussion.Patch) sq.UpdateBuilder {
	builder := sq.Update("discussions").
		Set("updated_at", sq.Expr("now()"))

	if patch.Title != nil {
		builder = builder.Set("title", *patch.Title)
	}

	if patch.Body != nil {
		builder = builder.Set("body", *patch.Body)
	}

	if patch.State != nil {
		builder = builder.Set("state", discussion.GetStateEnum(*patch.State))
	}

	if patch.Labels != nil {
		builder = builder.Set("labels", pq.StringArray(*patch.Labels))
	}

	if patch.Assets != nil {
		builder = builder.Set("assets", pq.StringArray(*patch.Assets))
	}

	if patch.Assignees != nil {
		builder = builder.Set("assignees", pq.StringArray(*patch.Assignees))
	}

	return builder.Where(sq.Eq{"id": did})
}

func (r *DiscussionRepository) selectSQL() sq.SelectBuilder {
	return sq.Select(`
		d.id as id,
		d.title as title,
		d.body as body,
		d.state as state,
		d.type as type,
		d.labels as labels,
		d.assets as assets,
		d.assignees as assignees,
		d.created_at as created_at,
		d.updated_at as updated_at,
		u.id as "owner.id",
		u.email as "owner.email",
		u.provider as "owner.provider",
		u.created_at as "owner.created_at",
		u.updated_at as "owner.updated_at"
		`).
		From("discussions d").
		LeftJoin("users u ON d.owner = u.id")
}

func (r *DiscussionRepository) buildSelectFilterQuery(builder sq.SelectBuilder, flt discussion.Filter) sq.SelectBuilder {
	whereClause := sq.Eq{}
	if flt.Type != "" && flt.Type != "all" {
		whereClause["type"] = discussion.GetTypeEnum(flt.Type)
	}

	if flt.State != "" && flt.State != "all" {
		whereClause["state"] = discussion.GetStateEnum(flt.State)
	}

	if flt.Owner != "" && !flt.DisjointAssigneeOwner {
		whereClause["owner"] = flt.Owner
	}

	if len(whereClause) > 0 {
		builder = builder.Where(whereClause)
	}

	if len(flt.Labels) > 0 {
		builder = builder.Where("labels @> ?", pq.StringArray(flt.Labels))
	}

	if len(flt.Assets) > 0 {
		builder = builder.Where("assets @> ?", pq.StringArray(flt.Assets))
	}

	if len(flt.Assignees) > 0 {
		if flt.DisjointAssigneeOwner && flt.Owner != "" {
			builder = builder.Where(sq.Or{
				sq.Expr("assignees @> ?", pq.StringArray(flt.Assignees)),
				sq.Eq{"owner": flt.Owner},
			})
		} else {
			builder = builder.Where("assignees @> ?", pq.StringArray(flt.Assignees))
		}
	}

	return builder
}

func (r *DiscussionRepository) buildSelectOrderQuery(builder sq.SelectBuilder, flt discussion.Filter) sq.SelectBuilder {
	if flt.SortBy != "" {
		orderDirection := sortDirectionDescending
		if flt.SortDirection != "" {
			orderDirection = strings.ToUpper(flt.SortDirection)
		}
		return builder.OrderBy(flt.SortBy + " " + orderDirection)
	}

	return builder
}

func (r *DiscussionRepository) buildSelectLimitQuery(builder sq.SelectBuilder, flt discussion.Filter) sq.SelectBuilder {
	limitSize := r.defaultGetMaxSize
	if flt.Size > 0 {
		limitSize = flt.Size
	}

	return builder.
		Limit(uint64(limitSize)).
		Offset(uint64(flt.Offset))
}

func (r *DiscussionRepository) buildSQL(builder sq.Sqlizer) (query string, args []interface{}, err error) {
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
