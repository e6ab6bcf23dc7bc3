package elasticsearch

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/goto/salt/log"
	"github.com/raystack/meridian/core/asset"
)

// DiscoveryRepository implements asset.DiscoveryRepository
// with elasticsearch as the backing store.
type DiscoveryRepository struct {
	cli    *Client
	logger log.Logger
}

func NewDiscoveryRepository(cli *Client, logger log.Logger) *DiscoveryRepository {
	return &DiscoveryRepository{
		cli:    cli,
		logger: logger,
	}
}

// Upsert indexes the asset under its repository-assigned ID. Documents are
// fully replaced, so re-indexing the same asset is a no-op for readers.
func (repo *DiscoveryRepository) Upsert(ctx context.Context, ast asset.Asset) error {
	if ast.ID == "" {
		return asset.ErrEmptyID
	}
	if !ast.Type.IsValid() {
		return asset.ErrUnknownType
	}

	idxExists, err := repo.cli.indexExists(ctx, ast.Service)
	if err != nil {
		return asset.DiscoveryError{Op: "Upsert", ID: ast.ID, Index: ast.Service, Err: err}
	}

	if !idxExists {
		if err := repo.cli.createIdx(ctx, ast.Service); err != nil {
			return asset.DiscoveryError{Op: "Upsert", ID: ast.ID, Index: ast.Service, Err: err}
		}
	}

	body, err := createUpsertBody(ast)
	if err != nil {
		return asset.DiscoveryError{Op: "Upsert", ID: ast.ID, Err: fmt.Errorf("serialise payload: %w", err)}
	}
	res, err := repo.cli.client.Bulk(
		body,
		repo.cli.client.Bulk.WithRefresh("true"),
		repo.cli.client.Bulk.WithContext(ctx),
	)
	if err != nil {
		return asset.DiscoveryError{Op: "Upsert", ID: ast.ID, Index: ast.Service, Err: elasticSearchError(err)}
	}
	defer res.Body.Close()
	if res.IsError() {
		code, reason := errorCodeAndReason(res)
		return asset.DiscoveryError{Op: "Upsert", ID: ast.ID, Index: ast.Service, ESCode: code, Err: errors.New(reason)}
	}
	return nil
}

func (repo *DiscoveryRepository) DeleteByID(ctx context.Context, assetID string) error {
	if assetID == "" {
		return asset.ErrEmptyID
	}

	return repo.deleteWithQuery(ctx, "DeleteByID", assetID,
		fmt.Sprintf(`{"query":{"terms":{"_id": [%q]}}}`, assetID))
}

func (repo *DiscoveryRepository) DeleteByURN(ctx context.Context, assetURN string) error {
	if assetURN == "" {
		return asset.ErrEmptyURN
	}

	return repo.deleteWithQuery(ctx, "DeleteByURN", assetURN,
		fmt.Sprintf(`{"query":{"term":{"urn.keyword": %q}}}`, assetURN))
}

func (repo *DiscoveryRepository) deleteWithQuery(ctx context.Context, op, identifier, query string) error {
	res, err := repo.cli.client.DeleteByQuery(
		[]string{defaultSearchIndex},
		strings.NewReader(query),
		repo.cli.client.DeleteByQuery.WithContext(ctx),
		repo.cli.client.DeleteByQuery.WithIgnoreUnavailable(true),
	)
	if err != nil {
		return asset.DiscoveryError{Op: op, ID: identifier, Err: elasticSearchError(err)}
	}
	defer res.Body.Close()
	if res.IsError() {
		code, reason := errorCodeAndReason(res)
		return asset.DiscoveryError{Op: op, ID: identifier, ESCode: code, Err: errors.New(reason)}
	}

	return nil
}

// ListIDs pages through document IDs across every index so the reconciler
// can detect documents whose source row is gone.
func (repo *DiscoveryRepository) ListIDs(ctx context.Context, size, offset int) ([]string, error) {
	if size <= 0 {
		size = defaultMaxResults
	}
	if offset < 0 {
		offset = 0
	}

	search := repo.cli.client.Search
	res, err := search(
		search.WithIndex(defaultSearchIndex),
		search.WithBody(strings.NewReader(`{"sort":["_doc"],"query":{"match_all":{}}}`)),
		search.WithSize(size),
		search.WithFrom(offset),
		search.WithSourceIncludes("id"),
		search.WithIgnoreUnavailable(true),
		search.WithContext(ctx),
	)
	if err != nil {
		return nil, asset.DiscoveryError{Op: "ListIDs", Err: elasticSearchError(err)}
	}
	defer res.Body.Close()
	if res.IsError() {
		code, reason := errorCodeAndReason(res)
		return nil, asset.DiscoveryError{Op: "ListIDs", ESCode: code, Err: errors.New(reason)}
	}

	var response searchResponse
	if err := json.NewDecoder(res.Body).Decode(&response); err != nil {
		return nil, asset.DiscoveryError{Op: "ListIDs", Err: fmt.Errorf("decode search response: %w", err)}
	}

	ids := make([]string, 0, len(response.Hits.Hits))
	for _, hit := range response.Hits.Hits {
		ids = append(ids, hit.Source.ID)
	}
	return ids, nil
}

func createUpsertBody(ast asset.Asset) (io.Reader, error) {
	payload := bytes.NewBuffer(nil)
	if err := writeInsertAction(payload, ast); err != nil {
		return nil, fmt.Errorf("write index action: %w", err)
	}

	if err := json.NewEncoder(payload).Encode(ast); err != nil {
		return nil, fmt.Errorf("serialise asset: %w", err)
	}
	return payload, nil
}

func writeInsertAction(w io.Writer, ast asset.Asset) error {
	action := map[string]interface{}{
		"index": map[string]interface{}{
			"_index": ast.Service,
			"_id":    ast.ID,
		},
	}

	return json.NewEncoder(w).Encode(action)
}
