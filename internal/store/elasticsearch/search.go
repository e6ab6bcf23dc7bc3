package elasticsearch

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/olivere/elastic/v7"
	"github.com/raystack/meridian/core/asset"
)

const (
	defaultMaxResults                  = 200
	defaultMinScore                    = 0.01
	defaultFunctionScoreQueryScoreMode = "sum"
	suggesterName                      = "name-phrase-suggest"
)

var returnedAssetFields = []string{
	"id", "urn", "type", "service", "name", "description", "data", "labels",
	"created_at", "updated_at",
}

// Search runs a ranked free-text query through the shared alias. Results are
// ordered by relevance; a repeated query with the same offset replays the
// same sequence.
func (repo *DiscoveryRepository) Search(ctx context.Context, cfg asset.SearchConfig) ([]asset.SearchResult, error) {
	if strings.TrimSpace(cfg.Text) == "" {
		return nil, asset.DiscoveryError{Op: "Search", Err: errors.New("search text cannot be empty")}
	}

	maxResults := cfg.MaxResults
	if maxResults <= 0 {
		maxResults = defaultMaxResults
	}
	offset := cfg.Offset
	if offset < 0 {
		offset = 0
	}

	query, err := buildQuery(cfg)
	if err != nil {
		return nil, asset.DiscoveryError{Op: "Search", Err: fmt.Errorf("build query: %w", err)}
	}

	search := repo.cli.client.Search
	res, err := search(
		search.WithBody(query),
		search.WithIndex(defaultSearchIndex),
		search.WithSize(maxResults),
		search.WithFrom(offset),
		search.WithIgnoreUnavailable(true),
		search.WithSourceIncludes(returnedAssetFields...),
		search.WithContext(ctx),
	)
	if err != nil {
		return nil, asset.DiscoveryError{Op: "Search", Err: fmt.Errorf("execute search: %w", err)}
	}
	defer res.Body.Close()
	if res.IsError() {
		code, reason := errorCodeAndReason(res)
		return nil, asset.DiscoveryError{
			Op:     "Search",
			ESCode: code,
			Err:    fmt.Errorf("execute search: %s", reason),
		}
	}

	var response searchResponse
	if err := json.NewDecoder(res.Body).Decode(&response); err != nil {
		return nil, asset.DiscoveryError{Op: "Search", Err: fmt.Errorf("decode search response: %w", err)}
	}

	return toSearchResults(response.Hits.Hits), nil
}

// Suggest returns name completions for a prefix.
func (repo *DiscoveryRepository) Suggest(ctx context.Context, cfg asset.SearchConfig) ([]string, error) {
	maxResults := cfg.MaxResults
	if maxResults <= 0 {
		maxResults = defaultMaxResults
	}

	query, err := buildSuggestQuery(cfg)
	if err != nil {
		return nil, asset.DiscoveryError{Op: "Suggest", Err: fmt.Errorf("build query: %w", err)}
	}

	search := repo.cli.client.Search
	res, err := search(
		search.WithBody(query),
		search.WithIndex(defaultSearchIndex),
		search.WithSize(maxResults),
		search.WithIgnoreUnavailable(true),
		search.WithContext(ctx),
	)
	if err != nil {
		return nil, asset.DiscoveryError{Op: "Suggest", Err: fmt.Errorf("execute search: %w", err)}
	}
	defer res.Body.Close()
	if res.IsError() {
		code, reason := errorCodeAndReason(res)
		return nil, asset.DiscoveryError{
			Op:     "Suggest",
			ESCode: code,
			Err:    fmt.Errorf("execute search: %s", reason),
		}
	}

	var response searchResponse
	if err := json.NewDecoder(res.Body).Decode(&response); err != nil {
		return nil, asset.DiscoveryError{Op: "Suggest", Err: fmt.Errorf("decode search response: %w", err)}
	}

	results, err := toSuggestions(response)
	if err != nil {
		return nil, asset.DiscoveryError{Op: "Suggest", Err: fmt.Errorf("map response to suggestion: %w", err)}
	}

	return results, nil
}

func buildQuery(cfg asset.SearchConfig) (io.Reader, error) {
	boolQuery := elastic.NewBoolQuery()
	buildTextQuery(boolQuery, cfg.Text)
	buildFilterTermQueries(boolQuery, cfg.Filters)
	buildMustMatchQueries(boolQuery, cfg.Queries)
	query := buildFunctionScoreQuery(boolQuery, cfg.RankBy, cfg.Text)

	body, err := elastic.NewSearchRequest().
		Query(query).
		MinScore(defaultMinScore).
		Body()
	if err != nil {
		return nil, fmt.Errorf("new search request: %w", err)
	}

	return strings.NewReader(body), nil
}

func buildSuggestQuery(cfg asset.SearchConfig) (io.Reader, error) {
	suggester := elastic.NewCompletionSuggester(suggesterName).
		Field("name.suggest").
		SkipDuplicates(true).
		Size(5).
		Text(cfg.Text)
	src, err := elastic.NewSearchSource().
		Suggester(suggester).
		Source()
	if err != nil {
		return nil, fmt.Errorf("error building search source %w", err)
	}

	payload := new(bytes.Buffer)
	if err := json.NewEncoder(payload).Encode(src); err != nil {
		return payload, fmt.Errorf("error building reader %w", err)
	}

	return payload, nil
}

func buildTextQuery(q *elastic.BoolQuery, text string) {
	boostedFields := []string{"urn^10", "name^5"}
	q.Should(
		// Phrase query cannot have `FUZZINESS`
		elastic.NewMultiMatchQuery(text, boostedFields...).
			Type("phrase"),

		elastic.NewMultiMatchQuery(text, boostedFields...).
			Operator("and").
			Fuzziness("AUTO"),

		elastic.NewMultiMatchQuery(text, boostedFields...).
			Fuzziness("AUTO"),

		elastic.NewMultiMatchQuery(text).
			Fuzziness("AUTO"),
	)
}

func buildMustMatchQueries(q *elastic.BoolQuery, queries map[string]string) {
	for field, value := range queries {
		q.Must(elastic.NewMatchQuery(field, value).
			Fuzziness("AUTO"))
	}
}

func buildFilterTermQueries(q *elastic.BoolQuery, filters map[string][]string) {
	if len(filters) == 0 {
		return
	}

	for field, rawValues := range filters {
		if len(rawValues) < 1 {
			continue
		}

		key := fmt.Sprintf("%s.keyword", field)
		if len(rawValues) == 1 {
			q.Filter(elastic.NewTermQuery(key, rawValues[0]))
			continue
		}

		values := make([]interface{}, 0, len(rawValues))
		for _, rawVal := range rawValues {
			values = append(values, rawVal)
		}
		q.Filter(elastic.NewTermsQuery(key, values...))
	}
}

func buildFunctionScoreQuery(query elastic.Query, rankBy, text string) elastic.Query {
	// exact name matches get boosted above analyzed matches
	fsQuery := elastic.NewFunctionScoreQuery().
		Add(
			elastic.NewTermQuery("name.keyword", text),
			elastic.NewWeightFactorFunction(2),
		)

	if rankBy != "" {
		fsQuery.AddScoreFunc(
			elastic.NewFieldValueFactorFunction().
				Field(rankBy).
				Modifier("log1p").
				Missing(1.0).
				Weight(1.0),
		)
	}

	fsQuery.Query(query).ScoreMode(defaultFunctionScoreQueryScoreMode)
	return fsQuery
}

func toSearchResults(hits []searchHit) []asset.SearchResult {
	results := make([]asset.SearchResult, len(hits))
	for i, hit := range hits {
		r := hit.Source
		id := r.ID
		if id == "" { // document indexed before IDs were assigned
			id = r.URN
		}

		results[i] = asset.SearchResult{
			Type:        r.Type.String(),
			ID:          id,
			URN:         r.URN,
			Description: r.Description,
			Title:       r.Name,
			Service:     r.Service,
			Labels:      r.Labels,
			Data:        r.Data,
		}
	}
	return results
}

func toSuggestions(response searchResponse) ([]string, error) {
	suggests, exists := response.Suggest[suggesterName]
	if !exists {
		return nil, errors.New("suggester key does not exist")
	}

	var results []string
	for _, s := range suggests {
		for _, option := range s.Options {
			results = append(results, option.Text)
		}
	}
	return results, nil
}
