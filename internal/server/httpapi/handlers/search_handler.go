package handlers

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"strings"

	"github.com/goto/salt/log"
	"github.com/raystack/meridian/core/asset"
)

var (
	filterQueryPrefix = "filter."
	queryQueryPrefix  = "query."
)

//go:generate mockery --name=SearchService -r --case underscore --structname SearchService --filename search_service_mock.go --output=./mocks

type SearchService interface {
	SearchAssets(ctx context.Context, cfg asset.SearchConfig) ([]asset.SearchResult, error)
	SuggestAssets(ctx context.Context, cfg asset.SearchConfig) ([]string, error)
}

// SearchHandler exposes the ranked free-text search over the asset index.
type SearchHandler struct {
	logger    log.Logger
	searchSvc SearchService
}

func NewSearchHandler(logger log.Logger, searchSvc SearchService) *SearchHandler {
	return &SearchHandler{
		logger:    logger,
		searchSvc: searchSvc,
	}
}

func (h *SearchHandler) Search(w http.ResponseWriter, r *http.Request) {
	cfg, err := buildSearchConfig(r.URL.Query())
	if err != nil {
		WriteJSONError(w, http.StatusBadRequest, err.Error())
		return
	}

	results, err := h.searchSvc.SearchAssets(r.Context(), cfg)
	if err != nil {
		h.writeSearchError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"data": results,
	})
}

func (h *SearchHandler) Suggest(w http.ResponseWriter, r *http.Request) {
	cfg, err := buildSearchConfig(r.URL.Query())
	if err != nil {
		WriteJSONError(w, http.StatusBadRequest, err.Error())
		return
	}

	suggestions, err := h.searchSvc.SuggestAssets(r.Context(), cfg)
	if err != nil {
		h.writeSearchError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"data": suggestions,
	})
}

// writeSearchError maps search store failures to 503 so that clients can
// tell a degraded index apart from a bad request or a broken server.
func (h *SearchHandler) writeSearchError(w http.ResponseWriter, err error) {
	var discoveryErr asset.DiscoveryError
	if errors.As(err, &discoveryErr) {
		h.logger.Error("search store unavailable", "err", err.Error())
		WriteJSONError(w, http.StatusServiceUnavailable, "search is temporarily unavailable")
		return
	}
	internalServerError(w, h.logger, err.Error())
}

func buildSearchConfig(query url.Values) (asset.SearchConfig, error) {
	text := strings.TrimSpace(query.Get("text"))
	if text == "" {
		return asset.SearchConfig{}, errors.New("'text' must be specified")
	}

	cfg := asset.SearchConfig{
		Text:       text,
		MaxResults: parseIntQuery(query, "size"),
		Offset:     parseIntQuery(query, "offset"),
		RankBy:     query.Get("rankby"),
		Filters:    filterConfigFromValues(query),
		Queries:    queryConfigFromValues(query),
	}
	return cfg, nil
}

func filterConfigFromValues(query url.Values) map[string][]string {
	var filters map[string][]string
	for key, values := range query {
		if !strings.HasPrefix(key, filterQueryPrefix) {
			continue
		}
		if filters == nil {
			filters = map[string][]string{}
		}

		filterKey := strings.TrimPrefix(key, filterQueryPrefix)
		for _, value := range values {
			filters[filterKey] = append(filters[filterKey], strings.Split(value, ",")...)
		}
	}
	return filters
}

func queryConfigFromValues(query url.Values) map[string]string {
	var queries map[string]string
	for key, values := range query {
		if !strings.HasPrefix(key, queryQueryPrefix) || len(values) < 1 {
			continue
		}
		if queries == nil {
			queries = map[string]string{}
		}

		queries[strings.TrimPrefix(key, queryQueryPrefix)] = values[0]
	}
	return queries
}
