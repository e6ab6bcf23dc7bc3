package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/gorilla/mux"
	"github.com/goto/salt/log"
	"github.com/raystack/meridian/core/asset"
	"github.com/raystack/meridian/core/star"
	"github.com/raystack/meridian/core/user"
)

var dataFilterPrefix = "data"

//go:generate mockery --name=AssetService -r --case underscore --structname AssetService --filename asset_service_mock.go --output=./mocks

type AssetService interface {
	GetAllAssets(ctx context.Context, flt asset.Filter, withTotal bool) ([]asset.Asset, uint32, error)
	GetAssetByID(ctx context.Context, id string) (asset.Asset, error)
	GetAssetByVersion(ctx context.Context, id, version string) (asset.Asset, error)
	GetAssetVersionHistory(ctx context.Context, flt asset.Filter, id string) ([]asset.Asset, error)
	UpsertAsset(ctx context.Context, ast *asset.Asset) (string, error)
	UpsertPatchAsset(ctx context.Context, ast *asset.Asset, patchData map[string]interface{}) (string, error)
	DeleteAsset(ctx context.Context, id string) error
}

//go:generate mockery --name=StarService -r --case underscore --structname StarService --filename star_service_mock.go --output=./mocks

type StarService interface {
	GetStarredAssetsByUserID(ctx context.Context, flt star.Filter, userID string) ([]asset.Asset, error)
	GetStarredAssetByUserID(ctx context.Context, userID, assetID string) (asset.Asset, error)
	GetStargazers(ctx context.Context, flt star.Filter, assetID string) ([]user.User, error)
	Stars(ctx context.Context, userID, assetID string) (string, error)
	Unstars(ctx context.Context, userID, assetID string) error
}

// AssetHandler exposes a REST interface to assets
type AssetHandler struct {
	logger   log.Logger
	assetSvc AssetService
	starSvc  StarService
}

func NewAssetHandler(logger log.Logger, assetSvc AssetService, starSvc StarService) *AssetHandler {
	return &AssetHandler{
		logger:   logger,
		assetSvc: assetSvc,
		starSvc:  starSvc,
	}
}

func (h *AssetHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	flt, err := buildAssetFilter(r.URL.Query())
	if err != nil {
		WriteJSONError(w, http.StatusBadRequest, err.Error())
		return
	}

	withTotal := parseBoolQuery(r.URL.Query(), "with_total")
	assets, total, err := h.assetSvc.GetAllAssets(r.Context(), flt, withTotal)
	if err != nil {
		internalServerError(w, h.logger, err.Error())
		return
	}

	payload := map[string]interface{}{
		"data": assets,
	}
	if withTotal {
		payload["total"] = total
	}

	writeJSON(w, http.StatusOK, payload)
}

func (h *AssetHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	assetID := mux.Vars(r)["id"]

	ast, err := h.assetSvc.GetAssetByID(r.Context(), assetID)
	if err != nil {
		if errors.As(err, new(asset.InvalidError)) {
			WriteJSONError(w, http.StatusBadRequest, err.Error())
			return
		}
		if errors.As(err, new(asset.NotFoundError)) {
			WriteJSONError(w, http.StatusNotFound, err.Error())
			return
		}
		internalServerError(w, h.logger, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"data": ast,
	})
}

// Upsert creates or updates an asset identified by its URN. Writes are
// idempotent: replaying a payload that changes nothing does not create a
// new version.
func (h *AssetHandler) Upsert(w http.ResponseWriter, r *http.Request) {
	usr := user.FromContext(r.Context())
	if usr.ID == "" {
		h.logger.Warn(errMissingUserInfo.Error())
		WriteJSONError(w, http.StatusBadRequest, errMissingUserInfo.Error())
		return
	}

	var ast asset.Asset
	if err := json.NewDecoder(r.Body).Decode(&ast); err != nil {
		WriteJSONError(w, http.StatusBadRequest, bodyParserErrorMsg(err))
		return
	}

	if err := ast.Validate(); err != nil {
		WriteJSONError(w, http.StatusBadRequest, err.Error())
		return
	}

	ast.UpdatedBy = usr
	assetID, err := h.assetSvc.UpsertAsset(r.Context(), &ast)
	if err != nil {
		if errors.As(err, new(asset.InvalidError)) {
			WriteJSONError(w, http.StatusBadRequest, err.Error())
			return
		}
		internalServerError(w, h.logger, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"id": assetID,
	})
}

// UpsertPatch merges the payload into the asset stored under the given URN.
// Fields absent from the payload keep their stored value.
func (h *AssetHandler) UpsertPatch(w http.ResponseWriter, r *http.Request) {
	usr := user.FromContext(r.Context())
	if usr.ID == "" {
		h.logger.Warn(errMissingUserInfo.Error())
		WriteJSONError(w, http.StatusBadRequest, errMissingUserInfo.Error())
		return
	}

	var patchData map[string]interface{}
	if err := json.NewDecoder(r.Body).Decode(&patchData); err != nil {
		WriteJSONError(w, http.StatusBadRequest, bodyParserErrorMsg(err))
		return
	}

	baseAsset, err := assetIdentityFromPatch(patchData)
	if err != nil {
		WriteJSONError(w, http.StatusBadRequest, err.Error())
		return
	}

	baseAsset.UpdatedBy = usr
	assetID, err := h.assetSvc.UpsertPatchAsset(r.Context(), &baseAsset, patchData)
	if err != nil {
		if errors.As(err, new(asset.InvalidError)) ||
			errors.Is(err, asset.ErrUnknownType) ||
			errors.Is(err, asset.ErrEmptyURN) {
			WriteJSONError(w, http.StatusBadRequest, err.Error())
			return
		}
		internalServerError(w, h.logger, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"id": assetID,
	})
}

func (h *AssetHandler) Delete(w http.ResponseWriter, r *http.Request) {
	usr := user.FromContext(r.Context())
	if usr.ID == "" {
		h.logger.Warn(errMissingUserInfo.Error())
		WriteJSONError(w, http.StatusBadRequest, errMissingUserInfo.Error())
		return
	}

	assetID := mux.Vars(r)["id"]

	if err := h.assetSvc.DeleteAsset(r.Context(), assetID); err != nil {
		if errors.As(err, new(asset.InvalidError)) {
			WriteJSONError(w, http.StatusBadRequest, err.Error())
			return
		}
		if errors.As(err, new(asset.NotFoundError)) {
			WriteJSONError(w, http.StatusNotFound, err.Error())
			return
		}
		internalServerError(w, h.logger, err.Error())
		return
	}

	writeJSON(w, http.StatusNoContent, nil)
}

func (h *AssetHandler) GetStargazers(w http.ResponseWriter, r *http.Request) {
	assetID := mux.Vars(r)["id"]
	flt := buildStarFilter(r.URL.Query())

	users, err := h.starSvc.GetStargazers(r.Context(), flt, assetID)
	if err != nil {
		if errors.As(err, new(star.NotFoundError)) {
			WriteJSONError(w, http.StatusNotFound, err.Error())
			return
		}
		if errors.Is(err, star.ErrEmptyAssetID) {
			WriteJSONError(w, http.StatusBadRequest, err.Error())
			return
		}
		internalServerError(w, h.logger, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"data": users,
	})
}

func (h *AssetHandler) GetVersionHistory(w http.ResponseWriter, r *http.Request) {
	assetID := mux.Vars(r)["id"]
	flt, err := buildAssetFilter(r.URL.Query())
	if err != nil {
		WriteJSONError(w, http.StatusBadRequest, err.Error())
		return
	}

	history, err := h.assetSvc.GetAssetVersionHistory(r.Context(), flt, assetID)
	if err != nil {
		if errors.As(err, new(asset.InvalidError)) {
			WriteJSONError(w, http.StatusBadRequest, err.Error())
			return
		}
		if errors.As(err, new(asset.NotFoundError)) {
			WriteJSONError(w, http.StatusNotFound, err.Error())
			return
		}
		internalServerError(w, h.logger, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"data": history,
	})
}

func (h *AssetHandler) GetByVersion(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	assetID := vars["id"]
	version := vars["version"]

	ast, err := h.assetSvc.GetAssetByVersion(r.Context(), assetID, version)
	if err != nil {
		if errors.As(err, new(asset.InvalidError)) {
			WriteJSONError(w, http.StatusBadRequest, err.Error())
			return
		}
		if errors.As(err, new(asset.NotFoundError)) {
			WriteJSONError(w, http.StatusNotFound, err.Error())
			return
		}
		internalServerError(w, h.logger, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"data": ast,
	})
}

// assetIdentityFromPatch extracts the identity fields the patch flow needs
// before the merge happens.
func assetIdentityFromPatch(patchData map[string]interface{}) (asset.Asset, error) {
	urn, _ := patchData["urn"].(string)
	typ, _ := patchData["type"].(string)
	service, _ := patchData["service"].(string)

	if urn == "" {
		return asset.Asset{}, asset.ErrEmptyURN
	}
	if !asset.Type(typ).IsValid() {
		return asset.Asset{}, asset.ErrUnknownType
	}
	if service == "" {
		return asset.Asset{}, errors.New("service must not be empty")
	}

	return asset.Asset{
		URN:     urn,
		Type:    asset.Type(typ),
		Service: service,
	}, nil
}

func buildAssetFilter(query url.Values) (asset.Filter, error) {
	flt := asset.Filter{
		Query:         query.Get("q"),
		SortBy:        query.Get("sort"),
		SortDirection: query.Get("direction"),
	}

	if typesStr := query.Get("types"); typesStr != "" {
		for _, typeVal := range strings.Split(typesStr, ",") {
			flt.Types = append(flt.Types, asset.Type(typeVal))
		}
	}

	if servicesStr := query.Get("services"); servicesStr != "" {
		flt.Services = strings.Split(servicesStr, ",")
	}

	if qFields := query.Get("q_fields"); qFields != "" {
		flt.QueryFields = strings.Split(qFields, ",")
	}

	flt.Size = parseIntQuery(query, "size")
	flt.Offset = parseIntQuery(query, "offset")

	for key, values := range query {
		if !strings.HasPrefix(key, dataFilterPrefix+".") {
			continue
		}
		if flt.Data == nil {
			flt.Data = map[string][]string{}
		}
		dataKey := strings.TrimPrefix(key, dataFilterPrefix+".")
		flt.Data[dataKey] = values
	}

	if err := flt.Validate(); err != nil {
		return asset.Filter{}, err
	}

	return flt, nil
}

func buildStarFilter(query url.Values) star.Filter {
	return star.Filter{
		Size:   parseIntQuery(query, "size"),
		Offset: parseIntQuery(query, "offset"),
	}
}

func parseIntQuery(query url.Values, key string) int {
	raw := query.Get(key)
	if raw == "" {
		return 0
	}
	val, err := strconv.Atoi(raw)
	if err != nil {
		return 0
	}
	return val
}

func parseBoolQuery(query url.Values, key string) bool {
	raw := query.Get(key)
	return raw != "" && raw != "false" && raw != "0"
}
