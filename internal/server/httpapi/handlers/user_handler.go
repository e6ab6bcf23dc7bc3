package handlers

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/goto/salt/log"
	"github.com/raystack/meridian/core/star"
	"github.com/raystack/meridian/core/user"
)

// UserHandler exposes the routes scoped to the requesting user: starred
// assets and discussions they own or are assigned to.
type UserHandler struct {
	logger        log.Logger
	starSvc       StarService
	discussionSvc DiscussionService
}

func NewUserHandler(logger log.Logger, starSvc StarService, discussionSvc DiscussionService) *UserHandler {
	return &UserHandler{
		logger:        logger,
		starSvc:       starSvc,
		discussionSvc: discussionSvc,
	}
}

// StarAsset stars an asset for the requesting user. Starring an asset that
// is already starred succeeds and returns the existing star.
func (h *UserHandler) StarAsset(w http.ResponseWriter, r *http.Request) {
	usr := user.FromContext(r.Context())
	if usr.ID == "" {
		h.logger.Warn(errMissingUserInfo.Error())
		WriteJSONError(w, http.StatusBadRequest, errMissingUserInfo.Error())
		return
	}

	assetID := mux.Vars(r)["asset_id"]
	starID, err := h.starSvc.Stars(r.Context(), usr.ID, assetID)
	if err != nil {
		if errors.Is(err, star.ErrEmptyAssetID) || errors.Is(err, star.ErrEmptyUserID) ||
			errors.As(err, new(star.InvalidError)) {
			WriteJSONError(w, http.StatusBadRequest, err.Error())
			return
		}
		if errors.As(err, new(star.NotFoundError)) {
			WriteJSONError(w, http.StatusNotFound, err.Error())
			return
		}
		internalServerError(w, h.logger, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"id": starID,
	})
}

func (h *UserHandler) GetStarredAsset(w http.ResponseWriter, r *http.Request) {
	usr := user.FromContext(r.Context())
	if usr.ID == "" {
		h.logger.Warn(errMissingUserInfo.Error())
		WriteJSONError(w, http.StatusBadRequest, errMissingUserInfo.Error())
		return
	}

	assetID := mux.Vars(r)["asset_id"]
	ast, err := h.starSvc.GetStarredAssetByUserID(r.Context(), usr.ID, assetID)
	if err != nil {
		if errors.As(err, new(star.NotFoundError)) {
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

// UnstarAsset removes the user's star. Unstarring an asset that is not
// starred is a no-op and still succeeds.
func (h *UserHandler) UnstarAsset(w http.ResponseWriter, r *http.Request) {
	usr := user.FromContext(r.Context())
	if usr.ID == "" {
		h.logger.Warn(errMissingUserInfo.Error())
		WriteJSONError(w, http.StatusBadRequest, errMissingUserInfo.Error())
		return
	}

	assetID := mux.Vars(r)["asset_id"]
	if err := h.starSvc.Unstars(r.Context(), usr.ID, assetID); err != nil {
		if errors.Is(err, star.ErrEmptyAssetID) || errors.Is(err, star.ErrEmptyUserID) {
			WriteJSONError(w, http.StatusBadRequest, err.Error())
			return
		}
		internalServerError(w, h.logger, err.Error())
		return
	}

	writeJSON(w, http.StatusNoContent, nil)
}

func (h *UserHandler) GetStarredAssets(w http.ResponseWriter, r *http.Request) {
	usr := user.FromContext(r.Context())
	if usr.ID == "" {
		h.logger.Warn(errMissingUserInfo.Error())
		WriteJSONError(w, http.StatusBadRequest, errMissingUserInfo.Error())
		return
	}

	flt := buildStarFilter(r.URL.Query())
	assets, err := h.starSvc.GetStarredAssetsByUserID(r.Context(), flt, usr.ID)
	if err != nil {
		internalServerError(w, h.logger, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"data": assets,
	})
}

// GetDiscussions returns discussions related to the requesting user. The
// "filter" query param scopes them: "assigned" for discussions assigned to
// the user, "created" for ones they opened, "all" (default) for both.
func (h *UserHandler) GetDiscussions(w http.ResponseWriter, r *http.Request) {
	usr := user.FromContext(r.Context())
	if usr.ID == "" {
		h.logger.Warn(errMissingUserInfo.Error())
		WriteJSONError(w, http.StatusBadRequest, errMissingUserInfo.Error())
		return
	}

	flt, err := buildDiscussionFilter(r.URL.Query())
	if err != nil {
		WriteJSONError(w, http.StatusBadRequest, err.Error())
		return
	}

	switch r.URL.Query().Get("filter") {
	case "assigned":
		flt.Assignees = []string{usr.ID}
	case "created":
		flt.Owner = usr.ID
	default:
		flt.Assignees = []string{usr.ID}
		flt.Owner = usr.ID
		flt.DisjointAssigneeOwner = true
	}

	dscs, err := h.discussionSvc.GetDiscussions(r.Context(), flt)
	if err != nil {
		internalServerError(w, h.logger, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"data": dscs,
	})
}
