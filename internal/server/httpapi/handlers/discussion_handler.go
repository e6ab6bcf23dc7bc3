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
	"github.com/raystack/meridian/core/discussion"
	"github.com/raystack/meridian/core/user"
)

//go:generate mockery --name=DiscussionService -r --case underscore --structname DiscussionService --filename discussion_service_mock.go --output=./mocks

type DiscussionService interface {
	GetDiscussions(ctx context.Context, flt discussion.Filter) ([]discussion.Discussion, error)
	CreateDiscussion(ctx context.Context, dsc *discussion.Discussion) (string, error)
	GetDiscussion(ctx context.Context, did string) (discussion.Discussion, error)
	PatchDiscussion(ctx context.Context, did string, patch *discussion.Patch) error
	GetComments(ctx context.Context, discussionID string, flt discussion.Filter) ([]discussion.Comment, error)
	CreateComment(ctx context.Context, cmt *discussion.Comment) (string, error)
	GetComment(ctx context.Context, commentID, discussionID string) (discussion.Comment, error)
	UpdateComment(ctx context.Context, cmt *discussion.Comment) error
	DeleteComment(ctx context.Context, commentID, discussionID string) error
}

// DiscussionHandler exposes a REST interface to discussions and their
// comments.
type DiscussionHandler struct {
	logger        log.Logger
	discussionSvc DiscussionService
}

func NewDiscussionHandler(logger log.Logger, discussionSvc DiscussionService) *DiscussionHandler {
	return &DiscussionHandler{
		logger:        logger,
		discussionSvc: discussionSvc,
	}
}

// GetAll returns discussions matching the query params. Supported params
// are type, state, owner, assignee, asset, labels (comma separated), sort,
// direction, size and offset.
func (h *DiscussionHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	flt, err := buildDiscussionFilter(r.URL.Query())
	if err != nil {
		WriteJSONError(w, http.StatusBadRequest, err.Error())
		return
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

// Create opens a new discussion. Title, body and type are mandatory, and
// every discussion starts in the open state regardless of the payload.
func (h *DiscussionHandler) Create(w http.ResponseWriter, r *http.Request) {
	usr := user.FromContext(r.Context())
	if usr.ID == "" {
		h.logger.Warn(errMissingUserInfo.Error())
		WriteJSONError(w, http.StatusBadRequest, errMissingUserInfo.Error())
		return
	}

	var dsc discussion.Discussion
	if err := json.NewDecoder(r.Body).Decode(&dsc); err != nil {
		WriteJSONError(w, http.StatusBadRequest, bodyParserErrorMsg(err))
		return
	}

	dsc.Owner = usr
	id, err := h.discussionSvc.CreateDiscussion(r.Context(), &dsc)
	if err != nil {
		if errors.As(err, new(discussion.InvalidError)) ||
			errors.Is(err, discussion.ErrInvalidType) ||
			errors.Is(err, discussion.ErrInvalidState) {
			WriteJSONError(w, http.StatusBadRequest, err.Error())
			return
		}
		internalServerError(w, h.logger, err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, map[string]interface{}{
		"id": id,
	})
}

func (h *DiscussionHandler) Get(w http.ResponseWriter, r *http.Request) {
	discussionID := mux.Vars(r)["id"]
	if err := validateNumericID(discussionID); err != nil {
		h.logger.Warn(err.Error(), "id", discussionID)
		WriteJSONError(w, http.StatusBadRequest, discussion.ErrInvalidID.Error())
		return
	}

	dsc, err := h.discussionSvc.GetDiscussion(r.Context(), discussionID)
	if err != nil {
		if errors.As(err, new(discussion.NotFoundError)) {
			WriteJSONError(w, http.StatusNotFound, err.Error())
			return
		}
		internalServerError(w, h.logger, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"data": dsc,
	})
}

// Patch updates selected discussion fields. A field absent from the payload
// is untouched; an empty array clears the corresponding list. Closing and
// reopening goes through here by patching the state field.
func (h *DiscussionHandler) Patch(w http.ResponseWriter, r *http.Request) {
	usr := user.FromContext(r.Context())
	if usr.ID == "" {
		h.logger.Warn(errMissingUserInfo.Error())
		WriteJSONError(w, http.StatusBadRequest, errMissingUserInfo.Error())
		return
	}

	discussionID := mux.Vars(r)["id"]
	if err := validateNumericID(discussionID); err != nil {
		h.logger.Warn(err.Error(), "id", discussionID)
		WriteJSONError(w, http.StatusBadRequest, discussion.ErrInvalidID.Error())
		return
	}

	var patch discussion.Patch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		WriteJSONError(w, http.StatusBadRequest, bodyParserErrorMsg(err))
		return
	}

	err := h.discussionSvc.PatchDiscussion(r.Context(), discussionID, &patch)
	if err != nil {
		if errors.As(err, new(discussion.InvalidError)) ||
			errors.Is(err, discussion.ErrInvalidType) ||
			errors.Is(err, discussion.ErrInvalidState) {
			WriteJSONError(w, http.StatusBadRequest, err.Error())
			return
		}
		if errors.As(err, new(discussion.InvalidStateTransitionError)) {
			WriteJSONError(w, http.StatusConflict, err.Error())
			return
		}
		if errors.As(err, new(discussion.NotFoundError)) {
			WriteJSONError(w, http.StatusNotFound, err.Error())
			return
		}
		internalServerError(w, h.logger, err.Error())
		return
	}

	writeJSON(w, http.StatusNoContent, nil)
}

// CreateComment adds a comment to a discussion. Comments are accepted on
// closed discussions as well.
func (h *DiscussionHandler) CreateComment(w http.ResponseWriter, r *http.Request) {
	usr := user.FromContext(r.Context())
	if usr.ID == "" {
		h.logger.Warn(errMissingUserInfo.Error())
		WriteJSONError(w, http.StatusBadRequest, errMissingUserInfo.Error())
		return
	}

	discussionID := mux.Vars(r)["discussion_id"]
	if err := validateNumericID(discussionID); err != nil {
		WriteJSONError(w, http.StatusBadRequest, discussion.ErrInvalidID.Error())
		return
	}

	var cmt discussion.Comment
	if err := json.NewDecoder(r.Body).Decode(&cmt); err != nil {
		WriteJSONError(w, http.StatusBadRequest, bodyParserErrorMsg(err))
		return
	}

	cmt.DiscussionID = discussionID
	cmt.Owner = usr
	cmt.UpdatedBy = usr

	id, err := h.discussionSvc.CreateComment(r.Context(), &cmt)
	if err != nil {
		if errors.As(err, new(discussion.InvalidError)) {
			WriteJSONError(w, http.StatusBadRequest, err.Error())
			return
		}
		if errors.As(err, new(discussion.NotFoundError)) {
			WriteJSONError(w, http.StatusNotFound, err.Error())
			return
		}
		internalServerError(w, h.logger, err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, map[string]interface{}{
		"id": id,
	})
}

func (h *DiscussionHandler) GetAllComments(w http.ResponseWriter, r *http.Request) {
	discussionID := mux.Vars(r)["discussion_id"]
	if err := validateNumericID(discussionID); err != nil {
		WriteJSONError(w, http.StatusBadRequest, discussion.ErrInvalidID.Error())
		return
	}

	flt, err := buildDiscussionFilter(r.URL.Query())
	if err != nil {
		WriteJSONError(w, http.StatusBadRequest, err.Error())
		return
	}

	cmts, err := h.discussionSvc.GetComments(r.Context(), discussionID, flt)
	if err != nil {
		internalServerError(w, h.logger, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"data": cmts,
	})
}

func (h *DiscussionHandler) GetComment(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	commentID := vars["id"]
	discussionID := vars["discussion_id"]
	if err := validateNumericID(commentID); err != nil {
		WriteJSONError(w, http.StatusBadRequest, discussion.ErrInvalidID.Error())
		return
	}
	if err := validateNumericID(discussionID); err != nil {
		WriteJSONError(w, http.StatusBadRequest, discussion.ErrInvalidID.Error())
		return
	}

	cmt, err := h.discussionSvc.GetComment(r.Context(), commentID, discussionID)
	if err != nil {
		if errors.As(err, new(discussion.NotFoundError)) {
			WriteJSONError(w, http.StatusNotFound, err.Error())
			return
		}
		internalServerError(w, h.logger, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"data": cmt,
	})
}

func (h *DiscussionHandler) UpdateComment(w http.ResponseWriter, r *http.Request) {
	usr := user.FromContext(r.Context())
	if usr.ID == "" {
		h.logger.Warn(errMissingUserInfo.Error())
		WriteJSONError(w, http.StatusBadRequest, errMissingUserInfo.Error())
		return
	}

	vars := mux.Vars(r)
	commentID := vars["id"]
	discussionID := vars["discussion_id"]
	if err := validateNumericID(commentID); err != nil {
		WriteJSONError(w, http.StatusBadRequest, discussion.ErrInvalidID.Error())
		return
	}
	if err := validateNumericID(discussionID); err != nil {
		WriteJSONError(w, http.StatusBadRequest, discussion.ErrInvalidID.Error())
		return
	}

	var cmt discussion.Comment
	if err := json.NewDecoder(r.Body).Decode(&cmt); err != nil {
		WriteJSONError(w, http.StatusBadRequest, bodyParserErrorMsg(err))
		return
	}

	cmt.ID = commentID
	cmt.DiscussionID = discussionID
	cmt.UpdatedBy = usr

	err := h.discussionSvc.UpdateComment(r.Context(), &cmt)
	if err != nil {
		if errors.As(err, new(discussion.InvalidError)) {
			WriteJSONError(w, http.StatusBadRequest, err.Error())
			return
		}
		if errors.As(err, new(discussion.NotFoundError)) {
			WriteJSONError(w, http.StatusNotFound, err.Error())
			return
		}
		internalServerError(w, h.logger, err.Error())
		return
	}

	writeJSON(w, http.StatusNoContent, nil)
}

func (h *DiscussionHandler) DeleteComment(w http.ResponseWriter, r *http.Request) {
	usr := user.FromContext(r.Context())
	if usr.ID == "" {
		h.logger.Warn(errMissingUserInfo.Error())
		WriteJSONError(w, http.StatusBadRequest, errMissingUserInfo.Error())
		return
	}

	vars := mux.Vars(r)
	commentID := vars["id"]
	discussionID := vars["discussion_id"]
	if err := validateNumericID(commentID); err != nil {
		WriteJSONError(w, http.StatusBadRequest, discussion.ErrInvalidID.Error())
		return
	}
	if err := validateNumericID(discussionID); err != nil {
		WriteJSONError(w, http.StatusBadRequest, discussion.ErrInvalidID.Error())
		return
	}

	err := h.discussionSvc.DeleteComment(r.Context(), commentID, discussionID)
	if err != nil {
		if errors.As(err, new(discussion.NotFoundError)) {
			WriteJSONError(w, http.StatusNotFound, err.Error())
			return
		}
		internalServerError(w, h.logger, err.Error())
		return
	}

	writeJSON(w, http.StatusNoContent, nil)
}

func buildDiscussionFilter(query url.Values) (discussion.Filter, error) {
	flt := discussion.Filter{
		Type:          query.Get("type"),
		State:         query.Get("state"),
		Owner:         query.Get("owner"),
		SortBy:        query.Get("sort"),
		SortDirection: query.Get("direction"),
		Size:          parseIntQuery(query, "size"),
		Offset:        parseIntQuery(query, "offset"),
	}

	if assignees := query.Get("assignee"); assignees != "" {
		flt.Assignees = strings.Split(assignees, ",")
	}
	if assets := query.Get("asset"); assets != "" {
		flt.Assets = strings.Split(assets, ",")
	}
	if labels := query.Get("labels"); labels != "" {
		flt.Labels = strings.Split(labels, ",")
	}

	if err := flt.Validate(); err != nil {
		return discussion.Filter{}, err
	}

	flt.AssignDefault()

	return flt, nil
}

func validateNumericID(id string) error {
	idInt, err := strconv.ParseInt(id, 10, 32)
	if err != nil {
		return err
	}

	if idInt < 1 {
		return errors.New("id cannot be < 1")
	}

	return nil
}
