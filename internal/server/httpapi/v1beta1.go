package httpapi

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/raystack/meridian/internal/server/httpapi/handlers"
)

func setupV1Beta1Router(router *mux.Router, handlers *Handler) {
	setupV1Beta1AssetRoutes("/assets", router, handlers.Asset)

	router.Path("/search").
		Methods(http.MethodGet).
		HandlerFunc(handlers.Search.Search)

	router.Path("/search/suggest").
		Methods(http.MethodGet).
		HandlerFunc(handlers.Search.Suggest)

	setupMeRoutes("/me", router, handlers.User)

	setupDiscussionsRoutes("/discussions", router, handlers.Discussion)
}

func setupV1Beta1AssetRoutes(baseURL string, router *mux.Router, ah *handlers.AssetHandler) {
	router.Path(baseURL).
		Methods(http.MethodGet).
		HandlerFunc(ah.GetAll)

	router.Path(baseURL).
		Methods(http.MethodPut).
		HandlerFunc(ah.Upsert)

	router.Path(baseURL).
		Methods(http.MethodPatch).
		HandlerFunc(ah.UpsertPatch)

	router.Path(baseURL + "/{id}").
		Methods(http.MethodGet).
		HandlerFunc(ah.GetByID)

	router.Path(baseURL + "/{id}").
		Methods(http.MethodDelete).
		HandlerFunc(ah.Delete)

	router.Path(baseURL + "/{id}/stargazers").
		Methods(http.MethodGet).
		HandlerFunc(ah.GetStargazers)

	router.Path(baseURL + "/{id}/versions").
		Methods(http.MethodGet).
		HandlerFunc(ah.GetVersionHistory)

	router.Path(baseURL + "/{id}/versions/{version}").
		Methods(http.MethodGet).
		HandlerFunc(ah.GetByVersion)
}

func setupMeRoutes(baseURL string, router *mux.Router, uh *handlers.UserHandler) {
	router.Path(baseURL + "/starred").
		Methods(http.MethodGet).
		HandlerFunc(uh.GetStarredAssets)

	starredAssetURL := baseURL + "/starred/{asset_id}"
	router.Methods(http.MethodPut).Path(starredAssetURL).HandlerFunc(uh.StarAsset)
	router.Methods(http.MethodGet).Path(starredAssetURL).HandlerFunc(uh.GetStarredAsset)
	router.Methods(http.MethodDelete).Path(starredAssetURL).HandlerFunc(uh.UnstarAsset)

	router.Path(baseURL + "/discussions").
		Methods(http.MethodGet).
		HandlerFunc(uh.GetDiscussions)
}

func setupDiscussionsRoutes(baseURL string, router *mux.Router, dh *handlers.DiscussionHandler) {
	router.Path(baseURL).
		Methods(http.MethodPost).
		HandlerFunc(dh.Create)

	router.Path(baseURL).
		Methods(http.MethodGet).
		HandlerFunc(dh.GetAll)

	router.Path(baseURL + "/{id}").
		Methods(http.MethodGet).
		HandlerFunc(dh.Get)

	router.Path(baseURL + "/{id}").
		Methods(http.MethodPatch).
		HandlerFunc(dh.Patch)

	commentURL := baseURL + "/{discussion_id}/comments"
	router.Path(commentURL).
		Methods(http.MethodPost).
		HandlerFunc(dh.CreateComment)

	router.Path(commentURL).
		Methods(http.MethodGet).
		HandlerFunc(dh.GetAllComments)

	router.Path(commentURL + "/{id}").
		Methods(http.MethodGet).
		HandlerFunc(dh.GetComment)

	router.Path(commentURL + "/{id}").
		Methods(http.MethodPut).
		HandlerFunc(dh.UpdateComment)

	router.Path(commentURL + "/{id}").
		Methods(http.MethodDelete).
		HandlerFunc(dh.DeleteComment)
}
