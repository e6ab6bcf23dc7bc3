package handlers_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"reflect"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/goto/salt/log"

	"github.com/raystack/meridian/core/asset"
	"github.com/raystack/meridian/core/star"
	"github.com/raystack/meridian/core/user"
	"github.com/raystack/meridian/internal/server/httpapi/handlers"
	"github.com/raystack/meridian/internal/server/httpapi/handlers/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var (
	logger = log.NewNoop()
)

func TestAssetHandlerUpsert(t *testing.T) {
	var usr = user.User{ID: uuid.NewString(), Email: "meridian@raystack.io"}
	var validPayload = `{
		"urn": "test dagger",
		"type": "table",
		"name": "de-dagger-test",
		"service": "kafka",
		"data": {}
	}`

	t.Run("should return HTTP 400 for invalid payload", func(t *testing.T) {
		testCases := []struct {
			description string
			payload     string
		}{
			{
				description: "empty object",
				payload:     `{}`,
			},
			{
				description: "empty urn",
				payload:     `{"urn": "", "name": "some-name", "data": {}, "service": "some-service", "type": "table"}`,
			},
			{
				description: "empty type",
				payload:     `{"urn": "some-urn", "name": "some-name", "data": {}, "service": "some-service", "type": ""}`,
			},
			{
				description: "invalid type",
				payload:     `{"urn": "some-urn", "name": "some-name", "data": {}, "service": "some-service", "type": "invalid_type"}`,
			},
		}

		for _, testCase := range testCases {
			t.Run(testCase.description, func(t *testing.T) {
				rw := httptest.NewRecorder()

				rr := httptest.NewRequest("PUT", "/", strings.NewReader(testCase.payload))
				ctx := user.NewContext(rr.Context(), usr)
				rr = rr.WithContext(ctx)

				handler := handlers.NewAssetHandler(logger, nil, nil)
				handler.Upsert(rw, rr)

				expectedStatus := http.StatusBadRequest
				if rw.Code != expectedStatus {
					t.Errorf("expected handler to return HTTP %d, returned HTTP %d instead", expectedStatus, rw.Code)
					return
				}
			})
		}
	})

	t.Run("should return HTTP 400 if identity is missing from the request", func(t *testing.T) {
		rr := httptest.NewRequest("PUT", "/", strings.NewReader(validPayload))
		rw := httptest.NewRecorder()

		handler := handlers.NewAssetHandler(logger, nil, nil)
		handler.Upsert(rw, rr)

		assert.Equal(t, http.StatusBadRequest, rw.Code)
	})

	t.Run("should return HTTP 500 if the asset creation/update fails", func(t *testing.T) {
		rr := httptest.NewRequest("PUT", "/", strings.NewReader(validPayload))
		ctx := user.NewContext(rr.Context(), usr)
		rr = rr.WithContext(ctx)
		rw := httptest.NewRecorder()

		expectedErr := errors.New("unknown error")

		svc := new(mocks.AssetService)
		svc.On("UpsertAsset", rr.Context(), mock.AnythingOfType("*asset.Asset")).Return("1234-5678", expectedErr)
		defer svc.AssertExpectations(t)

		handler := handlers.NewAssetHandler(logger, svc, nil)
		handler.Upsert(rw, rr)

		assert.Equal(t, http.StatusInternalServerError, rw.Code)
		var response handlers.ErrorResponse
		err := json.NewDecoder(rw.Body).Decode(&response)
		require.NoError(t, err)
		assert.Contains(t, response.Reason, "Internal Server Error")
	})

	t.Run("should return HTTP 200 and asset's ID if the asset is successfully created/updated", func(t *testing.T) {
		ast := asset.Asset{
			URN:       "test dagger",
			Type:      asset.TypeTable,
			Name:      "de-dagger-test",
			Service:   "kafka",
			UpdatedBy: usr,
			Data:      map[string]interface{}{},
		}
		assetID := uuid.NewString()

		rr := httptest.NewRequest("PUT", "/", strings.NewReader(validPayload))
		ctx := user.NewContext(rr.Context(), usr)
		rr = rr.WithContext(ctx)
		rw := httptest.NewRecorder()

		svc := new(mocks.AssetService)
		svc.On("UpsertAsset", rr.Context(), &ast).Return(assetID, nil)
		defer svc.AssertExpectations(t)

		handler := handlers.NewAssetHandler(logger, svc, nil)
		handler.Upsert(rw, rr)

		assert.Equal(t, http.StatusOK, rw.Code)
		var response map[string]interface{}
		err := json.NewDecoder(rw.Body).Decode(&response)
		require.NoError(t, err)

		actualID, exists := response["id"]
		assert.True(t, exists)
		assert.Equal(t, assetID, actualID)
	})
}

func TestAssetHandlerUpsertPatch(t *testing.T) {
	var usr = user.User{ID: uuid.NewString(), Email: "meridian@raystack.io"}
	var validPayload = `{
		"urn": "test dagger",
		"type": "table",
		"name": "new-name",
		"service": "kafka",
		"data": {}
	}`

	t.Run("should return HTTP 400 for invalid payload", func(t *testing.T) {
		testCases := []struct {
			description string
			payload     string
		}{
			{
				description: "empty object",
				payload:     `{}`,
			},
			{
				description: "empty urn",
				payload:     `{"urn": "", "name": "some-name", "data": {}, "service": "some-service", "type": "table"}`,
			},
			{
				description: "empty service",
				payload:     `{"urn": "some-urn", "name": "some-name", "data": {}, "service": "", "type": "table"}`,
			},
			{
				description: "empty type",
				payload:     `{"urn": "some-urn", "name": "some-name", "data": {}, "service": "some-service", "type": ""}`,
			},
			{
				description: "invalid type",
				payload:     `{"urn": "some-urn", "name": "some-name", "data": {}, "service": "some-service", "type": "invalid_type"}`,
			},
		}

		for _, testCase := range testCases {
			t.Run(testCase.description, func(t *testing.T) {
				rw := httptest.NewRecorder()

				rr := httptest.NewRequest("PATCH", "/", strings.NewReader(testCase.payload))
				ctx := user.NewContext(rr.Context(), usr)
				rr = rr.WithContext(ctx)

				handler := handlers.NewAssetHandler(logger, nil, nil)
				handler.UpsertPatch(rw, rr)

				expectedStatus := http.StatusBadRequest
				if rw.Code != expectedStatus {
					t.Errorf("expected handler to return HTTP %d, returned HTTP %d instead", expectedStatus, rw.Code)
					return
				}
			})
		}
	})

	t.Run("should return HTTP 500 if patching the asset fails", func(t *testing.T) {
		rr := httptest.NewRequest("PATCH", "/", strings.NewReader(validPayload))
		ctx := user.NewContext(rr.Context(), usr)
		rr = rr.WithContext(ctx)
		rw := httptest.NewRecorder()

		expectedErr := errors.New("unknown error")

		svc := new(mocks.AssetService)
		svc.On("UpsertPatchAsset", rr.Context(),
			mock.AnythingOfType("*asset.Asset"),
			mock.AnythingOfType("map[string]interface {}"),
		).Return("", expectedErr)
		defer svc.AssertExpectations(t)

		handler := handlers.NewAssetHandler(logger, svc, nil)
		handler.UpsertPatch(rw, rr)

		assert.Equal(t, http.StatusInternalServerError, rw.Code)
		var response handlers.ErrorResponse
		err := json.NewDecoder(rw.Body).Decode(&response)
		require.NoError(t, err)
		assert.Contains(t, response.Reason, "Internal Server Error")
	})

	t.Run("should return HTTP 200 and asset's ID if the asset is successfully patched", func(t *testing.T) {
		baseAsset := asset.Asset{
			URN:       "test dagger",
			Type:      asset.TypeTable,
			Service:   "kafka",
			UpdatedBy: usr,
		}
		assetID := uuid.NewString()

		rr := httptest.NewRequest("PATCH", "/", strings.NewReader(validPayload))
		ctx := user.NewContext(rr.Context(), usr)
		rr = rr.WithContext(ctx)
		rw := httptest.NewRecorder()

		svc := new(mocks.AssetService)
		svc.On("UpsertPatchAsset", rr.Context(), &baseAsset, map[string]interface{}{
			"urn":     "test dagger",
			"type":    "table",
			"name":    "new-name",
			"service": "kafka",
			"data":    map[string]interface{}{},
		}).Return(assetID, nil)
		defer svc.AssertExpectations(t)

		handler := handlers.NewAssetHandler(logger, svc, nil)
		handler.UpsertPatch(rw, rr)

		assert.Equal(t, http.StatusOK, rw.Code)
		var response map[string]interface{}
		err := json.NewDecoder(rw.Body).Decode(&response)
		require.NoError(t, err)

		actualID, exists := response["id"]
		assert.True(t, exists)
		assert.Equal(t, assetID, actualID)
	})
}

func TestAssetHandlerDelete(t *testing.T) {
	var usr = user.User{ID: uuid.NewString(), Email: "meridian@raystack.io"}

	t.Run("should return 400 if identity is missing from the request", func(t *testing.T) {
		rr := httptest.NewRequest("DELETE", "/", nil)
		rw := httptest.NewRecorder()
		rr = mux.SetURLVars(rr, map[string]string{
			"id": uuid.NewString(),
		})

		handler := handlers.NewAssetHandler(logger, nil, nil)
		handler.Delete(rw, rr)

		assert.Equal(t, http.StatusBadRequest, rw.Code)
	})

	type testCase struct {
		Description  string
		AssetID      string
		ExpectStatus int
		Setup        func(context.Context, *testCase, *mocks.AssetService)
	}

	var testCases = []testCase{
		{
			Description:  "should return 400 when deleting fails with invalid error",
			AssetID:      "invalid",
			ExpectStatus: http.StatusBadRequest,
			Setup: func(ctx context.Context, tc *testCase, svc *mocks.AssetService) {
				svc.On("DeleteAsset", ctx, tc.AssetID).Return(asset.InvalidError{AssetID: tc.AssetID})
			},
		},
		{
			Description:  "should return 404 when asset cannot be found",
			AssetID:      uuid.NewString(),
			ExpectStatus: http.StatusNotFound,
			Setup: func(ctx context.Context, tc *testCase, svc *mocks.AssetService) {
				svc.On("DeleteAsset", ctx, tc.AssetID).Return(asset.NotFoundError{AssetID: tc.AssetID})
			},
		},
		{
			Description:  "should return 500 on error deleting asset",
			AssetID:      uuid.NewString(),
			ExpectStatus: http.StatusInternalServerError,
			Setup: func(ctx context.Context, tc *testCase, svc *mocks.AssetService) {
				svc.On("DeleteAsset", ctx, tc.AssetID).Return(errors.New("error deleting asset"))
			},
		},
		{
			Description:  "should return 204 on success",
			AssetID:      uuid.NewString(),
			ExpectStatus: http.StatusNoContent,
			Setup: func(ctx context.Context, tc *testCase, svc *mocks.AssetService) {
				svc.On("DeleteAsset", ctx, tc.AssetID).Return(nil)
			},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.Description, func(t *testing.T) {
			rr := httptest.NewRequest("DELETE", "/", nil)
			ctx := user.NewContext(rr.Context(), usr)
			rr = rr.WithContext(ctx)
			rw := httptest.NewRecorder()
			rr = mux.SetURLVars(rr, map[string]string{
				"id": tc.AssetID,
			})

			svc := new(mocks.AssetService)
			tc.Setup(rr.Context(), &tc, svc)
			defer svc.AssertExpectations(t)

			handler := handlers.NewAssetHandler(logger, svc, nil)
			handler.Delete(rw, rr)

			if rw.Code != tc.ExpectStatus {
				t.Errorf("expected handler to return %d status, was %d instead", tc.ExpectStatus, rw.Code)
				return
			}
		})
	}
}

func TestAssetHandlerGetByID(t *testing.T) {
	var (
		assetID = uuid.NewString()
		ast     = asset.Asset{
			ID: assetID,
		}
	)

	type testCase struct {
		Description  string
		ExpectStatus int
		Setup        func(context.Context, *mocks.AssetService)
		PostCheck    func(resp *http.Response) error
	}

	var testCases = []testCase{
		{
			Description:  `should return http 400 if asset id is invalid`,
			ExpectStatus: http.StatusBadRequest,
			Setup: func(ctx context.Context, svc *mocks.AssetService) {
				svc.On("GetAssetByID", ctx, assetID).Return(asset.Asset{}, asset.InvalidError{AssetID: assetID})
			},
		},
		{
			Description:  `should return http 404 if asset doesn't exist`,
			ExpectStatus: http.StatusNotFound,
			Setup: func(ctx context.Context, svc *mocks.AssetService) {
				svc.On("GetAssetByID", ctx, assetID).Return(asset.Asset{}, asset.NotFoundError{AssetID: assetID})
			},
		},
		{
			Description:  `should return http 500 if fetching fails`,
			ExpectStatus: http.StatusInternalServerError,
			Setup: func(ctx context.Context, svc *mocks.AssetService) {
				svc.On("GetAssetByID", ctx, assetID).Return(asset.Asset{}, errors.New("unknown error"))
			},
		},
		{
			Description:  "should return http 200 status along with the asset, if found",
			ExpectStatus: http.StatusOK,
			Setup: func(ctx context.Context, svc *mocks.AssetService) {
				svc.On("GetAssetByID", ctx, assetID).Return(ast, nil)
			},
			PostCheck: func(r *http.Response) error {
				type responsePayload struct {
					Data asset.Asset `json:"data"`
				}
				var response responsePayload
				err := json.NewDecoder(r.Body).Decode(&response)
				if err != nil {
					return fmt.Errorf("error reading response body: %w", err)
				}
				if reflect.DeepEqual(response.Data, ast) == false {
					return fmt.Errorf("expected returned asset to be %+v, was %+v", ast, response.Data)
				}
				return nil
			},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.Description, func(t *testing.T) {
			rr := httptest.NewRequest("GET", "/", nil)
			rw := httptest.NewRecorder()
			rr = mux.SetURLVars(rr, map[string]string{
				"id": assetID,
			})
			svc := new(mocks.AssetService)
			tc.Setup(rr.Context(), svc)

			handler := handlers.NewAssetHandler(logger, svc, nil)
			handler.GetByID(rw, rr)

			if rw.Code != tc.ExpectStatus {
				t.Errorf("expected handler to return http %d, returned %d instead", tc.ExpectStatus, rw.Code)
				return
			}
			if tc.PostCheck != nil {
				if err := tc.PostCheck(rw.Result()); err != nil {
					t.Error(err)
					return
				}
			}
		})
	}
}

func TestAssetHandlerGetAll(t *testing.T) {
	type testCase struct {
		Description  string
		Querystring  string
		ExpectStatus int
		Setup        func(context.Context, *mocks.AssetService)
		PostCheck    func(resp *http.Response) error
	}

	var testCases = []testCase{
		{
			Description:  `should return http 500 if fetching fails`,
			ExpectStatus: http.StatusInternalServerError,
			Setup: func(ctx context.Context, svc *mocks.AssetService) {
				svc.On("GetAllAssets", ctx, asset.Filter{}, false).Return([]asset.Asset{}, uint32(0), errors.New("unknown error"))
			},
		},
		{
			Description:  `should return http 400 if sort field is invalid`,
			Querystring:  "?sort=invalid_field",
			ExpectStatus: http.StatusBadRequest,
			Setup:        func(ctx context.Context, svc *mocks.AssetService) {},
		},
		{
			Description:  `should parse querystring to get filter`,
			Querystring:  "?types=table&services=bigquery&size=30&offset=50&sort=created_at&direction=desc&data.dataset=booking&data.project=p-godata-id&q=internal&q_fields=name,urn",
			ExpectStatus: http.StatusOK,
			Setup: func(ctx context.Context, svc *mocks.AssetService) {
				svc.On("GetAllAssets", ctx, asset.Filter{
					Types:         []asset.Type{"table"},
					Services:      []string{"bigquery"},
					Size:          30,
					Offset:        50,
					SortBy:        "created_at",
					SortDirection: "desc",
					Data: map[string][]string{
						"dataset": {"booking"},
						"project": {"p-godata-id"},
					},
					Query:       "internal",
					QueryFields: []string{"name", "urn"},
				}, false).Return([]asset.Asset{}, uint32(0), nil)
			},
		},
		{
			Description:  "should convert multiple types and services from querystring to filter",
			Querystring:  "?types=table,job&services=bigquery,kafka",
			ExpectStatus: http.StatusOK,
			Setup: func(ctx context.Context, svc *mocks.AssetService) {
				svc.On("GetAllAssets", ctx, asset.Filter{
					Types:    []asset.Type{"table", "job"},
					Services: []string{"bigquery", "kafka"},
				}, false).Return([]asset.Asset{}, uint32(0), nil)
			},
		},
		{
			Description:  "should return http 200 status along with list of assets",
			ExpectStatus: http.StatusOK,
			Setup: func(ctx context.Context, svc *mocks.AssetService) {
				svc.On("GetAllAssets", ctx, asset.Filter{}, false).Return([]asset.Asset{
					{ID: "testid-1"},
					{ID: "testid-2"},
				}, uint32(0), nil)
			},
			PostCheck: func(r *http.Response) error {
				type responsePayload struct {
					Data []asset.Asset `json:"data"`
				}
				expected := responsePayload{
					Data: []asset.Asset{
						{ID: "testid-1"},
						{ID: "testid-2"},
					},
				}
				var actual responsePayload
				if err := json.NewDecoder(r.Body).Decode(&actual); err != nil {
					return fmt.Errorf("error reading response body: %w", err)
				}
				if reflect.DeepEqual(actual, expected) == false {
					return fmt.Errorf("expected payload to be %+v, was %+v", expected, actual)
				}
				return nil
			},
		},
		{
			Description:  "should return total in the payload when with_total is set",
			Querystring:  "?with_total=true",
			ExpectStatus: http.StatusOK,
			Setup: func(ctx context.Context, svc *mocks.AssetService) {
				svc.On("GetAllAssets", ctx, asset.Filter{}, true).Return([]asset.Asset{
					{ID: "testid-1"},
				}, uint32(150), nil)
			},
			PostCheck: func(r *http.Response) error {
				type responsePayload struct {
					Data  []asset.Asset `json:"data"`
					Total uint32        `json:"total"`
				}
				var actual responsePayload
				if err := json.NewDecoder(r.Body).Decode(&actual); err != nil {
					return fmt.Errorf("error reading response body: %w", err)
				}
				if actual.Total != 150 {
					return fmt.Errorf("expected total to be 150, was %d", actual.Total)
				}
				return nil
			},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.Description, func(t *testing.T) {
			rr := httptest.NewRequest("GET", "/"+tc.Querystring, nil)
			rw := httptest.NewRecorder()
			svc := new(mocks.AssetService)
			tc.Setup(rr.Context(), svc)

			handler := handlers.NewAssetHandler(logger, svc, nil)
			handler.GetAll(rw, rr)

			if rw.Code != tc.ExpectStatus {
				t.Errorf("expected handler to return http %d, returned %d instead", tc.ExpectStatus, rw.Code)
				return
			}
			if tc.PostCheck != nil {
				if err := tc.PostCheck(rw.Result()); err != nil {
					t.Error(err)
					return
				}
			}
		})
	}
}

func TestAssetHandlerGetByVersion(t *testing.T) {
	var (
		assetID = uuid.NewString()
		version = "0.2"
		ast     = asset.Asset{
			ID:      assetID,
			Version: version,
		}
	)

	type testCase struct {
		Description  string
		ExpectStatus int
		Setup        func(context.Context, *mocks.AssetService)
	}

	var testCases = []testCase{
		{
			Description:  `should return http 404 if the version doesn't exist`,
			ExpectStatus: http.StatusNotFound,
			Setup: func(ctx context.Context, svc *mocks.AssetService) {
				svc.On("GetAssetByVersion", ctx, assetID, version).Return(asset.Asset{}, asset.NotFoundError{AssetID: assetID})
			},
		},
		{
			Description:  `should return http 500 if fetching fails`,
			ExpectStatus: http.StatusInternalServerError,
			Setup: func(ctx context.Context, svc *mocks.AssetService) {
				svc.On("GetAssetByVersion", ctx, assetID, version).Return(asset.Asset{}, errors.New("unknown error"))
			},
		},
		{
			Description:  "should return http 200 along with the asset at the given version",
			ExpectStatus: http.StatusOK,
			Setup: func(ctx context.Context, svc *mocks.AssetService) {
				svc.On("GetAssetByVersion", ctx, assetID, version).Return(ast, nil)
			},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.Description, func(t *testing.T) {
			rr := httptest.NewRequest("GET", "/", nil)
			rw := httptest.NewRecorder()
			rr = mux.SetURLVars(rr, map[string]string{
				"id":      assetID,
				"version": version,
			})
			svc := new(mocks.AssetService)
			tc.Setup(rr.Context(), svc)
			defer svc.AssertExpectations(t)

			handler := handlers.NewAssetHandler(logger, svc, nil)
			handler.GetByVersion(rw, rr)

			if rw.Code != tc.ExpectStatus {
				t.Errorf("expected handler to return http %d, returned %d instead", tc.ExpectStatus, rw.Code)
				return
			}
		})
	}
}

func TestAssetHandlerGetVersionHistory(t *testing.T) {
	var assetID = uuid.NewString()

	type testCase struct {
		Description  string
		ExpectStatus int
		Setup        func(context.Context, *mocks.AssetService)
	}

	var testCases = []testCase{
		{
			Description:  `should return http 404 if the asset doesn't exist`,
			ExpectStatus: http.StatusNotFound,
			Setup: func(ctx context.Context, svc *mocks.AssetService) {
				svc.On("GetAssetVersionHistory", ctx, asset.Filter{}, assetID).
					Return([]asset.Asset{}, asset.NotFoundError{AssetID: assetID})
			},
		},
		{
			Description:  `should return http 500 if fetching fails`,
			ExpectStatus: http.StatusInternalServerError,
			Setup: func(ctx context.Context, svc *mocks.AssetService) {
				svc.On("GetAssetVersionHistory", ctx, asset.Filter{}, assetID).
					Return([]asset.Asset{}, errors.New("unknown error"))
			},
		},
		{
			Description:  "should return http 200 along with the version history",
			ExpectStatus: http.StatusOK,
			Setup: func(ctx context.Context, svc *mocks.AssetService) {
				svc.On("GetAssetVersionHistory", ctx, asset.Filter{}, assetID).
					Return([]asset.Asset{
						{ID: assetID, Version: "0.2"},
						{ID: assetID, Version: "0.1"},
					}, nil)
			},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.Description, func(t *testing.T) {
			rr := httptest.NewRequest("GET", "/", nil)
			rw := httptest.NewRecorder()
			rr = mux.SetURLVars(rr, map[string]string{
				"id": assetID,
			})
			svc := new(mocks.AssetService)
			tc.Setup(rr.Context(), svc)
			defer svc.AssertExpectations(t)

			handler := handlers.NewAssetHandler(logger, svc, nil)
			handler.GetVersionHistory(rw, rr)

			if rw.Code != tc.ExpectStatus {
				t.Errorf("expected handler to return http %d, returned %d instead", tc.ExpectStatus, rw.Code)
				return
			}
		})
	}
}

func TestAssetHandlerGetStargazers(t *testing.T) {
	var assetID = uuid.NewString()

	type testCase struct {
		Description  string
		ExpectStatus int
		Setup        func(context.Context, *mocks.StarService)
	}

	var testCases = []testCase{
		{
			Description:  "should return 404 when nobody starred the asset",
			ExpectStatus: http.StatusNotFound,
			Setup: func(ctx context.Context, svc *mocks.StarService) {
				svc.On("GetStargazers", ctx, star.Filter{}, assetID).
					Return(nil, star.NotFoundError{AssetID: assetID})
			},
		},
		{
			Description:  "should return 500 on generic error",
			ExpectStatus: http.StatusInternalServerError,
			Setup: func(ctx context.Context, svc *mocks.StarService) {
				svc.On("GetStargazers", ctx, star.Filter{}, assetID).
					Return(nil, errors.New("some error"))
			},
		},
		{
			Description:  "should return 200 along with the stargazers",
			ExpectStatus: http.StatusOK,
			Setup: func(ctx context.Context, svc *mocks.StarService) {
				svc.On("GetStargazers", ctx, star.Filter{}, assetID).
					Return([]user.User{
						{ID: uuid.NewString(), Email: "user@raystack.io"},
					}, nil)
			},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.Description, func(t *testing.T) {
			rr := httptest.NewRequest("GET", "/", nil)
			rw := httptest.NewRecorder()
			rr = mux.SetURLVars(rr, map[string]string{
				"id": assetID,
			})
			svc := new(mocks.StarService)
			tc.Setup(rr.Context(), svc)
			defer svc.AssertExpectations(t)

			handler := handlers.NewAssetHandler(logger, nil, svc)
			handler.GetStargazers(rw, rr)

			if rw.Code != tc.ExpectStatus {
				t.Errorf("expected handler to return http %d, returned %d instead", tc.ExpectStatus, rw.Code)
				return
			}
		})
	}
}
