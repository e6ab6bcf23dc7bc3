package asset

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/goto/salt/log"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

//go:generate mockery --name=Worker -r --case underscore --structname Worker --filename worker_mock.go --output=./mocks

// Worker takes over index synchronization after a repository write commits.
// Implementations either mirror the change immediately (in-situ) or persist
// a job to a durable queue for asynchronous delivery.
type Worker interface {
	EnqueueIndexAssetJob(ctx context.Context, ast Asset) error
	EnqueueDeleteAssetJob(ctx context.Context, urn string) error
	Close() error
}

type Service struct {
	assetRepository     Repository
	discoveryRepository DiscoveryRepository
	worker              Worker
	logger              log.Logger

	assetOpCounter metric.Int64Counter
}

type ServiceDeps struct {
	AssetRepo     Repository
	DiscoveryRepo DiscoveryRepository
	Worker        Worker
	Logger        log.Logger
}

func NewService(deps ServiceDeps) *Service {
	assetOpCounter, err := otel.Meter("github.com/raystack/meridian/core/asset").
		Int64Counter("meridian.asset.operation")
	if err != nil {
		otel.Handle(err)
	}

	logger := deps.Logger
	if logger == nil {
		logger = log.NewNoop()
	}

	return &Service{
		assetRepository:     deps.AssetRepo,
		discoveryRepository: deps.DiscoveryRepo,
		worker:              deps.Worker,
		logger:              logger,

		assetOpCounter: assetOpCounter,
	}
}

func (s *Service) GetAllAssets(ctx context.Context, flt Filter, withTotal bool) ([]Asset, uint32, error) {
	var totalCount uint32
	assets, err := s.assetRepository.GetAll(ctx, flt)
	if err != nil {
		return nil, totalCount, err
	}

	if withTotal {
		total, err := s.assetRepository.GetCount(ctx, flt)
		if err != nil {
			return nil, totalCount, err
		}
		totalCount = uint32(total)
	}
	return assets, totalCount, nil
}

// UpsertAsset writes the asset to the repository and hands the committed
// state to the worker for indexing. The repository alone decides whether the
// call succeeds: an indexing failure is logged and left for retry or the
// reconciliation sweep, never surfaced to the caller.
func (s *Service) UpsertAsset(ctx context.Context, ast *Asset) (id string, err error) {
	defer func() {
		s.instrumentAssetOp(ctx, "UpsertAsset", ast.URN, err)
	}()

	if err := ast.Validate(); err != nil {
		return "", err
	}

	assetID, err := s.assetRepository.Upsert(ctx, ast)
	if err != nil {
		return "", err
	}

	ast.ID = assetID
	if err := s.worker.EnqueueIndexAssetJob(ctx, *ast); err != nil {
		s.logger.Warn("indexing degraded, asset will converge via reconciliation",
			"urn", ast.URN, "err", err.Error())
	}

	return assetID, nil
}

// UpsertPatchAsset merges patchData into the asset currently stored under
// the patched URN, then upserts the result. Fields absent from patchData
// keep their prior value; a brand-new URN starts from a zero asset.
func (s *Service) UpsertPatchAsset(ctx context.Context, ast *Asset, patchData map[string]interface{}) (string, error) {
	currentAsset, err := s.assetRepository.GetByURN(ctx, ast.URN)
	if err != nil && !errors.As(err, new(NotFoundError)) {
		return "", fmt.Errorf("get asset by urn: %w", err)
	}

	if currentAsset.ID != "" {
		currentAsset.UpdatedBy = ast.UpdatedBy
		*ast = currentAsset
	}
	ast.Patch(patchData)

	return s.UpsertAsset(ctx, ast)
}

func (s *Service) DeleteAsset(ctx context.Context, id string) (err error) {
	defer func() {
		s.instrumentAssetOp(ctx, "DeleteAsset", id, err)
	}()

	urn := id
	if isValidUUID(id) {
		ast, err := s.assetRepository.GetByID(ctx, id)
		if err != nil {
			return err
		}

		urn = ast.URN
	}

	if err := s.assetRepository.DeleteByURN(ctx, urn); err != nil {
		return err
	}

	if err := s.worker.EnqueueDeleteAssetJob(ctx, urn); err != nil {
		s.logger.Warn("index removal degraded, document will converge via reconciliation",
			"urn", urn, "err", err.Error())
	}

	return nil
}

func (s *Service) GetAssetByID(ctx context.Context, id string) (ast Asset, err error) {
	defer func() {
		s.instrumentAssetOp(ctx, "GetAssetByID", id, err)
	}()

	if isValidUUID(id) {
		ast, err = s.assetRepository.GetByID(ctx, id)
		if err != nil {
			return Asset{}, fmt.Errorf("get asset by id: %w", err)
		}
		return ast, nil
	}

	ast, err = s.assetRepository.GetByURN(ctx, id)
	if err != nil {
		return Asset{}, fmt.Errorf("get asset by urn: %w", err)
	}
	return ast, nil
}

func (s *Service) GetAssetByVersion(ctx context.Context, id, version string) (ast Asset, err error) {
	defer func() {
		s.instrumentAssetOp(ctx, "GetAssetByVersion", id, err)
	}()

	if isValidUUID(id) {
		return s.assetRepository.GetByVersionWithID(ctx, id, version)
	}

	return s.assetRepository.GetByVersionWithURN(ctx, id, version)
}

func (s *Service) GetAssetVersionHistory(ctx context.Context, flt Filter, id string) ([]Asset, error) {
	return s.assetRepository.GetVersionHistory(ctx, flt, id)
}

func (s *Service) SearchAssets(ctx context.Context, cfg SearchConfig) (results []SearchResult, err error) {
	return s.discoveryRepository.Search(ctx, cfg)
}

func (s *Service) SuggestAssets(ctx context.Context, cfg SearchConfig) (suggestions []string, err error) {
	return s.discoveryRepository.Suggest(ctx, cfg)
}

func (s *Service) instrumentAssetOp(ctx context.Context, op, id string, err error) {
	identifier := "URN"
	if isValidUUID(id) {
		identifier = "ID"
	}

	s.assetOpCounter.Add(ctx, 1, metric.WithAttributes(
		attribute.String("meridian.asset_operation", op),
		attribute.String("asset.identifier", identifier),
		attribute.Bool("operation.success", err == nil),
	))
}

func isValidUUID(u string) bool {
	_, err := uuid.Parse(u)
	return err == nil
}
