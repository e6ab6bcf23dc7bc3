package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/MakeNowJust/heredoc"
	"github.com/goto/salt/log"
	"github.com/raystack/meridian/core/asset"
	"github.com/raystack/meridian/core/discussion"
	"github.com/raystack/meridian/core/star"
	"github.com/raystack/meridian/core/user"
	meridianserver "github.com/raystack/meridian/internal/server"
	esStore "github.com/raystack/meridian/internal/store/elasticsearch"
	"github.com/raystack/meridian/internal/store/postgres"
	"github.com/raystack/meridian/internal/workermanager"
	"github.com/raystack/meridian/pkg/statsd"
	"github.com/raystack/meridian/pkg/telemetry"
	"github.com/spf13/cobra"
)

// Version of the current build. overridden by the build system.
// see "Makefile" for more information
var Version string

func serverCmd(cfg *Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "server <command>",
		Aliases: []string{"s"},
		Short:   "Run meridian server",
		Long:    "Server management commands.",
		Example: heredoc.Doc(`
			$ meridian server start
			$ meridian server start -c ./config.yaml
			$ meridian server migrate
			$ meridian server migrate -c ./config.yaml
		`),
	}

	cmd.AddCommand(
		serverStartCommand(cfg),
		serverMigrateCommand(cfg),
	)

	return cmd
}

func serverStartCommand(cfg *Config) *cobra.Command {
	c := &cobra.Command{
		Use:     "start",
		Short:   "Start server on default port 8080",
		Example: "meridian server start",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := runServer(cmd.Context(), cfg); err != nil {
				return fmt.Errorf("run server: %w", err)
			}
			return nil
		},
	}

	return c
}

func serverMigrateCommand(cfg *Config) *cobra.Command {
	c := &cobra.Command{
		Use:   "migrate",
		Short: "Run storage migration",
		Example: heredoc.Doc(`
			$ meridian server migrate
		`),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMigrations(cmd.Context(), cfg)
		},
	}

	return c
}

func runServer(ctx context.Context, cfg *Config) error {
	logger := initLogger(cfg.LogLevel)
	logger.Info("meridian starting", "version", Version)

	nrApp, cleanUp, err := telemetry.Init(ctx, cfg.Telemetry, logger)
	if err != nil {
		return err
	}
	defer cleanUp()

	statsdReporter, err := statsd.Init(logger, cfg.StatsD)
	if err != nil {
		return err
	}

	esClient, err := initElasticsearch(logger, cfg.Elasticsearch)
	if err != nil {
		return err
	}

	pgClient, err := initPostgres(logger, cfg)
	if err != nil {
		return err
	}

	// init user
	userRepository, err := postgres.NewUserRepository(pgClient)
	if err != nil {
		return fmt.Errorf("create new user repository: %w", err)
	}
	userService := user.NewService(logger, userRepository)

	assetRepository, err := postgres.NewAssetRepository(pgClient, userRepository, 0, cfg.Service.Identity.ProviderDefaultName)
	if err != nil {
		return fmt.Errorf("create new asset repository: %w", err)
	}
	discoveryRepository := esStore.NewDiscoveryRepository(esClient, logger)

	wrkr, err := initAssetWorker(ctx, workermanager.Deps{
		Config:        cfg.Worker,
		DiscoveryRepo: discoveryRepository,
		Logger:        logger,
	})
	if err != nil {
		return err
	}

	defer func() {
		if err := wrkr.Close(); err != nil {
			logger.Error("Close worker", "err", err)
		}
	}()

	assetService := asset.NewService(asset.ServiceDeps{
		AssetRepo:     assetRepository,
		DiscoveryRepo: discoveryRepository,
		Worker:        wrkr,
		Logger:        logger,
	})

	// init discussion
	discussionRepository, err := postgres.NewDiscussionRepository(pgClient, 0)
	if err != nil {
		return fmt.Errorf("create new discussion repository: %w", err)
	}
	discussionService := discussion.NewService(discussionRepository)

	// init star
	starRepository, err := postgres.NewStarRepository(pgClient)
	if err != nil {
		return fmt.Errorf("create new star repository: %w", err)
	}
	starService := star.NewService(starRepository)

	if cfg.Worker.Reconciler.Enabled {
		reconciler := workermanager.NewReconciler(
			cfg.Worker.Reconciler,
			assetRepository,
			discoveryRepository,
			wrkr,
			logger,
		)
		go func() {
			if err := reconciler.Run(ctx); err != nil {
				logger.Error("reconciler stopped", "err", err)
			}
		}()
	}

	return meridianserver.Serve(
		ctx,
		cfg.Service,
		logger,
		nrApp,
		statsdReporter,
		userService,
		assetService,
		assetService,
		starService,
		discussionService,
	)
}

func initLogger(logLevel string) *log.Logrus {
	logger := log.NewLogrus(
		log.LogrusWithLevel(logLevel),
		log.LogrusWithWriter(os.Stdout),
	)
	return logger
}

func initElasticsearch(logger log.Logger, config esStore.Config) (*esStore.Client, error) {
	esClient, err := esStore.NewClient(logger, config)
	if err != nil {
		return nil, fmt.Errorf("create new elasticsearch client: %w", err)
	}
	got, err := esClient.Init()
	if err != nil {
		return nil, fmt.Errorf("establish connection to elasticsearch: %w", err)
	}
	logger.Info("connected to elasticsearch", "info", got)
	return esClient, nil
}

func initPostgres(logger log.Logger, cfg *Config) (*postgres.Client, error) {
	pgClient, err := postgres.NewClient(cfg.DB)
	if err != nil {
		return nil, fmt.Errorf("error creating postgres client: %w", err)
	}
	logger.Info("connected to postgres server", "host", cfg.DB.Host, "port", cfg.DB.Port)

	return pgClient, nil
}

func initAssetWorker(ctx context.Context, deps workermanager.Deps) (asset.Worker, error) {
	if !deps.Config.Enabled {
		return workermanager.NewInSituWorker(deps), nil
	}

	mgr, err := workermanager.New(ctx, deps)
	if err != nil {
		return nil, err
	}

	return mgr, nil
}

func runMigrations(ctx context.Context, cfg *Config) error {
	logger := initLogger(cfg.LogLevel)
	logger.Info("meridian is migrating", "version", Version)

	logger.Info("Migrating Postgres...")
	if err := migratePostgres(logger, cfg); err != nil {
		return err
	}
	logger.Info("Migration Postgres done.")

	return nil
}

func migratePostgres(logger log.Logger, cfg *Config) error {
	logger.Info("Initiating Postgres client...")

	pgClient, err := postgres.NewClient(cfg.DB)
	if err != nil {
		logger.Error("failed to prepare migration", "error", err)
		return err
	}

	ver, err := pgClient.Migrate(cfg.DB)
	if err != nil {
		return fmt.Errorf("problem with migration %w", err)
	}
	logger.Info("migrated postgres schema", "version", ver)

	return nil
}
