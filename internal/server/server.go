package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/goto/salt/log"
	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/raystack/meridian/core/user"
	"github.com/raystack/meridian/internal/server/httpapi"
	"github.com/raystack/meridian/internal/server/httpapi/handlers"
	"github.com/raystack/meridian/internal/server/httpapi/middleware"
	"github.com/raystack/meridian/pkg/statsd"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

type Config struct {
	Host    string `mapstructure:"host" default:"0.0.0.0"`
	Port    int    `mapstructure:"port" default:"8080"`
	BaseUrl string `mapstructure:"baseurl" default:"localhost:8080"`

	// User Identity
	Identity IdentityConfig `mapstructure:"identity"`

	ShutdownGracePeriod time.Duration `mapstructure:"shutdown_grace_period" default:"10s"`
}

func (cfg Config) addr() string { return fmt.Sprintf("%s:%d", cfg.Host, cfg.Port) }

type IdentityConfig struct {
	HeaderKeyUserEmail  string `yaml:"headerkey_email" mapstructure:"headerkey_email" default:"Meridian-User-Email"`
	ProviderDefaultName string `yaml:"provider_default_name" mapstructure:"provider_default_name" default:"shield"`
}

// Serve mounts the versioned REST API and blocks until the context is
// cancelled, then drains in-flight requests within the grace period.
func Serve(
	ctx context.Context,
	config Config,
	logger log.Logger,
	nrApp *newrelic.Application,
	statsdReporter *statsd.Reporter,
	userSvc *user.Service,
	assetSvc handlers.AssetService,
	searchSvc handlers.SearchService,
	starSvc handlers.StarService,
	discussionSvc handlers.DiscussionService,
) error {
	handlerCollection := &httpapi.Handler{
		Asset:      handlers.NewAssetHandler(logger, assetSvc, starSvc),
		Search:     handlers.NewSearchHandler(logger, searchSvc),
		User:       handlers.NewUserHandler(logger, starSvc, discussionSvc),
		Discussion: handlers.NewDiscussionHandler(logger, discussionSvc),
	}

	router := mux.NewRouter()
	router.PathPrefix("/ping").Handler(handlers.NewHeartbeatHandler())

	v1beta1 := router.PathPrefix("/v1beta1").Subrouter()
	v1beta1.Use(
		middleware.NewRelic(nrApp),
		middleware.StatsD(statsdReporter),
		middleware.DecodeURL(),
		middleware.ValidateUser(
			config.Identity.HeaderKeyUserEmail,
			config.Identity.ProviderDefaultName,
			userSvc,
		),
	)
	httpapi.RegisterRoutes(v1beta1, handlerCollection)

	srv := &http.Server{
		Addr:    config.addr(),
		Handler: otelhttp.NewHandler(router, "meridian.http"),
	}

	serveErr := make(chan error, 1)
	go func() {
		logger.Info("server started", "addr", config.addr())
		serveErr <- srv.ListenAndServe()
	}()

	select {
	case err := <-serveErr:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("listen and serve: %w", err)
		}
		return nil

	case <-ctx.Done():
		logger.Info("shutting down server", "grace_period", config.ShutdownGracePeriod.String())
		shutdownCtx, cancel := context.WithTimeout(context.Background(), config.ShutdownGracePeriod)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown server: %w", err)
		}
		return nil
	}
}
