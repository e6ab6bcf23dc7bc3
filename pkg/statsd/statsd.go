package statsd

import (
	"time"

	std "github.com/DataDog/datadog-go/v5/statsd"
	"github.com/goto/salt/log"
)

// Reporter publishes metrics to a statsd agent. A disabled or nil reporter
// is safe to call; every metric becomes a no-op.
type Reporter struct {
	client *std.Client
	logger log.Logger
	config Config
}

// Init validates the config and initializes the statsd client.
func Init(logger log.Logger, cfg Config) (*Reporter, error) {
	reporter := &Reporter{}
	if !cfg.Enabled {
		logger.Warn("statsd is disabled")
		return reporter, nil
	}

	client, err := std.New(cfg.Address,
		std.WithNamespace(cfg.Prefix),
		std.WithoutTelemetry())
	if err != nil {
		return nil, err
	}

	reporter.client = client
	reporter.logger = logger
	reporter.config = cfg
	return reporter, nil
}

// Close closes the statsd connection.
func (sd *Reporter) Close() {
	if sd != nil && sd.client != nil {
		sd.client.Close()
	}
}

// Incr returns an increment counter metric.
func (sd *Reporter) Incr(name string) *Metric {
	return &Metric{
		rate:          sd.config.SamplingRate,
		logger:        sd.logger,
		name:          name,
		withInfluxTag: sd.config.WithInfluxTagFormat,
		publishFunc: func(name string, tags []string, rate float64) error {
			if sd == nil || sd.client == nil {
				return nil
			}

			return sd.client.Incr(name, tags, rate)
		},
	}
}

// Timing returns a duration metric.
func (sd *Reporter) Timing(name string, value time.Duration) *Metric {
	return &Metric{
		rate:          sd.config.SamplingRate,
		logger:        sd.logger,
		name:          name,
		withInfluxTag: sd.config.WithInfluxTagFormat,
		publishFunc: func(name string, tags []string, rate float64) error {
			if sd == nil || sd.client == nil {
				return nil
			}

			return sd.client.Timing(name, value, tags, rate)
		},
	}
}
