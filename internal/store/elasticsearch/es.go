package elasticsearch

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/elastic/go-elasticsearch/v7"
	"github.com/elastic/go-elasticsearch/v7/esapi"
	"github.com/goto/salt/log"
	nrelasticsearch "github.com/newrelic/go-agent/v3/integrations/nrelasticsearch-v7"
	"github.com/olivere/elastic/v7"
	"github.com/raystack/meridian/core/asset"
)

const (
	// alias shared by every per-service index; searches go through it so
	// results span all services.
	defaultSearchIndex = "universe"
)

type Config struct {
	Brokers string `mapstructure:"brokers" default:"http://localhost:9200"`
}

type searchHit struct {
	Index  string      `json:"_index"`
	Source asset.Asset `json:"_source"`
}

type searchResponse struct {
	ScrollID string `json:"_scroll_id"`
	Hits     struct {
		Total elastic.TotalHits `json:"total"`
		Hits  []searchHit       `json:"hits"`
	} `json:"hits"`
	Suggest map[string][]struct {
		Text    string                           `json:"text"`
		Offset  int                              `json:"offset"`
		Length  float32                          `json:"length"`
		Options []elastic.SearchSuggestionOption `json:"options"`
	} `json:"suggest"`
}

// extract error reason from an elasticsearch response
// returns the raw message in case it fails
func errorReasonFromResponse(res *esapi.Response) string {
	var (
		response struct {
			Error struct {
				Reason string `json:"reason"`
			} `json:"error"`
		}
		cp bytes.Buffer
	)
	reader := io.TeeReader(res.Body, &cp)
	if err := json.NewDecoder(reader).Decode(&response); err != nil {
		return fmt.Sprintf("raw response = %s", cp.String())
	}
	return response.Error.Reason
}

// errorCodeAndReason pulls the structured error type and reason out of an
// elasticsearch error response.
func errorCodeAndReason(res *esapi.Response) (code, reason string) {
	var (
		response struct {
			Error struct {
				Type   string `json:"type"`
				Reason string `json:"reason"`
			} `json:"error"`
		}
		cp bytes.Buffer
	)
	reader := io.TeeReader(res.Body, &cp)
	if err := json.NewDecoder(reader).Decode(&response); err != nil {
		return "", fmt.Sprintf("raw response = %s", cp.String())
	}
	return response.Error.Type, response.Error.Reason
}

// helper for decorating unsuccesful invocations of the es REST API
// (transport errors)
func elasticSearchError(err error) error {
	return fmt.Errorf("elasticsearch error: %w", err)
}

type Client struct {
	client *elasticsearch.Client
	logger log.Logger
}

func NewClient(logger log.Logger, config Config, opts ...ClientOption) (*Client, error) {
	c := &Client{
		logger: logger,
	}

	for _, opt := range opts {
		opt(c)
	}

	if c.client != nil {
		return c, nil
	}

	brokers := strings.Split(config.Brokers, ",")
	esClient, err := elasticsearch.NewClient(elasticsearch.Config{
		Addresses: brokers,
		Transport: nrelasticsearch.NewRoundTripper(nil),
	})
	if err != nil {
		return nil, err
	}
	c.client = esClient

	return c, nil
}

func (c *Client) Init() (string, error) {
	res, err := c.client.Info()
	if err != nil {
		return "", err
	}
	defer res.Body.Close()
	if res.IsError() {
		return "", errors.New(res.Status())
	}
	var info = struct {
		ClusterName string `json:"cluster_name"`
		Version     struct {
			Number string `json:"number"`
		} `json:"version"`
	}{}

	if err := json.NewDecoder(res.Body).Decode(&info); err != nil {
		return "", err
	}

	return fmt.Sprintf("%q (server version %s)", info.ClusterName, info.Version.Number), nil
}

// Migrate creates or updates the index backing the given service.
func (c *Client) Migrate(ctx context.Context, service string) error {
	idxExists, err := c.indexExists(ctx, service)
	if err != nil {
		return fmt.Errorf("error checking index existence: %w", err)
	}

	if idxExists {
		c.logger.Info("index already exists, updating mapping instead", "index", service)
		if err := c.updateIdx(ctx, service); err != nil {
			return fmt.Errorf("error updating index: %w", err)
		}
		return nil
	}

	if err := c.createIdx(ctx, service); err != nil {
		return fmt.Errorf("error creating index: %w", err)
	}
	return nil
}

func (c *Client) createIdx(ctx context.Context, service string) error {
	indexSettings := buildServiceIndexSettings()
	res, err := c.client.Indices.Create(
		service,
		c.client.Indices.Create.WithBody(strings.NewReader(indexSettings)),
		c.client.Indices.Create.WithContext(ctx),
	)
	if err != nil {
		return elasticSearchError(err)
	}
	defer res.Body.Close()
	if res.IsError() {
		return fmt.Errorf("error creating index %q: %s", service, errorReasonFromResponse(res))
	}
	return nil
}

func (c *Client) updateIdx(ctx context.Context, service string) error {
	res, err := c.client.Indices.PutMapping(
		strings.NewReader(serviceIndexMapping),
		c.client.Indices.PutMapping.WithIndex(service),
		c.client.Indices.PutMapping.WithContext(ctx),
	)
	if err != nil {
		return elasticSearchError(err)
	}
	defer res.Body.Close()
	if res.IsError() {
		return fmt.Errorf("error updating index %q: %s", service, errorReasonFromResponse(res))
	}
	return nil
}

func buildServiceIndexSettings() string {
	return fmt.Sprintf(indexSettingsTemplate, serviceIndexMapping, defaultSearchIndex)
}

// checks for the existence of an index
func (c *Client) indexExists(ctx context.Context, name string) (bool, error) {
	res, err := c.client.Indices.Exists(
		[]string{name},
		c.client.Indices.Exists.WithContext(ctx),
	)
	if err != nil {
		return false, fmt.Errorf("indexExists: %w", elasticSearchError(err))
	}
	defer res.Body.Close()
	return res.StatusCode == 200, nil
}
