package elasticsearch

import "github.com/elastic/go-elasticsearch/v7"

type ClientOption func(*Client)

// WithClient replaces the transport built from Config, mainly for tests.
func WithClient(cli *elasticsearch.Client) ClientOption {
	return func(c *Client) {
		c.client = cli
	}
}
