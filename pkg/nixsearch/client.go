// client.go
package nixsearch

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log"
	"os"

	esv7 "github.com/elastic/go-elasticsearch/v7"
)

// Client queries the search.nixos.org Elasticsearch backend
type Client struct {
	es     *esv7.Client
	logger *log.Logger
}

// NewClient creates a client for the public search.nixos.org backend
func NewClient() (*Client, error) {
	return NewClientWithConfig(Config{})
}

// NewClientWithConfig creates a client with custom endpoint,
// credentials, or logging
func NewClientWithConfig(cfg Config) (*Client, error) {
	if cfg.BackendURL == "" {
		cfg.BackendURL = DefaultBackendURL
	}
	if cfg.Username == "" {
		cfg.Username = defaultUsername
		cfg.Password = defaultPassword
	}

	logger := cfg.Logger
	if logger == nil {
		if cfg.Debug {
			// stdout is reserved for results
			logger = log.New(os.Stderr, "[nixq] ", log.LstdFlags)
		} else {
			logger = log.New(io.Discard, "", 0)
		}
	}

	es, err := esv7.NewClient(esv7.Config{
		Addresses: []string{cfg.BackendURL},
		Username:  cfg.Username,
		Password:  cfg.Password,
		// No preflight Info request; each search is exactly one call
		UseResponseCheckOnly: true,
	})
	if err != nil {
		return nil, fmt.Errorf("creating search client: %w", err)
	}

	return &Client{es: es, logger: logger}, nil
}

// Search performs exactly one search request and returns the ordered
// hits plus the total match count. Transport failures map to
// ErrUnreachable, non-2xx responses to *StatusError.
func (c *Client) Search(ctx context.Context, q Query) (*Result, error) {
	body, err := buildSearchBody(q)
	if err != nil {
		return nil, fmt.Errorf("encoding query: %w", err)
	}

	index := IndexFor(q.Channel)
	c.logger.Printf("searching index %s: %s", index, body)

	res, err := c.es.Search(
		c.es.Search.WithContext(ctx),
		c.es.Search.WithIndex(index),
		c.es.Search.WithBody(bytes.NewReader(body)),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnreachable, err)
	}
	defer res.Body.Close()

	if res.IsError() {
		io.Copy(io.Discard, res.Body)
		return nil, &StatusError{StatusCode: res.StatusCode, Status: res.Status()}
	}

	data, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnreachable, err)
	}

	result, err := parseResult(data)
	if err != nil {
		return nil, err
	}

	c.logger.Printf("got %d of %d hits", len(result.Packages), result.Total)
	return result, nil
}
