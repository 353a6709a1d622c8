// Package pokeapi is the client for the PokeAPI creature catalog
package pokeapi

//go:generate mockgen -destination=mock/mock_client.go -package=pokeapimock github.com/KirkDiggler/brainmon-api/internal/clients/pokeapi Client

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/KirkDiggler/brainmon-api/internal/errors"
)

const (
	// DefaultBaseURL is the public PokeAPI v2 endpoint
	DefaultBaseURL = "https://pokeapi.co/api/v2/"

	// DefaultHTTPTimeout bounds a single lookup
	DefaultHTTPTimeout = 15 * time.Second

	// maxErrorBody caps how much of a failed response is kept for logging
	maxErrorBody = 512
)

// Client fetches creature data by species name
type Client interface {
	// GetPokemon fetches a creature by its lowercase species key
	GetPokemon(ctx context.Context, name string) (*Pokemon, error)
}

// Config contains configuration options for the PokeAPI client
type Config struct {
	// BaseURL for PokeAPI (optional, defaults to DefaultBaseURL)
	BaseURL string
	// HTTPTimeout for requests (optional, defaults to DefaultHTTPTimeout)
	HTTPTimeout time.Duration
	// HTTPClient overrides the transport, mostly for tests
	HTTPClient *http.Client
}

type client struct {
	baseURL    string
	httpClient *http.Client
}

// New creates a PokeAPI client
func New(cfg *Config) (Client, error) {
	if cfg == nil {
		cfg = &Config{}
	}

	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if _, err := url.Parse(baseURL); err != nil {
		return nil, errors.InvalidArgumentf("invalid pokeapi base url %q: %v", baseURL, err)
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		timeout := cfg.HTTPTimeout
		if timeout == 0 {
			timeout = DefaultHTTPTimeout
		}
		httpClient = &http.Client{Timeout: timeout}
	}

	return &client{
		baseURL:    baseURL,
		httpClient: httpClient,
	}, nil
}

// GetPokemon fetches /pokemon/{name}
func (c *client) GetPokemon(ctx context.Context, name string) (*Pokemon, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return nil, errors.InvalidArgument("pokemon name is required")
	}

	endpoint, err := url.JoinPath(c.baseURL, "pokemon", name)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to build pokemon url")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to build pokemon request")
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "pokeapi request failed").
			WithMeta("pokemon", name)
	}
	defer func() {
		_ = resp.Body.Close() // nolint:errcheck // safe to ignore on read path
	}()

	slog.Debug("PokeAPI lookup",
		"pokemon", name,
		"status", resp.StatusCode,
		"duration", time.Since(start),
	)

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, errors.NotFoundf("pokemon %s not found", name).WithMeta("pokemon", name)
	case resp.StatusCode != http.StatusOK:
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return nil, errors.Unavailablef("pokeapi returned status %d", resp.StatusCode).
			WithMeta("pokemon", name).
			WithMeta("body", string(body))
	}

	var pokemon Pokemon
	if err := json.NewDecoder(resp.Body).Decode(&pokemon); err != nil {
		return nil, errors.Wrapf(err, "failed to decode pokemon %s", name)
	}

	return &pokemon, nil
}
