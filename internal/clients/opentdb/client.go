// Package opentdb is the client for the Open Trivia Database
package opentdb

//go:generate mockgen -destination=mock/mock_client.go -package=opentdbmock github.com/KirkDiggler/brainmon-api/internal/clients/opentdb Client

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/KirkDiggler/brainmon-api/internal/entities/brainmon"
	"github.com/KirkDiggler/brainmon-api/internal/errors"
)

const (
	// DefaultBaseURL is the public OpenTDB endpoint
	DefaultBaseURL = "https://opentdb.com/"

	// DefaultHTTPTimeout bounds a single lookup
	DefaultHTTPTimeout = 15 * time.Second
)

// Response codes returned in the response_code field
const (
	ResponseSuccess          = 0
	ResponseNoResults        = 1
	ResponseInvalidParameter = 2
	ResponseTokenNotFound    = 3
	ResponseTokenEmpty       = 4
	ResponseRateLimit        = 5
)

// Client fetches trivia questions
type Client interface {
	// GetQuestion fetches a single multiple-choice question.
	// An empty Results slice means the category has nothing at that difficulty.
	GetQuestion(ctx context.Context, input *GetQuestionInput) (*GetQuestionOutput, error)
}

// GetQuestionInput selects the question pool
type GetQuestionInput struct {
	CategoryID int
	Difficulty string
}

// GetQuestionOutput holds the raw, still HTML-escaped results
type GetQuestionOutput struct {
	Results []*Question
}

// Config contains configuration options for the OpenTDB client
type Config struct {
	// BaseURL for OpenTDB (optional, defaults to DefaultBaseURL)
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

// New creates an OpenTDB client
func New(cfg *Config) (Client, error) {
	if cfg == nil {
		cfg = &Config{}
	}

	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if _, err := url.Parse(baseURL); err != nil {
		return nil, errors.InvalidArgumentf("invalid opentdb base url %q: %v", baseURL, err)
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

// GetQuestion calls /api.php?amount=1&type=multiple
func (c *client) GetQuestion(ctx context.Context, input *GetQuestionInput) (*GetQuestionOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	if input.CategoryID <= 0 {
		vb.Field("category_id", "must be positive")
	}
	if input.Difficulty == "" {
		vb.RequiredField("difficulty")
	} else if !brainmon.ValidDifficulty(input.Difficulty) {
		vb.Field("difficulty", "must be easy, medium or hard")
	}
	if err := vb.Build(); err != nil {
		return nil, err
	}

	endpoint, err := url.JoinPath(c.baseURL, "api.php")
	if err != nil {
		return nil, errors.Wrapf(err, "failed to build trivia url")
	}

	query := url.Values{}
	query.Set("amount", "1")
	query.Set("type", "multiple")
	query.Set("category", strconv.Itoa(input.CategoryID))
	query.Set("difficulty", input.Difficulty)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint+"?"+query.Encode(), nil)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to build trivia request")
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "opentdb request failed")
	}
	defer func() {
		_ = resp.Body.Close() // nolint:errcheck // safe to ignore on read path
	}()

	slog.Debug("OpenTDB lookup",
		"category_id", input.CategoryID,
		"difficulty", input.Difficulty,
		"status", resp.StatusCode,
		"duration", time.Since(start),
	)

	if resp.StatusCode != http.StatusOK {
		return nil, errors.Unavailablef("opentdb returned status %d", resp.StatusCode)
	}

	var body response
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, errors.Wrapf(err, "failed to decode trivia response")
	}

	switch body.ResponseCode {
	case ResponseSuccess:
		results := make([]*Question, 0, len(body.Results))
		for _, q := range body.Results {
			if q != nil {
				results = append(results, q)
			}
		}
		return &GetQuestionOutput{Results: results}, nil
	case ResponseNoResults:
		return &GetQuestionOutput{Results: []*Question{}}, nil
	case ResponseInvalidParameter:
		return nil, errors.InvalidArgumentf("opentdb rejected category %d difficulty %s",
			input.CategoryID, input.Difficulty)
	default:
		return nil, errors.Unavailablef("opentdb response code %d", body.ResponseCode).
			WithMeta("response_code", body.ResponseCode)
	}
}
