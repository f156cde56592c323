package espn

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/kvckarthik/sportsData/internal/domain"
	"github.com/kvckarthik/sportsData/internal/logging"
	"github.com/kvckarthik/sportsData/internal/providers"
)

// Config controls how the ESPN client reaches the scoreboard endpoint.
type Config struct {
	BaseURL    string
	Limit      int
	HTTPClient *http.Client
	Logger     *slog.Logger
}

// Client fetches the NFL weekly scoreboard from the ESPN site API and
// decodes it into domain models. One GET per fetch, no retries, no
// pagination: the limit is sized so a full week fits in a single page.
type Client struct {
	baseURL    string
	limit      int
	httpClient httpDoer
	logger     *slog.Logger
}

// NewClient constructs an ESPN scoreboard client with the provided configuration.
func NewClient(cfg Config) *Client {
	return &Client{
		baseURL:    normalizeBaseURL(cfg.BaseURL),
		limit:      resolveLimit(cfg.Limit),
		httpClient: resolveHTTPClient(cfg.HTTPClient),
		logger:     cfg.Logger,
	}
}

// FetchScoreboard retrieves one week's scoreboard. Transport errors,
// timeouts, and non-200 statuses are all reported as *providers.FetchError.
func (c *Client) FetchScoreboard(ctx context.Context, q providers.Query) (domain.Document, error) {
	req, err := c.buildRequest(ctx, q)
	if err != nil {
		return domain.Document{}, &providers.FetchError{Provider: providerName, Err: err}
	}

	logging.Info(c.logger, "fetching scoreboard",
		slog.String(logging.FieldProvider, providerName),
		slog.String(logging.FieldURL, req.URL.String()),
		slog.Int(logging.FieldSeason, q.Year),
		slog.Int(logging.FieldWeek, q.Week),
	)

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return domain.Document{}, &providers.FetchError{Provider: providerName, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrExcerpt))
		return domain.Document{}, &providers.FetchError{
			Provider:   providerName,
			StatusCode: resp.StatusCode,
			Err:        fmt.Errorf("unexpected status: %s", strings.TrimSpace(string(body))),
		}
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return domain.Document{}, &providers.FetchError{Provider: providerName, Err: err}
	}

	var sb domain.Scoreboard
	if err := json.Unmarshal(raw, &sb); err != nil {
		return domain.Document{}, &providers.FetchError{Provider: providerName, Err: err}
	}

	logging.Info(c.logger, "scoreboard fetched",
		slog.String(logging.FieldProvider, providerName),
		slog.Int(logging.FieldCount, len(sb.Events)),
		slog.Int64(logging.FieldDurationMS, time.Since(start).Milliseconds()),
	)

	return domain.Document{Scoreboard: sb, Raw: raw}, nil
}

func (c *Client) buildRequest(ctx context.Context, q providers.Query) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL, nil)
	if err != nil {
		return nil, err
	}

	// The endpoint keys its response on week and season type alone; the
	// year is carried for logging but never sent.
	params := req.URL.Query()
	params.Set("limit", strconv.Itoa(c.limit))
	if q.Week > 0 {
		params.Set("week", strconv.Itoa(q.Week))
		params.Set("seasontype", seasonTypeRegular)
	}
	req.URL.RawQuery = params.Encode()

	return req, nil
}
