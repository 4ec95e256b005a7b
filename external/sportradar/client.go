package sportradar

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"regexp"
	"strings"
	"time"

	"github.com/benbjohnson/clock"
	sonic "github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
	"github.com/riskibarqy/nfl-fantasy-pickem/internal/domain/schedule"
	"github.com/riskibarqy/nfl-fantasy-pickem/internal/platform/logging"
	"github.com/riskibarqy/nfl-fantasy-pickem/internal/platform/resilience"
	"github.com/riskibarqy/nfl-fantasy-pickem/internal/usecase"
	"github.com/valyala/bytebufferpool"
)

const (
	defaultBaseURL   = "https://api.sportradar.com/nfl/official/trial/v7/en"
	defaultTimeout   = 20 * time.Second
	maxResponseBytes = 6 << 20
)

var apiKeyParamRegex = regexp.MustCompile(`api_key=[^&\s"']+`)
var errSportradarTransient = crerr.New("sportradar transient failure")

type ClientConfig struct {
	HTTPClient     *http.Client
	BaseURL        string
	APIKey         string
	Timeout        time.Duration
	MaxRetries     int
	Logger         *logging.Logger
	Clock          clock.Clock
	CircuitBreaker resilience.CircuitBreakerConfig
}

// Client talks to the Sportradar NFL API. It is safe for concurrent use.
type Client struct {
	httpClient     *http.Client
	baseURL        string
	apiKey         string
	maxRetries     int
	logger         *logging.Logger
	clock          clock.Clock
	breaker        *resilience.CircuitBreaker
	circuitEnabled bool
	flight         resilience.SingleFlight
}

var _ usecase.NFLDataProvider = (*Client)(nil)

func NewClient(cfg ClientConfig) *Client {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}
	if httpClient.Timeout <= 0 {
		httpClient.Timeout = defaultTimeout
	}

	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	breakerCfg := cfg.CircuitBreaker.WithDefaults()
	clk := cfg.Clock
	if clk == nil {
		clk = clock.New()
	}

	return &Client{
		httpClient:     httpClient,
		baseURL:        baseURL,
		apiKey:         strings.TrimSpace(cfg.APIKey),
		maxRetries:     max(cfg.MaxRetries, 0),
		logger:         logger.With("component", "sportradar_client"),
		clock:          clk,
		breaker:        resilience.NewCircuitBreaker(breakerCfg, clk),
		circuitEnabled: breakerCfg.Enabled,
	}
}

func (c *Client) FetchLeagueHierarchy(ctx context.Context) ([]usecase.ExternalTeam, error) {
	doc, err := c.doJSON(ctx, "/league/hierarchy.json")
	if err != nil {
		return nil, crerr.Wrapf(err, "fetch league hierarchy")
	}
	return parseHierarchy(doc), nil
}

func (c *Client) FetchSeasonSchedule(ctx context.Context, season int, seasonType string) (usecase.ExternalSeasonSchedule, error) {
	if season <= 0 {
		return usecase.ExternalSeasonSchedule{}, fmt.Errorf("%w: season must be greater than zero", usecase.ErrInvalidInput)
	}
	seasonType = schedule.NormalizeSeasonType(seasonType)

	path := fmt.Sprintf("/games/%d/%s/schedule.json", season, url.PathEscape(seasonType))
	doc, err := c.doJSON(ctx, path)
	if err != nil {
		return usecase.ExternalSeasonSchedule{}, crerr.Wrapf(err, "fetch season schedule season=%d type=%s", season, seasonType)
	}
	return parseSeasonSchedule(doc, season, seasonType), nil
}

func (c *Client) FetchWeekSchedule(ctx context.Context, season int, seasonType string, week int) (usecase.ExternalWeek, error) {
	if season <= 0 || week <= 0 {
		return usecase.ExternalWeek{}, fmt.Errorf("%w: season and week must be greater than zero", usecase.ErrInvalidInput)
	}
	seasonType = schedule.NormalizeSeasonType(seasonType)

	path := fmt.Sprintf("/games/%d/%s/%d/schedule.json", season, url.PathEscape(seasonType), week)
	doc, err := c.doJSON(ctx, path)
	if err != nil {
		return usecase.ExternalWeek{}, crerr.Wrapf(err, "fetch week schedule season=%d type=%s week=%d", season, seasonType, week)
	}
	return parseWeekSchedule(doc, week), nil
}

func (c *Client) FetchGameSummary(ctx context.Context, gameID string) (map[string]any, error) {
	gameID, err := requireID(gameID, "game id")
	if err != nil {
		return nil, err
	}
	doc, err := c.doJSON(ctx, "/games/"+url.PathEscape(gameID)+"/summary.json")
	if err != nil {
		return nil, crerr.Wrapf(err, "fetch game summary game=%s", gameID)
	}
	return doc, nil
}

func (c *Client) FetchGameStatistics(ctx context.Context, gameID string) (usecase.ExternalGameStatistics, error) {
	gameID, err := requireID(gameID, "game id")
	if err != nil {
		return usecase.ExternalGameStatistics{}, err
	}
	doc, err := c.doJSON(ctx, "/games/"+url.PathEscape(gameID)+"/statistics.json")
	if err != nil {
		return usecase.ExternalGameStatistics{}, crerr.Wrapf(err, "fetch game statistics game=%s", gameID)
	}
	return parseGameStatistics(doc, gameID), nil
}

func (c *Client) FetchTeamRoster(ctx context.Context, teamID string) (usecase.ExternalRoster, error) {
	teamID, err := requireID(teamID, "team id")
	if err != nil {
		return usecase.ExternalRoster{}, err
	}
	doc, err := c.doJSON(ctx, "/teams/"+url.PathEscape(teamID)+"/full_roster.json")
	if err != nil {
		return usecase.ExternalRoster{}, crerr.Wrapf(err, "fetch team roster team=%s", teamID)
	}
	return parseRoster(doc, teamID), nil
}

func (c *Client) FetchPlayerProfile(ctx context.Context, playerID string) (map[string]any, error) {
	playerID, err := requireID(playerID, "player id")
	if err != nil {
		return nil, err
	}
	doc, err := c.doJSON(ctx, "/players/"+url.PathEscape(playerID)+"/profile.json")
	if err != nil {
		return nil, crerr.Wrapf(err, "fetch player profile player=%s", playerID)
	}
	return doc, nil
}

func (c *Client) doJSON(ctx context.Context, path string) (map[string]any, error) {
	if c.circuitEnabled {
		if err := c.breaker.Allow(); err != nil {
			c.logger.WarnContext(ctx, "sportradar circuit breaker rejected request", "state", c.breaker.State(), "path", path)
			return nil, fmt.Errorf("%w: nfl data provider is temporarily unavailable", usecase.ErrDependencyUnavailable)
		}
	}

	values := url.Values{}
	values.Set("api_key", c.apiKey)
	fullURL := c.baseURL + path + "?" + values.Encode()

	out, err, _ := c.flight.Do(path, func() (any, error) {
		raw, reqErr := c.executeRequest(ctx, fullURL)
		if c.circuitEnabled {
			if reqErr != nil && isSportradarCircuitFailure(reqErr) {
				c.breaker.RecordFailure()
			} else {
				c.breaker.RecordSuccess()
			}
		}
		return raw, reqErr
	})
	if err != nil {
		return nil, err
	}

	raw, ok := out.([]byte)
	if !ok {
		return nil, fmt.Errorf("%w: unexpected response payload type %T", usecase.ErrProviderFailure, out)
	}

	doc := make(map[string]any)
	if err := sonic.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("%w: decode provider payload: %v", usecase.ErrProviderFailure, err)
	}
	return doc, nil
}

func (c *Client) executeRequest(ctx context.Context, fullURL string) ([]byte, error) {
	var lastErr error
	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
		if err != nil {
			return nil, fmt.Errorf("%w: build request: %s", usecase.ErrProviderFailure, sanitizeSensitiveText(err.Error(), c.apiKey))
		}
		req.Header.Set("accept", "application/json")

		resp, err := c.httpClient.Do(req)
		if err != nil {
			lastErr = crerr.Mark(
				fmt.Errorf("%w: send request: %s", usecase.ErrProviderFailure, sanitizeSensitiveText(err.Error(), c.apiKey)),
				errSportradarTransient,
			)
		} else {
			raw, readErr := readBody(resp.Body)
			_ = resp.Body.Close()
			switch {
			case readErr != nil:
				lastErr = crerr.Mark(
					fmt.Errorf("%w: read response body: %v", usecase.ErrProviderFailure, readErr),
					errSportradarTransient,
				)
			case resp.StatusCode >= 200 && resp.StatusCode < 300:
				return raw, nil
			default:
				lastErr = classifyStatus(resp.StatusCode, raw)
				if !isRetryableStatus(resp.StatusCode, raw) {
					c.logger.WarnContext(ctx, "sportradar request rejected", "url", redactAPIURL(fullURL), "status", resp.StatusCode)
					return nil, lastErr
				}
			}
		}

		if attempt == c.maxRetries {
			break
		}
		// lastErr is always a classified transient failure here, so an
		// aborted wait still counts against the breaker.
		backoff := time.Duration(attempt+1) * time.Second
		timer := c.clock.Timer(backoff)
		select {
		case <-ctx.Done():
			timer.Stop()
			c.logger.WarnContext(ctx, "sportradar retry aborted", "url", redactAPIURL(fullURL), "error", lastErr)
			return nil, crerr.Wrapf(lastErr, "retry aborted: %v", ctx.Err())
		case <-timer.C:
		}
	}

	if lastErr == nil {
		lastErr = usecase.ErrProviderFailure
	}
	c.logger.WarnContext(ctx, "sportradar request failed", "url", redactAPIURL(fullURL), "error", lastErr)
	return nil, lastErr
}

func readBody(body io.Reader) ([]byte, error) {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	if _, err := buf.ReadFrom(io.LimitReader(body, maxResponseBytes)); err != nil {
		return nil, err
	}
	out := make([]byte, len(buf.B))
	copy(out, buf.B)
	return out, nil
}

func classifyStatus(code int, body []byte) error {
	switch {
	case code == http.StatusNotFound:
		return fmt.Errorf("%w: provider status=%d body=%s", usecase.ErrProviderNotFound, code, abbreviateBody(body))
	case isRateLimited(code, body):
		return crerr.Mark(
			fmt.Errorf("%w: provider status=%d body=%s", usecase.ErrProviderRateLimited, code, abbreviateBody(body)),
			errSportradarTransient,
		)
	case code >= http.StatusInternalServerError:
		return crerr.Mark(
			fmt.Errorf("%w: provider status=%d body=%s", usecase.ErrProviderFailure, code, abbreviateBody(body)),
			errSportradarTransient,
		)
	default:
		return fmt.Errorf("%w: provider status=%d body=%s", usecase.ErrProviderFailure, code, abbreviateBody(body))
	}
}

// isRateLimited also covers the 403 Sportradar returns once the per-second
// quota of a trial key is exhausted.
func isRateLimited(code int, body []byte) bool {
	if code == http.StatusTooManyRequests {
		return true
	}
	return code == http.StatusForbidden && strings.Contains(strings.ToLower(string(body)), "developer over qps")
}

func isRetryableStatus(code int, body []byte) bool {
	return isRateLimited(code, body) || code >= http.StatusInternalServerError
}

func isSportradarCircuitFailure(err error) bool {
	if err == nil {
		return false
	}
	return crerr.Is(err, errSportradarTransient)
}

func sanitizeSensitiveText(value, apiKey string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return value
	}
	if apiKey != "" {
		value = strings.ReplaceAll(value, apiKey, "REDACTED")
	}
	return apiKeyParamRegex.ReplaceAllString(value, "api_key=REDACTED")
}

func redactAPIURL(rawURL string) string {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return apiKeyParamRegex.ReplaceAllString(rawURL, "api_key=REDACTED")
	}
	query := parsed.Query()
	if query.Has("api_key") {
		query.Set("api_key", "REDACTED")
		parsed.RawQuery = query.Encode()
	}
	return parsed.String()
}

func abbreviateBody(body []byte) string {
	text := strings.TrimSpace(string(body))
	if len(text) <= 240 {
		return text
	}
	return text[:240] + "..."
}

func requireID(raw, name string) (string, error) {
	value := strings.TrimSpace(raw)
	if value == "" {
		return "", fmt.Errorf("%w: %s is required", usecase.ErrInvalidInput, name)
	}
	return value, nil
}
