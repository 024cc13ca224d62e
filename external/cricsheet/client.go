package cricsheet

import (
	"context"
	"fmt"
	"strings"
	"time"

	crerr "github.com/cockroachdb/errors"
	"github.com/valyala/fasthttp"

	"github.com/ovalline/cricketstats/internal/domain/match"
	"github.com/ovalline/cricketstats/internal/platform/logging"
	"github.com/ovalline/cricketstats/internal/platform/resilience"
)

const defaultBaseURL = "https://cricsheet.org/downloads"

var errTransient = crerr.New("cricsheet transient failure")

type ClientConfig struct {
	BaseURL        string
	Timeout        time.Duration
	MaxRetries     int
	Logger         *logging.Logger
	CircuitBreaker resilience.CircuitBreakerConfig
}

// Client pulls raw match documents from the cricsheet archive.
type Client struct {
	http           *fasthttp.Client
	baseURL        string
	timeout        time.Duration
	maxRetries     int
	logger         *logging.Logger
	breaker        *resilience.CircuitBreaker
	circuitEnabled bool
	flight         resilience.SingleFlight
}

func NewClient(cfg ClientConfig) *Client {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}

	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 20 * time.Second
	}
	breakerCfg := resilience.NormalizeCircuitBreakerConfig(cfg.CircuitBreaker)

	return &Client{
		http:           &fasthttp.Client{ReadTimeout: timeout, WriteTimeout: timeout},
		baseURL:        baseURL,
		timeout:        timeout,
		maxRetries:     max(cfg.MaxRetries, 0),
		logger:         logger,
		breaker:        resilience.NewCircuitBreaker(breakerCfg),
		circuitEnabled: breakerCfg.Enabled,
	}
}

// FetchMatch downloads one match document and decodes it. Concurrent fetches
// of the same match collapse into one request.
func (c *Client) FetchMatch(ctx context.Context, matchID string) (*match.Record, error) {
	if strings.TrimSpace(matchID) == "" {
		return nil, crerr.New("match id is required")
	}

	url := fmt.Sprintf("%s/%s.json", c.baseURL, matchID)
	out, err, _ := c.flight.Do(url, func() (any, error) {
		return c.fetch(ctx, url)
	})
	if err != nil {
		return nil, err
	}

	raw, ok := out.([]byte)
	if !ok {
		return nil, crerr.Newf("unexpected payload type %T", out)
	}

	return Decode(matchID, raw)
}

func (c *Client) fetch(ctx context.Context, url string) ([]byte, error) {
	if c.circuitEnabled {
		if err := c.breaker.Allow(); err != nil {
			c.logger.WarnContext(ctx, "archive circuit breaker rejected request", "state", c.breaker.State())
			return nil, err
		}
	}

	raw, err := c.execute(ctx, url)
	if c.circuitEnabled {
		if err != nil && crerr.Is(err, errTransient) {
			c.breaker.RecordFailure()
		} else {
			c.breaker.RecordSuccess()
		}
	}
	return raw, err
}

func (c *Client) execute(ctx context.Context, url string) ([]byte, error) {
	var lastErr error
	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if attempt > 0 {
			c.logger.DebugContext(ctx, "retrying archive fetch", "url", url, "attempt", attempt)
		}

		req := fasthttp.AcquireRequest()
		resp := fasthttp.AcquireResponse()
		req.SetRequestURI(url)
		req.Header.SetMethod(fasthttp.MethodGet)
		req.Header.Set("Accept", "application/json")

		err := c.http.DoTimeout(req, resp, c.timeout)
		status := resp.StatusCode()
		body := append([]byte(nil), resp.Body()...)
		fasthttp.ReleaseRequest(req)
		fasthttp.ReleaseResponse(resp)

		switch {
		case err != nil:
			lastErr = crerr.WithSecondaryError(errTransient, err)
		case status >= 200 && status < 300:
			return body, nil
		case status == fasthttp.StatusTooManyRequests || status >= 500:
			lastErr = crerr.Wrapf(errTransient, "archive status=%d", status)
		default:
			return nil, crerr.Newf("archive status=%d", status)
		}
	}

	return nil, lastErr
}
