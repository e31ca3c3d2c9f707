package scraper

import (
	"fmt"
	"io"
	"math/rand"
	"net/http"
	"time"

	"github.com/encrypter15/Armitage-Market-Mirror/config"
	"github.com/encrypter15/Armitage-Market-Mirror/utils"
)

// PageFetcher returns the raw markup of a page, or an error on network
// failure, timeout or non-2xx status.
type PageFetcher interface {
	Fetch(url string) (string, error)
}

// HTTPFetcher fetches pages over plain HTTP. It rotates the User-Agent per
// request, rate-limits consecutive requests and retries transient failures
// with backoff before giving up.
type HTTPFetcher struct {
	client  *http.Client
	agents  []string
	limiter *utils.RateLimiter
	retry   *utils.RetryConfig
	logger  *utils.Logger
}

// NewHTTPFetcher creates an HTTPFetcher from the run configuration.
func NewHTTPFetcher(cfg *config.Config, logger *utils.Logger) *HTTPFetcher {
	return &HTTPFetcher{
		client: &http.Client{
			Timeout: time.Duration(cfg.FetchTimeoutSec) * time.Second,
		},
		agents:  cfg.UserAgents,
		limiter: utils.NewRateLimiter(cfg.RateLimitMs),
		retry: &utils.RetryConfig{
			MaxAttempts: cfg.MaxRetries,
			BaseDelay:   2 * time.Second,
			Logger:      logger,
		},
		logger: logger,
	}
}

// Fetch downloads the page at url and returns its body.
func (f *HTTPFetcher) Fetch(url string) (string, error) {
	var body string

	err := f.retry.Do("fetch "+url, func() error {
		f.limiter.Wait()

		req, err := http.NewRequest(http.MethodGet, url, nil)
		if err != nil {
			return fmt.Errorf("build request: %w", err)
		}
		if len(f.agents) > 0 {
			req.Header.Set("User-Agent", f.agents[rand.Intn(len(f.agents))])
		}

		resp, err := f.client.Do(req)
		if err != nil {
			return err
		}
		defer resp.Body.Close()

		if resp.StatusCode < 200 || resp.StatusCode > 299 {
			return fmt.Errorf("unexpected status %s", resp.Status)
		}

		b, err := io.ReadAll(resp.Body)
		if err != nil {
			return fmt.Errorf("read body: %w", err)
		}
		body = string(b)
		return nil
	})

	return body, err
}
