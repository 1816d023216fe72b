// Package discogs provides a client for the Discogs database API.
package discogs

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"
)

const (
	defaultBaseURL = "https://api.discogs.com"
	userAgent      = "vinyl/0.1 (https://github.com/scrobl/vinyl)"
	rateLimitDur   = time.Second // stay well under Discogs' 60 req/min

	// Retry configuration
	maxRetries   = 3
	initialDelay = 2 * time.Second
	maxDelay     = 30 * time.Second
)

// Client provides access to the Discogs API.
type Client struct {
	httpClient  *http.Client
	baseURL     string
	token       string
	lastRequest time.Time
	mu          sync.Mutex
}

// NewClient creates a new Discogs API client authenticated by a personal
// access token.
func NewClient(token string) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: 30 * time.Second},
		baseURL:    defaultBaseURL,
		token:      token,
	}
}

// GetRelease fetches a release, including its tracklist, by numeric ID.
func (c *Client) GetRelease(id int64) (*Release, error) {
	c.waitForRateLimit()

	reqURL := fmt.Sprintf("%s/releases/%d", c.baseURL, id)

	req, err := http.NewRequest(http.MethodGet, reqURL, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Discogs token="+c.token)
	}

	resp, err := c.doRequestWithRetry(req)
	if err != nil {
		return nil, fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("API status %d: %s", resp.StatusCode, string(body))
	}

	var result releaseResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}

	return convertRelease(result), nil
}

// waitForRateLimit ensures we don't exceed Discogs rate limits.
func (c *Client) waitForRateLimit() {
	c.mu.Lock()
	defer c.mu.Unlock()

	elapsed := time.Since(c.lastRequest)
	if elapsed < rateLimitDur {
		time.Sleep(rateLimitDur - elapsed)
	}
	c.lastRequest = time.Now()
}

// doRequestWithRetry executes an HTTP request with exponential backoff retry.
// Retries on 5xx errors, 429, and network errors.
func (c *Client) doRequestWithRetry(req *http.Request) (*http.Response, error) {
	var lastErr error
	delay := initialDelay

	for attempt := 0; attempt <= maxRetries; attempt++ {
		if attempt > 0 {
			time.Sleep(delay)
			delay = min(delay*2, maxDelay)
			c.waitForRateLimit() // Re-apply rate limit after retry delay
		}

		resp, err := c.httpClient.Do(req)
		if err != nil {
			lastErr = err
			continue
		}

		// Success or non-retriable client error
		if resp.StatusCode < 500 && resp.StatusCode != http.StatusTooManyRequests {
			return resp, nil
		}

		resp.Body.Close()
		lastErr = fmt.Errorf("server returned status %d", resp.StatusCode)
	}

	return nil, fmt.Errorf("request failed after %d retries: %w", maxRetries+1, lastErr)
}

// convertRelease converts the raw API payload to a Release.
func convertRelease(r releaseResponse) *Release {
	release := &Release{
		ID:    r.ID,
		Title: r.Title,
		Year:  r.Year,
	}
	if len(r.Artists) > 0 {
		release.Artist = CleanArtistName(r.Artists[0].Name)
	}
	release.Tracklist = make([]TracklistEntry, 0, len(r.Tracklist))
	for _, t := range r.Tracklist {
		release.Tracklist = append(release.Tracklist, TracklistEntry{
			Position: t.Position,
			Type:     t.Type,
			Title:    t.Title,
			Duration: t.Duration,
		})
	}
	return release
}
