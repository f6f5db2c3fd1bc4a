package smoketest

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"github.com/sangsom/minime/pkg/logger"
)

// HTTPClient wraps http.Client with a timeout and JSON helpers.
type HTTPClient struct {
	client *http.Client
}

func newHTTPClient(timeout time.Duration) *HTTPClient {
	return &HTTPClient{
		client: &http.Client{Timeout: timeout},
	}
}

// Get performs a GET request.
func (c *HTTPClient) Get(ctx context.Context, url string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	return c.client.Do(req)
}

// Post performs a POST request with a JSON body.
func (c *HTTPClient) Post(ctx context.Context, url string, body interface{}) (*http.Response, error) {
	data, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	return c.client.Do(req)
}

// getJSON fetches url and decodes the response into v.
func (c *HTTPClient) getJSON(ctx context.Context, url string, v interface{}) error {
	resp, err := c.Get(ctx, url)
	if err != nil {
		return err
	}
	defer closeBody(resp)

	if resp.StatusCode != StatusOK {
		return fmt.Errorf("unexpected status %d from %s", resp.StatusCode, url)
	}
	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return fmt.Errorf("failed to decode response from %s: %w", url, err)
	}
	return nil
}

func closeBody(resp *http.Response) {
	_, _ = io.Copy(io.Discard, resp.Body)
	_ = resp.Body.Close()
}

// submitEvents pushes every script through the /events endpoint using a
// bounded worker group. A worker owns a whole script and submits its events
// in order, so each profile's stream reaches the service sequentially while
// different profiles proceed in parallel.
func submitEvents(ctx context.Context, config *Config, scripts []ProfileScript, stats *Stats) error {
	client := newHTTPClient(config.Timeout)
	url := config.BaseURL + "/events"

	var submitted, successful, duplicate, failed int64

	scriptChan := make(chan ProfileScript, config.Workers*2)
	var wg sync.WaitGroup

	for i := 0; i < config.Workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for script := range scriptChan {
				for _, payload := range script.Events {
					select {
					case <-ctx.Done():
						return
					default:
					}

					atomic.AddInt64(&submitted, 1)
					switch submitSingleEvent(ctx, client, url, payload) {
					case "success":
						atomic.AddInt64(&successful, 1)
					case "duplicate":
						atomic.AddInt64(&duplicate, 1)
					default:
						atomic.AddInt64(&failed, 1)
					}
				}
			}
		}()
	}

	go func() {
		defer close(scriptChan)
		for _, script := range scripts {
			select {
			case <-ctx.Done():
				return
			case scriptChan <- script:
			}
		}
	}()

	reportTicker := time.NewTicker(ProgressInterval)
	defer reportTicker.Stop()
	doneCh := make(chan struct{})
	go func() {
		wg.Wait()
		close(doneCh)
	}()

	for {
		select {
		case <-reportTicker.C:
			if config.Verbose {
				logger.Get().Info(ctx, "submission progress",
					logger.Int64("submitted", atomic.LoadInt64(&submitted)),
					logger.Int64("successful", atomic.LoadInt64(&successful)),
					logger.Int64("duplicate", atomic.LoadInt64(&duplicate)),
					logger.Int64("failed", atomic.LoadInt64(&failed)),
				)
			}
		case <-doneCh:
			stats.EventsSubmitted = int(atomic.LoadInt64(&submitted))
			stats.EventsSuccessful = int(atomic.LoadInt64(&successful))
			stats.EventsDuplicate = int(atomic.LoadInt64(&duplicate))
			stats.EventsFailed = int(atomic.LoadInt64(&failed))

			if stats.EventsFailed > 0 {
				return fmt.Errorf("%d of %d events failed to submit", stats.EventsFailed, stats.EventsSubmitted)
			}
			return nil
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

// submitSingleEvent submits one event and classifies the outcome.
func submitSingleEvent(ctx context.Context, client *HTTPClient, url string, payload EventPayload) string {
	resp, err := client.Post(ctx, url, payload)
	if err != nil {
		return "failed"
	}
	defer closeBody(resp)

	switch resp.StatusCode {
	case StatusAccepted:
		return "success"
	case StatusOK:
		var ack AckResponse
		if err := json.NewDecoder(resp.Body).Decode(&ack); err == nil && ack.Duplicate {
			return "duplicate"
		}
		return "duplicate"
	default:
		return "failed"
	}
}

// fetchStatus retrieves the derived status for one profile.
func fetchStatus(ctx context.Context, client *HTTPClient, baseURL, profileID string) (Status, error) {
	var st Status
	err := client.getJSON(ctx, baseURL+"/status/"+profileID, &st)
	return st, err
}

// fetchBoard retrieves the experience board.
func fetchBoard(ctx context.Context, client *HTTPClient, baseURL string, limit int) ([]BoardEntry, error) {
	var entries []BoardEntry
	err := client.getJSON(ctx, fmt.Sprintf("%s/board?limit=%d", baseURL, limit), &entries)
	return entries, err
}
