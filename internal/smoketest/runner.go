package smoketest

import (
	"context"
	"fmt"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/sangsom/minime/pkg/logger"
)

// Run executes the complete end-to-end check: generate scripted events,
// submit them, then compare the served state against a local replay.
func Run(ctx context.Context, config *Config) error {
	stats := &Stats{
		StartTime: time.Now(),
	}

	logger.Get().Info(ctx, "starting minime smoke test",
		logger.String("baseURL", config.BaseURL),
		logger.Int("profiles", config.NumProfiles),
		logger.Int("eventsPerProfile", config.EventsPerProfile),
		logger.Int("workers", config.Workers),
		logger.String("timeout", config.Timeout.String()),
		logger.Int("boardTop", config.BoardTop),
		logger.Int64("seed", config.Seed),
		logger.Any("verbose", config.Verbose))

	// Step 1: Check service health
	if err := checkServiceHealth(ctx, config); err != nil {
		return fmt.Errorf("service health check failed: %w", err)
	}

	// Step 2: Generate per-profile event scripts and replay them locally
	scripts, err := generateScripts(ctx, config, stats)
	if err != nil {
		return fmt.Errorf("script generation failed: %w", err)
	}

	// Step 3: Submit events concurrently
	if err := submitEvents(ctx, config, scripts, stats); err != nil {
		return fmt.Errorf("event submission failed: %w", err)
	}

	// Step 4: Wait for the worker pool to drain
	logger.Get().Info(ctx, "waiting for events to be processed")
	time.Sleep(ProcessingWaitDelay)

	// Step 5: Compare each served status against its local replay
	if err := verifyStatuses(ctx, config, scripts, stats); err != nil {
		return fmt.Errorf("status verification failed: %w", err)
	}

	// Step 6: Check the experience board ordering
	if err := verifyBoard(ctx, config, scripts, stats); err != nil {
		return fmt.Errorf("board verification failed: %w", err)
	}

	// Final statistics
	stats.EndTime = time.Now()
	stats.Duration = stats.EndTime.Sub(stats.StartTime)

	displayFinalStats(stats)

	logger.Get().Info(ctx, "smoke test completed successfully")
	return nil
}

// checkServiceHealth verifies the service is running.
func checkServiceHealth(ctx context.Context, config *Config) error {
	logger.Get().Info(ctx, "checking service health")

	client := newHTTPClient(config.Timeout)
	url := config.BaseURL + "/healthz"

	resp, err := client.Get(ctx, url)
	if err != nil {
		return fmt.Errorf("failed to connect to service: %w", err)
	}
	defer closeBody(resp)

	// Any 200 counts as healthy (the endpoint serves Prometheus metrics)
	if resp.StatusCode != StatusOK {
		return fmt.Errorf("service health check failed with status: %d", resp.StatusCode)
	}

	logger.Get().Info(ctx, "service is healthy")
	return nil
}

// displayFinalStats prints the final test statistics.
func displayFinalStats(stats *Stats) {
	var successRate, eventsPerSecond float64

	if stats.EventsSubmitted > 0 {
		successRate = float64(stats.EventsSuccessful) / float64(stats.EventsSubmitted) * PercentageMultiplier
	}

	if stats.Duration > 0 {
		eventsPerSecond = float64(stats.EventsSubmitted) / stats.Duration.Seconds()
	}

	logger.Get().Info(context.Background(), "final statistics",
		logger.String("profilesGenerated", humanize.Comma(int64(stats.ProfilesGenerated))),
		logger.String("eventsGenerated", humanize.Comma(int64(stats.EventsGenerated))),
		logger.String("eventsSubmitted", humanize.Comma(int64(stats.EventsSubmitted))),
		logger.String("eventsSuccessful", humanize.Comma(int64(stats.EventsSuccessful))),
		logger.String("eventsDuplicate", humanize.Comma(int64(stats.EventsDuplicate))),
		logger.String("eventsFailed", humanize.Comma(int64(stats.EventsFailed))),
		logger.Int("statusesChecked", stats.StatusesChecked),
		logger.Int("statusMismatches", stats.StatusMismatches),
		logger.Int("boardEntries", stats.BoardEntries),
		logger.String("duration", stats.Duration.String()),
		logger.String("successRate", fmt.Sprintf("%.1f%%", successRate)),
		logger.String("eventsPerSecond", humanize.CommafWithDigits(eventsPerSecond, 1)))
}
