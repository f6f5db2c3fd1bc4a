package main

import (
	"context"
	"flag"
	"os"
	"runtime"
	"time"

	"github.com/sangsom/minime/internal/smoketest"
)

// Default configuration constants.
const (
	defaultNumProfiles      = 100
	defaultEventsPerProfile = 50
	defaultBoardTop         = 25
	defaultWorkers          = 2 // multiplier for runtime.NumCPU()
	defaultTimeout          = 30 * time.Second
	defaultTestTimeout      = 10 * time.Minute
)

func main() {
	var (
		baseURL          = flag.String("url", "http://localhost:9080", "Base URL of the service")
		numProfiles      = flag.Int("profiles", defaultNumProfiles, "Number of profiles to simulate")
		eventsPerProfile = flag.Int("events-per-profile", defaultEventsPerProfile, "Events generated per profile")
		boardTop         = flag.Int("top", defaultBoardTop, "Number of board entries to fetch and verify")
		workers          = flag.Int("workers", runtime.NumCPU()*defaultWorkers, "Number of concurrent submitters")
		timeout          = flag.Duration("timeout", defaultTimeout, "HTTP request timeout")
		seed             = flag.Int64("seed", 0, "Random seed for reproducible runs (0 = time-based)")
		logFile          = flag.String("log", "", "Log file for test output (default: smoke_log_TIMESTAMP.log)")
		verbose          = flag.Bool("verbose", false, "Enable verbose logging")
		help             = flag.Bool("help", false, "Show help")
	)
	flag.Parse()

	if *help {
		smoketest.ShowHelp()
		return
	}

	// Setup logging
	if err := smoketest.SetupLogging(*logFile); err != nil {
		os.Stderr.WriteString("Failed to setup logging: " + err.Error() + "\n")
		return
	}

	// Create context with timeout
	ctx, cancel := context.WithTimeout(context.Background(), defaultTestTimeout)
	defer cancel()

	// Create test configuration
	config := &smoketest.Config{
		BaseURL:          *baseURL,
		NumProfiles:      *numProfiles,
		EventsPerProfile: *eventsPerProfile,
		BoardTop:         *boardTop,
		Workers:          *workers,
		Timeout:          *timeout,
		Seed:             *seed,
		LogFile:          *logFile,
		Verbose:          *verbose,
	}

	// Run the test
	if err := smoketest.Run(ctx, config); err != nil {
		os.Stderr.WriteString("Smoke test failed: " + err.Error() + "\n")
		return
	}
}
