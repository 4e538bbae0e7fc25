// Package batch cleans large URL lists in batches, optionally
// concurrently. Every URL is cleaned independently with
// urlclean.CleanString, so batches can run in parallel without
// coordination beyond collecting stats.
package batch

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/aleister1102/urlclean"
)

// Config holds configuration for batch cleaning.
type Config struct {
	BatchSize          int // Max URLs per batch (default: 1000)
	MaxConcurrentBatch int // Max concurrent batches (default: 1 for sequential processing)
	ThresholdSize      int // Minimum input size to split into batches (default: 5000)
}

// DefaultConfig returns default batch cleaning configuration.
func DefaultConfig() Config {
	return Config{
		BatchSize:          1000,
		MaxConcurrentBatch: 1,
		ThresholdSize:      5000,
	}
}

// Cleaner cleans URL lists in batches.
type Cleaner struct {
	config Config
	logger zerolog.Logger
}

// NewCleaner creates a batch cleaner.
func NewCleaner(config Config, logger zerolog.Logger) *Cleaner {
	defaults := DefaultConfig()
	if config.BatchSize <= 0 {
		config.BatchSize = defaults.BatchSize
	}
	if config.MaxConcurrentBatch <= 0 {
		config.MaxConcurrentBatch = defaults.MaxConcurrentBatch
	}
	return &Cleaner{
		config: config,
		logger: logger.With().Str("component", "BatchCleaner").Logger(),
	}
}

// CleanURLs cleans every URL in the input with the given removal set and
// returns the cleaned URLs in input order together with aggregate stats.
// The input slice is not modified. Processing stops early when the
// context is cancelled; the returned error is then ctx.Err() and the
// output holds the input with only the completed batches cleaned.
func (c *Cleaner) CleanURLs(ctx context.Context, urls []string, removing map[string]bool) ([]string, Stats, error) {
	tracker := newStatsTracker(c.logger)
	output := make([]string, len(urls))
	copy(output, urls)

	batches := c.splitIntoBatches(len(urls))
	c.logger.Info().
		Int("total_urls", len(urls)).
		Int("batch_count", len(batches)).
		Int("removal_set_size", len(removing)).
		Msg("Starting batch cleaning")

	var err error
	if c.config.MaxConcurrentBatch > 1 && len(batches) > 1 {
		err = c.processConcurrently(ctx, batches, output, removing, tracker)
	} else {
		err = c.processSequentially(ctx, batches, output, removing, tracker)
	}

	tracker.logResults()
	return output, tracker.snapshot(), err
}

// CleanAllURLs cleans every URL against the full tracking database.
func (c *Cleaner) CleanAllURLs(ctx context.Context, urls []string) ([]string, Stats, error) {
	return c.CleanURLs(ctx, urls, urlclean.AllParameters())
}

// span is a batch expressed as an index range into the output slice, so
// batch workers write to disjoint regions without locking.
type span struct {
	start, end int
}

func (c *Cleaner) splitIntoBatches(total int) []span {
	if total == 0 {
		return nil
	}
	if total <= c.config.ThresholdSize {
		return []span{{0, total}}
	}

	var batches []span
	for i := 0; i < total; i += c.config.BatchSize {
		end := i + c.config.BatchSize
		if end > total {
			end = total
		}
		batches = append(batches, span{i, end})
	}
	return batches
}

// cleanSpan cleans output[s.start:s.end] in place and reports how many
// entries changed.
func cleanSpan(output []string, s span, removing map[string]bool) (changed int) {
	for i := s.start; i < s.end; i++ {
		cleaned := urlclean.CleanString(output[i], removing)
		if cleaned != output[i] {
			output[i] = cleaned
			changed++
		}
	}
	return changed
}

func (c *Cleaner) processSequentially(
	ctx context.Context,
	batches []span,
	output []string,
	removing map[string]bool,
	tracker *statsTracker,
) error {
	for i, batch := range batches {
		select {
		case <-ctx.Done():
			c.logger.Info().
				Int("completed_batches", i).
				Int("total_batches", len(batches)).
				Msg("Batch cleaning interrupted by context cancellation")
			return ctx.Err()
		default:
		}

		start := time.Now()
		changed := cleanSpan(output, batch, removing)
		tracker.addBatch(batch.end-batch.start, changed)

		c.logger.Debug().
			Int("batch_index", i).
			Int("batch_size", batch.end-batch.start).
			Int("changed", changed).
			Dur("duration", time.Since(start)).
			Msg("Processed batch")
	}
	return nil
}

func (c *Cleaner) processConcurrently(
	ctx context.Context,
	batches []span,
	output []string,
	removing map[string]bool,
	tracker *statsTracker,
) error {
	semaphore := make(chan struct{}, c.config.MaxConcurrentBatch)
	var wg sync.WaitGroup

	for i, batch := range batches {
		select {
		case <-ctx.Done():
			wg.Wait()
			c.logger.Info().
				Int("started_batches", i).
				Int("total_batches", len(batches)).
				Msg("Batch cleaning interrupted by context cancellation")
			return ctx.Err()
		case semaphore <- struct{}{}:
		}

		wg.Add(1)
		go func(batchIndex int, s span) {
			defer wg.Done()
			defer func() { <-semaphore }()

			start := time.Now()
			changed := cleanSpan(output, s, removing)
			tracker.addBatch(s.end-s.start, changed)

			c.logger.Debug().
				Int("batch_index", batchIndex).
				Int("batch_size", s.end-s.start).
				Int("changed", changed).
				Dur("duration", time.Since(start)).
				Msg("Processed batch concurrently")
		}(i, batch)
	}

	wg.Wait()
	return nil
}
