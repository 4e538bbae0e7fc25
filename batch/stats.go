package batch

import (
	"sync"

	"github.com/rs/zerolog"
)

// Stats tracks the outcome of a batch cleaning run.
type Stats struct {
	TotalProcessed int `json:"total_processed"`
	Changed        int `json:"changed"`
	Unchanged      int `json:"unchanged"`
}

// statsTracker accumulates Stats from concurrently running batches.
type statsTracker struct {
	stats  Stats
	mutex  sync.Mutex
	logger zerolog.Logger
}

func newStatsTracker(logger zerolog.Logger) *statsTracker {
	return &statsTracker{logger: logger}
}

// addBatch records the outcome of one batch.
func (st *statsTracker) addBatch(processed, changed int) {
	st.mutex.Lock()
	defer st.mutex.Unlock()
	st.stats.TotalProcessed += processed
	st.stats.Changed += changed
	st.stats.Unchanged += processed - changed
}

func (st *statsTracker) snapshot() Stats {
	st.mutex.Lock()
	defer st.mutex.Unlock()
	return st.stats
}

func (st *statsTracker) logResults() {
	stats := st.snapshot()
	st.logger.Info().
		Int("total_processed", stats.TotalProcessed).
		Int("changed", stats.Changed).
		Int("unchanged", stats.Unchanged).
		Msg("Batch cleaning completed")
}
