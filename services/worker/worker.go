package worker

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"sjsage522/zenlesscollector/helpers"
	"sjsage522/zenlesscollector/internal/collector"
	"sjsage522/zenlesscollector/services/cache"
	"sjsage522/zenlesscollector/services/notifier"
	"sjsage522/zenlesscollector/services/publisher"

	"github.com/google/uuid"
)

// PublishKey is the stream field that carries a new-code event
const PublishKey = "b64_code"

// CodeCollector fetches the active codes as of a given day
type CodeCollector interface {
	Collect(ctx context.Context, today time.Time) ([]collector.RedemptionCode, error)
	GetName() string
}

// Result is the outcome of one fetch action
type Result struct {
	RunID       string                     `json:"run_id"`
	FetchedAt   time.Time                  `json:"fetched_at"`
	Codes       []collector.RedemptionCode `json:"codes"`
	NewCodes    []string                   `json:"new_codes"`
	FetchFailed bool                       `json:"-"`
	SaveErr     error                      `json:"-"`
}

// NewCodeEntries returns the new codes with their rewards, in result order
func (r *Result) NewCodeEntries() []collector.RedemptionCode {
	fresh := make(map[string]bool, len(r.NewCodes))
	for _, c := range r.NewCodes {
		fresh[c] = true
	}
	entries := make([]collector.RedemptionCode, 0, len(r.NewCodes))
	for _, c := range r.Codes {
		if fresh[c.Code] {
			entries = append(entries, c)
		}
	}
	return entries
}

// CodeEvent is published once per newly detected code
type CodeEvent struct {
	RunID      string    `json:"run_id"`
	Code       string    `json:"code"`
	Reward     int       `json:"reward"`
	DetectedAt time.Time `json:"detected_at"`
}

// Worker runs fetch actions against one collector and snapshot store
type Worker struct {
	collector CodeCollector
	store     cache.CodeStore
	publisher publisher.Publisher
	notifier  notifier.Notifier
	logger    helpers.LoggerInterface
	interval  time.Duration
	now       func() time.Time

	// one action at a time; the snapshot is read then overwritten
	mu sync.Mutex
}

// NewWorker creates a new worker. Publisher and notifier may be nil.
func NewWorker(
	c CodeCollector,
	store cache.CodeStore,
	pub publisher.Publisher,
	notif notifier.Notifier,
	logger helpers.LoggerInterface,
	interval time.Duration,
) *Worker {
	return &Worker{
		collector: c,
		store:     store,
		publisher: pub,
		notifier:  notif,
		logger:    logger,
		interval:  interval,
		now:       time.Now,
	}
}

// Start runs an action immediately and then once per interval until ctx is done
func (w *Worker) Start(ctx context.Context) error {
	for {
		start := time.Now()
		result := w.RunOnce(ctx)
		w.logger.LogInfo("Run %s finished in %s: %d codes, %d new",
			result.RunID, time.Since(start), len(result.Codes), len(result.NewCodes))

		select {
		case <-ctx.Done():
			return nil
		case <-time.After(w.interval):
		}
	}
}

// RunOnce performs one fetch action. Fetch failures yield an empty result
// and leave the stored snapshot untouched.
func (w *Worker) RunOnce(ctx context.Context) *Result {
	w.mu.Lock()
	defer w.mu.Unlock()

	now := w.now()
	result := &Result{
		RunID:     uuid.NewString(),
		FetchedAt: now,
		Codes:     []collector.RedemptionCode{},
		NewCodes:  []string{},
	}

	codes, err := w.collector.Collect(ctx, now)
	if err != nil {
		w.logger.LogError(w.collector.GetName(), err)
		result.FetchFailed = true
		return result
	}
	result.Codes = codes

	previous, err := w.store.Load(ctx)
	if err != nil {
		w.logger.LogError(w.store.Name(), err)
		previous = cache.Snapshot{}
	}

	result.NewCodes = cache.Diff(previous, codes)

	if err := w.store.Save(ctx, cache.SnapshotOf(codes)); err != nil {
		w.logger.LogError(w.store.Name(), err)
		result.SaveErr = err
	}

	if len(result.NewCodes) > 0 {
		w.announce(ctx, result)
	}

	return result
}

// announce publishes and notifies the new codes of a result
func (w *Worker) announce(ctx context.Context, result *Result) {
	entries := result.NewCodeEntries()

	if w.publisher != nil {
		for _, entry := range entries {
			data, err := json.Marshal(CodeEvent{
				RunID:      result.RunID,
				Code:       entry.Code,
				Reward:     entry.Reward,
				DetectedAt: result.FetchedAt,
			})
			if err != nil {
				w.logger.LogError("publisher", err)
				return
			}
			if err := w.publisher.Publish(ctx, PublishKey, data); err != nil {
				w.logger.LogError("publisher", err)
			}
		}
		if err := w.publisher.TrimStreams(ctx); err != nil {
			w.logger.LogError("StreamTrimming", err)
		}
	}

	if w.notifier != nil {
		if err := w.notifier.Notify(ctx, entries); err != nil {
			w.logger.LogError("notifier", err)
		}
	}
}
