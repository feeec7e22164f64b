package queue

import (
	"context"
	"hash/fnv"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/clientdesk/portal/internal/api/metrics"
	"github.com/clientdesk/portal/internal/core/domain"
	"github.com/clientdesk/portal/internal/core/ports"
)

const (
	defaultWorkers = 4
	channelBuffer  = 256
	appendTimeout  = 10 * time.Second
)

// Recorder persists activity entries asynchronously through a fixed set of
// workers. Entries are sharded by subject id, so all events of one account
// are written in the order they were recorded.
type Recorder struct {
	workers []chan domain.Activity
	service ports.ActivityService
	log     zerolog.Logger
	wg      sync.WaitGroup
}

// NewRecorder creates a Recorder with numWorkers sharded workers.
// If numWorkers <= 0, defaultWorkers is used.
func NewRecorder(numWorkers int, service ports.ActivityService, log zerolog.Logger) *Recorder {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	r := &Recorder{
		workers: make([]chan domain.Activity, numWorkers),
		service: service,
		log:     log,
	}
	for i := range r.workers {
		r.workers[i] = make(chan domain.Activity, channelBuffer)
	}
	return r
}

// Start launches all worker goroutines. Workers run until Stop closes the
// shards, so entries recorded during a graceful HTTP drain are still written.
func (r *Recorder) Start() {
	for i, ch := range r.workers {
		r.wg.Add(1)
		go r.runWorker(i, ch)
	}
}

// Stop closes the shards and blocks until every buffered entry has been
// written or ctx expires. Record must not be called after Stop.
func (r *Recorder) Stop(ctx context.Context) error {
	for _, ch := range r.workers {
		close(ch)
	}

	done := make(chan struct{})
	go func() {
		r.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Record sends an entry to the worker responsible for its subject.
// The call is non-blocking up to channelBuffer capacity.
func (r *Recorder) Record(entry domain.Activity) {
	r.workers[r.shardIndex(entry.SubjectID)] <- entry
}

// shardIndex maps a subject id deterministically to a worker index.
func (r *Recorder) shardIndex(subjectID string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(subjectID))
	return int(h.Sum32()) % len(r.workers)
}

func (r *Recorder) runWorker(id int, ch <-chan domain.Activity) {
	defer r.wg.Done()
	for entry := range ch {
		ctx, cancel := context.WithTimeout(context.Background(), appendTimeout)
		err := r.service.Append(ctx, entry)
		cancel()
		if err != nil {
			r.log.Error().Err(err).
				Str("subject_id", entry.SubjectID).
				Str("action", entry.Action).
				Int("worker_id", id).
				Msg("activity write failed")
			continue
		}
		metrics.ActivitiesRecordedTotal.WithLabelValues(entry.Action).Inc()
	}
}
