package usecase

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/logger"
)

type jobLoader struct {
	source domain.JobSource
	now    func() time.Time

	once sync.Once
	done chan struct{}

	mu       sync.RWMutex
	snapshot domain.Snapshot
}

// NewJobLoader returns a loader in the pending state. Nothing is retrieved
// until Load is called.
func NewJobLoader(source domain.JobSource) domain.JobLoader {
	return &jobLoader{
		source: source,
		now:    time.Now,
		done:   make(chan struct{}),
	}
}

// Load retrieves the dataset once. Later and concurrent calls block until
// that single retrieval has settled and never fetch again.
func (l *jobLoader) Load(ctx context.Context) {
	l.once.Do(func() {
		l.mu.Lock()
		l.snapshot.StartedAt = l.now()
		l.mu.Unlock()

		settled := false
		defer func() {
			if r := recover(); r != nil && !settled {
				l.settle(nil, fmt.Errorf("jobs source panicked: %v", r))
			}
		}()

		jobs, err := l.source.Fetch(ctx)
		settled = true
		l.settle(jobs, err)
	})
	<-l.done
}

func (l *jobLoader) settle(jobs []domain.Job, err error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	defer close(l.done)

	l.snapshot.FinishedAt = l.now()

	if err == nil && jobs == nil {
		err = errors.New("jobs source returned no collection")
	}
	if err != nil {
		l.snapshot.State = domain.LoadFailed
		l.snapshot.Error = err.Error()
		logger.Log.Error("Failed to load job listings", "error", err)
		return
	}

	opts := DeriveOptions(jobs)
	l.snapshot.State = domain.LoadReady
	l.snapshot.Jobs = jobs
	l.snapshot.Options = &opts
	logger.Log.Info("Job listings loaded",
		"jobs", len(jobs),
		"roles", len(opts.Roles),
		"languages", len(opts.Languages),
		"tools", len(opts.Tools),
		"duration", l.snapshot.FinishedAt.Sub(l.snapshot.StartedAt).String(),
	)
}

func (l *jobLoader) Snapshot() domain.Snapshot {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.snapshot
}

// Done is closed once the loader has left the pending state.
func (l *jobLoader) Done() <-chan struct{} {
	return l.done
}
