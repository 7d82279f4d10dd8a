package domain

import (
	"context"
	"errors"
	"fmt"
	"time"
)

var (
	ErrNotReady   = errors.New("job listings are still loading")
	ErrLoadFailed = errors.New("job listings failed to load")
)

// LoadState is the lifecycle of the one-time dataset retrieval.
// Ready and Failed are terminal.
type LoadState int

const (
	LoadPending LoadState = iota
	LoadReady
	LoadFailed
)

func (s LoadState) String() string {
	switch s {
	case LoadPending:
		return "pending"
	case LoadReady:
		return "ready"
	case LoadFailed:
		return "failed"
	default:
		return "unknown"
	}
}

func (s LoadState) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

func (s *LoadState) UnmarshalText(text []byte) error {
	switch string(text) {
	case "pending":
		*s = LoadPending
	case "ready":
		*s = LoadReady
	case "failed":
		*s = LoadFailed
	default:
		return fmt.Errorf("unknown load state %q", text)
	}
	return nil
}

// Snapshot is a point-in-time view of the loader. Jobs and Options are only
// populated when State is LoadReady, Error only when it is LoadFailed.
type Snapshot struct {
	State      LoadState      `json:"state"`
	Jobs       []Job          `json:"-"`
	Options    *FilterOptions `json:"-"`
	Error      string         `json:"error,omitempty"`
	StartedAt  time.Time      `json:"started_at,omitzero"`
	FinishedAt time.Time      `json:"finished_at,omitzero"`
}

type JobLoader interface {
	Load(ctx context.Context)
	Snapshot() Snapshot
	Done() <-chan struct{}
}
