package usecase

import (
	"context"
	"fmt"

	"go-jobboard-backend/internal/domain"
)

type jobUsecase struct {
	loader domain.JobLoader
}

func NewJobUsecase(loader domain.JobLoader) domain.JobUsecase {
	return &jobUsecase{loader: loader}
}

// ListJobs applies sel to the loaded collection.
func (u *jobUsecase) ListJobs(ctx context.Context, sel domain.Selection) (*domain.JobListing, error) {
	snap, err := u.ready()
	if err != nil {
		return nil, err
	}

	jobs := FilterJobs(snap.Jobs, sel)
	return &domain.JobListing{
		Jobs:      jobs,
		Total:     len(snap.Jobs),
		Matched:   len(jobs),
		Selection: sel,
		Filtered:  !sel.IsEmpty(),
	}, nil
}

// FilterOptions returns the option sets derived when the dataset loaded.
func (u *jobUsecase) FilterOptions(ctx context.Context) (*domain.FilterOptions, error) {
	snap, err := u.ready()
	if err != nil {
		return nil, err
	}
	opts := *snap.Options
	return &opts, nil
}

func (u *jobUsecase) Status(ctx context.Context) domain.Snapshot {
	return u.loader.Snapshot()
}

func (u *jobUsecase) ready() (domain.Snapshot, error) {
	snap := u.loader.Snapshot()
	switch snap.State {
	case domain.LoadReady:
		return snap, nil
	case domain.LoadFailed:
		return snap, fmt.Errorf("%w: %s", domain.ErrLoadFailed, snap.Error)
	default:
		return snap, domain.ErrNotReady
	}
}
