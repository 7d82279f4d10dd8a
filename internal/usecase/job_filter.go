package usecase

import "go-jobboard-backend/internal/domain"

// FilterJobs returns the jobs matching sel, in source order. The input slice
// is not modified; an empty selection yields a copy of every job.
func FilterJobs(jobs []domain.Job, sel domain.Selection) []domain.Job {
	out := make([]domain.Job, 0, len(jobs))
	for _, job := range jobs {
		if sel.Matches(job) {
			out = append(out, job)
		}
	}
	return out
}

// DeriveOptions collects the distinct roles, languages and tools across
// jobs, each in first-seen order.
func DeriveOptions(jobs []domain.Job) domain.FilterOptions {
	roles := newOrderedSet()
	languages := newOrderedSet()
	tools := newOrderedSet()

	for _, job := range jobs {
		roles.add(job.Role)
		languages.add(job.Languages...)
		tools.add(job.Tools...)
	}

	return domain.FilterOptions{
		Roles:     roles.values,
		Languages: languages.values,
		Tools:     tools.values,
	}
}

type orderedSet struct {
	seen   map[string]struct{}
	values []string
}

func newOrderedSet() *orderedSet {
	return &orderedSet{seen: make(map[string]struct{}), values: []string{}}
}

func (s *orderedSet) add(values ...string) {
	for _, v := range values {
		if _, ok := s.seen[v]; ok {
			continue
		}
		s.seen[v] = struct{}{}
		s.values = append(s.values, v)
	}
}
