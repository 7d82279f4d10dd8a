package domain_test

import (
	"testing"

	"go-jobboard-backend/internal/domain"

	"github.com/stretchr/testify/assert"
)

func TestSelectionMatches(t *testing.T) {
	job := domain.Job{
		ID:        1,
		Role:      "Frontend",
		Level:     "Senior",
		Languages: []string{"HTML", "CSS", "JavaScript"},
		Tools:     []string{"React"},
	}

	tests := []struct {
		name string
		sel  domain.Selection
		want bool
	}{
		{name: "empty selection", sel: domain.Selection{}, want: true},
		{name: "role match", sel: domain.Selection{}.WithRole("Frontend"), want: true},
		{name: "role mismatch", sel: domain.Selection{}.WithRole("Backend"), want: false},
		{name: "role is case sensitive", sel: domain.Selection{}.WithRole("frontend"), want: false},
		{name: "language member", sel: domain.Selection{}.WithLanguage("CSS"), want: true},
		{name: "language not member", sel: domain.Selection{}.WithLanguage("Python"), want: false},
		{name: "tool member", sel: domain.Selection{}.WithTool("React"), want: true},
		{name: "tool not member", sel: domain.Selection{}.WithTool("Sass"), want: false},
		{name: "all dimensions", sel: domain.Selection{}.WithRole("Frontend").WithLanguage("JavaScript").WithTool("React"), want: true},
		{name: "explicit empty role is a constraint", sel: domain.Selection{}.WithRole(""), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.sel.Matches(job))
		})
	}
}

func TestSelectionIsEmpty(t *testing.T) {
	assert.True(t, domain.Selection{}.IsEmpty())
	assert.False(t, domain.Selection{}.WithTool("Vue").IsEmpty())
	assert.False(t, domain.Selection{}.WithRole("").IsEmpty())
}

func TestJobTags(t *testing.T) {
	job := domain.Job{
		Role:      "Fullstack",
		Level:     "Midweight",
		Languages: []string{"Python"},
		Tools:     []string{"React", "Django"},
	}
	assert.Equal(t, []string{"Fullstack", "Midweight", "Python", "React", "Django"}, job.Tags())
	assert.True(t, job.HasTool("Django"))
	assert.False(t, job.HasLanguage("Ruby"))
}

func TestLoadStateText(t *testing.T) {
	text, err := domain.LoadFailed.MarshalText()
	assert.NoError(t, err)
	assert.Equal(t, "failed", string(text))
	assert.Equal(t, "pending", domain.LoadPending.String())
	assert.Equal(t, "ready", domain.LoadReady.String())
}

func TestLoadStateUnmarshalText(t *testing.T) {
	var s domain.LoadState
	assert.NoError(t, s.UnmarshalText([]byte("ready")))
	assert.Equal(t, domain.LoadReady, s)
	assert.Error(t, s.UnmarshalText([]byte("done")))
}
