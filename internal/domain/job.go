package domain

import (
	"context"
	"errors"
	"slices"
)

// Errors raised while retrieving the job dataset. A source wraps one of
// these with the detail of what went wrong.
var (
	ErrSourceTransport = errors.New("jobs source: transport failure")
	ErrSourceStatus    = errors.New("jobs source: non-success status")
	ErrSourceDecode    = errors.New("jobs source: invalid job collection")
)

// Job is one posting as published by the jobs resource. Jobs are never
// mutated after load.
type Job struct {
	ID        int64    `json:"id"`
	Company   string   `json:"company"`
	Logo      string   `json:"logo"`
	New       bool     `json:"new"`
	Featured  bool     `json:"featured"`
	Position  string   `json:"position"`
	Role      string   `json:"role"`
	Level     string   `json:"level"`
	PostedAt  string   `json:"postedAt"`
	Contract  string   `json:"contract"`
	Location  string   `json:"location"`
	Languages []string `json:"languages"`
	Tools     []string `json:"tools"`
}

// HasLanguage reports whether lang is listed in the job's languages.
func (j Job) HasLanguage(lang string) bool {
	return slices.Contains(j.Languages, lang)
}

// HasTool reports whether tool is listed in the job's tools.
func (j Job) HasTool(tool string) bool {
	return slices.Contains(j.Tools, tool)
}

// Tags returns the labels shown on a job card: role, level, languages, tools.
func (j Job) Tags() []string {
	tags := make([]string, 0, 2+len(j.Languages)+len(j.Tools))
	tags = append(tags, j.Role, j.Level)
	tags = append(tags, j.Languages...)
	return append(tags, j.Tools...)
}

// FilterOptions are the distinct values available per filter dimension.
type FilterOptions struct {
	Roles     []string `json:"roles"`
	Languages []string `json:"languages"`
	Tools     []string `json:"tools"`
}

// JobListing is the result of applying a selection to the loaded jobs.
type JobListing struct {
	Jobs      []Job     `json:"jobs"`
	Total     int       `json:"total"`
	Matched   int       `json:"matched"`
	Selection Selection `json:"selection"`
	Filtered  bool      `json:"filtered"`
}

// JobSource performs a single retrieval of the whole job collection.
type JobSource interface {
	Fetch(ctx context.Context) ([]Job, error)
}

type JobUsecase interface {
	ListJobs(ctx context.Context, sel Selection) (*JobListing, error)
	FilterOptions(ctx context.Context) (*FilterOptions, error)
	Status(ctx context.Context) Snapshot
}
