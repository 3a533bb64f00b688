// Package jobs tracks data-collection job status in Redis. The collection
// pipeline itself is not implemented; the store holds the job records the
// tracking endpoints serve, keyed the way the worker backend would write them.
package jobs

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	// jobKeyPrefix is the Redis key prefix for collection job records.
	jobKeyPrefix = "jobs:collection:"
	// jobTTL bounds how long finished job records are retained.
	jobTTL = 24 * time.Hour
)

// Job statuses as reported by the collection backend.
const (
	StatusPending   = "pending"
	StatusRunning   = "running"
	StatusCompleted = "completed"
	StatusFailed    = "failed"
)

// Job is a data-collection job record.
type Job struct {
	ID           string         `json:"id"`
	Type         string         `json:"type"`
	Status       string         `json:"status"`
	CreatedAt    time.Time      `json:"created_at"`
	CompletedAt  *time.Time     `json:"completed_at,omitempty"`
	Params       map[string]any `json:"params,omitempty"`
	ResultsCount int            `json:"results_count"`
}

// Store reads and writes job records in Redis.
type Store struct {
	client *redis.Client
}

// NewStore wraps the shared Redis client.
func NewStore(client *redis.Client) *Store {
	return &Store{client: client}
}

// Put stores a job record, assigning an ID when absent.
func (s *Store) Put(ctx context.Context, job *Job) error {
	if job.ID == "" {
		job.ID = uuid.NewString()
	}
	data, err := json.Marshal(job)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, jobKeyPrefix+job.ID, data, jobTTL).Err()
}

// Get returns a job by ID, or nil when no record exists.
func (s *Store) Get(ctx context.Context, id string) (*Job, error) {
	data, err := s.client.Get(ctx, jobKeyPrefix+id).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var job Job
	if err := json.Unmarshal(data, &job); err != nil {
		// Corrupted record, treat as missing.
		return nil, nil
	}
	return &job, nil
}

// List returns all tracked jobs, optionally filtered by status.
func (s *Store) List(ctx context.Context, status string) ([]*Job, error) {
	var (
		cursor uint64
		out    []*Job
	)
	for {
		keys, next, err := s.client.Scan(ctx, cursor, jobKeyPrefix+"*", 100).Result()
		if err != nil {
			return nil, err
		}
		for _, key := range keys {
			data, err := s.client.Get(ctx, key).Bytes()
			if err != nil {
				continue
			}
			var job Job
			if err := json.Unmarshal(data, &job); err != nil {
				continue
			}
			if status != "" && job.Status != status {
				continue
			}
			out = append(out, &job)
		}
		if next == 0 {
			break
		}
		cursor = next
	}
	return out, nil
}

// Delete removes a job record. Deleting an absent job is not an error.
func (s *Store) Delete(ctx context.Context, id string) error {
	return s.client.Del(ctx, jobKeyPrefix+id).Err()
}

// SeedSample writes the representative sample job served while the collection
// pipeline is unimplemented. Existing records are left untouched.
func (s *Store) SeedSample(ctx context.Context) error {
	existing, err := s.List(ctx, "")
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		return nil
	}

	completed := time.Date(2023, 10, 15, 10, 35, 0, 0, time.UTC)
	return s.Put(ctx, &Job{
		ID:           "sample-job-1",
		Type:         "web-scrape",
		Status:       StatusCompleted,
		CreatedAt:    time.Date(2023, 10, 15, 10, 30, 0, 0, time.UTC),
		CompletedAt:  &completed,
		Params:       map[string]any{"url": "https://example.com"},
		ResultsCount: 150,
	})
}
