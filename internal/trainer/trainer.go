// Package trainer simulates the asynchronous training backend that a wizard
// project is handed to after creation. It owns the status transition from
// "training" to "completed" or "failed".
package trainer

import (
	"context"
	"time"

	"github.com/kyleking/schema-wizard/internal/errors"
	"github.com/kyleking/schema-wizard/internal/logging"
	"github.com/kyleking/schema-wizard/internal/storage"
)

// Trainer triggers and observes project training runs
type Trainer struct {
	repo         storage.Repository
	delay        time.Duration
	pollInterval time.Duration
	logger       *logging.Logger
}

// New creates a trainer over the given project store. delay is how long a
// simulated run takes; pollInterval is how often Watch re-reads the store.
func New(repo storage.Repository, delay, pollInterval time.Duration, logger *logging.Logger) *Trainer {
	return &Trainer{
		repo:         repo,
		delay:        delay,
		pollInterval: pollInterval,
		logger:       logger,
	}
}

// Start launches a training run for the project in the background. The
// project's status flips to completed (or failed when the store rejects the
// transition) after the configured delay. Returns immediately.
func (t *Trainer) Start(ctx context.Context, projectID string) {
	go t.run(ctx, projectID)
}

func (t *Trainer) run(ctx context.Context, projectID string) {
	timer := time.NewTimer(t.delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return
	case <-timer.C:
	}

	status := storage.StatusCompleted

	if _, err := t.repo.GetProject(ctx, projectID); err != nil {
		if t.logger != nil {
			t.logger.WithField("project_id", projectID).
				ErrorWithErr("training run lost its project", err)
		}

		status = storage.StatusFailed
	}

	if err := t.repo.UpdateStatus(ctx, projectID, status); err != nil {
		if t.logger != nil {
			t.logger.WithField("project_id", projectID).
				ErrorWithErr("failed to record training result", err)
		}
	}
}

// Watch blocks until the project leaves the training state and returns the
// terminal status. This is the subscription surface the UI layer observes.
func (t *Trainer) Watch(ctx context.Context, projectID string) (storage.Status, error) {
	ticker := time.NewTicker(t.pollInterval)
	defer ticker.Stop()

	for {
		project, err := t.repo.GetProject(ctx, projectID)
		if err != nil {
			return "", err
		}

		if project.Status != storage.StatusTraining {
			return project.Status, nil
		}

		select {
		case <-ctx.Done():
			return "", errors.Wrap(ctx.Err(), errors.ErrTypeTraining, "training watch cancelled")
		case <-ticker.C:
		}
	}
}
