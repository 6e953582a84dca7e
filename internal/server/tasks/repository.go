package tasks

import (
	"context"
)

type Repository interface {
	ListByOwner(ctx context.Context, ownerID string) ([]Task, error)
	Create(ctx context.Context, task *Task) (*Task, error)
	// Delete removes the task only when both id and owner match;
	// common.ErrNotFound otherwise.
	Delete(ctx context.Context, ownerID string, taskID string) error
}
