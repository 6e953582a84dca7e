// Package tasks implements the owner-scoped task store. Every operation
// takes the owner id extracted from a verified session token; no task is
// visible or mutable outside its owner's scope.
package tasks

import (
	"context"
	"fmt"

	"github.com/aivanovs/taskkeeper/internal/common"
	"github.com/google/uuid"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List(ctx context.Context, ownerID string) ([]Task, error) {

	result, err := s.repo.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("error listing tasks: %w", err)
	}

	return result, nil
}

func (s *Service) Create(ctx context.Context, ownerID string, text string) (*Task, error) {

	if text == "" {
		return nil, common.ErrValidation
	}

	task := &Task{
		Text:      text,
		Completed: false,
		OwnerID:   ownerID,
	}

	task, err := s.repo.Create(ctx, task)
	if err != nil {
		return nil, fmt.Errorf("error creating task: %w", err)
	}

	return task, nil
}

func (s *Service) Delete(ctx context.Context, ownerID string, taskID string) error {

	// a string that is not a task id cannot name an existing task
	if _, err := uuid.Parse(taskID); err != nil {
		return common.ErrNotFound
	}

	return s.repo.Delete(ctx, ownerID, taskID)
}
