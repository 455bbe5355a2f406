package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/aruiz-dev/tasklist/internal/models"
	"github.com/aruiz-dev/tasklist/internal/repo"
)

const (
	maxTitleLen       = 255
	maxDescriptionLen = 1000
)

type TaskService struct {
	Repo *repo.GormRepo
}

func validateTaskFields(title, description string) error {
	if title == "" {
		return fmt.Errorf("title is required: %w", ErrValidation)
	}
	if len(title) > maxTitleLen {
		return fmt.Errorf("title must be at most %d characters: %w", maxTitleLen, ErrValidation)
	}
	if len(description) > maxDescriptionLen {
		return fmt.Errorf("description must be at most %d characters: %w", maxDescriptionLen, ErrValidation)
	}
	return nil
}

func (s *TaskService) Create(ctx context.Context, ownerID uint, title, description string) (*models.Task, error) {
	if err := validateTaskFields(title, description); err != nil {
		return nil, err
	}

	task := models.Task{
		Title:       title,
		Description: description,
		OwnerID:     ownerID,
	}
	if err := s.Repo.CreateTask(ctx, &task); err != nil {
		return nil, err
	}
	return &task, nil
}

func (s *TaskService) List(ctx context.Context, ownerID uint, offset, limit int) ([]models.Task, error) {
	return s.Repo.ListTasksByOwner(ctx, ownerID, offset, limit)
}

func (s *TaskService) Get(ctx context.Context, id, ownerID uint) (*models.Task, error) {
	task, err := s.Repo.GetTaskByIDAndOwner(ctx, id, ownerID)
	if errors.Is(err, repo.ErrNotFound) {
		return nil, ErrNotFound
	}
	return task, err
}

func (s *TaskService) Update(ctx context.Context, id, ownerID uint, title, description string) (*models.Task, error) {
	if err := validateTaskFields(title, description); err != nil {
		return nil, err
	}

	task, err := s.Repo.UpdateTask(ctx, id, ownerID, title, description)
	if errors.Is(err, repo.ErrNotFound) {
		return nil, ErrNotFound
	}
	return task, err
}

func (s *TaskService) Complete(ctx context.Context, id, ownerID uint) (*models.Task, error) {
	task, err := s.Repo.CompleteTask(ctx, id, ownerID)
	if errors.Is(err, repo.ErrNotFound) {
		return nil, ErrNotFound
	}
	return task, err
}

func (s *TaskService) Delete(ctx context.Context, id, ownerID uint) error {
	deleted, err := s.Repo.DeleteTask(ctx, id, ownerID)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrNotFound
	}
	return nil
}
