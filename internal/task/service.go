package task

import (
	"context"

	"task-manager/internal/model"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List(ctx context.Context) ([]model.Task, error) {
	tasks, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	if tasks == nil {
		tasks = []model.Task{}
	}
	return tasks, nil
}

func (s *Service) Get(ctx context.Context, id int64) (model.Task, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *Service) Create(ctx context.Context, in Input) (model.Task, error) {
	valid, err := Validate(in)
	if err != nil {
		return model.Task{}, err
	}

	return s.repo.Save(ctx, model.Task{
		Title:       valid.Title,
		Description: valid.Description,
		Status:      valid.Status,
		DueDate:     valid.DueDate,
	})
}

// Update replaces every mutable field of the task with in. Fields left empty
// in the payload are cleared, except status which falls back to TODO.
func (s *Service) Update(ctx context.Context, id int64, in Input) (model.Task, error) {
	valid, err := Validate(in)
	if err != nil {
		return model.Task{}, err
	}

	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return model.Task{}, err
	}

	existing.Title = valid.Title
	existing.Description = valid.Description
	existing.Status = valid.Status
	existing.DueDate = valid.DueDate

	return s.repo.Save(ctx, existing)
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}
