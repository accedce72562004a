package task

import (
	"context"

	"task-manager/internal/model"
)

// Repository is the record store behind the service.
//
// Save inserts a task whose ID is zero and returns it with the assigned id.
// A non-zero ID overwrites the stored row and yields model.ErrNotFound when
// no such row exists. FindByID and Delete also report model.ErrNotFound.
type Repository interface {
	FindAll(ctx context.Context) ([]model.Task, error)
	FindByID(ctx context.Context, id int64) (model.Task, error)
	Save(ctx context.Context, t model.Task) (model.Task, error)
	Delete(ctx context.Context, id int64) error
}
