package ports

import (
	"context"

	"github.com/edimundos/todo-interface/internal/core/domain"
)

// TaskGateway is the remote REST API seen from the client. Every call is one
// request/response cycle; mutations return no body, callers refetch the list
// to observe the new state.
type TaskGateway interface {
	Login(ctx context.Context, username, password string) (string, error)
	Register(ctx context.Context, username, password string) error
	ListTasks(ctx context.Context, token string) ([]domain.Task, error)
	CreateTask(ctx context.Context, token string, task domain.NewTask) error
	UpdateTask(ctx context.Context, token string, task domain.Task) error
	DeleteTask(ctx context.Context, token string, id int64) error
}
