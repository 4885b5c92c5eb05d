package controller

import (
	"context"
	"errors"
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/edimundos/todo-interface/internal/core/domain"
	"github.com/edimundos/todo-interface/internal/core/ports"
)

const minPasswordLength = 6

// Controller owns the raw task collection and the view state, and funnels
// every gateway result through the same rules: a list success replaces the
// collection, a mutation success triggers a refetch, any failure leaves the
// collection untouched, and a 401 anywhere tears the session down.
type Controller struct {
	gateway ports.TaskGateway
	session ports.SessionStore

	mu    sync.Mutex
	tasks []domain.Task
	view  domain.ViewState
	busy  map[int64]bool

	// List fetches are numbered at issue time so a stale completion can be
	// recognized and discarded (last issued wins, not last resolved).
	issuedSeq  uint64
	appliedSeq uint64
}

func New(gateway ports.TaskGateway, session ports.SessionStore) *Controller {
	return &Controller{
		gateway: gateway,
		session: session,
		view:    domain.DefaultViewState(),
		busy:    make(map[int64]bool),
	}
}

// Login validates the credentials, exchanges them for a token and stores it.
// No request is sent when validation fails.
func (c *Controller) Login(ctx context.Context, username, password string) error {
	if strings.TrimSpace(username) == "" || password == "" {
		return &domain.ValidationError{Field: "credentials", Reason: "username and password are required"}
	}

	token, err := c.gateway.Login(ctx, username, password)
	if err != nil {
		return err
	}
	return c.session.SetToken(token)
}

// Register validates the credentials and creates the account. The caller
// decides whether to log in afterwards.
func (c *Controller) Register(ctx context.Context, username, password string) error {
	if strings.TrimSpace(username) == "" || password == "" {
		return &domain.ValidationError{Field: "credentials", Reason: "username and password are required"}
	}
	if len(password) < minPasswordLength {
		return &domain.ValidationError{Field: "password", Reason: "password must be at least 6 characters long"}
	}

	return c.gateway.Register(ctx, username, password)
}

// Logout destroys the session and drops the in-memory collection.
func (c *Controller) Logout() error {
	c.mu.Lock()
	c.tasks = nil
	c.mu.Unlock()
	return c.session.Clear()
}

// HasSession reports whether a token is stored. It says nothing about the
// token still being accepted remotely.
func (c *Controller) HasSession() bool {
	_, ok, err := c.session.Token()
	if err != nil {
		zap.L().Warn("failed to read session", zap.Error(err))
		return false
	}
	return ok
}

// Refresh re-fetches the full task list and replaces the raw collection on
// success. A completion belonging to a superseded fetch is discarded.
func (c *Controller) Refresh(ctx context.Context) error {
	token, err := c.token()
	if err != nil {
		return err
	}

	c.mu.Lock()
	c.issuedSeq++
	seq := c.issuedSeq
	c.mu.Unlock()

	tasks, err := c.gateway.ListTasks(ctx, token)
	if err != nil {
		return c.fail(err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if seq != c.issuedSeq || seq <= c.appliedSeq {
		zap.L().Debug("discarding superseded task list", zap.Uint64("seq", seq), zap.Uint64("latest", c.issuedSeq))
		return nil
	}
	c.tasks = tasks
	c.appliedSeq = seq
	return nil
}

// CreateTask submits a new task and refetches on success.
func (c *Controller) CreateTask(ctx context.Context, task domain.NewTask) error {
	task.Title = strings.TrimSpace(task.Title)
	if task.Title == "" {
		return &domain.ValidationError{Field: "title", Reason: "task title is required"}
	}

	token, err := c.token()
	if err != nil {
		return err
	}
	if err := c.gateway.CreateTask(ctx, token, task); err != nil {
		return c.fail(err)
	}
	return c.Refresh(ctx)
}

// UpdateTask submits the full task and refetches on success. At most one
// mutation per task id may be in flight.
func (c *Controller) UpdateTask(ctx context.Context, task domain.Task) error {
	task.Title = strings.TrimSpace(task.Title)
	if task.Title == "" {
		return &domain.ValidationError{Field: "title", Reason: "task title is required"}
	}

	if err := c.acquire(task.ID); err != nil {
		return err
	}
	defer c.release(task.ID)

	token, err := c.token()
	if err != nil {
		return err
	}
	if err := c.gateway.UpdateTask(ctx, token, task); err != nil {
		return c.fail(err)
	}
	return c.Refresh(ctx)
}

// DeleteTask removes the task remotely and refetches on success.
func (c *Controller) DeleteTask(ctx context.Context, id int64) error {
	if err := c.acquire(id); err != nil {
		return err
	}
	defer c.release(id)

	token, err := c.token()
	if err != nil {
		return err
	}
	if err := c.gateway.DeleteTask(ctx, token, id); err != nil {
		return c.fail(err)
	}
	return c.Refresh(ctx)
}

// ToggleStatus submits a flipped copy of the task; the original is never
// mutated in place.
func (c *Controller) ToggleStatus(ctx context.Context, task domain.Task) error {
	return c.UpdateTask(ctx, task.WithStatusToggled())
}

// Tasks returns a copy of the raw collection.
func (c *Controller) Tasks() []domain.Task {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]domain.Task, len(c.tasks))
	copy(out, c.tasks)
	return out
}

// Projection derives the filtered, sorted subset for the current view state.
func (c *Controller) Projection() []domain.Task {
	c.mu.Lock()
	defer c.mu.Unlock()
	return domain.Project(c.tasks, c.view)
}

func (c *Controller) SetQuery(query string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.view.Query = query
}

func (c *Controller) SetSort(key domain.SortKey) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.view.Sort = key
}

func (c *Controller) SetTab(tab domain.Tab) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.view.Tab = tab
}

func (c *Controller) View() domain.ViewState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.view
}

// Busy reports whether a mutation for the task id is in flight.
func (c *Controller) Busy(id int64) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.busy[id]
}

func (c *Controller) token() (string, error) {
	token, ok, err := c.session.Token()
	if err != nil {
		return "", err
	}
	if !ok {
		return "", domain.ErrNoSession
	}
	return token, nil
}

// fail handles a gateway error: a 401 invalidates the session, everything
// else passes through with the collection left as it was.
func (c *Controller) fail(err error) error {
	if errors.Is(err, domain.ErrUnauthorized) {
		zap.L().Info("session rejected by the API, clearing it")
		c.mu.Lock()
		c.tasks = nil
		c.mu.Unlock()
		if clearErr := c.session.Clear(); clearErr != nil {
			zap.L().Warn("failed to clear session", zap.Error(clearErr))
		}
	}
	return err
}

func (c *Controller) acquire(id int64) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.busy[id] {
		return domain.ErrTaskBusy
	}
	c.busy[id] = true
	return nil
}

func (c *Controller) release(id int64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.busy, id)
}
