package controller_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/edimundos/todo-interface/internal/adapter/session"
	"github.com/edimundos/todo-interface/internal/app/controller"
	"github.com/edimundos/todo-interface/internal/core/domain"
)

type taskGatewayMock struct {
	mock.Mock
}

func (m *taskGatewayMock) Login(ctx context.Context, username, password string) (string, error) {
	args := m.Called(ctx, username, password)
	return args.String(0), args.Error(1)
}

func (m *taskGatewayMock) Register(ctx context.Context, username, password string) error {
	args := m.Called(ctx, username, password)
	return args.Error(0)
}

func (m *taskGatewayMock) ListTasks(ctx context.Context, token string) ([]domain.Task, error) {
	args := m.Called(ctx, token)

	var tasks []domain.Task
	if value := args.Get(0); value != nil {
		tasks = value.([]domain.Task)
	}
	return tasks, args.Error(1)
}

func (m *taskGatewayMock) CreateTask(ctx context.Context, token string, task domain.NewTask) error {
	args := m.Called(ctx, token, task)
	return args.Error(0)
}

func (m *taskGatewayMock) UpdateTask(ctx context.Context, token string, task domain.Task) error {
	args := m.Called(ctx, token, task)
	return args.Error(0)
}

func (m *taskGatewayMock) DeleteTask(ctx context.Context, token string, id int64) error {
	args := m.Called(ctx, token, id)
	return args.Error(0)
}

func newController(t *testing.T) (*controller.Controller, *taskGatewayMock, *session.Memory) {
	t.Helper()
	gatewayMock := new(taskGatewayMock)
	store := session.NewMemory()
	return controller.New(gatewayMock, store), gatewayMock, store
}

func loggedIn(t *testing.T, store *session.Memory) {
	t.Helper()
	require.NoError(t, store.SetToken("abc123"))
}

func TestController_Login_EmptyPasswordIsValidationError(t *testing.T) {
	ctrl, gatewayMock, _ := newController(t)

	err := ctrl.Login(context.Background(), "alice", "")

	var validationErr *domain.ValidationError
	require.ErrorAs(t, err, &validationErr)
	require.Equal(t, domain.FailureValidation, domain.KindOf(err))
	gatewayMock.AssertNotCalled(t, "Login", mock.Anything, mock.Anything, mock.Anything)
}

func TestController_Login_StoresToken(t *testing.T) {
	ctrl, gatewayMock, store := newController(t)
	gatewayMock.On("Login", mock.Anything, "alice", "secret1").Return("abc123", nil).Once()

	require.NoError(t, ctrl.Login(context.Background(), "alice", "secret1"))

	token, ok, err := store.Token()
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "abc123", token)
	gatewayMock.AssertExpectations(t)
}

func TestController_Register_ShortPasswordIsValidationError(t *testing.T) {
	ctrl, gatewayMock, _ := newController(t)

	err := ctrl.Register(context.Background(), "alice", "12345")

	var validationErr *domain.ValidationError
	require.ErrorAs(t, err, &validationErr)
	require.Equal(t, "password", validationErr.Field)
	gatewayMock.AssertNotCalled(t, "Register", mock.Anything, mock.Anything, mock.Anything)
}

func TestController_Refresh_ReplacesCollection(t *testing.T) {
	ctrl, gatewayMock, store := newController(t)
	loggedIn(t, store)
	tasks := []domain.Task{{ID: 1, Title: "Buy milk", Status: domain.StatusIncomplete}}
	gatewayMock.On("ListTasks", mock.Anything, "abc123").Return(tasks, nil).Once()

	require.NoError(t, ctrl.Refresh(context.Background()))

	require.Equal(t, tasks, ctrl.Tasks())
	gatewayMock.AssertExpectations(t)
}

func TestController_Refresh_WithoutSession(t *testing.T) {
	ctrl, gatewayMock, _ := newController(t)

	err := ctrl.Refresh(context.Background())

	require.ErrorIs(t, err, domain.ErrNoSession)
	gatewayMock.AssertNotCalled(t, "ListTasks", mock.Anything, mock.Anything)
}

func TestController_Refresh_UnauthorizedClearsSession(t *testing.T) {
	ctrl, gatewayMock, store := newController(t)
	loggedIn(t, store)
	gatewayMock.On("ListTasks", mock.Anything, "abc123").Return(nil, domain.ErrUnauthorized).Once()

	err := ctrl.Refresh(context.Background())

	require.ErrorIs(t, err, domain.ErrUnauthorized)
	require.False(t, ctrl.HasSession())
	require.Empty(t, ctrl.Tasks())

	// Calls needing a token are blocked until re-login.
	require.ErrorIs(t, ctrl.Refresh(context.Background()), domain.ErrNoSession)
	gatewayMock.AssertExpectations(t)
}

func TestController_CreateTask_BlankTitleIsValidationError(t *testing.T) {
	ctrl, gatewayMock, store := newController(t)
	loggedIn(t, store)

	err := ctrl.CreateTask(context.Background(), domain.NewTask{Title: "   "})

	var validationErr *domain.ValidationError
	require.ErrorAs(t, err, &validationErr)
	require.Equal(t, "title", validationErr.Field)
	gatewayMock.AssertNotCalled(t, "CreateTask", mock.Anything, mock.Anything, mock.Anything)
}

func TestController_CreateTask_RefetchesOnSuccess(t *testing.T) {
	ctrl, gatewayMock, store := newController(t)
	loggedIn(t, store)
	created := domain.NewTask{Title: "Buy milk", Priority: domain.PriorityMedium, Status: domain.StatusIncomplete}
	gatewayMock.On("CreateTask", mock.Anything, "abc123", created).Return(nil).Once()
	gatewayMock.On("ListTasks", mock.Anything, "abc123").Return(
		[]domain.Task{{ID: 1, Title: "Buy milk", Status: domain.StatusIncomplete}}, nil,
	).Once()

	require.NoError(t, ctrl.CreateTask(context.Background(), created))

	require.Len(t, ctrl.Tasks(), 1)
	gatewayMock.AssertExpectations(t)
}

func TestController_DeleteTask_RefetchDropsTask(t *testing.T) {
	ctrl, gatewayMock, store := newController(t)
	loggedIn(t, store)
	gatewayMock.On("ListTasks", mock.Anything, "abc123").Return([]domain.Task{
		{ID: 5, Title: "Buy milk", Status: domain.StatusIncomplete},
		{ID: 6, Title: "File taxes", Status: domain.StatusIncomplete},
	}, nil).Once()
	require.NoError(t, ctrl.Refresh(context.Background()))

	gatewayMock.On("DeleteTask", mock.Anything, "abc123", int64(5)).Return(nil).Once()
	gatewayMock.On("ListTasks", mock.Anything, "abc123").Return([]domain.Task{
		{ID: 6, Title: "File taxes", Status: domain.StatusIncomplete},
	}, nil).Once()

	require.NoError(t, ctrl.DeleteTask(context.Background(), 5))

	for _, task := range ctrl.Projection() {
		require.NotEqual(t, int64(5), task.ID)
	}
	gatewayMock.AssertExpectations(t)
}

func TestController_MutationFailureLeavesCollectionUnchanged(t *testing.T) {
	ctrl, gatewayMock, store := newController(t)
	loggedIn(t, store)
	tasks := []domain.Task{{ID: 5, Title: "Buy milk", Status: domain.StatusIncomplete}}
	gatewayMock.On("ListTasks", mock.Anything, "abc123").Return(tasks, nil).Once()
	require.NoError(t, ctrl.Refresh(context.Background()))

	serverErr := &domain.RequestError{Kind: domain.FailureServer, Status: 500, Err: errors.New("boom")}
	gatewayMock.On("DeleteTask", mock.Anything, "abc123", int64(5)).Return(serverErr).Once()

	err := ctrl.DeleteTask(context.Background(), 5)

	require.ErrorIs(t, err, serverErr)
	require.Equal(t, tasks, ctrl.Tasks())
	require.True(t, ctrl.HasSession())
	gatewayMock.AssertExpectations(t)
}

func TestController_ToggleStatus_SubmitsFlippedCopy(t *testing.T) {
	ctrl, gatewayMock, store := newController(t)
	loggedIn(t, store)
	original := domain.Task{ID: 5, Title: "Buy milk", Status: domain.StatusIncomplete}
	flipped := original
	flipped.Status = domain.StatusCompleted

	gatewayMock.On("UpdateTask", mock.Anything, "abc123", flipped).Return(nil).Once()
	gatewayMock.On("ListTasks", mock.Anything, "abc123").Return([]domain.Task{flipped}, nil).Once()

	require.NoError(t, ctrl.ToggleStatus(context.Background(), original))

	require.Equal(t, domain.StatusIncomplete, original.Status)
	gatewayMock.AssertExpectations(t)
}

func TestController_SameTaskMutationsAreSerialized(t *testing.T) {
	ctrl, gatewayMock, store := newController(t)
	loggedIn(t, store)
	task := domain.Task{ID: 5, Title: "Buy milk", Status: domain.StatusIncomplete}

	started := make(chan struct{})
	release := make(chan struct{})
	gatewayMock.On("UpdateTask", mock.Anything, "abc123", task).Run(func(mock.Arguments) {
		close(started)
		<-release
	}).Return(nil).Once()
	gatewayMock.On("ListTasks", mock.Anything, "abc123").Return([]domain.Task{task}, nil).Once()

	done := make(chan error, 1)
	go func() {
		done <- ctrl.UpdateTask(context.Background(), task)
	}()
	<-started

	// A second mutation for the same id is rejected while the first request
	// is still in flight.
	require.ErrorIs(t, ctrl.UpdateTask(context.Background(), task), domain.ErrTaskBusy)
	require.ErrorIs(t, ctrl.DeleteTask(context.Background(), 5), domain.ErrTaskBusy)
	require.True(t, ctrl.Busy(5))

	close(release)
	require.NoError(t, <-done)
	require.False(t, ctrl.Busy(5))
	gatewayMock.AssertExpectations(t)
}

func TestController_DifferentTasksMutateIndependently(t *testing.T) {
	ctrl, gatewayMock, store := newController(t)
	loggedIn(t, store)
	blocked := domain.Task{ID: 5, Title: "Buy milk", Status: domain.StatusIncomplete}

	started := make(chan struct{})
	release := make(chan struct{})
	gatewayMock.On("UpdateTask", mock.Anything, "abc123", blocked).Run(func(mock.Arguments) {
		close(started)
		<-release
	}).Return(nil).Once()
	gatewayMock.On("DeleteTask", mock.Anything, "abc123", int64(6)).Return(nil).Once()
	gatewayMock.On("ListTasks", mock.Anything, "abc123").Return([]domain.Task{blocked}, nil).Twice()

	done := make(chan error, 1)
	go func() {
		done <- ctrl.UpdateTask(context.Background(), blocked)
	}()
	<-started

	require.NoError(t, ctrl.DeleteTask(context.Background(), 6))

	close(release)
	require.NoError(t, <-done)
	gatewayMock.AssertExpectations(t)
}

func TestController_StaleListFetchIsDiscarded(t *testing.T) {
	ctrl, gatewayMock, store := newController(t)
	loggedIn(t, store)

	oldList := []domain.Task{{ID: 1, Title: "stale", Status: domain.StatusIncomplete}}
	newList := []domain.Task{{ID: 2, Title: "fresh", Status: domain.StatusIncomplete}}

	started := make(chan struct{})
	release := make(chan struct{})
	gatewayMock.On("ListTasks", mock.Anything, "abc123").Run(func(mock.Arguments) {
		close(started)
		<-release
	}).Return(oldList, nil).Once()
	gatewayMock.On("ListTasks", mock.Anything, "abc123").Return(newList, nil).Once()

	done := make(chan error, 1)
	go func() {
		done <- ctrl.Refresh(context.Background())
	}()
	<-started

	// A second fetch is issued while the first is still in flight and wins.
	require.NoError(t, ctrl.Refresh(context.Background()))
	require.Equal(t, newList, ctrl.Tasks())

	// The first fetch resolves late; its result must not clobber the newer one.
	close(release)
	require.NoError(t, <-done)
	require.Equal(t, newList, ctrl.Tasks())
	gatewayMock.AssertExpectations(t)
}

func TestController_Logout_DropsEverything(t *testing.T) {
	ctrl, gatewayMock, store := newController(t)
	loggedIn(t, store)
	gatewayMock.On("ListTasks", mock.Anything, "abc123").Return(
		[]domain.Task{{ID: 1, Title: "Buy milk", Status: domain.StatusIncomplete}}, nil,
	).Once()
	require.NoError(t, ctrl.Refresh(context.Background()))

	require.NoError(t, ctrl.Logout())

	require.False(t, ctrl.HasSession())
	require.Empty(t, ctrl.Tasks())
	gatewayMock.AssertExpectations(t)
}

func TestController_ViewStateFeedsProjection(t *testing.T) {
	ctrl, gatewayMock, store := newController(t)
	loggedIn(t, store)
	due := func(day int) time.Time { return time.Date(2024, 1, day, 0, 0, 0, 0, time.UTC) }
	gatewayMock.On("ListTasks", mock.Anything, "abc123").Return([]domain.Task{
		{ID: 1, Title: "Buy milk", Status: domain.StatusIncomplete, Priority: domain.PriorityLow, DueDate: due(2)},
		{ID: 2, Title: "File taxes", Status: domain.StatusCompleted, Priority: domain.PriorityHigh, DueDate: due(1)},
	}, nil).Once()
	require.NoError(t, ctrl.Refresh(context.Background()))

	require.Equal(t, domain.DefaultViewState(), ctrl.View())

	projected := ctrl.Projection()
	require.Len(t, projected, 2)
	require.Equal(t, "File taxes", projected[0].Title)

	ctrl.SetTab(domain.TabIncomplete)
	projected = ctrl.Projection()
	require.Len(t, projected, 1)
	require.Equal(t, "Buy milk", projected[0].Title)

	ctrl.SetTab(domain.TabAll)
	ctrl.SetQuery("taxes")
	projected = ctrl.Projection()
	require.Len(t, projected, 1)
	require.Equal(t, "File taxes", projected[0].Title)
	gatewayMock.AssertExpectations(t)
}
