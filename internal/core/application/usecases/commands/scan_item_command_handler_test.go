package commands_test

import (
	"context"
	"testing"
	"time"

	"laundryops/internal/core/application/usecases/commands"
	"laundryops/internal/core/domain/model/assembly"
	"laundryops/internal/core/domain/model/kernel"
	"laundryops/internal/core/domain/model/order"
	"laundryops/internal/core/ports"
	"laundryops/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type ScanTaskRepo struct{ mock.Mock }

func (m *ScanTaskRepo) Add(ctx context.Context, t *assembly.Task) error {
	args := m.Called(ctx, t)
	return args.Error(0)
}

func (m *ScanTaskRepo) Update(ctx context.Context, t *assembly.Task) error {
	args := m.Called(ctx, t)
	return args.Error(0)
}

func (m *ScanTaskRepo) Get(ctx context.Context, tenantID, id kernel.UUID) (*assembly.Task, error) {
	args := m.Called(ctx, tenantID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*assembly.Task), args.Error(1)
}

func (m *ScanTaskRepo) GetActiveByOrder(
	ctx context.Context, tenantID, orderID kernel.UUID,
) (*assembly.Task, error) {
	args := m.Called(ctx, tenantID, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*assembly.Task), args.Error(1)
}

func (m *ScanTaskRepo) GetLatestByOrder(
	ctx context.Context, tenantID, orderID kernel.UUID,
) (*assembly.Task, error) {
	args := m.Called(ctx, tenantID, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*assembly.Task), args.Error(1)
}

type ScanExceptionRepo struct{ mock.Mock }

func (m *ScanExceptionRepo) Add(ctx context.Context, e *assembly.Exception) error {
	args := m.Called(ctx, e)
	return args.Error(0)
}

func (m *ScanExceptionRepo) Update(ctx context.Context, e *assembly.Exception) error {
	args := m.Called(ctx, e)
	return args.Error(0)
}

func (m *ScanExceptionRepo) Get(
	ctx context.Context, tenantID, id kernel.UUID,
) (*assembly.Exception, error) {
	args := m.Called(ctx, tenantID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*assembly.Exception), args.Error(1)
}

type ScanUnitOfWork struct{ mock.Mock }

func (m *ScanUnitOfWork) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *ScanUnitOfWork) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *ScanUnitOfWork) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *ScanUnitOfWork) AssemblyTaskRepository() ports.AssemblyTaskRepository {
	args := m.Called()
	return args.Get(0).(ports.AssemblyTaskRepository)
}

func (m *ScanUnitOfWork) ExceptionRepository() ports.ExceptionRepository {
	args := m.Called()
	return args.Get(0).(ports.ExceptionRepository)
}

type ScanUoWFactory struct{ mock.Mock }

func (m *ScanUoWFactory) Create() commands.AssemblyUoW {
	args := m.Called()
	return args.Get(0).(commands.AssemblyUoW)
}

// createScanTestTask builds a task over one shirt (BC-001) and two trousers
// (BC-002).
func createScanTestTask(t *testing.T, tenantID kernel.UUID) *assembly.Task {
	t.Helper()

	shirt, err := order.NewItem(kernel.NewUUID(), "BC-001", "shirt", 1, 450)
	require.NoError(t, err)
	trousers, err := order.NewItem(kernel.NewUUID(), "BC-002", "trousers", 2, 700)
	require.NoError(t, err)

	o, err := order.NewOrder(
		kernel.NewUUID(), tenantID, []order.Item{shirt, trousers}, time.Now().UTC(), nil, 0)
	require.NoError(t, err)

	task, err := assembly.NewTask(kernel.NewUUID(), tenantID, o)
	require.NoError(t, err)
	return task
}

func TestScanItemCommandHandler_Handle_Match(t *testing.T) {
	ctx := t.Context()
	tenantID := kernel.NewUUID()
	task := createScanTestTask(t, tenantID)

	cmd, err := commands.NewScanItemCommand(task.ID(), tenantID, "BC-001", kernel.NewUUID())
	require.NoError(t, err)

	taskRepo := new(ScanTaskRepo)
	uow := new(ScanUnitOfWork)
	factory := new(ScanUoWFactory)

	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("AssemblyTaskRepository").Return(taskRepo).Once(),
		taskRepo.On("Get", ctx, tenantID, task.ID()).Return(task, nil).Once(),
		taskRepo.On("Update", ctx, task).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	handler := commands.NewScanItemCommandHandler(factory)
	result, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, assembly.OutcomeMatch, result.Outcome)
	require.NotNil(t, result.ItemID)
	assert.False(t, result.AllItemsProcessed)
	assert.Nil(t, result.ExceptionID)
	assert.Len(t, task.Scans(), 1)

	factory.AssertExpectations(t)
	uow.AssertExpectations(t)
	taskRepo.AssertExpectations(t)
}

func TestScanItemCommandHandler_Handle_MismatchRaisesException(t *testing.T) {
	ctx := t.Context()
	tenantID := kernel.NewUUID()
	task := createScanTestTask(t, tenantID)

	cmd, err := commands.NewScanItemCommand(task.ID(), tenantID, "BC-999", kernel.NewUUID())
	require.NoError(t, err)

	taskRepo := new(ScanTaskRepo)
	exceptionRepo := new(ScanExceptionRepo)
	uow := new(ScanUnitOfWork)
	factory := new(ScanUoWFactory)

	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("AssemblyTaskRepository").Return(taskRepo).Once(),
		taskRepo.On("Get", ctx, tenantID, task.ID()).Return(task, nil).Once(),
		uow.On("ExceptionRepository").Return(exceptionRepo).Once(),
		exceptionRepo.On("Add", ctx, mock.AnythingOfType("*assembly.Exception")).Return(nil).Once(),
		taskRepo.On("Update", ctx, task).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	handler := commands.NewScanItemCommandHandler(factory)
	result, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, assembly.OutcomeMismatch, result.Outcome)
	assert.Nil(t, result.ItemID)
	require.NotNil(t, result.ExceptionID)

	raised := exceptionRepo.Calls[0].Arguments.Get(1).(*assembly.Exception)
	assert.Equal(t, assembly.KindItemMismatch, raised.Kind())
	assert.Equal(t, task.ID(), raised.TaskID())
	assert.False(t, raised.IsResolved())
	assert.Equal(t, raised.ID(), *result.ExceptionID)

	factory.AssertExpectations(t)
	uow.AssertExpectations(t)
	taskRepo.AssertExpectations(t)
	exceptionRepo.AssertExpectations(t)
}

func TestScanItemCommandHandler_Handle_CompletionReported(t *testing.T) {
	ctx := t.Context()
	tenantID := kernel.NewUUID()
	task := createScanTestTask(t, tenantID)
	actorID := kernel.NewUUID()

	// Only the final trouser piece remains.
	_, err := task.Scan("BC-001", actorID, time.Now().UTC())
	require.NoError(t, err)
	_, err = task.Scan("BC-002", actorID, time.Now().UTC())
	require.NoError(t, err)

	cmd, err := commands.NewScanItemCommand(task.ID(), tenantID, "BC-002", actorID)
	require.NoError(t, err)

	taskRepo := new(ScanTaskRepo)
	uow := new(ScanUnitOfWork)
	factory := new(ScanUoWFactory)

	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("AssemblyTaskRepository").Return(taskRepo).Once(),
		taskRepo.On("Get", ctx, tenantID, task.ID()).Return(task, nil).Once(),
		taskRepo.On("Update", ctx, task).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	handler := commands.NewScanItemCommandHandler(factory)
	result, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, assembly.OutcomeMatch, result.Outcome)
	assert.True(t, result.AllItemsProcessed)
	assert.NotNil(t, task.CompletedAt())

	factory.AssertExpectations(t)
	uow.AssertExpectations(t)
	taskRepo.AssertExpectations(t)
}

func TestScanItemCommandHandler_Handle_TaskNotFound(t *testing.T) {
	ctx := t.Context()
	tenantID := kernel.NewUUID()
	taskID := kernel.NewUUID()

	cmd, err := commands.NewScanItemCommand(taskID, tenantID, "BC-001", kernel.NewUUID())
	require.NoError(t, err)

	taskRepo := new(ScanTaskRepo)
	uow := new(ScanUnitOfWork)
	factory := new(ScanUoWFactory)

	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("AssemblyTaskRepository").Return(taskRepo).Once(),
		taskRepo.On("Get", ctx, tenantID, taskID).
			Return(nil, errs.NewObjectNotFoundError("task", taskID.String())).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	handler := commands.NewScanItemCommandHandler(factory)
	_, err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrObjectNotFound)

	factory.AssertExpectations(t)
	uow.AssertExpectations(t)
	taskRepo.AssertExpectations(t)
}

func TestScanItemCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.ScanItemCommand{} // not constructed properly
	factory := new(ScanUoWFactory)

	handler := commands.NewScanItemCommandHandler(factory)
	_, err := handler.Handle(ctx, cmd)

	require.Error(t, err)
}
