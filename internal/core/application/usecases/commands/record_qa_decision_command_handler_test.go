package commands_test

import (
	"testing"
	"time"

	"laundryops/internal/core/application/usecases/commands"
	"laundryops/internal/core/domain/model/assembly"
	"laundryops/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// createReconciledTask builds a task with every piece scanned and no QA
// decision yet.
func createReconciledTask(t *testing.T, tenantID kernel.UUID) *assembly.Task {
	t.Helper()

	task := createScanTestTask(t, tenantID)
	actorID := kernel.NewUUID()
	for _, barcode := range []string{"BC-001", "BC-002", "BC-002"} {
		_, err := task.Scan(barcode, actorID, time.Now().UTC())
		require.NoError(t, err)
	}
	require.True(t, task.AllItemsProcessed())
	return task
}

func TestRecordQADecisionCommandHandler_Handle_Pass(t *testing.T) {
	ctx := t.Context()
	tenantID := kernel.NewUUID()
	task := createReconciledTask(t, tenantID)

	cmd, err := commands.NewRecordQADecisionCommand(
		task.ID(), tenantID, assembly.DecisionPass, "looks good", "", kernel.NewUUID())
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

	handler := commands.NewRecordQADecisionCommandHandler(factory)
	result, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Nil(t, result.ExceptionID, "pass raises no exception")
	require.NotNil(t, task.ActiveDecision())
	assert.Equal(t, result.DecisionID, task.ActiveDecision().ID())
	assert.Equal(t, assembly.DecisionPass, task.ActiveDecision().Decision())
	assert.Equal(t, "looks good", task.ActiveDecision().Note())

	factory.AssertExpectations(t)
	uow.AssertExpectations(t)
	taskRepo.AssertExpectations(t)
}

func TestRecordQADecisionCommandHandler_Handle_FailRaisesException(t *testing.T) {
	ctx := t.Context()
	tenantID := kernel.NewUUID()
	task := createReconciledTask(t, tenantID)

	cmd, err := commands.NewRecordQADecisionCommand(
		task.ID(), tenantID, assembly.DecisionFail, "stain on shirt", "photos/1.jpg", kernel.NewUUID())
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

	handler := commands.NewRecordQADecisionCommandHandler(factory)
	result, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	require.NotNil(t, result.ExceptionID)

	raised := exceptionRepo.Calls[0].Arguments.Get(1).(*assembly.Exception)
	assert.Equal(t, assembly.KindQAFail, raised.Kind())
	assert.Equal(t, task.ID(), raised.TaskID())
	assert.Equal(t, raised.ID(), *result.ExceptionID)
	assert.Equal(t, assembly.DecisionFail, task.ActiveDecision().Decision())

	factory.AssertExpectations(t)
	uow.AssertExpectations(t)
	taskRepo.AssertExpectations(t)
	exceptionRepo.AssertExpectations(t)
}

func TestRecordQADecisionCommandHandler_Handle_TaskNotReady(t *testing.T) {
	ctx := t.Context()
	tenantID := kernel.NewUUID()
	task := createScanTestTask(t, tenantID) // reconciliation incomplete

	cmd, err := commands.NewRecordQADecisionCommand(
		task.ID(), tenantID, assembly.DecisionPass, "", "", kernel.NewUUID())
	require.NoError(t, err)

	taskRepo := new(ScanTaskRepo)
	uow := new(ScanUnitOfWork)
	factory := new(ScanUoWFactory)

	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("AssemblyTaskRepository").Return(taskRepo).Once(),
		taskRepo.On("Get", ctx, tenantID, task.ID()).Return(task, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	handler := commands.NewRecordQADecisionCommandHandler(factory)
	_, err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, assembly.ErrTaskNotReady)
	assert.Empty(t, task.Decisions())

	factory.AssertExpectations(t)
	uow.AssertExpectations(t)
	taskRepo.AssertExpectations(t)
}

func TestRecordQADecisionCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.RecordQADecisionCommand{} // not constructed properly
	factory := new(ScanUoWFactory)

	handler := commands.NewRecordQADecisionCommandHandler(factory)
	_, err := handler.Handle(ctx, cmd)

	require.Error(t, err)
}
