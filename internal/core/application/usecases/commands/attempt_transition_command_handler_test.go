package commands_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"laundryops/internal/core/application/usecases/commands"
	"laundryops/internal/core/domain/model/assembly"
	"laundryops/internal/core/domain/model/kernel"
	"laundryops/internal/core/domain/model/order"
	"laundryops/internal/core/domain/services"
	"laundryops/internal/core/ports"
	"laundryops/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type TransitionOrderRepo struct{ mock.Mock }

func (m *TransitionOrderRepo) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *TransitionOrderRepo) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *TransitionOrderRepo) Get(ctx context.Context, tenantID, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, tenantID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *TransitionOrderRepo) GetAllInStatus(
	ctx context.Context, tenantID kernel.UUID, status order.Status,
) ([]*order.Order, error) {
	args := m.Called(ctx, tenantID, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

type TransitionHistoryRepo struct{ mock.Mock }

func (m *TransitionHistoryRepo) Add(
	ctx context.Context, tenantID kernel.UUID, entry order.StatusHistoryEntry,
) error {
	args := m.Called(ctx, tenantID, entry)
	return args.Error(0)
}

func (m *TransitionHistoryRepo) ListByOrder(
	ctx context.Context, tenantID, orderID kernel.UUID,
) ([]order.StatusHistoryEntry, error) {
	args := m.Called(ctx, tenantID, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]order.StatusHistoryEntry), args.Error(1)
}

type TransitionTaskRepo struct{ mock.Mock }

func (m *TransitionTaskRepo) Add(ctx context.Context, t *assembly.Task) error {
	args := m.Called(ctx, t)
	return args.Error(0)
}

func (m *TransitionTaskRepo) Update(ctx context.Context, t *assembly.Task) error {
	args := m.Called(ctx, t)
	return args.Error(0)
}

func (m *TransitionTaskRepo) Get(ctx context.Context, tenantID, id kernel.UUID) (*assembly.Task, error) {
	args := m.Called(ctx, tenantID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*assembly.Task), args.Error(1)
}

func (m *TransitionTaskRepo) GetActiveByOrder(
	ctx context.Context, tenantID, orderID kernel.UUID,
) (*assembly.Task, error) {
	args := m.Called(ctx, tenantID, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*assembly.Task), args.Error(1)
}

func (m *TransitionTaskRepo) GetLatestByOrder(
	ctx context.Context, tenantID, orderID kernel.UUID,
) (*assembly.Task, error) {
	args := m.Called(ctx, tenantID, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*assembly.Task), args.Error(1)
}

type TransitionUnitOfWork struct{ mock.Mock }

func (m *TransitionUnitOfWork) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *TransitionUnitOfWork) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *TransitionUnitOfWork) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *TransitionUnitOfWork) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *TransitionUnitOfWork) StatusHistoryRepository() ports.StatusHistoryRepository {
	args := m.Called()
	return args.Get(0).(ports.StatusHistoryRepository)
}

func (m *TransitionUnitOfWork) AssemblyTaskRepository() ports.AssemblyTaskRepository {
	args := m.Called()
	return args.Get(0).(ports.AssemblyTaskRepository)
}

type TransitionUoWFactory struct{ mock.Mock }

func (m *TransitionUoWFactory) Create() commands.TransitionUoW {
	args := m.Called()
	return args.Get(0).(commands.TransitionUoW)
}

func restoreTransitionTestOrder(t *testing.T, tenantID kernel.UUID, status order.Status) *order.Order {
	t.Helper()
	shirt, err := order.NewItem(kernel.NewUUID(), "BC-001", "shirt", 1, 450)
	require.NoError(t, err)
	o, err := order.RestoreOrder(
		kernel.NewUUID(), tenantID, status,
		[]order.Item{shirt}, time.Now().UTC(), nil, 0, 2)
	require.NoError(t, err)
	return o
}

func TestAttemptTransitionCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	tenantID := kernel.NewUUID()
	actorID := kernel.NewUUID()
	testOrder := restoreTransitionTestOrder(t, tenantID, order.Draft)

	cmd, err := commands.NewAttemptTransitionCommand(
		testOrder.ID(), tenantID, order.Intake, actorID, "counter intake")
	require.NoError(t, err)

	orderRepo := new(TransitionOrderRepo)
	historyRepo := new(TransitionHistoryRepo)
	taskRepo := new(TransitionTaskRepo)
	uow := new(TransitionUnitOfWork)
	factory := new(TransitionUoWFactory)

	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, tenantID, testOrder.ID()).Return(testOrder, nil).Once(),
		uow.On("AssemblyTaskRepository").Return(taskRepo).Once(),
		taskRepo.On("GetLatestByOrder", ctx, tenantID, testOrder.ID()).
			Return(nil, errs.NewObjectNotFoundError("task", testOrder.ID().String())).Once(),
		orderRepo.On("Update", ctx, testOrder).Return(nil).Once(),
		uow.On("StatusHistoryRepository").Return(historyRepo).Once(),
		historyRepo.On("Add", ctx, tenantID, mock.AnythingOfType("order.StatusHistoryEntry")).
			Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	handler := commands.NewAttemptTransitionCommandHandler(
		factory, services.NewGateEvaluator(services.DefaultConfig()))
	result, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, order.Draft, result.From)
	assert.Equal(t, order.Intake, result.To)
	assert.True(t, result.Changed)
	assert.Equal(t, order.Intake, testOrder.Status())

	entry := historyRepo.Calls[0].Arguments.Get(2).(order.StatusHistoryEntry)
	assert.Equal(t, order.Draft, entry.From())
	assert.Equal(t, order.Intake, entry.To())
	assert.Equal(t, "counter intake", entry.Note())
	assert.False(t, entry.IsOverride())

	factory.AssertExpectations(t)
	uow.AssertExpectations(t)
	orderRepo.AssertExpectations(t)
	historyRepo.AssertExpectations(t)
	taskRepo.AssertExpectations(t)
}

func TestAttemptTransitionCommandHandler_Handle_SelfTransitionIsNoOp(t *testing.T) {
	ctx := t.Context()
	tenantID := kernel.NewUUID()
	testOrder := restoreTransitionTestOrder(t, tenantID, order.Washing)

	cmd, err := commands.NewAttemptTransitionCommand(
		testOrder.ID(), tenantID, order.Washing, kernel.NewUUID(), "")
	require.NoError(t, err)

	orderRepo := new(TransitionOrderRepo)
	uow := new(TransitionUnitOfWork)
	factory := new(TransitionUoWFactory)

	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, tenantID, testOrder.ID()).Return(testOrder, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	handler := commands.NewAttemptTransitionCommandHandler(
		factory, services.NewGateEvaluator(services.DefaultConfig()))
	result, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.False(t, result.Changed)
	assert.Equal(t, order.Washing, result.From)
	assert.Equal(t, order.Washing, result.To)

	// Nothing is written: no Update, no history append, no Commit.
	factory.AssertExpectations(t)
	uow.AssertExpectations(t)
	orderRepo.AssertExpectations(t)
}

func TestAttemptTransitionCommandHandler_Handle_InvalidTransition(t *testing.T) {
	ctx := t.Context()
	tenantID := kernel.NewUUID()
	testOrder := restoreTransitionTestOrder(t, tenantID, order.Draft)

	cmd, err := commands.NewAttemptTransitionCommand(
		testOrder.ID(), tenantID, order.Washing, kernel.NewUUID(), "")
	require.NoError(t, err)

	orderRepo := new(TransitionOrderRepo)
	uow := new(TransitionUnitOfWork)
	factory := new(TransitionUoWFactory)

	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, tenantID, testOrder.ID()).Return(testOrder, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	handler := commands.NewAttemptTransitionCommandHandler(
		factory, services.NewGateEvaluator(services.DefaultConfig()))
	_, err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, order.ErrInvalidTransition)
	assert.Equal(t, order.Draft, testOrder.Status(), "order stays unchanged")

	factory.AssertExpectations(t)
	uow.AssertExpectations(t)
	orderRepo.AssertExpectations(t)
}

func TestAttemptTransitionCommandHandler_Handle_GateBlocked(t *testing.T) {
	ctx := t.Context()
	tenantID := kernel.NewUUID()
	testOrder := restoreTransitionTestOrder(t, tenantID, order.Assembly)

	cmd, err := commands.NewAttemptTransitionCommand(
		testOrder.ID(), tenantID, order.QA, kernel.NewUUID(), "")
	require.NoError(t, err)

	orderRepo := new(TransitionOrderRepo)
	taskRepo := new(TransitionTaskRepo)
	uow := new(TransitionUnitOfWork)
	factory := new(TransitionUoWFactory)

	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, tenantID, testOrder.ID()).Return(testOrder, nil).Once(),
		uow.On("AssemblyTaskRepository").Return(taskRepo).Once(),
		taskRepo.On("GetLatestByOrder", ctx, tenantID, testOrder.ID()).
			Return(nil, errs.NewObjectNotFoundError("task", testOrder.ID().String())).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	handler := commands.NewAttemptTransitionCommandHandler(
		factory, services.NewGateEvaluator(services.DefaultConfig()))
	_, err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, services.ErrGateBlocked)

	var gateErr *services.GateBlockedError
	require.ErrorAs(t, err, &gateErr)
	assert.Equal(t, order.QA, gateErr.Target)
	require.Len(t, gateErr.Blockers, 1)
	assert.Contains(t, gateErr.Blockers[0], "no assembly task")
	assert.Equal(t, order.Assembly, testOrder.Status(), "order stays unchanged")

	factory.AssertExpectations(t)
	uow.AssertExpectations(t)
	orderRepo.AssertExpectations(t)
	taskRepo.AssertExpectations(t)
}

func TestAttemptTransitionCommandHandler_Handle_AdvisoryModeAllowsBlockedMove(t *testing.T) {
	ctx := t.Context()
	tenantID := kernel.NewUUID()
	testOrder := restoreTransitionTestOrder(t, tenantID, order.Assembly)

	cmd, err := commands.NewAttemptTransitionCommand(
		testOrder.ID(), tenantID, order.QA, kernel.NewUUID(), "")
	require.NoError(t, err)

	orderRepo := new(TransitionOrderRepo)
	historyRepo := new(TransitionHistoryRepo)
	taskRepo := new(TransitionTaskRepo)
	uow := new(TransitionUnitOfWork)
	factory := new(TransitionUoWFactory)

	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, tenantID, testOrder.ID()).Return(testOrder, nil).Once(),
		uow.On("AssemblyTaskRepository").Return(taskRepo).Once(),
		taskRepo.On("GetLatestByOrder", ctx, tenantID, testOrder.ID()).
			Return(nil, errs.NewObjectNotFoundError("task", testOrder.ID().String())).Once(),
		orderRepo.On("Update", ctx, testOrder).Return(nil).Once(),
		uow.On("StatusHistoryRepository").Return(historyRepo).Once(),
		historyRepo.On("Add", ctx, tenantID, mock.AnythingOfType("order.StatusHistoryEntry")).
			Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	handler := commands.NewAttemptTransitionCommandHandler(
		factory, services.NewGateEvaluator(services.Config{EnforceGates: false}))
	result, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.True(t, result.Changed)
	assert.Equal(t, order.QA, testOrder.Status())

	factory.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestAttemptTransitionCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.AttemptTransitionCommand{} // not constructed properly
	factory := new(TransitionUoWFactory)

	handler := commands.NewAttemptTransitionCommandHandler(
		factory, services.NewGateEvaluator(services.DefaultConfig()))
	_, err := handler.Handle(ctx, cmd)

	require.Error(t, err)
}

func TestAttemptTransitionCommandHandler_Handle_UpdateConflict(t *testing.T) {
	ctx := t.Context()
	tenantID := kernel.NewUUID()
	testOrder := restoreTransitionTestOrder(t, tenantID, order.Draft)

	cmd, err := commands.NewAttemptTransitionCommand(
		testOrder.ID(), tenantID, order.Intake, kernel.NewUUID(), "")
	require.NoError(t, err)

	orderRepo := new(TransitionOrderRepo)
	taskRepo := new(TransitionTaskRepo)
	uow := new(TransitionUnitOfWork)
	factory := new(TransitionUoWFactory)

	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, tenantID, testOrder.ID()).Return(testOrder, nil).Once(),
		uow.On("AssemblyTaskRepository").Return(taskRepo).Once(),
		taskRepo.On("GetLatestByOrder", ctx, tenantID, testOrder.ID()).
			Return(nil, errs.NewObjectNotFoundError("task", testOrder.ID().String())).Once(),
		orderRepo.On("Update", ctx, testOrder).
			Return(errs.NewConcurrentConflictError("order", testOrder.ID().String())).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	handler := commands.NewAttemptTransitionCommandHandler(
		factory, services.NewGateEvaluator(services.DefaultConfig()))
	_, err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	assert.True(t, errors.Is(err, errs.ErrConcurrentConflict))

	factory.AssertExpectations(t)
	uow.AssertExpectations(t)
	orderRepo.AssertExpectations(t)
}
