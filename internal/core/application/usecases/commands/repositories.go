// Package commands contains the write operations of the workflow core.
// Implements the Command pattern: each operation is a validated command
// object handled by a dedicated handler that manages one transaction.
package commands

import (
	"context"

	"laundryops/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command
// handlers. Each handler depends on the narrowest interface covering the
// repositories it touches.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to the order repository within a
	// transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// HistoryRepoFactory provides access to the status history repository
	// within a transaction.
	HistoryRepoFactory interface {
		StatusHistoryRepository() ports.StatusHistoryRepository
	}

	// TaskRepoFactory provides access to the assembly task repository
	// within a transaction.
	TaskRepoFactory interface {
		AssemblyTaskRepository() ports.AssemblyTaskRepository
	}

	// ExceptionRepoFactory provides access to the exception repository
	// within a transaction.
	ExceptionRepoFactory interface {
		ExceptionRepository() ports.ExceptionRepository
	}

	// PackingRepoFactory provides access to the packing list repository
	// within a transaction.
	PackingRepoFactory interface {
		PackingListRepository() ports.PackingListRepository
	}

	// RouteRepoFactory provides access to the route assignment repository
	// within a transaction.
	RouteRepoFactory interface {
		RouteAssignmentRepository() ports.RouteAssignmentRepository
	}

	// OrderUoW manages order creation.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates OrderUoW instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// TransitionUoW manages the attempt-transition unit: order mutation,
	// history append, and the assembly state gate evaluation reads.
	TransitionUoW interface {
		TxManager
		OrderRepoFactory
		HistoryRepoFactory
		TaskRepoFactory
	}

	// TransitionUoWFactory creates TransitionUoW instances.
	TransitionUoWFactory interface {
		Create() TransitionUoW
	}

	// CreateTaskUoW manages assembly task creation.
	CreateTaskUoW interface {
		TxManager
		OrderRepoFactory
		TaskRepoFactory
	}

	// CreateTaskUoWFactory creates CreateTaskUoW instances.
	CreateTaskUoWFactory interface {
		Create() CreateTaskUoW
	}

	// AssemblyUoW manages scan and QA operations: task mutation plus
	// exception raising.
	AssemblyUoW interface {
		TxManager
		TaskRepoFactory
		ExceptionRepoFactory
	}

	// AssemblyUoWFactory creates AssemblyUoW instances.
	AssemblyUoWFactory interface {
		Create() AssemblyUoW
	}

	// ExceptionUoW manages exception resolution.
	ExceptionUoW interface {
		TxManager
		ExceptionRepoFactory
	}

	// ExceptionUoWFactory creates ExceptionUoW instances.
	ExceptionUoWFactory interface {
		Create() ExceptionUoW
	}

	// PackUoW manages packing list generation.
	PackUoW interface {
		TxManager
		TaskRepoFactory
		PackingRepoFactory
	}

	// PackUoWFactory creates PackUoW instances.
	PackUoWFactory interface {
		Create() PackUoW
	}

	// RouteUoW manages route assignment.
	RouteUoW interface {
		TxManager
		OrderRepoFactory
		RouteRepoFactory
	}

	// RouteUoWFactory creates RouteUoW instances.
	RouteUoWFactory interface {
		Create() RouteUoW
	}
)
