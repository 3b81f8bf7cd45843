// Package http exposes the workflow core over a thin echo-based REST
// adapter. Handlers translate requests into commands and queries, and map
// domain error kinds onto HTTP status codes; no workflow rules live here.
package http

import (
	"errors"
	"net/http"
	"time"

	"laundryops/internal/core/application/usecases/commands"
	"laundryops/internal/core/application/usecases/queries"
	"laundryops/internal/core/domain/model/assembly"
	"laundryops/internal/core/domain/model/kernel"
	"laundryops/internal/core/domain/model/order"
	"laundryops/internal/core/domain/services"
	"laundryops/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Header names carrying the request scope. Authentication itself happens
// upstream; the adapter trusts these values.
const (
	HeaderTenantID = "X-Tenant-ID"
	HeaderActorID  = "X-Actor-ID"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	createOrderHandler       commands.CreateOrderCommandHandler
	attemptTransitionHandler commands.AttemptTransitionCommandHandler
	createTaskHandler        commands.CreateAssemblyTaskCommandHandler
	scanItemHandler          commands.ScanItemCommandHandler
	recordQAHandler          commands.RecordQADecisionCommandHandler
	packOrderHandler         commands.PackOrderCommandHandler
	resolveExceptionHandler  commands.ResolveExceptionCommandHandler

	getOrderHistoryHandler   queries.GetOrderHistoryQueryHandler
	getOpenExceptionsHandler queries.GetOpenExceptionsQueryHandler
}

// NewServer creates a new HTTP server with the required command and query
// handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	attemptTransitionHandler commands.AttemptTransitionCommandHandler,
	createTaskHandler commands.CreateAssemblyTaskCommandHandler,
	scanItemHandler commands.ScanItemCommandHandler,
	recordQAHandler commands.RecordQADecisionCommandHandler,
	packOrderHandler commands.PackOrderCommandHandler,
	resolveExceptionHandler commands.ResolveExceptionCommandHandler,
	getOrderHistoryHandler queries.GetOrderHistoryQueryHandler,
	getOpenExceptionsHandler queries.GetOpenExceptionsQueryHandler,
) *Server {
	return &Server{
		createOrderHandler:       createOrderHandler,
		attemptTransitionHandler: attemptTransitionHandler,
		createTaskHandler:        createTaskHandler,
		scanItemHandler:          scanItemHandler,
		recordQAHandler:          recordQAHandler,
		packOrderHandler:         packOrderHandler,
		resolveExceptionHandler:  resolveExceptionHandler,
		getOrderHistoryHandler:   getOrderHistoryHandler,
		getOpenExceptionsHandler: getOpenExceptionsHandler,
	}
}

// RegisterRoutes wires the workflow endpoints onto the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.POST("/orders", s.CreateOrder)
	api.POST("/orders/:id/transition", s.AttemptTransition)
	api.GET("/orders/:id/history", s.GetOrderHistory)

	api.POST("/tasks", s.CreateTask)
	api.POST("/tasks/:id/scans", s.ScanItem)
	api.POST("/tasks/:id/qa", s.RecordQADecision)
	api.POST("/tasks/:id/pack", s.PackOrder)

	api.GET("/exceptions", s.GetOpenExceptions)
	api.POST("/exceptions/:id/resolve", s.ResolveException)
}

// CreateOrder handles POST /api/v1/orders.
func (s *Server) CreateOrder(ctx echo.Context) error {
	tenantID, actorErr := headerUUID(ctx, HeaderTenantID)
	if actorErr != nil {
		return badRequest(ctx, actorErr)
	}

	var req CreateOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, errors.New("invalid request body"))
	}

	items := make([]order.Item, 0, len(req.Items))
	for _, itemReq := range req.Items {
		itemID, err := kernel.UUIDFromString(itemReq.ItemID)
		if err != nil {
			return badRequest(ctx, err)
		}
		item, err := order.NewItem(
			itemID, itemReq.Barcode, itemReq.Description, itemReq.Quantity, itemReq.UnitPrice)
		if err != nil {
			return badRequest(ctx, err)
		}
		items = append(items, item)
	}

	cmd, err := commands.NewCreateOrderCommand(tenantID, items, time.Now().UTC(), req.ReadyByAt, req.Tax)
	if err != nil {
		return badRequest(ctx, err)
	}

	result, err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreateOrderResponse{
		Success: true,
		OrderID: result.OrderID.String(),
	})
}

// AttemptTransition handles POST /api/v1/orders/:id/transition.
func (s *Server) AttemptTransition(ctx echo.Context) error {
	tenantID, actorID, err := requestScope(ctx)
	if err != nil {
		return badRequest(ctx, err)
	}

	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, err)
	}

	var req TransitionRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, errors.New("invalid request body"))
	}

	target, err := parseStatus(req.Target)
	if err != nil {
		return badRequest(ctx, err)
	}

	cmd, err := commands.NewAttemptTransitionCommand(orderID, tenantID, target, actorID, req.Note)
	if err != nil {
		return badRequest(ctx, err)
	}

	result, err := s.attemptTransitionHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, TransitionResponse{
		Success: true,
		From:    result.From.String(),
		To:      result.To.String(),
		Changed: result.Changed,
	})
}

// CreateTask handles POST /api/v1/tasks.
func (s *Server) CreateTask(ctx echo.Context) error {
	tenantID, actorID, err := requestScope(ctx)
	if err != nil {
		return badRequest(ctx, err)
	}

	var req CreateTaskRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, errors.New("invalid request body"))
	}

	orderID, err := kernel.UUIDFromString(req.OrderID)
	if err != nil {
		return badRequest(ctx, err)
	}

	cmd, err := commands.NewCreateAssemblyTaskCommand(orderID, tenantID, actorID)
	if err != nil {
		return badRequest(ctx, err)
	}

	result, err := s.createTaskHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreateTaskResponse{
		Success: true,
		TaskID:  result.TaskID.String(),
	})
}

// ScanItem handles POST /api/v1/tasks/:id/scans.
func (s *Server) ScanItem(ctx echo.Context) error {
	tenantID, actorID, err := requestScope(ctx)
	if err != nil {
		return badRequest(ctx, err)
	}

	taskID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, err)
	}

	var req ScanRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, errors.New("invalid request body"))
	}

	cmd, err := commands.NewScanItemCommand(taskID, tenantID, req.Barcode, actorID)
	if err != nil {
		return badRequest(ctx, err)
	}

	result, err := s.scanItemHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	resp := ScanResponse{
		Success:           true,
		Outcome:           result.Outcome.String(),
		AllItemsProcessed: result.AllItemsProcessed,
	}
	if result.ItemID != nil {
		id := result.ItemID.String()
		resp.ItemID = &id
	}
	if result.ExceptionID != nil {
		id := result.ExceptionID.String()
		resp.ExceptionID = &id
	}

	return ctx.JSON(http.StatusOK, resp)
}

// RecordQADecision handles POST /api/v1/tasks/:id/qa.
func (s *Server) RecordQADecision(ctx echo.Context) error {
	tenantID, actorID, err := requestScope(ctx)
	if err != nil {
		return badRequest(ctx, err)
	}

	taskID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, err)
	}

	var req QADecisionRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, errors.New("invalid request body"))
	}

	decision, err := parseDecision(req.Decision)
	if err != nil {
		return badRequest(ctx, err)
	}

	cmd, err := commands.NewRecordQADecisionCommand(
		taskID, tenantID, decision, req.Note, req.PhotoRef, actorID)
	if err != nil {
		return badRequest(ctx, err)
	}

	result, err := s.recordQAHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	resp := QADecisionResponse{
		Success:    true,
		DecisionID: result.DecisionID.String(),
	}
	if result.ExceptionID != nil {
		id := result.ExceptionID.String()
		resp.ExceptionID = &id
	}

	return ctx.JSON(http.StatusOK, resp)
}

// PackOrder handles POST /api/v1/tasks/:id/pack.
func (s *Server) PackOrder(ctx echo.Context) error {
	tenantID, actorID, err := requestScope(ctx)
	if err != nil {
		return badRequest(ctx, err)
	}

	taskID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, err)
	}

	var req PackRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, errors.New("invalid request body"))
	}

	cmd, err := commands.NewPackOrderCommand(taskID, tenantID, req.PackagingType, req.Note, actorID)
	if err != nil {
		return badRequest(ctx, err)
	}

	result, err := s.packOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, PackResponse{
		Success:       true,
		PackingListID: result.PackingListID.String(),
		AlreadyPacked: result.AlreadyPacked,
	})
}

// ResolveException handles POST /api/v1/exceptions/:id/resolve.
func (s *Server) ResolveException(ctx echo.Context) error {
	tenantID, actorID, err := requestScope(ctx)
	if err != nil {
		return badRequest(ctx, err)
	}

	exceptionID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, err)
	}

	var req ResolveExceptionRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, errors.New("invalid request body"))
	}

	cmd, err := commands.NewResolveExceptionCommand(exceptionID, tenantID, req.Resolution, actorID)
	if err != nil {
		return badRequest(ctx, err)
	}

	if err = s.resolveExceptionHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, ResolveExceptionResponse{Success: true})
}

// GetOrderHistory handles GET /api/v1/orders/:id/history.
func (s *Server) GetOrderHistory(ctx echo.Context) error {
	tenantID, err := headerUUID(ctx, HeaderTenantID)
	if err != nil {
		return badRequest(ctx, err)
	}

	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, err)
	}

	query, err := queries.NewGetOrderHistoryQuery(orderID, tenantID)
	if err != nil {
		return badRequest(ctx, err)
	}

	entries, err := s.getOrderHistoryHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	resp := HistoryResponse{Success: true, Entries: make([]HistoryEntryResponse, 0, len(entries))}
	for _, entry := range entries {
		resp.Entries = append(resp.Entries, HistoryEntryResponse{
			ID:         entry.ID.String(),
			From:       entry.FromStatus,
			To:         entry.ToStatus,
			ActorID:    entry.ActorID.String(),
			Note:       entry.Note,
			Override:   entry.Override,
			OccurredAt: entry.OccurredAt,
		})
	}

	return ctx.JSON(http.StatusOK, resp)
}

// GetOpenExceptions handles GET /api/v1/exceptions.
func (s *Server) GetOpenExceptions(ctx echo.Context) error {
	tenantID, err := headerUUID(ctx, HeaderTenantID)
	if err != nil {
		return badRequest(ctx, err)
	}

	query, err := queries.NewGetOpenExceptionsQuery(tenantID)
	if err != nil {
		return badRequest(ctx, err)
	}

	exceptions, err := s.getOpenExceptionsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	resp := OpenExceptionsResponse{
		Success:    true,
		Exceptions: make([]OpenExceptionResponse, 0, len(exceptions)),
	}
	for _, exc := range exceptions {
		resp.Exceptions = append(resp.Exceptions, OpenExceptionResponse{
			ID:       exc.ID.String(),
			TaskID:   exc.TaskID.String(),
			OrderID:  exc.OrderID.String(),
			Kind:     exc.Kind,
			RaisedAt: exc.RaisedAt,
		})
	}

	return ctx.JSON(http.StatusOK, resp)
}

// requestScope extracts the tenant and actor identifiers from the headers.
func requestScope(ctx echo.Context) (tenantID, actorID kernel.UUID, err error) {
	tenantID, err = headerUUID(ctx, HeaderTenantID)
	if err != nil {
		return kernel.UUID{}, kernel.UUID{}, err
	}

	actorID, err = headerUUID(ctx, HeaderActorID)
	if err != nil {
		return kernel.UUID{}, kernel.UUID{}, err
	}

	return tenantID, actorID, nil
}

func headerUUID(ctx echo.Context, header string) (kernel.UUID, error) {
	value := ctx.Request().Header.Get(header)
	if value == "" {
		return kernel.UUID{}, errs.NewValueIsRequiredError(header + " header")
	}
	return kernel.UUIDFromString(value)
}

// parseStatus converts a status name from the wire into the domain enum.
func parseStatus(name string) (order.Status, error) {
	for _, status := range []order.Status{
		order.Draft, order.Intake, order.Preparation, order.Sorting,
		order.Washing, order.Finishing, order.Assembly, order.QA,
		order.Packing, order.Ready, order.OutForDelivery, order.Delivered,
		order.Closed, order.Cancelled,
	} {
		if status.String() == name {
			return status, nil
		}
	}
	return order.Unknown, errs.NewValueIsInvalidError("target status " + name)
}

// parseDecision converts a decision name from the wire into the domain enum.
func parseDecision(name string) (assembly.DecisionType, error) {
	switch name {
	case assembly.DecisionPass.String():
		return assembly.DecisionPass, nil
	case assembly.DecisionFail.String():
		return assembly.DecisionFail, nil
	default:
		return assembly.DecisionUnknown, errs.NewValueIsInvalidError("decision " + name)
	}
}

func badRequest(ctx echo.Context, err error) error {
	return ctx.JSON(http.StatusBadRequest, ErrorResponse{Success: false, Error: err.Error()})
}

// writeError maps domain error kinds onto HTTP status codes. Gate refusals
// additionally carry the full blocker list so clients can show every unmet
// condition at once.
func writeError(ctx echo.Context, err error) error {
	var gateErr *services.GateBlockedError
	if errors.As(err, &gateErr) {
		return ctx.JSON(http.StatusConflict, ErrorResponse{
			Success:  false,
			Error:    gateErr.Error(),
			Blockers: gateErr.Blockers,
		})
	}

	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		status = http.StatusNotFound
	case errors.Is(err, order.ErrInvalidTransition),
		errors.Is(err, errs.ErrConcurrentConflict),
		errors.Is(err, assembly.ErrTaskAlreadyActive),
		errors.Is(err, assembly.ErrExceptionAlreadyResolved):
		status = http.StatusConflict
	case errors.Is(err, assembly.ErrTaskNotReady):
		status = http.StatusUnprocessableEntity
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		status = http.StatusBadRequest
	}

	return ctx.JSON(status, ErrorResponse{Success: false, Error: err.Error()})
}
