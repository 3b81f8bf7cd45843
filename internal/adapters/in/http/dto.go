package http

import "time"

// Request bodies.

// CreateOrderRequest captures a new order with its line items.
type CreateOrderRequest struct {
	Items     []OrderItemRequest `json:"items"`
	ReadyByAt *time.Time         `json:"ready_by_at,omitempty"`
	Tax       int64              `json:"tax"`
}

// OrderItemRequest is one line item of a new order.
type OrderItemRequest struct {
	ItemID      string `json:"item_id"`
	Barcode     string `json:"barcode"`
	Description string `json:"description"`
	Quantity    int    `json:"quantity"`
	UnitPrice   int64  `json:"unit_price"`
}

// TransitionRequest asks to move an order to a target status.
type TransitionRequest struct {
	Target string `json:"target"`
	Note   string `json:"note,omitempty"`
}

// CreateTaskRequest opens an assembly task for an order.
type CreateTaskRequest struct {
	OrderID string `json:"order_id"`
}

// ScanRequest applies one barcode scan to an assembly task.
type ScanRequest struct {
	Barcode string `json:"barcode"`
}

// QADecisionRequest records a quality inspection verdict.
type QADecisionRequest struct {
	Decision string `json:"decision"`
	Note     string `json:"note,omitempty"`
	PhotoRef string `json:"photo_ref,omitempty"`
}

// PackRequest generates a packing list for a completed task.
type PackRequest struct {
	PackagingType string `json:"packaging_type"`
	Note          string `json:"note,omitempty"`
}

// ResolveExceptionRequest closes an open exception.
type ResolveExceptionRequest struct {
	Resolution string `json:"resolution"`
}

// Response bodies. Every handler answers with a success flag; failures add
// the error message and, for gate refusals, the blocker list.

// ErrorResponse is the envelope for failed requests.
type ErrorResponse struct {
	Success  bool     `json:"success"`
	Error    string   `json:"error"`
	Blockers []string `json:"blockers,omitempty"`
}

// CreateOrderResponse reports the captured order.
type CreateOrderResponse struct {
	Success bool   `json:"success"`
	OrderID string `json:"order_id"`
}

// TransitionResponse reports a transition outcome.
type TransitionResponse struct {
	Success bool   `json:"success"`
	From    string `json:"from"`
	To      string `json:"to"`
	Changed bool   `json:"changed"`
}

// CreateTaskResponse reports the opened assembly task.
type CreateTaskResponse struct {
	Success bool   `json:"success"`
	TaskID  string `json:"task_id"`
}

// ScanResponse reports one scan outcome.
type ScanResponse struct {
	Success           bool    `json:"success"`
	Outcome           string  `json:"outcome"`
	ItemID            *string `json:"item_id,omitempty"`
	AllItemsProcessed bool    `json:"all_items_processed"`
	ExceptionID       *string `json:"exception_id,omitempty"`
}

// QADecisionResponse reports the recorded decision.
type QADecisionResponse struct {
	Success     bool    `json:"success"`
	DecisionID  string  `json:"decision_id"`
	ExceptionID *string `json:"exception_id,omitempty"`
}

// PackResponse reports the packing list, fresh or pre-existing.
type PackResponse struct {
	Success       bool   `json:"success"`
	PackingListID string `json:"packing_list_id"`
	AlreadyPacked bool   `json:"already_packed"`
}

// ResolveExceptionResponse reports a completed resolution.
type ResolveExceptionResponse struct {
	Success bool `json:"success"`
}

// HistoryEntryResponse is one status transition record.
type HistoryEntryResponse struct {
	ID         string    `json:"id"`
	From       string    `json:"from"`
	To         string    `json:"to"`
	ActorID    string    `json:"actor_id"`
	Note       string    `json:"note,omitempty"`
	Override   bool      `json:"override"`
	OccurredAt time.Time `json:"occurred_at"`
}

// HistoryResponse is an order's transition timeline.
type HistoryResponse struct {
	Success bool                   `json:"success"`
	Entries []HistoryEntryResponse `json:"entries"`
}

// OpenExceptionResponse is one open exception work item.
type OpenExceptionResponse struct {
	ID       string    `json:"id"`
	TaskID   string    `json:"task_id"`
	OrderID  string    `json:"order_id"`
	Kind     string    `json:"kind"`
	RaisedAt time.Time `json:"raised_at"`
}

// OpenExceptionsResponse is the tenant's open exception queue.
type OpenExceptionsResponse struct {
	Success    bool                    `json:"success"`
	Exceptions []OpenExceptionResponse `json:"exceptions"`
}
