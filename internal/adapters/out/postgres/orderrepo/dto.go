// Package orderrepo provides data transfer objects and mapping functions for
// order persistence. It implements the repository pattern for the order
// aggregate and its append-only status history, handling the conversion
// between domain entities and database rows.
package orderrepo

import (
	"time"

	"laundryops/internal/core/domain/model/kernel"
	"laundryops/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Line items live in their own table and are loaded with the order; the
// version column carries the optimistic-concurrency precondition.
type OrderDTO struct {
	ID         uuid.UUID  `gorm:"type:uuid;primaryKey"`
	TenantID   uuid.UUID  `gorm:"type:uuid;index"`
	Status     int        `gorm:"index"`
	ReceivedAt time.Time
	ReadyByAt  *time.Time
	Tax        int64
	Version    int
	Items      []ItemDTO `gorm:"foreignKey:OrderID;references:ID"`
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// ItemDTO represents one order line item. Items are written once at order
// creation and never updated.
type ItemDTO struct {
	OrderID     uuid.UUID `gorm:"type:uuid;primaryKey"`
	ItemID      uuid.UUID `gorm:"type:uuid;primaryKey"`
	Barcode     string
	Description string
	Quantity    int
	UnitPrice   int64
}

// TableName specifies the database table name for order line items.
func (ItemDTO) TableName() string {
	return "order_items"
}

// StatusHistoryDTO represents one status transition record. Rows are inserted
// in the same transaction as the status update they record and never touched
// again.
type StatusHistoryDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	TenantID   uuid.UUID `gorm:"type:uuid;index"`
	OrderID    uuid.UUID `gorm:"type:uuid;index"`
	FromStatus int
	ToStatus   int
	ActorID    uuid.UUID `gorm:"type:uuid"`
	Note       string
	Override   bool
	OccurredAt time.Time
}

// TableName specifies the database table name for status history entries.
func (StatusHistoryDTO) TableName() string {
	return "status_history"
}

// fromDomain converts an order aggregate to its database representation.
func fromDomain(o *order.Order) OrderDTO {
	items := make([]ItemDTO, 0, len(o.Items()))
	for _, item := range o.Items() {
		items = append(items, ItemDTO{
			OrderID:     o.ID().Bytes(),
			ItemID:      item.ItemID().Bytes(),
			Barcode:     item.Barcode(),
			Description: item.Description(),
			Quantity:    item.Quantity(),
			UnitPrice:   item.UnitPrice(),
		})
	}

	return OrderDTO{
		ID:         o.ID().Bytes(),
		TenantID:   o.TenantID().Bytes(),
		Status:     int(o.Status()),
		ReceivedAt: o.ReceivedAt(),
		ReadyByAt:  o.ReadyByAt(),
		Tax:        o.Tax(),
		Version:    o.Version(),
		Items:      items,
	}
}

// toDomain converts a database DTO to an order aggregate using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	tenantID, err := kernel.UUIDFromBytes(dto.TenantID[:])
	if err != nil {
		return nil, err
	}

	items := make([]order.Item, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		itemID, itemErr := kernel.UUIDFromBytes(itemDTO.ItemID[:])
		if itemErr != nil {
			return nil, itemErr
		}

		item, itemErr := order.NewItem(
			itemID, itemDTO.Barcode, itemDTO.Description, itemDTO.Quantity, itemDTO.UnitPrice)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	return order.RestoreOrder(
		id, tenantID, order.Status(dto.Status), items,
		dto.ReceivedAt, dto.ReadyByAt, dto.Tax, dto.Version)
}

// historyFromDomain converts a status history entry to its database
// representation under the given tenant.
func historyFromDomain(tenantID kernel.UUID, entry order.StatusHistoryEntry) StatusHistoryDTO {
	return StatusHistoryDTO{
		ID:         entry.ID().Bytes(),
		TenantID:   tenantID.Bytes(),
		OrderID:    entry.OrderID().Bytes(),
		FromStatus: int(entry.From()),
		ToStatus:   int(entry.To()),
		ActorID:    entry.ActorID().Bytes(),
		Note:       entry.Note(),
		Override:   entry.IsOverride(),
		OccurredAt: entry.At(),
	}
}

// historyToDomain converts a database DTO to a status history entry.
func historyToDomain(dto StatusHistoryDTO) (order.StatusHistoryEntry, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return order.StatusHistoryEntry{}, err
	}

	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return order.StatusHistoryEntry{}, err
	}

	actorID, err := kernel.UUIDFromBytes(dto.ActorID[:])
	if err != nil {
		return order.StatusHistoryEntry{}, err
	}

	return order.RestoreStatusHistoryEntry(
		id, orderID,
		order.Status(dto.FromStatus), order.Status(dto.ToStatus),
		actorID, dto.OccurredAt, dto.Note, dto.Override)
}
