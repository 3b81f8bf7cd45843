package order

import (
	"errors"
	"fmt"

	"laundryops/internal/core/domain/model/kernel"
	"laundryops/internal/pkg/errs"
)

// Item is a line item of an order: one garment type with its quantity and
// unit price. Items are the source the assembly manifest is snapshotted
// from, so every item carries the barcode its physical pieces are tagged
// with.
//
// Item is an immutable value object; construct through NewItem.
type Item struct {
	itemID      kernel.UUID
	barcode     string
	description string
	quantity    int
	unitPrice   int64 // minor currency units
}

// NewItem creates a validated order line item.
func NewItem(itemID kernel.UUID, barcode, description string, quantity int, unitPrice int64) (Item, error) {
	if err := itemID.Validate(); err != nil {
		return Item{}, err
	}
	if barcode == "" {
		return Item{}, errs.NewValueIsRequiredError("barcode")
	}
	if quantity <= 0 {
		return Item{}, errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not greater than 0", quantity))
	}
	if unitPrice < 0 {
		return Item{}, errs.NewValueIsInvalidErrorWithCause("unitPrice",
			fmt.Errorf("%d is negative", unitPrice))
	}

	return Item{
		itemID:      itemID,
		barcode:     barcode,
		description: description,
		quantity:    quantity,
		unitPrice:   unitPrice,
	}, nil
}

// ItemID returns the catalog identifier of the line item.
func (i Item) ItemID() kernel.UUID {
	return i.itemID
}

// Barcode returns the tag barcode shared by the item's physical pieces.
func (i Item) Barcode() string {
	return i.barcode
}

// Description returns the human-readable item description.
func (i Item) Description() string {
	return i.description
}

// Quantity returns the number of physical pieces for this line.
func (i Item) Quantity() int {
	return i.quantity
}

// UnitPrice returns the price per piece in minor currency units.
func (i Item) UnitPrice() int64 {
	return i.unitPrice
}

// Subtotal returns quantity times unit price.
func (i Item) Subtotal() int64 {
	return int64(i.quantity) * i.unitPrice
}

// validateItems rejects an empty item list and duplicate barcodes, which
// would make scan reconciliation ambiguous.
func validateItems(items []Item) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("items")
	}

	seen := make(map[string]struct{}, len(items))
	for _, item := range items {
		if _, ok := seen[item.barcode]; ok {
			return errs.NewValueIsInvalidErrorWithCause("items",
				errors.New("duplicate barcode "+item.barcode))
		}
		seen[item.barcode] = struct{}{}
	}
	return nil
}
