package order

import (
	"errors"
	"fmt"

	"distribution/internal/core/domain/model/kernel"
	"distribution/internal/pkg/errs"
)

// ErrItemIsNotConstructed is returned when an Item instance was not created
// through the NewItem or RestoreItem factory methods.
var ErrItemIsNotConstructed = errors.New("Item must be created via NewItem constructor")

// Item is a single order line: a product reference and a quantity.
// Cost and selling prices are unset until the admin prices the order;
// they are always set together, and the line total is derived as
// quantity × selling price at that moment.
type Item struct {
	productID    kernel.UUID
	quantity     int
	costPrice    *kernel.Money
	sellingPrice *kernel.Money
	totalPrice   kernel.Money

	isConstructed bool
}

// NewItem creates an unpriced order line. Quantity must be positive.
func NewItem(productID kernel.UUID, quantity int) (*Item, error) {
	item := &Item{
		totalPrice:    kernel.ZeroMoney(),
		isConstructed: true,
	}

	if err := errors.Join(
		item.setProductID(productID),
		item.setQuantity(quantity),
	); err != nil {
		return nil, err
	}

	return item, nil
}

// RestoreItem reconstructs an order line from persistence, including pricing
// when present. Cost and selling price must be both set or both nil.
func RestoreItem(
	productID kernel.UUID,
	quantity int,
	costPrice, sellingPrice *kernel.Money,
	totalPrice kernel.Money,
) (*Item, error) {
	item, err := NewItem(productID, quantity)
	if err != nil {
		return nil, err
	}

	if (costPrice == nil) != (sellingPrice == nil) {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"item pricing",
			fmt.Errorf("cost and selling price must be set together for product %s", productID),
		)
	}

	if costPrice != nil {
		if err = errors.Join(costPrice.Validate(), sellingPrice.Validate(), totalPrice.Validate()); err != nil {
			return nil, err
		}
		item.costPrice = costPrice
		item.sellingPrice = sellingPrice
		item.totalPrice = totalPrice
	}

	return item, nil
}

// Validate ensures the Item was created through a constructor.
func (i *Item) Validate() error {
	if i == nil || !i.isConstructed {
		return ErrItemIsNotConstructed
	}
	return nil
}

// ProductID returns the external product catalog reference.
func (i *Item) ProductID() kernel.UUID {
	return i.productID
}

// Quantity returns the ordered quantity.
func (i *Item) Quantity() int {
	return i.quantity
}

// CostPrice returns the purchase price per unit, or nil while unpriced.
func (i *Item) CostPrice() *kernel.Money {
	return i.costPrice
}

// SellingPrice returns the sale price per unit, or nil while unpriced.
func (i *Item) SellingPrice() *kernel.Money {
	return i.sellingPrice
}

// TotalPrice returns quantity × selling price, or zero while unpriced.
func (i *Item) TotalPrice() kernel.Money {
	return i.totalPrice
}

// IsPriced reports whether the line carries pricing.
func (i *Item) IsPriced() bool {
	return i.costPrice != nil && i.sellingPrice != nil
}

// applyPricing sets both prices and derives the line total.
// Callers must have validated the whole pricing payload beforehand so the
// operation stays atomic across all lines of an order.
func (i *Item) applyPricing(costPrice, sellingPrice kernel.Money) {
	i.costPrice = &costPrice
	i.sellingPrice = &sellingPrice
	i.totalPrice = sellingPrice.MulInt(i.quantity)
}

func (i *Item) setProductID(productID kernel.UUID) error {
	if err := productID.Validate(); err != nil {
		return err
	}
	i.productID = productID
	return nil
}

func (i *Item) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"quantity", fmt.Errorf("%d is not greater than 0", quantity))
	}
	i.quantity = quantity
	return nil
}
