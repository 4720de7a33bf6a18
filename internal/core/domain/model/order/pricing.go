package order

import (
	"fmt"

	"distribution/internal/core/domain/model/kernel"
)

// ItemPricing is the per-product price input an admin supplies when pricing
// a confirmed order. Cost and selling prices travel together; an entry
// missing either is rejected.
type ItemPricing struct {
	ProductID    kernel.UUID
	CostPrice    kernel.Money
	SellingPrice kernel.Money
}

// PriceItems applies a pricing payload to a set of order lines and returns
// the derived order total.
//
// The whole payload is validated before any line is touched: every line must
// be matched by exactly one entry, and every entry must carry valid money
// values. On any violation no item is modified and ErrInvalidPricing is
// returned - pricing is atomic across the order.
//
// Line totals are quantity × selling price rounded half-up to two decimal
// places; the order total is their sum. The computation is pure and
// deterministic: identical inputs always produce identical output.
func PriceItems(items []*Item, pricing []ItemPricing) (kernel.Money, error) {
	if len(items) == 0 {
		return kernel.Money{}, fmt.Errorf("%w: order has no items", ErrInvalidPricing)
	}
	if len(pricing) == 0 {
		return kernel.Money{}, fmt.Errorf("%w: pricing payload is empty", ErrInvalidPricing)
	}

	priceByProduct := make(map[kernel.UUID]ItemPricing, len(pricing))
	for _, entry := range pricing {
		if err := entry.ProductID.Validate(); err != nil {
			return kernel.Money{}, fmt.Errorf("%w: %w", ErrInvalidPricing, err)
		}
		if err := entry.CostPrice.Validate(); err != nil {
			return kernel.Money{}, fmt.Errorf(
				"%w: cost price for product %s: %w", ErrInvalidPricing, entry.ProductID, err)
		}
		if err := entry.SellingPrice.Validate(); err != nil {
			return kernel.Money{}, fmt.Errorf(
				"%w: selling price for product %s: %w", ErrInvalidPricing, entry.ProductID, err)
		}
		if _, exists := priceByProduct[entry.ProductID]; exists {
			return kernel.Money{}, fmt.Errorf(
				"%w: duplicate pricing entry for product %s", ErrInvalidPricing, entry.ProductID)
		}
		priceByProduct[entry.ProductID] = entry
	}

	for _, item := range items {
		if err := item.Validate(); err != nil {
			return kernel.Money{}, fmt.Errorf("%w: %w", ErrInvalidPricing, err)
		}
		if _, ok := priceByProduct[item.ProductID()]; !ok {
			return kernel.Money{}, fmt.Errorf(
				"%w: no pricing entry for product %s", ErrInvalidPricing, item.ProductID())
		}
	}

	if len(pricing) != len(items) {
		return kernel.Money{}, fmt.Errorf(
			"%w: %d pricing entries for %d items", ErrInvalidPricing, len(pricing), len(items))
	}

	// Payload is fully validated; applying cannot fail from here on.
	total := kernel.ZeroMoney()
	for _, item := range items {
		entry := priceByProduct[item.ProductID()]
		item.applyPricing(entry.CostPrice, entry.SellingPrice)
		total = total.Add(item.TotalPrice())
	}

	return total, nil
}
