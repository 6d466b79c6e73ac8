package cartstate

import "github.com/swasthiksuvarna/storefront-api/models"

const (
	// DiscountRate is the storefront-wide 20% promotion applied to every
	// order.
	DiscountRate = 0.20
	// DeliveryFee is charged per order regardless of cart size.
	DeliveryFee = 15.0
)

// ComputeSummary derives the order totals from the given lines. Values are
// kept at full float precision; rounding to two decimals is a display
// concern.
func ComputeSummary(items []models.CartLine, discountRate, deliveryFee float64) models.OrderSummary {
	var subtotal float64
	for _, line := range items {
		subtotal += line.Price * float64(line.Quantity)
	}
	discount := subtotal * discountRate
	return models.OrderSummary{
		Subtotal:    subtotal,
		Discount:    discount,
		DeliveryFee: deliveryFee,
		Total:       subtotal - discount + deliveryFee,
	}
}

// Summary computes totals for the controller's current lines using the
// storefront defaults.
func (c *Controller) Summary() models.OrderSummary {
	return ComputeSummary(c.items, DiscountRate, DeliveryFee)
}
