package models

// CartLine is one row in a user's cart. ProductID is the merge key: at most
// one line exists per product, repeat adds raise Quantity instead of
// appending a second row.
type CartLine struct {
	ProductID uint    `json:"product_id"`
	Title     string  `json:"title"`
	Price     float64 `json:"price"`
	Image     string  `json:"image"`
	Size      string  `json:"size,omitempty"`
	Color     string  `json:"color,omitempty"`
	Quantity  int     `json:"quantity"`
}

// OrderSummary holds the derived cart totals. It is recomputed from the
// current lines on every read and never persisted.
type OrderSummary struct {
	Subtotal    float64 `json:"subtotal"`
	Discount    float64 `json:"discount"`
	DeliveryFee float64 `json:"delivery_fee"`
	Total       float64 `json:"total"`
}
