package models

import "time"

type Order struct {
	ID          int64     `json:"id"`
	TableNumber string    `json:"tableNumber"`
	Accepted    bool      `json:"accepted"`
	CreatedAt   time.Time `json:"createdAt"`
}

// OrderLine associates a menu item with a quantity inside an order.
type OrderLine struct {
	ID       int64 `json:"id" validate:"required"`
	Quantity int64 `json:"quantity" validate:"required,gt=0"`
}

// OrderSummary is one row of the orders listing: the joined item names plus
// the derived total price.
type OrderSummary struct {
	ID          int64     `json:"id"`
	TableNumber string    `json:"tableNumber"`
	Accepted    bool      `json:"accepted"`
	CreatedAt   time.Time `json:"createdAt"`
	Items       []string  `json:"items"`
	TotalPrice  float64   `json:"totalPrice"`
}

// OrderRequest is the body of order create and order edit. An empty items
// slice is a valid order.
type OrderRequest struct {
	TableNumber string      `json:"tableNumber" validate:"required"`
	Items       []OrderLine `json:"items" validate:"dive"`
}
