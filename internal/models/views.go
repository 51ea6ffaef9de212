package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// RevenueFact is one row of the order item → product → order → payment
// left join.
type RevenueFact struct {
	OrderID     string              `json:"order_id"`
	ProductID   string              `json:"product_id"`
	Category    string              `json:"category"`
	HasCategory bool                `json:"has_category"`
	Price       decimal.Decimal     `json:"price"`
	HasOrder    bool                `json:"has_order"`
	PurchasedAt time.Time           `json:"purchased_at"`
	Payment     decimal.NullDecimal `json:"payment"`
}

type LateDelivery struct {
	OrderID     string    `json:"order_id"`
	PurchasedAt time.Time `json:"purchased_at"`
	Month       string    `json:"month"`
}

type CategoryRevenue struct {
	Category string          `json:"category"`
	Revenue  decimal.Decimal `json:"revenue"`
}

type MonthlyLateOrders struct {
	Month string `json:"month"`
	Count int    `json:"count"`
}
