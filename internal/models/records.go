package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type Product struct {
	ProductID   string
	Category    string
	HasCategory bool
}

type OrderItem struct {
	OrderID   string
	ProductID string
	Price     decimal.Decimal
}

// Order timestamps that are absent in the source are nil.
type Order struct {
	OrderID           string
	PurchasedAt       time.Time
	EstimatedDelivery *time.Time
	DeliveredAt       *time.Time
}

type Payment struct {
	OrderID string
	Value   decimal.Decimal
}

// Late reports whether the order reached the customer strictly after the
// estimated delivery date. Orders missing either date are never late.
func (o Order) Late() bool {
	if o.EstimatedDelivery == nil || o.DeliveredAt == nil {
		return false
	}
	return o.EstimatedDelivery.Before(*o.DeliveredAt)
}
