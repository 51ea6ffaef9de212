package services

import (
	"time"

	"ecommerce-dashboard/internal/models"
)

// TargetYear is the purchase year the late-delivery view covers.
const TargetYear = 2017

// BuildLateDeliveries keeps orders purchased in year that reached the
// customer strictly after their estimated delivery date.
func BuildLateDeliveries(orders []models.Order, year int) []models.LateDelivery {
	late := make([]models.LateDelivery, 0)
	for _, o := range orders {
		if o.PurchasedAt.Year() != year || !o.Late() {
			continue
		}
		late = append(late, models.LateDelivery{
			OrderID:     o.OrderID,
			PurchasedAt: o.PurchasedAt,
			Month:       o.PurchasedAt.Month().String(),
		})
	}
	return late
}

// CountLateByMonth returns all twelve months January through December.
// Months without late orders are reported with a zero count.
func CountLateByMonth(late []models.LateDelivery) []models.MonthlyLateOrders {
	result := make([]models.MonthlyLateOrders, 12)
	index := make(map[string]int, 12)
	for i, name := range MonthNames() {
		result[i] = models.MonthlyLateOrders{Month: name}
		index[name] = i
	}

	for _, l := range late {
		if i, ok := index[l.Month]; ok {
			result[i].Count++
		}
	}
	return result
}

func MonthNames() []string {
	names := make([]string, 0, 12)
	for m := time.January; m <= time.December; m++ {
		names = append(names, m.String())
	}
	return names
}

func TotalLate(months []models.MonthlyLateOrders) int {
	total := 0
	for _, m := range months {
		total += m.Count
	}
	return total
}
