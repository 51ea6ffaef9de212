package services

import (
	"slices"
	"strings"

	"github.com/shopspring/decimal"

	"ecommerce-dashboard/internal/dataset"
	"ecommerce-dashboard/internal/models"
)

const categoryLimit = 5

// BuildRevenueFacts left-joins order items onto products, orders and
// payments. Every order item yields at least one fact; an order with n
// payment rows yields n facts per item.
func BuildRevenueFacts(t *dataset.Tables) []models.RevenueFact {
	products := make(map[string]models.Product, len(t.Products))
	for _, p := range t.Products {
		products[p.ProductID] = p
	}

	orders := make(map[string]models.Order, len(t.Orders))
	for _, o := range t.Orders {
		orders[o.OrderID] = o
	}

	payments := make(map[string][]models.Payment)
	for _, p := range t.Payments {
		payments[p.OrderID] = append(payments[p.OrderID], p)
	}

	facts := make([]models.RevenueFact, 0, len(t.OrderItems))
	for _, item := range t.OrderItems {
		fact := models.RevenueFact{
			OrderID:   item.OrderID,
			ProductID: item.ProductID,
			Price:     item.Price,
		}

		if p, ok := products[item.ProductID]; ok {
			fact.Category = p.Category
			fact.HasCategory = p.HasCategory
		}

		if o, ok := orders[item.OrderID]; ok {
			fact.HasOrder = true
			fact.PurchasedAt = o.PurchasedAt
		}

		matched := payments[item.OrderID]
		if len(matched) == 0 {
			facts = append(facts, fact)
			continue
		}
		for _, p := range matched {
			f := fact
			f.Payment = decimal.NewNullDecimal(p.Value)
			facts = append(facts, f)
		}
	}
	return facts
}

// AggregateCategoryRevenue sums price per category, ordered by revenue
// descending then name. Facts without a category are not grouped.
func AggregateCategoryRevenue(facts []models.RevenueFact) []models.CategoryRevenue {
	sums := make(map[string]decimal.Decimal)
	for _, f := range facts {
		if !f.HasCategory {
			continue
		}
		sums[f.Category] = sums[f.Category].Add(f.Price)
	}

	result := make([]models.CategoryRevenue, 0, len(sums))
	for category, revenue := range sums {
		result = append(result, models.CategoryRevenue{Category: category, Revenue: revenue})
	}
	slices.SortFunc(result, compareRevenueDesc)
	return result
}

func TopCategories(aggs []models.CategoryRevenue, n int) []models.CategoryRevenue {
	sorted := slices.Clone(aggs)
	slices.SortFunc(sorted, compareRevenueDesc)
	return head(sorted, n)
}

func WorstCategories(aggs []models.CategoryRevenue, n int) []models.CategoryRevenue {
	sorted := slices.Clone(aggs)
	slices.SortFunc(sorted, compareRevenueAsc)
	return head(sorted, n)
}

func compareRevenueDesc(a, b models.CategoryRevenue) int {
	if c := b.Revenue.Cmp(a.Revenue); c != 0 {
		return c
	}
	return strings.Compare(a.Category, b.Category)
}

func compareRevenueAsc(a, b models.CategoryRevenue) int {
	if c := a.Revenue.Cmp(b.Revenue); c != 0 {
		return c
	}
	return strings.Compare(a.Category, b.Category)
}

func head[T any](s []T, n int) []T {
	if n < 0 {
		n = 0
	}
	if len(s) > n {
		s = s[:n]
	}
	if s == nil {
		return []T{}
	}
	return s
}
