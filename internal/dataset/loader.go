package dataset

import (
	"context"
	"path/filepath"

	"golang.org/x/sync/errgroup"

	"ecommerce-dashboard/internal/models"
)

const (
	ProductsFile      = "products.csv"
	OrderItemsFile    = "order_items.csv"
	OrdersFile        = "orders.csv"
	OrderPaymentsFile = "order_payments.csv"
)

type Paths struct {
	Products   string
	OrderItems string
	Orders     string
	Payments   string
}

// PathsIn resolves the fixed source file names against dir.
func PathsIn(dir string) Paths {
	return Paths{
		Products:   filepath.Join(dir, ProductsFile),
		OrderItems: filepath.Join(dir, OrderItemsFile),
		Orders:     filepath.Join(dir, OrdersFile),
		Payments:   filepath.Join(dir, OrderPaymentsFile),
	}
}

type Tables struct {
	Products   []models.Product
	OrderItems []models.OrderItem
	Orders     []models.Order
	Payments   []models.Payment
}

func (t *Tables) Counts() map[string]int {
	return map[string]int{
		"products":    len(t.Products),
		"order_items": len(t.OrderItems),
		"orders":      len(t.Orders),
		"payments":    len(t.Payments),
	}
}

// Load reads the four source tables. The reads are independent and run
// concurrently; the first LoadError cancels the rest.
func Load(ctx context.Context, paths Paths) (*Tables, error) {
	var t Tables
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() (err error) {
		t.Products, err = LoadProducts(ctx, paths.Products)
		return err
	})
	g.Go(func() (err error) {
		t.OrderItems, err = LoadOrderItems(ctx, paths.OrderItems)
		return err
	})
	g.Go(func() (err error) {
		t.Orders, err = LoadOrders(ctx, paths.Orders)
		return err
	})
	g.Go(func() (err error) {
		t.Payments, err = LoadPayments(ctx, paths.Payments)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &t, nil
}

func LoadProducts(ctx context.Context, path string) ([]models.Product, error) {
	f, err := readFrame(ctx, path, "product_id", "product_category_name")
	if err != nil {
		return nil, err
	}

	products := make([]models.Product, 0, f.rows)
	seen := make(map[string]struct{}, f.rows)
	for i := 0; i < f.rows; i++ {
		id := f.value("product_id", i)
		if isNull(id) {
			return nil, rowErr(path, i, "product_id is empty")
		}
		if _, dup := seen[id]; dup {
			return nil, rowErr(path, i, "duplicate product_id %q", id)
		}
		seen[id] = struct{}{}

		category := f.value("product_category_name", i)
		p := models.Product{ProductID: id}
		if !isNull(category) {
			p.Category = category
			p.HasCategory = true
		}
		products = append(products, p)
	}
	return products, nil
}

func LoadOrderItems(ctx context.Context, path string) ([]models.OrderItem, error) {
	f, err := readFrame(ctx, path, "order_id", "product_id", "price")
	if err != nil {
		return nil, err
	}

	items := make([]models.OrderItem, 0, f.rows)
	for i := 0; i < f.rows; i++ {
		price, err := f.decimal("price", i)
		if err != nil {
			return nil, err
		}
		items = append(items, models.OrderItem{
			OrderID:   f.value("order_id", i),
			ProductID: f.value("product_id", i),
			Price:     price,
		})
	}
	return items, nil
}

func LoadOrders(ctx context.Context, path string) ([]models.Order, error) {
	f, err := readFrame(ctx, path,
		"order_id",
		"order_purchase_timestamp",
		"order_estimated_delivery_date",
		"order_delivered_customer_date",
	)
	if err != nil {
		return nil, err
	}

	orders := make([]models.Order, 0, f.rows)
	seen := make(map[string]struct{}, f.rows)
	for i := 0; i < f.rows; i++ {
		id := f.value("order_id", i)
		if isNull(id) {
			return nil, rowErr(path, i, "order_id is empty")
		}
		if _, dup := seen[id]; dup {
			return nil, rowErr(path, i, "duplicate order_id %q", id)
		}
		seen[id] = struct{}{}

		purchased, err := f.time("order_purchase_timestamp", i)
		if err != nil {
			return nil, err
		}
		estimated, err := f.nullableTime("order_estimated_delivery_date", i)
		if err != nil {
			return nil, err
		}
		delivered, err := f.nullableTime("order_delivered_customer_date", i)
		if err != nil {
			return nil, err
		}

		orders = append(orders, models.Order{
			OrderID:           id,
			PurchasedAt:       purchased,
			EstimatedDelivery: estimated,
			DeliveredAt:       delivered,
		})
	}
	return orders, nil
}

func LoadPayments(ctx context.Context, path string) ([]models.Payment, error) {
	f, err := readFrame(ctx, path, "order_id", "payment_value")
	if err != nil {
		return nil, err
	}

	payments := make([]models.Payment, 0, f.rows)
	for i := 0; i < f.rows; i++ {
		value, err := f.decimal("payment_value", i)
		if err != nil {
			return nil, err
		}
		payments = append(payments, models.Payment{
			OrderID: f.value("order_id", i),
			Value:   value,
		})
	}
	return payments, nil
}
