// Package datasettest writes small source CSV files for tests.
package datasettest

import (
	"os"
	"path/filepath"
	"testing"

	"ecommerce-dashboard/internal/dataset"
)

type Files struct {
	Products   string
	OrderItems string
	Orders     string
	Payments   string
}

const (
	ProductsHeader   = "product_id,product_category_name,product_weight_g\n"
	OrderItemsHeader = "order_id,order_item_id,product_id,seller_id,price,freight_value\n"
	OrdersHeader     = "order_id,customer_id,order_status,order_purchase_timestamp,order_approved_at,order_delivered_carrier_date,order_delivered_customer_date,order_estimated_delivery_date\n"
	PaymentsHeader   = "order_id,payment_sequential,payment_type,payment_installments,payment_value\n"
)

// Sample is a consistent set of tables: three categories, one uncategorised
// product, a multi-payment order and late deliveries in March and November
// 2017 plus one in 2018.
var Sample = Files{
	Products: ProductsHeader +
		"p1,beleza_saude,500\n" +
		"p2,beleza_saude,300\n" +
		"p3,relogios_presentes,200\n" +
		"p4,cama_mesa_banho,1200\n" +
		"p5,,100\n",
	OrderItems: OrderItemsHeader +
		"o1,1,p1,s1,100.00,10.00\n" +
		"o2,1,p2,s1,50.50,8.00\n" +
		"o3,1,p3,s2,80.00,5.00\n" +
		"o4,1,p4,s3,20.00,4.00\n" +
		"o5,1,p5,s3,15.00,4.00\n" +
		"o6,1,p3,s2,30.00,3.00\n",
	Orders: OrdersHeader +
		"o1,c1,delivered,2017-03-05 10:00:00,2017-03-05 11:00:00,2017-03-07 09:00:00,2017-03-20 14:00:00,2017-03-15 00:00:00\n" +
		"o2,c2,delivered,2017-03-10 09:30:00,2017-03-10 10:00:00,2017-03-11 08:00:00,2017-03-14 12:00:00,2017-03-25 00:00:00\n" +
		"o3,c3,delivered,2017-11-24 20:15:00,2017-11-24 21:00:00,2017-11-27 10:00:00,2017-12-15 16:00:00,2017-12-08 00:00:00\n" +
		"o4,c4,shipped,2017-06-01 08:00:00,2017-06-01 09:00:00,2017-06-02 10:00:00,,2017-06-20 00:00:00\n" +
		"o5,c5,delivered,2018-01-03 12:00:00,2018-01-03 13:00:00,2018-01-05 10:00:00,2018-02-10 10:00:00,2018-01-25 00:00:00\n" +
		"o6,c6,delivered,2016-10-04 12:00:00,2016-10-04 13:00:00,2016-10-06 10:00:00,2016-11-20 10:00:00,2016-10-30 00:00:00\n",
	Payments: PaymentsHeader +
		"o1,1,credit_card,1,110.00\n" +
		"o2,1,credit_card,2,58.50\n" +
		"o3,1,voucher,1,40.00\n" +
		"o3,2,credit_card,1,45.00\n" +
		"o4,1,boleto,1,24.00\n" +
		"o5,1,credit_card,1,19.00\n" +
		"o6,1,debit_card,1,33.00\n",
}

// Empty holds every table with its header and no rows.
var Empty = Files{
	Products:   ProductsHeader,
	OrderItems: OrderItemsHeader,
	Orders:     OrdersHeader,
	Payments:   PaymentsHeader,
}

// Write stores files under a fresh temporary directory using the fixed
// source names and returns the directory. Empty fields are not written.
func Write(tb testing.TB, files Files) string {
	tb.Helper()
	dir := tb.TempDir()

	for name, content := range map[string]string{
		dataset.ProductsFile:      files.Products,
		dataset.OrderItemsFile:    files.OrderItems,
		dataset.OrdersFile:        files.Orders,
		dataset.OrderPaymentsFile: files.Payments,
	} {
		if content == "" {
			continue
		}
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
			tb.Fatal(err)
		}
	}
	return dir
}

// WritePaths is Write followed by dataset.PathsIn.
func WritePaths(tb testing.TB, files Files) dataset.Paths {
	tb.Helper()
	return dataset.PathsIn(Write(tb, files))
}
