package builder

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/dbsmedya/storegen/internal/record"
)

// Builders for the commerce chain: product, inventory, order (+items),
// payment, shipping, return.

var (
	orderStatuses      = []string{"pending", "processing", "shipped", "delivered", "cancelled"}
	orderStatusWeights = []int{10, 15, 20, 45, 10}

	paymentMethods  = []string{"credit_card", "debit_card", "paypal", "bank_transfer", "gift_card"}
	paymentStatuses = []string{"authorized", "captured", "failed", "refunded"}
	paymentWeights  = []int{10, 75, 5, 10}

	carriers         = []string{"UPS", "FedEx", "DHL", "USPS"}
	shippingStatuses = []string{"label_created", "in_transit", "out_for_delivery", "delivered"}

	returnReasons  = []string{"damaged", "wrong_item", "not_as_described", "no_longer_needed", "defective"}
	returnStatuses = []string{"requested", "approved", "rejected", "refunded"}
)

func buildProducts(ctx *Context, count int) (*record.Batch, error) {
	f := ctx.Rand.Faker()
	batch := record.NewBatch(TypeProduct, count)

	for i := 0; i < count; i++ {
		id := ctx.Rand.UUID()
		categoryID, err := ctx.Registry.RandomOne(TypeCategory)
		if err != nil {
			return nil, err
		}
		vendorID, err := ctx.Registry.RandomOne(TypeVendor)
		if err != nil {
			return nil, err
		}

		rec := record.New().
			Set("product_id", id).
			Set("category_id", categoryID).
			Set("vendor_id", vendorID).
			Set("name", f.ProductName()).
			Set("description", f.ProductDescription()).
			Set("sku", fmt.Sprintf("%s-%06d", strings.ToUpper(f.LetterN(3)), ctx.Rand.IntBetween(0, 999999))).
			Set("price", ctx.Rand.Amount(2.99, 999.99)).
			Set("weight_kg", ctx.Rand.Amount(0.05, 40)).
			Set("is_active", ctx.Rand.Chance(0.9)).
			Set("created_at", ctx.Rand.DateBetween(timelineStart, timelineEnd))
		batch.Append(rec, id)
	}

	ctx.Registry.Register(TypeProduct, batch.IDs)
	return batch, nil
}

func buildInventory(ctx *Context, count int) (*record.Batch, error) {
	batch := record.NewBatch(TypeInventory, count)

	for i := 0; i < count; i++ {
		id := ctx.Rand.UUID()
		productID, err := ctx.Registry.RandomOne(TypeProduct)
		if err != nil {
			return nil, err
		}
		warehouseID, err := ctx.Registry.RandomOne(TypeWarehouse)
		if err != nil {
			return nil, err
		}

		rec := record.New().
			Set("inventory_id", id).
			Set("product_id", productID).
			Set("warehouse_id", warehouseID).
			Set("quantity", ctx.Rand.IntBetween(0, 2500)).
			Set("reorder_level", ctx.Rand.IntBetween(10, 200)).
			Set("last_restocked_at", ctx.Rand.DateBetween(timelineStart, timelineEnd))
		batch.Append(rec, id)
	}

	ctx.Registry.Register(TypeInventory, batch.IDs)
	return batch, nil
}

func buildOrders(ctx *Context, count int) (*record.Batch, error) {
	batch := record.NewBatch(TypeOrder, count)
	taxRate := decimal.NewFromFloat(ctx.Cfg.TaxRate)

	for i := 0; i < count; i++ {
		id := ctx.Rand.UUID()
		userID, err := ctx.Registry.RandomOne(TypeUser)
		if err != nil {
			return nil, err
		}

		itemCount := ctx.Rand.IntBetween(ctx.Cfg.ItemsMin, ctx.Cfg.ItemsMax)
		items := make([]*record.Record, 0, itemCount)
		subtotal := decimal.Zero
		for j := 0; j < itemCount; j++ {
			productID, err := ctx.Registry.RandomOne(TypeProduct)
			if err != nil {
				return nil, err
			}
			quantity := ctx.Rand.IntBetween(1, 4)
			unitPrice := ctx.Rand.Amount(2.99, 499.99)
			lineTotal := unitPrice.Mul(decimal.NewFromInt(int64(quantity))).Round(2)
			subtotal = subtotal.Add(lineTotal)

			item := record.New().
				Set("order_item_id", ctx.Rand.UUID()).
				Set("product_id", productID).
				Set("quantity", quantity).
				Set("unit_price", unitPrice).
				Set("line_total", lineTotal)
			items = append(items, item)
		}

		// Totals are derived from the line items, never drawn independently.
		tax := subtotal.Mul(taxRate).Round(2)
		total := subtotal.Add(tax)

		rec := record.New().
			Set("order_id", id).
			Set("user_id", userID).
			Set("status", ctx.Rand.WeightedPick(orderStatuses, orderStatusWeights)).
			Set("items", items).
			Set("subtotal", subtotal).
			Set("tax", tax).
			Set("total", total).
			Set("currency", "USD").
			Set("ordered_at", ctx.Rand.DateBetween(timelineStart, timelineEnd))
		batch.Append(rec, id)
	}

	ctx.Registry.Register(TypeOrder, batch.IDs)
	return batch, nil
}

func buildPayments(ctx *Context, count int) (*record.Batch, error) {
	batch := record.NewBatch(TypePayment, count)

	for i := 0; i < count; i++ {
		id := ctx.Rand.UUID()
		orderID, err := ctx.Registry.RandomOne(TypeOrder)
		if err != nil {
			return nil, err
		}

		rec := record.New().
			Set("payment_id", id).
			Set("order_id", orderID).
			Set("method", ctx.Rand.Pick(paymentMethods)).
			Set("status", ctx.Rand.WeightedPick(paymentStatuses, paymentWeights)).
			Set("amount", ctx.Rand.Amount(5, 1500)).
			Set("transaction_ref", ctx.Rand.UUID()).
			Set("paid_at", ctx.Rand.DateBetween(timelineStart, timelineEnd))
		batch.Append(rec, id)
	}

	ctx.Registry.Register(TypePayment, batch.IDs)
	return batch, nil
}

func buildShipping(ctx *Context, count int) (*record.Batch, error) {
	batch := record.NewBatch(TypeShipping, count)

	for i := 0; i < count; i++ {
		id := ctx.Rand.UUID()
		orderID, err := ctx.Registry.RandomOne(TypeOrder)
		if err != nil {
			return nil, err
		}
		warehouseID, err := ctx.Registry.RandomOne(TypeWarehouse)
		if err != nil {
			return nil, err
		}

		shippedAt := ctx.Rand.DateBetween(timelineStart, timelineEnd)
		rec := record.New().
			Set("shipping_id", id).
			Set("order_id", orderID).
			Set("warehouse_id", warehouseID).
			Set("carrier", ctx.Rand.Pick(carriers)).
			Set("tracking_number", fmt.Sprintf("TRK%012d", ctx.Rand.IntBetween(0, 999999999))).
			Set("status", ctx.Rand.Pick(shippingStatuses)).
			Set("shipped_at", shippedAt).
			Set("estimated_delivery", shippedAt.Add(time.Duration(ctx.Rand.IntBetween(1, 10))*24*time.Hour)).
			Set("shipping_cost", ctx.Rand.Amount(2.99, 29.99))
		batch.Append(rec, id)
	}

	ctx.Registry.Register(TypeShipping, batch.IDs)
	return batch, nil
}

func buildReturns(ctx *Context, count int) (*record.Batch, error) {
	f := ctx.Rand.Faker()
	batch := record.NewBatch(TypeReturn, count)

	for i := 0; i < count; i++ {
		id := ctx.Rand.UUID()
		orderID, err := ctx.Registry.RandomOne(TypeOrder)
		if err != nil {
			return nil, err
		}

		rec := record.New().
			Set("return_id", id).
			Set("order_id", orderID).
			Set("reason", ctx.Rand.Pick(returnReasons)).
			Set("comment", f.Sentence(10)).
			Set("status", ctx.Rand.Pick(returnStatuses)).
			Set("refund_amount", ctx.Rand.Amount(5, 500)).
			Set("requested_at", ctx.Rand.DateBetween(timelineStart, timelineEnd))
		batch.Append(rec, id)
	}

	ctx.Registry.Register(TypeReturn, batch.IDs)
	return batch, nil
}
