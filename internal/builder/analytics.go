package builder

import (
	"math"

	"github.com/dbsmedya/storegen/internal/record"
)

// Builders for the analytics roll-up entities.

func buildUserAnalytics(ctx *Context, count int) (*record.Batch, error) {
	batch := record.NewBatch(TypeUserAnalytics, count)

	for i := 0; i < count; i++ {
		id := ctx.Rand.UUID()
		userID, err := ctx.Registry.RandomOne(TypeUser)
		if err != nil {
			return nil, err
		}

		sessions := ctx.Rand.IntBetween(1, 400)
		rec := record.New().
			Set("analytics_id", id).
			Set("user_id", userID).
			Set("sessions", sessions).
			Set("page_views", sessions*ctx.Rand.IntBetween(2, 12)).
			Set("orders_placed", ctx.Rand.IntBetween(0, 40)).
			Set("total_spent", ctx.Rand.Amount(0, 10000)).
			Set("last_seen_at", ctx.Rand.DateBetween(timelineStart, timelineEnd))
		batch.Append(rec, id)
	}

	ctx.Registry.Register(TypeUserAnalytics, batch.IDs)
	return batch, nil
}

func buildProductAnalytics(ctx *Context, count int) (*record.Batch, error) {
	batch := record.NewBatch(TypeProductAnalytics, count)

	for i := 0; i < count; i++ {
		id := ctx.Rand.UUID()
		productID, err := ctx.Registry.RandomOne(TypeProduct)
		if err != nil {
			return nil, err
		}

		views := ctx.Rand.IntBetween(10, 100000)
		purchases := ctx.Rand.IntBetween(0, views/10+1)
		// Conversion rate is derived from the generated counters so the
		// record stays internally consistent.
		conversion := math.Round(float64(purchases)/float64(views)*10000) / 10000

		rec := record.New().
			Set("analytics_id", id).
			Set("product_id", productID).
			Set("views", views).
			Set("purchases", purchases).
			Set("conversion_rate", conversion).
			Set("revenue", ctx.Rand.Amount(0, 250000)).
			Set("last_purchased_at", ctx.Rand.DateBetween(timelineStart, timelineEnd))
		batch.Append(rec, id)
	}

	ctx.Registry.Register(TypeProductAnalytics, batch.IDs)
	return batch, nil
}
