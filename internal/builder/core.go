package builder

import (
	"fmt"

	"github.com/dbsmedya/storegen/internal/record"
)

// Builders for the leaf entity types: user, category, vendor, warehouse.
// These have no prerequisites and seed the identifier pools everything
// else references.

func buildUsers(ctx *Context, count int) (*record.Batch, error) {
	f := ctx.Rand.Faker()
	batch := record.NewBatch(TypeUser, count)

	for i := 0; i < count; i++ {
		id := ctx.Rand.UUID()
		rec := record.New().
			Set("user_id", id).
			Set("first_name", f.FirstName()).
			Set("last_name", f.LastName()).
			Set("username", f.Username()).
			Set("email", f.Email()).
			Set("phone", f.Phone()).
			Set("street", f.Street()).
			Set("city", f.City()).
			Set("state", f.State()).
			Set("postal_code", f.Zip()).
			Set("country", f.Country()).
			Set("loyalty_points", ctx.Rand.IntBetween(0, 5000)).
			Set("is_active", ctx.Rand.Chance(0.9)).
			Set("created_at", ctx.Rand.DateBetween(timelineStart, timelineEnd))
		batch.Append(rec, id)
	}

	ctx.Registry.Register(TypeUser, batch.IDs)
	return batch, nil
}

func buildCategories(ctx *Context, count int) (*record.Batch, error) {
	f := ctx.Rand.Faker()
	batch := record.NewBatch(TypeCategory, count)

	for i := 0; i < count; i++ {
		id := ctx.Rand.UUID()
		rec := record.New().
			Set("category_id", id).
			Set("name", f.ProductCategory()).
			Set("description", f.Sentence(8)).
			Set("display_order", i+1).
			Set("is_active", ctx.Rand.Chance(0.95)).
			Set("created_at", ctx.Rand.DateBetween(timelineStart, timelineEnd))
		batch.Append(rec, id)
	}

	ctx.Registry.Register(TypeCategory, batch.IDs)
	return batch, nil
}

func buildVendors(ctx *Context, count int) (*record.Batch, error) {
	f := ctx.Rand.Faker()
	batch := record.NewBatch(TypeVendor, count)

	for i := 0; i < count; i++ {
		id := ctx.Rand.UUID()
		rec := record.New().
			Set("vendor_id", id).
			Set("name", f.Company()).
			Set("contact_email", f.Email()).
			Set("phone", f.Phone()).
			Set("street", f.Street()).
			Set("city", f.City()).
			Set("country", f.Country()).
			Set("rating", ctx.Rand.Amount(1, 5)).
			Set("is_verified", ctx.Rand.Chance(0.8)).
			Set("created_at", ctx.Rand.DateBetween(timelineStart, timelineEnd))
		batch.Append(rec, id)
	}

	ctx.Registry.Register(TypeVendor, batch.IDs)
	return batch, nil
}

func buildWarehouses(ctx *Context, count int) (*record.Batch, error) {
	f := ctx.Rand.Faker()
	batch := record.NewBatch(TypeWarehouse, count)

	for i := 0; i < count; i++ {
		id := ctx.Rand.UUID()
		city := f.City()
		rec := record.New().
			Set("warehouse_id", id).
			Set("name", fmt.Sprintf("%s Fulfillment Center", city)).
			Set("street", f.Street()).
			Set("city", city).
			Set("state", f.State()).
			Set("postal_code", f.Zip()).
			Set("country", f.Country()).
			Set("capacity", ctx.Rand.IntBetween(10000, 500000)).
			Set("is_active", ctx.Rand.Chance(0.95)).
			Set("created_at", ctx.Rand.DateBetween(timelineStart, timelineEnd))
		batch.Append(rec, id)
	}

	ctx.Registry.Register(TypeWarehouse, batch.IDs)
	return batch, nil
}
