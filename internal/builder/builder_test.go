package builder

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dbsmedya/storegen/internal/config"
	"github.com/dbsmedya/storegen/internal/graph"
	"github.com/dbsmedya/storegen/internal/random"
	"github.com/dbsmedya/storegen/internal/record"
	"github.com/dbsmedya/storegen/internal/registry"
)

func newContext(seed int64, strict bool) *Context {
	src := random.New(seed)
	return &Context{
		Rand:     src,
		Registry: registry.New(src, strict),
		Cfg:      config.DefaultConfig().Generator,
	}
}

// buildPrereqs generates the given entity types in order with a small count.
func buildPrereqs(t *testing.T, ctx *Context, types ...string) {
	t.Helper()
	catalog := Catalog()
	for _, typ := range types {
		_, err := catalog[typ].Build(ctx, 5)
		require.NoError(t, err)
	}
}

func TestCatalog_CoversAllEntityTypes(t *testing.T) {
	catalog := Catalog()
	assert.Len(t, catalog, 19)

	for name, spec := range catalog {
		assert.NotNil(t, spec.Build, "entity %s has no build function", name)
		for _, dep := range spec.Deps {
			_, ok := catalog[dep]
			assert.True(t, ok, "entity %s depends on unknown type %s", name, dep)
		}
	}
}

func TestCatalog_DependencyGraphIsAcyclic(t *testing.T) {
	g := graph.Build(Dependencies())
	assert.NoError(t, g.Validate())
	assert.Equal(t, 19, g.NodeCount())
}

func TestCatalog_Leaves(t *testing.T) {
	g := graph.Build(Dependencies())
	assert.Equal(t, []string{TypeCategory, TypeUser, TypeVendor, TypeWarehouse}, g.Leaves())
}

func TestBuildUsers(t *testing.T) {
	ctx := newContext(42, false)

	batch, err := Catalog()[TypeUser].Build(ctx, 3)
	require.NoError(t, err)
	assert.Equal(t, 3, batch.Len())

	// Unique identifiers, registered back into the session pool.
	seen := map[string]bool{}
	for i, rec := range batch.Records {
		id, ok := rec.Get("user_id")
		require.True(t, ok)
		assert.False(t, seen[id.(string)], "duplicate identifier")
		seen[id.(string)] = true
		assert.Equal(t, batch.IDs[i], id)

		email, ok := rec.Get("email")
		require.True(t, ok)
		assert.NotEmpty(t, email)
	}
	assert.Equal(t, batch.IDs, ctx.Registry.Pool(TypeUser))
}

func TestBuildUsers_Reproducible(t *testing.T) {
	a, err := Catalog()[TypeUser].Build(newContext(42, false), 3)
	require.NoError(t, err)
	b, err := Catalog()[TypeUser].Build(newContext(42, false), 3)
	require.NoError(t, err)

	require.Equal(t, a.Len(), b.Len())
	for i := range a.Records {
		assert.Equal(t, a.Records[i].Values(), b.Records[i].Values())
	}
}

func TestBuildProducts_ForeignKeysResolve(t *testing.T) {
	ctx := newContext(42, false)
	buildPrereqs(t, ctx, TypeCategory, TypeVendor)

	batch, err := Catalog()[TypeProduct].Build(ctx, 10)
	require.NoError(t, err)

	categories := ctx.Registry.Pool(TypeCategory)
	vendors := ctx.Registry.Pool(TypeVendor)
	for _, rec := range batch.Records {
		categoryID, _ := rec.Get("category_id")
		vendorID, _ := rec.Get("vendor_id")
		assert.Contains(t, categories, categoryID)
		assert.Contains(t, vendors, vendorID)
	}
	assert.Equal(t, 0, ctx.Registry.Orphans())
}

func TestBuildOrders_TotalsConsistent(t *testing.T) {
	ctx := newContext(42, false)
	buildPrereqs(t, ctx, TypeUser, TypeCategory, TypeVendor, TypeProduct)

	batch, err := Catalog()[TypeOrder].Build(ctx, 5)
	require.NoError(t, err)

	taxRate := decimal.NewFromFloat(ctx.Cfg.TaxRate)
	for _, rec := range batch.Records {
		itemsVal, ok := rec.Get("items")
		require.True(t, ok)
		items := itemsVal.([]*record.Record)
		require.GreaterOrEqual(t, len(items), ctx.Cfg.ItemsMin)
		require.LessOrEqual(t, len(items), ctx.Cfg.ItemsMax)

		lineSum := decimal.Zero
		for _, item := range items {
			unitVal, _ := item.Get("unit_price")
			qtyVal, _ := item.Get("quantity")
			lineVal, _ := item.Get("line_total")

			expected := unitVal.(decimal.Decimal).
				Mul(decimal.NewFromInt(int64(qtyVal.(int)))).
				Round(2)
			assert.True(t, expected.Equal(lineVal.(decimal.Decimal)),
				"line_total %s != unit_price*quantity %s", lineVal, expected)
			lineSum = lineSum.Add(lineVal.(decimal.Decimal))
		}

		subtotalVal, _ := rec.Get("subtotal")
		taxVal, _ := rec.Get("tax")
		totalVal, _ := rec.Get("total")

		subtotal := subtotalVal.(decimal.Decimal)
		tax := taxVal.(decimal.Decimal)
		total := totalVal.(decimal.Decimal)

		assert.True(t, subtotal.Equal(lineSum), "subtotal %s != line sum %s", subtotal, lineSum)
		assert.True(t, tax.Equal(subtotal.Mul(taxRate).Round(2)))
		assert.True(t, total.Equal(subtotal.Add(tax)), "total %s != subtotal+tax", total)
	}
}

func TestBuildOrders_ForeignKeysFromPools(t *testing.T) {
	ctx := newContext(42, false)
	buildPrereqs(t, ctx, TypeUser, TypeCategory, TypeVendor, TypeProduct)

	batch, err := Catalog()[TypeOrder].Build(ctx, 10)
	require.NoError(t, err)

	users := ctx.Registry.Pool(TypeUser)
	products := ctx.Registry.Pool(TypeProduct)
	for _, rec := range batch.Records {
		userID, _ := rec.Get("user_id")
		assert.Contains(t, users, userID)

		itemsVal, _ := rec.Get("items")
		for _, item := range itemsVal.([]*record.Record) {
			productID, _ := item.Get("product_id")
			assert.Contains(t, products, productID)
		}
	}
	assert.Equal(t, 0, ctx.Registry.Orphans())
}

func TestBuildOrders_EmptyPoolsMintOrphans(t *testing.T) {
	ctx := newContext(42, false)

	// No users or products generated first: lenient mode falls back to
	// minted identifiers and counts them.
	batch, err := Catalog()[TypeOrder].Build(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, 2, batch.Len())
	assert.Greater(t, ctx.Registry.Orphans(), 0)
}

func TestBuildOrders_StrictModeFailsWithoutPrerequisites(t *testing.T) {
	ctx := newContext(42, true)

	_, err := Catalog()[TypeOrder].Build(ctx, 2)
	require.Error(t, err)

	var refErr *registry.ReferenceError
	assert.ErrorAs(t, err, &refErr)
}

func TestBuildCarts_SubtotalDerivedFromItems(t *testing.T) {
	ctx := newContext(7, false)
	buildPrereqs(t, ctx, TypeUser, TypeCategory, TypeVendor, TypeProduct)

	batch, err := Catalog()[TypeCart].Build(ctx, 4)
	require.NoError(t, err)

	for _, rec := range batch.Records {
		itemsVal, _ := rec.Get("items")
		lineSum := decimal.Zero
		for _, item := range itemsVal.([]*record.Record) {
			lineVal, _ := item.Get("line_total")
			lineSum = lineSum.Add(lineVal.(decimal.Decimal))
		}
		subtotalVal, _ := rec.Get("subtotal")
		assert.True(t, subtotalVal.(decimal.Decimal).Equal(lineSum))
	}
}

func TestEveryBuilder_ProducesCountAndRegisters(t *testing.T) {
	g := graph.Build(Dependencies())
	order, err := g.TopologicalSort()
	require.NoError(t, err)

	ctx := newContext(99, false)
	catalog := Catalog()
	for _, typ := range order {
		batch, err := catalog[typ].Build(ctx, 3)
		require.NoError(t, err, "builder %s failed", typ)
		assert.Equal(t, 3, batch.Len(), "builder %s produced wrong count", typ)
		assert.Equal(t, typ, batch.EntityType)
		assert.True(t, ctx.Registry.Has(typ), "builder %s did not register its identifiers", typ)
	}

	// Generated in dependency order: no orphan fallbacks anywhere.
	assert.Equal(t, 0, ctx.Registry.Orphans())
}

func TestProductAnalytics_ConversionConsistent(t *testing.T) {
	ctx := newContext(11, false)
	buildPrereqs(t, ctx, TypeCategory, TypeVendor, TypeProduct)

	batch, err := Catalog()[TypeProductAnalytics].Build(ctx, 10)
	require.NoError(t, err)

	for _, rec := range batch.Records {
		viewsVal, _ := rec.Get("views")
		purchasesVal, _ := rec.Get("purchases")
		assert.LessOrEqual(t, purchasesVal.(int), viewsVal.(int))

		rate, _ := rec.Get("conversion_rate")
		assert.GreaterOrEqual(t, rate.(float64), 0.0)
		assert.LessOrEqual(t, rate.(float64), 1.0)
	}
}
