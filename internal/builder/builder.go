// Package builder contains one build function per entity type plus the
// static catalog tying entity types to their prerequisites. Builders draw
// field values from the session's random source, obtain every foreign key
// through the identifier registry, and register their own minted
// identifiers so later builders in the session can reference them.
package builder

import (
	"sort"
	"time"

	"github.com/dbsmedya/storegen/internal/config"
	"github.com/dbsmedya/storegen/internal/random"
	"github.com/dbsmedya/storegen/internal/record"
	"github.com/dbsmedya/storegen/internal/registry"
)

// Entity type tags. These are the names requests use and the keys the
// identifier registry pools are filed under.
const (
	TypeUser             = "user"
	TypeCategory         = "category"
	TypeVendor           = "vendor"
	TypeWarehouse        = "warehouse"
	TypeProduct          = "product"
	TypeInventory        = "inventory"
	TypeOrder            = "order"
	TypePayment          = "payment"
	TypeShipping         = "shipping"
	TypeReturn           = "return"
	TypeReview           = "review"
	TypeSupportTicket    = "support_ticket"
	TypePromotion        = "promotion"
	TypeSubscription     = "subscription"
	TypeWishlist         = "wishlist"
	TypeNotification     = "notification"
	TypeCart             = "cart"
	TypeUserAnalytics    = "user_analytics"
	TypeProductAnalytics = "product_analytics"
)

// Fixed generation window for all timestamp fields. Anchoring to constants
// rather than the wall clock keeps output byte-identical across sessions
// built from the same seed.
var (
	timelineStart = time.Date(2023, time.January, 1, 0, 0, 0, 0, time.UTC)
	timelineEnd   = time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)
)

// Context carries the per-session collaborators a build function needs.
type Context struct {
	Rand     *random.Source
	Registry *registry.Registry
	Cfg      config.GeneratorConfig
}

// BuildFunc generates a batch of count records for one entity type.
type BuildFunc func(ctx *Context, count int) (*record.Batch, error)

// Spec describes one entity type in the catalog: the entity types its
// records hold foreign keys into, and the function that builds its batches.
type Spec struct {
	Deps  []string
	Build BuildFunc
}

// Catalog returns the full entity catalog. The dependency lists are the
// edges of the generation dependency graph; the engine walks them before
// invoking a build function, so builders themselves never trigger
// prerequisite generation.
func Catalog() map[string]Spec {
	return map[string]Spec{
		TypeUser:      {Build: buildUsers},
		TypeCategory:  {Build: buildCategories},
		TypeVendor:    {Build: buildVendors},
		TypeWarehouse: {Build: buildWarehouses},

		TypeProduct:   {Deps: []string{TypeCategory, TypeVendor}, Build: buildProducts},
		TypeInventory: {Deps: []string{TypeProduct, TypeWarehouse}, Build: buildInventory},
		TypeOrder:     {Deps: []string{TypeUser, TypeProduct}, Build: buildOrders},
		TypePayment:   {Deps: []string{TypeOrder}, Build: buildPayments},
		TypeShipping:  {Deps: []string{TypeOrder, TypeWarehouse}, Build: buildShipping},
		TypeReturn:    {Deps: []string{TypeOrder}, Build: buildReturns},

		TypeReview:        {Deps: []string{TypeUser, TypeProduct, TypeOrder}, Build: buildReviews},
		TypeSupportTicket: {Deps: []string{TypeUser, TypeOrder}, Build: buildSupportTickets},
		TypePromotion:     {Deps: []string{TypeProduct}, Build: buildPromotions},
		TypeSubscription:  {Deps: []string{TypeUser}, Build: buildSubscriptions},
		TypeWishlist:      {Deps: []string{TypeUser}, Build: buildWishlists},
		TypeNotification:  {Deps: []string{TypeUser}, Build: buildNotifications},
		// Cart line items reference products, so the cart depends on both.
		TypeCart: {Deps: []string{TypeUser, TypeProduct}, Build: buildCarts},

		TypeUserAnalytics:    {Deps: []string{TypeUser}, Build: buildUserAnalytics},
		TypeProductAnalytics: {Deps: []string{TypeProduct}, Build: buildProductAnalytics},
	}
}

// EntityTypes returns all catalog entity type names in sorted order.
func EntityTypes() []string {
	catalog := Catalog()
	names := make([]string, 0, len(catalog))
	for name := range catalog {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Dependencies returns the dependency table for the catalog, suitable for
// graph construction.
func Dependencies() map[string][]string {
	catalog := Catalog()
	deps := make(map[string][]string, len(catalog))
	for name, spec := range catalog {
		deps[name] = spec.Deps
	}
	return deps
}
