package builder

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/dbsmedya/storegen/internal/record"
)

// Builders for engagement entities: review, support ticket, promotion,
// subscription, wishlist, notification, cart (+items).

var (
	ticketPriorities = []string{"low", "medium", "high", "urgent"}
	ticketWeights    = []int{30, 40, 20, 10}
	ticketStatuses   = []string{"open", "pending", "resolved", "closed"}

	subscriptionPlans    = []string{"basic", "plus", "premium"}
	subscriptionStatuses = []string{"active", "paused", "cancelled"}

	notificationChannels = []string{"email", "sms", "push"}
)

func buildReviews(ctx *Context, count int) (*record.Batch, error) {
	f := ctx.Rand.Faker()
	batch := record.NewBatch(TypeReview, count)

	for i := 0; i < count; i++ {
		id := ctx.Rand.UUID()
		userID, err := ctx.Registry.RandomOne(TypeUser)
		if err != nil {
			return nil, err
		}
		productID, err := ctx.Registry.RandomOne(TypeProduct)
		if err != nil {
			return nil, err
		}
		orderID, err := ctx.Registry.RandomOne(TypeOrder)
		if err != nil {
			return nil, err
		}

		rec := record.New().
			Set("review_id", id).
			Set("user_id", userID).
			Set("product_id", productID).
			Set("order_id", orderID).
			Set("rating", ctx.Rand.IntBetween(1, 5)).
			Set("title", f.Sentence(4)).
			Set("body", f.Paragraph(1, 3, 12, " ")).
			Set("is_verified_purchase", ctx.Rand.Chance(0.7)).
			Set("helpful_votes", ctx.Rand.IntBetween(0, 250)).
			Set("created_at", ctx.Rand.DateBetween(timelineStart, timelineEnd))
		batch.Append(rec, id)
	}

	ctx.Registry.Register(TypeReview, batch.IDs)
	return batch, nil
}

func buildSupportTickets(ctx *Context, count int) (*record.Batch, error) {
	f := ctx.Rand.Faker()
	batch := record.NewBatch(TypeSupportTicket, count)

	for i := 0; i < count; i++ {
		id := ctx.Rand.UUID()
		userID, err := ctx.Registry.RandomOne(TypeUser)
		if err != nil {
			return nil, err
		}
		orderID, err := ctx.Registry.RandomOne(TypeOrder)
		if err != nil {
			return nil, err
		}

		rec := record.New().
			Set("ticket_id", id).
			Set("user_id", userID).
			Set("order_id", orderID).
			Set("subject", f.Sentence(6)).
			Set("body", f.Paragraph(1, 4, 10, " ")).
			Set("priority", ctx.Rand.WeightedPick(ticketPriorities, ticketWeights)).
			Set("status", ctx.Rand.Pick(ticketStatuses)).
			Set("opened_at", ctx.Rand.DateBetween(timelineStart, timelineEnd))
		batch.Append(rec, id)
	}

	ctx.Registry.Register(TypeSupportTicket, batch.IDs)
	return batch, nil
}

func buildPromotions(ctx *Context, count int) (*record.Batch, error) {
	f := ctx.Rand.Faker()
	batch := record.NewBatch(TypePromotion, count)

	for i := 0; i < count; i++ {
		id := ctx.Rand.UUID()
		productID, err := ctx.Registry.RandomOne(TypeProduct)
		if err != nil {
			return nil, err
		}

		startsAt := ctx.Rand.DateBetween(timelineStart, timelineEnd)
		rec := record.New().
			Set("promotion_id", id).
			Set("product_id", productID).
			Set("code", fmt.Sprintf("%s%d", strings.ToUpper(f.Word()), ctx.Rand.IntBetween(10, 99))).
			Set("description", f.Sentence(7)).
			Set("discount_percent", ctx.Rand.IntBetween(5, 60)).
			Set("starts_at", startsAt).
			Set("ends_at", startsAt.Add(time.Duration(ctx.Rand.IntBetween(7, 90))*24*time.Hour)).
			Set("is_active", ctx.Rand.Chance(0.6))
		batch.Append(rec, id)
	}

	ctx.Registry.Register(TypePromotion, batch.IDs)
	return batch, nil
}

func buildSubscriptions(ctx *Context, count int) (*record.Batch, error) {
	batch := record.NewBatch(TypeSubscription, count)

	planFees := map[string]decimal.Decimal{
		"basic":   decimal.NewFromFloat(4.99),
		"plus":    decimal.NewFromFloat(9.99),
		"premium": decimal.NewFromFloat(19.99),
	}

	for i := 0; i < count; i++ {
		id := ctx.Rand.UUID()
		userID, err := ctx.Registry.RandomOne(TypeUser)
		if err != nil {
			return nil, err
		}

		plan := ctx.Rand.Pick(subscriptionPlans)
		startedAt := ctx.Rand.DateBetween(timelineStart, timelineEnd)
		rec := record.New().
			Set("subscription_id", id).
			Set("user_id", userID).
			Set("plan", plan).
			Set("monthly_fee", planFees[plan]).
			Set("status", ctx.Rand.Pick(subscriptionStatuses)).
			Set("started_at", startedAt).
			Set("renews_at", startedAt.Add(30*24*time.Hour))
		batch.Append(rec, id)
	}

	ctx.Registry.Register(TypeSubscription, batch.IDs)
	return batch, nil
}

func buildWishlists(ctx *Context, count int) (*record.Batch, error) {
	f := ctx.Rand.Faker()
	batch := record.NewBatch(TypeWishlist, count)

	for i := 0; i < count; i++ {
		id := ctx.Rand.UUID()
		userID, err := ctx.Registry.RandomOne(TypeUser)
		if err != nil {
			return nil, err
		}

		rec := record.New().
			Set("wishlist_id", id).
			Set("user_id", userID).
			Set("name", fmt.Sprintf("%s list", f.Word())).
			Set("is_public", ctx.Rand.Chance(0.3)).
			Set("created_at", ctx.Rand.DateBetween(timelineStart, timelineEnd))
		batch.Append(rec, id)
	}

	ctx.Registry.Register(TypeWishlist, batch.IDs)
	return batch, nil
}

func buildNotifications(ctx *Context, count int) (*record.Batch, error) {
	f := ctx.Rand.Faker()
	batch := record.NewBatch(TypeNotification, count)

	for i := 0; i < count; i++ {
		id := ctx.Rand.UUID()
		userID, err := ctx.Registry.RandomOne(TypeUser)
		if err != nil {
			return nil, err
		}

		rec := record.New().
			Set("notification_id", id).
			Set("user_id", userID).
			Set("channel", ctx.Rand.Pick(notificationChannels)).
			Set("subject", f.Sentence(5)).
			Set("body", f.Sentence(12)).
			Set("is_read", ctx.Rand.Chance(0.55)).
			Set("sent_at", ctx.Rand.DateBetween(timelineStart, timelineEnd))
		batch.Append(rec, id)
	}

	ctx.Registry.Register(TypeNotification, batch.IDs)
	return batch, nil
}

func buildCarts(ctx *Context, count int) (*record.Batch, error) {
	batch := record.NewBatch(TypeCart, count)

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
				Set("cart_item_id", ctx.Rand.UUID()).
				Set("product_id", productID).
				Set("quantity", quantity).
				Set("unit_price", unitPrice).
				Set("line_total", lineTotal)
			items = append(items, item)
		}

		rec := record.New().
			Set("cart_id", id).
			Set("user_id", userID).
			Set("items", items).
			Set("subtotal", subtotal).
			Set("updated_at", ctx.Rand.DateBetween(timelineStart, timelineEnd))
		batch.Append(rec, id)
	}

	ctx.Registry.Register(TypeCart, batch.IDs)
	return batch, nil
}
