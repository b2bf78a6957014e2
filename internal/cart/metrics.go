package cart

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

type Metrics struct {
	itemsAddedTotal     metric.Int64Counter
	promosAppliedTotal  metric.Int64Counter
	pointsRedeemedTotal metric.Int64Counter
}

func NewMetrics(meter metric.Meter) (*Metrics, error) {
	m := &Metrics{}

	var err error

	m.itemsAddedTotal, err = meter.Int64Counter(
		"cart_items_added_total",
		metric.WithDescription("Total number of units added to carts"),
		metric.WithUnit("{item}"),
	)
	if err != nil {
		return nil, fmt.Errorf("create cart_items_added_total counter: %w", err)
	}

	m.promosAppliedTotal, err = meter.Int64Counter(
		"cart_promos_applied_total",
		metric.WithDescription("Total number of promo codes applied to carts"),
		metric.WithUnit("{promo}"),
	)
	if err != nil {
		return nil, fmt.Errorf("create cart_promos_applied_total counter: %w", err)
	}

	m.pointsRedeemedTotal, err = meter.Int64Counter(
		"cart_loyalty_points_redeemed_total",
		metric.WithDescription("Total number of loyalty points applied to carts"),
		metric.WithUnit("{point}"),
	)
	if err != nil {
		return nil, fmt.Errorf("create cart_loyalty_points_redeemed_total counter: %w", err)
	}

	return m, nil
}

func (m *Metrics) RecordItemsAdded(ctx context.Context, quantity int) {
	if m == nil {
		return
	}
	m.itemsAddedTotal.Add(ctx, int64(quantity))
}

func (m *Metrics) RecordPromoApplied(ctx context.Context, kind string) {
	if m == nil {
		return
	}
	m.promosAppliedTotal.Add(ctx, 1, metric.WithAttributes(
		attribute.String("kind", kind),
	))
}

func (m *Metrics) RecordPointsRedeemed(ctx context.Context, points int) {
	if m == nil {
		return
	}
	m.pointsRedeemedTotal.Add(ctx, int64(points))
}
