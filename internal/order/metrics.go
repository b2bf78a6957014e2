package order

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

type Metrics struct {
	ordersCreatedTotal   metric.Int64Counter
	ordersCancelledTotal metric.Int64Counter
	orderTotalAmount     metric.Float64Histogram
}

func NewMetrics(meter metric.Meter) (*Metrics, error) {
	m := &Metrics{}

	var err error

	m.ordersCreatedTotal, err = meter.Int64Counter(
		"orders_created_total",
		metric.WithDescription("Total number of orders created"),
		metric.WithUnit("{order}"),
	)
	if err != nil {
		return nil, fmt.Errorf("create orders_created_total counter: %w", err)
	}

	m.ordersCancelledTotal, err = meter.Int64Counter(
		"orders_cancelled_total",
		metric.WithDescription("Total number of orders cancelled"),
		metric.WithUnit("{order}"),
	)
	if err != nil {
		return nil, fmt.Errorf("create orders_cancelled_total counter: %w", err)
	}

	m.orderTotalAmount, err = meter.Float64Histogram(
		"order_total_amount",
		metric.WithDescription("Distribution of order grand totals"),
		metric.WithUnit("{currency}"),
	)
	if err != nil {
		return nil, fmt.Errorf("create order_total_amount histogram: %w", err)
	}

	return m, nil
}

func (m *Metrics) RecordOrderCreated(ctx context.Context, success bool, total float64) {
	if m == nil {
		return
	}
	status := "success"
	if !success {
		status = "error"
	}
	m.ordersCreatedTotal.Add(ctx, 1, metric.WithAttributes(
		attribute.String("status", status),
	))
	if success {
		m.orderTotalAmount.Record(ctx, total)
	}
}

func (m *Metrics) RecordOrderCancelled(ctx context.Context) {
	if m == nil {
		return
	}
	m.ordersCancelledTotal.Add(ctx, 1)
}
