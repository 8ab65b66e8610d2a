package usecase

import (
	"context"
	"time"
)

// CourierDailyTotal aggregates one courier's day.
type CourierDailyTotal struct {
	CourierID   string  `json:"motoboy_id"`
	CourierName string  `json:"motoboy"`
	Deliveries  int     `json:"entregas"`
	Delivered   int     `json:"entregues"`
	Returned    int     `json:"voltaram"`
	TotalValue  float64 `json:"valor_total"`
}

// PaymentSummaryLine aggregates deliveries sharing a payment method.
type PaymentSummaryLine struct {
	PaymentMethod string  `json:"forma_pagamento"`
	Count         int     `json:"quantidade"`
	Received      int     `json:"recebidas"`
	Outstanding   int     `json:"pendentes"`
	TotalValue    float64 `json:"valor_total"`
}

// RegionTotal aggregates one region's day.
type RegionTotal struct {
	Region     string `json:"regiao"`
	Deliveries int    `json:"entregas"`
}

// ReportUsecase defines the read-only aggregate views of the dashboard.
type ReportUsecase interface {
	// DailyTotals aggregates the day's deliveries per courier.
	DailyTotals(ctx context.Context, day time.Time) ([]*CourierDailyTotal, error)

	// PaymentSummary aggregates deliveries by payment method over a range.
	PaymentSummary(ctx context.Context, from, to time.Time) ([]*PaymentSummaryLine, error)

	// RegionBreakdown aggregates the day's deliveries per region.
	RegionBreakdown(ctx context.Context, day time.Time) ([]*RegionTotal, error)
}
