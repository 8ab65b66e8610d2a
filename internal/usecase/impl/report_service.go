package impl

import (
	"context"
	"sort"
	"time"

	"romaneio/internal/domain/entity"
	"romaneio/internal/domain/repository"
	"romaneio/internal/usecase"

	"github.com/pkg/errors"
)

// reportService implements the ReportUsecase interface. All reports are
// derived on the fly from the delivery set; nothing is materialized.
type reportService struct {
	deliveryRepo repository.DeliveryRepository
	courierRepo  repository.CourierRepository
}

// NewReportService is the constructor for reportService.
func NewReportService(
	deliveryRepo repository.DeliveryRepository,
	courierRepo repository.CourierRepository,
) usecase.ReportUsecase {
	return &reportService{
		deliveryRepo: deliveryRepo,
		courierRepo:  courierRepo,
	}
}

// DailyTotals aggregates the day's deliveries per courier.
func (srv *reportService) DailyTotals(ctx context.Context, day time.Time) ([]*usecase.CourierDailyTotal, error) {
	deliveries, err := srv.deliveryRepo.List(ctx, repository.DeliveryFilter{Date: &day})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list deliveries")
	}

	couriers, err := srv.courierRepo.FindAll(ctx, false)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list couriers")
	}
	names := make(map[string]string, len(couriers))
	for _, courier := range couriers {
		names[courier.ID.String()] = courier.Name
	}

	totals := make(map[string]*usecase.CourierDailyTotal)
	for _, delivery := range deliveries {
		if delivery.CourierID == nil {
			continue
		}

		key := delivery.CourierID.String()
		total, ok := totals[key]
		if !ok {
			total = &usecase.CourierDailyTotal{CourierID: key, CourierName: names[key]}
			totals[key] = total
		}

		total.Deliveries++
		total.TotalValue += delivery.Value
		switch delivery.Status {
		case entity.StatusDelivered:
			total.Delivered++
		case entity.StatusReturned:
			total.Returned++
		}
	}

	return sortedByName(totals), nil
}

// PaymentSummary aggregates deliveries by payment method over a range.
func (srv *reportService) PaymentSummary(ctx context.Context, from, to time.Time) ([]*usecase.PaymentSummaryLine, error) {
	lines := make(map[string]*usecase.PaymentSummaryLine)

	for day := from; !day.After(to); day = day.AddDate(0, 0, 1) {
		deliveries, err := srv.deliveryRepo.List(ctx, repository.DeliveryFilter{Date: &day})
		if err != nil {
			return nil, errors.Wrap(err, "failed to list deliveries")
		}

		for _, delivery := range deliveries {
			method := delivery.PaymentMethod
			if method == "" {
				method = "Não informado"
			}

			line, ok := lines[method]
			if !ok {
				line = &usecase.PaymentSummaryLine{PaymentMethod: method}
				lines[method] = line
			}

			line.Count++
			line.TotalValue += delivery.Value
			if delivery.PaymentReceived {
				line.Received++
			} else {
				line.Outstanding++
			}
		}
	}

	result := make([]*usecase.PaymentSummaryLine, 0, len(lines))
	for _, line := range lines {
		result = append(result, line)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].PaymentMethod < result[j].PaymentMethod
	})

	return result, nil
}

// RegionBreakdown aggregates the day's deliveries per region.
func (srv *reportService) RegionBreakdown(ctx context.Context, day time.Time) ([]*usecase.RegionTotal, error) {
	deliveries, err := srv.deliveryRepo.List(ctx, repository.DeliveryFilter{Date: &day})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list deliveries")
	}

	totals := make(map[string]*usecase.RegionTotal)
	for _, delivery := range deliveries {
		region := delivery.Region
		if region == "" {
			region = "Sem região"
		}

		total, ok := totals[region]
		if !ok {
			total = &usecase.RegionTotal{Region: region}
			totals[region] = total
		}
		total.Deliveries++
	}

	result := make([]*usecase.RegionTotal, 0, len(totals))
	for _, total := range totals {
		result = append(result, total)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].Region < result[j].Region
	})

	return result, nil
}

func sortedByName(totals map[string]*usecase.CourierDailyTotal) []*usecase.CourierDailyTotal {
	result := make([]*usecase.CourierDailyTotal, 0, len(totals))
	for _, total := range totals {
		result = append(result, total)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].CourierName < result[j].CourierName
	})

	return result
}
