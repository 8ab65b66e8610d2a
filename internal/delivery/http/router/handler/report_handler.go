package handler

import (
	"net/http"
	"time"

	"romaneio/internal/delivery/http/response"
	"romaneio/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ReportHandler holds dependencies for the aggregate report handlers.
type ReportHandler struct {
	uc usecase.ReportUsecase
}

// NewReportHandler is the constructor for ReportHandler, injected by Fx.
func NewReportHandler(uc usecase.ReportUsecase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// DailyTotals returns the per-courier totals of one day.
func (h *ReportHandler) DailyTotals(c echo.Context) error {
	day, err := dayQueryParam(c, "data")
	if err != nil {
		return response.BadRequest(c, "INVALID_DATE", "Data inválida, use AAAA-MM-DD")
	}

	totals, err := h.uc.DailyTotals(c.Request().Context(), day)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, totals, "")
}

// PaymentSummary returns the payment-method aggregates over a date range.
func (h *ReportHandler) PaymentSummary(c echo.Context) error {
	from, err := dayQueryParam(c, "de")
	if err != nil {
		return response.BadRequest(c, "INVALID_DATE", "Data inicial inválida, use AAAA-MM-DD")
	}
	to, err := dayQueryParam(c, "ate")
	if err != nil {
		return response.BadRequest(c, "INVALID_DATE", "Data final inválida, use AAAA-MM-DD")
	}

	summary, err := h.uc.PaymentSummary(c.Request().Context(), from, to)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, summary, "")
}

// RegionBreakdown returns the per-region totals of one day.
func (h *ReportHandler) RegionBreakdown(c echo.Context) error {
	day, err := dayQueryParam(c, "data")
	if err != nil {
		return response.BadRequest(c, "INVALID_DATE", "Data inválida, use AAAA-MM-DD")
	}

	breakdown, err := h.uc.RegionBreakdown(c.Request().Context(), day)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, breakdown, "")
}

// dayQueryParam parses a AAAA-MM-DD query parameter, defaulting to today.
func dayQueryParam(c echo.Context, name string) (time.Time, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return time.Now(), nil
	}

	return time.Parse(dateLayout, raw)
}
