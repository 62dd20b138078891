// Package analyticsdelivery manages delivery layer of risk and efficiency
// analytics.
package analyticsdelivery

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/evermed/finvalid/internal/domain"
	"github.com/evermed/finvalid/internal/metricsservice"
	"github.com/evermed/finvalid/pkg/errorspkg"
	"github.com/evermed/finvalid/pkg/web"
)

// DefaultRiskWindowDays is the trailing window scored when the request does
// not name one.
const DefaultRiskWindowDays = 30

// RiskService provides the risk scoring interface needed by analytics
// delivery layer.
//
//go:generate mockgen -source http.go -destination http_mock.go -package analyticsdelivery
type RiskService interface {
	Score(ctx context.Context, window domain.DateWindow) (domain.RiskAssessment, error)
}

// MetricsService provides the efficiency metrics interface needed by
// analytics delivery layer.
type MetricsService interface {
	ApprovalRate(ctx context.Context, days int) (decimal.Decimal, error)
	AverageProcessingHours(ctx context.Context, days int) (hours decimal.Decimal, estimated bool, err error)
	DailyCompletionRate(ctx context.Context, day time.Time) (decimal.Decimal, error)
	PendingCountTrend(ctx context.Context) (domain.TrendDelta, error)
	NetCashFlowTrend(ctx context.Context) (domain.TrendDelta, error)
}

// Handler facilitates analytics delivery layer logic.
type Handler struct {
	risk    RiskService
	metrics MetricsService
	now     func() time.Time
}

// NewHandler returns analytics handler.
func NewHandler(r RiskService, m MetricsService) Handler {
	return Handler{risk: r, metrics: m, now: time.Now}
}

func analyticsStatusCode(err error) int {
	if errors.Is(err, domain.ErrDataUnavailable) {
		return http.StatusServiceUnavailable
	}

	return http.StatusInternalServerError
}

type riskRequest struct {
	Days int `form:"days" binding:"omitempty,min=1,max=365"`
}

type riskData struct {
	Risk domain.RiskAssessment `json:"risk"`
}

// Risk handles http request to score the trailing risk window.
func (h *Handler) Risk(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(ctx)

	var req riskRequest
	if err := gctx.ShouldBindQuery(&req); err != nil {
		var (
			ve     validator.ValidationErrors
			errMsg string
		)

		if errors.As(err, &ve) {
			field := ve[0]
			errMsg = field.Field() + web.GetErrorMsg(field)
		}

		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, web.Response{Error: errMsg})

		return
	}

	days := req.Days
	if days == 0 {
		days = DefaultRiskWindowDays
	}

	window := domain.TrailingDays(h.now(), days)

	assessment, err := h.risk.Score(ctx, window)
	if err != nil {
		code := analyticsStatusCode(err)
		if code == http.StatusInternalServerError {
			gctx.JSON(code, web.Error(errorspkg.ErrInternal))
			return
		}

		gctx.JSON(code, web.Error(err))

		return
	}

	gctx.JSON(http.StatusOK, web.Response{Data: riskData{assessment}})
}

type efficiencyData struct {
	ApprovalRate             decimal.Decimal `json:"approval_rate"`
	AvgProcessingHours       decimal.Decimal `json:"avg_processing_hours"`
	ProcessingHoursEstimated bool            `json:"processing_hours_estimated"`
	DailyCompletionRate      decimal.Decimal `json:"daily_completion_rate"`
}

// Efficiency handles http request for the operational efficiency metrics.
func (h *Handler) Efficiency(gctx *gin.Context) {
	ctx := gctx.Request.Context()

	rate, err := h.metrics.ApprovalRate(ctx, metricsservice.ApprovalRateDays)
	if err != nil {
		code := analyticsStatusCode(err)
		if code == http.StatusInternalServerError {
			gctx.JSON(code, web.Error(errorspkg.ErrInternal))
			return
		}

		gctx.JSON(code, web.Error(err))

		return
	}

	hours, estimated, err := h.metrics.AverageProcessingHours(ctx, metricsservice.ProcessingHoursDays)
	if err != nil {
		code := analyticsStatusCode(err)
		if code == http.StatusInternalServerError {
			gctx.JSON(code, web.Error(errorspkg.ErrInternal))
			return
		}

		gctx.JSON(code, web.Error(err))

		return
	}

	completion, err := h.metrics.DailyCompletionRate(ctx, domain.BusinessDay(h.now()))
	if err != nil {
		code := analyticsStatusCode(err)
		if code == http.StatusInternalServerError {
			gctx.JSON(code, web.Error(errorspkg.ErrInternal))
			return
		}

		gctx.JSON(code, web.Error(err))

		return
	}

	data := efficiencyData{
		ApprovalRate:             rate,
		AvgProcessingHours:       hours,
		ProcessingHoursEstimated: estimated,
		DailyCompletionRate:      completion,
	}

	gctx.JSON(http.StatusOK, web.Response{Data: data})
}

type trendsData struct {
	PendingCount domain.TrendDelta `json:"pending_count"`
	NetCashFlow  domain.TrendDelta `json:"net_cash_flow"`
}

// Trends handles http request for the workload and cash-flow trend deltas.
func (h *Handler) Trends(gctx *gin.Context) {
	ctx := gctx.Request.Context()

	pending, err := h.metrics.PendingCountTrend(ctx)
	if err != nil {
		code := analyticsStatusCode(err)
		if code == http.StatusInternalServerError {
			gctx.JSON(code, web.Error(errorspkg.ErrInternal))
			return
		}

		gctx.JSON(code, web.Error(err))

		return
	}

	cashFlow, err := h.metrics.NetCashFlowTrend(ctx)
	if err != nil {
		code := analyticsStatusCode(err)
		if code == http.StatusInternalServerError {
			gctx.JSON(code, web.Error(errorspkg.ErrInternal))
			return
		}

		gctx.JSON(code, web.Error(err))

		return
	}

	gctx.JSON(http.StatusOK, web.Response{Data: trendsData{PendingCount: pending, NetCashFlow: cashFlow}})
}
