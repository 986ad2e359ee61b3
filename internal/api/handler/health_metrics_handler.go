package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/medilog/medilog-api/internal/api/metrics"
	"github.com/medilog/medilog-api/internal/core/domain"
	"github.com/medilog/medilog-api/internal/core/ports"
)

type HealthMetricsHandler struct {
	metricsService ports.HealthMetricsService
}

func NewHealthMetricsHandler(metricsService ports.HealthMetricsService) *HealthMetricsHandler {
	return &HealthMetricsHandler{metricsService: metricsService}
}

type getByDateRequest struct {
	Date string `json:"date" validate:"required,datetime=2006-01-02"`
}

type saveMetricsRequest struct {
	WaterIntake   *int     `json:"waterIntake"   validate:"omitempty,gte=0"`
	SleepDuration *int     `json:"sleepDuration" validate:"omitempty,gte=0"`
	Steps         *int     `json:"steps"         validate:"omitempty,gte=0"`
	HeartRate     *int     `json:"heartRate"     validate:"omitempty,gte=0"`
	SystolicBP    *int     `json:"systolicBP"    validate:"omitempty,gte=0"`
	DiastolicBP   *int     `json:"diastolicBP"   validate:"omitempty,gte=0"`
	Weight        *float64 `json:"weight"        validate:"omitempty,gte=0"`
	Mood          string   `json:"mood"`
}

// GetByDate returns the caller's record for the requested date. A date
// with no record is a success with null data, not an error.
//
// @Summary      Get health metrics for a date
// @Tags         health-metrics
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      getByDateRequest  true  "Date to fetch"
// @Success      200   {object}  Response
// @Failure      400   {object}  Response
// @Failure      401   {object}  Response
// @Router       /api/health-metrics/get-by-date [post]
func (h *HealthMetricsHandler) GetByDate(c echo.Context) error {
	userID, _, ok := ctxIdentity(c)
	if !ok {
		return domain.ErrUnauthenticated
	}

	var req getByDateRequest
	if err := c.Bind(&req); err != nil {
		return Fail(c, http.StatusBadRequest, "invalid payload", nil)
	}
	if req.Date == "" {
		return Fail(c, http.StatusBadRequest, "Date is required", nil)
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	record, err := h.metricsService.GetByDate(c.Request().Context(), userID, req.Date)
	if err != nil {
		return err
	}
	if record == nil {
		return OK(c, http.StatusOK, "No health metrics found for the specified date", nil)
	}
	return OK(c, http.StatusOK, "Health metrics retrieved successfully", record)
}

// Save upserts the caller's record for the current date.
//
// @Summary      Save today's health metrics
// @Tags         health-metrics
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      saveMetricsRequest  true  "Measurements"
// @Success      200   {object}  Response
// @Failure      401   {object}  Response
// @Failure      500   {object}  Response
// @Router       /api/health-metrics/save [post]
func (h *HealthMetricsHandler) Save(c echo.Context) error {
	userID, _, ok := ctxIdentity(c)
	if !ok {
		return domain.ErrUnauthenticated
	}

	var req saveMetricsRequest
	if err := c.Bind(&req); err != nil {
		return Fail(c, http.StatusBadRequest, "invalid payload", nil)
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	saved, err := h.metricsService.SaveOrUpdate(c.Request().Context(), userID, ports.HealthMetricsInput{
		WaterIntake:   req.WaterIntake,
		SleepDuration: req.SleepDuration,
		Steps:         req.Steps,
		HeartRate:     req.HeartRate,
		SystolicBP:    req.SystolicBP,
		DiastolicBP:   req.DiastolicBP,
		Weight:        req.Weight,
		Mood:          req.Mood,
	})
	if err != nil {
		return err
	}

	metrics.HealthMetricsSavedTotal.Inc()
	return OK(c, http.StatusOK, "Health metrics saved successfully", saved)
}
