package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/medilog/medilog-api/internal/api/middleware"
	"github.com/medilog/medilog-api/internal/core/domain"
	"github.com/medilog/medilog-api/internal/core/ports"
)

type stubMetricsService struct {
	getFn  func(ctx context.Context, userID int64, date string) (*domain.HealthMetrics, error)
	saveFn func(ctx context.Context, userID int64, input ports.HealthMetricsInput) (*domain.HealthMetrics, error)
}

func (s *stubMetricsService) GetByDate(ctx context.Context, userID int64, date string) (*domain.HealthMetrics, error) {
	return s.getFn(ctx, userID, date)
}

func (s *stubMetricsService) SaveOrUpdate(ctx context.Context, userID int64, input ports.HealthMetricsInput) (*domain.HealthMetrics, error) {
	return s.saveFn(ctx, userID, input)
}

func authenticate(c echo.Context, userID int64) {
	c.Set(middleware.CtxUserID, userID)
	c.Set(middleware.CtxUserEmail, "a@x.com")
}

func TestHealthMetricsHandler_GetByDate_RequiresIdentity(t *testing.T) {
	e := echo.New()
	e.Validator = NewValidator()
	h := NewHealthMetricsHandler(&stubMetricsService{})

	c, _ := newJSONContext(e, http.MethodPost, "/api/health-metrics/get-by-date", `{"date":"2026-01-15"}`)

	if err := h.GetByDate(c); !errors.Is(err, domain.ErrUnauthenticated) {
		t.Fatalf("expected ErrUnauthenticated, got %v", err)
	}
}

func TestHealthMetricsHandler_GetByDate_MissingDate(t *testing.T) {
	e := echo.New()
	e.Validator = NewValidator()
	h := NewHealthMetricsHandler(&stubMetricsService{})

	c, rec := newJSONContext(e, http.MethodPost, "/api/health-metrics/get-by-date", `{}`)
	authenticate(c, 1)

	if err := h.GetByDate(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestHealthMetricsHandler_GetByDate_NoRecordIsSuccess(t *testing.T) {
	e := echo.New()
	e.Validator = NewValidator()
	h := NewHealthMetricsHandler(&stubMetricsService{
		getFn: func(_ context.Context, userID int64, date string) (*domain.HealthMetrics, error) {
			if userID != 7 || date != "2026-01-15" {
				t.Fatalf("unexpected args: %d %s", userID, date)
			}
			return nil, nil
		},
	})

	c, rec := newJSONContext(e, http.MethodPost, "/api/health-metrics/get-by-date", `{"date":"2026-01-15"}`)
	authenticate(c, 7)

	if err := h.GetByDate(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp Response
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if !resp.Success || resp.Data != nil {
		t.Fatalf("expected success with null data, got %+v", resp)
	}
}

func TestHealthMetricsHandler_Save_Success(t *testing.T) {
	e := echo.New()
	e.Validator = NewValidator()
	h := NewHealthMetricsHandler(&stubMetricsService{
		saveFn: func(_ context.Context, userID int64, input ports.HealthMetricsInput) (*domain.HealthMetrics, error) {
			if input.Steps == nil || *input.Steps != 8000 {
				t.Fatalf("steps not passed through: %+v", input.Steps)
			}
			steps := *input.Steps
			return &domain.HealthMetrics{ID: 3, UserID: userID, Steps: &steps, Mood: input.Mood}, nil
		},
	})

	c, rec := newJSONContext(e, http.MethodPost, "/api/health-metrics/save", `{"steps":8000,"mood":"great"}`)
	authenticate(c, 7)

	if err := h.Save(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestHealthMetricsHandler_Save_RequiresIdentity(t *testing.T) {
	e := echo.New()
	e.Validator = NewValidator()
	h := NewHealthMetricsHandler(&stubMetricsService{})

	c, _ := newJSONContext(e, http.MethodPost, "/api/health-metrics/save", `{"steps":1}`)

	if err := h.Save(c); !errors.Is(err, domain.ErrUnauthenticated) {
		t.Fatalf("expected ErrUnauthenticated, got %v", err)
	}
}
