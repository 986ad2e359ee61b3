package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/medilog/medilog-api/internal/api/metrics"
	"github.com/medilog/medilog-api/internal/core/domain"
	"github.com/medilog/medilog-api/internal/core/ports"
)

// FeatureFlagHandler serves the superadmin feature-flag surface. All
// routes sit behind the bearer-token gate.
type FeatureFlagHandler struct {
	flagService ports.FeatureFlagService
}

func NewFeatureFlagHandler(flagService ports.FeatureFlagService) *FeatureFlagHandler {
	return &FeatureFlagHandler{flagService: flagService}
}

type featureFlagRequest struct {
	Name              string  `json:"featureFlagName"   validate:"required"`
	EnabledAccountIDs []int64 `json:"enabledAccountIds"`
	Description       string  `json:"description"`
}

// simpleFlagResponse is the reduced shape returned when listing the flags
// enabled for an account.
type simpleFlagResponse struct {
	ID          int64  `json:"id"`
	Name        string `json:"featureFlagName"`
	Description string `json:"description"`
}

func (r featureFlagRequest) toInput() ports.FeatureFlagInput {
	return ports.FeatureFlagInput{
		Name:              r.Name,
		EnabledAccountIDs: r.EnabledAccountIDs,
		Description:       r.Description,
	}
}

// Create handles POST /api/superadmin/feature-flags.
func (h *FeatureFlagHandler) Create(c echo.Context) error {
	if _, _, ok := ctxIdentity(c); !ok {
		return domain.ErrUnauthenticated
	}

	var req featureFlagRequest
	if err := c.Bind(&req); err != nil {
		return Fail(c, http.StatusBadRequest, "invalid payload", nil)
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	flag, err := h.flagService.Create(c.Request().Context(), req.toInput())
	if err != nil {
		return err
	}
	return OK(c, http.StatusCreated, "Feature flag created successfully", flag)
}

// Update handles PUT /api/superadmin/feature-flags/:id.
func (h *FeatureFlagHandler) Update(c echo.Context) error {
	if _, _, ok := ctxIdentity(c); !ok {
		return domain.ErrUnauthenticated
	}

	id, err := flagID(c)
	if err != nil {
		return err
	}

	var req featureFlagRequest
	if err := c.Bind(&req); err != nil {
		return Fail(c, http.StatusBadRequest, "invalid payload", nil)
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	flag, err := h.flagService.Update(c.Request().Context(), id, req.toInput())
	if err != nil {
		return err
	}
	return OK(c, http.StatusOK, "Feature flag updated successfully", flag)
}

// Delete handles DELETE /api/superadmin/feature-flags/:id.
func (h *FeatureFlagHandler) Delete(c echo.Context) error {
	if _, _, ok := ctxIdentity(c); !ok {
		return domain.ErrUnauthenticated
	}

	id, err := flagID(c)
	if err != nil {
		return err
	}

	if err := h.flagService.Delete(c.Request().Context(), id); err != nil {
		return err
	}
	return OK(c, http.StatusOK, "Feature flag deleted successfully", nil)
}

// GetAll handles GET /api/superadmin/feature-flags.
func (h *FeatureFlagHandler) GetAll(c echo.Context) error {
	if _, _, ok := ctxIdentity(c); !ok {
		return domain.ErrUnauthenticated
	}

	flags, err := h.flagService.GetAll(c.Request().Context())
	if err != nil {
		return err
	}
	return OK(c, http.StatusOK, "Feature flags retrieved successfully", flags)
}

// GetByID handles GET /api/superadmin/feature-flags/:id.
func (h *FeatureFlagHandler) GetByID(c echo.Context) error {
	if _, _, ok := ctxIdentity(c); !ok {
		return domain.ErrUnauthenticated
	}

	id, err := flagID(c)
	if err != nil {
		return err
	}

	flag, err := h.flagService.GetByID(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return OK(c, http.StatusOK, "Feature flag retrieved successfully", flag)
}

// ListForUser handles GET /api/superadmin/feature-flags/user: the flags
// enabled for the logged-in account, in reduced shape.
func (h *FeatureFlagHandler) ListForUser(c echo.Context) error {
	accountID, _, ok := ctxIdentity(c)
	if !ok {
		return domain.ErrUnauthenticated
	}

	flags, err := h.flagService.ListForAccount(c.Request().Context(), accountID)
	if err != nil {
		return err
	}

	out := make([]simpleFlagResponse, 0, len(flags))
	for _, f := range flags {
		out = append(out, simpleFlagResponse{ID: f.ID, Name: f.Name, Description: f.Description})
	}
	return OK(c, http.StatusOK, "User feature flags retrieved successfully", out)
}

// Check handles GET /api/superadmin/feature-flags/check/:name/user/:accountId.
// Unknown flag names read as disabled.
func (h *FeatureFlagHandler) Check(c echo.Context) error {
	if _, _, ok := ctxIdentity(c); !ok {
		return domain.ErrUnauthenticated
	}

	accountID, err := strconv.ParseInt(c.Param("accountId"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid account id")
	}

	enabled, err := h.flagService.IsEnabledFor(c.Request().Context(), c.Param("name"), accountID)
	if err != nil {
		return err
	}

	result := "disabled"
	if enabled {
		result = "enabled"
	}
	metrics.FlagChecksTotal.WithLabelValues(result).Inc()

	return OK(c, http.StatusOK, "Feature flag status retrieved", enabled)
}

func flagID(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid feature flag id")
	}
	return id, nil
}
