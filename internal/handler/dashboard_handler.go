package handler

import (
	"errors"
	"net/http"

	"hotel-service/internal/dashboard"
	"hotel-service/internal/store"
	"hotel-service/internal/view"
	"hotel-service/pkg/jwtutil"
	"hotel-service/pkg/logger"
	"hotel-service/prometheus"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// DashboardHandler serves the role-dependent dashboard
type DashboardHandler struct {
	resolver *dashboard.Resolver
}

// NewDashboardHandler creates a dashboard handler backed by the given store
func NewDashboardHandler(s store.HotelStore) *DashboardHandler {
	return &DashboardHandler{resolver: dashboard.NewResolver(s)}
}

// Show resolves the authenticated user to one of the three dashboard views
// and renders it
func (h *DashboardHandler) Show(c echo.Context) error {
	log := logger.FromEcho(c)

	claims, ok := c.Get("user").(*jwtutil.UserClaims)
	if !ok {
		log.Error("Failed to get user claims from context")
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "authentication required"})
	}

	v, err := h.resolver.Resolve(c.Request().Context(), claims.Role, claims.TenantID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			// User record points at a hotel that no longer exists
			log.Warn("Dashboard tenant not found",
				zap.Uint("user_id", claims.UserID),
				zap.Uintp("tenant_id", claims.TenantID))
			prometheus.RecordHotelError("not_found")
			return c.JSON(http.StatusNotFound, echo.Map{"error": "hotel not found"})
		}
		log.Error("Failed to resolve dashboard", zap.Error(err))
		prometheus.RecordHotelError("db_error")
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to load dashboard"})
	}

	prometheus.RecordDashboardView(v.Kind())
	return c.JSON(http.StatusOK, view.DashboardProps(v))
}
