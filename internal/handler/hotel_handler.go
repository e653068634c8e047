package handler

import (
	"errors"
	"net/http"
	"strconv"

	"hotel-service/internal/model"
	"hotel-service/internal/store"
	"hotel-service/internal/validation"
	"hotel-service/internal/view"
	"hotel-service/pkg/logger"
	"hotel-service/prometheus"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// HotelHandler serves the hotel directory: list, create and update.
// Deleting hotels is intentionally unsupported.
type HotelHandler struct {
	store store.HotelStore
}

// NewHotelHandler creates a hotel handler backed by the given store
func NewHotelHandler(s store.HotelStore) *HotelHandler {
	return &HotelHandler{store: s}
}

// List returns all hotels, most recently created first
func (h *HotelHandler) List(c echo.Context) error {
	log := logger.FromEcho(c)
	prometheus.RecordHotelOperation("list")

	hotels, err := h.store.ListHotels(c.Request().Context())
	if err != nil {
		log.Error("Failed to retrieve hotels", zap.Error(err))
		prometheus.RecordHotelError("db_error")
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to retrieve hotels"})
	}

	return c.JSON(http.StatusOK, view.HotelsProps(hotels))
}

// Create validates the submitted form and persists a new hotel
func (h *HotelHandler) Create(c echo.Context) error {
	log := logger.FromEcho(c)
	prometheus.RecordHotelOperation("create")

	var req validation.HotelInput
	if err := c.Bind(&req); err != nil {
		log.Error("Failed to parse hotel creation request", zap.Error(err))
		prometheus.RecordHotelError("invalid_request")
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request"})
	}

	errs, err := validation.ValidateHotel(c.Request().Context(), req, 0, h.store.HotelNameTaken)
	if err != nil {
		log.Error("Failed to check hotel name uniqueness", zap.Error(err))
		prometheus.RecordHotelError("db_error")
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "hotel creation failed"})
	}
	if len(errs) > 0 {
		for field := range errs {
			prometheus.RecordValidationFailure(field)
		}
		log.Warn("Hotel creation rejected by validation", zap.Int("fields", len(errs)))
		return c.JSON(http.StatusUnprocessableEntity, echo.Map{"errors": errs})
	}

	hotel := model.Tenant{
		HotelName:     req.HotelName,
		Address:       req.Address,
		ContactNumber: req.ContactNumber,
	}

	if err := h.store.CreateHotel(c.Request().Context(), &hotel); err != nil {
		log.Error("Failed to create hotel", zap.Error(err))
		prometheus.RecordHotelError("db_error")
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "hotel creation failed"})
	}

	log.Info("Hotel created",
		zap.String("hotel_name", hotel.HotelName),
		zap.Uint("tenant_id", hotel.TenantID))

	return c.JSON(http.StatusCreated, echo.Map{
		"message":  "Hotel created successfully.",
		"redirect": "/hotels",
		"hotel":    hotel,
	})
}

// Update validates the submitted form and mutates an existing hotel in place
func (h *HotelHandler) Update(c echo.Context) error {
	log := logger.FromEcho(c)
	prometheus.RecordHotelOperation("update")

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		log.Error("Invalid hotel ID", zap.Error(err))
		prometheus.RecordHotelError("invalid_request")
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid hotel ID"})
	}
	tenantID := uint(id)

	hotel, err := h.store.FindHotel(c.Request().Context(), tenantID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			log.Warn("Hotel not found", zap.Uint("tenant_id", tenantID))
			prometheus.RecordHotelError("not_found")
			return c.JSON(http.StatusNotFound, echo.Map{"error": "hotel not found"})
		}
		log.Error("Failed to retrieve hotel", zap.Error(err))
		prometheus.RecordHotelError("db_error")
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "hotel update failed"})
	}

	var req validation.HotelInput
	if err := c.Bind(&req); err != nil {
		log.Error("Failed to parse hotel update request", zap.Error(err))
		prometheus.RecordHotelError("invalid_request")
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request"})
	}

	// Uniqueness check excludes the record under edit
	errs, err := validation.ValidateHotel(c.Request().Context(), req, tenantID, h.store.HotelNameTaken)
	if err != nil {
		log.Error("Failed to check hotel name uniqueness", zap.Error(err))
		prometheus.RecordHotelError("db_error")
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "hotel update failed"})
	}
	if len(errs) > 0 {
		for field := range errs {
			prometheus.RecordValidationFailure(field)
		}
		log.Warn("Hotel update rejected by validation",
			zap.Uint("tenant_id", tenantID),
			zap.Int("fields", len(errs)))
		return c.JSON(http.StatusUnprocessableEntity, echo.Map{"errors": errs})
	}

	hotel.HotelName = req.HotelName
	hotel.Address = req.Address
	hotel.ContactNumber = req.ContactNumber

	if err := h.store.UpdateHotel(c.Request().Context(), hotel); err != nil {
		log.Error("Failed to update hotel", zap.Error(err))
		prometheus.RecordHotelError("db_error")
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "hotel update failed"})
	}

	log.Info("Hotel updated",
		zap.String("hotel_name", hotel.HotelName),
		zap.Uint("tenant_id", hotel.TenantID))

	return c.JSON(http.StatusOK, echo.Map{
		"message":  "Hotel updated successfully.",
		"redirect": "/hotels",
		"hotel":    hotel,
	})
}
