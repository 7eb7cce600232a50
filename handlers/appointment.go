package handlers

import (
	"net/http"

	"doctorsportal/services/availability"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type AppointmentHandler struct {
	Availability availability.Service
}

// GetAppointmentOptionsHandler handles GET /appointmentOptions?date=D.
func (h *AppointmentHandler) GetAppointmentOptionsHandler(c *gin.Context) {
	logger := getLogger(c)
	date := c.Query("date")

	options, err := h.Availability.Available(c.Request.Context(), date)
	if err != nil {
		logger.Error("Failed to compute availability", zap.String("date", date), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load appointment options"})
		return
	}
	c.JSON(http.StatusOK, options)
}

// GetAppointmentOptionsV2Handler handles GET /v2/appointmentOptions?date=D.
func (h *AppointmentHandler) GetAppointmentOptionsV2Handler(c *gin.Context) {
	logger := getLogger(c)
	date := c.Query("date")

	options, err := h.Availability.AvailableAggregated(c.Request.Context(), date)
	if err != nil {
		logger.Error("Failed to aggregate availability", zap.String("date", date), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load appointment options"})
		return
	}
	c.JSON(http.StatusOK, options)
}

// GetSpecialtiesHandler handles GET /appointmentSpecialty.
func (h *AppointmentHandler) GetSpecialtiesHandler(c *gin.Context) {
	specialties, err := h.Availability.Specialties(c.Request.Context())
	if err != nil {
		getLogger(c).Error("Failed to load specialties", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load specialties"})
		return
	}
	c.JSON(http.StatusOK, specialties)
}
