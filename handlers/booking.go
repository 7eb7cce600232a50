package handlers

import (
	"errors"
	"net/http"

	"doctorsportal/middleware"
	"doctorsportal/models"
	"doctorsportal/services/booking"
	"doctorsportal/utils"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type BookingHandler struct {
	BookingService booking.BookingService
}

// CreateBookingHandler handles POST /bookings. Conflicts are a normal
// outcome and answer 200 with acknowledged=false.
func (h *BookingHandler) CreateBookingHandler(c *gin.Context) {
	logger := getLogger(c)

	var req models.Booking
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	result, err := h.BookingService.Admit(c.Request.Context(), req)
	if err != nil {
		var conflict *booking.ConflictError
		var invalid *booking.ValidationError
		switch {
		case errors.As(err, &conflict):
			logger.Info("Booking rejected", zap.String("code", conflict.Code), zap.String("email", req.Email))
			c.JSON(http.StatusOK, models.Conflict(conflict.Message))
		case errors.As(err, &invalid):
			c.JSON(http.StatusBadRequest, gin.H{"error": invalid.Error()})
		default:
			logger.Error("Failed to admit booking", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create booking"})
		}
		return
	}
	c.JSON(http.StatusOK, result)
}

// ListBookingsHandler handles GET /bookings?email=E. The route guard has
// already matched E against the token.
func (h *BookingHandler) ListBookingsHandler(c *gin.Context) {
	email := c.Query("email")
	bookings, err := h.BookingService.ListByEmail(c.Request.Context(), email)
	if err != nil {
		getLogger(c).Error("Failed to list bookings", zap.String("email", email), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load bookings"})
		return
	}
	c.JSON(http.StatusOK, bookings)
}

// GetBookingHandler handles GET /bookings/:id for the booking's owner.
func (h *BookingHandler) GetBookingHandler(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid booking id", err.Error())
		return
	}

	b, err := h.BookingService.Get(c.Request.Context(), id)
	switch {
	case errors.Is(err, booking.ErrBookingNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	case err != nil:
		getLogger(c).Error("Failed to load booking", zap.String("id", id.Hex()), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load booking"})
		return
	}

	if b.Email != middleware.DecodedEmail(c) {
		c.JSON(http.StatusForbidden, gin.H{"message": "forbidden access"})
		return
	}
	c.JSON(http.StatusOK, b)
}
