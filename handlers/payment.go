package handlers

import (
	"errors"
	"net/http"

	"doctorsportal/middleware"
	"doctorsportal/models"
	"doctorsportal/services/payment"
	"doctorsportal/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// PaymentHandler serves card payments. A nil PaymentService means payments
// are not configured.
type PaymentHandler struct {
	PaymentService payment.PaymentService
}

func (h *PaymentHandler) enabled(c *gin.Context) bool {
	if h == nil || h.PaymentService == nil {
		utils.JSONError(c, http.StatusServiceUnavailable, "payments are not configured", "")
		return false
	}
	return true
}

// CreatePaymentIntentHandler handles POST /create-payment-intent.
func (h *PaymentHandler) CreatePaymentIntentHandler(c *gin.Context) {
	if !h.enabled(c) {
		return
	}
	var req models.PaymentIntentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	res, err := h.PaymentService.CreatePaymentIntent(c.Request.Context(), req.Price)
	if err != nil {
		if errors.Is(err, payment.ErrInvalidAmount) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		getLogger(c).Error("Payment intent failed", zap.Float64("price", req.Price), zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": "failed to create payment intent"})
		return
	}
	c.JSON(http.StatusOK, res)
}

// RecordPaymentHandler handles POST /payments for the booking's owner.
func (h *PaymentHandler) RecordPaymentHandler(c *gin.Context) {
	if !h.enabled(c) {
		return
	}
	var req models.Payment
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	// The payer is always the verified identity.
	req.Email = middleware.DecodedEmail(c)

	res, err := h.PaymentService.RecordPayment(c.Request.Context(), req)
	switch {
	case errors.Is(err, payment.ErrInvalidBookingID), errors.Is(err, payment.ErrMissingTxID):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	case errors.Is(err, payment.ErrBookingNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	case errors.Is(err, payment.ErrNotBookingOwner):
		c.JSON(http.StatusForbidden, gin.H{"message": "forbidden access"})
		return
	case err != nil:
		getLogger(c).Error("Failed to record payment", zap.String("bookingId", req.BookingID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to record payment"})
		return
	}
	c.JSON(http.StatusOK, res)
}
