package handlers

import (
	"errors"
	"net/http"

	"doctorsportal/models"
	"doctorsportal/services/doctor"
	"doctorsportal/utils"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type DoctorHandler struct {
	DoctorService doctor.DoctorService
}

// AddDoctorHandler handles POST /doctors.
func (h *DoctorHandler) AddDoctorHandler(c *gin.Context) {
	var req models.Doctor
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	result, err := h.DoctorService.AddDoctor(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, doctor.ErrInvalidDoctor) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		getLogger(c).Error("Failed to add doctor", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to add doctor"})
		return
	}
	c.JSON(http.StatusOK, result)
}

// GetDoctorsHandler handles GET /doctors.
func (h *DoctorHandler) GetDoctorsHandler(c *gin.Context) {
	doctors, err := h.DoctorService.ListDoctors(c.Request.Context())
	if err != nil {
		getLogger(c).Error("Failed to list doctors", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load doctors"})
		return
	}
	c.JSON(http.StatusOK, doctors)
}

// DeleteDoctorHandler handles DELETE /doctors/:id.
func (h *DoctorHandler) DeleteDoctorHandler(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid doctor id", err.Error())
		return
	}

	result, err := h.DoctorService.RemoveDoctor(c.Request.Context(), id)
	if err != nil {
		getLogger(c).Error("Failed to delete doctor", zap.String("id", id.Hex()), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete doctor"})
		return
	}
	c.JSON(http.StatusOK, result)
}
