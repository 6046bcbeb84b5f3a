package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/amara-health/his-api/internal/models"
	"github.com/amara-health/his-api/internal/service"
	appErrors "github.com/amara-health/his-api/pkg/errors"
	"github.com/amara-health/his-api/pkg/response"
)

type enrollmentService interface {
	Enroll(ctx context.Context, clientID int64, req service.EnrollClientRequest) (*models.Enrollment, *models.Program, error)
}

// EnrollmentHandler exposes enrollment endpoints.
type EnrollmentHandler struct {
	enrollments enrollmentService
}

// NewEnrollmentHandler constructs EnrollmentHandler.
func NewEnrollmentHandler(enrollments enrollmentService) *EnrollmentHandler {
	return &EnrollmentHandler{enrollments: enrollments}
}

// Enroll godoc
// @Summary Enroll client in program
// @Tags Enrollments
// @Accept json
// @Produce json
// @Param X-API-Key header string true "API key"
// @Param id path int true "Client ID"
// @Param payload body service.EnrollClientRequest true "Enrollment payload"
// @Success 201 {object} map[string]interface{}
// @Router /clients/{id}/programs [post]
func (h *EnrollmentHandler) Enroll(c *gin.Context) {
	clientID, err := parseID(c.Param("id"))
	if err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrNotFound, "client not found"))
		return
	}
	var req service.EnrollClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	_, program, err := h.enrollments.Enroll(c.Request.Context(), clientID, req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, gin.H{
		"message": "Client enrolled in program",
		"program": gin.H{"id": program.ID, "name": program.Name},
	})
}
