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

type programService interface {
	Create(ctx context.Context, req service.CreateProgramRequest) (*models.Program, error)
	List(ctx context.Context) ([]models.Program, error)
}

// ProgramHandler exposes program endpoints.
type ProgramHandler struct {
	programs programService
}

// NewProgramHandler constructs ProgramHandler.
func NewProgramHandler(programs programService) *ProgramHandler {
	return &ProgramHandler{programs: programs}
}

// Create godoc
// @Summary Create health program
// @Tags Programs
// @Accept json
// @Produce json
// @Param X-API-Key header string true "API key"
// @Param payload body service.CreateProgramRequest true "Program payload"
// @Success 201 {object} map[string]interface{}
// @Router /programs [post]
func (h *ProgramHandler) Create(c *gin.Context) {
	var req service.CreateProgramRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	program, err := h.programs.Create(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, gin.H{"message": "Program created", "id": program.ID})
}

// List godoc
// @Summary List health programs
// @Tags Programs
// @Produce json
// @Success 200 {array} models.Program
// @Router /programs [get]
func (h *ProgramHandler) List(c *gin.Context) {
	programs, err := h.programs.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, programs)
}
