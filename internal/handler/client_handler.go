package handler

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/amara-health/his-api/internal/models"
	"github.com/amara-health/his-api/internal/service"
	appErrors "github.com/amara-health/his-api/pkg/errors"
	"github.com/amara-health/his-api/pkg/response"
)

type clientService interface {
	Register(ctx context.Context, req service.RegisterClientRequest) (*models.Client, error)
	Search(ctx context.Context, term string) ([]models.ClientSearchResult, error)
	Profile(ctx context.Context, id int64) (*models.ClientProfile, error)
}

type exportService interface {
	ExportProfile(ctx context.Context, clientID int64, format string) (*service.ExportDocument, error)
}

// ClientHandler exposes client endpoints.
type ClientHandler struct {
	clients clientService
	exports exportService
}

// NewClientHandler constructs ClientHandler. The export service may be nil
// when the export endpoint is not registered.
func NewClientHandler(clients clientService, exports exportService) *ClientHandler {
	return &ClientHandler{clients: clients, exports: exports}
}

// Register godoc
// @Summary Register client
// @Tags Clients
// @Accept json
// @Produce json
// @Param X-API-Key header string true "API key"
// @Param payload body service.RegisterClientRequest true "Client payload"
// @Success 201 {object} map[string]interface{}
// @Router /clients [post]
func (h *ClientHandler) Register(c *gin.Context) {
	var req service.RegisterClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	client, err := h.clients.Register(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, gin.H{"message": "Client registered", "id": client.ID})
}

// Search godoc
// @Summary Search clients by name
// @Tags Clients
// @Produce json
// @Param q query string true "Search term, minimum 2 characters"
// @Success 200 {array} models.ClientSearchResult
// @Router /clients [get]
func (h *ClientHandler) Search(c *gin.Context) {
	results, err := h.clients.Search(c.Request.Context(), c.Query("q"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, results)
}

// Profile godoc
// @Summary Get client profile with enrolled programs
// @Tags Clients
// @Produce json
// @Param id path int true "Client ID"
// @Success 200 {object} models.ClientProfile
// @Router /clients/{id} [get]
func (h *ClientHandler) Profile(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrNotFound, "client not found"))
		return
	}
	profile, err := h.clients.Profile(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, profile)
}

// Export godoc
// @Summary Download client profile as CSV or PDF
// @Tags Clients
// @Produce text/csv
// @Produce application/pdf
// @Param id path int true "Client ID"
// @Param format query string false "csv or pdf" default(csv)
// @Success 200 {file} file
// @Router /clients/{id}/export [get]
func (h *ClientHandler) Export(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrNotFound, "client not found"))
		return
	}
	doc, err := h.exports.ExportProfile(c.Request.Context(), id, c.DefaultQuery("format", "csv"))
	if err != nil {
		response.Error(c, err)
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", doc.Filename))
	c.Data(http.StatusOK, doc.ContentType, doc.Payload)
}

// parseID parses a positive decimal path id. Non-numeric ids behave like
// unknown resources.
func parseID(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid id %q", raw)
	}
	return id, nil
}
