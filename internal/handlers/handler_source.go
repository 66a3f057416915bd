package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/quantfolio/asset_price_api/internal/apperrors"
	portssvc "github.com/quantfolio/asset_price_api/internal/core/ports/services"
	"github.com/quantfolio/asset_price_api/internal/dto"
	"github.com/quantfolio/asset_price_api/internal/middleware"
)

// sourceHandler handles HTTP requests related to price sources.
type sourceHandler struct {
	sourceService portssvc.SourceSvcFacade
}

// newSourceHandler creates a new sourceHandler.
func newSourceHandler(ss portssvc.SourceSvcFacade) *sourceHandler {
	return &sourceHandler{
		sourceService: ss,
	}
}

// RegisterSourceRoutes registers routes related to price sources.
func RegisterSourceRoutes(rg *gin.RouterGroup, sourceService portssvc.SourceSvcFacade) {
	h := newSourceHandler(sourceService)

	sources := rg.Group("/sources")
	{
		sources.POST("", h.createSource)
		sources.GET("", h.listSources)
		sources.GET("/:sourceID", h.getSourceByID)
		sources.GET("/name/:name", h.getSourceByName)
		sources.PUT("/:sourceID", h.updateSource)
		sources.DELETE("/:sourceID", h.deleteSource)
	}
}

// createSource godoc
// @Summary Create a new price source
// @Description Adds a new price data provider with a unique name
// @Tags sources
// @Accept  json
// @Produce  json
// @Param   source body dto.CreateSourceRequest true "Source details"
// @Success 201 {object} dto.SourceResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 409 {object} map[string]string "Source name already exists"
// @Failure 500 {object} map[string]string "Failed to create source"
// @Router /sources [post]
func (h *sourceHandler) createSource(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateSourceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateSource", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	logger.Info("Received request to create source", slog.String("name", req.Name))

	createdSource, err := h.sourceService.CreateSource(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			logger.Warn("Attempted to create duplicate source", slog.String("name", req.Name))
			c.JSON(http.StatusConflict, gin.H{"error": "Source with the same name already exists"})
		} else {
			logger.Error("Failed to create source in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create source"})
		}
		return
	}

	logger.Info("Source created successfully", slog.String("source_id", createdSource.SourceID))
	c.JSON(http.StatusCreated, dto.ToSourceResponse(createdSource))
}

// updateSource godoc
// @Summary Rename a price source
// @Description Replaces the name of an existing source
// @Tags sources
// @Accept  json
// @Produce  json
// @Param   sourceID path string true "Source ID (UUID)"
// @Param   source body dto.UpdateSourceRequest true "New source details"
// @Success 200 {object} dto.SourceResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Source not found"
// @Failure 409 {object} map[string]string "Source name already exists"
// @Failure 500 {object} map[string]string "Failed to update source"
// @Router /sources/{sourceID} [put]
func (h *sourceHandler) updateSource(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	sourceID := c.Param("sourceID")

	var req dto.UpdateSourceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateSource", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	logger = logger.With(slog.String("source_id", sourceID))
	logger.Info("Received request to update source")

	updatedSource, err := h.sourceService.UpdateSource(c.Request.Context(), sourceID, req)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Source not found for update")
			c.JSON(http.StatusNotFound, gin.H{"error": "Source not found"})
		} else if errors.Is(err, apperrors.ErrDuplicate) {
			logger.Warn("Update would duplicate source name")
			c.JSON(http.StatusConflict, gin.H{"error": "Source with the same name already exists"})
		} else {
			logger.Error("Failed to update source in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update source"})
		}
		return
	}

	logger.Info("Source updated successfully")
	c.JSON(http.StatusOK, dto.ToSourceResponse(updatedSource))
}

// deleteSource godoc
// @Summary Delete a price source
// @Description Removes a source and, via cascade, all prices recorded from it
// @Tags sources
// @Param   sourceID path string true "Source ID (UUID)"
// @Success 204 "Source deleted"
// @Failure 404 {object} map[string]string "Source not found"
// @Failure 500 {object} map[string]string "Failed to delete source"
// @Router /sources/{sourceID} [delete]
func (h *sourceHandler) deleteSource(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	sourceID := c.Param("sourceID")

	logger = logger.With(slog.String("source_id", sourceID))
	logger.Info("Received request to delete source")

	if err := h.sourceService.DeleteSource(c.Request.Context(), sourceID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Source not found for delete")
			c.JSON(http.StatusNotFound, gin.H{"error": "Source not found"})
		} else {
			logger.Error("Failed to delete source in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete source"})
		}
		return
	}

	logger.Info("Source deleted successfully")
	c.Status(http.StatusNoContent)
}

// getSourceByID godoc
// @Summary Get a source by ID
// @Description Retrieves details for a specific price source
// @Tags sources
// @Produce  json
// @Param   sourceID path string true "Source ID (UUID)"
// @Success 200 {object} dto.SourceResponse
// @Failure 404 {object} map[string]string "Source not found"
// @Failure 500 {object} map[string]string "Failed to retrieve source"
// @Router /sources/{sourceID} [get]
func (h *sourceHandler) getSourceByID(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	sourceID := c.Param("sourceID")

	logger = logger.With(slog.String("source_id", sourceID))
	logger.Info("Received request to get source")

	source, err := h.sourceService.GetSourceByID(c.Request.Context(), sourceID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Source not found")
			c.JSON(http.StatusNotFound, gin.H{"error": "Source not found"})
		} else {
			logger.Error("Failed to get source from service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve source"})
		}
		return
	}

	logger.Info("Source retrieved successfully")
	c.JSON(http.StatusOK, dto.ToSourceResponse(source))
}

// getSourceByName godoc
// @Summary Get a source by name
// @Description Retrieves details for a specific price source by its unique name
// @Tags sources
// @Produce  json
// @Param   name path string true "Source name"
// @Success 200 {object} dto.SourceResponse
// @Failure 404 {object} map[string]string "Source not found"
// @Failure 500 {object} map[string]string "Failed to retrieve source"
// @Router /sources/name/{name} [get]
func (h *sourceHandler) getSourceByName(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	name := c.Param("name")

	logger = logger.With(slog.String("name", name))
	logger.Info("Received request to get source by name")

	source, err := h.sourceService.GetSourceByName(c.Request.Context(), name)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Source not found")
			c.JSON(http.StatusNotFound, gin.H{"error": "Source not found"})
		} else {
			logger.Error("Failed to get source from service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve source"})
		}
		return
	}

	logger.Info("Source retrieved successfully")
	c.JSON(http.StatusOK, dto.ToSourceResponse(source))
}

// listSources godoc
// @Summary List all sources
// @Description Retrieves a list of all price sources
// @Tags sources
// @Produce  json
// @Success 200 {array} dto.SourceResponse
// @Failure 500 {object} map[string]string "Failed to list sources"
// @Router /sources [get]
func (h *sourceHandler) listSources(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	logger.Info("Received request to list sources")

	sources, err := h.sourceService.ListSources(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list sources from service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list sources"})
		return
	}

	logger.Info("Sources listed successfully", slog.Int("count", len(sources)))
	c.JSON(http.StatusOK, dto.ToListSourceResponse(sources))
}
