package handlers

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/quantfolio/asset_price_api/internal/apperrors"
	"github.com/quantfolio/asset_price_api/internal/core/domain"
	portssvc "github.com/quantfolio/asset_price_api/internal/core/ports/services"
	"github.com/quantfolio/asset_price_api/internal/dto"
	"github.com/quantfolio/asset_price_api/internal/middleware"
)

// assetHandler handles HTTP requests related to assets.
type assetHandler struct {
	assetService portssvc.AssetSvcFacade
}

// newAssetHandler creates a new assetHandler.
func newAssetHandler(as portssvc.AssetSvcFacade) *assetHandler {
	return &assetHandler{
		assetService: as,
	}
}

// RegisterAssetRoutes registers routes related to assets.
func RegisterAssetRoutes(rg *gin.RouterGroup, assetService portssvc.AssetSvcFacade) {
	h := newAssetHandler(assetService)

	assets := rg.Group("/assets")
	{
		assets.POST("", h.createAsset)
		assets.GET("", h.listAssets)
		assets.GET("/:assetID", h.getAssetByID)
		assets.GET("/symbol/:symbol", h.getAssetBySymbol)
		assets.GET("/isin/:isin", h.getAssetByISIN)
		assets.PUT("/:assetID", h.updateAsset)
	}
}

// createAsset godoc
// @Summary Create a new asset
// @Description Adds a new tradable asset with a unique symbol and ISIN
// @Tags assets
// @Accept  json
// @Produce  json
// @Param   asset body dto.CreateAssetRequest true "Asset details"
// @Success 201 {object} dto.AssetResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 409 {object} map[string]string "Symbol or ISIN already exists"
// @Failure 500 {object} map[string]string "Failed to create asset"
// @Router /assets [post]
func (h *assetHandler) createAsset(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateAssetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateAsset", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	logger.Info("Received request to create asset", slog.String("symbol", req.Symbol))

	createdAsset, err := h.assetService.CreateAsset(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			logger.Warn("Attempted to create duplicate asset", slog.String("symbol", req.Symbol))
			c.JSON(http.StatusConflict, gin.H{"error": "Asset with the same symbol or ISIN already exists"})
		} else if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Validation error creating asset", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to create asset in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create asset"})
		}
		return
	}

	logger.Info("Asset created successfully", slog.String("asset_id", createdAsset.AssetID))
	c.JSON(http.StatusCreated, dto.ToAssetResponse(createdAsset))
}

// updateAsset godoc
// @Summary Update an asset
// @Description Replaces the name, symbol and ISIN of an existing asset
// @Tags assets
// @Accept  json
// @Produce  json
// @Param   assetID path string true "Asset ID (UUID)"
// @Param   asset body dto.UpdateAssetRequest true "New asset details"
// @Success 200 {object} dto.AssetResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Asset not found"
// @Failure 409 {object} map[string]string "Symbol or ISIN already exists"
// @Failure 500 {object} map[string]string "Failed to update asset"
// @Router /assets/{assetID} [put]
func (h *assetHandler) updateAsset(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	assetID := c.Param("assetID")

	var req dto.UpdateAssetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateAsset", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	logger = logger.With(slog.String("asset_id", assetID))
	logger.Info("Received request to update asset")

	updatedAsset, err := h.assetService.UpdateAsset(c.Request.Context(), assetID, req)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Asset not found for update")
			c.JSON(http.StatusNotFound, gin.H{"error": "Asset not found"})
		} else if errors.Is(err, apperrors.ErrDuplicate) {
			logger.Warn("Update would duplicate symbol or ISIN")
			c.JSON(http.StatusConflict, gin.H{"error": "Asset with the same symbol or ISIN already exists"})
		} else {
			logger.Error("Failed to update asset in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update asset"})
		}
		return
	}

	logger.Info("Asset updated successfully")
	c.JSON(http.StatusOK, dto.ToAssetResponse(updatedAsset))
}

// getAssetByID godoc
// @Summary Get an asset by ID
// @Description Retrieves details for a specific asset
// @Tags assets
// @Produce  json
// @Param   assetID path string true "Asset ID (UUID)"
// @Success 200 {object} dto.AssetResponse
// @Failure 404 {object} map[string]string "Asset not found"
// @Failure 500 {object} map[string]string "Failed to retrieve asset"
// @Router /assets/{assetID} [get]
func (h *assetHandler) getAssetByID(c *gin.Context) {
	h.getAsset(c, "asset_id", c.Param("assetID"), h.assetService.GetAssetByID)
}

// getAssetBySymbol godoc
// @Summary Get an asset by trading symbol
// @Description Retrieves details for a specific asset by its unique symbol
// @Tags assets
// @Produce  json
// @Param   symbol path string true "Trading symbol"
// @Success 200 {object} dto.AssetResponse
// @Failure 404 {object} map[string]string "Asset not found"
// @Failure 500 {object} map[string]string "Failed to retrieve asset"
// @Router /assets/symbol/{symbol} [get]
func (h *assetHandler) getAssetBySymbol(c *gin.Context) {
	h.getAsset(c, "symbol", c.Param("symbol"), h.assetService.GetAssetBySymbol)
}

// getAssetByISIN godoc
// @Summary Get an asset by ISIN
// @Description Retrieves details for a specific asset by its unique ISIN code
// @Tags assets
// @Produce  json
// @Param   isin path string true "ISIN code"
// @Success 200 {object} dto.AssetResponse
// @Failure 404 {object} map[string]string "Asset not found"
// @Failure 500 {object} map[string]string "Failed to retrieve asset"
// @Router /assets/isin/{isin} [get]
func (h *assetHandler) getAssetByISIN(c *gin.Context) {
	h.getAsset(c, "isin", c.Param("isin"), h.assetService.GetAssetByISIN)
}

func (h *assetHandler) getAsset(c *gin.Context, keyName, key string, lookup func(context.Context, string) (*domain.Asset, error)) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String(keyName, key))
	logger.Info("Received request to get asset")

	asset, err := lookup(c.Request.Context(), key)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Asset not found")
			c.JSON(http.StatusNotFound, gin.H{"error": "Asset not found"})
		} else {
			logger.Error("Failed to get asset from service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve asset"})
		}
		return
	}

	logger.Info("Asset retrieved successfully")
	c.JSON(http.StatusOK, dto.ToAssetResponse(asset))
}

// listAssets godoc
// @Summary List all assets
// @Description Retrieves a list of all tracked assets
// @Tags assets
// @Produce  json
// @Success 200 {array} dto.AssetResponse
// @Failure 500 {object} map[string]string "Failed to list assets"
// @Router /assets [get]
func (h *assetHandler) listAssets(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	logger.Info("Received request to list assets")

	assets, err := h.assetService.ListAssets(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list assets from service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list assets"})
		return
	}

	logger.Info("Assets listed successfully", slog.Int("count", len(assets)))
	c.JSON(http.StatusOK, dto.ToListAssetResponse(assets))
}
