package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/quantfolio/asset_price_api/internal/apperrors"
	portssvc "github.com/quantfolio/asset_price_api/internal/core/ports/services"
	"github.com/quantfolio/asset_price_api/internal/dto"
	"github.com/quantfolio/asset_price_api/internal/middleware"
)

// priceHandler handles HTTP requests related to price snapshots.
type priceHandler struct {
	priceService portssvc.PriceSvcFacade
}

// newPriceHandler creates a new priceHandler.
func newPriceHandler(ps portssvc.PriceSvcFacade) *priceHandler {
	return &priceHandler{
		priceService: ps,
	}
}

// RegisterPriceRoutes registers routes related to prices.
func RegisterPriceRoutes(rg *gin.RouterGroup, priceService portssvc.PriceSvcFacade) {
	h := newPriceHandler(priceService)

	prices := rg.Group("/prices")
	{
		prices.POST("", h.setPrice)
		prices.GET("", h.listPrices)
	}
}

// setPrice godoc
// @Summary Create or update a price
// @Description Upserts the price snapshot for an asset, source and date, maintaining the history audit trail. Writing an unchanged value is a no-op.
// @Tags prices
// @Accept  json
// @Produce  json
// @Param   price body dto.SetPriceRequest true "Price data"
// @Success 200 {object} map[string]string "Price created/updated"
// @Failure 400 {object} map[string]string "Invalid input or unknown asset/source"
// @Failure 500 {object} map[string]string "Failed to set price"
// @Router /prices [post]
func (h *priceHandler) setPrice(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.SetPriceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for SetPrice", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	logger = logger.With(
		slog.String("asset_id", req.AssetID),
		slog.String("source_id", req.SourceID),
		slog.String("price_date", req.PriceDate),
	)
	logger.Info("Received request to set price")

	if err := h.priceService.SetPrice(c.Request.Context(), req); err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Validation error setting price", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to set price in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to set price"})
		}
		return
	}

	logger.Info("Price set successfully")
	c.JSON(http.StatusOK, gin.H{"message": "Price created/updated successfully"})
}

// listPrices godoc
// @Summary List price snapshots
// @Description Retrieves current price snapshots for one or more assets on an exact date, optionally filtered by source, joined with asset and source names
// @Tags prices
// @Produce  json
// @Param   date query string true "Price date (YYYY-MM-DD)"
// @Param   assetIds query string true "Comma-separated asset IDs (UUIDs)"
// @Param   sourceId query string false "Source ID (UUID)"
// @Success 200 {array} dto.PriceResponse
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Failure 500 {object} map[string]string "Failed to list prices"
// @Router /prices [get]
func (h *priceHandler) listPrices(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var query dto.ListPricesQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		logger.Warn("Failed to bind query for ListPrices", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	// Format already validated by binding.
	priceDate, _ := time.Parse(dto.DateLayout, query.Date)

	logger.Info("Received request to list prices",
		slog.String("date", query.Date),
		slog.Int("asset_count", len(query.AssetIDs)),
	)

	prices, err := h.priceService.GetPrices(c.Request.Context(), query.AssetIDs, priceDate, query.SourceID)
	if err != nil {
		logger.Error("Failed to list prices from service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list prices"})
		return
	}

	logger.Info("Prices listed successfully", slog.Int("count", len(prices)))
	c.JSON(http.StatusOK, dto.ToListPriceResponse(prices))
}
