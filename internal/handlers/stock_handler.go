package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	apperrors "tradefolio/internal/errors"
	"tradefolio/internal/pagination"
	"tradefolio/internal/services"
)

// StockHandler handles stock-related requests
type StockHandler struct {
	stockService services.StockServicer
	syncService  services.SyncServicer
}

// NewStockHandler creates a new StockHandler
func NewStockHandler(stockService services.StockServicer, syncService services.SyncServicer) *StockHandler {
	return &StockHandler{stockService: stockService, syncService: syncService}
}

// CreateStockRequest represents the stock creation payload
type CreateStockRequest struct {
	Symbol string `json:"symbol" binding:"required,stock_symbol"`
	Name   string `json:"name" binding:"max=255"`
}

// UpdateStockRequest represents the stock update payload. The symbol is
// immutable and deliberately absent.
type UpdateStockRequest struct {
	Name string `json:"name" binding:"required,max=255"`
}

// ListStocksQuery represents the stock list query parameters
type ListStocksQuery struct {
	pagination.PageRequest
	Symbol string `form:"symbol" binding:"omitempty,stock_symbol"`
}

// CreateStock handles stock creation
// @Summary     Create a stock
// @Description Create a stock, enriched with a live quote when one is available
// @Tags        stocks
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body CreateStockRequest true "Stock data"
// @Success     201 {object} models.Stock "Stock created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     409 {object} ErrorResponse "Symbol already exists"
// @Router      /stocks [post]
func (h *StockHandler) CreateStock(c *gin.Context) {
	var req CreateStockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	stock, err := h.stockService.CreateStock(c.Request.Context(), req.Symbol, req.Name)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, stock)
}

// ListStocks handles listing stocks
// @Summary     List stocks
// @Description List stocks in symbol order, optionally filtered by symbol
// @Tags        stocks
// @Produce     json
// @Security    BearerAuth
// @Param       symbol query string false "Exact symbol filter"
// @Param       page query int false "Page number"
// @Param       page_size query int false "Page size"
// @Success     200 {object} pagination.PageResponse[models.Stock] "Stocks"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Router      /stocks [get]
func (h *StockHandler) ListStocks(c *gin.Context) {
	var query ListStocksQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	resp, err := h.stockService.GetStocks(query.Symbol, query.PageRequest)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// GetStock handles retrieving one stock
// @Summary     Get a stock
// @Tags        stocks
// @Produce     json
// @Security    BearerAuth
// @Param       id path int true "Stock ID"
// @Success     200 {object} models.Stock "Stock"
// @Failure     404 {object} ErrorResponse "Stock not found"
// @Router      /stocks/{id} [get]
func (h *StockHandler) GetStock(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	stock, err := h.stockService.GetStockByID(id)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, stock)
}

// UpdateStock handles editing a stock's name
// @Summary     Update a stock
// @Description Rename a stock and refresh its quote; the symbol never changes
// @Tags        stocks
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id path int true "Stock ID"
// @Param       request body UpdateStockRequest true "Stock data"
// @Success     200 {object} models.Stock "Stock updated"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     404 {object} ErrorResponse "Stock not found"
// @Router      /stocks/{id} [put]
func (h *StockHandler) UpdateStock(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req UpdateStockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	stock, err := h.stockService.UpdateStock(c.Request.Context(), id, req.Name)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, stock)
}

// DeleteStock handles deleting a stock and its trades
// @Summary     Delete a stock
// @Description Delete a stock; trades referencing it are removed as well
// @Tags        stocks
// @Security    BearerAuth
// @Param       id path int true "Stock ID"
// @Success     204 "Stock deleted"
// @Failure     404 {object} ErrorResponse "Stock not found"
// @Router      /stocks/{id} [delete]
func (h *StockHandler) DeleteStock(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.stockService.DeleteStock(id); err != nil {
		respondWithError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// GetQuote handles fetching a live quote for one symbol
// @Summary     Get a live quote
// @Description Fetch the current quote for a symbol without persisting it
// @Tags        stocks
// @Produce     json
// @Security    BearerAuth
// @Param       symbol query string true "Ticker symbol"
// @Success     200 {object} marketdata.Quote "Quote"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     404 {object} ErrorResponse "No quote data"
// @Router      /stocks/quote [get]
func (h *StockHandler) GetQuote(c *gin.Context) {
	symbol := strings.TrimSpace(c.Query("symbol"))
	if symbol == "" {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "symbol is required"))
		return
	}

	quote, err := h.syncService.RefreshSymbol(c.Request.Context(), symbol)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, quote)
}

// parseSelection turns the refresh query parameters into a Selection.
func parseSelection(c *gin.Context) (services.Selection, error) {
	var sel services.Selection

	if all := c.Query("all"); all != "" {
		v, err := strconv.ParseBool(all)
		if err != nil {
			return sel, apperrors.WithMessage(apperrors.ErrInvalidInput, "Invalid all parameter")
		}
		sel.All = v
	}

	if ids := c.Query("ids"); ids != "" {
		for _, part := range strings.Split(ids, ",") {
			id, err := strconv.ParseUint(strings.TrimSpace(part), 10, 32)
			if err != nil {
				return sel, apperrors.WithMessage(apperrors.ErrInvalidInput, "Invalid ids parameter")
			}
			sel.IDs = append(sel.IDs, uint(id))
		}
	}

	if symbols := c.Query("symbols"); symbols != "" {
		for _, part := range strings.Split(symbols, ",") {
			if part = strings.TrimSpace(part); part != "" {
				sel.Symbols = append(sel.Symbols, part)
			}
		}
	}

	return sel, nil
}

// RefreshStocks handles batch quote refreshes
// @Summary     Refresh stock quotes
// @Description Refresh quotes for the selected stocks; each stock succeeds or fails independently
// @Tags        stocks
// @Produce     json
// @Security    BearerAuth
// @Param       all query bool false "Refresh every stock"
// @Param       ids query string false "Comma-separated stock IDs"
// @Param       symbols query string false "Comma-separated symbols"
// @Success     200 {object} services.BatchResult "Refresh outcome"
// @Failure     400 {object} ErrorResponse "No selector given"
// @Failure     404 {object} ErrorResponse "Selection matched nothing"
// @Router      /stocks/refresh [get]
func (h *StockHandler) RefreshStocks(c *gin.Context) {
	sel, err := parseSelection(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	result, err := h.syncService.RefreshBatch(c.Request.Context(), sel)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}
