package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "tradefolio/internal/errors"
	"tradefolio/internal/services"
)

// PortfolioHandler handles portfolio report requests
type PortfolioHandler struct {
	portfolioService services.PortfolioServicer
}

// NewPortfolioHandler creates a new PortfolioHandler
func NewPortfolioHandler(portfolioService services.PortfolioServicer) *PortfolioHandler {
	return &PortfolioHandler{portfolioService: portfolioService}
}

// PortfolioQueryRequest represents the portfolio query parameters
type PortfolioQueryRequest struct {
	Symbol string `form:"symbol" binding:"omitempty,stock_symbol"`
	Sort   string `form:"sort" binding:"omitempty,sort_key"`
}

// GetPortfolio handles the portfolio report
// @Summary     Get the portfolio report
// @Description Aggregate the user's holdings with fresh valuations, filtering and sorting
// @Tags        portfolio
// @Produce     json
// @Security    BearerAuth
// @Param       symbol query string false "Exact symbol filter"
// @Param       sort query string false "Sort key: symbol, date, profit, or loss" Enums(symbol, date, profit, loss)
// @Success     200 {object} services.PortfolioReport "Portfolio report"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /portfolio [get]
func (h *PortfolioHandler) GetPortfolio(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var query PortfolioQueryRequest
	if err := c.ShouldBindQuery(&query); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	report, err := h.portfolioService.GetPortfolio(userID, services.PortfolioQuery{
		Symbol: query.Symbol,
		Sort:   query.Sort,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, report)
}
