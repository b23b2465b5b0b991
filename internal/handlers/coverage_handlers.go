package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/cyphera/onramp-engine/internal/interfaces"
	"github.com/cyphera/onramp-engine/internal/types/api/requests"
	"github.com/cyphera/onramp-engine/internal/types/business"
)

// CoverageHandler reports reserve coverage of business token lists.
type CoverageHandler struct {
	validator interfaces.CoverageValidator
}

type TokenCoverageRequest = requests.TokenCoverageRequest

func NewCoverageHandler(validator interfaces.CoverageValidator) *CoverageHandler {
	return &CoverageHandler{validator: validator}
}

// ValidateTokens godoc
// @Summary Validate a token list
// @Description Reports how many active, trading-enabled tokens the reserve supports
// @Tags businesses
// @Accept json
// @Produce json
// @Param request body TokenCoverageRequest true "Token list"
// @Success 200 {object} business.BusinessTokenCoverageReport
// @Failure 400 {object} ErrorResponse
// @Router /businesses/token-coverage [post]
func (h *CoverageHandler) ValidateTokens(c *gin.Context) {
	var req TokenCoverageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	byNetwork := make(map[business.Network][]business.ConfiguredToken)
	for _, t := range req.Tokens {
		network := business.ParseNetwork(t.Network)
		byNetwork[network] = append(byNetwork[network], business.ConfiguredToken{
			Symbol:         t.Symbol,
			Name:           t.Name,
			Network:        network,
			Address:        t.Address,
			IsActive:       t.IsActive,
			TradingEnabled: t.TradingEnabled,
		})
	}

	report, err := h.validator.Validate(c.Request.Context(), byNetwork)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	sendSuccess(c, http.StatusOK, report)
}

// ValidateBusiness godoc
// @Summary Validate a stored business token list
// @Tags businesses
// @Produce json
// @Param business_id path string true "Business ID"
// @Success 200 {object} business.BusinessTokenCoverageReport
// @Failure 400 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse
// @Router /businesses/{business_id}/token-coverage [get]
func (h *CoverageHandler) ValidateBusiness(c *gin.Context) {
	businessID, err := uuid.Parse(c.Param("business_id"))
	if err != nil {
		sendError(c, http.StatusBadRequest, "Invalid business ID format", err)
		return
	}

	report, err := h.validator.ValidateBusiness(c.Request.Context(), businessID)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	sendSuccess(c, http.StatusOK, report)
}
