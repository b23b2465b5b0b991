package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cyphera/onramp-engine/internal/interfaces"
	"github.com/cyphera/onramp-engine/internal/types/api/requests"
	"github.com/cyphera/onramp-engine/internal/types/business"
)

// OnrampHandler answers whether a token amount can be onramped now.
type OnrampHandler struct {
	validator interfaces.OnrampValidator
}

type ValidateOnrampRequest = requests.ValidateOnrampRequest

func NewOnrampHandler(validator interfaces.OnrampValidator) *OnrampHandler {
	return &OnrampHandler{validator: validator}
}

// Validate godoc
// @Summary Validate an onramp
// @Description Prices the token, applies the liquidity policy and checks reserve support
// @Tags onramp
// @Accept json
// @Produce json
// @Param request body ValidateOnrampRequest true "Onramp request"
// @Success 200 {object} business.ValidationVerdict
// @Failure 400 {object} ErrorResponse
// @Failure 422 {object} business.ValidationVerdict
// @Router /onramp/validate [post]
func (h *OnrampHandler) Validate(c *gin.Context) {
	var req ValidateOnrampRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	validation := business.ValidationRequest{
		Network:               business.ParseNetwork(req.Network),
		TokenAddress:          req.TokenAddress,
		Amount:                req.Amount,
		RequireReserveSupport: req.RequireReserveSupport,
	}
	if req.MinLiquidityThreshold != nil {
		validation.MinLiquidityThreshold = *req.MinLiquidityThreshold
	}

	verdict, err := h.validator.Validate(c.Request.Context(), validation)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	status := http.StatusOK
	if !verdict.CanProcess {
		status = http.StatusUnprocessableEntity
	}
	sendSuccess(c, status, verdict)
}
