package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cyphera/onramp-engine/internal/interfaces"
	"github.com/cyphera/onramp-engine/internal/types/api/responses"
	"github.com/cyphera/onramp-engine/internal/types/business"
)

// ReserveHandler exposes read-only reserve contract state.
type ReserveHandler struct {
	reserve interfaces.ReserveChecker
}

type ReserveSupportResponse = responses.ReserveSupportResponse

func NewReserveHandler(reserve interfaces.ReserveChecker) *ReserveHandler {
	return &ReserveHandler{reserve: reserve}
}

// IsSupported godoc
// @Summary Check reserve token support
// @Tags reserve
// @Produce json
// @Param network path string true "Network"
// @Param address path string true "Token address or native symbol"
// @Success 200 {object} ReserveSupportResponse
// @Failure 400 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Router /reserve/{network}/tokens/{address} [get]
func (h *ReserveHandler) IsSupported(c *gin.Context) {
	network := business.ParseNetwork(c.Param("network"))
	address := c.Param("address")

	supported, err := h.reserve.IsSupported(c.Request.Context(), network, address)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	sendSuccess(c, http.StatusOK, ReserveSupportResponse{
		Network:   string(network),
		Address:   address,
		Supported: supported,
	})
}

// GetConfiguration godoc
// @Summary Get reserve configuration
// @Tags reserve
// @Produce json
// @Param network path string true "Network"
// @Success 200 {object} business.ReserveConfiguration
// @Router /reserve/{network}/configuration [get]
func (h *ReserveHandler) GetConfiguration(c *gin.Context) {
	snapshot, err := h.reserve.GetConfiguration(c.Request.Context(), business.ParseNetwork(c.Param("network")))
	if err != nil {
		handleServiceError(c, err)
		return
	}
	sendSuccess(c, http.StatusOK, snapshot)
}

// GetBalances godoc
// @Summary Get reserve balances
// @Tags reserve
// @Produce json
// @Param network path string true "Network"
// @Success 200 {object} business.ReserveBalances
// @Router /reserve/{network}/balances [get]
func (h *ReserveHandler) GetBalances(c *gin.Context) {
	snapshot, err := h.reserve.GetBalances(c.Request.Context(), business.ParseNetwork(c.Param("network")))
	if err != nil {
		handleServiceError(c, err)
		return
	}
	sendSuccess(c, http.StatusOK, snapshot)
}
