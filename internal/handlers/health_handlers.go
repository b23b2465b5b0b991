package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cyphera/onramp-engine/internal/types/api/responses"
	"github.com/cyphera/onramp-engine/internal/types/business"
)

type HealthHandler struct {
	networks []string
}

type HealthResponse = responses.HealthResponse

func NewHealthHandler(networks []business.Network) *HealthHandler {
	names := make([]string, len(networks))
	for i, n := range networks {
		names[i] = string(n)
	}
	return &HealthHandler{networks: names}
}

// Health godoc
// @Summary Check the health of the server
// @Description Returns "ok" and the networks the engine prices
// @Tags health
// @Produce json
// @Router /health [get]
func (h *HealthHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{
		Status:   "ok",
		Networks: h.networks,
	})
}
