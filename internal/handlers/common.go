package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/cyphera/onramp-engine/internal/middleware"
	"github.com/cyphera/onramp-engine/internal/services"
	"github.com/cyphera/onramp-engine/internal/types/api/responses"
)

// ErrorResponse represents a standard error response
type ErrorResponse = responses.ErrorResponse

// sendError logs the error with the given message and sends a JSON error response
func sendError(c *gin.Context, statusCode int, message string, err error) {
	log := middleware.LogWithCorrelationID(c.Request.Context())
	fields := []zap.Field{
		zap.Error(err),
		zap.String("path", c.Request.URL.Path),
		zap.String("method", c.Request.Method),
	}
	if statusCode >= http.StatusInternalServerError {
		log.Error(message, fields...)
	} else {
		log.Warn(message, fields...)
	}
	c.JSON(statusCode, ErrorResponse{Error: message})
}

// handleServiceError maps service sentinels onto HTTP status codes.
func handleServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrUnsupportedNetwork):
		sendError(c, http.StatusBadRequest, err.Error(), err)
	case errors.Is(err, services.ErrInvalidMonitorRequest):
		sendError(c, http.StatusBadRequest, err.Error(), err)
	case errors.Is(err, services.ErrReserveQuery):
		sendError(c, http.StatusBadGateway, err.Error(), err)
	case errors.Is(err, services.ErrNoTokenStore):
		sendError(c, http.StatusServiceUnavailable, err.Error(), err)
	default:
		sendError(c, http.StatusInternalServerError, "Internal server error", err)
	}
}

// sendSuccess is a helper function that sends a success response
func sendSuccess(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, data)
}
