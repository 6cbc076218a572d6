package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// ErrorResponse is the standard error response format for all API errors.
type ErrorResponse struct {
	Error string `json:"error"`
}

func respondBadRequest(c *gin.Context, message string) {
	c.IndentedJSON(http.StatusBadRequest, ErrorResponse{Error: message})
}

func respondNotFound(c *gin.Context, resource string) {
	c.IndentedJSON(http.StatusNotFound, ErrorResponse{Error: resource + " not found"})
}

// respondInternalError logs the error and sends a 500 response.
// The actual error is logged but not exposed to the client.
func respondInternalError(c *gin.Context, logger zerolog.Logger, err error, operation string) {
	logger.Error().Err(err).Str("operation", operation).Str("path", c.Request.URL.Path).Msg("Internal error")
	c.IndentedJSON(http.StatusInternalServerError, ErrorResponse{Error: "internal server error"})
}

// parseNumberParam extracts a positive season or episode number from the URL.
// Responds with 400 and returns false when the value is not a positive integer.
func parseNumberParam(c *gin.Context, paramName string) (int, bool) {
	n, err := strconv.Atoi(c.Param(paramName))
	if err != nil || n <= 0 {
		respondBadRequest(c, "invalid "+paramName)
		return 0, false
	}
	return n, true
}

// parseOptionalNumberQuery reads an optional numeric filter. An absent value
// yields 0, which means no filter.
func parseOptionalNumberQuery(c *gin.Context, paramName string) (int, bool) {
	raw := c.Query(paramName)
	if raw == "" {
		return 0, true
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		respondBadRequest(c, "invalid "+paramName)
		return 0, false
	}
	return n, true
}
