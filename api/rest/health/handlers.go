package health

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Handler godoc
// @Summary Health check
// @Tags health
// @Produce json
// @Success 200 {object} Response
// @Router /health [get]
func Handler(c *gin.Context) {
	c.JSON(http.StatusOK, Response{
		Status:  "healthy",
		Service: "doctor",
		Version: Version,
	})
}

// PingHandler godoc
// @Summary Ping
// @Tags health
// @Produce json
// @Success 200 {object} PingResponse
// @Router /api/v1/ping [get]
func PingHandler(c *gin.Context) {
	c.JSON(http.StatusOK, PingResponse{Message: "pong"})
}
