package ping

import (
	"net/http"

	"github.com/AhadGhee/socialbook/utils"

	"github.com/gin-gonic/gin"
)

// @Summary Health check
// @Tags ping
// @Produce json
// @Success 200 {object} utils.Response "message: pong"
// @Router /ping [get]
func Ping(c *gin.Context) {
	utils.SendSuccess(c, http.StatusOK, "pong", nil)
}
