// Package api holds the HTTP handlers. Each handler struct carries the
// repository interface it reads or writes plus a logger; all wiring happens
// in cmd/server.
package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// internalError answers an infrastructure failure with the legacy wire
// shape: a fixed error title plus the underlying message.
func internalError(c *gin.Context, err error) {
	c.JSON(http.StatusInternalServerError, gin.H{
		"error":   "Internal Server Error",
		"details": err.Error(),
	})
}
