package httpresp

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type Ack struct {
	Message string `json:"message"`
}

func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, data)
}

// List writes items as a bare JSON array, never null.
func List[T any](c *gin.Context, items []T) {
	if items == nil {
		items = []T{}
	}
	c.JSON(http.StatusOK, items)
}

func Message(c *gin.Context, msg string) {
	c.JSON(http.StatusOK, Ack{Message: msg})
}
