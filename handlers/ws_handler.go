package handlers

import (
	"github.com/beyazservis/servis-go/realtime"
	"github.com/gin-gonic/gin"
)

// WSHandler joins the caller to the broadcast group. The endpoint stays
// outside the JWT middleware: any client that can reach it receives every
// event, and role visibility is filtered client-side.
func WSHandler(hub *realtime.Hub) gin.HandlerFunc {
	return func(c *gin.Context) {
		hub.ServeWS(c.Writer, c.Request)
	}
}
