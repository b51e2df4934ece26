package health

import (
	"time"

	"github.com/ethanbaker/api/pkg/api_types"
	"github.com/gin-gonic/gin"
)

// Status is the payload returned by the health check
type Status struct {
	Uptime string `json:"uptime"`
}

// Return status of the API
func getStatus(started time.Time) gin.HandlerFunc {
	return func(c *gin.Context) {
		res := api_types.NewSuccessResponse("OK", Status{
			Uptime: time.Since(started).Round(time.Second).String(),
		})
		c.JSON(res.AsGinResponse())
	}
}
