package customercontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lucasrivero/boleta-api/history"
)

// GetCustomers returns the recently used customer names, most recent
// first, for the autocomplete on the customer field.
func GetCustomers(hist *history.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		names := hist.Load()
		if names == nil {
			names = []string{}
		}
		c.JSON(http.StatusOK, gin.H{"customers": names})
	}
}
