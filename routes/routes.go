package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/lucasrivero/boleta-api/cart"
	"github.com/lucasrivero/boleta-api/catalog"
	"github.com/lucasrivero/boleta-api/fileopen"
	"github.com/lucasrivero/boleta-api/history"
	"github.com/lucasrivero/boleta-api/persist"
)

// Deps bundles the components the route handlers close over. Open defaults
// to the host default-viewer opener and is swappable for tests.
type Deps struct {
	Catalog catalog.Catalog
	Cart    *cart.Store
	Saver   *persist.Saver
	History *history.Store
	Open    func(path string) error
}

// SetupRoutes is the single entry-point that wires up all route groups.
func SetupRoutes(r *gin.Engine, deps Deps) {
	if deps.Open == nil {
		deps.Open = fileopen.Open
	}

	SetupPOSRoutes(r, deps)
}
