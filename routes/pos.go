package routes

import (
	"github.com/gin-gonic/gin"

	cartControllers "github.com/lucasrivero/boleta-api/controllers/cart"
	catalogcontroller "github.com/lucasrivero/boleta-api/controllers/catalog"
	customercontroller "github.com/lucasrivero/boleta-api/controllers/customer"
	receiptcontroller "github.com/lucasrivero/boleta-api/controllers/receipt"
)

// SetupPOSRoutes registers all "/pos/*" endpoints.
func SetupPOSRoutes(r *gin.Engine, deps Deps) {
	pos := r.Group("/pos")
	{
		// ──────────────── Catalog ────────────────
		pos.GET("/catalog", catalogcontroller.GetCatalog(deps.Catalog)) // GET /pos/catalog

		// ──────────────── Cart ────────────────
		cartGroup := pos.Group("/cart")
		{
			cartGroup.GET("", cartControllers.GetCart(deps.Cart, deps.Catalog))  // GET    /pos/cart
			cartGroup.POST("/items", cartControllers.AddCartItem(deps.Cart))     // POST   /pos/cart/items
			cartGroup.DELETE("/items", cartControllers.RemoveCartItems(deps.Cart)) // DELETE /pos/cart/items
			cartGroup.POST("/undo", cartControllers.UndoRemove(deps.Cart))       // POST   /pos/cart/undo
			cartGroup.POST("/sort", cartControllers.SortCart(deps.Cart))         // POST   /pos/cart/sort
			cartGroup.PUT("/customer", cartControllers.SetCustomer(deps.Cart))   // PUT    /pos/cart/customer
			cartGroup.DELETE("", cartControllers.ClearCart(deps.Cart))           // DELETE /pos/cart
		}

		// ──────────────── Receipts ────────────────
		pos.GET("/receipt/preview", receiptcontroller.PreviewReceipt(deps.Cart, deps.Catalog))
		pos.POST("/receipts", receiptcontroller.SaveReceipt(deps.Cart, deps.Saver, deps.History))
		pos.GET("/receipts/last", receiptcontroller.GetLastReceipt(deps.Saver))
		pos.POST("/receipts/last/open", receiptcontroller.OpenLastReceipt(deps.Saver, deps.Open))
		pos.POST("/receipts/folder/open", receiptcontroller.OpenReceiptsFolder(deps.Saver, deps.Open))

		// ──────────────── Customer history ────────────────
		pos.GET("/customers", customercontroller.GetCustomers(deps.History)) // GET /pos/customers
	}
}
