package catalogcontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/lucasrivero/boleta-api/catalog"
)

type productView struct {
	Name      string          `json:"name"`
	UnitPrice decimal.Decimal `json:"unit_price"`
}

// GetCatalog returns every sellable product with its unit price, sorted by
// name. An empty catalog is a valid (empty) response, not an error.
func GetCatalog(cat catalog.Catalog) gin.HandlerFunc {
	return func(c *gin.Context) {
		products := make([]productView, 0, len(cat))
		for _, name := range cat.Names() {
			price, _ := cat.Price(name)
			products = append(products, productView{Name: name, UnitPrice: price})
		}
		c.JSON(http.StatusOK, products)
	}
}
