package cartControllers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/lucasrivero/boleta-api/cart"
	"github.com/lucasrivero/boleta-api/catalog"
)

type AddItemInput struct {
	Product  string `json:"product" binding:"required"`
	Quantity int    `json:"quantity"`
}

type RemoveItemsInput struct {
	LineIDs []string `json:"line_ids"`
}

type SortInput struct {
	Column string `json:"column" binding:"required"`
}

type CustomerInput struct {
	Name string `json:"name"`
}

type lineView struct {
	ID        string          `json:"id"`
	Product   string          `json:"product"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Subtotal  decimal.Decimal `json:"subtotal"`
}

// POST /pos/cart/items
func AddCartItem(store *cart.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input AddItemInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		line, err := store.Add(input.Product, input.Quantity)
		if err != nil {
			switch {
			case errors.Is(err, cart.ErrInvalidQuantity):
				c.JSON(http.StatusBadRequest, gin.H{"error": "Quantity must be a positive integer"})
			case errors.Is(err, cart.ErrUnknownProduct):
				c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("Product '%s' is not available", input.Product)})
			default:
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add item to cart"})
			}
			return
		}
		c.JSON(http.StatusCreated, line)
	}
}

// DELETE /pos/cart/items
func RemoveCartItems(store *cart.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input RemoveItemsInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		removed, err := store.Remove(input.LineIDs)
		if err != nil {
			if errors.Is(err, cart.ErrNothingSelected) {
				c.JSON(http.StatusBadRequest, gin.H{"error": "No items selected"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to remove items"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"removed": len(removed)})
	}
}

// POST /pos/cart/undo
func UndoRemove(store *cart.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		restored, ok := store.UndoRemove()
		if !ok {
			c.JSON(http.StatusOK, gin.H{"message": "Nothing to undo", "restored": 0})
			return
		}
		c.JSON(http.StatusOK, gin.H{"restored": len(restored), "lines": restored})
	}
}

// POST /pos/cart/sort
func SortCart(store *cart.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input SortInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		ascending, err := store.SortBy(input.Column)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("Cannot sort by '%s'", input.Column)})
			return
		}
		c.JSON(http.StatusOK, gin.H{"column": input.Column, "ascending": ascending})
	}
}

// PUT /pos/cart/customer
func SetCustomer(store *cart.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input CustomerInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		store.SetCustomer(input.Name)
		c.JSON(http.StatusOK, gin.H{"customer": store.Customer()})
	}
}

// DELETE /pos/cart
func ClearCart(store *cart.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		store.Clear()
		c.JSON(http.StatusOK, gin.H{"message": "Cart cleared"})
	}
}

// GET /pos/cart
func GetCart(store *cart.Store, cat catalog.Catalog) gin.HandlerFunc {
	return func(c *gin.Context) {
		lines := store.Lines()
		views := make([]lineView, 0, len(lines))
		for _, line := range lines {
			price, ok := cat.Price(line.Product)
			if !ok {
				price = decimal.Zero
			}
			views = append(views, lineView{
				ID:        line.ID,
				Product:   line.Product,
				Quantity:  line.Quantity,
				UnitPrice: price,
				Subtotal:  price.Mul(decimal.NewFromInt(int64(line.Quantity))),
			})
		}
		c.JSON(http.StatusOK, gin.H{
			"customer": store.Customer(),
			"lines":    views,
			"total":    store.Total(),
		})
	}
}
