package receiptcontroller

import (
	"errors"
	"net/http"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/lucasrivero/boleta-api/cart"
	"github.com/lucasrivero/boleta-api/catalog"
	"github.com/lucasrivero/boleta-api/history"
	"github.com/lucasrivero/boleta-api/persist"
	"github.com/lucasrivero/boleta-api/receipt"
)

type SaveInput struct {
	CustomerName string `json:"customer_name"`
}

// validName restricts customer names to letters and spaces, same rule the
// register applied at the entry field.
var validName = regexp.MustCompile(`^[\p{L} ]+$`)

// GET /pos/receipt/preview
// Renders the receipt for the current cart without persisting anything.
func PreviewReceipt(store *cart.Store, cat catalog.Catalog) gin.HandlerFunc {
	return func(c *gin.Context) {
		customer := store.Customer()
		if customer == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Enter the customer name"})
			return
		}
		lines := store.Lines()
		if len(lines) == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "No products in the cart"})
			return
		}

		rec := receipt.Build(customer, lines, cat, time.Now())
		c.JSON(http.StatusOK, gin.H{"text": receipt.Render(rec), "total": rec.Total})
	}
}

// POST /pos/receipts
// Finalizes the sale: writes the receipt (plus best-effort QR), records the
// customer in the history, and clears the cart. The customer name comes
// from the body or, when absent, from the cart session.
func SaveReceipt(store *cart.Store, saver *persist.Saver, hist *history.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input SaveInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		customer := strings.TrimSpace(input.CustomerName)
		if customer == "" {
			customer = store.Customer()
		}
		if customer != "" && !validName.MatchString(customer) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Customer name must contain only letters and spaces"})
			return
		}

		rec, handle, err := saver.Save(customer, store.Lines(), time.Now())
		if err != nil {
			switch {
			case errors.Is(err, persist.ErrMissingCustomer):
				c.JSON(http.StatusBadRequest, gin.H{"error": "Enter the customer name"})
			case errors.Is(err, persist.ErrEmptyCart):
				c.JSON(http.StatusBadRequest, gin.H{"error": "No products in the cart"})
			default:
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not save the receipt: " + err.Error()})
			}
			return
		}

		if err := hist.Record(customer); err != nil {
			// History is a convenience cache; a failed write must not undo a saved sale.
			c.Error(err)
		}
		store.Clear()

		c.JSON(http.StatusCreated, gin.H{
			"file":    filepath.Base(handle.Path),
			"path":    handle.Path,
			"qr_path": handle.QRPath,
			"total":   rec.Total,
			"text":    receipt.Render(rec),
		})
	}
}

// GET /pos/receipts/last
func GetLastReceipt(saver *persist.Saver) gin.HandlerFunc {
	return func(c *gin.Context) {
		handle, ok := saver.Last()
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "No recent receipt"})
			return
		}

		content, err := os.ReadFile(handle.Path)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read receipt file"})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"file":    filepath.Base(handle.Path),
			"path":    handle.Path,
			"qr_path": handle.QRPath,
			"text":    string(content),
		})
	}
}

// POST /pos/receipts/last/open
// Opens the last receipt (and its QR image when present) with the host's
// default viewer.
func OpenLastReceipt(saver *persist.Saver, open func(string) error) gin.HandlerFunc {
	return func(c *gin.Context) {
		handle, ok := saver.Last()
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "No recent receipt"})
			return
		}

		if err := open(handle.Path); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not open the receipt: " + err.Error()})
			return
		}
		if handle.QRPath != "" {
			if err := open(handle.QRPath); err != nil {
				c.Error(err)
			}
		}
		c.JSON(http.StatusOK, gin.H{"opened": handle.Path})
	}
}

// POST /pos/receipts/folder/open
// Opens today's receipts directory in the host file manager.
func OpenReceiptsFolder(saver *persist.Saver, open func(string) error) gin.HandlerFunc {
	return func(c *gin.Context) {
		dir := saver.DirFor(time.Now())
		if _, err := os.Stat(dir); err != nil {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "The folder does not exist yet. It is created with the first saved receipt.",
			})
			return
		}
		if err := open(dir); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not open the folder: " + err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"opened": dir})
	}
}
