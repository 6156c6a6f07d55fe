package receipt

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/lucasrivero/boleta-api/catalog"
	"github.com/lucasrivero/boleta-api/models"
)

// TimeLayout is the timestamp format printed on receipts. File names are
// derived from the same string, so two saves for one customer within the
// same second produce the same name. Documented collision, not a crash.
const TimeLayout = "02/01/06 15:04:05"

// Build resolves prices and subtotals for the cart lines and produces an
// immutable receipt. Products missing from the catalog get a zero price,
// which only matters if the catalog was swapped mid-session.
func Build(customer string, lines []models.CartLine, cat catalog.Catalog, at time.Time) models.Receipt {
	rec := models.Receipt{
		Customer:  customer,
		CreatedAt: at,
		Total:     decimal.Zero,
	}
	for _, line := range lines {
		price, ok := cat.Price(line.Product)
		if !ok {
			price = decimal.Zero
		}
		subtotal := price.Mul(decimal.NewFromInt(int64(line.Quantity)))
		rec.Lines = append(rec.Lines, models.ReceiptLine{
			Quantity:  line.Quantity,
			Product:   line.Product,
			UnitPrice: price,
			Subtotal:  subtotal,
		})
		rec.Total = rec.Total.Add(subtotal)
	}
	return rec
}

// Render produces the receipt text. Currency is always printed with two
// fraction digits.
func Render(rec models.Receipt) string {
	out := []string{
		"Receipt for " + rec.Customer,
		"Date: " + rec.CreatedAt.Format(TimeLayout),
		"",
		"Items:",
		"",
	}
	for _, line := range rec.Lines {
		out = append(out, fmt.Sprintf("%d x %s at $%s each => $%s",
			line.Quantity, line.Product,
			line.UnitPrice.StringFixed(2), line.Subtotal.StringFixed(2)))
	}
	out = append(out, "", "TOTAL: $"+rec.Total.StringFixed(2))
	return strings.Join(out, "\n")
}

// sanitizer swaps the characters in the timestamp (and potentially in the
// customer name) that are unsafe in file names.
var sanitizer = strings.NewReplacer(":", ";", "/", "-", " ", "_")

// FileName derives the receipt file name from the customer and timestamp.
func FileName(customer string, at time.Time) string {
	return fmt.Sprintf("%s_%s.txt",
		sanitizer.Replace(customer),
		sanitizer.Replace(at.Format(TimeLayout)))
}
