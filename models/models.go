package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// CartLine is one (product, quantity) entry in the in-progress sale.
// Lines carry no price; unit prices are resolved against the catalog at
// read time. ID is a process-local handle used to select lines over HTTP.
type CartLine struct {
	ID       string `json:"id"`
	Product  string `json:"product"`
	Quantity int    `json:"quantity"`
}

// ReceiptLine is a cart line with its price resolved at build time.
type ReceiptLine struct {
	Quantity  int             `json:"quantity"`
	Product   string          `json:"product"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Subtotal  decimal.Decimal `json:"subtotal"`
}

// Receipt is the finalized record of a sale. It is derived from the cart
// and never mutated after being built.
type Receipt struct {
	Customer  string          `json:"customer"`
	CreatedAt time.Time       `json:"created_at"`
	Lines     []ReceiptLine   `json:"lines"`
	Total     decimal.Decimal `json:"total"`
}

// ReceiptHandle points at a persisted receipt. QRPath is empty when the
// companion QR image could not be generated.
type ReceiptHandle struct {
	Path    string    `json:"path"`
	QRPath  string    `json:"qr_path,omitempty"`
	SavedAt time.Time `json:"saved_at"`
}
