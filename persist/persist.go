package persist

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	qrcode "github.com/skip2/go-qrcode"

	"github.com/lucasrivero/boleta-api/catalog"
	"github.com/lucasrivero/boleta-api/models"
	"github.com/lucasrivero/boleta-api/receipt"
)

// ErrEmptyCart is returned when a save is attempted with no cart lines.
var ErrEmptyCart = errors.New("cart is empty")

// ErrMissingCustomer is returned when a save is attempted without a
// customer name.
var ErrMissingCustomer = errors.New("customer name is required")

// PersistError wraps the I/O failure of the primary receipt write, the
// only fatal path in a save.
type PersistError struct {
	Path string
	Err  error
}

func (e *PersistError) Error() string {
	return fmt.Sprintf("write receipt %s: %v", e.Path, e.Err)
}

func (e *PersistError) Unwrap() error { return e.Err }

const qrSize = 256

// Saver writes receipts under a root directory and tracks the most recent
// one. Exactly one handle is current per process at a time.
type Saver struct {
	mu              sync.Mutex
	catalog         catalog.Catalog
	root            string
	partitionByDate bool
	last            *models.ReceiptHandle
}

// NewSaver creates a Saver. With partitionByDate the receipts land in
// root/YYYY/MM/DD, otherwise directly under root.
func NewSaver(cat catalog.Catalog, root string, partitionByDate bool) *Saver {
	return &Saver{catalog: cat, root: root, partitionByDate: partitionByDate}
}

// Save formats the cart into a receipt, writes it as a text file and a
// best-effort companion QR image, and makes the result the current "last
// receipt". QR failure does not fail the save; a failed text write does.
func (s *Saver) Save(customer string, lines []models.CartLine, at time.Time) (models.Receipt, models.ReceiptHandle, error) {
	customer = strings.TrimSpace(customer)
	if customer == "" {
		return models.Receipt{}, models.ReceiptHandle{}, ErrMissingCustomer
	}
	if len(lines) == 0 {
		return models.Receipt{}, models.ReceiptHandle{}, ErrEmptyCart
	}

	rec := receipt.Build(customer, lines, s.catalog, at)
	content := receipt.Render(rec)

	dir := s.DirFor(at)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return models.Receipt{}, models.ReceiptHandle{}, &PersistError{Path: dir, Err: err}
	}

	path := filepath.Join(dir, receipt.FileName(customer, at))
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return models.Receipt{}, models.ReceiptHandle{}, &PersistError{Path: path, Err: err}
	}

	// The QR image carries the exact receipt text as payload.
	qrPath := strings.TrimSuffix(path, ".txt") + ".png"
	if err := qrcode.WriteFile(content, qrcode.Medium, qrSize, qrPath); err != nil {
		log.Printf("⚠️ Could not generate QR for %s: %v", path, err)
		qrPath = ""
	}

	handle := models.ReceiptHandle{Path: path, QRPath: qrPath, SavedAt: at}

	s.mu.Lock()
	s.last = &handle
	s.mu.Unlock()

	return rec, handle, nil
}

// Last returns the handle of the most recently saved receipt.
func (s *Saver) Last() (models.ReceiptHandle, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.last == nil {
		return models.ReceiptHandle{}, false
	}
	return *s.last, true
}

// DirFor returns the directory receipts for the given time are written to.
func (s *Saver) DirFor(at time.Time) string {
	if !s.partitionByDate {
		return s.root
	}
	return filepath.Join(s.root,
		fmt.Sprintf("%04d", at.Year()),
		fmt.Sprintf("%02d", at.Month()),
		fmt.Sprintf("%02d", at.Day()))
}
