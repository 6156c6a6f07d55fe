package cart

import (
	"sort"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/lucasrivero/boleta-api/catalog"
	"github.com/lucasrivero/boleta-api/models"
)

// Sortable cart columns.
const (
	ColumnProduct  = "product"
	ColumnQuantity = "quantity"
	ColumnPrice    = "price"
	ColumnSubtotal = "subtotal"
)

// Store holds the in-progress sale: an ordered list of cart lines, the
// customer name for the session, and an undo stack of removed line groups.
// The original register ran on a single UI thread; behind an HTTP server
// every method takes the lock instead.
type Store struct {
	mu       sync.Mutex
	catalog  catalog.Catalog
	customer string
	lines    []models.CartLine
	undo     [][]models.CartLine
	sortAsc  map[string]bool
}

// NewStore creates an empty cart over the given catalog.
func NewStore(cat catalog.Catalog) *Store {
	return &Store{
		catalog: cat,
		sortAsc: map[string]bool{},
	}
}

// Add puts quantity units of product into the cart. Adding a product that
// is already present increases that line's quantity instead of creating a
// duplicate line; new products are appended at the end.
func (s *Store) Add(product string, quantity int) (models.CartLine, error) {
	if quantity <= 0 {
		return models.CartLine{}, ErrInvalidQuantity
	}
	if _, ok := s.catalog.Price(product); !ok {
		return models.CartLine{}, ErrUnknownProduct
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.lines {
		if s.lines[i].Product == product {
			s.lines[i].Quantity += quantity
			return s.lines[i], nil
		}
	}

	line := models.CartLine{
		ID:       uuid.NewString(),
		Product:  product,
		Quantity: quantity,
	}
	s.lines = append(s.lines, line)
	return line, nil
}

// Remove deletes the lines with the given IDs and pushes a value snapshot
// of them, in cart order, onto the undo stack as a single group. IDs that
// match nothing are ignored; an empty selection is an error.
func (s *Store) Remove(ids []string) ([]models.CartLine, error) {
	if len(ids) == 0 {
		return nil, ErrNothingSelected
	}

	selected := make(map[string]bool, len(ids))
	for _, id := range ids {
		selected[id] = true
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	var kept, removed []models.CartLine
	for _, line := range s.lines {
		if selected[line.ID] {
			removed = append(removed, line)
		} else {
			kept = append(kept, line)
		}
	}
	if len(removed) > 0 {
		s.lines = kept
		s.undo = append(s.undo, removed)
	}
	return removed, nil
}

// UndoRemove restores the most recently removed group. Restored lines keep
// their product and quantity but are appended at the end of the cart, not
// at their original position, and get fresh IDs. Returns false when there
// is nothing to undo. Undo itself is not undoable.
func (s *Store) UndoRemove() ([]models.CartLine, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.undo) == 0 {
		return nil, false
	}
	group := s.undo[len(s.undo)-1]
	s.undo = s.undo[:len(s.undo)-1]

	restored := make([]models.CartLine, 0, len(group))
	for _, line := range group {
		line.ID = uuid.NewString()
		s.lines = append(s.lines, line)
		restored = append(restored, line)
	}
	return restored, true
}

// Clear empties the cart and the customer name. The undo buffer is kept.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lines = nil
	s.customer = ""
}

// SortBy reorders the cart in place by the given column, toggling between
// ascending and descending on repeated calls for the same column. The
// direction state is per column and lives for the session. The sort is
// stable: equal keys keep their prior relative order.
func (s *Store) SortBy(column string) (ascending bool, err error) {
	switch column {
	case ColumnProduct, ColumnQuantity, ColumnPrice, ColumnSubtotal:
	default:
		return false, ErrUnknownColumn
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	asc, seen := s.sortAsc[column]
	if !seen {
		asc = true
	}

	sort.SliceStable(s.lines, func(i, j int) bool {
		less := s.lineLess(column, s.lines[i], s.lines[j])
		if asc {
			return less
		}
		return s.lineLess(column, s.lines[j], s.lines[i])
	})

	s.sortAsc[column] = !asc
	return asc, nil
}

func (s *Store) lineLess(column string, a, b models.CartLine) bool {
	switch column {
	case ColumnProduct:
		return strings.ToLower(a.Product) < strings.ToLower(b.Product)
	case ColumnQuantity:
		return a.Quantity < b.Quantity
	case ColumnPrice:
		return s.unitPrice(a).Cmp(s.unitPrice(b)) < 0
	default: // subtotal
		sa := s.unitPrice(a).Mul(decimal.NewFromInt(int64(a.Quantity)))
		sb := s.unitPrice(b).Mul(decimal.NewFromInt(int64(b.Quantity)))
		return sa.Cmp(sb) < 0
	}
}

// unitPrice falls back to zero for products missing from the catalog, the
// same defensive default Total uses.
func (s *Store) unitPrice(line models.CartLine) decimal.Decimal {
	price, ok := s.catalog.Price(line.Product)
	if !ok {
		return decimal.Zero
	}
	return price
}

// Total sums quantity times catalog unit price over all lines. A product
// absent from the catalog contributes zero.
func (s *Store) Total() decimal.Decimal {
	s.mu.Lock()
	defer s.mu.Unlock()

	total := decimal.Zero
	for _, line := range s.lines {
		total = total.Add(s.unitPrice(line).Mul(decimal.NewFromInt(int64(line.Quantity))))
	}
	return total
}

// Lines returns a copy of the cart in its current order.
func (s *Store) Lines() []models.CartLine {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.CartLine, len(s.lines))
	copy(out, s.lines)
	return out
}

// Customer returns the customer name for the session.
func (s *Store) Customer() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.customer
}

// SetCustomer records the customer name for the session.
func (s *Store) SetCustomer(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.customer = strings.TrimSpace(name)
}
