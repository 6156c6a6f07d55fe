package cart

import "errors"

// ErrInvalidQuantity is returned when a quantity is not a positive integer.
var ErrInvalidQuantity = errors.New("quantity must be a positive integer")

// ErrUnknownProduct is returned when a product is not in the catalog.
var ErrUnknownProduct = errors.New("product is not in the catalog")

// ErrNothingSelected is returned when a removal names no lines.
var ErrNothingSelected = errors.New("no cart lines selected")

// ErrUnknownColumn is returned for a sort column outside the fixed set.
var ErrUnknownColumn = errors.New("unknown sort column")
