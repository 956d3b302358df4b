// Package cart holds the pure cart-aggregation logic: a cart is an ordered
// slice of lines, each pairing a product ID with a desired quantity. All
// operations return a new slice and never touch storage; persistence and
// product fetches belong to the calling layer.
package cart

import "errors"

var (
	// ErrStockExceeded rejects an increment past the product's current stock.
	ErrStockExceeded = errors.New("maximum available stock reached")
	// ErrQuantityTooLow rejects SetQuantity below 1; callers should Remove instead.
	ErrQuantityTooLow = errors.New("quantity must be at least 1, remove the line instead")
)

// Line is one product/quantity pair. Quantity is always >= 1: a line that
// would drop to 0 is removed, never retained.
type Line struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

// Product is the read-only catalog projection the aggregator needs.
type Product struct {
	ID    string
	Name  string
	Price float64
	Stock int
}

// Lookup resolves a product ID against a catalog snapshot. The boolean is
// false when the product no longer exists.
type Lookup func(productID string) (Product, bool)

// Add increments an existing line by 1 or appends a new line with quantity 1.
// It performs no stock check; callers enforce the stock limit with a freshly
// fetched product via CheckStock.
func Add(lines []Line, productID string) []Line {
	out := make([]Line, len(lines))
	copy(out, lines)
	for i := range out {
		if out[i].ProductID == productID {
			out[i].Quantity++
			return out
		}
	}
	return append(out, Line{ProductID: productID, Quantity: 1})
}

// SetQuantity replaces a line's quantity. Quantities below 1 are refused with
// ErrQuantityTooLow; an absent product ID is a no-op.
func SetQuantity(lines []Line, productID string, quantity int) ([]Line, error) {
	if quantity < 1 {
		return lines, ErrQuantityTooLow
	}
	out := make([]Line, len(lines))
	copy(out, lines)
	for i := range out {
		if out[i].ProductID == productID {
			out[i].Quantity = quantity
			break
		}
	}
	return out, nil
}

// Remove returns the cart with the given product's line excluded.
func Remove(lines []Line, productID string) []Line {
	out := make([]Line, 0, len(lines))
	for _, l := range lines {
		if l.ProductID != productID {
			out = append(out, l)
		}
	}
	return out
}

// Clear returns the empty cart.
func Clear() []Line {
	return []Line{}
}

// Quantity reports the current quantity for a product, 0 when absent.
func Quantity(lines []Line, productID string) int {
	for _, l := range lines {
		if l.ProductID == productID {
			return l.Quantity
		}
	}
	return 0
}

// Count sums all line quantities (the cart badge number).
func Count(lines []Line) int {
	total := 0
	for _, l := range lines {
		total += l.Quantity
	}
	return total
}

// CheckStock validates that a desired quantity fits the product's current
// stock. The product must be freshly fetched: there is still a window between
// this check and the write, which only the conditional decrement at checkout
// closes authoritatively.
func CheckStock(p Product, desired int) error {
	if desired > p.Stock {
		return ErrStockExceeded
	}
	return nil
}

// Total prices the cart against a catalog lookup. Lines whose product is
// missing from the catalog contribute 0 and are reported back by ID so the
// caller can warn about the stale reference; they are not an error.
func Total(lines []Line, lookup Lookup) (float64, []string) {
	var total float64
	var missing []string
	for _, l := range lines {
		p, ok := lookup(l.ProductID)
		if !ok {
			missing = append(missing, l.ProductID)
			continue
		}
		total += p.Price * float64(l.Quantity)
	}
	return total, missing
}
