package cart

import "github.com/shopvibe/storefront-backend/internal/catalog"

// Entry is a product snapshot plus the quantity held in the cart. The
// embedded product keeps the persisted JSON shape flat:
// {id, name, price, originalPrice?, image, category, ..., quantity}.
type Entry struct {
	catalog.Product
	Quantity int `json:"quantity"`
}

// Cart is the ordered list of entries for one session. At most one entry
// exists per product identifier.
type Cart []Entry

// Total returns the sum of price times quantity across all entries.
func (c Cart) Total() int64 {
	var total int64
	for _, entry := range c {
		total += entry.Price * int64(entry.Quantity)
	}
	return total
}

// ItemCount returns the total number of units, not distinct entries.
func (c Cart) ItemCount() int {
	var count int
	for _, entry := range c {
		count += entry.Quantity
	}
	return count
}

func (c Cart) indexOf(productID string) int {
	for i, entry := range c {
		if entry.ID == productID {
			return i
		}
	}
	return -1
}
