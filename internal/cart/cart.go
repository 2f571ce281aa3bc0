package cart

import "errors"

// LineItem is one distinct product held in the cart with a requested
// quantity. The JSON tags fix the persisted form; changing them breaks
// carts already stored in visitors' cookies.
type LineItem struct {
	ID        string  `json:"id"`
	Price     float64 `json:"price"`
	Inventory int     `json:"inventory"`
	Amount    int     `json:"amount"`
}

// Operation outcomes. These never escape the Store; they are surfaced to
// the visitor through the notification sink and to operators through logs.
var (
	ErrOutOfStock     = errors.New("product out of stock")
	ErrNotFound       = errors.New("product not found")
	ErrUnknownProduct = errors.New("unknown product id")
)

func indexOf(items []LineItem, productID string) int {
	for i := range items {
		if items[i].ID == productID {
			return i
		}
	}
	return -1
}
