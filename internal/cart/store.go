package cart

import (
	"log/slog"
	"sync"

	"github.com/Viviane-Queiroz/dev-shop/internal/catalog"
	"github.com/Viviane-Queiroz/dev-shop/internal/notify"
)

// Slot is the durable key-value slot the cart survives in between visits.
// Writes are fire-and-forget: the backing medium (a browser cookie) gives
// no acknowledgement, so Write returns nothing.
type Slot interface {
	Read() (string, bool)
	Write(value string)
}

// Store owns the in-memory cart and is the sole writer of its persisted
// copy. Every mutation is applied against the latest committed state under
// the Store's lock and the slot is rewritten before the lock is released,
// so rapid successive operations on the same product never act on a stale
// snapshot.
//
// Operations never return errors: each one fully contains its failures and
// reports the outcome through the notification sink.
type Store struct {
	mu    sync.Mutex
	items []LineItem

	catalog *catalog.Catalog
	slot    Slot
	sink    notify.Notifier
	log     *slog.Logger
}

// NewStore seeds the cart from the slot. An absent slot yields an empty
// cart; an unparsable one is discarded with a warning and also yields an
// empty cart.
func NewStore(cat *catalog.Catalog, slot Slot, sink notify.Notifier, log *slog.Logger) *Store {
	s := &Store{
		items:   []LineItem{},
		catalog: cat,
		slot:    slot,
		sink:    sink,
		log:     log,
	}
	raw, ok := slot.Read()
	if !ok {
		return s
	}
	items, err := decodeItems(raw)
	if err != nil {
		s.log.Warn("discarding unparsable persisted cart", "error", err)
		return s
	}
	s.items = items
	return s
}

// AddProduct puts one unit of the product in the cart. A product already
// in the cart has its amount bumped by one instead. The success toast is
// emitted whenever no failure was caught, including on the bump path.
func (s *Store) AddProduct(productID string) {
	var failure error
	delegate := false
	nextAmount := 0

	s.mu.Lock()
	if idx := indexOf(s.items, productID); idx >= 0 {
		delegate = true
		nextAmount = s.items[idx].Amount + 1
		if s.items[idx].Amount <= 0 {
			nextAmount = 1
		}
	} else {
		entry, found := s.catalog.Find(productID)
		switch {
		case !found:
			failure = ErrUnknownProduct
		case entry.Inventory == 0:
			failure = ErrOutOfStock
		default:
			s.items = append(s.items, LineItem{
				ID:        entry.ID,
				Price:     entry.Price,
				Inventory: entry.Inventory,
				Amount:    1,
			})
			failure = s.persistLocked()
		}
	}
	s.mu.Unlock()

	if failure != nil {
		s.log.Warn("add to cart failed", "product_id", productID, "error", failure)
		s.sink.Notify(notify.Error("Error", "Could not add the product"))
		return
	}
	if delegate {
		s.UpdateProductAmount(productID, nextAmount)
	}
	s.sink.Notify(notify.Success("Success", "Product added to cart"))
}

// RemoveProduct drops the product's line item. A miss leaves the cart
// unchanged and surfaces only through the sink.
func (s *Store) RemoveProduct(productID string) {
	s.mu.Lock()
	idx := indexOf(s.items, productID)
	if idx < 0 {
		s.mu.Unlock()
		s.log.Warn("remove from cart failed", "product_id", productID, "error", ErrNotFound)
		s.sink.Notify(notify.Error("Error", "Could not remove the product from the cart"))
		return
	}
	s.items = append(s.items[:idx], s.items[idx+1:]...)
	err := s.persistLocked()
	s.mu.Unlock()

	if err != nil {
		s.log.Warn("remove from cart failed", "product_id", productID, "error", err)
		s.sink.Notify(notify.Error("Error", "Could not remove the product from the cart"))
		return
	}
	s.sink.Notify(notify.Info("Info", "Product removed from cart."))
}

// UpdateProductAmount sets the line item's amount. A non-positive amount
// or an absent product is a silent no-op. No toast is emitted on success;
// a caught failure emits an error toast.
func (s *Store) UpdateProductAmount(productID string, amount int) {
	if amount <= 0 {
		return
	}
	s.mu.Lock()
	idx := indexOf(s.items, productID)
	if idx < 0 {
		s.mu.Unlock()
		return
	}
	s.items[idx].Amount = amount
	err := s.persistLocked()
	s.mu.Unlock()

	if err != nil {
		s.log.Warn("update cart amount failed", "product_id", productID, "error", err)
		s.sink.Notify(notify.Error("Error", "Could not update the product amount"))
	}
}

// Items returns the line items in insertion order.
func (s *Store) Items() []LineItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]LineItem, len(s.items))
	copy(out, s.items)
	return out
}

// TotalItems is the sum of amounts over all line items.
func (s *Store) TotalItems() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	total := 0
	for _, it := range s.items {
		total += it.Amount
	}
	return total
}

// TotalPrice accumulates one unit price per line item with a nonzero
// amount. It does not weight by quantity; the storefront has always
// displayed it this way and carts persisted by older sessions expect it.
func (s *Store) TotalPrice() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	total := 0.0
	for _, it := range s.items {
		if it.Amount != 0 {
			total += it.Price
		}
	}
	return total
}

// persistLocked rewrites the slot from the current items. Callers hold mu.
func (s *Store) persistLocked() error {
	raw, err := encodeItems(s.items)
	if err != nil {
		return err
	}
	s.slot.Write(raw)
	return nil
}
