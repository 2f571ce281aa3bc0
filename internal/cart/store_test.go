package cart

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Viviane-Queiroz/dev-shop/internal/catalog"
	"github.com/Viviane-Queiroz/dev-shop/internal/notify"
)

const testCatalogJSON = `[
	{"id": "p1", "name": "Product One", "price": 10, "inventory": 5},
	{"id": "p2", "name": "Product Two", "price": 20, "inventory": 3},
	{"id": "p3", "name": "Product Three", "price": 7.5, "inventory": 1},
	{"id": "sold-out", "name": "Sold Out", "price": 99, "inventory": 0}
]`

// memorySlot stands in for the cookie.
type memorySlot struct {
	value  string
	loaded bool
	writes int
}

func (s *memorySlot) Read() (string, bool) { return s.value, s.loaded }

func (s *memorySlot) Write(v string) {
	s.value = v
	s.loaded = true
	s.writes++
}

func newTestStore(t *testing.T, slot *memorySlot) (*Store, *notify.Recorder) {
	t.Helper()
	cat, err := catalog.Parse([]byte(testCatalogJSON))
	require.NoError(t, err)
	rec := notify.NewRecorder()
	return NewStore(cat, slot, rec, slog.Default()), rec
}

func kinds(events []notify.Event) []notify.Kind {
	out := make([]notify.Kind, len(events))
	for i, e := range events {
		out[i] = e.Kind
	}
	return out
}

func TestAddProduct_DistinctIDs(t *testing.T) {
	store, rec := newTestStore(t, &memorySlot{})

	store.AddProduct("p1")
	store.AddProduct("p2")
	store.AddProduct("p3")

	items := store.Items()
	require.Len(t, items, 3)
	for _, it := range items {
		assert.Equal(t, 1, it.Amount)
	}
	assert.Equal(t, 3, store.TotalItems())
	assert.Equal(t, []notify.Kind{notify.KindSuccess, notify.KindSuccess, notify.KindSuccess}, kinds(rec.Events()))
}

func TestAddProduct_SameIDTwice(t *testing.T) {
	store, _ := newTestStore(t, &memorySlot{})

	store.AddProduct("p1")
	store.AddProduct("p1")

	items := store.Items()
	require.Len(t, items, 1)
	assert.Equal(t, "p1", items[0].ID)
	assert.Equal(t, 2, items[0].Amount)
}

func TestAddProduct_OutOfStock(t *testing.T) {
	store, rec := newTestStore(t, &memorySlot{})

	store.AddProduct("sold-out")

	assert.Empty(t, store.Items())
	events := rec.Events()
	require.Len(t, events, 1)
	assert.Equal(t, notify.KindError, events[0].Kind)
}

func TestAddProduct_UnknownID(t *testing.T) {
	slot := &memorySlot{}
	store, rec := newTestStore(t, slot)

	store.AddProduct("no-such-product")

	assert.Empty(t, store.Items())
	assert.Zero(t, slot.writes)
	events := rec.Events()
	require.Len(t, events, 1)
	assert.Equal(t, notify.KindError, events[0].Kind)
}

// The bump path delegates to UpdateProductAmount and then toasts success
// without checking whether the delegated update took effect. Kept on
// purpose: the storefront has always toasted here.
func TestAddProduct_DelegationAlwaysToastsSuccess(t *testing.T) {
	store, rec := newTestStore(t, &memorySlot{})

	store.AddProduct("p1")
	store.AddProduct("p1")

	assert.Equal(t, []notify.Kind{notify.KindSuccess, notify.KindSuccess}, kinds(rec.Events()))
}

func TestRemoveProduct(t *testing.T) {
	store, rec := newTestStore(t, &memorySlot{})
	store.AddProduct("p1")
	store.AddProduct("p2")

	store.RemoveProduct("p1")

	items := store.Items()
	require.Len(t, items, 1)
	assert.Equal(t, "p2", items[0].ID)
	assert.Equal(t, 1, items[0].Amount)

	events := rec.Events()
	require.Len(t, events, 3)
	assert.Equal(t, notify.KindInfo, events[2].Kind)
}

func TestRemoveProduct_Absent(t *testing.T) {
	store, rec := newTestStore(t, &memorySlot{})
	store.AddProduct("p1")

	store.RemoveProduct("p2")

	require.Len(t, store.Items(), 1)
	events := rec.Events()
	require.Len(t, events, 2)
	assert.Equal(t, notify.KindError, events[1].Kind)
}

func TestUpdateProductAmount_NoOps(t *testing.T) {
	slot := &memorySlot{}
	store, rec := newTestStore(t, slot)
	store.AddProduct("p1")
	before := store.Items()
	writesBefore := slot.writes
	toastsBefore := len(rec.Events())

	store.UpdateProductAmount("p1", 0)
	store.UpdateProductAmount("p1", -3)
	store.UpdateProductAmount("p2", 4)

	assert.Equal(t, before, store.Items())
	assert.Equal(t, writesBefore, slot.writes)
	assert.Len(t, rec.Events(), toastsBefore)
}

func TestUpdateProductAmount_OnlyTouchesTarget(t *testing.T) {
	store, rec := newTestStore(t, &memorySlot{})
	store.AddProduct("p1")
	store.AddProduct("p2")
	toastsBefore := len(rec.Events())

	store.UpdateProductAmount("p1", 7)

	items := store.Items()
	require.Len(t, items, 2)
	assert.Equal(t, LineItem{ID: "p1", Price: 10, Inventory: 5, Amount: 7}, items[0])
	assert.Equal(t, LineItem{ID: "p2", Price: 20, Inventory: 3, Amount: 1}, items[1])
	assert.Len(t, rec.Events(), toastsBefore, "no toast on a successful amount update")
}

func TestPersistedRoundTrip(t *testing.T) {
	slot := &memorySlot{}
	store, _ := newTestStore(t, slot)
	store.AddProduct("p2")
	store.AddProduct("p1")
	store.UpdateProductAmount("p1", 4)

	reborn, _ := newTestStore(t, slot)
	assert.Equal(t, store.Items(), reborn.Items(), "same ids, amounts, prices, inventories, same order")
	assert.Equal(t, store.TotalItems(), reborn.TotalItems())
}

func TestNewStore_CorruptSlot(t *testing.T) {
	slot := &memorySlot{value: "{not json", loaded: true}
	store, _ := newTestStore(t, slot)
	assert.Empty(t, store.Items())
}

func TestNewStore_AbsentSlot(t *testing.T) {
	store, _ := newTestStore(t, &memorySlot{})
	assert.Empty(t, store.Items())
	assert.Zero(t, store.TotalItems())
	assert.Zero(t, store.TotalPrice())
}

// TotalPrice counts one unit price per line item regardless of amount.
func TestTotalPrice_UnitPricePerLine(t *testing.T) {
	store, _ := newTestStore(t, &memorySlot{})
	store.AddProduct("p1")
	store.UpdateProductAmount("p1", 5)
	store.AddProduct("p2")

	assert.InDelta(t, 30.0, store.TotalPrice(), 1e-9)
	assert.Equal(t, 6, store.TotalItems())
}

// Concrete end-to-end scenario over all four operations.
func TestCartScenario(t *testing.T) {
	store, _ := newTestStore(t, &memorySlot{})

	store.AddProduct("p1")
	require.Equal(t, []LineItem{{ID: "p1", Price: 10, Inventory: 5, Amount: 1}}, store.Items())
	require.Equal(t, 1, store.TotalItems())

	store.AddProduct("p1")
	require.Equal(t, 2, store.Items()[0].Amount)
	require.Equal(t, 2, store.TotalItems())

	store.UpdateProductAmount("p1", 5)
	require.Equal(t, 5, store.Items()[0].Amount)
	require.Equal(t, 5, store.TotalItems())

	store.RemoveProduct("p1")
	require.Empty(t, store.Items())
	require.Equal(t, 0, store.TotalItems())
}
