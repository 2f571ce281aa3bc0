package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Viviane-Queiroz/dev-shop/configs"
	"github.com/Viviane-Queiroz/dev-shop/internal/adapter/http/middleware"
	"github.com/Viviane-Queiroz/dev-shop/internal/cart"
	"github.com/Viviane-Queiroz/dev-shop/internal/catalog"
	"github.com/Viviane-Queiroz/dev-shop/internal/logging"
	"github.com/Viviane-Queiroz/dev-shop/internal/notify"
)

type CartHandler struct {
	cat *catalog.Catalog
	cfg configs.Config
}

func NewCartHandler(cat *catalog.Catalog, cfg configs.Config) *CartHandler {
	return &CartHandler{cat: cat, cfg: cfg}
}

type cartResp struct {
	Items      []cart.LineItem `json:"items"`
	TotalItems int             `json:"totalItems"`
	TotalPrice float64         `json:"totalPrice"`
	Toasts     []notify.Event  `json:"toasts,omitempty"`
}

type addItemReq struct {
	ProductID string `json:"productId" binding:"required"`
}

// Amount is deliberately unvalidated here: the store treats a missing or
// non-positive amount as a silent no-op.
type updateItemReq struct {
	Amount int `json:"amount"`
}

// store rebuilds the visitor's cart from the request cookie. Each request
// gets its own Store and toast recorder; the mutated cart is written back
// to the cookie by the slot before the response body is rendered.
func (h *CartHandler) store(c *gin.Context) (*cart.Store, *notify.Recorder) {
	l := logging.From(c)
	if sess, ok := middleware.Current(c); ok {
		l = l.With("visitor", sess.Login)
	}
	rec := notify.NewRecorder()
	sink := notify.WithLogging(rec, l)
	slot := newCookieSlot(c, h.cfg.Cart.CookieName, h.cfg.Cart.MaxAge)
	return cart.NewStore(h.cat, slot, sink, l), rec
}

func (h *CartHandler) respond(c *gin.Context, s *cart.Store, rec *notify.Recorder) {
	c.JSON(http.StatusOK, cartResp{
		Items:      s.Items(),
		TotalItems: s.TotalItems(),
		TotalPrice: s.TotalPrice(),
		Toasts:     rec.Events(),
	})
}

func (h *CartHandler) GetCart(c *gin.Context) {
	s, rec := h.store(c)
	h.respond(c, s, rec)
}

// AddItem always answers 200: operation outcome travels in the toasts,
// never as an HTTP error.
func (h *CartHandler) AddItem(c *gin.Context) {
	var req addItemReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "bad_request"})
		return
	}
	s, rec := h.store(c)
	s.AddProduct(req.ProductID)
	middleware.CountCartOperation("add")
	h.respond(c, s, rec)
}

func (h *CartHandler) RemoveItem(c *gin.Context) {
	s, rec := h.store(c)
	s.RemoveProduct(c.Param("id"))
	middleware.CountCartOperation("remove")
	h.respond(c, s, rec)
}

func (h *CartHandler) UpdateItem(c *gin.Context) {
	var req updateItemReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "bad_request"})
		return
	}
	s, rec := h.store(c)
	s.UpdateProductAmount(c.Param("id"), req.Amount)
	middleware.CountCartOperation("update")
	h.respond(c, s, rec)
}

func (h *CartHandler) ListProducts(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"products": h.cat.List()})
}
