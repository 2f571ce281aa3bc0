package http

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/Viviane-Queiroz/dev-shop/internal/adapter/http/middleware"
	"github.com/Viviane-Queiroz/dev-shop/internal/logging"
)

func NewRouter(ch *CartHandler, lh *LoginHandler, gate *middleware.Gate) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), middleware.Metrics())

	l := logging.New("http")
	r.Use(middleware.Logging(l))

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(200, gin.H{"ok": true})
	})
	// Prometheus endpoint (scraped by Prometheus)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	r.GET("/login", lh.Login)
	r.GET("/auth/callback", lh.Callback)
	r.POST("/logout", lh.Logout)

	v1 := r.Group("/v1", gate.Require())
	{
		v1.GET("/products", ch.ListProducts)
		v1.GET("/cart", ch.GetCart)
		v1.POST("/cart/items", ch.AddItem)
		v1.DELETE("/cart/items/:id", ch.RemoveItem)
		v1.PATCH("/cart/items/:id", ch.UpdateItem)
	}

	return r
}
