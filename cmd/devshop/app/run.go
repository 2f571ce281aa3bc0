package app

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/Viviane-Queiroz/dev-shop/configs"
	httpadapter "github.com/Viviane-Queiroz/dev-shop/internal/adapter/http"
	"github.com/Viviane-Queiroz/dev-shop/internal/adapter/http/middleware"
	"github.com/Viviane-Queiroz/dev-shop/internal/catalog"
	"github.com/Viviane-Queiroz/dev-shop/internal/logging"
	"github.com/Viviane-Queiroz/dev-shop/internal/session"
)

type App struct {
	Router *gin.Engine
}

func InitWithConfig(cfg configs.Config) (*App, func(), error) {
	logging.Init(cfg.App.Name, cfg.App.LogFile, cfg.App.LogLevel)
	l := logging.New("bootstrap")

	// static product catalog
	cat, err := catalog.New()
	if err != nil {
		return nil, nil, err
	}
	l.Info("catalog loaded", "products", len(cat.List()))

	// redis holds sessions and oauth state
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       0,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, nil, err
	}

	sessions := session.NewRedisStore(rdb, cfg.Session.TTL)

	ch := httpadapter.NewCartHandler(cat, cfg)
	lh := httpadapter.NewLoginHandler(cfg, sessions)
	gate := middleware.NewGate(cfg, sessions)
	router := httpadapter.NewRouter(ch, lh, gate)

	cleanup := func() {
		_ = rdb.Close()
	}

	return &App{Router: router}, cleanup, nil
}
