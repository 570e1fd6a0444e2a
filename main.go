package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"marketplace/configs"
	"marketplace/pkg/session"
	"marketplace/repository"
	"marketplace/repository/memory"
	"marketplace/routes"
	"marketplace/services"
	"marketplace/ws"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
)

func main() {
	cfg, err := configs.LoadConfig()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	logger := newLogger(cfg.Debug)
	if !cfg.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// DB
	var (
		stores services.Stores
		client *mongo.Client
	)
	switch cfg.DBDriver {
	case configs.DriverMongo:
		client, err = configs.ConnectMongo(ctx, cfg.MongoURI)
		if err != nil {
			log.Fatalf("failed to connect mongo: %v", err)
		}
		db := client.Database(cfg.MongoDatabase)
		if err := configs.EnsureIndexes(ctx, db); err != nil {
			log.Fatalf("ensure indexes failed: %v", err)
		}
		stores = services.Stores{
			Users:   repository.NewUserRepository(db),
			Buyers:  repository.NewBuyerRepository(db),
			Vendors: repository.NewVendorRepository(db),
			Menu:    repository.NewMenuRepository(db),
			Carts:   repository.NewCartRepository(db),
			Orders:  repository.NewOrderRepository(db),
		}
		logger.Info("connected to mongo", slog.String("database", cfg.MongoDatabase))
	case configs.DriverMemory:
		db := memory.New()
		stores = services.Stores{
			Users:   db.Users(),
			Buyers:  db.Buyers(),
			Vendors: db.Vendors(),
			Menu:    db.Menu(),
			Carts:   db.Carts(),
			Orders:  db.Orders(),
		}
		logger.Warn("using in-memory storage, data is lost on restart")
	}

	if err := configs.SeedVendor(ctx, cfg, stores); err != nil {
		log.Fatalf("seed vendor failed: %v", err)
	}

	// Sessions
	var store session.Store = session.NewMemoryStore()
	if cfg.RedisAddr != "" {
		rdb, err := configs.ConnectRedis(ctx, cfg)
		if err != nil {
			log.Fatalf("failed to connect redis: %v", err)
		}
		defer rdb.Close()
		store = session.NewRedisStore(rdb)
		logger.Info("sessions in redis", slog.String("addr", cfg.RedisAddr))
	}
	sessions := session.NewManager(store, session.Options{
		Secret:     cfg.SessionSecret,
		TTL:        cfg.SessionTTL,
		CookieName: cfg.SessionCookie,
		Secure:     cfg.CookieSecure,
	})

	// Order events
	hub := ws.NewOrderHub(logger, cfg.FrontendOrigin)
	go hub.Run(ctx)

	// HTTP
	r := routes.NewRouter(routes.Deps{
		Config:   cfg,
		Logger:   logger,
		Stores:   stores,
		Sessions: sessions,
		Hub:      hub,
	})
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%s", cfg.Port),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("server running", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("http server: %v", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("http shutdown", slog.Any("error", err))
	}
	cancel()

	if client != nil {
		if err := client.Disconnect(shutdownCtx); err != nil {
			logger.Error("mongo disconnect", slog.Any("error", err))
		}
	}
	logger.Info("stopped")
}

func newLogger(debug bool) *slog.Logger {
	if debug {
		return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}
	return slog.New(slog.NewJSONHandler(os.Stdout, nil))
}
