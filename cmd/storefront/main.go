package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/nouvalryhn/reboxed-web/internal/catalog"
	"github.com/nouvalryhn/reboxed-web/internal/checkout"
	"github.com/nouvalryhn/reboxed-web/internal/config"
	"github.com/nouvalryhn/reboxed-web/internal/events"
	httpapi "github.com/nouvalryhn/reboxed-web/internal/http"
	"github.com/nouvalryhn/reboxed-web/internal/identity"
	"github.com/nouvalryhn/reboxed-web/internal/kv"
	"github.com/nouvalryhn/reboxed-web/internal/messaging"
	"github.com/nouvalryhn/reboxed-web/internal/payment"
	"github.com/nouvalryhn/reboxed-web/internal/store"
)

func main() {
	cfg := config.Load()

	logger := newLogger(cfg.Env)
	defer func() { _ = logger.Sync() }()
	log := logger.Sugar()

	// Durable slots
	kvs, err := openSlots(cfg, log)
	if err != nil {
		log.Fatalw("open slot store", "path", cfg.DBPath, "error", err)
	}
	defer kvs.Close()

	snap, err := store.LoadSnapshot(context.Background(), kvs, log)
	if err != nil {
		log.Fatalw("load state", "error", err)
	}

	// State aggregate + persistence wiring
	bus := events.NewBus()
	st := store.New(snap, bus)
	store.NewPersister(kvs, st, log).Attach(bus)
	bus.SubscribeAll(func(ev events.Envelope) {
		log.Debugw("state changed", "event", ev.EventName, "eventId", ev.EventID)
	}, events.CartChangedEvent, events.SelectionChangedEvent,
		events.WishlistChangedEvent, events.OrderPlacedEvent)

	// Collaborators (mocked in-process)
	identityProvider := identity.NewStaticProvider(identity.DemoUser())
	u, err := identityProvider.Current(context.Background())
	if err != nil {
		log.Fatalw("load profile", "error", err)
	}
	st.SetUser(&u)

	cat := catalog.NewMemoryRepository(catalog.SeedProducts())
	processor := payment.NewSimulator(cfg.PaymentDelay, log)
	checkoutSvc := checkout.NewService(st, processor, log)

	now := time.Now().UTC()
	msgs := messaging.NewMemoryRepository(messaging.SeedConversations(now), messaging.SeedMessages(now))

	router := httpapi.NewRouter(httpapi.Handlers{
		Catalog:   httpapi.NewCatalogHandler(cat),
		Cart:      httpapi.NewCartHandler(st, cat),
		Checkout:  httpapi.NewCheckoutHandler(checkoutSvc),
		Orders:    httpapi.NewOrderHandler(st),
		Profile:   httpapi.NewProfileHandler(st),
		Messaging: httpapi.NewMessagingHandler(msgs, st),
	})

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	go func() {
		log.Infow("storefront listening", "port", cfg.Port, "db", cfg.DBPath)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalw("server error", "error", err)
		}
	}()

	// Graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop
	log.Info("shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	_ = srv.Shutdown(shutdownCtx)
}

func newLogger(env string) *zap.Logger {
	var zcfg zap.Config
	switch env {
	case "prod", "production":
		zcfg = zap.NewProductionConfig()
	default:
		zcfg = zap.NewDevelopmentConfig()
	}
	logger, err := zcfg.Build()
	if err != nil {
		panic(err)
	}
	return logger
}

func openSlots(cfg config.Config, log *zap.SugaredLogger) (kv.Store, error) {
	if cfg.DBPath == "" {
		log.Warn("STOREFRONT_DB empty, state will not survive restarts")
		return kv.NewMemStore(), nil
	}
	return kv.OpenSQLite(cfg.DBPath)
}
