package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	catalogapp "github.com/delivery/backend/internal/application/catalog"
	identityapp "github.com/delivery/backend/internal/application/identity"
	orderingapp "github.com/delivery/backend/internal/application/ordering"
	reviewapp "github.com/delivery/backend/internal/application/review"
	"github.com/delivery/backend/internal/infrastructure/config"
	"github.com/delivery/backend/internal/infrastructure/i18n"
	"github.com/delivery/backend/internal/infrastructure/logger"
	"github.com/delivery/backend/internal/infrastructure/persistence"
)

// Services bundles the wired application services for the API layer,
// which lives outside this repository.
type Services struct {
	Users      *identityapp.UserService
	Categories *catalogapp.CategoryService
	Stores     *catalogapp.StoreService
	Products   *catalogapp.ProductService
	Carts      *orderingapp.CartService
	Orders     *orderingapp.OrderService
	Reviews    *reviewapp.ReviewService
	Locales    *i18n.Registry
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	log, err := logger.New(&logger.Config{
		Level:      cfg.Log.Level,
		Format:     cfg.Log.Format,
		Output:     cfg.Log.Output,
		TimeFormat: "2006-01-02T15:04:05.000Z07:00",
	})
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync(log)
	}()

	log.Info("Starting delivery backend",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	gormLog := logger.NewGormLogger(log, logger.MapGormLogLevel(cfg.Log.Level))

	db, err := persistence.NewDatabaseWithLogger(&cfg.Database, gormLog)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing database", zap.Error(err))
		}
	}()
	log.Info("Database connected")

	if _, err := wireServices(db, cfg, log); err != nil {
		log.Fatal("Failed to wire services", zap.Error(err))
	}
	log.Info("Application services wired")

	// Only a readiness probe is served here; the HTTP API is a separate
	// deployment consuming this module.
	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		if err := db.Ping(); err != nil {
			http.Error(w, "database unreachable", http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
	})

	srv := &http.Server{
		Addr:    ":" + cfg.App.Port,
		Handler: mux,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Readiness server failed", zap.Error(err))
		}
	}()
	log.Info("Readiness probe listening", zap.String("addr", srv.Addr))

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("Shutdown failed", zap.Error(err))
	}
}

func wireServices(db *persistence.Database, cfg *config.Config, log *zap.Logger) (*Services, error) {
	registry, err := i18n.NewRegistry(cfg.I18n.DefaultLocale, cfg.I18n.Locales)
	if err != nil {
		return nil, err
	}

	userRepo := persistence.NewGormUserRepository(db.DB)
	categoryRepo := persistence.NewGormCategoryRepository(db.DB)
	storeRepo := persistence.NewGormStoreRepository(db.DB)
	contactRepo := persistence.NewGormContactInfoRepository(db.DB)
	productRepo := persistence.NewGormProductRepository(db.DB)
	comboRepo := persistence.NewGormProductComboRepository(db.DB)
	cartRepo := persistence.NewGormCartRepository(db.DB)
	cartItemRepo := persistence.NewGormCartItemRepository(db.DB)
	orderRepo := persistence.NewGormOrderRepository(db.DB)
	courierRepo := persistence.NewGormCourierRepository(db.DB)
	storeReviewRepo := persistence.NewGormStoreReviewRepository(db.DB)
	courierReviewRepo := persistence.NewGormCourierReviewRepository(db.DB)

	purger := persistence.NewPurger(db.DB, log)

	return &Services{
		Users:      identityapp.NewUserService(userRepo, purger),
		Categories: catalogapp.NewCategoryService(categoryRepo, purger),
		Stores:     catalogapp.NewStoreService(storeRepo, contactRepo, categoryRepo, userRepo, purger),
		Products:   catalogapp.NewProductService(productRepo, comboRepo, storeRepo, categoryRepo, purger),
		Carts:      orderingapp.NewCartService(cartRepo, cartItemRepo, productRepo, purger),
		Orders:     orderingapp.NewOrderService(orderRepo, courierRepo, cartRepo, productRepo, userRepo, purger),
		Reviews:    reviewapp.NewReviewService(storeReviewRepo, courierReviewRepo, storeRepo, userRepo),
		Locales:    registry,
	}, nil
}
