package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"coffeepos/internal/auth"
	"coffeepos/internal/config"
	httpctl "coffeepos/internal/controllers/http"
	"coffeepos/internal/domain"
	imysql "coffeepos/internal/infra/mysql"
	"coffeepos/internal/infra/rabbitmq"
	"coffeepos/internal/infra/storage"
	"coffeepos/internal/logger"
	"coffeepos/internal/repository"
	"coffeepos/internal/repository/failover"
	"coffeepos/internal/repository/memory"
	mysqlrepo "coffeepos/internal/repository/mysql"
	"coffeepos/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()
	log := logger.New(cfg.Logger)
	defer log.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db, err := imysql.Connect(cfg.MySQL)
	if err != nil {
		log.Warn("database unavailable, starting in demo mode", zap.Error(err))
		db = nil
	} else {
		sqlDB, _ := db.DB()
		sqlDB.SetMaxOpenConns(100)
		sqlDB.SetMaxIdleConns(20)
		sqlDB.SetConnMaxLifetime(5 * time.Minute)
		sqlDB.SetConnMaxIdleTime(1 * time.Minute)
	}

	var ping func(ctx context.Context) error
	if db != nil {
		ping = imysql.Ping(db)
	}
	breaker := failover.NewBreaker(ping, log)
	breaker.Probe(ctx)

	var rdb *redis.Client
	if cfg.Redis.Addr != "" {
		rdb = redis.NewClient(&redis.Options{
			Addr:         cfg.Redis.Addr,
			Password:     cfg.Redis.Password,
			DB:           cfg.Redis.DB,
			DialTimeout:  2 * time.Second,
			ReadTimeout:  500 * time.Millisecond,
			WriteTimeout: 500 * time.Millisecond,
		})
	}

	var publisher rabbitmq.PublisherInterface
	if cfg.RabbitMQ.URL != "" {
		pub, err := rabbitmq.NewPublisher(cfg.RabbitMQ.URL, cfg.RabbitMQ.Exchange)
		if err != nil {
			log.Warn("rabbitmq unavailable, events disabled", zap.Error(err))
		} else {
			publisher = pub
			defer pub.Close()
		}
	}

	// Demo-mode stores, seeded so the clients have something to show.
	localOrders := memory.NewStore[domain.Order]()
	localItems := memory.NewOrderItemStore()
	localProducts := memory.NewStore(memory.DemoProducts()...)
	localCategories := memory.NewStore(memory.DemoCategories()...)
	localSizes := memory.NewStore(memory.DemoSizes()...)
	localTables := memory.NewStore(memory.DemoTables()...)
	localInventory := memory.NewStore[domain.InventoryItem]()
	localVouchers := memory.NewStore[domain.Voucher]()
	localDiscounts := memory.NewStore[domain.Discount]()
	localProfiles := memory.NewProfileStore()
	localPoints := memory.NewStore[domain.CustomerPoint]()

	orders := pair[domain.Order](db, localOrders, breaker)
	products := pair[domain.Product](db, localProducts, breaker)
	categories := pair[domain.Category](db, localCategories, breaker)
	sizes := pair[domain.Size](db, localSizes, breaker)
	tables := pair[domain.Table](db, localTables, breaker)
	inventory := pair[domain.InventoryItem](db, localInventory, breaker)
	vouchers := pair[domain.Voucher](db, localVouchers, breaker)
	discounts := pair[domain.Discount](db, localDiscounts, breaker)
	points := pair[domain.CustomerPoint](db, localPoints, breaker)

	var profiles repository.ProfileStore = localProfiles
	if db != nil {
		profiles = failover.NewProfileStore(mysqlrepo.NewProfileStore(db), localProfiles, breaker)
	}

	var remoteOrders repository.Store[*domain.Order]
	var remoteItems repository.OrderItemStore
	var items repository.OrderItemStore = localItems
	if db != nil {
		remoteOrders = mysqlrepo.NewStore[domain.Order](db)
		remoteItems = mysqlrepo.NewOrderItemStore(db)
		items = failover.NewOrderItemStore(remoteItems, localItems, breaker)
	}
	backend := failover.NewOrderBackend(breaker, remoteOrders, localOrders, remoteItems, localItems)

	var uploader storage.Uploader
	if cfg.Storage.BaseURL != "" {
		uploader = storage.NewClient(cfg.Storage.BaseURL, cfg.Storage.Timeout)
	}

	orderSvc := services.NewOrderService(orders, items, backend, points, publisher, log)
	catalogSvc := services.NewCatalogService(products, categories, sizes, tables, uploader, log)
	inventorySvc := services.NewInventoryService(inventory, log)
	promoSvc := services.NewPromoService(vouchers, discounts, log)
	profileSvc := services.NewProfileService(profiles, points, log)

	var sessions auth.Sessions = auth.NewMemorySessions()
	if rdb != nil {
		sessions = auth.NewRedisSessions(rdb)
	}
	authSvc := auth.NewService(profiles, sessions, cfg.Auth.SessionTTL, log)

	handler := httpctl.NewHandler(orderSvc, catalogSvc, inventorySvc, promoSvc, profileSvc, authSvc, rdb, log)

	if cfg.Server.AppEnv != "dev" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())
	handler.RegisterRoutes(r)

	srv := &http.Server{Addr: ":" + cfg.Server.Port, Handler: r}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info("starting coffeepos server", zap.String("port", cfg.Server.Port), zap.Bool("demoMode", breaker.Open()))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Fatal("server exited", zap.Error(err))
	}
}

// pair wires one entity's database store and demo store behind the
// shared breaker. With no database the breaker is already open and the
// demo store serves everything.
func pair[T any, PT interface {
	*T
	repository.Entity
}](db *gorm.DB, local repository.Store[PT], br *failover.Breaker) repository.Store[PT] {
	if db == nil {
		return local
	}
	return failover.NewStore[PT](mysqlrepo.NewStore[T, PT](db), local, br)
}
