package main

import (
	"context"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"wokstore/config"
	httpapi "wokstore/internal/api/http"
	"wokstore/internal/fixture"
	"wokstore/internal/remote"
	"wokstore/internal/service"
	"wokstore/internal/storage"
)

func main() {
	_ = godotenv.Load()

	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	cfg := config.MustLoad()
	ctx := context.Background()

	var kv storage.KeyValueStore
	switch cfg.StateStore {
	case "redis":
		client := config.MustInitRedis(cfg)
		defer client.Close()
		kv = storage.NewRedisStore(client, "storefront")
	case "postgres":
		db := config.MustInitPostgres(cfg)
		defer db.Close()
		store, err := storage.NewPostgresStore(db)
		if err != nil {
			log.Fatal("Failed to init postgres state store: ", err)
		}
		kv = store
	default:
		kv = storage.NewMemoryStore()
	}

	session := storage.NewSessionStore(kv)

	var (
		users   service.UserSource
		catalog service.CatalogSource
		stores  service.StoreSource
		orders  service.OrderSource
	)
	if cfg.DataSource == "remote" {
		users = remote.NewUserSource(remote.NewClient(cfg.UsersURL, cfg.APITimeout, session, log))
		ordersClient := remote.NewClient(cfg.OrdersURL, cfg.APITimeout, session, log)
		catalog = remote.NewCatalogSource(ordersClient)
		orders = remote.NewOrderSource(ordersClient)
		stores = remote.NewStoreSource(remote.NewClient(cfg.StoresURL, cfg.APITimeout, session, log))
	} else {
		users = fixture.NewUserSource()
		catalog = fixture.NewCatalogSource()
		stores = fixture.NewStoreSource()
		orders = fixture.NewOrderSource()
	}

	var publisher service.OrderPublisher
	if cfg.KafkaBroker != "" {
		writer := config.NewKafkaWriter(cfg)
		defer writer.Close()
		publisher = storage.NewKafkaPublisher(writer)
	}

	cart := service.NewCartManager(ctx, kv, log)
	auth := service.NewAuthManager(users, session, log)
	auth.Load(ctx)

	orderSvc := service.NewOrderService(orders, publisher, service.DefaultQRGenerator{BaseURL: cfg.PublicBaseURL})

	handler := httpapi.NewHandler(catalog, stores, cart, auth, orderSvc)
	httpapi.StartServer(cfg.Addr, httpapi.NewRouter(handler), log)
}
