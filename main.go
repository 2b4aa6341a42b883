package main

import (
	"context"
	"fmt"
	"log"

	"restaurant-catalog/config"
	httpapi "restaurant-catalog/internal/api/http"
	"restaurant-catalog/internal/metrics"
	"restaurant-catalog/internal/service"
	"restaurant-catalog/internal/storage"
)

func main() {
	cfg := config.MustLoad()
	ctx := context.Background()

	db := config.MustInitMongo(ctx, cfg)
	if err := storage.EnsureIndexes(ctx, db); err != nil {
		log.Fatal("Failed to ensure indexes:", err)
	}

	var cache service.CatalogCache
	if rdb := config.MustInitRedis(cfg); rdb != nil {
		cache = storage.NewRedisCache(rdb, cfg.Cache.TTL)
	}

	kitchenTypeRepo := storage.NewKitchenTypeRepo(db)
	restaurantRepo := storage.NewRestaurantRepo(db)
	userTypeRepo := storage.NewUserTypeRepo(db)
	userRepo := storage.NewUserRepo(db)

	kitchenTypes := service.NewKitchenTypeService(kitchenTypeRepo, restaurantRepo, cache)
	restaurants := service.NewRestaurantService(restaurantRepo, kitchenTypes, cache)
	menus := service.NewMenuService(restaurantRepo, cache)
	menuItems := service.NewMenuItemService(restaurantRepo, cache)
	userTypes := service.NewUserTypeService(userTypeRepo, userRepo)
	users := service.NewUserService(userRepo, userTypes)

	handler := httpapi.NewHandler(
		kitchenTypes,
		restaurants,
		menus,
		menuItems,
		userTypes,
		users,
		service.DefaultQRGenerator{BaseURL: cfg.QR.BaseURL},
	)

	router := httpapi.NewRouter(handler, metrics.New(), cfg.Log.Level == "debug")
	httpapi.StartServer(fmt.Sprintf(":%d", cfg.HTTP.Port), router)
}
