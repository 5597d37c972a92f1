package main

import (
	"os"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/GamingStrider/Smart-electronic-appliances-suggestion/internal/cache"
	"github.com/GamingStrider/Smart-electronic-appliances-suggestion/internal/config"
	"github.com/GamingStrider/Smart-electronic-appliances-suggestion/internal/handlers"
	"github.com/GamingStrider/Smart-electronic-appliances-suggestion/internal/routes"
	"github.com/GamingStrider/Smart-electronic-appliances-suggestion/internal/store"
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		os.Exit(1)
	}
	defer logger.Sync()

	cfg := config.LoadConfig()
	gin.SetMode(cfg.GinMode)

	productStore := store.New(cfg.ProductsFile, logger)
	responseCache := cache.New(cfg.CacheTTL)

	router := gin.Default()
	router.LoadHTMLGlob(cfg.TemplateGlob)

	h := handlers.NewProductHandler(productStore, responseCache, logger)
	routes.RegisterRoutes(router, h)

	logger.Info("catalog server starting",
		zap.String("port", cfg.Port),
		zap.String("products_file", cfg.ProductsFile))

	if err := router.Run(":" + cfg.Port); err != nil {
		logger.Fatal("server error", zap.Error(err))
	}
}
