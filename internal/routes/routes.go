package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/GamingStrider/Smart-electronic-appliances-suggestion/internal/handlers"
)

// RegisterRoutes wires the catalog routes onto the router.
func RegisterRoutes(router *gin.Engine, h *handlers.ProductHandler) {
	router.GET("/", h.Home)
	router.GET("/search", h.Search)
	router.POST("/search", h.Search)
	router.GET("/category/:name", h.Category)
	router.GET("/product/:id", h.Detail)
	router.GET("/add-product", h.ShowAddProductForm)
	router.POST("/add-product", h.AddProduct)
	router.GET("/health", h.Health)

	router.NoRoute(h.NotFound)
}
