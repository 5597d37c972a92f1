package handlers

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cast"
	"go.uber.org/zap"

	"github.com/GamingStrider/Smart-electronic-appliances-suggestion/internal/cache"
	"github.com/GamingStrider/Smart-electronic-appliances-suggestion/internal/catalog"
	"github.com/GamingStrider/Smart-electronic-appliances-suggestion/internal/models"
	"github.com/GamingStrider/Smart-electronic-appliances-suggestion/internal/store"
)

const (
	recommendationLimit = 4
	homeCategoryLimit   = 5
	listTTL             = 2 * time.Minute
	detailTTL           = 5 * time.Minute
)

// ProductHandler serves the catalog routes. The collection is reloaded from
// the store on every request; the cache only short-circuits repeat listings.
type ProductHandler struct {
	store  *store.Store
	cache  *cache.Cache
	logger *zap.Logger
}

func NewProductHandler(st *store.Store, ca *cache.Cache, logger *zap.Logger) *ProductHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ProductHandler{store: st, cache: ca, logger: logger}
}

type ErrorResponse struct {
	Error string `json:"error"`
}

type ListingResponse struct {
	Query        string           `json:"query,omitempty"`
	Category     string           `json:"category,omitempty"`
	TotalResults int              `json:"total_results"`
	Products     []models.Product `json:"products"`
}

type DetailResponse struct {
	Product         models.Product   `json:"product"`
	Recommendations []models.Product `json:"recommendations"`
}

type HomeResponse struct {
	TotalProducts int                         `json:"total_products"`
	Categories    map[string][]models.Product `json:"categories"`
}

// wantsJSON selects the machine-readable listing over the rendered page.
func wantsJSON(c *gin.Context) bool {
	return c.Query("format") == "json" || c.PostForm("format") == "json"
}

// Home shows the highest-rated products of each category.
// GET /
func (h *ProductHandler) Home(c *gin.Context) {
	limit := homeCategoryLimit
	if v, err := cast.ToIntE(c.Query("per_category")); err == nil && v > 0 {
		limit = v
	}

	cacheKey := fmt.Sprintf("products:list:home:%d", limit)
	response, found := h.cache.GetValue(cacheKey)
	if !found {
		products := h.store.Load()
		response = HomeResponse{
			TotalProducts: len(products),
			Categories:    catalog.TopRatedByCategory(products, limit),
		}
		h.cache.Set(cacheKey, response, listTTL)
	}

	home := response.(HomeResponse)
	if wantsJSON(c) {
		c.JSON(http.StatusOK, home)
		return
	}
	c.HTML(http.StatusOK, "index.tmpl", gin.H{
		"TotalProducts": home.TotalProducts,
		"Categories":    home.Categories,
	})
}

// Search filters the catalog by keyword, category, facets and price range.
// GET /search and POST /search (the search form submits a POST).
func (h *ProductHandler) Search(c *gin.Context) {
	criteria := criteriaFromRequest(c)
	sortKey := c.DefaultQuery("sort", "rating")

	cacheKey := fmt.Sprintf("products:list:search:%s:%v", sortKey, criteria)
	response, found := h.cache.GetValue(cacheKey)
	if !found {
		matched := catalog.Filter(h.store.Load(), criteria)
		if sortKey == "rating" {
			matched = catalog.SortByRating(matched)
		}
		response = ListingResponse{
			Query:        criteria.Query,
			Category:     criteria.Category,
			TotalResults: len(matched),
			Products:     matched,
		}
		h.cache.Set(cacheKey, response, listTTL)
	}

	h.renderListing(c, response.(ListingResponse))
}

// Category lists all products in one category, rating-sorted.
// GET /category/:name
func (h *ProductHandler) Category(c *gin.Context) {
	name := c.Param("name")

	cacheKey := fmt.Sprintf("products:list:category:%s", name)
	response, found := h.cache.GetValue(cacheKey)
	if !found {
		matched := catalog.Filter(h.store.Load(), catalog.Criteria{Category: name})
		matched = catalog.SortByRating(matched)
		response = ListingResponse{
			Category:     name,
			TotalResults: len(matched),
			Products:     matched,
		}
		h.cache.Set(cacheKey, response, listTTL)
	}

	h.renderListing(c, response.(ListingResponse))
}

// Detail shows one product with up to four related products.
// GET /product/:id
func (h *ProductHandler) Detail(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		h.notFound(c)
		return
	}

	cacheKey := fmt.Sprintf("product:%d", id)
	response, found := h.cache.GetValue(cacheKey)
	if !found {
		products := h.store.Load()
		product, err := h.store.FindByID(id)
		if err != nil {
			h.notFound(c)
			return
		}
		response = DetailResponse{
			Product:         product,
			Recommendations: catalog.Recommend(id, products, recommendationLimit),
		}
		h.cache.Set(cacheKey, response, detailTTL)
	}

	detail := response.(DetailResponse)
	if wantsJSON(c) {
		c.JSON(http.StatusOK, detail)
		return
	}
	c.HTML(http.StatusOK, "results.tmpl", gin.H{
		"Products":            []models.Product{detail.Product},
		"Recommendations":     detail.Recommendations,
		"ShowRecommendations": true,
		"TotalResults":        1,
	})
}

// ShowAddProductForm renders the creation form.
// GET /add-product
func (h *ProductHandler) ShowAddProductForm(c *gin.Context) {
	if wantsJSON(c) {
		c.JSON(http.StatusOK, gin.H{
			"categories":    models.Categories,
			"price_buckets": catalog.PriceBucketKeys,
		})
		return
	}
	c.HTML(http.StatusOK, "add_product.tmpl", gin.H{
		"Categories": models.Categories,
	})
}

// AddProduct validates the form, persists the new product and invalidates
// cached listings.
// POST /add-product
func (h *ProductHandler) AddProduct(c *gin.Context) {
	var input models.NewProductInput
	if err := c.ShouldBind(&input); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}
	if !models.KnownCategory(input.Category) {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "unknown category: " + input.Category})
		return
	}

	product, err := h.store.Add(input.ToProduct())
	if err != nil {
		h.logger.Error("failed to save new product", zap.Error(err))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to save product"})
		return
	}

	h.cache.DeleteByPrefix("products:list:")
	h.cache.DeleteByPrefix("product:")

	h.logger.Info("product added",
		zap.Int("id", product.ID),
		zap.String("category", product.Category))

	if wantsJSON(c) {
		c.JSON(http.StatusCreated, product)
		return
	}
	c.Redirect(http.StatusSeeOther, "/category/"+product.Category)
}

// Health reports liveness.
// GET /health
func (h *ProductHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// NotFound handles unmatched routes.
func (h *ProductHandler) NotFound(c *gin.Context) {
	if wantsJSON(c) {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "page not found"})
		return
	}
	c.HTML(http.StatusNotFound, "results.tmpl", gin.H{
		"Products":     []models.Product{},
		"TotalResults": 0,
		"ErrorMessage": "Page not found",
	})
}

func (h *ProductHandler) notFound(c *gin.Context) {
	if wantsJSON(c) {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "product not found"})
		return
	}
	c.HTML(http.StatusNotFound, "results.tmpl", gin.H{
		"Products":     []models.Product{},
		"TotalResults": 0,
		"ErrorMessage": "Product not found",
	})
}

func (h *ProductHandler) renderListing(c *gin.Context, listing ListingResponse) {
	if wantsJSON(c) {
		c.JSON(http.StatusOK, listing)
		return
	}
	c.HTML(http.StatusOK, "results.tmpl", gin.H{
		"Products":     listing.Products,
		"SearchQuery":  listing.Query,
		"Category":     listing.Category,
		"TotalResults": listing.TotalResults,
	})
}

// criteriaFromRequest reads the filter dimensions from the query string and,
// on the POSTed search form, from the form body as well. Query params are
// advisory: non-numeric min/max prices fall back to the unbounded defaults.
func criteriaFromRequest(c *gin.Context) catalog.Criteria {
	query := c.Query("q")
	category := c.Query("category")
	if c.Request.Method == http.MethodPost {
		if v := c.PostForm("search_query"); v != "" {
			query = v
		}
		if v := c.PostForm("category"); v != "" {
			category = v
		}
	}

	return catalog.Criteria{
		Query:       query,
		Category:    category,
		Brands:      requestArray(c, "brand"),
		Processors:  requestArray(c, "processor"),
		Cameras:     requestArray(c, "camera"),
		Batteries:   requestArray(c, "battery"),
		Storages:    requestArray(c, "storage"),
		PriceRanges: requestArray(c, "price_range"),
		MinPrice:    cast.ToInt(requestValue(c, "min_price")),
		MaxPrice:    cast.ToInt(requestValue(c, "max_price")),
	}
}

// requestArray collects a repeatable field from the query string plus, on
// POST, the form body.
func requestArray(c *gin.Context, key string) []string {
	values := c.QueryArray(key)
	if c.Request.Method == http.MethodPost {
		values = append(values, c.PostFormArray(key)...)
	}
	return values
}

// requestValue prefers the form body over the query string on POST.
func requestValue(c *gin.Context, key string) string {
	if c.Request.Method == http.MethodPost {
		if v := c.PostForm(key); v != "" {
			return v
		}
	}
	return c.Query(key)
}
