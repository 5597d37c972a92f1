package config

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cast"
)

type Config struct {
	Port         string
	ProductsFile string
	GinMode      string
	TemplateGlob string
	CacheTTL     time.Duration
}

// LoadConfig reads configuration from the environment, loading a local .env
// file first when one exists.
func LoadConfig() *Config {
	if _, err := os.Stat(".env"); err == nil {
		if err := godotenv.Load(); err != nil {
			log.Println("error loading .env file:", err)
		}
	}

	cacheTTL := 2 * time.Minute
	if v, err := cast.ToDurationE(getEnv("CACHE_TTL", "")); err == nil && v > 0 {
		cacheTTL = v
	}

	return &Config{
		Port:         getEnv("PORT", "8080"),
		ProductsFile: getEnv("PRODUCTS_FILE", "products.json"),
		GinMode:      getEnv("GIN_MODE", "release"),
		TemplateGlob: getEnv("TEMPLATE_GLOB", "web/templates/*.tmpl"),
		CacheTTL:     cacheTTL,
	}
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}
