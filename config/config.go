package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config armazena todas as configurações do GoStore.
type Config struct {
	// Geral
	Port        string
	Environment string
	LogLevel    string

	// Catálogo (API mock externa)
	CatalogURL      string
	CatalogTimeout  time.Duration
	CatalogCacheTTL time.Duration // 0 desativa o cache

	// Cache (Redis). Vazio desativa cache e rate limiting.
	RedisAddr string

	// Armazenamento local durável (sessão)
	StorageDriver string // sqlite | postgres | mysql | redis | memory
	StorageDSN    string
	DBTimeout     time.Duration

	// Sessão
	SessionMaxAge time.Duration // 0 = sem expiração na restauração

	// Checkout simulado
	CheckoutDelay time.Duration

	// HTTP
	CORSAllowedOrigins []string

	// Rate Limiting
	RateLimitMaxRequests int
	RateLimitPeriod      time.Duration
}

// DefaultCatalogURL é o endpoint público da API mock de produtos.
const DefaultCatalogURL = "https://68d482fa214be68f8c696bbd.mockapi.io/api/productos"

// LoadConfig carrega as configurações a partir das variáveis de ambiente.
func LoadConfig() *Config {
	cfg := &Config{
		// 1. Geral
		Port:        getEnv("PORT", "8080"),
		Environment: getEnv("ENV", "development"),
		LogLevel:    strings.ToLower(getEnv("LOG_LEVEL", "info")),

		// 2. Catálogo
		CatalogURL:      getEnv("CATALOG_URL", DefaultCatalogURL),
		CatalogTimeout:  getDurationEnv("CATALOG_TIMEOUT_SEC", 10) * time.Second,
		CatalogCacheTTL: getDurationEnv("CATALOG_CACHE_TTL_SEC", 0) * time.Second,

		// 3. Cache (Redis)
		RedisAddr: getEnv("REDIS_ADDR", ""),

		// 4. Armazenamento
		StorageDriver: strings.ToLower(getEnv("STORAGE_DRIVER", "sqlite")),
		StorageDSN:    getEnv("STORAGE_DSN", "data/gostore.db"),
		DBTimeout:     getDurationEnv("DB_TIMEOUT_SEC", 5) * time.Second,

		// 5. Sessão e checkout
		SessionMaxAge: getDurationEnv("SESSION_MAX_AGE_MIN", 0) * time.Minute,
		CheckoutDelay: getDurationEnv("CHECKOUT_DELAY_MS", 2000) * time.Millisecond,

		// 6. HTTP
		CORSAllowedOrigins: getSliceEnv("CORS_ALLOWED_ORIGINS", []string{"*"}),

		// 7. Rate Limiting
		RateLimitMaxRequests: getIntEnv("RATE_LIMIT_MAX_REQUESTS", 100),
		RateLimitPeriod:      getDurationEnv("RATE_LIMIT_PERIOD_MIN", 1) * time.Minute,
	}

	return cfg
}

// Validate verifica combinações inválidas antes de subir o servidor.
func (c *Config) Validate() error {
	if c.Port == "" {
		return fmt.Errorf("PORT é obrigatória")
	}
	if c.CatalogURL == "" {
		return fmt.Errorf("CATALOG_URL é obrigatória")
	}

	switch c.StorageDriver {
	case "sqlite", "postgres", "mysql":
		if c.StorageDSN == "" {
			return fmt.Errorf("STORAGE_DSN é obrigatória para o driver %s", c.StorageDriver)
		}
	case "redis":
		if c.RedisAddr == "" {
			return fmt.Errorf("REDIS_ADDR é obrigatória para o driver redis")
		}
	case "memory":
	default:
		return fmt.Errorf("STORAGE_DRIVER inválido: %s", c.StorageDriver)
	}

	if c.CatalogCacheTTL > 0 && c.RedisAddr == "" {
		return fmt.Errorf("CATALOG_CACHE_TTL_SEC exige REDIS_ADDR")
	}

	validLogLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLogLevels[c.LogLevel] {
		return fmt.Errorf("LOG_LEVEL inválido: %s (use debug, info, warn ou error)", c.LogLevel)
	}

	return nil
}

// Funções Helpers (Auxiliares)

// getEnv lê a variável de ambiente ou retorna um valor padrão.
// Variáveis definidas mas vazias contam como ausentes.
func getEnv(key string, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		return value
	}
	return defaultValue
}

// getDurationEnv lê uma variável de ambiente numérica e retorna-a como time.Duration.
func getDurationEnv(key string, defaultValue int) time.Duration {
	return time.Duration(getIntEnv(key, defaultValue))
}

// getIntEnv lê uma variável de ambiente numérica e retorna-a como int.
func getIntEnv(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("⚠️ Aviso: Valor de %s ('%s') não é um número inteiro válido. Usando padrão (%d).", key, valueStr, defaultValue)
		return defaultValue
	}
	return value
}

// getSliceEnv lê uma lista separada por vírgulas.
func getSliceEnv(key string, defaultValue []string) []string {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}

	var out []string
	for _, part := range strings.Split(valueStr, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	if len(out) == 0 {
		return defaultValue
	}
	return out
}
