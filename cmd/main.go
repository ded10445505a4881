package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"

	// Nossos pacotes de infraestrutura e utilitários
	"gostore/config"
	"gostore/internal/pkg/cache"
	"gostore/internal/pkg/database"
	"gostore/internal/pkg/logger"

	// Camadas para Injeção de Dependências
	"gostore/internal/api/cart"
	"gostore/internal/api/checkout"
	"gostore/internal/api/product"
	"gostore/internal/api/router"
	"gostore/internal/api/session"
	"gostore/internal/repository/productrepo"
	"gostore/internal/repository/storagerepo"
	"gostore/internal/service/cartservice"
	"gostore/internal/service/catalogservice"
	"gostore/internal/service/checkoutservice"
	"gostore/internal/service/sessionservice"
)

func main() {
	// 0. CARREGAR VARIÁVEIS DE AMBIENTE (.env)
	log.Println("⚡ Inicializando serviço GoStore...")
	if err := godotenv.Load(); err != nil {
		// Sem .env seguimos com as variáveis do ambiente (ex: Docker).
		log.Println("⚠️ Aviso: Arquivo .env não encontrado ou erro de leitura. Carregando configs apenas do ambiente do sistema.")
	}

	// 1. Configuração e Logger
	cfg := config.LoadConfig()
	appLog := logger.NewLogger(cfg.LogLevel)
	if err := cfg.Validate(); err != nil {
		appLog.Fatal("Configuração inválida.", err)
	}
	appLog.Info("Configurações carregadas.", map[string]interface{}{
		"env":            cfg.Environment,
		"storage_driver": cfg.StorageDriver,
		"catalog_url":    cfg.CatalogURL,
	})

	// Preços saem como número no JSON, não como string.
	decimal.MarshalJSONWithoutQuotes = true

	// 2. Conexão com Recursos de Infraestrutura

	// A. Cache (Redis), opcional
	var cacheClient cache.Client
	if cfg.RedisAddr != "" {
		redisClient, err := cache.NewRedisClient(cfg.RedisAddr)
		if err != nil {
			appLog.Fatal("Falha ao conectar ao Redis.", err)
		}
		defer redisClient.Close()
		cacheClient = redisClient
		appLog.Info("Conexão Redis estabelecida.", map[string]interface{}{"addr": cfg.RedisAddr})
	}

	// B. Armazenamento local durável (sessão)
	storage, closeStorage, err := openStorage(cfg, cacheClient, appLog)
	if err != nil {
		appLog.Fatal("Falha ao abrir o armazenamento local.", err)
	}
	defer closeStorage()
	appLog.Info("Armazenamento local pronto.", map[string]interface{}{"driver": cfg.StorageDriver})

	// 3. INJEÇÃO DE DEPENDÊNCIAS
	// Ordem: Repository -> Service -> Handler

	// A. Catálogo
	productRepo := productrepo.NewProductRepository(cfg.CatalogURL, cfg.CatalogTimeout, cacheClient, cfg.CatalogCacheTTL, appLog)
	catalogSvc := catalogservice.NewService(productRepo, catalogservice.DefaultCategoryTable(), appLog)
	appLog.Debug("Serviço de Catálogo inicializado.", nil)

	// B. Carrinho (um único carrinho por processo)
	cartStore := cartservice.NewStore(appLog)

	// C. Sessão: restaura a identidade persistida na inicialização
	bootCtx, cancelBoot := context.WithTimeout(context.Background(), cfg.DBTimeout)
	sessionSvc := sessionservice.NewService(bootCtx, storage, sessionservice.Options{MaxAge: cfg.SessionMaxAge}, appLog)
	cancelBoot()
	appLog.Info("Sessão restaurada.", map[string]interface{}{"authenticated": sessionSvc.IsAuthenticated()})

	// D. Checkout
	checkoutSvc := checkoutservice.NewService(cartStore, sessionSvc, cfg.CheckoutDelay, appLog)

	// E. Handlers
	handlers := router.Handlers{
		Product:  product.NewHandler(catalogSvc, appLog),
		Cart:     cart.NewHandler(cartStore, catalogSvc, appLog),
		Session:  session.NewHandler(sessionSvc, appLog),
		Checkout: checkout.NewHandler(checkoutSvc, appLog),
	}

	// 4. Configuração e Início do Roteador/Servidor
	r := router.NewRouter(handlers, sessionSvc, router.Options{
		AllowedOrigins:  cfg.CORSAllowedOrigins,
		RateLimitCache:  cacheClient,
		RateLimitMax:    cfg.RateLimitMaxRequests,
		RateLimitPeriod: cfg.RateLimitPeriod,
	}, appLog)

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10*time.Second + cfg.CheckoutDelay,
		IdleTimeout:  60 * time.Second,
	}

	// 5. Execução e Graceful Shutdown
	go func() {
		appLog.Info("Servidor GoStore ouvindo na porta", map[string]interface{}{"port": cfg.Port})
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLog.Fatal("Servidor falhou.", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	<-quit
	appLog.Info("Sinal de encerramento recebido. Desligando servidor...", nil)

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		appLog.Error("Desligamento do servidor forçado.", err)
	}

	appLog.Info("Servidor encerrado com sucesso.", nil)
}

// openStorage cria o armazenamento local conforme STORAGE_DRIVER.
// Para drivers SQL aplica as migrações embutidas antes de usar a tabela.
func openStorage(cfg *config.Config, cacheClient cache.Client, log logger.Logger) (storagerepo.Storage, func(), error) {
	noop := func() {}

	switch cfg.StorageDriver {
	case "memory":
		log.Warn("Armazenamento em memória: a sessão não sobrevive a reinícios.", nil)
		return storagerepo.NewMemoryStorage(), noop, nil

	case "redis":
		if cacheClient == nil {
			return nil, noop, fmt.Errorf("STORAGE_DRIVER=redis exige REDIS_ADDR")
		}
		return storagerepo.NewRedisStorage(cacheClient, ""), noop, nil

	case string(database.DialectSQLite), string(database.DialectPostgres), string(database.DialectMySQL):
		dialect := database.Dialect(cfg.StorageDriver)

		db, err := database.Open(dialect, cfg.StorageDSN)
		if err != nil {
			return nil, noop, err
		}
		closeDB := func() { closeQuietly(db, log) }

		if err := database.Migrate(db, dialect); err != nil {
			closeDB()
			return nil, noop, err
		}

		storage, err := storagerepo.NewSQLStorage(db, dialect, cfg.DBTimeout, log)
		if err != nil {
			closeDB()
			return nil, noop, err
		}
		return storage, closeDB, nil
	}

	return nil, noop, fmt.Errorf("driver de armazenamento desconhecido: %q", cfg.StorageDriver)
}

func closeQuietly(db *sql.DB, log logger.Logger) {
	if err := db.Close(); err != nil {
		log.Error("Falha ao fechar o banco.", err)
	}
}
