package router

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	"gostore/internal/api/cart"
	"gostore/internal/api/checkout"
	_ "gostore/internal/api/docs" // registra a documentação Swagger
	"gostore/internal/api/product"
	"gostore/internal/api/respond"
	"gostore/internal/api/session"
	"gostore/internal/pkg/cache"
	"gostore/internal/pkg/logger"
	"gostore/internal/pkg/middleware"
)

// Handlers reúne os Handlers já inicializados por injeção de dependências.
type Handlers struct {
	Product  *product.Handler
	Cart     *cart.Handler
	Session  *session.Handler
	Checkout *checkout.Handler
}

// Options configura os middlewares globais.
type Options struct {
	AllowedOrigins []string
	// RateLimitCache nil desativa o rate limiter.
	RateLimitCache  cache.Client
	RateLimitMax    int
	RateLimitPeriod time.Duration
}

// NewRouter configura e retorna o roteador HTTP principal.
func NewRouter(h Handlers, sessions middleware.SessionReader, opts Options, log logger.Logger) http.Handler {
	r := chi.NewRouter()

	// --- 1. Middlewares Globais ---
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.RequestLogger(log))
	r.Use(chimiddleware.Recoverer)

	origins := opts.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-Id"},
		MaxAge:         300,
	}))

	// --- 2. Health Check e Documentação ---
	r.Get("/ping", PingHandler)
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	requireSession := middleware.RequireSession(sessions, respond.New(log))

	// --- 3. Rotas da API (v1) ---
	r.Route("/v1", func(r chi.Router) {
		if opts.RateLimitCache != nil && opts.RateLimitMax > 0 {
			r.Use(middleware.RateLimiter(opts.RateLimitCache, opts.RateLimitMax, opts.RateLimitPeriod, log))
		}

		// Catálogo
		r.Get("/products", h.Product.ListProductsHandler)
		r.Get("/products/{id}", h.Product.GetProductByIDHandler)
		r.Get("/categories", h.Product.ListCategoriesHandler)

		// Carrinho
		r.Get("/cart", h.Cart.GetCartHandler)
		r.Delete("/cart", h.Cart.ClearCartHandler)
		r.Post("/cart/items", h.Cart.AddItemHandler)
		r.Post("/cart/items/{id}/increment", h.Cart.IncrementItemHandler)
		r.Post("/cart/items/{id}/decrement", h.Cart.DecrementItemHandler)
		r.Delete("/cart/items/{id}", h.Cart.RemoveItemHandler)

		// Sessão
		r.Get("/session", h.Session.GetSessionHandler)
		r.Post("/session", h.Session.SignInHandler)
		r.Delete("/session", h.Session.SignOutHandler)

		// Checkout (rota protegida)
		r.With(requireSession).Post("/checkout", h.Checkout.CheckoutHandler)
	})

	return r
}

// PingHandler é o health check.
func PingHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("pong"))
}
