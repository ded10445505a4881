package middleware

import (
	"encoding/json"
	"net"
	"net/http"
	"strconv"
	"time"

	"gostore/internal/domain"
	"gostore/internal/pkg/cache"
	"gostore/internal/pkg/logger"
)

const rateLimitKeyPrefix = "gostore:rate-limit:"

// RateLimiter limita o número de requisições por IP dentro de uma janela fixa.
// Se o cache falhar, a requisição segue sem limite.
func RateLimiter(client cache.Client, limit int, window time.Duration, log logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ip, _, err := net.SplitHostPort(r.RemoteAddr)
			if err != nil {
				ip = r.RemoteAddr
			}
			key := rateLimitKeyPrefix + ip
			ctx := r.Context()

			// INCR cria a chave em 1 se ela não existe; só então o TTL abre a janela.
			n, err := client.Incr(ctx, key)
			if err != nil {
				log.Warn("Rate limiter sem cache.", map[string]interface{}{"error": err.Error()})
				next.ServeHTTP(w, r)
				return
			}
			if n == 1 {
				if err := client.Expire(ctx, key, window); err != nil {
					// Sem TTL a chave nunca expiraria e o IP ficaria bloqueado.
					log.Warn("Rate limiter sem TTL; contador descartado.", map[string]interface{}{"error": err.Error()})
					client.Delete(ctx, key)
				}
			}

			if n > int64(limit) {
				w.Header().Set("X-RateLimit-Remaining", "0")
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusTooManyRequests)
				json.NewEncoder(w).Encode(domain.ErrorResponse{
					Code:     http.StatusTooManyRequests,
					Category: "RATE_LIMITED",
					Message:  "Limite de requisições excedido.",
				})
				return
			}

			w.Header().Set("X-RateLimit-Remaining", strconv.FormatInt(int64(limit)-n, 10))
			next.ServeHTTP(w, r)
		})
	}
}
