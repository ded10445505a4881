package middleware

import (
	"context"
	"net/http"

	"gostore/internal/api/respond"
	"gostore/internal/domain"
	apperror "gostore/internal/errors"
)

// ContextKey é o tipo das chaves de contexto deste pacote
// (chaves de contexto devem ser não-exportadas e de um tipo único).
type ContextKey int

const (
	SessionIdentityKey ContextKey = iota
)

// SessionReader define o contrato de sessão necessário para o middleware.
type SessionReader interface {
	Identity() (domain.SessionIdentity, bool)
}

// RequireSession bloqueia a rota com 401 quando não há sessão ativa e anexa a
// identidade da sessão ao contexto da requisição.
func RequireSession(sessions SessionReader, rs *respond.Responder) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			identity, ok := sessions.Identity()
			if !ok {
				rs.Error(w, r, apperror.NewUnauthorizedError("Faça login para continuar."))
				return
			}

			ctx := context.WithValue(r.Context(), SessionIdentityKey, identity)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetSessionIdentityFromContext extrai a identidade anexada por RequireSession.
func GetSessionIdentityFromContext(ctx context.Context) (domain.SessionIdentity, bool) {
	identity, ok := ctx.Value(SessionIdentityKey).(domain.SessionIdentity)
	return identity, ok
}
