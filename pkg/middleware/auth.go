package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/shakemap/shakemap-api/internal/usecases/authenticating"
	"github.com/shakemap/shakemap-api/pkg/apiErrors"
)

type contextKey string

const (
	ContextKeyUser contextKey = "user"
)

// AuthMiddleware anexa as claims do usuário ao contexto quando um token
// Bearer válido é enviado. A maior parte da API é pública (usuários
// anônimos navegam identificados apenas pelo dispositivo), então a
// ausência de token não bloqueia a requisição: rotas protegidas exigem as
// claims via Authenticated ou RoleMiddleware.
func AuthMiddleware(authService authenticating.Authenticator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				next.ServeHTTP(w, r)
				return
			}

			tokenString := strings.TrimPrefix(authHeader, "Bearer ")
			if tokenString == authHeader {
				next.ServeHTTP(w, r)
				return
			}

			claims, err := authService.ValidateToken(tokenString)
			if err != nil {
				// Token enviado mas inválido é rejeitado mesmo em rota
				// pública, para o cliente perceber a sessão expirada
				apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Token inválido ou expirado", nil)
				return
			}

			ctx := context.WithValue(r.Context(), ContextKeyUser, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// Authenticated exige um usuário autenticado, sem restrição de role
func Authenticated() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Context().Value(ContextKeyUser) == nil {
				apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Autenticação necessária", nil)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
