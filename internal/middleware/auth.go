package middleware

import (
	"context"
	"net/http"
	"strings"

	"recibo/api/internal/auth"
)

type ctxKey struct{}

// Auth lê o Bearer token, quando presente, e coloca o id do operador no contexto.
// Requisições sem token seguem adiante; cada handler decide se exige autenticação.
func Auth(secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			h := r.Header.Get("Authorization")
			if token, ok := strings.CutPrefix(h, "Bearer "); ok {
				if id, err := auth.ParseToken(strings.TrimSpace(token), []byte(secret)); err == nil {
					r = r.WithContext(WithUserID(r.Context(), id))
				}
			}
			next.ServeHTTP(w, r)
		})
	}
}

func WithUserID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, ctxKey{}, id)
}

// UserID devolve o id autenticado ou "".
func UserID(ctx context.Context) string {
	id, _ := ctx.Value(ctxKey{}).(string)
	return id
}
