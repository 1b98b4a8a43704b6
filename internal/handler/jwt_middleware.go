package handler

import (
	"context"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"

	"github.com/Yhabib05/movie-recommender/internal/logging"
)

type ctxKey string

const ctxOperator ctxKey = "operator"

const roleAdmin = "admin"

// operatorClaims son los claims que esperamos en los tokens de operación.
type operatorClaims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// RequireAdmin protege las rutas /admin: Bearer token HS256 firmado con secret y role=admin.
// Token ausente o inválido -> 401, role distinto -> 403.
func RequireAdmin(secret string) func(http.Handler) http.Handler {
	key := []byte(secret)
	parser := jwt.NewParser(jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw, ok := bearerToken(r)
			if !ok {
				writeDetail(w, http.StatusUnauthorized, "missing or invalid Authorization header")
				return
			}

			claims := &operatorClaims{}
			if _, err := parser.ParseWithClaims(raw, claims, func(*jwt.Token) (any, error) {
				return key, nil
			}); err != nil {
				logging.Debug().Err(err).Str("path", r.URL.Path).Msg("token rechazado")
				writeDetail(w, http.StatusUnauthorized, "invalid token")
				return
			}

			if claims.Role != roleAdmin {
				writeDetail(w, http.StatusForbidden, "admin only")
				return
			}

			ctx := context.WithValue(r.Context(), ctxOperator, claims.Subject)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func bearerToken(r *http.Request) (string, bool) {
	h := r.Header.Get("Authorization")
	raw, ok := strings.CutPrefix(h, "Bearer ")
	if !ok || strings.TrimSpace(raw) == "" {
		return "", false
	}
	return strings.TrimSpace(raw), true
}

// OperatorFromContext devuelve el sub del token admin ("" si la ruta no está protegida).
func OperatorFromContext(ctx context.Context) string {
	sub, _ := ctx.Value(ctxOperator).(string)
	return sub
}
