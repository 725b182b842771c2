package middleware

import (
	"context"
	"net/http"
	"printdoot_server/lib"

	"github.com/MonkyMars/gecho"
)

// Context keys for storing claims in request context
type contextKey string

const ClaimsContextKey contextKey = "claims"

// AdminAuthMiddleware protects routes to requests carrying a valid admin token
func (mw *Middleware) AdminAuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, err := lib.ExtractAdminClaims(r)
		if err != nil {
			mw.logger.Warn("Failed to extract admin claims from request", gecho.Field("error", err))
			gecho.Unauthorized(w, gecho.WithMessage("Invalid or missing access token"), gecho.Send())
			return
		}

		ctx := context.WithValue(r.Context(), ClaimsContextKey, claims)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetClaimsFromContext extracts admin claims placed by AdminAuthMiddleware
func GetClaimsFromContext(ctx context.Context) (*lib.AdminClaims, bool) {
	claims, ok := ctx.Value(ClaimsContextKey).(*lib.AdminClaims)
	return claims, ok
}
