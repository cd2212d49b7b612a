package middleware

import (
	"log/slog"
	"net/http"

	"github.com/cmlabs-hris/hr-records-backend-go/internal/domain/auth"
	"github.com/cmlabs-hris/hr-records-backend-go/internal/handler/http/response"
	"github.com/cmlabs-hris/hr-records-backend-go/internal/pkg/jwt"
	"github.com/go-chi/jwtauth/v5"
)

// AuthRequired lets a request through only with a verified access token that
// has not been deny-listed by a logout. It must run after jwtauth.Verifier.
func AuthRequired(denylist auth.AccessTokenDenylist) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		hfn := func(w http.ResponseWriter, r *http.Request) {
			token, claims, err := jwtauth.FromContext(r.Context())

			if err != nil {
				response.Unauthorized(w, err.Error())
				return
			}

			if token == nil {
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}

			tokenType, ok := claims["type"].(string)
			if tokenType != jwt.TokenTypeAccess || !ok {
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}

			denied, err := denylist.IsDenied(r.Context(), jwtauth.TokenFromHeader(r))
			if err != nil {
				slog.Error("AuthRequired denylist error", "error", err)
				response.InternalServerError(w, "An unexpected error occurred")
				return
			}
			if denied {
				response.HandleError(w, auth.ErrTokenRevoked)
				return
			}

			next.ServeHTTP(w, r)
		}
		return http.HandlerFunc(hfn)
	}
}
