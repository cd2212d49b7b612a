package http

import (
	"net/http"

	"github.com/cmlabs-hris/hr-records-backend-go/internal/pkg/jwt"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/jwtauth/v5"
	"github.com/google/uuid"
)

// uuidParam returns the named path parameter when it is a well-formed UUID.
func uuidParam(r *http.Request, name string) (string, bool) {
	id, err := uuid.Parse(chi.URLParam(r, name))
	if err != nil {
		return "", false
	}
	return id.String(), true
}

// currentUserID reads the user_id claim of the verified access token.
func currentUserID(r *http.Request) string {
	_, claims, err := jwtauth.FromContext(r.Context())
	if err != nil {
		return ""
	}
	return jwt.ClaimString(claims, "user_id")
}
