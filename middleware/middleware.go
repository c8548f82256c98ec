package middleware

import (
	"context"
	"net/http"
	"strings"

	"ticketcounter/globals"
	"ticketcounter/utils"

	"github.com/golang-jwt/jwt/v5"
	"github.com/julienschmidt/httprouter"
)

func forbidden(w http.ResponseWriter) {
	utils.RespondWithJSON(w, http.StatusUnauthorized, utils.M{"message": "Forbidden Access"})
}

// Authenticate guards a handler behind a Bearer token. The token must
// verify against the shared secret; an expired or unparseable token is
// rejected the same way as a missing header. Decoded claims land in the
// request context under globals.ClaimsKey.
func Authenticate(next httprouter.Handle) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
		header := r.Header.Get("Authorization")
		if header == "" {
			forbidden(w)
			return
		}

		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 {
			forbidden(w)
			return
		}

		claims := jwt.MapClaims{}
		token, err := jwt.ParseWithClaims(parts[1], claims, func(token *jwt.Token) (any, error) {
			return globals.JwtSecret, nil
		})
		if err != nil || !token.Valid {
			forbidden(w)
			return
		}

		ctx := context.WithValue(r.Context(), globals.ClaimsKey, claims)
		next(w, r.WithContext(ctx), ps)
	}
}

// ClaimsFromRequest returns the decoded token claims, or nil when the
// request did not pass through Authenticate.
func ClaimsFromRequest(r *http.Request) jwt.MapClaims {
	claims, ok := r.Context().Value(globals.ClaimsKey).(jwt.MapClaims)
	if !ok {
		return nil
	}
	return claims
}
