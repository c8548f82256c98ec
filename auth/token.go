package auth

import (
	"encoding/json"
	"net/http"
	"time"

	"ticketcounter/globals"
	"ticketcounter/utils"

	"github.com/golang-jwt/jwt/v5"
	"github.com/julienschmidt/httprouter"
)

const tokenTTL = 24 * time.Hour

// IssueToken signs the request body, whatever it is, into a one-day
// token. Claims content is not validated here; the frontend only calls
// this after its own login flow.
func IssueToken(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	claims := jwt.MapClaims{}
	if err := json.NewDecoder(r.Body).Decode(&claims); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	claims["exp"] = time.Now().Add(tokenTTL).Unix()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(globals.JwtSecret)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{"token": signed})
}
