// internal/httpserver/token.go
//
// Per-game player tokens.
// Responsibilities:
//   - Sign an HS256 JWT whose subject is the game ID when a game starts.
//   - Read it back from "Authorization: Bearer" or the token cookie.
//   - Reject /game/{id} requests whose token is missing, invalid or expired,
//     or was issued for another game.

package httpserver

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog/hlog"
)

var errTokenSubject = errors.New("token does not match game")

// signGameToken creates an HS256 JWT whose subject is the game ID.
func (s *Server) signGameToken(gameID string) (string, time.Time, error) {
	now := time.Now()
	exp := now.Add(s.cfg.Token.TTL)
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   gameID,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(exp),
	})
	ss, err := t.SignedString([]byte(s.cfg.Token.Secret))
	return ss, exp, err
}

// verifyGameToken checks signature, expiry and that the token belongs to gameID.
func (s *Server) verifyGameToken(tok, gameID string) error {
	claims := &jwt.RegisteredClaims{}
	_, err := jwt.ParseWithClaims(tok, claims, func(t *jwt.Token) (interface{}, error) {
		return []byte(s.cfg.Token.Secret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return err
	}
	if claims.Subject != gameID {
		return errTokenSubject
	}
	return nil
}

// requireGameToken rejects requests whose token does not cover the {id} in the path.
func (s *Server) requireGameToken(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		tok := s.bearerOrCookie(r)
		if tok == "" {
			writeError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}
		if err := s.verifyGameToken(tok, id); err != nil {
			hlog.FromRequest(r).Debug().Err(err).Str("gameId", id).Msg("reject game token")
			writeError(w, http.StatusUnauthorized, "Invalid token")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// setTokenCookie writes the game token cookie with appropriate security attributes.
func (s *Server) setTokenCookie(w http.ResponseWriter, token string, exp time.Time) {
	secure := s.cfg.IsProduction()
	sameSite := http.SameSiteLaxMode
	if secure {
		sameSite = http.SameSiteNoneMode // required for third-party contexts when Secure
	}
	http.SetCookie(w, &http.Cookie{
		Name:     s.cfg.Token.CookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		Secure:   secure,
		SameSite: sameSite,
		Expires:  exp,
	})
}

// bearerOrCookie extracts a bearer token from the Authorization header or the token cookie.
func (s *Server) bearerOrCookie(r *http.Request) string {
	// Authorization: Bearer <token>
	if a := r.Header.Get("Authorization"); strings.HasPrefix(strings.ToLower(a), "bearer ") {
		return strings.TrimSpace(a[7:])
	}
	if c, err := r.Cookie(s.cfg.Token.CookieName); err == nil {
		return c.Value
	}
	return ""
}
