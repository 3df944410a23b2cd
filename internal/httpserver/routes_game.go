// internal/httpserver/routes_game.go
//
// HTTP routes for playing a game.
//   - POST /game/new       → start a game, returns its id, token and state
//   - GET  /game/{id}      → current state (token required)
//   - POST /game/{id}/keys → apply key events in order (token required)
//
// Keys are the engine's vocabulary: single letters, "ENTER", "BACKSPACE".
// Rejected commits are not HTTP errors; they come back in state.message.

package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/hlog"

	"github.com/robalobadob/wordle/internal/game"
	"github.com/robalobadob/wordle/internal/store"
)

// maxKeysPerRequest bounds one /keys call; a full board is 6 rows × 6 keys.
const maxKeysPerRequest = 64

// mountGame registers all /game routes.
func (s *Server) mountGame(r chi.Router) {
	r.Post("/game/new", s.handleNewGame)
	r.Route("/game/{id}", func(r chi.Router) {
		r.Use(s.requireGameToken)
		r.Get("/", s.handleGetGame)
		r.Post("/keys", s.handleKeys)
	})
}

// stateView is what the presentation layer renders from.
type stateView struct {
	GameID      string         `json:"gameId"`
	Status      game.Status    `json:"status"`
	Message     string         `json:"message"`
	Pending     string         `json:"pending"`
	Attempts    []game.Attempt `json:"attempts"`
	WordLength  int            `json:"wordLength"`
	MaxAttempts int            `json:"maxAttempts"`
	Remaining   int            `json:"remaining"`
	Answer      string         `json:"answer,omitempty"` // only once the game is over
}

func viewOf(sess store.Session) stateView {
	st := sess.State
	return stateView{
		GameID:      sess.ID,
		Status:      st.Status,
		Message:     st.Message,
		Pending:     st.Pending,
		Attempts:    st.Attempts,
		WordLength:  st.WordLength,
		MaxAttempts: st.MaxAttempts,
		Remaining:   st.Remaining(),
		Answer:      st.Answer(),
	}
}

// newGameRes is returned by POST /game/new.
type newGameRes struct {
	GameID string    `json:"gameId"`
	Token  string    `json:"token"`
	State  stateView `json:"state"`
}

// handleNewGame starts a game, stores it and hands out its token.
func (s *Server) handleNewGame(w http.ResponseWriter, r *http.Request) {
	if n := s.store.Sweep(r.Context(), time.Now().Add(-s.cfg.Server.SessionTTL)); n > 0 {
		hlog.FromRequest(r).Debug().Int("swept", n).Msg("dropped idle games")
	}

	sess, err := s.store.Create(r.Context(), s.engine.NewGame())
	if err != nil {
		hlog.FromRequest(r).Error().Err(err).Msg("create game")
		writeError(w, http.StatusInternalServerError, "save_failed")
		return
	}
	tok, exp, err := s.signGameToken(sess.ID)
	if err != nil {
		hlog.FromRequest(r).Error().Err(err).Msg("sign game token")
		writeError(w, http.StatusInternalServerError, "sign_failed")
		return
	}
	s.setTokenCookie(w, tok, exp)

	hlog.FromRequest(r).Info().Str("gameId", sess.ID).Msg("game started")
	writeJSON(w, http.StatusOK, newGameRes{GameID: sess.ID, Token: tok, State: viewOf(sess)})
}

// handleGetGame returns the current state.
func (s *Server) handleGetGame(w http.ResponseWriter, r *http.Request) {
	sess, err := s.store.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.storeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, viewOf(sess))
}

// keysReq is the request payload for POST /game/{id}/keys.
type keysReq struct {
	Keys []string `json:"keys"`
}

// handleKeys feeds key events through the engine under the session's write lock.
func (s *Server) handleKeys(w http.ResponseWriter, r *http.Request) {
	var req keysReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_json")
		return
	}
	if len(req.Keys) > maxKeysPerRequest {
		writeError(w, http.StatusBadRequest, "too_many_keys")
		return
	}

	id := chi.URLParam(r, "id")
	var before game.Status
	sess, err := s.store.Update(r.Context(), id, func(st game.State) game.State {
		before = st.Status
		for _, k := range req.Keys {
			st = s.engine.HandleKey(st, k)
		}
		return st
	})
	if err != nil {
		s.storeError(w, r, err)
		return
	}

	st := sess.State
	logger := hlog.FromRequest(r)
	switch {
	case before == game.StatusInProgress && st.Done():
		logger.Info().Str("gameId", id).Str("status", string(st.Status)).Int("attempts", len(st.Attempts)).Msg("game finished")
	case st.Message == game.MsgNotEnoughLetters || st.Message == game.MsgNotInWordList:
		logger.Debug().Str("gameId", id).Str("pending", st.Pending).Msg(st.Message)
	}
	writeJSON(w, http.StatusOK, viewOf(sess))
}

func (s *Server) storeError(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, store.ErrNotFound) {
		writeError(w, http.StatusNotFound, "not_found")
		return
	}
	hlog.FromRequest(r).Error().Err(err).Msg("session store")
	writeError(w, http.StatusInternalServerError, "store_failed")
}
