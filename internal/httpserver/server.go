// internal/httpserver/server.go
//
// HTTP adapter for the Wordle engine.
// Responsibilities:
//   - Router + middleware (JSON, CORS, timeouts, panic recovery, request IDs,
//     access logging).
//   - Public endpoints: "/", "/health", "/debug/words", POST /evaluate.
//   - Game endpoints: POST /game/new, GET /game/{id}, POST /game/{id}/keys.
//
// Notes:
//   - The adapter owns no game rules: it forwards key events to the engine
//     and re-reads the resulting state.
//   - Each game is guarded by a signed player token (see token.go); only the
//     client that created a game can read or play it.

package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/hlog"

	"github.com/robalobadob/wordle/internal/config"
	"github.com/robalobadob/wordle/internal/game"
	"github.com/robalobadob/wordle/internal/store"
)

// Server bundles router, engine and session store.
type Server struct {
	r      *chi.Mux
	engine *game.Engine
	store  store.Store
	cfg    *config.Config
	log    zerolog.Logger
}

// New constructs a Server, installs middleware, and registers routes.
func New(eng *game.Engine, st store.Store, cfg *config.Config, logger zerolog.Logger) *Server {
	s := &Server{r: chi.NewRouter(), engine: eng, store: st, cfg: cfg, log: logger}

	// --- middleware ---
	s.r.Use(chimw.RealIP)                                    // set RemoteAddr from X-Forwarded-For etc.
	s.r.Use(hlog.NewHandler(logger))                         // request-scoped logger
	s.r.Use(hlog.RequestIDHandler("req_id", "X-Request-ID")) // add X-Request-ID
	s.r.Use(hlog.AccessHandler(accessLog))                   // one debug line per request
	s.r.Use(chimw.Recoverer)                                 // recover from panics
	s.r.Use(chimw.Timeout(cfg.Server.RequestTimeout))        // bound handler time
	s.r.Use(jsonContentType)                                 // default JSON responses
	s.r.Use(s.cors)                                          // credentials-friendly CORS

	// --- diagnostics ---
	s.r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"service":"wordle-go","endpoints":["/health","POST /game/new","GET /game/{id}","POST /game/{id}/keys","POST /evaluate"]}`))
	})
	s.r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"ok":true}`))
	})
	s.r.Get("/debug/words", func(w http.ResponseWriter, r *http.Request) {
		a, g := s.engine.Words().Stats()
		writeJSON(w, http.StatusOK, map[string]int{"answers": a, "allowed": g})
	})

	s.r.Post("/evaluate", s.handleEvaluate)
	s.mountGame(s.r)

	// JSON 404 for easier debugging
	s.r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "not_found", "path": r.URL.Path})
	})

	return s
}

// Router exposes the internal router (useful for tests).
func (s *Server) Router() chi.Router { return s.r }

// Start begins serving HTTP on addr.
func (s *Server) Start(addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.r,
		ReadHeaderTimeout: 5 * time.Second,
	}
	s.log.Info().Str("addr", addr).Msg("listening")
	return srv.ListenAndServe()
}

// ----------------------------- middleware ----------------------------------

// jsonContentType sets a default JSON Content-Type header on all responses.
func jsonContentType(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		next.ServeHTTP(w, r)
	})
}

// cors enables credentialed CORS for the configured client origin.
func (s *Server) cors(next http.Handler) http.Handler {
	origin := s.cfg.Server.ClientOrigin
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Vary", "Origin")
		w.Header().Set("Access-Control-Allow-Origin", origin)
		w.Header().Set("Access-Control-Allow-Credentials", "true")
		w.Header().Set("Access-Control-Allow-Methods", "GET,POST,OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func accessLog(r *http.Request, status, size int, duration time.Duration) {
	hlog.FromRequest(r).Debug().
		Str("method", r.Method).
		Stringer("url", r.URL).
		Int("status", status).
		Int("size", size).
		Dur("duration", duration).
		Msg("request")
}

// ------------------------------ EVALUATE -----------------------------------

type evaluateReq struct {
	Guess  string `json:"guess"`
	Target string `json:"target"`
}
type evaluateRes struct {
	Feedback []game.Feedback `json:"feedback"`
	Solved   bool            `json:"solved"`
}

// handleEvaluate scores an arbitrary guess/target pair.
func (s *Server) handleEvaluate(w http.ResponseWriter, r *http.Request) {
	var req evaluateReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_json")
		return
	}
	fb, err := game.Evaluate(req.Guess, req.Target)
	switch {
	case errors.Is(err, game.ErrInvalidLength):
		writeError(w, http.StatusBadRequest, "invalid_length")
		return
	case errors.Is(err, game.ErrInvalidLetters):
		writeError(w, http.StatusBadRequest, "invalid_letters")
		return
	}
	writeJSON(w, http.StatusOK, evaluateRes{Feedback: fb, Solved: game.Solved(fb)})
}

// ------------------------------- small util --------------------------------

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code string) {
	writeJSON(w, status, map[string]string{"error": code})
}
