/* handlers.go
 * Contains the router and the JSON endpoint handlers that expose the dashboard
 * contexts over HTTP. The surface is read only: unknown game types map to 400,
 * missing sessions to 404, and a context stuck in Error to 503
 */

package web

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"sort"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"golang.org/x/time/rate"

	"parlour-dashboard/api/api"
	"parlour-dashboard/api/artifacts"
	"parlour-dashboard/api/games"
)

const defaultRequestsPerSecond = 20

// NewServer creates a Server over the given artifact loader. requestsPerSecond
// caps the global request rate; zero selects the default.
func NewServer(loader artifacts.Interface, requestsPerSecond float64) *Server {
	if requestsPerSecond <= 0 {
		requestsPerSecond = defaultRequestsPerSecond
	}
	return &Server{
		loader:   loader,
		limiter:  rate.NewLimiter(rate.Limit(requestsPerSecond), int(requestsPerSecond)),
		contexts: make(map[string]*api.API),
	}
}

// Router builds the chi router with all dashboard routes bound
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(s.rateLimit)

	r.Route("/api/games", func(r chi.Router) {
		r.Get("/", s.listGamesHandler)
		r.Route("/{gameType}", func(r chi.Router) {
			r.Get("/", s.dashboardHandler)
			r.Get("/leaderboard", s.leaderboardHandler)
			r.Get("/sessions", s.sessionsHandler)
			r.Get("/sessions/{sessionID}", s.sessionDetailHandler)
			r.Get("/models/resolve", s.resolveModelHandler)
		})
	})
	return r
}

// rateLimit rejects requests beyond the configured global rate with 429
func (s *Server) rateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !s.limiter.Allow() {
			writeError(w, http.StatusTooManyRequests, "rate limit exceeded")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// context returns the dashboard context for a game type, building it on first
// use. A context that previously failed is rebuilt so transient artifact
// problems do not wedge the game type until restart.
func (s *Server) context(gameType string) (*api.API, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if ctx, ok := s.contexts[gameType]; ok {
		if ctx.State() == api.StateReady {
			return ctx, nil
		}
		if err := ctx.SwitchGame(gameType); err != nil {
			return nil, err
		}
		return ctx, nil
	}
	ctx, err := api.NewAPI(s.loader, gameType)
	if err != nil {
		return nil, err
	}
	s.contexts[gameType] = ctx
	return ctx, nil
}

// listGamesHandler reports every announced game type; placeholder types are
// listed as unavailable so the presentation can render a coming-soon state
func (s *Server) listGamesHandler(w http.ResponseWriter, r *http.Request) {
	infos := []gameInfo{}
	for _, gameType := range games.GameTypes() {
		def, err := games.Lookup(gameType)
		if err != nil {
			continue
		}
		infos = append(infos, gameInfo{
			ID:          gameType,
			Name:        def.Config.Name,
			Description: def.Config.Description,
			Available:   true,
		})
	}
	for _, gameType := range games.PlaceholderGameTypes {
		infos = append(infos, gameInfo{ID: gameType, Name: gameType, Available: false})
	}
	sort.Slice(infos, func(i, j int) bool { return infos[i].ID < infos[j].ID })
	writeJSON(w, http.StatusOK, infos)
}

// dashboardHandler returns the full dashboard model for a game type
func (s *Server) dashboardHandler(w http.ResponseWriter, r *http.Request) {
	ctx, ok := s.gameContext(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, ctx.Model())
}

func (s *Server) leaderboardHandler(w http.ResponseWriter, r *http.Request) {
	ctx, ok := s.gameContext(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, ctx.Model().Leaderboard)
}

func (s *Server) sessionsHandler(w http.ResponseWriter, r *http.Request) {
	ctx, ok := s.gameContext(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, ctx.Model().GameSessions)
}

// sessionDetailHandler returns one session's drill-down view, or 404 when no
// detail file matches the session id
func (s *Server) sessionDetailHandler(w http.ResponseWriter, r *http.Request) {
	ctx, ok := s.gameContext(w, r)
	if !ok {
		return
	}
	sessionID := chi.URLParam(r, "sessionID")
	view, err := ctx.LoadGameDetail(sessionID)
	if err != nil {
		if errors.Is(err, artifacts.ErrArtifactMalformed) {
			writeError(w, http.StatusBadGateway, "session detail artifact is malformed")
			return
		}
		log.Printf("session detail load failed for %s: %v", sessionID, err)
		writeError(w, http.StatusInternalServerError, "failed to load session detail")
		return
	}
	if view == nil {
		writeError(w, http.StatusNotFound, "no session matching "+sessionID)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

// resolveModelHandler fuzzy-matches the q parameter against the current
// leaderboard's display names
func (s *Server) resolveModelHandler(w http.ResponseWriter, r *http.Request) {
	ctx, ok := s.gameContext(w, r)
	if !ok {
		return
	}
	query := r.URL.Query().Get("q")
	if query == "" {
		writeError(w, http.StatusBadRequest, "missing q parameter")
		return
	}
	name, err := ctx.ResolveModel(query)
	if err != nil {
		writeError(w, http.StatusNotFound, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, resolveResponse{Query: query, Model: name})
}

// gameContext resolves the request's game type to a Ready context, writing the
// appropriate error response when it cannot
func (s *Server) gameContext(w http.ResponseWriter, r *http.Request) (*api.API, bool) {
	gameType := chi.URLParam(r, "gameType")
	ctx, err := s.context(gameType)
	if err != nil {
		switch {
		case errors.Is(err, games.ErrUnknownGameType):
			writeError(w, http.StatusBadRequest, "unknown game type "+gameType)
		default:
			log.Printf("context load failed for %s: %v", gameType, err)
			writeError(w, http.StatusServiceUnavailable, "game data unavailable: "+err.Error())
		}
		return nil, false
	}
	return ctx, true
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Println("failed to encode response:", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}
