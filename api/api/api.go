/* api.go
 * This file contains the public methods for interacting with this package: the
 * per-game-type dashboard context. For consistent results, functions should
 * only be called from this file, not the sub packages for artifacts and games.
 * The context owns the current game type's dashboard model and mediates all
 * session-detail loads
 */

package api

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/lithammer/fuzzysearch/fuzzy"
	"golang.org/x/sync/singleflight"

	"parlour-dashboard/api/artifacts"
	"parlour-dashboard/api/games"
)

// State is the dashboard context lifecycle state
type State int

const (
	StateIdle State = iota
	StateLoading
	StateReady
	StateError
)

// String returns the lowercase name of the state
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateLoading:
		return "loading"
	case StateReady:
		return "ready"
	case StateError:
		return "error"
	default:
		return "unknown"
	}
}

// ErrSuperseded means a session-detail load finished after the context moved
// to a different game type; its result was discarded rather than delivered stale
var ErrSuperseded = errors.New("game detail load superseded by game switch")

// ErrNotReady means an operation needs a Ready context
var ErrNotReady = errors.New("dashboard context is not ready")

// API is the dashboard context for one game type at a time. It loads the
// primary artifacts through the Loader, runs the registered transform, and
// serves the resulting model until the game type switches. Detail loads for
// the same session id coalesce into one artifact read.
type API struct {
	Loader artifacts.Interface

	mu       sync.Mutex
	gameType string
	state    State
	model    *games.DashboardModel
	loadErr  error
	// generation advances on every game switch; detail loads carry the
	// generation they started under and are discarded if it moved on
	generation uint64
	details    map[string]*games.SessionView

	flight singleflight.Group
}

// NewAPI creates a dashboard context and loads the given game type.
// Preconditions: Receives an artifact loader and the initial game type tag
// Postconditions: Returns the context in Ready state, or the context in Error
// state together with the load error
func NewAPI(loader artifacts.Interface, gameType string) (*API, error) {
	if loader == nil {
		return nil, fmt.Errorf("artifact loader is required")
	}
	a := &API{
		Loader:  loader,
		details: make(map[string]*games.SessionView),
	}
	if err := a.SwitchGame(gameType); err != nil {
		return a, err
	}
	return a, nil
}

// SwitchGame discards the current model and loads a different game type. Any
// inflight session-detail load for the previous game type resolves with
// ErrSuperseded. On failure the context lands in Error with the cause retained.
func (a *API) SwitchGame(gameType string) error {
	a.mu.Lock()
	a.generation++
	generation := a.generation
	a.gameType = gameType
	a.state = StateLoading
	a.model = nil
	a.loadErr = nil
	a.details = make(map[string]*games.SessionView)
	a.mu.Unlock()

	model, err := a.loadModel(gameType)

	a.mu.Lock()
	defer a.mu.Unlock()
	if a.generation != generation {
		return ErrSuperseded
	}
	if err != nil {
		a.state = StateError
		a.loadErr = err
		return err
	}
	a.state = StateReady
	a.model = model
	return nil
}

// loadModel fetches the primary artifacts and runs the registered transform
func (a *API) loadModel(gameType string) (*games.DashboardModel, error) {
	def, err := games.Lookup(gameType)
	if err != nil {
		return nil, err
	}
	raw, err := a.Loader.LoadGameArtifacts(gameType, def.Config.DataTypes)
	if err != nil {
		return nil, fmt.Errorf("failed to load artifacts for %s: %w", gameType, err)
	}
	model, err := def.TransformData(raw)
	if err != nil {
		return nil, fmt.Errorf("failed to transform artifacts for %s: %w", gameType, err)
	}
	return model, nil
}

// State returns the context lifecycle state
func (a *API) State() State {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.state
}

// Err returns the error that put the context into Error state, or nil
func (a *API) Err() error {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.loadErr
}

// GameType returns the game type the context currently serves
func (a *API) GameType() string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.gameType
}

// Model returns the current dashboard model, or nil unless the context is Ready
func (a *API) Model() *games.DashboardModel {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.state != StateReady {
		return nil
	}
	return a.model
}

// LoadGameDetail loads and transforms one session's detail file. Concurrent
// calls for the same session id share a single artifact read; completed views
// are cached until the game type switches. It returns (nil, nil) when no
// detail file matches the session id, and ErrSuperseded when the context moved
// to another game type while the load was inflight.
func (a *API) LoadGameDetail(sessionID string) (*games.SessionView, error) {
	a.mu.Lock()
	if a.state != StateReady {
		a.mu.Unlock()
		return nil, ErrNotReady
	}
	if view, ok := a.details[sessionID]; ok {
		a.mu.Unlock()
		return view, nil
	}
	gameType := a.gameType
	generation := a.generation
	a.mu.Unlock()

	// The flight key carries the generation so callers arriving after a game
	// switch start a fresh load instead of joining a stale inflight one
	key := fmt.Sprintf("%d/%s", generation, sessionID)
	result, err, _ := a.flight.Do(key, func() (any, error) {
		def, err := games.Lookup(gameType)
		if err != nil {
			return nil, err
		}
		raw, err := a.Loader.LoadSessionDetail(gameType, sessionID)
		if err != nil {
			return nil, fmt.Errorf("failed to load session %s: %w", sessionID, err)
		}
		if raw == nil {
			return (*games.SessionView)(nil), nil
		}
		return def.TransformGameDetail(raw)
	})
	if err != nil {
		return nil, err
	}
	view := result.(*games.SessionView)

	a.mu.Lock()
	defer a.mu.Unlock()
	if a.generation != generation {
		return nil, ErrSuperseded
	}
	if view != nil {
		a.details[sessionID] = view
	}
	return view, nil
}

// ResolveModel matches a free-form query against the current leaderboard's
// display names, the same way user-typed team names are matched to rosters.
// An exact (case-insensitive) match wins over the best fuzzy rank.
// It returns the canonical display name, or an error when nothing matches.
func (a *API) ResolveModel(query string) (string, error) {
	model := a.Model()
	if model == nil {
		return "", ErrNotReady
	}

	lookup := make(map[string]string, len(model.Leaderboard))
	lowered := make([]string, 0, len(model.Leaderboard))
	for _, row := range model.Leaderboard {
		lower := strings.ToLower(row.ModelName)
		lookup[lower] = row.ModelName
		lowered = append(lowered, lower)
	}

	results := fuzzy.RankFind(strings.ToLower(query), lowered)
	if len(results) == 0 {
		return "", fmt.Errorf("no model matching %q", query)
	}
	best := results[0].Target
	for _, r := range results {
		if r.Target == strings.ToLower(query) {
			best = r.Target
			break
		}
	}
	return lookup[best], nil
}
