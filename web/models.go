/* models.go
 * Contains the configuration and server structs for the HTTP surface, plus the
 * response shapes the JSON endpoints emit
 */

package web

import (
	"sync"

	"golang.org/x/time/rate"

	"parlour-dashboard/api/api"
	"parlour-dashboard/api/artifacts"
)

// Config holds the configuration for the web server
type Config struct {
	Addr   string
	Loader artifacts.Interface
	// PreloadGames lists game types whose contexts are built at startup;
	// other game types load lazily on first request
	PreloadGames []string
	// RequestsPerSecond caps the request rate across all clients; zero means
	// the default of 20/s
	RequestsPerSecond float64
}

// Server is the HTTP server that exposes the dashboard contexts. One context
// is held per game type and built on first use.
type Server struct {
	loader  artifacts.Interface
	limiter *rate.Limiter

	mu       sync.Mutex
	contexts map[string]*api.API
}

// gameInfo is one entry of the game list endpoint
type gameInfo struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Available   bool   `json:"available"`
}

// resolveResponse is the body of the model resolution endpoint
type resolveResponse struct {
	Query string `json:"query"`
	Model string `json:"model"`
}

// errorResponse is the body every failed request gets
type errorResponse struct {
	Error string `json:"error"`
}
