//go:build !test

/* server.go
 * Contains the HTTP server Start function that listens for incoming connections.
 * Excluded from test coverage as it blocks and requires real network binding.
 */

package web

import (
	"log"
	"net/http"
	"time"
)

// Start initializes and starts the HTTP server with the given configuration.
// Contexts for the preload list are built eagerly so their load errors surface
// in the log at startup instead of on first request.
func Start(cfg Config) error {
	s := NewServer(cfg.Loader, cfg.RequestsPerSecond)

	for _, gameType := range cfg.PreloadGames {
		if _, err := s.context(gameType); err != nil {
			log.Printf("preload of %s failed: %v", gameType, err)
		}
	}

	srv := &http.Server{
		Addr:         cfg.Addr,
		Handler:      s.Router(),
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	log.Println("HTTP server listening on", cfg.Addr)
	return srv.ListenAndServe()
}
