/* main.go
 * The "main" method for serving the parlour benchmark dashboard.
 * Usage: go run main.go -data="<dir>" -addr="<addr>" -games="<game types>"
 */

package main

import (
	"flag"
	"log"
	"os"

	"github.com/joho/godotenv"

	"parlour-dashboard/api/artifacts"
	"parlour-dashboard/web"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file loaded, using process environment")
	}

	// Flags
	dataPtr := flag.String("data", envOr("DASHBOARD_DATA_DIR", "./data"), "Directory holding one artifact subdirectory per game type")
	addrPtr := flag.String("addr", envOr("DASHBOARD_ADDR", ":8080"), "Address for the HTTP server, e.g. :8080")
	gamesPtr := flag.String("games", `prisoners_dilemma poetry_slam debate_slam`, "Space separated game types to preload, quotes allowed")
	ratePtr := flag.Float64("rate", 20, "Request rate limit per second")

	flag.Parse()

	loader, err := artifacts.NewLoader(*dataPtr)
	if err != nil {
		log.Fatalf("failed to initialize artifact loader: %v", err)
	}

	preload, err := parseGamesList(*gamesPtr)
	if err != nil {
		log.Fatalf("invalid -games flag: %v", err)
	}

	err = web.Start(web.Config{
		Addr:              *addrPtr,
		Loader:            loader,
		PreloadGames:      preload,
		RequestsPerSecond: *ratePtr,
	})
	if err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}

// envOr returns the environment value for key, or fallback when it is unset
func envOr(key string, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
