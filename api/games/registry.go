/* registry.go
 * Contains the closed mapping from game-type tag to game definition. Adding a
 * game type means adding one entry to the definitions map; placeholder types
 * are listed separately and have no definition
 */

package games

import (
	"errors"
	"fmt"
	"sort"

	"parlour-dashboard/api/artifacts"
)

// Recognised game type tags
const (
	GamePrisonersDilemma = "prisoners_dilemma"
	GamePoetrySlam       = "poetry_slam"
	GameDebateSlam       = "debate_slam"
)

// PlaceholderGameTypes are announced but unimplemented game types. The
// presentation renders a coming-soon state for these without invoking the core.
var PlaceholderGameTypes = []string{"ghost", "diplomacy"}

// ErrUnknownGameType means a registry lookup failed
var ErrUnknownGameType = errors.New("unknown game type")

// Column alignments
const (
	AlignLeft  = "left"
	AlignRight = "right"
)

// Formatter maps a raw numeric cell value to its display string
type Formatter func(v float64) string

// Column describes one leaderboard column for the presentation layer
type Column struct {
	Key       string    `json:"key"`
	Label     string    `json:"label"`
	Align     string    `json:"align"`
	Formatter Formatter `json:"-"`
}

// Config is a game definition's display configuration
type Config struct {
	Name               string   `json:"name"`
	Description        string   `json:"description"`
	DataTypes          []string `json:"dataTypes"`
	LeaderboardColumns []Column `json:"leaderboardColumns"`
}

// Definition is one game type's entry in the registry: display config plus the
// two pure transforms. Polymorphism across game types is by variant, not
// inheritance.
type Definition struct {
	Config              Config
	TransformData       func(raw *artifacts.GameArtifacts) (*DashboardModel, error)
	TransformGameDetail func(raw *artifacts.SessionDetail) (*SessionView, error)
}

var definitions = map[string]Definition{
	GamePrisonersDilemma: prisonersDilemmaDefinition(),
	GamePoetrySlam:       poetrySlamDefinition(),
	GameDebateSlam:       debateSlamDefinition(),
}

// Lookup resolves a game type tag to its definition.
// It returns ErrUnknownGameType (wrapped with the tag) for unrecognised tags,
// placeholder types included.
func Lookup(gameType string) (Definition, error) {
	def, ok := definitions[gameType]
	if !ok {
		return Definition{}, fmt.Errorf("%w: %q", ErrUnknownGameType, gameType)
	}
	return def, nil
}

// GameTypes returns the registered game type tags in sorted order
func GameTypes() []string {
	types := make([]string, 0, len(definitions))
	for t := range definitions {
		types = append(types, t)
	}
	sort.Strings(types)
	return types
}

// FormatPercent renders a [0,1] fraction as a one-decimal percentage, e.g. 0.667 -> "66.7%"
func FormatPercent(v float64) string {
	return fmt.Sprintf("%.1f%%", v*100)
}

// FormatFixed2 renders a number with two decimal places
func FormatFixed2(v float64) string {
	return fmt.Sprintf("%.2f", v)
}

// commonLeaderboardColumns are the columns every game type shares
func commonLeaderboardColumns() []Column {
	return []Column{
		{Key: "rank", Label: "Rank", Align: AlignLeft},
		{Key: "model_name", Label: "Model", Align: AlignLeft},
		{Key: "wins", Label: "W", Align: AlignRight},
		{Key: "losses", Label: "L", Align: AlignRight},
		{Key: "ties", Label: "T", Align: AlignRight},
		{Key: "games", Label: "Games", Align: AlignRight},
		{Key: "winrate", Label: "Win %", Align: AlignRight, Formatter: FormatPercent},
		{Key: "avg_score", Label: "Avg Score", Align: AlignRight, Formatter: FormatFixed2},
	}
}
