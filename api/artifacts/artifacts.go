/* artifacts.go
 * Contains the Loader that knows the on-disk storage layout of the benchmark
 * artifacts and hands raw objects to the games package. The layout is one
 * directory per game type holding leaderboard.json, model_profiles.json,
 * metadata.json, the optional per-game extras, and a detail/ subdirectory with
 * one JSON file per session
 */

package artifacts

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"parlour-dashboard/api/shared"
)

// Sentinel errors for artifact resolution. Callers match with errors.Is.
var (
	// ErrArtifactNotFound means a required artifact file is absent from storage
	ErrArtifactNotFound = errors.New("artifact not found")
	// ErrArtifactMalformed means a file is not valid JSON or lacks its expected top-level field
	ErrArtifactMalformed = errors.New("artifact malformed")
)

// Interface defines the methods that Loader implements.
// This allows for mocking in tests.
type Interface interface {
	LoadGameArtifacts(gameType string, dataTypes []string) (*GameArtifacts, error)
	LoadSessionDetail(gameType string, sessionID string) (*SessionDetail, error)
}

// Loader resolves and reads artifact files under a root data directory
type Loader struct {
	Root string
}

// Ensure Loader implements Interface
var _ Interface = (*Loader)(nil)

// NewLoader creates a Loader rooted at the given data directory.
// Preconditions: Receives the path of the directory holding one subdirectory per game type
// Postconditions: Returns a pointer to the Loader, or an error if the directory does not exist
func NewLoader(root string) (*Loader, error) {
	if root == "" {
		return nil, fmt.Errorf("data directory is required")
	}
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("failed to open data directory %s: %w", root, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("data path %s is not a directory", root)
	}
	return &Loader{Root: root}, nil
}

// LoadGameArtifacts eagerly loads the primary artifacts for a game type.
// dataTypes lists the game-specific extras the game definition declared; only
// matchup_matrix and round_progression map to extra files.
// It returns the bundled raw artifacts, or an error wrapping ErrArtifactNotFound /
// ErrArtifactMalformed when a required file is missing or unreadable.
func (l *Loader) LoadGameArtifacts(gameType string, dataTypes []string) (*GameArtifacts, error) {
	dir := filepath.Join(l.Root, gameType)

	var lf LeaderboardFile
	path := filepath.Join(dir, "leaderboard.json")
	if err := l.readJSON(path, &lf); err != nil {
		return nil, err
	}
	if lf.Leaderboard == nil {
		return nil, fmt.Errorf("%w: %s: missing leaderboard array", ErrArtifactMalformed, path)
	}

	var pf ModelProfilesFile
	path = filepath.Join(dir, "model_profiles.json")
	if err := l.readJSON(path, &pf); err != nil {
		return nil, err
	}
	if pf.Models == nil && pf.DebaterProfiles == nil {
		return nil, fmt.Errorf("%w: %s: missing models array", ErrArtifactMalformed, path)
	}

	var md Metadata
	if err := l.readJSON(filepath.Join(dir, "metadata.json"), &md); err != nil {
		return nil, err
	}

	out := &GameArtifacts{
		GameType:      gameType,
		Leaderboard:   lf.Leaderboard,
		ModelProfiles: pf,
		Metadata:      md,
	}

	for _, dt := range dataTypes {
		switch dt {
		case DataTypeMatchupMatrix:
			var mm MatchupMatrixFile
			path = filepath.Join(dir, "matchup_matrix.json")
			if err := l.readJSON(path, &mm); err != nil {
				return nil, err
			}
			if mm.ModelNames == nil {
				return nil, fmt.Errorf("%w: %s: missing model_names array", ErrArtifactMalformed, path)
			}
			out.MatchupMatrix = &mm
		case DataTypeRoundProgression:
			var rp RoundProgressionFile
			path = filepath.Join(dir, "round_progression.json")
			if err := l.readJSON(path, &rp); err != nil {
				return nil, err
			}
			if rp.RoundProgression == nil {
				return nil, fmt.Errorf("%w: %s: missing round_progression array", ErrArtifactMalformed, path)
			}
			out.RoundProgression = rp.RoundProgression
		case DataTypeModelProfiles:
			// loaded eagerly above for every game type
		default:
			return nil, fmt.Errorf("unknown data type %q for game %s", dt, gameType)
		}
	}

	return out, nil
}

// LoadSessionDetail locates and decodes the detail file for one session.
// The matching key is the YYYYMMDD_HHMMSS timestamp embedded in the session id:
// the detail file whose name contains that exact substring is the match.
// It returns (nil, nil) when no file matches; a missing detail directory is
// treated the same way. Decode failures return ErrArtifactMalformed.
func (l *Loader) LoadSessionDetail(gameType string, sessionID string) (*SessionDetail, error) {
	ts := shared.SessionTimestamp(sessionID)
	if ts == "" {
		return nil, nil
	}

	dir := filepath.Join(l.Root, gameType, "detail")
	entries, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read detail directory %s: %w", dir, err)
	}

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}
		if !strings.Contains(entry.Name(), ts) {
			continue
		}
		var detail SessionDetail
		if err := l.readJSON(filepath.Join(dir, entry.Name()), &detail); err != nil {
			return nil, err
		}
		return &detail, nil
	}
	return nil, nil
}

// readJSON reads and decodes one artifact file into v, mapping a missing file
// to ErrArtifactNotFound and a decode failure to ErrArtifactMalformed
func (l *Loader) readJSON(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("%w: %s", ErrArtifactNotFound, path)
		}
		return fmt.Errorf("failed to read artifact %s: %w", path, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrArtifactMalformed, path, err)
	}
	return nil
}
