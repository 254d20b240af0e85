/* models.go
 * This file contains the uniform dashboard model and session view produced by
 * the per-game transforms. The common fields are the same for every game type;
 * the per-game extensions live under GameSpecific
 */

package games

import "parlour-dashboard/api/artifacts"

// Diagnostic records a non-fatal data anomaly found during a transform, e.g. a
// vote referencing an unknown candidate. Transforms tolerate these and proceed
// with best effort; diagnostics ride along for optional display.
type Diagnostic struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Diagnostic codes
const (
	DiagInconsistentData = "inconsistent_data"
)

// SessionSummary is one played match as listed on the dashboard
type SessionSummary struct {
	ID           string             `json:"id"`
	Title        string             `json:"title"`
	Participants []string           `json:"participants"`
	Winner       string             `json:"winner,omitempty"`
	FinalScores  map[string]float64 `json:"finalScore,omitempty"`
	Topic        string             `json:"topic,omitempty"`
}

// MatchupMatrix is the head-to-head grid for a game type. Cell (i,j) of
// WinMatrix is 1 if Models[i] beat Models[j], 0 if it lost, nil on the
// diagonal or when no data exists.
type MatchupMatrix struct {
	Models    []string `json:"models"`
	WinMatrix [][]*int `json:"winMatrix"`
}

// VoterModel is one entry in a voting-pattern model list
type VoterModel struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// VotingPatterns is the voter-by-candidate vote count grid. Matrix is keyed by
// voter model id then candidate model id; self cells are always 0.
type VotingPatterns struct {
	Models []VoterModel              `json:"models"`
	Matrix map[string]map[string]int `json:"matrix"`
}

// GameSummaryRow is the win/loss/tie projection of one leaderboard row
type GameSummaryRow struct {
	Name   string `json:"name"`
	Wins   int    `json:"wins"`
	Losses int    `json:"losses"`
	Ties   int    `json:"ties"`
}

// GameSpecific carries the per-game-type extensions of the dashboard model.
// Which fields are populated is declared by the game definition's dataTypes.
// Per-model cooperation curves are deliberately absent: model profiles carry
// no per-round decision data, so the aggregate RoundProgression is the only
// honest per-round series.
type GameSpecific struct {
	MatchupMatrix    *MatchupMatrix         `json:"matchupMatrix,omitempty"`
	RoundProgression []artifacts.RoundRates `json:"roundProgressionData,omitempty"`
	GameSummary      []GameSummaryRow       `json:"gameSummaryData,omitempty"`
	VotingPatterns   *VotingPatterns        `json:"votingPatterns,omitempty"`
}

// DashboardModel is the output of a game definition's TransformData. It is
// immutable once produced; a game-type switch replaces it wholesale.
type DashboardModel struct {
	GameType     string                     `json:"gameType"`
	Leaderboard  []artifacts.LeaderboardRow `json:"leaderboard"`
	GameSessions []SessionSummary           `json:"gameSessions"`
	Metadata     artifacts.Metadata         `json:"metadata"`
	GameSpecific GameSpecific               `json:"gameSpecific"`
	Diagnostics  []Diagnostic               `json:"diagnostics,omitempty"`
}

// PoemView is one poem in a Poetry Slam session view, with its votes attached
type PoemView struct {
	PlayerID   string   `json:"player_id"`
	PlayerName string   `json:"player_name"`
	Poem       string   `json:"poem"`
	Votes      int      `json:"votes"`
	VotedBy    []string `json:"votedBy,omitempty"`
	IsWinner   bool     `json:"isWinner"`
}

// Debater display positions and colour tags, fixed at session-load time
const (
	PositionLeft  = "left"
	PositionRight = "right"
	ColorBlue     = "blue"
	ColorRed      = "red"
)

// DebaterSlot pins one debater to a display position and colour for the whole session
type DebaterSlot struct {
	PlayerID string `json:"player_id"`
	Name     string `json:"name"`
	Position string `json:"position"`
	Color    string `json:"color"`
}

// DebateRoundView is one round of a debate session view. PreviousRoundVotes
// maps judge player id to that judge's vote in the previous round; it is absent
// for the first round of the session, letting the caller highlight judges who
// were swayed.
type DebateRoundView struct {
	RoundNumber        int                        `json:"round_number"`
	Phase              string                     `json:"phase"`
	Arguments          []artifacts.DebateArgument `json:"debater_arguments"`
	Votes              []artifacts.JudgeVote      `json:"judge_votes"`
	PreviousRoundVotes map[string]string          `json:"previousRoundVotes,omitempty"`
}

// Debate phases
const (
	PhasePreSwap  = "pre_swap"
	PhasePostSwap = "post_swap"
)

// DebateView is the debate-specific part of a session view. PreSwapSides and
// PostSwapSides map side id to debater player id for the two phases.
type DebateView struct {
	Topic         string            `json:"topic,omitempty"`
	Debaters      []DebaterSlot     `json:"debaters"`
	PreSwapSides  map[string]string `json:"preSwapSides"`
	PostSwapSides map[string]string `json:"postSwapSides"`
	Rounds        []DebateRoundView `json:"rounds"`
}

// SessionOutcome is the summary block of a session view
type SessionOutcome struct {
	Winner      string         `json:"winner,omitempty"`
	FinalScores map[string]int `json:"final_scores,omitempty"`
}

// SessionView is the normalised per-session drill-down produced by a game
// definition's TransformGameDetail. Timeline is ordered by round and, within a
// round, by event kind. Prompt/Poems are Poetry Slam only; Debate is Debate
// Slam only.
type SessionView struct {
	ID           string                    `json:"id"`
	GameType     string                    `json:"game_type"`
	Participants []string                  `json:"participants"`
	Metadata     artifacts.SessionMetadata `json:"metadata"`
	Summary      SessionOutcome            `json:"summary"`
	Timeline     []artifacts.TimelineEvent `json:"timeline"`
	Prompt       string                    `json:"prompt,omitempty"`
	Poems        []PoemView                `json:"poems,omitempty"`
	Debate       *DebateView               `json:"debate,omitempty"`
	Diagnostics  []Diagnostic              `json:"diagnostics,omitempty"`
}
