/* models.go
 * This file contains the raw artifact shapes produced by the benchmark runner.
 * These structs mirror the on-disk JSON exactly; the games package turns them
 * into the uniform dashboard model
 */

package artifacts

import "encoding/json"

// Recognised dataTypes a game definition can declare. model_profiles is loaded
// for every game type; the other two are loaded only when declared.
const (
	DataTypeMatchupMatrix    = "matchup_matrix"
	DataTypeRoundProgression = "round_progression"
	DataTypeModelProfiles    = "model_profiles"
)

// Timeline event types found in session detail files
const (
	EventPlayerDecision  = "player_decision"
	EventRoundResolution = "round_resolution"
	EventPlayerVote      = "player_vote"
	EventPoemSubmission  = "poem_submission"
	EventPromptCreation  = "prompt_creation"
	EventDebaterArgument = "debater_argument"
)

// LeaderboardRow is one model's aggregate performance in one game type.
// Rows arrive pre-sorted by rank.
type LeaderboardRow struct {
	Rank              int      `json:"rank"`
	ModelID           string   `json:"model_id"`
	ModelName         string   `json:"model_name"`
	Wins              int      `json:"wins"`
	Losses            int      `json:"losses"`
	Ties              int      `json:"ties"`
	Games             int      `json:"games"`
	WinRate           float64  `json:"winrate"`
	AvgScore          float64  `json:"avg_score"`
	FirstToDefectRate *float64 `json:"first_to_defect_rate,omitempty"`
	TotalScore        *float64 `json:"total_score,omitempty"`
}

// LeaderboardFile is the top level shape of leaderboard.json
type LeaderboardFile struct {
	Leaderboard []LeaderboardRow `json:"leaderboard"`
}

// VotingRecord is the per-game vote a model cast (Poetry Slam)
type VotingRecord struct {
	VotedFor      string `json:"voted_for"`
	VotedForModel string `json:"voted_for_model"`
}

// ProfileGame is one game entry inside a model profile. Which optional fields
// are present depends on the game type: Prisoner's Dilemma entries carry
// Opponent and the two scores, Poetry Slam entries carry OtherPlayers and Voting.
type ProfileGame struct {
	SessionID     string        `json:"session_id"`
	Result        string        `json:"result,omitempty"`
	Score         *float64      `json:"score,omitempty"`
	Opponent      string        `json:"opponent,omitempty"`
	OpponentScore *float64      `json:"opponent_score,omitempty"`
	OtherPlayers  []string      `json:"other_players,omitempty"`
	Voting        *VotingRecord `json:"voting,omitempty"`
}

// ModelProfile is one model's entry in model_profiles.json
type ModelProfile struct {
	ModelID   string        `json:"model_id"`
	ModelName string        `json:"model_name"`
	Games     []ProfileGame `json:"games"`
}

// ModelProfilesFile is the top level shape of model_profiles.json. Debate Slam
// records its participants under debater_profiles instead of models.
type ModelProfilesFile struct {
	Models          []ModelProfile `json:"models"`
	DebaterProfiles []ModelProfile `json:"debater_profiles,omitempty"`
}

// Metadata is the top level shape of metadata.json
type Metadata struct {
	GameType    string `json:"game_type,omitempty"`
	LastUpdated string `json:"last_updated,omitempty"`
	TotalGames  int    `json:"total_games,omitempty"`
	TotalModels int    `json:"total_models,omitempty"`
}

// MatchupMatrixFile is the top level shape of matchup_matrix.json.
// WinMatrix cell (i,j) is 1 if row model beat column model, 0 if it lost and
// nil when there is no data (the diagonal is always nil). Positions is carried
// through opaquely until its upstream schema is pinned down.
type MatchupMatrixFile struct {
	ModelNames []string                   `json:"model_names"`
	WinMatrix  [][]*int                   `json:"win_matrix"`
	Positions  map[string]json.RawMessage `json:"positions,omitempty"`
}

// RoundRates is one round's aggregate cooperation/defection split.
// The two rates sum to 1 for every round.
type RoundRates struct {
	Round           int     `json:"round"`
	CooperationRate float64 `json:"cooperation_rate"`
	DefectionRate   float64 `json:"defection_rate"`
}

// RoundProgressionFile is the top level shape of round_progression.json
type RoundProgressionFile struct {
	RoundProgression []RoundRates `json:"round_progression"`
}

// GameArtifacts bundles the primary artifacts for one game type. MatchupMatrix
// and RoundProgression are nil unless the game declared the matching dataType.
type GameArtifacts struct {
	GameType         string
	Leaderboard      []LeaderboardRow
	ModelProfiles    ModelProfilesFile
	Metadata         Metadata
	MatchupMatrix    *MatchupMatrixFile
	RoundProgression []RoundRates
}

// TimelineEvent is one entry in a session's event stream, discriminated by
// Type. Only the fields matching the event type are populated; absent fields
// stay at their zero value and are omitted when re-encoded.
type TimelineEvent struct {
	Type      string         `json:"type"`
	Round     int            `json:"round,omitempty"`
	PlayerID  string         `json:"player_id,omitempty"`
	Decision  string         `json:"decision,omitempty"`
	Reasoning string         `json:"reasoning,omitempty"`
	VotedFor  string         `json:"voted_for,omitempty"`
	Poem      string         `json:"poem,omitempty"`
	Prompt    string         `json:"prompt,omitempty"`
	Argument  string         `json:"argument,omitempty"`
	SideID    string         `json:"side_id,omitempty"`
	Scores    map[string]int `json:"scores,omitempty"`
}

// SessionPlayer is one participant in a session detail file
type SessionPlayer struct {
	PlayerID    string `json:"player_id"`
	ModelID     string `json:"model_id,omitempty"`
	ModelName   string `json:"model_name,omitempty"`
	Role        string `json:"role,omitempty"`
	PreSwapSide string `json:"pre_swap_side,omitempty"`
	// PostSwapSide is always the swap of PreSwapSide
	PostSwapSide string `json:"post_swap_side,omitempty"`
}

// SessionGame is the game block of a session detail file
type SessionGame struct {
	SessionID string `json:"session_id"`
	GameType  string `json:"game_type"`
	Winner    string `json:"winner,omitempty"`
	Topic     string `json:"topic,omitempty"`
}

// SessionMetadata is the metadata block of a session detail file
type SessionMetadata struct {
	Timestamp string `json:"timestamp,omitempty"`
	Rounds    int    `json:"rounds,omitempty"`
}

// SessionSummaryRaw is the summary block of a session detail file
type SessionSummaryRaw struct {
	Winner      string         `json:"winner,omitempty"`
	FinalScores map[string]int `json:"final_scores,omitempty"`
}

// DebateArgument is one debater's argument within a debate round
type DebateArgument struct {
	PlayerID string `json:"player_id"`
	SideID   string `json:"side_id"`
	Argument string `json:"argument"`
}

// JudgeVote is one judge's vote within a debate round; Vote names a side id
type JudgeVote struct {
	PlayerID string `json:"player_id"`
	Vote     string `json:"vote"`
}

// DebateRound is one round of a Debate Slam phase. Argument and vote order is
// meaningful and preserved.
type DebateRound struct {
	RoundNumber      int              `json:"round_number"`
	DebaterArguments []DebateArgument `json:"debater_arguments"`
	JudgeVotes       []JudgeVote      `json:"judge_votes"`
}

// DebatePhase is the pre_swap or post_swap round set of a Debate Slam session
type DebatePhase struct {
	Rounds []DebateRound `json:"rounds"`
}

// SessionDetail is the raw per-session drill-down file. PreSwap and PostSwap
// are only present for Debate Slam sessions.
type SessionDetail struct {
	Game     SessionGame       `json:"game"`
	Players  []SessionPlayer   `json:"players"`
	Metadata SessionMetadata   `json:"metadata"`
	Timeline []TimelineEvent   `json:"timeline"`
	Summary  SessionSummaryRaw `json:"summary"`
	PreSwap  *DebatePhase      `json:"pre_swap,omitempty"`
	PostSwap *DebatePhase      `json:"post_swap,omitempty"`
}
