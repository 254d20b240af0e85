/* prisoners_dilemma_test.go
 * Contains unit tests for the Prisoner's Dilemma transforms
 */

package games

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"parlour-dashboard/api/artifacts"
)

func floatPtr(v float64) *float64 { return &v }
func intPtr(v int) *int           { return &v }

// pdFixture is the two-model artifact set used across the PD tests
func pdFixture() *artifacts.GameArtifacts {
	return &artifacts.GameArtifacts{
		GameType: GamePrisonersDilemma,
		Leaderboard: []artifacts.LeaderboardRow{
			{Rank: 1, ModelID: "xai:grok-2", ModelName: "xAI Grok-2",
				Wins: 2, Losses: 0, Ties: 1, Games: 3, WinRate: 0.667, AvgScore: 12.67},
			{Rank: 2, ModelID: "openai:gpt-4o", ModelName: "OpenAI GPT-4o",
				Wins: 1, Losses: 2, Ties: 0, Games: 3, WinRate: 0.333, AvgScore: 11.67},
		},
		ModelProfiles: artifacts.ModelProfilesFile{
			Models: []artifacts.ModelProfile{
				{ModelID: "xai:grok-2", ModelName: "xAI Grok-2", Games: []artifacts.ProfileGame{
					{SessionID: "prisoners_dilemma_grok-2_gpt-4o_20250311_153141",
						Result: "win", Opponent: "openai:gpt-4o",
						Score: floatPtr(15), OpponentScore: floatPtr(10)},
				}},
				{ModelID: "openai:gpt-4o", ModelName: "OpenAI GPT-4o", Games: []artifacts.ProfileGame{
					{SessionID: "prisoners_dilemma_grok-2_gpt-4o_20250311_153141",
						Result: "loss", Opponent: "xai:grok-2",
						Score: floatPtr(10), OpponentScore: floatPtr(15)},
				}},
			},
		},
		MatchupMatrix: &artifacts.MatchupMatrixFile{
			ModelNames: []string{"xAI Grok-2", "OpenAI GPT-4o"},
			WinMatrix:  [][]*int{{nil, intPtr(1)}, {intPtr(0), nil}},
		},
		RoundProgression: []artifacts.RoundRates{
			{Round: 1, CooperationRate: 0.8, DefectionRate: 0.2},
			{Round: 2, CooperationRate: 0.6, DefectionRate: 0.4},
		},
	}
}

// region transformData tests

// TestTransformPD_Leaderboard covers the leaderboard copy with shortened
// display names and the game summary projection
func TestTransformPD_Leaderboard(t *testing.T) {
	model, err := transformPrisonersDilemmaData(pdFixture())
	require.NoError(t, err)

	require.Len(t, model.Leaderboard, 2)
	assert.Equal(t, "Grok-2", model.Leaderboard[0].ModelName)
	assert.Equal(t, "GPT-4o", model.Leaderboard[1].ModelName)
	assert.Equal(t, 1, model.Leaderboard[0].Rank)

	require.Len(t, model.GameSpecific.GameSummary, 2)
	assert.Equal(t, GameSummaryRow{Name: "Grok-2", Wins: 2, Losses: 0, Ties: 1}, model.GameSpecific.GameSummary[0])
	assert.Equal(t, GameSummaryRow{Name: "GPT-4o", Wins: 1, Losses: 2, Ties: 0}, model.GameSpecific.GameSummary[1])
	assert.Empty(t, model.Diagnostics)
}

// TestTransformPD_SessionDeduplication checks that a game recorded in both
// players' profiles yields exactly one session summary
func TestTransformPD_SessionDeduplication(t *testing.T) {
	model, err := transformPrisonersDilemmaData(pdFixture())
	require.NoError(t, err)

	require.Len(t, model.GameSessions, 1)
	session := model.GameSessions[0]
	assert.Equal(t, "prisoners_dilemma_grok-2_gpt-4o_20250311_153141", session.ID)
	assert.ElementsMatch(t, []string{"Grok-2", "GPT-4o"}, session.Participants)
	assert.Equal(t, "Grok-2", session.Winner)
	assert.Equal(t, map[string]float64{"Grok-2": 15, "GPT-4o": 10}, session.FinalScores)
}

// TestTransformPD_PlayerOrdering checks the player 1 rule: the model whose id
// suffix appears in the session id leads the participant list
func TestTransformPD_PlayerOrdering(t *testing.T) {
	model, err := transformPrisonersDilemmaData(pdFixture())
	require.NoError(t, err)

	require.Len(t, model.GameSessions, 1)
	// both suffixes appear in the id; the recording model (grok-2) keeps slot 1
	assert.Equal(t, []string{"Grok-2", "GPT-4o"}, model.GameSessions[0].Participants)
	assert.Equal(t, "Grok-2 vs GPT-4o", model.GameSessions[0].Title)
}

func TestTransformPD_PlayerOrderingSwaps(t *testing.T) {
	raw := pdFixture()
	// a session id naming only the opponent's suffix puts the opponent first
	raw.ModelProfiles.Models[0].Games[0].SessionID = "prisoners_dilemma_gpt-4o_20250311_153141"
	raw.ModelProfiles.Models[1].Games[0].SessionID = "prisoners_dilemma_gpt-4o_20250311_153141"

	model, err := transformPrisonersDilemmaData(raw)
	require.NoError(t, err)
	require.Len(t, model.GameSessions, 1)
	assert.Equal(t, []string{"GPT-4o", "Grok-2"}, model.GameSessions[0].Participants)
	assert.Equal(t, map[string]float64{"GPT-4o": 10, "Grok-2": 15}, model.GameSessions[0].FinalScores)
}

func TestTransformPD_MatchupMatrix(t *testing.T) {
	model, err := transformPrisonersDilemmaData(pdFixture())
	require.NoError(t, err)

	m := model.GameSpecific.MatchupMatrix
	require.NotNil(t, m)
	assert.Equal(t, []string{"Grok-2", "GPT-4o"}, m.Models)
	require.Len(t, m.WinMatrix, 2)
	assert.Nil(t, m.WinMatrix[0][0])
	assert.Nil(t, m.WinMatrix[1][1])
	require.NotNil(t, m.WinMatrix[0][1])
	assert.Equal(t, 1, *m.WinMatrix[0][1])
	require.NotNil(t, m.WinMatrix[1][0])
	assert.Equal(t, 0, *m.WinMatrix[1][0])
}

// TestTransformPD_MatrixDiagonalForcedNil checks that a non-null diagonal cell
// in the input never survives the transform
func TestTransformPD_MatrixDiagonalForcedNil(t *testing.T) {
	raw := pdFixture()
	raw.MatchupMatrix.WinMatrix[0][0] = intPtr(1)

	model, err := transformPrisonersDilemmaData(raw)
	require.NoError(t, err)
	assert.Nil(t, model.GameSpecific.MatchupMatrix.WinMatrix[0][0])
}

func TestTransformPD_RoundProgressionCopied(t *testing.T) {
	model, err := transformPrisonersDilemmaData(pdFixture())
	require.NoError(t, err)

	require.Len(t, model.GameSpecific.RoundProgression, 2)
	assert.InDelta(t, 0.8, model.GameSpecific.RoundProgression[0].CooperationRate, 1e-9)
	assert.InDelta(t, 0.4, model.GameSpecific.RoundProgression[1].DefectionRate, 1e-9)
}

// TestTransformPD_Deterministic checks that the transform involves no
// randomness: two runs over the same artifacts agree exactly
func TestTransformPD_Deterministic(t *testing.T) {
	first, err := transformPrisonersDilemmaData(pdFixture())
	require.NoError(t, err)
	second, err := transformPrisonersDilemmaData(pdFixture())
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

// TestTransformPD_EmptyArtifacts covers the empty-leaderboard boundary
func TestTransformPD_EmptyArtifacts(t *testing.T) {
	model, err := transformPrisonersDilemmaData(&artifacts.GameArtifacts{
		GameType:    GamePrisonersDilemma,
		Leaderboard: []artifacts.LeaderboardRow{},
	})
	require.NoError(t, err)

	assert.NotNil(t, model.Leaderboard)
	assert.Empty(t, model.Leaderboard)
	assert.NotNil(t, model.GameSessions)
	assert.Empty(t, model.GameSessions)
	assert.Nil(t, model.GameSpecific.MatchupMatrix)
	assert.Empty(t, model.GameSpecific.RoundProgression)
}

// TestTransformPD_InconsistentRowDiagnostic checks that a row whose counts
// disagree with games yields a diagnostic, not a failure
func TestTransformPD_InconsistentRowDiagnostic(t *testing.T) {
	raw := pdFixture()
	raw.Leaderboard[0].Ties = 5

	model, err := transformPrisonersDilemmaData(raw)
	require.NoError(t, err)
	require.NotEmpty(t, model.Diagnostics)
	assert.Equal(t, DiagInconsistentData, model.Diagnostics[0].Code)
	// rows pass through untouched; games stays authoritative
	assert.Equal(t, 3, model.Leaderboard[0].Games)
}

// endregion

// region transformGameDetail tests

func pdDetailFixture() *artifacts.SessionDetail {
	return &artifacts.SessionDetail{
		Game: artifacts.SessionGame{
			SessionID: "prisoners_dilemma_20250311_153141",
			GameType:  GamePrisonersDilemma,
			Winner:    "player_1",
		},
		Players: []artifacts.SessionPlayer{
			{PlayerID: "player_1", ModelName: "xAI Grok-2"},
			{PlayerID: "player_2", ModelName: "OpenAI GPT-4o"},
		},
		Metadata: artifacts.SessionMetadata{Rounds: 2},
		Summary: artifacts.SessionSummaryRaw{
			Winner:      "player_1",
			FinalScores: map[string]int{"player_1": 15, "player_2": 10},
		},
		Timeline: []artifacts.TimelineEvent{
			// deliberately out of order: resolutions before decisions, round 2 first
			{Type: artifacts.EventRoundResolution, Round: 2, Scores: map[string]int{"player_1": 15, "player_2": 10}},
			{Type: artifacts.EventPlayerDecision, Round: 2, PlayerID: "player_1", Decision: "defect", Reasoning: "endgame"},
			{Type: artifacts.EventPlayerDecision, Round: 2, PlayerID: "player_2", Decision: "cooperate", Reasoning: "trust"},
			{Type: artifacts.EventRoundResolution, Round: 1, Scores: map[string]int{"player_1": 5, "player_2": 5}},
			{Type: artifacts.EventPlayerDecision, Round: 1, PlayerID: "player_1", Decision: "cooperate", Reasoning: "opening"},
			{Type: artifacts.EventPlayerDecision, Round: 1, PlayerID: "player_2", Decision: "cooperate", Reasoning: "opening"},
		},
	}
}

// TestTransformPDDetail_TimelineOrdering checks rounds ascend and decisions
// precede the resolution within each round
func TestTransformPDDetail_TimelineOrdering(t *testing.T) {
	view, err := transformPrisonersDilemmaDetail(pdDetailFixture())
	require.NoError(t, err)

	require.Len(t, view.Timeline, 6)
	lastRound := 0
	for i, ev := range view.Timeline {
		assert.GreaterOrEqual(t, ev.Round, lastRound, "event %d", i)
		lastRound = ev.Round
	}
	// per round: two decisions then one resolution
	assert.Equal(t, artifacts.EventPlayerDecision, view.Timeline[0].Type)
	assert.Equal(t, artifacts.EventPlayerDecision, view.Timeline[1].Type)
	assert.Equal(t, artifacts.EventRoundResolution, view.Timeline[2].Type)
	assert.Equal(t, 1, view.Timeline[2].Round)
	assert.Equal(t, artifacts.EventRoundResolution, view.Timeline[5].Type)
	assert.Equal(t, 2, view.Timeline[5].Round)
}

func TestTransformPDDetail_CommonFields(t *testing.T) {
	view, err := transformPrisonersDilemmaDetail(pdDetailFixture())
	require.NoError(t, err)

	assert.Equal(t, "prisoners_dilemma_20250311_153141", view.ID)
	assert.Equal(t, GamePrisonersDilemma, view.GameType)
	assert.Equal(t, []string{"Grok-2", "GPT-4o"}, view.Participants)
	assert.Equal(t, "player_1", view.Summary.Winner)
	assert.Equal(t, map[string]int{"player_1": 15, "player_2": 10}, view.Summary.FinalScores)
	// timestamp falls back to the one embedded in the session id
	assert.Equal(t, "20250311_153141", view.Metadata.Timestamp)
	assert.Empty(t, view.Diagnostics)
}

// TestTransformPDDetail_UnknownPlayerDiagnostic checks that an event naming a
// player outside the roster is flagged but kept
func TestTransformPDDetail_UnknownPlayerDiagnostic(t *testing.T) {
	raw := pdDetailFixture()
	raw.Timeline = append(raw.Timeline, artifacts.TimelineEvent{
		Type: artifacts.EventPlayerDecision, Round: 2, PlayerID: "player_9", Decision: "defect",
	})

	view, err := transformPrisonersDilemmaDetail(raw)
	require.NoError(t, err)
	assert.Len(t, view.Timeline, 7)
	require.NotEmpty(t, view.Diagnostics)
	assert.Contains(t, view.Diagnostics[0].Message, "player_9")
}

func TestTransformPDDetail_Idempotent(t *testing.T) {
	first, err := transformPrisonersDilemmaDetail(pdDetailFixture())
	require.NoError(t, err)
	second, err := transformPrisonersDilemmaDetail(pdDetailFixture())
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

// endregion
