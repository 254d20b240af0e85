/* prisoners_dilemma.go
 * Game definition and transforms for Prisoner's Dilemma: leaderboard with
 * first-to-defect rate, pair-deduplicated sessions, the head-to-head matchup
 * matrix, and the aggregate round progression
 */

package games

import (
	"fmt"

	"parlour-dashboard/api/artifacts"
	"parlour-dashboard/api/shared"
)

func prisonersDilemmaDefinition() Definition {
	columns := commonLeaderboardColumns()
	columns = append(columns, Column{
		Key: "first_to_defect_rate", Label: "First to Defect", Align: AlignRight, Formatter: FormatPercent,
	})
	return Definition{
		Config: Config{
			Name:        "Prisoner's Dilemma",
			Description: "Iterated prisoner's dilemma: cooperate or defect over repeated rounds",
			DataTypes: []string{
				artifacts.DataTypeMatchupMatrix,
				artifacts.DataTypeRoundProgression,
				artifacts.DataTypeModelProfiles,
			},
			LeaderboardColumns: columns,
		},
		TransformData:       transformPrisonersDilemmaData,
		TransformGameDetail: transformPrisonersDilemmaDetail,
	}
}

// transformPrisonersDilemmaData normalises the raw PD artifacts into the
// uniform dashboard model. Pure and deterministic.
func transformPrisonersDilemmaData(raw *artifacts.GameArtifacts) (*DashboardModel, error) {
	model := &DashboardModel{
		GameType:     GamePrisonersDilemma,
		Leaderboard:  shortenLeaderboard(raw.Leaderboard),
		GameSessions: []SessionSummary{},
		Metadata:     raw.Metadata,
	}
	checkLeaderboard(raw.Leaderboard, &model.Diagnostics)
	model.GameSpecific.GameSummary = gameSummaryRows(model.Leaderboard)

	names := profileNameIndex(raw.ModelProfiles.Models)
	model.GameSessions = pdSessions(raw.ModelProfiles.Models, names)

	if raw.MatchupMatrix != nil {
		model.GameSpecific.MatchupMatrix = buildMatchupMatrix(raw.MatchupMatrix, &model.Diagnostics)
	}
	if raw.RoundProgression != nil {
		model.GameSpecific.RoundProgression = append([]artifacts.RoundRates(nil), raw.RoundProgression...)
	}
	return model, nil
}

// pdSessions walks every model's games list and emits one representative
// session per unique model pair. Player order within a session follows the
// artifact producer's convention: the model whose id suffix appears in the
// session id is player 1.
func pdSessions(profiles []artifacts.ModelProfile, names map[string]string) []SessionSummary {
	sessions := []SessionSummary{}
	seen := make(map[string]bool)

	for _, profile := range profiles {
		for _, game := range profile.Games {
			if game.Opponent == "" {
				continue
			}
			key := canonicalPairID(profile.ModelID, game.Opponent)
			if seen[key] {
				continue
			}
			seen[key] = true

			p1, p2 := profile.ModelID, game.Opponent
			s1, s2 := game.Score, game.OpponentScore
			if !sessionIDEmbedsModel(game.SessionID, profile.ModelID) {
				p1, p2 = p2, p1
				s1, s2 = s2, s1
			}
			n1, n2 := displayName(names, p1), displayName(names, p2)

			summary := SessionSummary{
				ID:           game.SessionID,
				Title:        fmt.Sprintf("%s vs %s", n1, n2),
				Participants: []string{n1, n2},
			}
			switch game.Result {
			case "win":
				summary.Winner = displayName(names, profile.ModelID)
			case "loss":
				summary.Winner = displayName(names, game.Opponent)
			}
			if s1 != nil || s2 != nil {
				summary.FinalScores = make(map[string]float64, 2)
				if s1 != nil {
					summary.FinalScores[n1] = *s1
				}
				if s2 != nil {
					summary.FinalScores[n2] = *s2
				}
			}
			sessions = append(sessions, summary)
		}
	}
	return sessions
}

// buildMatchupMatrix copies the raw matrix with shortened names. The diagonal
// is forced to nil and shape mismatches are recorded as diagnostics.
func buildMatchupMatrix(raw *artifacts.MatchupMatrixFile, diags *[]Diagnostic) *MatchupMatrix {
	m := &MatchupMatrix{
		Models:    make([]string, 0, len(raw.ModelNames)),
		WinMatrix: make([][]*int, len(raw.ModelNames)),
	}
	for _, name := range raw.ModelNames {
		m.Models = append(m.Models, shared.ShortenModelName(name))
	}
	if len(raw.WinMatrix) != len(raw.ModelNames) {
		*diags = append(*diags, Diagnostic{
			Code: DiagInconsistentData,
			Message: fmt.Sprintf("matchup matrix has %d rows for %d models",
				len(raw.WinMatrix), len(raw.ModelNames)),
		})
	}
	for i := range m.WinMatrix {
		row := make([]*int, len(raw.ModelNames))
		if i < len(raw.WinMatrix) {
			for j := range row {
				if j < len(raw.WinMatrix[i]) && i != j {
					row[j] = raw.WinMatrix[i][j]
				}
			}
		}
		m.WinMatrix[i] = row
	}
	return m
}

// transformPrisonersDilemmaDetail builds the per-session view: the common
// assembly is all PD needs, since decisions and resolutions render straight
// off the ordered timeline
func transformPrisonersDilemmaDetail(raw *artifacts.SessionDetail) (*SessionView, error) {
	return newSessionView(GamePrisonersDilemma, raw), nil
}
