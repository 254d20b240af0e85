/* poetry_slam.go
 * Game definition and transforms for Poetry Slam: leaderboard, sessions
 * deduplicated by id, the voter-by-candidate voting matrix, and the
 * per-session poem view with vote counts
 */

package games

import (
	"fmt"
	"strings"

	"parlour-dashboard/api/artifacts"
)

func poetrySlamDefinition() Definition {
	columns := commonLeaderboardColumns()
	columns = append(columns, Column{
		Key: "total_score", Label: "Total Score", Align: AlignRight, Formatter: FormatFixed2,
	})
	return Definition{
		Config: Config{
			Name:               "Poetry Slam",
			Description:        "Models write poems to a shared prompt and vote for the best",
			DataTypes:          []string{artifacts.DataTypeModelProfiles},
			LeaderboardColumns: columns,
		},
		TransformData:       transformPoetrySlamData,
		TransformGameDetail: transformPoetrySlamDetail,
	}
}

// transformPoetrySlamData normalises the raw Poetry Slam artifacts into the
// uniform dashboard model. Pure and deterministic.
func transformPoetrySlamData(raw *artifacts.GameArtifacts) (*DashboardModel, error) {
	model := &DashboardModel{
		GameType:     GamePoetrySlam,
		Leaderboard:  shortenLeaderboard(raw.Leaderboard),
		GameSessions: []SessionSummary{},
		Metadata:     raw.Metadata,
	}
	checkLeaderboard(raw.Leaderboard, &model.Diagnostics)
	model.GameSpecific.GameSummary = gameSummaryRows(model.Leaderboard)

	names := profileNameIndex(raw.ModelProfiles.Models)
	model.GameSessions = poetrySessions(raw.ModelProfiles.Models, names)
	model.GameSpecific.VotingPatterns = buildVotingPatterns(raw.ModelProfiles.Models, &model.Diagnostics)
	return model, nil
}

// poetrySessions deduplicates sessions by id; participants are the recording
// model plus its other_players, resolved to display names. The winner comes
// from whichever profile recorded the win, not necessarily the profile whose
// entry was seen first.
func poetrySessions(profiles []artifacts.ModelProfile, names map[string]string) []SessionSummary {
	sessions := []SessionSummary{}
	index := make(map[string]int)

	for _, profile := range profiles {
		for _, game := range profile.Games {
			if game.SessionID == "" {
				continue
			}
			if i, ok := index[game.SessionID]; ok {
				if game.Result == "win" && sessions[i].Winner == "" {
					sessions[i].Winner = displayName(names, profile.ModelID)
				}
				continue
			}
			index[game.SessionID] = len(sessions)

			participants := []string{displayName(names, profile.ModelID)}
			for _, other := range game.OtherPlayers {
				participants = append(participants, displayName(names, other))
			}
			summary := SessionSummary{
				ID:           game.SessionID,
				Title:        "Poetry Slam: " + strings.Join(participants, ", "),
				Participants: participants,
			}
			if game.Result == "win" {
				summary.Winner = displayName(names, profile.ModelID)
			}
			sessions = append(sessions, summary)
		}
	}
	return sessions
}

// buildVotingPatterns accumulates the voter-by-candidate vote count grid. All
// cells start at 0 so a voter that never voted still has a full row; votes for
// unknown candidates and self votes are recorded as diagnostics and skipped.
func buildVotingPatterns(profiles []artifacts.ModelProfile, diags *[]Diagnostic) *VotingPatterns {
	vp := &VotingPatterns{
		Models: make([]VoterModel, 0, len(profiles)),
		Matrix: make(map[string]map[string]int, len(profiles)),
	}
	names := profileNameIndex(profiles)
	for _, p := range profiles {
		vp.Models = append(vp.Models, VoterModel{ID: p.ModelID, Name: names[p.ModelID]})
	}
	for _, voter := range profiles {
		row := make(map[string]int, len(profiles))
		for _, candidate := range profiles {
			row[candidate.ModelID] = 0
		}
		vp.Matrix[voter.ModelID] = row
	}

	for _, voter := range profiles {
		for _, game := range voter.Games {
			if game.Voting == nil || game.Voting.VotedForModel == "" {
				continue
			}
			target := game.Voting.VotedForModel
			if target == voter.ModelID {
				*diags = append(*diags, Diagnostic{
					Code:    DiagInconsistentData,
					Message: fmt.Sprintf("model %q recorded a self vote in session %s", voter.ModelID, game.SessionID),
				})
				continue
			}
			if _, ok := vp.Matrix[voter.ModelID][target]; !ok {
				*diags = append(*diags, Diagnostic{
					Code:    DiagInconsistentData,
					Message: fmt.Sprintf("model %q voted for unknown candidate %q in session %s", voter.ModelID, target, game.SessionID),
				})
				continue
			}
			vp.Matrix[voter.ModelID][target]++
		}
	}
	return vp
}

// transformPoetrySlamDetail builds the per-session view: the ordered timeline
// plus the prompt and each poem with its vote count, voter names, and winner flag
func transformPoetrySlamDetail(raw *artifacts.SessionDetail) (*SessionView, error) {
	view := newSessionView(GamePoetrySlam, raw)
	names := playerNameIndex(raw.Players)

	votes := make(map[string]int)
	votedBy := make(map[string][]string)
	for _, ev := range view.Timeline {
		switch ev.Type {
		case artifacts.EventPromptCreation:
			view.Prompt = ev.Prompt
		case artifacts.EventPlayerVote:
			if ev.VotedFor == "" {
				continue
			}
			votes[ev.VotedFor]++
			voterName, ok := names[ev.PlayerID]
			if !ok {
				voterName = ev.PlayerID
			}
			votedBy[ev.VotedFor] = append(votedBy[ev.VotedFor], voterName)
		}
	}

	for _, ev := range view.Timeline {
		if ev.Type != artifacts.EventPoemSubmission {
			continue
		}
		poemName, ok := names[ev.PlayerID]
		if !ok {
			poemName = ev.PlayerID
		}
		view.Poems = append(view.Poems, PoemView{
			PlayerID:   ev.PlayerID,
			PlayerName: poemName,
			Poem:       ev.Poem,
			Votes:      votes[ev.PlayerID],
			VotedBy:    votedBy[ev.PlayerID],
			IsWinner:   ev.PlayerID != "" && ev.PlayerID == raw.Game.Winner,
		})
	}
	return view, nil
}
