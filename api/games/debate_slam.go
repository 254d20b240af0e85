/* debate_slam.go
 * Game definition and transforms for Debate Slam: sessions derived from
 * debater profiles, the matchup matrix, and the per-session view with the
 * side-swap round structure and the previous-round vote diff used to
 * highlight swayed judges
 */

package games

import (
	"fmt"

	"parlour-dashboard/api/artifacts"
)

func debateSlamDefinition() Definition {
	columns := commonLeaderboardColumns()
	columns = append(columns, Column{
		Key: "total_score", Label: "Total Score", Align: AlignRight, Formatter: FormatFixed2,
	})
	return Definition{
		Config: Config{
			Name:        "Debate Slam",
			Description: "Two models argue both sides of a topic before a judge panel",
			DataTypes: []string{
				artifacts.DataTypeMatchupMatrix,
				artifacts.DataTypeModelProfiles,
			},
			LeaderboardColumns: columns,
		},
		TransformData:       transformDebateSlamData,
		TransformGameDetail: transformDebateSlamDetail,
	}
}

// debaterProfiles returns the profile list that carries the debaters. Debate
// artifacts record them under debater_profiles; models is the fallback.
func debaterProfiles(pf artifacts.ModelProfilesFile) []artifacts.ModelProfile {
	if len(pf.DebaterProfiles) > 0 {
		return pf.DebaterProfiles
	}
	return pf.Models
}

// transformDebateSlamData normalises the raw Debate Slam artifacts into the
// uniform dashboard model. Pure and deterministic.
func transformDebateSlamData(raw *artifacts.GameArtifacts) (*DashboardModel, error) {
	model := &DashboardModel{
		GameType:     GameDebateSlam,
		Leaderboard:  shortenLeaderboard(raw.Leaderboard),
		GameSessions: []SessionSummary{},
		Metadata:     raw.Metadata,
	}
	checkLeaderboard(raw.Leaderboard, &model.Diagnostics)
	model.GameSpecific.GameSummary = gameSummaryRows(model.Leaderboard)

	model.GameSessions = debateSessions(debaterProfiles(raw.ModelProfiles))

	if raw.MatchupMatrix != nil {
		model.GameSpecific.MatchupMatrix = buildMatchupMatrix(raw.MatchupMatrix, &model.Diagnostics)
	}
	return model, nil
}

// debateSessions derives the session list from debater profiles: the
// participants of a session are the union of debaters that reference it, in
// first-reference order
func debateSessions(profiles []artifacts.ModelProfile) []SessionSummary {
	names := profileNameIndex(profiles)
	sessions := []SessionSummary{}
	index := make(map[string]int)

	for _, profile := range profiles {
		for _, game := range profile.Games {
			if game.SessionID == "" {
				continue
			}
			i, ok := index[game.SessionID]
			if !ok {
				index[game.SessionID] = len(sessions)
				sessions = append(sessions, SessionSummary{
					ID:           game.SessionID,
					Participants: []string{},
				})
				i = index[game.SessionID]
			}
			name := displayName(names, profile.ModelID)
			sessions[i].Participants = append(sessions[i].Participants, name)
			if game.Result == "win" {
				sessions[i].Winner = name
			}
		}
	}
	for i := range sessions {
		sessions[i].Title = debateTitle(sessions[i].Participants)
	}
	return sessions
}

func debateTitle(participants []string) string {
	if len(participants) == 2 {
		return fmt.Sprintf("%s vs %s", participants[0], participants[1])
	}
	return "Debate Slam"
}

// transformDebateSlamDetail builds the per-session view. The pre-swap and
// post-swap rounds are concatenated in play order; each round past the first
// carries the previous round's judge votes so the caller can highlight judges
// who changed sides, including across the swap.
func transformDebateSlamDetail(raw *artifacts.SessionDetail) (*SessionView, error) {
	view := newSessionView(GameDebateSlam, raw)
	names := playerNameIndex(raw.Players)

	debate := &DebateView{
		Topic:         raw.Game.Topic,
		Debaters:      []DebaterSlot{},
		PreSwapSides:  map[string]string{},
		PostSwapSides: map[string]string{},
	}

	// Fixed positions and colours, assigned in player-list order: the first
	// debater is left/blue, the second right/red.
	positions := []string{PositionLeft, PositionRight}
	colors := []string{ColorBlue, ColorRed}
	for _, p := range raw.Players {
		if p.PreSwapSide == "" {
			continue
		}
		slot := len(debate.Debaters)
		if slot >= 2 {
			view.Diagnostics = append(view.Diagnostics, Diagnostic{
				Code:    DiagInconsistentData,
				Message: fmt.Sprintf("session has more than two debaters; ignoring %q", p.PlayerID),
			})
			continue
		}
		debate.Debaters = append(debate.Debaters, DebaterSlot{
			PlayerID: p.PlayerID,
			Name:     names[p.PlayerID],
			Position: positions[slot],
			Color:    colors[slot],
		})
		debate.PreSwapSides[p.PreSwapSide] = p.PlayerID
		debate.PostSwapSides[p.PostSwapSide] = p.PlayerID
	}
	if len(debate.Debaters) == 2 {
		d1, d2 := debate.Debaters[0], debate.Debaters[1]
		p1 := findPlayer(raw.Players, d1.PlayerID)
		p2 := findPlayer(raw.Players, d2.PlayerID)
		if p1 != nil && p2 != nil && (p1.PostSwapSide != p2.PreSwapSide || p2.PostSwapSide != p1.PreSwapSide) {
			view.Diagnostics = append(view.Diagnostics, Diagnostic{
				Code:    DiagInconsistentData,
				Message: "post-swap sides are not the swap of pre-swap sides",
			})
		}
	}

	var prev map[string]string
	appendRounds := func(phase string, rounds []artifacts.DebateRound) {
		for _, round := range rounds {
			rv := DebateRoundView{
				RoundNumber: round.RoundNumber,
				Phase:       phase,
				Arguments:   round.DebaterArguments,
				Votes:       round.JudgeVotes,
			}
			if prev != nil {
				rv.PreviousRoundVotes = prev
			}
			current := make(map[string]string, len(round.JudgeVotes))
			for _, vote := range round.JudgeVotes {
				current[vote.PlayerID] = vote.Vote
			}
			prev = current
			debate.Rounds = append(debate.Rounds, rv)
		}
	}
	if raw.PreSwap != nil {
		appendRounds(PhasePreSwap, raw.PreSwap.Rounds)
	}
	if raw.PostSwap != nil {
		appendRounds(PhasePostSwap, raw.PostSwap.Rounds)
	}

	view.Debate = debate
	return view, nil
}

func findPlayer(players []artifacts.SessionPlayer, playerID string) *artifacts.SessionPlayer {
	for i := range players {
		if players[i].PlayerID == playerID {
			return &players[i]
		}
	}
	return nil
}
