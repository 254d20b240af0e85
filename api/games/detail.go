/* detail.go
 * Contains the helpers shared by the per-game transforms: timeline ordering,
 * common session-view assembly, and leaderboard consistency checks
 */

package games

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"parlour-dashboard/api/artifacts"
	"parlour-dashboard/api/shared"
)

// eventKindRank orders events within a round: decisions and prompts come
// first, submissions next, votes after, and the round resolution last.
// Unknown event types sort with arguments so foreign events stay in place.
func eventKindRank(eventType string) int {
	switch eventType {
	case artifacts.EventPromptCreation:
		return 0
	case artifacts.EventPlayerDecision, artifacts.EventDebaterArgument:
		return 1
	case artifacts.EventPoemSubmission:
		return 2
	case artifacts.EventPlayerVote:
		return 3
	case artifacts.EventRoundResolution:
		return 4
	default:
		return 1
	}
}

// sortTimeline returns a copy of the event stream ordered by round then event
// kind. The sort is stable so same-kind events keep their original order.
func sortTimeline(events []artifacts.TimelineEvent) []artifacts.TimelineEvent {
	out := make([]artifacts.TimelineEvent, len(events))
	copy(out, events)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Round != out[j].Round {
			return out[i].Round < out[j].Round
		}
		return eventKindRank(out[i].Type) < eventKindRank(out[j].Type)
	})
	return out
}

// playerNameIndex maps player ids to shortened display names, falling back to
// the player id when a player carries no model name
func playerNameIndex(players []artifacts.SessionPlayer) map[string]string {
	names := make(map[string]string, len(players))
	for _, p := range players {
		name := shared.ShortenModelName(p.ModelName)
		if name == "" {
			name = p.PlayerID
		}
		names[p.PlayerID] = name
	}
	return names
}

// newSessionView assembles the fields every game type's session view shares:
// participants, metadata, summary, and the ordered timeline. Events whose
// player id does not resolve to a participant are kept but flagged as
// diagnostics; the data is best-effort, never dropped wholesale.
func newSessionView(gameType string, raw *artifacts.SessionDetail) *SessionView {
	names := playerNameIndex(raw.Players)
	participants := make([]string, 0, len(raw.Players))
	for _, p := range raw.Players {
		participants = append(participants, names[p.PlayerID])
	}

	view := &SessionView{
		ID:           raw.Game.SessionID,
		GameType:     gameType,
		Participants: participants,
		Metadata:     raw.Metadata,
		Summary: SessionOutcome{
			Winner:      raw.Summary.Winner,
			FinalScores: raw.Summary.FinalScores,
		},
		Timeline: sortTimeline(raw.Timeline),
	}
	if view.Metadata.Timestamp == "" {
		view.Metadata.Timestamp = shared.SessionTimestamp(raw.Game.SessionID)
	}
	if view.Summary.Winner == "" {
		view.Summary.Winner = raw.Game.Winner
	}

	for _, ev := range view.Timeline {
		if ev.PlayerID == "" {
			continue
		}
		if _, ok := names[ev.PlayerID]; !ok {
			view.Diagnostics = append(view.Diagnostics, Diagnostic{
				Code:    DiagInconsistentData,
				Message: fmt.Sprintf("%s event references unknown player %q", ev.Type, ev.PlayerID),
			})
		}
	}
	return view
}

// checkLeaderboard verifies the per-row accounting invariants and records a
// diagnostic per violation. games stays authoritative; rows are never altered.
func checkLeaderboard(rows []artifacts.LeaderboardRow, diags *[]Diagnostic) {
	for _, row := range rows {
		if row.Wins+row.Losses+row.Ties != row.Games {
			*diags = append(*diags, Diagnostic{
				Code: DiagInconsistentData,
				Message: fmt.Sprintf("leaderboard row %q: wins+losses+ties=%d but games=%d",
					row.ModelName, row.Wins+row.Losses+row.Ties, row.Games),
			})
		}
		if row.Games > 0 && math.Abs(row.WinRate-float64(row.Wins)/float64(row.Games)) > 1e-3 {
			*diags = append(*diags, Diagnostic{
				Code: DiagInconsistentData,
				Message: fmt.Sprintf("leaderboard row %q: winrate %.4f disagrees with wins/games",
					row.ModelName, row.WinRate),
			})
		}
	}
}

// shortenLeaderboard copies the rows with display names shortened, preserving
// the source's rank order
func shortenLeaderboard(rows []artifacts.LeaderboardRow) []artifacts.LeaderboardRow {
	out := make([]artifacts.LeaderboardRow, 0, len(rows))
	for _, row := range rows {
		row.ModelName = shared.ShortenModelName(row.ModelName)
		out = append(out, row)
	}
	return out
}

// gameSummaryRows projects the leaderboard down to the name/wins/losses/ties
// table used by the summary chart
func gameSummaryRows(rows []artifacts.LeaderboardRow) []GameSummaryRow {
	out := make([]GameSummaryRow, 0, len(rows))
	for _, row := range rows {
		out = append(out, GameSummaryRow{
			Name:   row.ModelName,
			Wins:   row.Wins,
			Losses: row.Losses,
			Ties:   row.Ties,
		})
	}
	return out
}

// canonicalPairID forms the dedup key for a two-player session: the sorted
// model-id pair. Multiple matches of the same pair collapse to one key.
func canonicalPairID(a, b string) string {
	if a > b {
		a, b = b, a
	}
	return a + "__" + b
}

// profileNameIndex maps model ids to shortened display names
func profileNameIndex(profiles []artifacts.ModelProfile) map[string]string {
	names := make(map[string]string, len(profiles))
	for _, p := range profiles {
		names[p.ModelID] = shared.ShortenModelName(p.ModelName)
	}
	return names
}

// displayName resolves a model id through the profile index, falling back to
// the id's suffix when the model has no profile
func displayName(names map[string]string, modelID string) string {
	if name, ok := names[modelID]; ok && name != "" {
		return name
	}
	return shared.ModelSuffix(modelID)
}

// sessionIDEmbedsModel reports whether a session id embeds a model id's
// suffix, which is how the artifact producer encodes player order
func sessionIDEmbedsModel(sessionID, modelID string) bool {
	return strings.Contains(strings.ToLower(sessionID), strings.ToLower(shared.ModelSuffix(modelID)))
}
