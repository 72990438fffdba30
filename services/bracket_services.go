package services

import (
	"sort"

	"sportsday/models"
)

// BracketMatch is a match as drawn in a bracket, with its inferred winner
type BracketMatch struct {
	models.Match
	WinnerColorID *string `json:"winnerColorId"`
}

// BracketRound groups the matches of one round
type BracketRound struct {
	Round   int            `json:"round"`
	Matches []BracketMatch `json:"matches"`
}

// MatchWinner returns the winning color of a completed match.
// Unfinished matches and draws have no winner.
func MatchWinner(m models.Match) *string {
	if m.Status != models.MatchCompleted {
		return nil
	}
	switch {
	case m.HomeScore > m.AwayScore:
		return m.HomeColorID
	case m.AwayScore > m.HomeScore:
		return m.AwayColorID
	default:
		return nil
	}
}

// BuildBracket groups a flat list of matches by round, ordered by round then match number.
// NextMatchID is carried through untouched; no winner is advanced server-side.
func BuildBracket(matches []models.Match) []BracketRound {
	sorted := make([]models.Match, len(matches))
	copy(sorted, matches)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Round != sorted[j].Round {
			return sorted[i].Round < sorted[j].Round
		}
		if sorted[i].MatchNumber != sorted[j].MatchNumber {
			return sorted[i].MatchNumber < sorted[j].MatchNumber
		}
		return sorted[i].ID < sorted[j].ID
	})

	rounds := []BracketRound{}
	for _, m := range sorted {
		if len(rounds) == 0 || rounds[len(rounds)-1].Round != m.Round {
			rounds = append(rounds, BracketRound{Round: m.Round, Matches: []BracketMatch{}})
		}
		last := &rounds[len(rounds)-1]
		last.Matches = append(last.Matches, BracketMatch{Match: m, WinnerColorID: MatchWinner(m)})
	}
	return rounds
}
