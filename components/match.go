package components

import (
	cfg "github.com/automoto/pong/config"
	"github.com/yohamta/donburi"
)

// MatchData stores the current match state and scores.
// This is a singleton component - only one match exists at a time.
type MatchData struct {
	State          cfg.MatchStateID
	Scores         [2]int
	WinningScore   int
	Winner         int     // player index of the winner (-1 while undecided)
	Consent        [2]bool // play-again consent per player
	Timer          int     // frames remaining in Resetting/CountdownToRestart
	CountdownValue int     // whole seconds last shown (0 = hidden)
	Rallies        int     // paddle hits since the last serve
	Matches        int     // completed matches this session
}

var Match = donburi.NewComponentType[MatchData]()

// Score returns the score for a player index.
func (m *MatchData) Score(player int) int {
	if player < 0 || player >= len(m.Scores) {
		return 0
	}
	return m.Scores[player]
}

// BothConsented reports whether both players accepted a rematch.
func (m *MatchData) BothConsented() bool {
	return m.Consent[cfg.PlayerLeft] && m.Consent[cfg.PlayerRight]
}

// Leader returns the player index with the higher score, or -1 for a tie.
func (m *MatchData) Leader() int {
	switch {
	case m.Scores[cfg.PlayerLeft] > m.Scores[cfg.PlayerRight]:
		return cfg.PlayerLeft
	case m.Scores[cfg.PlayerRight] > m.Scores[cfg.PlayerLeft]:
		return cfg.PlayerRight
	}
	return -1
}
