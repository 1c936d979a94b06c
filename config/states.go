package config

import "fmt"

// MatchStateID represents the current phase of a match.
type MatchStateID int

const (
	MatchStatePlaying            MatchStateID = iota // Ball in play, goals count
	MatchStateResetting                              // Ball hidden, serve delay running
	MatchStateAwaitingConsent                        // Match won, waiting for both players
	MatchStateCountdownToRestart                     // Both consented, new match pending
)

func (s MatchStateID) String() string {
	switch s {
	case MatchStatePlaying:
		return "Playing"
	case MatchStateResetting:
		return "Resetting"
	case MatchStateAwaitingConsent:
		return "AwaitingConsent"
	case MatchStateCountdownToRestart:
		return "CountdownToRestart"
	}
	return fmt.Sprintf("MatchState(%d)", int(s))
}

// ControlMode selects what drives a paddle.
type ControlMode int

const (
	ControlHumanLeft ControlMode = iota
	ControlHumanRight
	ControlAI
)
