// Package display defines the sink that receives score, countdown and
// prompt updates from the match. The simulation never depends on a concrete
// UI; a nil sink behaves like Nop.
package display

import "go.uber.org/zap"

// Sink receives presentation updates from the match.
type Sink interface {
	UpdateScore(left, right int)
	// ShowCountdown shows the remaining whole seconds; seconds <= 0 hides it.
	ShowCountdown(seconds int)
	ShowWinner(player int)
	ShowPlayAgainPrompts()
	SetPlayAccepted(player int, accepted bool)
	HideAllPrompts()
}

// Nop discards every update.
type Nop struct{}

func (Nop) UpdateScore(int, int) {}
func (Nop) ShowCountdown(int) {}
func (Nop) ShowWinner(int) {}
func (Nop) ShowPlayAgainPrompts() {}
func (Nop) SetPlayAccepted(int, bool) {}
func (Nop) HideAllPrompts() {}

// OrNop returns s, or Nop when s is nil.
func OrNop(s Sink) Sink {
	if s == nil {
		return Nop{}
	}
	return s
}

type logging struct {
	next Sink
	log  *zap.SugaredLogger
}

// WithLogging wraps s so every update is also logged at debug level.
func WithLogging(s Sink, log *zap.SugaredLogger) Sink {
	return &logging{next: OrNop(s), log: log}
}

func (l *logging) UpdateScore(left, right int) {
	l.log.Debugw("display score", "left", left, "right", right)
	l.next.UpdateScore(left, right)
}

func (l *logging) ShowCountdown(seconds int) {
	l.log.Debugw("display countdown", "seconds", seconds)
	l.next.ShowCountdown(seconds)
}

func (l *logging) ShowWinner(player int) {
	l.log.Debugw("display winner", "player", player)
	l.next.ShowWinner(player)
}

func (l *logging) ShowPlayAgainPrompts() {
	l.log.Debugw("display play again prompts")
	l.next.ShowPlayAgainPrompts()
}

func (l *logging) SetPlayAccepted(player int, accepted bool) {
	l.log.Debugw("display play accepted", "player", player, "accepted", accepted)
	l.next.SetPlayAccepted(player, accepted)
}

func (l *logging) HideAllPrompts() {
	l.log.Debugw("display hide prompts")
	l.next.HideAllPrompts()
}
