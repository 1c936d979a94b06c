package ui

import (
	"testing"

	cfg "github.com/automoto/pong/config"
	"github.com/automoto/pong/display"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var _ display.Sink = (*Scoreboard)(nil)

func newScoreboard(t *testing.T) *Scoreboard {
	t.Helper()
	sb, err := NewScoreboard()
	require.NoError(t, err)
	return sb
}

func TestScoreboardScores(t *testing.T) {
	sb := newScoreboard(t)

	assert.Equal(t, "0", sb.scoreLabels[cfg.PlayerLeft].Label)
	sb.UpdateScore(3, 10)

	assert.Equal(t, "3", sb.scoreLabels[cfg.PlayerLeft].Label)
	assert.Equal(t, "10", sb.scoreLabels[cfg.PlayerRight].Label)
}

func TestScoreboardWinnerAndPrompts(t *testing.T) {
	sb := newScoreboard(t)

	sb.ShowWinner(cfg.PlayerRight)
	sb.ShowPlayAgainPrompts()
	sb.SetPlayAccepted(cfg.PlayerLeft, true)

	assert.Equal(t, "", sb.winnerLabels[cfg.PlayerLeft].Label)
	assert.Equal(t, cfg.UI.WinnerText, sb.winnerLabels[cfg.PlayerRight].Label)
	assert.Equal(t, cfg.UI.AcceptedText, sb.promptLabels[cfg.PlayerLeft].Label)
	assert.Equal(t, cfg.UI.PlayAgainText[cfg.PlayerRight], sb.promptLabels[cfg.PlayerRight].Label)

	sb.ShowCountdown(3)
	sb.HideAllPrompts()

	for player := range sb.promptLabels {
		assert.Empty(t, sb.winnerLabels[player].Label)
		assert.Empty(t, sb.promptLabels[player].Label)
	}
	assert.Equal(t, 0, sb.Countdown())
}

func TestScoreboardIgnoresUnknownPlayer(t *testing.T) {
	sb := newScoreboard(t)

	assert.NotPanics(t, func() {
		sb.ShowWinner(5)
		sb.SetPlayAccepted(-1, true)
	})
}

func TestScoreboardCountdownPulse(t *testing.T) {
	sb := newScoreboard(t)

	sb.ShowCountdown(5)
	assert.Equal(t, 5, sb.Countdown())
	assert.Equal(t, float32(1.5), sb.scale)
	require.NotNil(t, sb.pulse)

	// Same value does not restart the pulse
	p := sb.pulse
	sb.ShowCountdown(5)
	assert.Same(t, p, sb.pulse)

	sb.ShowCountdown(0)
	assert.Equal(t, 0, sb.Countdown())
	assert.Nil(t, sb.pulse)
}
