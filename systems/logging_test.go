package systems

import (
	"testing"

	cfg "github.com/automoto/pong/config"
	"github.com/automoto/pong/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestMatchEventsAreLogged(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	logger.Set(zap.New(core).Sugar())
	t.Cleanup(func() { logger.Set(nil) })

	e, _ := newTestWorld(t)
	require.True(t, ScorePoint(e, cfg.PlayerRight))

	goals := logs.FilterMessage("goal").All()
	require.Len(t, goals, 1)
	assert.Equal(t, int64(cfg.PlayerRight), goals[0].ContextMap()["player"])

	transitions := logs.FilterMessage("match transition").All()
	require.Len(t, transitions, 1)
}

func TestRejectedTransitionIsLogged(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	logger.Set(zap.New(core).Sugar())
	t.Cleanup(func() { logger.Set(nil) })

	e, _ := newTestWorld(t)
	match := GetMatch(e)

	assert.False(t, setState(match, cfg.MatchStateCountdownToRestart))
	assert.Equal(t, cfg.MatchStatePlaying, match.State)
	assert.Equal(t, 1, logs.FilterMessage("rejected match transition").Len())
}
