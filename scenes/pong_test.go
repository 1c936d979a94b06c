package scenes

import (
	"testing"

	"github.com/automoto/pong/components"
	cfg "github.com/automoto/pong/config"
	"github.com/automoto/pong/systems"
	"github.com/automoto/pong/tags"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
)

func TestNewPongSceneBuildsWorld(t *testing.T) {
	record := components.RecordData{Wins: [2]int{2, 1}, Matches: 3}
	ps, err := NewPongScene(Options{Seed: 7, Record: record})
	require.NoError(t, err)

	paddles := 0
	tags.Paddle.Each(ps.ecs.World, func(*donburi.Entry) { paddles++ })
	goals := 0
	tags.Goal.Each(ps.ecs.World, func(*donburi.Entry) { goals++ })

	assert.Equal(t, 2, paddles)
	assert.Equal(t, 2, goals)

	match := systems.GetMatch(ps.ecs)
	require.NotNil(t, match)
	assert.Equal(t, cfg.MatchStatePlaying, match.State)
	assert.Equal(t, cfg.Match.WinningScore, match.WinningScore)
	assert.Equal(t, record, systems.GetRecord(ps.ecs))
}

func TestPongSceneFirstServe(t *testing.T) {
	ps, err := NewPongScene(Options{Seed: 7})
	require.NoError(t, err)

	// The scene serves on its first Update; do the same without polling input.
	systems.StartMatch(ps.ecs)

	entry, ok := components.Ball.First(ps.ecs.World)
	require.True(t, ok)
	ball := components.Ball.Get(entry)
	assert.True(t, ball.Visible)
	assert.InDelta(t, cfg.Ball.Speed, ball.Velocity.Len(), 1e-6)
}
