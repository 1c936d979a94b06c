package systems

import (
	"testing"

	"github.com/automoto/pong/components"
	cfg "github.com/automoto/pong/config"
	"github.com/automoto/pong/shared/gamemath"
	"github.com/automoto/pong/systems/factory"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

type acceptCall struct {
	player   int
	accepted bool
}

// recordingSink remembers every display update.
type recordingSink struct {
	scores     [][2]int
	countdowns []int
	winners    []int
	prompts    int
	accepted   []acceptCall
	hides      int
}

func (s *recordingSink) UpdateScore(left, right int) {
	s.scores = append(s.scores, [2]int{left, right})
}
func (s *recordingSink) ShowCountdown(seconds int) { s.countdowns = append(s.countdowns, seconds) }
func (s *recordingSink) ShowWinner(player int)     { s.winners = append(s.winners, player) }
func (s *recordingSink) ShowPlayAgainPrompts()     { s.prompts++ }
func (s *recordingSink) SetPlayAccepted(player int, accepted bool) {
	s.accepted = append(s.accepted, acceptCall{player, accepted})
}
func (s *recordingSink) HideAllPrompts() { s.hides++ }

func (s *recordingSink) lastScore() [2]int {
	if len(s.scores) == 0 {
		return [2]int{}
	}
	return s.scores[len(s.scores)-1]
}

// newTestWorld builds the default playfield with a seeded match and serves
// the first ball.
func newTestWorld(t *testing.T) (*ecs.ECS, *recordingSink) {
	t.Helper()

	e := ecs.NewECS(donburi.NewWorld())
	factory.CreatePlayfield(e, factory.DefaultLayout())
	sink := &recordingSink{}
	factory.CreateMatch(e, sink, 42)
	StartMatch(e)

	require.Equal(t, cfg.MatchStatePlaying, GetMatch(e).State)
	return e, sink
}

func testBall(t *testing.T, e *ecs.ECS) (*donburi.Entry, *components.BallData) {
	t.Helper()
	entry, ok := getBall(e)
	require.True(t, ok)
	return entry, components.Ball.Get(entry)
}

// placeBall puts the ball at pos with velocity vel and no remembered contacts.
func placeBall(t *testing.T, e *ecs.ECS, pos, vel gamemath.Vec2) *components.BallData {
	t.Helper()
	entry, ball := testBall(t, e)
	ball.Position = pos
	ball.Velocity = vel
	ball.Visible = true
	ball.Touching = map[donburi.Entity]bool{}
	syncBall(e, entry)
	return ball
}

func paddleEntry(t *testing.T, e *ecs.ECS, side int) *donburi.Entry {
	t.Helper()
	var found *donburi.Entry
	components.Paddle.Each(e.World, func(entry *donburi.Entry) {
		if components.Paddle.Get(entry).Side == side {
			found = entry
		}
	})
	require.NotNil(t, found)
	return found
}

func press(e *ecs.ECS, actions ...cfg.ActionID) {
	var next [cfg.ActionCount]bool
	for _, a := range actions {
		next[a] = true
	}
	getOrCreateInput(e).Advance(next)
}

// runUntilPlaying ticks the match until it is back in play.
func runUntilPlaying(t *testing.T, e *ecs.ECS) int {
	t.Helper()
	for frames := 1; frames <= 10*cfg.C.TPS; frames++ {
		UpdateMatch(e)
		if GetMatch(e).State == cfg.MatchStatePlaying {
			return frames
		}
	}
	t.Fatalf("match stuck in %s", GetMatch(e).State)
	return 0
}
