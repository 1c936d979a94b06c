package systems

import (
	"github.com/automoto/pong/components"
	cfg "github.com/automoto/pong/config"
	"github.com/automoto/pong/logger"
	"github.com/yohamta/donburi/ecs"
)

// matchTransitions lists the states each state may move to.
var matchTransitions = map[cfg.MatchStateID][]cfg.MatchStateID{
	cfg.MatchStatePlaying:            {cfg.MatchStateResetting, cfg.MatchStateAwaitingConsent},
	cfg.MatchStateResetting:          {cfg.MatchStatePlaying},
	cfg.MatchStateAwaitingConsent:    {cfg.MatchStateCountdownToRestart},
	cfg.MatchStateCountdownToRestart: {cfg.MatchStatePlaying},
}

var consentActions = [2]cfg.ActionID{cfg.ActionLeftConsent, cfg.ActionRightConsent}

// CanTransition reports whether the match may move from one state to another.
func CanTransition(from, to cfg.MatchStateID) bool {
	for _, s := range matchTransitions[from] {
		if s == to {
			return true
		}
	}
	return false
}

func setState(match *components.MatchData, to cfg.MatchStateID) bool {
	if !CanTransition(match.State, to) {
		logger.L().Warnw("rejected match transition", "from", match.State, "to", to)
		return false
	}
	logger.L().Debugw("match transition", "from", match.State, "to", to)
	match.State = to
	return true
}

// UpdateMatch handles match state transitions and timers.
func UpdateMatch(e *ecs.ECS) {
	match := GetMatch(e)
	if match == nil {
		return
	}

	switch match.State {
	case cfg.MatchStatePlaying:
		// Goals drive this state through ScorePoint
		return

	case cfg.MatchStateResetting:
		if tickCountdown(e, match) {
			finishReset(e, match)
		}

	case cfg.MatchStateAwaitingConsent:
		updateConsent(e, match)

	case cfg.MatchStateCountdownToRestart:
		if tickCountdown(e, match) {
			restartMatch(e, match)
		}
	}
}

// StartMatch pushes the initial score to the display and serves the first
// ball.
func StartMatch(e *ecs.ECS) {
	match := GetMatch(e)
	if match == nil {
		return
	}
	sink := getSink(e)
	sink.HideAllPrompts()
	sink.UpdateScore(match.Scores[cfg.PlayerLeft], match.Scores[cfg.PlayerRight])
	ServeBall(e)
	logger.L().Infow("match started", "winningScore", match.WinningScore)
}

// ScorePoint awards a point to player. It is ignored unless the match is
// Playing and reports whether the point counted.
func ScorePoint(e *ecs.ECS, player int) bool {
	match := GetMatch(e)
	if match == nil || match.State != cfg.MatchStatePlaying {
		return false
	}
	if player != cfg.PlayerLeft && player != cfg.PlayerRight {
		logger.L().Warnw("score for unknown player", "player", player)
		return false
	}

	match.Scores[player]++
	sink := getSink(e)
	sink.UpdateScore(match.Scores[cfg.PlayerLeft], match.Scores[cfg.PlayerRight])
	hideBall(e)

	logger.L().Infow("goal",
		"player", player,
		"left", match.Scores[cfg.PlayerLeft],
		"right", match.Scores[cfg.PlayerRight],
		"rallies", match.Rallies,
	)

	if match.Scores[player] >= match.WinningScore {
		if !setState(match, cfg.MatchStateAwaitingConsent) {
			return true
		}
		match.Winner = player
		match.Consent = [2]bool{}
		match.Matches++
		sink.ShowWinner(player)
		sink.ShowPlayAgainPrompts()
		RecordWin(e, player)
		PlaySFX(e, cfg.SoundWin)
		logger.L().Infow("match won", "player", player, "matches", match.Matches)
		return true
	}

	if setState(match, cfg.MatchStateResetting) {
		startCountdown(e, match, cfg.Match.ResetDelay)
	}
	PlaySFX(e, cfg.SoundScore)
	return true
}

// IsMatchPlaying returns true if the match is in the playing state
func IsMatchPlaying(e *ecs.ECS) bool {
	match := GetMatch(e)
	return match != nil && match.State == cfg.MatchStatePlaying
}

func updateConsent(e *ecs.ECS, match *components.MatchData) {
	input := getOrCreateInput(e)
	sink := getSink(e)

	for player, action := range consentActions {
		if match.Consent[player] || !input.Action(action).JustPressed {
			continue
		}
		match.Consent[player] = true
		sink.SetPlayAccepted(player, true)
		PlaySFX(e, cfg.SoundConsent)
		logger.L().Infow("play again accepted", "player", player)
	}

	if match.BothConsented() && setState(match, cfg.MatchStateCountdownToRestart) {
		startCountdown(e, match, cfg.Match.RestartDelay)
	}
}

func finishReset(e *ecs.ECS, match *components.MatchData) {
	if !setState(match, cfg.MatchStatePlaying) {
		return
	}
	ServeBall(e)
}

func restartMatch(e *ecs.ECS, match *components.MatchData) {
	if !setState(match, cfg.MatchStatePlaying) {
		return
	}
	match.Scores = [2]int{}
	match.Consent = [2]bool{}
	match.Winner = -1

	sink := getSink(e)
	sink.UpdateScore(0, 0)
	sink.HideAllPrompts()
	ServeBall(e)
	logger.L().Infow("match restarted")
}

// startCountdown arms the match timer and shows the first whole second.
func startCountdown(e *ecs.ECS, match *components.MatchData, frames int) {
	match.Timer = frames
	match.CountdownValue = 0
	showCountdown(e, match, secondsLeft(frames))
}

// tickCountdown advances the match timer one frame. It returns true once the
// timer has run out, after hiding the countdown.
func tickCountdown(e *ecs.ECS, match *components.MatchData) bool {
	if match.Timer > 0 {
		match.Timer--
	}
	if match.Timer > 0 {
		showCountdown(e, match, secondsLeft(match.Timer))
		return false
	}
	showCountdown(e, match, 0)
	return true
}

func showCountdown(e *ecs.ECS, match *components.MatchData, seconds int) {
	if seconds == match.CountdownValue {
		return
	}
	match.CountdownValue = seconds
	getSink(e).ShowCountdown(seconds)
}

// secondsLeft rounds a frame count up to whole seconds.
func secondsLeft(frames int) int {
	if frames <= 0 {
		return 0
	}
	tps := cfg.C.TPS
	return (frames + tps - 1) / tps
}
