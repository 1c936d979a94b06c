package components

import (
	cfg "github.com/automoto/pong/config"
	"github.com/yohamta/donburi"
)

type PaddleData struct {
	Side    int // cfg.PlayerLeft or cfg.PlayerRight
	Speed   float64
	Control cfg.ControlMode
	Input   float64 // last vertical input in {-1, 0, 1}
}

var Paddle = donburi.NewComponentType[PaddleData]()

// Direction is the horizontal direction a ball leaves this paddle in.
func (p *PaddleData) Direction() float64 {
	if p.Side == cfg.PlayerLeft {
		return 1
	}
	return -1
}
