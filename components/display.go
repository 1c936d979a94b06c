package components

import (
	"github.com/automoto/pong/display"
	"github.com/yohamta/donburi"
)

// DisplayData holds the sink that receives score and prompt updates.
type DisplayData struct {
	Sink display.Sink
}

var Display = donburi.NewComponentType[DisplayData]()
