package config

import "github.com/yohamta/donburi/ecs"

const (
	Default ecs.LayerID = iota
	HUD
)
