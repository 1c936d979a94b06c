package leveldata

import (
	"fmt"
	"io/fs"

	"github.com/lafriks/go-tiled"
)

// LoadPlayfield parses a TMX file into a Layout. Object rectangles are read
// from the Walls, Obstacles, Goals and Paddles object groups; goals and
// paddles are told apart by their "left"/"right" names. It takes an fs.FS so
// callers can pass embed.FS or os.DirFS.
func LoadPlayfield(fsys fs.FS, tmxPath string) (*Layout, error) {
	m, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	mapW := float64(m.Width * m.TileWidth)
	mapH := float64(m.Height * m.TileHeight)
	if mapW <= 0 || mapH <= 0 {
		return nil, fmt.Errorf("load TMX %s: empty map size %vx%v", tmxPath, mapW, mapH)
	}

	layout := &Layout{HalfWidth: mapW / 2, HalfHeight: mapH / 2}
	var goals, paddles [2]bool

	for _, og := range m.ObjectGroups {
		for _, o := range og.Objects {
			box := toField(o.X, o.Y, o.Width, o.Height, mapW, mapH)

			switch og.Name {
			case GroupWalls:
				layout.Walls = append(layout.Walls, box)
			case GroupObstacles:
				layout.Obstacles = append(layout.Obstacles, box)
			case GroupGoals:
				side, err := sideOf(o.Name)
				if err != nil {
					return nil, fmt.Errorf("load TMX %s: goal %d: %w", tmxPath, o.ID, err)
				}
				if side == 0 {
					layout.GoalLeft = box
				} else {
					layout.GoalRight = box
				}
				goals[side] = true
			case GroupPaddles:
				side, err := sideOf(o.Name)
				if err != nil {
					return nil, fmt.Errorf("load TMX %s: paddle %d: %w", tmxPath, o.ID, err)
				}
				layout.Paddles[side] = box
				paddles[side] = true
			}
		}
	}

	if !goals[0] || !goals[1] {
		return nil, fmt.Errorf("load TMX %s: both left and right goals are required", tmxPath)
	}
	if !paddles[0] || !paddles[1] {
		return nil, fmt.Errorf("load TMX %s: both left and right paddles are required", tmxPath)
	}

	return layout, nil
}

// toField converts a TMX rectangle (top-left origin, +Y down) to a field box.
func toField(x, y, w, h, mapW, mapH float64) Box {
	return Box{
		X:     x + w/2 - mapW/2,
		Y:     mapH/2 - (y + h/2),
		HalfW: w / 2,
		HalfH: h / 2,
	}
}

func sideOf(name string) (int, error) {
	switch name {
	case NameLeft:
		return 0, nil
	case NameRight:
		return 1, nil
	}
	return 0, fmt.Errorf("name %q is neither %q nor %q", name, NameLeft, NameRight)
}
