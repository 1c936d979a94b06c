package assets

import (
	"embed"
	"io/fs"
)

// PlayfieldPath is the built-in TMX playfield inside FS.
const PlayfieldPath = "playfield.tmx"

//go:embed playfield.tmx
var assetFS embed.FS

// FS returns the embedded asset file system.
func FS() fs.FS {
	return assetFS
}
