package components

import (
	"math/rand"

	"github.com/yohamta/donburi"
)

// RandomData is the world's random source (singleton). Seeding it makes serves
// reproducible.
type RandomData struct {
	*rand.Rand
}

var Random = donburi.NewComponentType[RandomData]()
