package components

import "github.com/yohamta/donburi"

// RecordData is the persisted tally of finished matches.
type RecordData struct {
	Wins    [2]int `json:"wins"`
	Matches int    `json:"matches"`
}

var Record = donburi.NewComponentType[RecordData]()
