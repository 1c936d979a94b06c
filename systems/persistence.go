package systems

import (
	"encoding/json"
	"fmt"

	"github.com/automoto/pong/components"
	"github.com/automoto/pong/logger"
	"github.com/quasilyte/gdata"
	"github.com/yohamta/donburi/ecs"
)

const recordKey = "record"

var gdataManager *gdata.Manager

// InitPersistence initializes the gdata manager for the win tally
func InitPersistence(appName string) error {
	m, err := gdata.Open(gdata.Config{
		AppName: appName,
	})
	if err != nil {
		return fmt.Errorf("open save data: %w", err)
	}
	gdataManager = m
	return nil
}

// LoadRecord loads the win tally from disk. It returns a zero record when
// persistence is off or nothing was saved yet.
func LoadRecord() (components.RecordData, error) {
	var record components.RecordData
	if gdataManager == nil {
		return record, nil
	}

	data, err := gdataManager.LoadItem(recordKey)
	if err != nil {
		return record, fmt.Errorf("load record: %w", err)
	}
	if data == nil {
		return record, nil
	}

	if err := json.Unmarshal(data, &record); err != nil {
		return components.RecordData{}, fmt.Errorf("parse record: %w", err)
	}
	return record, nil
}

// SaveRecord saves the win tally to disk
func SaveRecord(r components.RecordData) error {
	if gdataManager == nil {
		return nil
	}

	data, err := json.Marshal(r)
	if err != nil {
		return fmt.Errorf("encode record: %w", err)
	}
	if err := gdataManager.SaveItem(recordKey, data); err != nil {
		return fmt.Errorf("save record: %w", err)
	}
	return nil
}

// RecordWin adds a finished match to the world's tally and saves it.
func RecordWin(e *ecs.ECS, player int) {
	entry, ok := components.Record.First(e.World)
	if !ok {
		return
	}
	record := components.Record.Get(entry)
	if player >= 0 && player < len(record.Wins) {
		record.Wins[player]++
	}
	record.Matches++

	if err := SaveRecord(*record); err != nil {
		logger.L().Warnw("could not save record", "error", err)
	}
}

// SetRecord replaces the world's tally, typically with one from LoadRecord.
func SetRecord(e *ecs.ECS, r components.RecordData) {
	if entry, ok := components.Record.First(e.World); ok {
		components.Record.SetValue(entry, r)
	}
}

// GetRecord returns the world's tally.
func GetRecord(e *ecs.ECS) components.RecordData {
	if entry, ok := components.Record.First(e.World); ok {
		return *components.Record.Get(entry)
	}
	return components.RecordData{}
}
