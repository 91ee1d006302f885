package systems

import (
	"encoding/json"

	"github.com/charmbracelet/log"
	"github.com/quasilyte/gdata"
	"github.com/yohamta/donburi/ecs"

	"github.com/lunarbyte/hopper/components"
)

const settingsItem = "settings"

var (
	gdataManager     *gdata.Manager
	gdataInitialized bool
	settingsLog      = log.Default()
)

// InitPersistence opens the gdata store for settings. Failure is logged and
// tolerated; the session just runs on defaults without saving.
func InitPersistence(logger *log.Logger) error {
	if logger != nil {
		settingsLog = logger
	}
	m, err := gdata.Open(gdata.Config{
		AppName: "hopper",
	})
	if err != nil {
		settingsLog.Warn("could not initialize persistence", "err", err)
		return err
	}
	gdataManager = m
	gdataInitialized = true
	return nil
}

// LoadSettings reads the persisted settings into the settings singleton.
// Missing or corrupt data leaves the defaults in place.
func LoadSettings(ecs *ecs.ECS) {
	if !gdataInitialized {
		return
	}
	entry, ok := components.Settings.First(ecs.World)
	if !ok {
		return
	}

	data, err := gdataManager.LoadItem(settingsItem)
	if err != nil {
		settingsLog.Warn("could not load settings", "err", err)
		return
	}
	if data == nil {
		return
	}

	var saved components.SettingsData
	if err := json.Unmarshal(data, &saved); err != nil {
		settingsLog.Warn("could not parse saved settings", "err", err)
		return
	}
	components.Settings.SetValue(entry, saved)
}

// SaveSettings persists the settings singleton, including the high score.
func SaveSettings(ecs *ecs.ECS) {
	if !gdataInitialized {
		return
	}
	entry, ok := components.Settings.First(ecs.World)
	if !ok {
		return
	}

	data, err := json.Marshal(components.Settings.Get(entry))
	if err != nil {
		settingsLog.Warn("could not encode settings", "err", err)
		return
	}
	if err := gdataManager.SaveItem(settingsItem, data); err != nil {
		settingsLog.Warn("could not save settings", "err", err)
	}
}
