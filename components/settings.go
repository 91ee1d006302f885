package components

import "github.com/yohamta/donburi"

// SettingsData is the persisted slice of state: cosmetic toggles and the
// high score. Everything else resets with the process.
type SettingsData struct {
	ParticlesEnabled bool `json:"particlesEnabled"`
	ShowHUD          bool `json:"showHUD"`
	HighScore        int  `json:"highScore"`
}

var Settings = donburi.NewComponentType[SettingsData]()
