package prefs

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// Prefs holds editor-only preferences persisted across runs. Scene content
// is never persisted.
type Prefs struct {
	WindowWidth  int32  `json:"windowWidth"`
	WindowHeight int32  `json:"windowHeight"`
	ElevationDir string `json:"elevationDir,omitempty"`
	ActiveTool   string `json:"activeTool,omitempty"`
}

const prefsFile = ".solarcase.json"

func Default() Prefs {
	return Prefs{
		WindowWidth:  1440,
		WindowHeight: 900,
		ElevationDir: "S",
	}
}

// Load reads preferences from the config file. Missing or invalid files
// fall back to defaults without error.
func Load() Prefs {
	data, err := os.ReadFile(prefsFile)
	if err != nil {
		return Default()
	}
	var p Prefs
	if err := json.Unmarshal(data, &p); err != nil {
		return Default()
	}
	if p.WindowWidth <= 0 || p.WindowHeight <= 0 {
		d := Default()
		p.WindowWidth, p.WindowHeight = d.WindowWidth, d.WindowHeight
	}
	return p
}

// Save writes preferences next to the working directory.
func Save(p Prefs) error {
	dir := filepath.Dir(prefsFile)
	if dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}
	data, err := json.MarshalIndent(p, "", "\t")
	if err != nil {
		return err
	}
	return os.WriteFile(prefsFile, data, 0644)
}
