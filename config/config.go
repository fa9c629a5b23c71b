// Package config holds engine-level preferences persisted across runs,
// separate from any per-scene snapshot.
package config

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// Path is the config file location, relative to the process working
// directory.
const Path = "config/engine.json"

// Prefs holds the engine-only knobs: default simulation rate and which
// debug-draw categories start enabled.
type Prefs struct {
	UpdateRate   int32  `json:"update_rate"`
	DrawMask     uint8  `json:"draw_mask"`
	DebugDrawTag string `json:"debug_draw_tag,omitempty"`
}

// Default returns the out-of-the-box preferences: 60Hz, shapes and
// contacts drawn.
func Default() Prefs {
	return Prefs{
		UpdateRate: 60,
		DrawMask:   1 | 4, // DrawShapes | DrawContacts
	}
}

// Load reads preferences from Path. A missing or invalid file yields
// Default() rather than an error; the caller always has something to run
// with.
func Load() (Prefs, error) {
	data, err := os.ReadFile(Path)
	if err != nil {
		return Default(), nil
	}
	var p Prefs
	if err := json.Unmarshal(data, &p); err != nil {
		return Default(), nil
	}
	return p, nil
}

// Save writes preferences to Path, creating the containing directory if
// needed.
func Save(p Prefs) error {
	dir := filepath.Dir(Path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(p, "", "\t")
	if err != nil {
		return err
	}
	return os.WriteFile(Path, data, 0644)
}
