// Package config persists the engine's small user-facing settings
// (input method, tone rule, enabled) across daemon restarts.
package config

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/lehuyvn/vnime-core/internal/engine"
)

// fileName is the settings file name, stored under the XDG config home.
const fileName = "vnime-ime.json"

// File is the on-disk JSON shape. It mirrors engine.EngineConfig except
// that the tone rule is stored as the Modern bool, which Load and Save
// translate to and from engine.ToneRule.
type File struct {
	MethodName string `json:"method"`
	Modern     bool   `json:"modern"`
	Enabled    bool   `json:"enabled"`
}

// Path returns the settings file path, honoring $XDG_CONFIG_HOME and
// falling back to $HOME/.config.
func Path() (string, error) {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, fileName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", fileName), nil
}

// Load reads the settings file, returning engine.DefaultConfig() if it
// does not exist or cannot be parsed.
func Load() *engine.EngineConfig {
	path, err := Path()
	if err != nil {
		return engine.DefaultConfig()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return engine.DefaultConfig()
	}

	var f File
	if err := json.Unmarshal(data, &f); err != nil {
		return engine.DefaultConfig()
	}

	rule := engine.ToneRuleOld
	if f.Modern {
		rule = engine.ToneRuleNew
	}
	return &engine.EngineConfig{
		MethodName: f.MethodName,
		ToneRule:   rule,
		Enabled:    f.Enabled,
	}
}

// Save writes config to the settings file, creating its parent
// directory if needed.
func Save(config *engine.EngineConfig) error {
	path, err := Path()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	f := File{
		MethodName: config.MethodName,
		Modern:     config.ToneRule == engine.ToneRuleNew,
		Enabled:    config.Enabled,
	}
	data, err := json.MarshalIndent(f, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
