// Package config loads frontend and service settings for pong from YAML
// or TOML. Game rules are fixed in code and are not configurable.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/vovakirdan/tui-pong/internal/core"
)

// Config is the full application configuration.
type Config struct {
	TickRate int           `yaml:"tick_rate" toml:"tick_rate"`
	Input    InputConfig   `yaml:"input" toml:"input"`
	Keys     KeyConfig     `yaml:"keys" toml:"keys"`
	Window   WindowConfig  `yaml:"window" toml:"window"`
	Storage  StorageConfig `yaml:"storage" toml:"storage"`
	SSH      SSHConfig     `yaml:"ssh" toml:"ssh"`
	Log      LogConfig     `yaml:"log" toml:"log"`
}

// InputConfig tunes terminal key handling.
type InputConfig struct {
	// HoldWindow is how long a key counts as held after its last press or
	// auto-repeat. Terminals do not report releases.
	HoldWindow time.Duration `yaml:"hold_window" toml:"hold_window"`
}

// KeyConfig maps each button to the key names that drive it. Names use
// Bubble Tea's key strings ("up", "w", "enter").
type KeyConfig struct {
	Up    []string `yaml:"up" toml:"up"`
	Down  []string `yaml:"down" toml:"down"`
	W     []string `yaml:"w" toml:"w"`
	S     []string `yaml:"s" toml:"s"`
	Left  []string `yaml:"left" toml:"left"`
	Right []string `yaml:"right" toml:"right"`
	Enter []string `yaml:"enter" toml:"enter"`
}

// WindowConfig sizes the desktop window frontend.
type WindowConfig struct {
	Width  int    `yaml:"width" toml:"width"`   // framebuffer width in pixels
	Height int    `yaml:"height" toml:"height"` // framebuffer height in pixels
	Scale  int    `yaml:"scale" toml:"scale"`   // window pixels per framebuffer pixel
	Title  string `yaml:"title" toml:"title"`
}

// StorageConfig locates the recordings database.
type StorageConfig struct {
	DBPath string `yaml:"db_path" toml:"db_path"`
}

// SSHConfig configures `pong serve`.
type SSHConfig struct {
	Address     string        `yaml:"address" toml:"address"`
	HostKey     string        `yaml:"host_key" toml:"host_key"`
	IdleTimeout time.Duration `yaml:"idle_timeout" toml:"idle_timeout"`
}

// LogConfig configures charmbracelet/log output.
type LogConfig struct {
	Level string `yaml:"level" toml:"level"`
	File  string `yaml:"file" toml:"file"`
}

// Bindings returns the key names for every button, indexed by button.
func (k KeyConfig) Bindings() [core.ButtonCount][]string {
	var b [core.ButtonCount][]string
	b[core.ButtonUp] = k.Up
	b[core.ButtonDown] = k.Down
	b[core.ButtonW] = k.W
	b[core.ButtonS] = k.S
	b[core.ButtonLeft] = k.Left
	b[core.ButtonRight] = k.Right
	b[core.ButtonEnter] = k.Enter
	return b
}

// Runtime returns the core runtime settings for a screen of w x h cells.
func (c Config) Runtime(w, h int) core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: w, ScreenH: h, TickRate: c.TickRate}
}

// Validate reports the first invalid setting.
func (c Config) Validate() error {
	if c.TickRate < 1 || c.TickRate > 240 {
		return fmt.Errorf("config: tick_rate must be in [1, 240], got %d", c.TickRate)
	}
	if c.Input.HoldWindow <= 0 {
		return errors.New("config: input.hold_window must be positive")
	}

	seen := make(map[string]core.Button)
	for i, keys := range c.Keys.Bindings() {
		b := core.Button(i)
		if len(keys) == 0 {
			return fmt.Errorf("config: keys.%s has no bindings", b)
		}
		for _, k := range keys {
			if other, ok := seen[k]; ok {
				return fmt.Errorf("config: key %q bound to both %s and %s", k, other, b)
			}
			seen[k] = b
		}
	}

	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("config: window size must be positive, got %dx%d", c.Window.Width, c.Window.Height)
	}
	if c.Window.Scale < 1 {
		return fmt.Errorf("config: window.scale must be at least 1, got %d", c.Window.Scale)
	}
	if c.Storage.DBPath == "" {
		return errors.New("config: storage.db_path is empty")
	}
	if c.SSH.IdleTimeout < 0 {
		return errors.New("config: ssh.idle_timeout must not be negative")
	}
	return nil
}
