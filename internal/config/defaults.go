package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/pong.yaml
var defaultPongYAML []byte

// Default returns the built-in configuration. It matches the embedded
// defaults/pong.yaml and is used if that file fails to parse.
func Default() Config {
	return Config{
		TickRate: 60,
		Input: InputConfig{
			HoldWindow: 500 * time.Millisecond,
		},
		Keys: KeyConfig{
			Up:    []string{"up"},
			Down:  []string{"down"},
			W:     []string{"w"},
			S:     []string{"s"},
			Left:  []string{"left"},
			Right: []string{"right"},
			Enter: []string{"enter"},
		},
		Window: WindowConfig{
			Width:  720,
			Height: 400,
			Scale:  2,
			Title:  "Pong",
		},
		Storage: StorageConfig{
			DBPath: "~/.pong/recordings.db",
		},
		SSH: SSHConfig{
			Address:     ":23234",
			HostKey:     "",
			IdleTimeout: 30 * time.Minute,
		},
		Log: LogConfig{
			Level: "info",
			File:  "~/.pong/pong.log",
		},
	}
}
