package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// Config is the host configuration read from config.toml.
type Config struct {
	HistoryFile    string `toml:"history_file"`    // REPL history, relative to the home directory
	LineTerminator string `toml:"line_terminator"` // auto, lf or crlf
	Clipboard      string `toml:"clipboard"`       // osc52, stdout or file:<path>
	HexMode        bool   `toml:"hex_mode"`        // Offer decimal/hex32 toggles
	Watch          bool   `toml:"watch"`           // Reload the document on external writes
	Trace          bool   `toml:"trace"`           // Log trace lines to stderr
}

// defaultConfig returns the configuration used when no file exists.
func defaultConfig() Config {
	return Config{
		HistoryFile:    ".veccalc_history",
		LineTerminator: "auto",
		Clipboard:      "osc52",
		HexMode:        true,
		Watch:          true,
		Trace:          true,
	}
}

// defaultConfigPath returns $XDG_CONFIG_HOME/veccalc/config.toml or the
// platform equivalent.
func defaultConfigPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}

	return filepath.Join(dir, "veccalc", "config.toml")
}

// loadConfig reads path over the defaults. A missing file is not an error.
func loadConfig(path string) (Config, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}

	md, err := toml.DecodeFile(path, &cfg)
	if errors.Is(err, fs.ErrNotExist) {
		return defaultConfig(), nil
	}
	if err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	if keys := md.Undecoded(); len(keys) > 0 {
		names := make([]string, len(keys))
		for i, k := range keys {
			names[i] = k.String()
		}
		return cfg, fmt.Errorf("config %s: unknown keys: %s", path, strings.Join(names, ", "))
	}

	return cfg, cfg.validate()
}

// validate checks enumerated settings.
func (c Config) validate() error {
	switch c.LineTerminator {
	case "auto", "lf", "crlf":
	default:
		return fmt.Errorf("config: line_terminator must be auto, lf or crlf, got %q", c.LineTerminator)
	}

	switch {
	case c.Clipboard == "osc52", c.Clipboard == "stdout":
	case strings.HasPrefix(c.Clipboard, "file:") && len(c.Clipboard) > len("file:"):
	default:
		return fmt.Errorf("config: clipboard must be osc52, stdout or file:<path>, got %q", c.Clipboard)
	}

	return nil
}

// historyPath resolves HistoryFile against the home directory.
func (c Config) historyPath() string {
	if c.HistoryFile == "" || filepath.IsAbs(c.HistoryFile) {
		return c.HistoryFile
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}

	return filepath.Join(home, c.HistoryFile)
}
