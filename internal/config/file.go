package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// LocalFileName is the project-local config file looked up in the working
// directory.
const LocalFileName = "batchrename.toml"

// File is the TOML config file. Every field is optional; a set field
// replaces the built-in default but never a flag given on the command line.
type File struct {
	Regex     *bool  `toml:"regex"`
	Extension *bool  `toml:"extension"`
	Recursive *bool  `toml:"recursive"`
	Folders   *bool  `toml:"folders"`
	Yes       *bool  `toml:"yes"`
	NameCheck *bool  `toml:"name_check"`
	Color     string `toml:"color"`
	StateDir  string `toml:"state_dir"`
	Log       string `toml:"log"`
}

// ResolveFile returns the config file to load: explicit when set (it must
// exist), else ./batchrename.toml, else $XDG_CONFIG_HOME/batchrename/config.toml.
// It returns "" when no file applies.
func ResolveFile(explicit string) (string, error) {
	if explicit != "" {
		if _, err := os.Stat(explicit); err != nil {
			return "", fmt.Errorf("config file: %w", err)
		}
		return explicit, nil
	}

	for _, candidate := range []string{LocalFileName, userConfigPath()} {
		if candidate == "" {
			continue
		}
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate, nil
		}
	}
	return "", nil
}

func userConfigPath() string {
	dir := os.Getenv("XDG_CONFIG_HOME")
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		dir = filepath.Join(home, ".config")
	}
	return filepath.Join(dir, "batchrename", "config.toml")
}

// LoadFile decodes the TOML file at path. Unknown keys are an error so that
// typos do not pass silently.
func LoadFile(path string) (*File, error) {
	var f File
	md, err := toml.DecodeFile(path, &f)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, fmt.Errorf("parse %s: unknown keys: %s", path, strings.Join(keys, ", "))
	}
	return &f, nil
}

// apply copies the file values into cfg, skipping those whose flag was
// given explicitly.
func (f *File) apply(cfg *Config, explicit map[string]bool) error {
	setBool := func(v *bool, dst *bool, names ...string) {
		if v == nil {
			return
		}
		for _, n := range names {
			if explicit[n] {
				return
			}
		}
		*dst = *v
	}

	setBool(f.Regex, &cfg.UseRegex, "regex", "r")
	setBool(f.Extension, &cfg.ModifyExtension, "extension", "e")
	setBool(f.Recursive, &cfg.Recursive, "recursive", "s")
	setBool(f.Folders, &cfg.Folders, "folders", "d")
	setBool(f.Yes, &cfg.AssumeYes, "yes", "y")
	setBool(f.NameCheck, &cfg.NameCheck, "no-name-check")

	if f.Color != "" && !explicit["color"] && !explicit["no-color"] {
		var mode ColorMode
		if err := (&colorModeValue{&mode}).Set(f.Color); err != nil {
			return err
		}
		cfg.ColorMode = mode
	}
	if f.StateDir != "" && !explicit["state-dir"] {
		cfg.StateDir = f.StateDir
	}
	if f.Log != "" && !explicit["log"] && !explicit["l"] {
		cfg.LogFile = f.Log
	}
	return nil
}
