// Package config holds runtime configuration: defaults, an optional TOML
// file of defaults, CLI flag parsing and validation.
package config

import (
	"errors"
	"fmt"

	"github.com/tragoedia0722/batchrename/pkg/batch"
)

// ColorMode controls ANSI color output.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"   // Enable colors when stdout is a TTY (default).
	ColorAlways ColorMode = "always" // Force colors on.
	ColorNever  ColorMode = "never"  // Disable colors entirely.
)

// Command is the operation selected by the positional arguments.
type Command string

const (
	CommandRename        Command = "rename"
	CommandTemplateDump  Command = "template dump"
	CommandTemplateApply Command = "template apply"
	CommandTemplateEdit  Command = "template edit"
	CommandTemplateList  Command = "template list"
)

// DefaultStateDir holds template snapshots between dump and apply.
const DefaultStateDir = "~/.local/state/batchrename"

// Config holds all runtime settings. It is populated by [DefaultConfig],
// then by an optional config file and finally by [ParseArgs].
type Config struct {
	Command Command

	// Positional arguments.
	Root        string
	Pattern     string
	Replacement string

	// Batch flags.
	UseRegex        bool
	ModifyExtension bool
	Recursive       bool
	Folders         bool

	// Behavior.
	DryRun    bool
	AssumeYes bool // Skip the confirmation prompt.
	NameCheck bool // Default: true. Cleared by --no-name-check.

	// Files.
	ConfigFile string // Explicit --config path; empty means the lookup order.
	StateDir   string // Default: DefaultStateDir.

	// Display and logging.
	Verbose   bool
	ColorMode ColorMode // Default: "auto".
	LogFile   string    // Optional log file path.

	// Set when --help or --version was given; the caller prints and exits.
	ShowHelp    bool
	ShowVersion bool
}

// DefaultConfig returns a Config with every default applied.
func DefaultConfig() Config {
	return Config{
		Command:   CommandRename,
		NameCheck: true,
		StateDir:  DefaultStateDir,
		ColorMode: ColorAuto,
	}
}

// Flags returns the batch flags selected by the configuration.
func (c *Config) Flags() batch.Flags {
	return batch.Flags{
		UseRegex:              c.UseRegex,
		ModifyExtension:       c.ModifyExtension,
		IncludeSubdirectories: c.Recursive,
		RenameFolders:         c.Folders,
	}
}

// Input returns the batch input for a rename command.
func (c *Config) Input() batch.Input {
	return batch.Input{
		Root:        c.Root,
		Pattern:     c.Pattern,
		Replacement: c.Replacement,
		Flags:       c.Flags(),
	}
}

// Validate checks enum fields and that the command has the positional
// arguments it needs.
func (c *Config) Validate() error {
	switch c.ColorMode {
	case ColorAuto, ColorAlways, ColorNever:
		// valid
	default:
		return fmt.Errorf("invalid color mode %q (use 'auto', 'always' or 'never')", c.ColorMode)
	}

	if c.StateDir == "" {
		return errors.New("state directory must not be empty")
	}

	if c.ShowHelp || c.ShowVersion {
		return nil
	}

	switch c.Command {
	case CommandRename:
		if c.Root == "" || c.Pattern == "" {
			return errors.New("need a root directory and a search pattern")
		}
	case CommandTemplateDump, CommandTemplateApply, CommandTemplateEdit:
		if c.Root == "" {
			return errors.New("need a root directory")
		}
	case CommandTemplateList:
		// no arguments
	default:
		return fmt.Errorf("unknown command %q", c.Command)
	}
	return nil
}
