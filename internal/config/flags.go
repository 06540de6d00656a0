package config

// This file implements CLI flag parsing and help text.
// Negated flags (e.g. --no-name-check) are applied after Parse so Config
// defaults hold unless set. Config file values fill in whatever the command
// line left unset.

import (
	"flag"
	"fmt"
	"io"
	"strings"
)

// ParseArgs parses args (without the program name) into cfg and loads the
// config file. --help and --version only set ShowHelp and ShowVersion; the
// caller prints and exits.
func ParseArgs(cfg *Config, args []string) error {
	fs := flag.NewFlagSet("batchrename", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var negated negatedFlags
	defineBatchFlags(fs, cfg)
	defineBehaviorFlags(fs, cfg, &negated)
	defineDisplayFlags(fs, cfg, &negated)
	defineUtilityFlags(fs, cfg)

	if len(args) > 0 && args[0] == "template" {
		if len(args) < 2 {
			return fmt.Errorf("template: need a subcommand (dump, apply, edit or list)")
		}
		switch args[1] {
		case "dump":
			cfg.Command = CommandTemplateDump
		case "apply":
			cfg.Command = CommandTemplateApply
		case "edit":
			cfg.Command = CommandTemplateEdit
		case "list":
			cfg.Command = CommandTemplateList
		default:
			return fmt.Errorf("template: unknown subcommand %q", args[1])
		}
		args = args[2:]
	}

	positional, err := parseInterspersed(fs, args)
	if err != nil {
		return err
	}

	explicit := make(map[string]bool)
	fs.Visit(func(f *flag.Flag) { explicit[f.Name] = true })

	applyNegatedFlags(cfg, &negated)

	if cfg.ShowHelp || cfg.ShowVersion {
		return nil
	}

	if err := loadConfigFile(cfg, explicit); err != nil {
		return err
	}

	return parsePositionalArgs(cfg, positional)
}

// parseInterspersed allows flags after positional arguments. Everything
// after "--" is positional, so patterns may start with a dash.
func parseInterspersed(fs *flag.FlagSet, args []string) ([]string, error) {
	var positional []string
	for {
		if err := fs.Parse(args); err != nil {
			return nil, err
		}
		rest := fs.Args()
		consumed := len(args) - len(rest)
		if consumed > 0 && args[consumed-1] == "--" {
			return append(positional, rest...), nil
		}
		if len(rest) == 0 {
			return positional, nil
		}
		positional = append(positional, rest[0])
		args = rest[1:]
	}
}

func loadConfigFile(cfg *Config, explicit map[string]bool) error {
	path, err := ResolveFile(cfg.ConfigFile)
	if err != nil || path == "" {
		return err
	}

	f, err := LoadFile(path)
	if err != nil {
		return err
	}
	cfg.ConfigFile = path
	return f.apply(cfg, explicit)
}

// negatedFlags holds boolean flags that are applied after Parse.
type negatedFlags struct {
	noNameCheck bool
	forceColor  bool
	noColor     bool
}

// defineBatchFlags registers the switches that shape the batch.
func defineBatchFlags(fs *flag.FlagSet, cfg *Config) {
	fs.BoolVar(&cfg.UseRegex, "regex", cfg.UseRegex, "Treat the pattern as a regular expression")
	fs.BoolVar(&cfg.UseRegex, "r", cfg.UseRegex, "Same as --regex")
	fs.BoolVar(&cfg.ModifyExtension, "extension", cfg.ModifyExtension, "Also match and replace in file extensions")
	fs.BoolVar(&cfg.ModifyExtension, "e", cfg.ModifyExtension, "Same as --extension")
	fs.BoolVar(&cfg.Recursive, "recursive", cfg.Recursive, "Include subdirectories")
	fs.BoolVar(&cfg.Recursive, "s", cfg.Recursive, "Same as --recursive")
	fs.BoolVar(&cfg.Folders, "folders", cfg.Folders, "Rename folders instead of files")
	fs.BoolVar(&cfg.Folders, "d", cfg.Folders, "Same as --folders")
}

// defineBehaviorFlags registers dry-run, yes, name checks and file locations.
func defineBehaviorFlags(fs *flag.FlagSet, cfg *Config, n *negatedFlags) {
	fs.BoolVar(&cfg.DryRun, "dry-run", false, "Preview only; do not rename")
	fs.BoolVar(&cfg.DryRun, "n", false, "Same as --dry-run")
	fs.BoolVar(&cfg.AssumeYes, "yes", false, "Do not ask for confirmation")
	fs.BoolVar(&cfg.AssumeYes, "y", false, "Same as --yes")
	fs.BoolVar(&n.noNameCheck, "no-name-check", false, "Let the filesystem decide which names are valid")
	fs.StringVar(&cfg.ConfigFile, "config", "", "Config file path")
	fs.StringVar(&cfg.StateDir, "state-dir", cfg.StateDir, "Directory holding template snapshots")
}

// defineDisplayFlags registers --color, --no-color, verbose and --log.
func defineDisplayFlags(fs *flag.FlagSet, cfg *Config, n *negatedFlags) {
	fs.BoolVar(&n.forceColor, "color", false, "Force colored output")
	fs.BoolVar(&n.noColor, "no-color", false, "Disable colored output")
	fs.BoolVar(&cfg.Verbose, "verbose", false, "Verbose output")
	fs.BoolVar(&cfg.Verbose, "v", false, "Same as --verbose")
	fs.StringVar(&cfg.LogFile, "log", "", "Append logs to file")
	fs.StringVar(&cfg.LogFile, "l", "", "Same as --log")
}

// defineUtilityFlags registers --version and --help.
func defineUtilityFlags(fs *flag.FlagSet, cfg *Config) {
	fs.BoolVar(&cfg.ShowVersion, "version", false, "Print version and exit")
	fs.BoolVar(&cfg.ShowVersion, "V", false, "Same as --version")
	fs.BoolVar(&cfg.ShowHelp, "help", false, "Show this help and exit")
	fs.BoolVar(&cfg.ShowHelp, "h", false, "Same as --help")
}

// applyNegatedFlags copies negated and override flag values into cfg.
func applyNegatedFlags(cfg *Config, n *negatedFlags) {
	if n.noNameCheck {
		cfg.NameCheck = false
	}
	if n.noColor {
		cfg.ColorMode = ColorNever
	} else if n.forceColor {
		cfg.ColorMode = ColorAlways
	}
}

// parsePositionalArgs assigns the positional arguments of the command.
func parsePositionalArgs(cfg *Config, args []string) error {
	switch cfg.Command {
	case CommandTemplateList:
		if len(args) != 0 {
			return fmt.Errorf("template list takes no arguments")
		}
	case CommandTemplateDump, CommandTemplateApply, CommandTemplateEdit:
		if len(args) != 1 {
			return fmt.Errorf("%s: need exactly one root directory", cfg.Command)
		}
		cfg.Root = args[0]
	default:
		if len(args) < 2 || len(args) > 3 {
			return fmt.Errorf("need <root> <pattern> [replacement]")
		}
		cfg.Root = args[0]
		cfg.Pattern = args[1]
		if len(args) == 3 {
			cfg.Replacement = args[2]
		}
	}
	return nil
}

// PrintUsage writes the help text to w. Column-aligned for readability.
func PrintUsage(w io.Writer, version string) {
	const col1 = 28 // width of "  -x, --long-name <arg>  "
	lines := []struct {
		flags string
		desc  string
	}{
		{"", "batchrename v" + version + ": search and replace in file and folder names"},
		{"", ""},
		{"  batchrename [OPTIONS] <root> <pattern> [replacement]", ""},
		{"  batchrename template dump|apply|edit [OPTIONS] <root>", ""},
		{"  batchrename template list", ""},
		{"", ""},
		{"Matching", ""},
		{"  -r, --regex", "Pattern is a regular expression ($1, ${name} in replacement)"},
		{"  -e, --extension", "Also rename file extensions"},
		{"  -s, --recursive", "Include subdirectories"},
		{"  -d, --folders", "Rename folders instead of files"},
		{"", ""},
		{"Behavior", ""},
		{"  -n, --dry-run", "Preview only; do not rename"},
		{"  -y, --yes", "Do not ask for confirmation"},
		{"  --no-name-check", "Skip portable file name validation"},
		{"  --config <path>", "Config file (default: ./" + LocalFileName + ", then XDG)"},
		{"  --state-dir <path>", "Template snapshot directory (default: " + DefaultStateDir + ")"},
		{"", ""},
		{"Display", ""},
		{"  --color", "Force colored output"},
		{"  --no-color", "Disable colored output"},
		{"  -v, --verbose", "Verbose output"},
		{"  -l, --log <path>", "Append logs to file"},
		{"", ""},
		{"Utility", ""},
		{"  -V, --version", "Print version and exit"},
		{"  -h, --help", "Show this help and exit"},
	}

	for _, l := range lines {
		if l.flags == "" && l.desc == "" {
			fmt.Fprintln(w)
			continue
		}
		if l.desc == "" {
			fmt.Fprintln(w, l.flags)
			continue
		}
		if l.flags == "" {
			fmt.Fprintln(w, l.desc)
			continue
		}
		padding := col1 - len(l.flags)
		if padding < 1 {
			padding = 1
		}
		fmt.Fprintf(w, "%s%*s%s\n", l.flags, padding, "", l.desc)
	}
}

// colorModeValue adapts ColorMode to flag.Value style parsing.
type colorModeValue struct{ p *ColorMode }

func (c *colorModeValue) String() string { return string(*c.p) }
func (c *colorModeValue) Set(s string) error {
	switch strings.ToLower(s) {
	case "auto":
		*c.p = ColorAuto
	case "always":
		*c.p = ColorAlways
	case "never":
		*c.p = ColorNever
	default:
		return fmt.Errorf("invalid color mode %q (use 'auto', 'always' or 'never')", s)
	}
	return nil
}
