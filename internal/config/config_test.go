package config

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// isolate keeps the lookup order away from the developer's own files.
func isolate(t *testing.T) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	chdir(t, t.TempDir())
}

func parse(t *testing.T, args ...string) (Config, error) {
	t.Helper()
	cfg := DefaultConfig()
	err := ParseArgs(&cfg, args)
	return cfg, err
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Command != CommandRename || !cfg.NameCheck || cfg.ColorMode != ColorAuto || cfg.StateDir != DefaultStateDir {
		t.Errorf("unexpected defaults: %+v", cfg)
	}
}

func TestParseArgs_Rename(t *testing.T) {
	isolate(t)

	tests := []struct {
		name  string
		args  []string
		check func(t *testing.T, cfg Config)
	}{
		{
			name: "positional only",
			args: []string{"dir", "foo", "bar"},
			check: func(t *testing.T, cfg Config) {
				if cfg.Root != "dir" || cfg.Pattern != "foo" || cfg.Replacement != "bar" {
					t.Errorf("positional = %q %q %q", cfg.Root, cfg.Pattern, cfg.Replacement)
				}
			},
		},
		{
			name: "replacement omitted deletes matches",
			args: []string{"dir", "foo"},
			check: func(t *testing.T, cfg Config) {
				if cfg.Replacement != "" {
					t.Errorf("Replacement = %q", cfg.Replacement)
				}
			},
		},
		{
			name: "short flags",
			args: []string{"-r", "-e", "-s", "-d", "-n", "-y", "-v", "dir", `(\d+)`, "[$1]"},
			check: func(t *testing.T, cfg Config) {
				f := cfg.Flags()
				if !f.UseRegex || !f.ModifyExtension || !f.IncludeSubdirectories || !f.RenameFolders {
					t.Errorf("flags = %+v", f)
				}
				if !cfg.DryRun || !cfg.AssumeYes || !cfg.Verbose {
					t.Errorf("behavior = %+v", cfg)
				}
			},
		},
		{
			name: "long flags after positional arguments",
			args: []string{"dir", "foo", "bar", "--regex", "--recursive", "--no-name-check"},
			check: func(t *testing.T, cfg Config) {
				if !cfg.UseRegex || !cfg.Recursive || cfg.NameCheck {
					t.Errorf("cfg = %+v", cfg)
				}
			},
		},
		{
			name: "double dash allows dash patterns",
			args: []string{"-n", "--", "dir", "-old", "-new"},
			check: func(t *testing.T, cfg Config) {
				if cfg.Pattern != "-old" || cfg.Replacement != "-new" || !cfg.DryRun {
					t.Errorf("cfg = %+v", cfg)
				}
			},
		},
		{
			name: "color flags",
			args: []string{"--color", "dir", "x"},
			check: func(t *testing.T, cfg Config) {
				if cfg.ColorMode != ColorAlways {
					t.Errorf("ColorMode = %q", cfg.ColorMode)
				}
			},
		},
		{
			name: "no-color wins over color",
			args: []string{"--color", "--no-color", "dir", "x"},
			check: func(t *testing.T, cfg Config) {
				if cfg.ColorMode != ColorNever {
					t.Errorf("ColorMode = %q", cfg.ColorMode)
				}
			},
		},
		{
			name: "input",
			args: []string{"-s", "root", "a", "b"},
			check: func(t *testing.T, cfg Config) {
				in := cfg.Input()
				if in.Root != "root" || in.Pattern != "a" || in.Replacement != "b" || !in.Flags.IncludeSubdirectories {
					t.Errorf("Input() = %+v", in)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := parse(t, tt.args...)
			if err != nil {
				t.Fatalf("ParseArgs failed: %v", err)
			}
			if err := cfg.Validate(); err != nil {
				t.Fatalf("Validate failed: %v", err)
			}
			tt.check(t, cfg)
		})
	}
}

func TestParseArgs_Template(t *testing.T) {
	isolate(t)

	tests := []struct {
		args    []string
		command Command
		root    string
	}{
		{[]string{"template", "dump", "dir"}, CommandTemplateDump, "dir"},
		{[]string{"template", "apply", "dir"}, CommandTemplateApply, "dir"},
		{[]string{"template", "edit", "-d", "dir"}, CommandTemplateEdit, "dir"},
		{[]string{"template", "list"}, CommandTemplateList, ""},
	}

	for _, tt := range tests {
		t.Run(strings.Join(tt.args, " "), func(t *testing.T) {
			cfg, err := parse(t, tt.args...)
			if err != nil {
				t.Fatalf("ParseArgs failed: %v", err)
			}
			if cfg.Command != tt.command || cfg.Root != tt.root {
				t.Errorf("command = %q root = %q", cfg.Command, cfg.Root)
			}
			if err := cfg.Validate(); err != nil {
				t.Errorf("Validate failed: %v", err)
			}
		})
	}
}

func TestParseArgs_Errors(t *testing.T) {
	isolate(t)

	tests := [][]string{
		{"dir"},
		{"a", "b", "c", "d"},
		{"--bogus", "dir", "x"},
		{"template"},
		{"template", "frobnicate", "dir"},
		{"template", "dump"},
		{"template", "list", "extra"},
		{"--config", "/does/not/exist.toml", "dir", "x"},
	}
	for _, args := range tests {
		t.Run(strings.Join(args, " "), func(t *testing.T) {
			if _, err := parse(t, args...); err == nil {
				t.Errorf("ParseArgs(%q) should fail", args)
			}
		})
	}
}

func TestParseArgs_HelpAndVersion(t *testing.T) {
	isolate(t)

	cfg, err := parse(t, "-h")
	if err != nil || !cfg.ShowHelp {
		t.Errorf("-h: cfg.ShowHelp = %v, err = %v", cfg.ShowHelp, err)
	}
	cfg, err = parse(t, "--version")
	if err != nil || !cfg.ShowVersion {
		t.Errorf("--version: cfg.ShowVersion = %v, err = %v", cfg.ShowVersion, err)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate with --version: %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"valid rename", func(c *Config) { c.Root, c.Pattern = "r", "p" }, false},
		{"missing pattern", func(c *Config) { c.Root = "r" }, true},
		{"missing root", func(c *Config) { c.Pattern = "p" }, true},
		{"bad color", func(c *Config) { c.Root, c.Pattern, c.ColorMode = "r", "p", "rainbow" }, true},
		{"empty state dir", func(c *Config) { c.Root, c.Pattern, c.StateDir = "r", "p", "" }, true},
		{"template without root", func(c *Config) { c.Command = CommandTemplateDump }, true},
		{"template list", func(c *Config) { c.Command = CommandTemplateList }, false},
		{"unknown command", func(c *Config) { c.Command = "explode" }, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			if err := cfg.Validate(); (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestConfigFile(t *testing.T) {
	isolate(t)

	content := `
regex = true
recursive = true
name_check = false
color = "never"
state_dir = "/tmp/state"
`
	if err := os.WriteFile(LocalFileName, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	t.Run("local file supplies defaults", func(t *testing.T) {
		cfg, err := parse(t, "dir", "x")
		if err != nil {
			t.Fatalf("ParseArgs failed: %v", err)
		}
		if !cfg.UseRegex || !cfg.Recursive || cfg.NameCheck {
			t.Errorf("file values not applied: %+v", cfg)
		}
		if cfg.ColorMode != ColorNever || cfg.StateDir != "/tmp/state" {
			t.Errorf("file values not applied: %+v", cfg)
		}
		if cfg.ConfigFile != LocalFileName {
			t.Errorf("ConfigFile = %q", cfg.ConfigFile)
		}
	})

	t.Run("flags win over the file", func(t *testing.T) {
		cfg, err := parse(t, "--color", "--state-dir", "/elsewhere", "dir", "x")
		if err != nil {
			t.Fatalf("ParseArgs failed: %v", err)
		}
		if cfg.ColorMode != ColorAlways || cfg.StateDir != "/elsewhere" {
			t.Errorf("flags overridden by file: %+v", cfg)
		}
	})

	t.Run("explicit file", func(t *testing.T) {
		other := filepath.Join(t.TempDir(), "other.toml")
		os.WriteFile(other, []byte("folders = true\n"), 0o644)

		cfg, err := parse(t, "--config", other, "dir", "x")
		if err != nil {
			t.Fatalf("ParseArgs failed: %v", err)
		}
		if !cfg.Folders || cfg.UseRegex {
			t.Errorf("explicit file not used exclusively: %+v", cfg)
		}
	})
}

func TestLoadFile_Errors(t *testing.T) {
	dir := t.TempDir()

	unknown := filepath.Join(dir, "unknown.toml")
	os.WriteFile(unknown, []byte("editor = \"vim\"\n"), 0o644)
	if _, err := LoadFile(unknown); err == nil || !strings.Contains(err.Error(), "editor") {
		t.Errorf("LoadFile(unknown key) = %v", err)
	}

	broken := filepath.Join(dir, "broken.toml")
	os.WriteFile(broken, []byte("regex = \n"), 0o644)
	if _, err := LoadFile(broken); err == nil {
		t.Error("LoadFile(broken) should fail")
	}

	badColor := filepath.Join(dir, "color.toml")
	os.WriteFile(badColor, []byte("color = \"rainbow\"\n"), 0o644)
	f, err := LoadFile(badColor)
	if err != nil {
		t.Fatalf("LoadFile failed: %v", err)
	}
	cfg := DefaultConfig()
	if err := f.apply(&cfg, nil); err == nil {
		t.Error("apply with bad color should fail")
	}
}

func TestResolveFile_XDG(t *testing.T) {
	isolate(t)

	xdg := os.Getenv("XDG_CONFIG_HOME")
	path := filepath.Join(xdg, "batchrename", "config.toml")
	os.MkdirAll(filepath.Dir(path), 0o755)
	os.WriteFile(path, []byte("yes = true\n"), 0o644)

	got, err := ResolveFile("")
	if err != nil || got != path {
		t.Errorf("ResolveFile = (%q, %v), want %q", got, err, path)
	}
}

func TestPrintUsage(t *testing.T) {
	var buf bytes.Buffer
	PrintUsage(&buf, "1.2.3")

	out := buf.String()
	for _, want := range []string{"batchrename v1.2.3", "--regex", "template dump", "--dry-run"} {
		if !strings.Contains(out, want) {
			t.Errorf("usage missing %q", want)
		}
	}
}

// chdir changes the working directory for the rest of the test.
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { os.Chdir(old) })
}
