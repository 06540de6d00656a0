// Command batchrename renames files or folders below a directory by search
// and replace, or through a hand-edited template file.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/tragoedia0722/batchrename/internal/config"
	"github.com/tragoedia0722/batchrename/internal/logging"
)

// version and commit are set at build time via -ldflags.
var (
	version = "0.1.0-dev"
	commit  = "unknown"
)

const (
	exitOK      = 0
	exitFailure = 1
	exitUsage   = 2
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	// 1. Defaults, config file and flags; usage errors exit 2.
	cfg := config.DefaultConfig()
	if err := config.ParseArgs(&cfg, args); err != nil {
		fmt.Fprintf(stderr, "batchrename: %v\n", err)
		fmt.Fprintln(stderr, "Try 'batchrename --help' for more information.")
		return exitUsage
	}

	if cfg.ShowHelp {
		config.PrintUsage(stdout, version)
		return exitOK
	}
	if cfg.ShowVersion {
		fmt.Fprintf(stdout, "batchrename v%s (%s)\n", version, commit)
		return exitOK
	}

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(stderr, "batchrename: %v\n", err)
		return exitUsage
	}

	log, err := logging.NewLogger(&cfg, stdout, stderr)
	if err != nil {
		fmt.Fprintf(stderr, "batchrename: %v\n", err)
		return exitFailure
	}
	defer log.Close()

	if cfg.ConfigFile != "" {
		log.Debug("config file: %s", cfg.ConfigFile)
	}

	// 2. Dispatch.
	switch cfg.Command {
	case config.CommandTemplateDump:
		return runTemplateDump(&cfg, log)
	case config.CommandTemplateApply:
		return runTemplateApply(&cfg, log)
	case config.CommandTemplateEdit:
		return runTemplateEdit(&cfg, log, stdin, stdout, stderr)
	case config.CommandTemplateList:
		return runTemplateList(&cfg, log)
	default:
		return runRename(&cfg, log, stdin, stdout)
	}
}
