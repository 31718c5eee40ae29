package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/Coneja-Chibi/Cotton-Tales-sub001/core/lint"
	"github.com/Coneja-Chibi/Cotton-Tales-sub001/internal/config"
	"github.com/Coneja-Chibi/Cotton-Tales-sub001/providers/observability/slogobs"
)

// app holds flag values and what setup builds from them.
type app struct {
	configPath  string
	envFile     string
	logLevel    string
	logFormat   string
	compact     bool
	strict      bool
	noFallback  bool
	concurrency int
	expressions []string
	backgrounds []string
	characters  []string

	cfg      *config.Config
	observer *slogobs.Observer
	linter   *lint.Linter
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "scenelint",
		Short: "Recover visual-novel scene data from LLM responses",
		Long: `scenelint finds the scene JSON an LLM was asked to produce, repairs it,
normalizes it to {scene, characters, choices} and falls back to mining the
prose when no usable JSON is present.

Input is read from the file named as argument, or from stdin.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}

	flags := root.PersistentFlags()
	flags.StringVarP(&a.configPath, "config", "c", "", "YAML config file (or set "+config.EnvConfig+")")
	flags.StringVar(&a.envFile, "env-file", "", "Load environment variables from this file")
	flags.StringVar(&a.logLevel, "log-level", "", "Log level: trace, debug, info, warn, error (default warn)")
	flags.StringVar(&a.logFormat, "log-format", "", "Log format: compact, pretty, json")
	flags.BoolVar(&a.compact, "compact", false, "Print JSON on a single line")
	flags.BoolVar(&a.strict, "strict", false, "Record strict mode in the output")
	flags.BoolVar(&a.noFallback, "no-fallback", false, "Disable prose mining when no JSON survives")
	flags.IntVar(&a.concurrency, "concurrency", 0, "Batch parallelism (0 = one per CPU)")
	flags.StringSliceVar(&a.expressions, "expression", nil, "Valid expression label (repeatable)")
	flags.StringSliceVar(&a.backgrounds, "background", nil, "Valid background identifier (repeatable)")
	flags.StringSliceVar(&a.characters, "character", nil, "Known character name (repeatable)")

	root.AddCommand(
		a.lintCmd(),
		a.diagnoseCmd(),
		a.stripCmd(),
		a.checkCmd(),
		a.batchCmd(),
		a.schemaCmd(),
	)
	return root
}

// setup loads the environment and config, applies flag overrides and builds
// the observer and linter shared by every subcommand.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	if a.envFile != "" {
		if err := godotenv.Overload(a.envFile); err != nil {
			return fmt.Errorf("failed to load env file: %w", err)
		}
	}

	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("strict") {
		cfg.Strict = a.strict
	}
	if flags.Changed("no-fallback") {
		cfg.AllowFallback = !a.noFallback
	}
	if flags.Changed("concurrency") {
		cfg.Concurrency = a.concurrency
	}
	if len(a.expressions) > 0 {
		cfg.Vocabulary.Expressions = a.expressions
	}
	if len(a.backgrounds) > 0 {
		cfg.Vocabulary.Backgrounds = a.backgrounds
	}
	if len(a.characters) > 0 {
		cfg.Vocabulary.Characters = a.characters
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	a.cfg = cfg

	a.observer = slogobs.New(
		slogobs.WithLevel(slogobs.ParseLogLevel(a.level())),
		slogobs.WithFormat(slogobs.ParseFormat(a.format())),
		slogobs.WithOutput(cmd.ErrOrStderr()),
	)
	a.linter = lint.New(append(cfg.LintOptions(), lint.WithObserver(a.observer))...)
	return nil
}

// level resolves the log level: flag, then config file, then environment.
// The CLI defaults to warn so that stderr stays quiet on success.
func (a *app) level() string {
	for _, v := range []string{a.logLevel, a.cfg.Logging.Level, os.Getenv(slogobs.EnvLogLevel), os.Getenv("LOG_LEVEL")} {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return "warn"
}

func (a *app) format() string {
	for _, v := range []string{a.logFormat, a.cfg.Logging.Format} {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return slogobs.GetFormatFromEnv().String()
}

// readInput returns the contents of the file named by args[0], or stdin when
// no file or "-" is given.
func readInput(cmd *cobra.Command, args []string) (string, error) {
	if len(args) == 0 || args[0] == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", fmt.Errorf("failed to read stdin: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(args[0])
	if err != nil {
		return "", fmt.Errorf("failed to read input: %w", err)
	}
	return string(data), nil
}

func (a *app) writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	if !a.compact {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(v)
}
