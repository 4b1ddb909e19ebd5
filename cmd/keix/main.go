// Package main provides the CLI entrypoint for keix.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/verte-zerg/keix/internal/config"
	"github.com/verte-zerg/keix/internal/keys"
	"github.com/verte-zerg/keix/internal/logging"
	"github.com/verte-zerg/keix/internal/model"
	"github.com/verte-zerg/keix/internal/stats"
	"github.com/verte-zerg/keix/internal/statsui"
	"github.com/verte-zerg/keix/internal/store"
	"github.com/verte-zerg/keix/internal/tui"
	"github.com/verte-zerg/keix/internal/typing"
)

const (
	defaultLang        = "en"
	defaultMode        = string(model.ModeTester)
	defaultReleaseMs   = 600
	defaultWeakTop     = 8
	defaultWeakFactor  = 2.0
	defaultWeakWindow  = 20
	defaultCurveWindow = 20
	defaultStatsWidth  = 80
)

var (
	appMode       string
	appLang       string
	appCorpus     string
	appSeed       int64
	appReleaseMs  int
	appNoHistory  bool
	appFocusWeak  bool
	appWeakTop    int
	appWeakFactor float64
	appWeakWindow int

	statsLang        string
	statsSince       string
	statsLast        int
	statsCurveWindow int
	statsPlain       bool

	phrasesLang   string
	phrasesCorpus string
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "keix",
		Short:         "Keyboard switch tester and typing speed test",
		SilenceUsage:  true,
		SilenceErrors: false,
		Args:          cobra.NoArgs,
		RunE:          runAppCmd,
	}

	rootCmd.Flags().StringVar(&appMode, "mode", defaultMode, "initial view: tester or typing")
	rootCmd.Flags().StringVar(&appLang, "lang", defaultLang, "UI and corpus language (en, ru)")
	rootCmd.Flags().StringVar(&appCorpus, "corpus", "", "file with one phrase per line (default: built-in corpus)")
	rootCmd.Flags().Int64Var(&appSeed, "seed", 0, "phrase picker seed (0 uses the clock)")
	rootCmd.Flags().IntVar(&appReleaseMs, "release-ms", defaultReleaseMs, "milliseconds without a repeat before a key counts as released")
	rootCmd.Flags().BoolVar(&appNoHistory, "no-history", false, "do not record attempts")
	rootCmd.Flags().BoolVar(&appFocusWeak, "focus-weak", false, "bias phrases toward weak characters")
	rootCmd.Flags().IntVar(&appWeakTop, "weak-top", defaultWeakTop, "number of weak characters to focus on")
	rootCmd.Flags().Float64Var(&appWeakFactor, "weak-factor", defaultWeakFactor, "weight factor for weak characters")
	rootCmd.Flags().IntVar(&appWeakWindow, "weak-window", defaultWeakWindow, "number of recent attempts to compute weak chars")

	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newStatsCmd())
	rootCmd.AddCommand(newPhrasesCmd())
	rootCmd.AddCommand(newKeysCmd())

	return rootCmd
}

func runAppCmd(cmd *cobra.Command, _ []string) error {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	envCfg, err := config.ParseEnv()
	if err != nil {
		return fmt.Errorf("failed to load environment: %w", err)
	}
	cfg := resolveConfig(cmd, fileCfg, envCfg)
	if err := validateConfig(cfg); err != nil {
		return err
	}
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return fmt.Errorf("keix needs an interactive terminal")
	}

	logger, logCloser, err := logging.New(resolveLogOptions(fileCfg, envCfg))
	if err != nil {
		return fmt.Errorf("failed to set up logging: %w", err)
	}
	defer func() {
		if cerr := logCloser.Close(); cerr != nil {
			logErrf("failed to close log: %v\n", cerr)
		}
	}()

	corpus, err := loadCorpus(cfg.Lang, cfg.CorpusPath)
	if err != nil {
		return err
	}

	opts := tui.Options{
		Config: cfg,
		Corpus: corpus,
		Logger: logger,
	}
	if cfg.History {
		st, err := store.Open(config.DefaultDBPath())
		if err != nil {
			return fmt.Errorf("failed to open db: %w", err)
		}
		defer func() {
			if cerr := st.Close(); cerr != nil {
				logErrf("failed to close db: %v\n", cerr)
			}
		}()
		opts.Recorder = st
	}

	logger.Info("starting", "mode", cfg.Mode, "lang", cfg.Lang, "phrases", len(corpus), "history", cfg.History)
	app := tui.NewApp(opts)
	defer app.Close()
	program := tea.NewProgram(app, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := program.Run(); err != nil {
		logger.Error("program failed", "error", err)
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	return nil
}

// resolveConfig merges defaults, the config file, KEIX_* variables and flags.
// Flags win over the environment, the environment over the file.
func resolveConfig(cmd *cobra.Command, fileCfg config.FileConfig, envCfg config.EnvConfig) model.Config {
	applyConfig(cmd, "lang", &appLang, fileCfg.General.Lang)
	applyConfig(cmd, "mode", &appMode, fileCfg.General.Mode)
	applyConfig(cmd, "release-ms", &appReleaseMs, fileCfg.Tester.ReleaseMs)
	applyConfig(cmd, "corpus", &appCorpus, fileCfg.Typing.Corpus)
	applyConfig(cmd, "seed", &appSeed, fileCfg.Typing.Seed)
	applyConfig(cmd, "focus-weak", &appFocusWeak, fileCfg.Typing.FocusWeak)
	applyConfig(cmd, "weak-top", &appWeakTop, fileCfg.Typing.WeakTop)
	applyConfig(cmd, "weak-factor", &appWeakFactor, fileCfg.Typing.WeakFactor)
	applyConfig(cmd, "weak-window", &appWeakWindow, fileCfg.Typing.WeakWindow)
	if fileCfg.Typing.History != nil && !cmd.Flags().Changed("no-history") {
		appNoHistory = !*fileCfg.Typing.History
	}

	applyConfig(cmd, "lang", &appLang, envCfg.Lang)
	applyConfig(cmd, "mode", &appMode, envCfg.Mode)
	applyConfig(cmd, "release-ms", &appReleaseMs, envCfg.ReleaseMs)
	applyConfig(cmd, "corpus", &appCorpus, envCfg.Corpus)
	applyConfig(cmd, "seed", &appSeed, envCfg.Seed)
	applyConfig(cmd, "no-history", &appNoHistory, envCfg.NoHistory)
	applyConfig(cmd, "focus-weak", &appFocusWeak, envCfg.FocusWeak)
	applyConfig(cmd, "weak-top", &appWeakTop, envCfg.WeakTop)
	applyConfig(cmd, "weak-factor", &appWeakFactor, envCfg.WeakFactor)
	applyConfig(cmd, "weak-window", &appWeakWindow, envCfg.WeakWindow)

	return model.Config{
		Lang:       strings.ToLower(strings.TrimSpace(appLang)),
		Mode:       model.Mode(strings.ToLower(strings.TrimSpace(appMode))),
		CorpusPath: appCorpus,
		Seed:       appSeed,
		ReleaseMs:  appReleaseMs,
		History:    !appNoHistory,
		FocusWeak:  appFocusWeak,
		WeakTop:    appWeakTop,
		WeakFactor: appWeakFactor,
		WeakWindow: appWeakWindow,
	}
}

// resolveLogOptions picks log settings from the environment, then the file.
// A level without a file logs to the default state path.
func resolveLogOptions(fileCfg config.FileConfig, envCfg config.EnvConfig) logging.Options {
	var opts logging.Options
	if fileCfg.Log.Level != nil {
		opts.Level = *fileCfg.Log.Level
	}
	if fileCfg.Log.Format != nil {
		opts.Format = *fileCfg.Log.Format
	}
	if fileCfg.Log.File != nil {
		opts.Path = *fileCfg.Log.File
	}
	if envCfg.LogLevel != nil {
		opts.Level = *envCfg.LogLevel
	}
	if envCfg.LogFormat != nil {
		opts.Format = *envCfg.LogFormat
	}
	if envCfg.LogFile != nil {
		opts.Path = *envCfg.LogFile
	}
	if opts.Path == "" && opts.Level != "" {
		opts.Path = config.DefaultLogPath()
	}
	return opts
}

func loadCorpus(lang, path string) (typing.Corpus, error) {
	if path != "" {
		corpus, err := typing.LoadCorpus(path)
		if err != nil {
			return nil, fmt.Errorf("failed to load corpus %s: %w", path, err)
		}
		return corpus, nil
	}
	corpus, ok := typing.BuiltinCorpus(lang)
	if !ok {
		return nil, fmt.Errorf("no built-in corpus for language %q (available: %s); use --corpus",
			lang, strings.Join(typing.BuiltinLangs(), ", "))
	}
	return corpus, nil
}

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Create/open config file",
		Args:  cobra.NoArgs,
		RunE:  runConfigCmd,
	}
}

func runConfigCmd(_ *cobra.Command, _ []string) error {
	path := config.DefaultConfigPath()
	if err := writeConfigTemplate(path); err != nil {
		return err
	}

	editor := strings.TrimSpace(os.Getenv("EDITOR"))
	if editor == "" {
		editor = "vi"
	}
	parts := strings.Fields(editor)
	cmd := exec.Command(parts[0], append(parts[1:], path)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to open editor: %w", err)
	}
	return nil
}

// writeConfigTemplate creates the commented template unless path exists.
func writeConfigTemplate(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if _, err := os.Stat(path); err == nil {
		return nil
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("failed to stat config: %w", err)
	}
	if err := os.WriteFile(path, []byte(defaultConfigTemplate()), 0o644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

func newStatsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show typing history",
		Args:  cobra.NoArgs,
		RunE:  runStatsCmd,
	}
	cmd.Flags().StringVar(&statsLang, "lang", "", "language filter")
	cmd.Flags().StringVar(&statsSince, "since", "", "start date (YYYY-MM-DD)")
	cmd.Flags().IntVar(&statsLast, "last", 0, "limit to last N attempts")
	cmd.Flags().IntVar(&statsCurveWindow, "curve-window", defaultCurveWindow, "moving average window")
	cmd.Flags().BoolVar(&statsPlain, "plain", false, "print a plain text report")
	return cmd
}

func runStatsCmd(cmd *cobra.Command, _ []string) error {
	cfg, err := statsConfig()
	if err != nil {
		return err
	}

	st, err := store.Open(config.DefaultDBPath())
	if err != nil {
		return fmt.Errorf("failed to open db: %w", err)
	}
	defer func() {
		if cerr := st.Close(); cerr != nil {
			logErrf("failed to close db: %v\n", cerr)
		}
	}()

	fd := int(os.Stdout.Fd())
	if statsPlain || !term.IsTerminal(fd) {
		width := defaultStatsWidth
		if w, _, err := term.GetSize(fd); err == nil && w > 0 {
			width = w
		}
		return writePlainStats(cmd.Context(), cmd.OutOrStdout(), st, cfg, width)
	}

	ui := statsui.NewModel(st, cfg)
	program := tea.NewProgram(ui, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run stats TUI: %w", err)
	}
	return nil
}

func statsConfig() (model.StatsConfig, error) {
	if statsLast < 0 {
		return model.StatsConfig{}, fmt.Errorf("--last must be >= 0")
	}
	if statsCurveWindow < 1 {
		return model.StatsConfig{}, fmt.Errorf("--curve-window must be >= 1")
	}
	cfg := model.StatsConfig{
		Lang:        strings.TrimSpace(statsLang),
		Last:        statsLast,
		CurveWindow: statsCurveWindow,
	}
	if statsSince != "" {
		parsed, err := time.ParseInLocation("2006-01-02", statsSince, time.Local)
		if err != nil {
			return model.StatsConfig{}, fmt.Errorf("invalid --since value: %w", err)
		}
		cfg.Since = &parsed
	}
	return cfg, nil
}

func writePlainStats(ctx context.Context, w io.Writer, src stats.Source, cfg model.StatsConfig, width int) error {
	report, err := stats.BuildReport(ctx, src, cfg)
	if err != nil {
		return fmt.Errorf("failed to build report: %w", err)
	}
	if err := report.Render(w, cfg.CurveWindow, width); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func newPhrasesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "phrases",
		Short: "List the phrases used by the typing test",
		Args:  cobra.NoArgs,
		RunE:  runPhrasesCmd,
	}
	cmd.Flags().StringVar(&phrasesLang, "lang", defaultLang, "built-in corpus language")
	cmd.Flags().StringVar(&phrasesCorpus, "corpus", "", "file with one phrase per line")
	return cmd
}

func runPhrasesCmd(cmd *cobra.Command, _ []string) error {
	corpus, err := loadCorpus(strings.ToLower(strings.TrimSpace(phrasesLang)), phrasesCorpus)
	if err != nil {
		return err
	}
	for _, phrase := range corpus {
		if _, err := fmt.Fprintln(cmd.OutOrStdout(), phrase); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	}
	return nil
}

func newKeysCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "keys",
		Short: "List the keys the switch tester knows",
		Args:  cobra.NoArgs,
		RunE:  runKeysCmd,
	}
}

func runKeysCmd(cmd *cobra.Command, _ []string) error {
	return writeKeys(cmd.OutOrStdout())
}

func writeKeys(w io.Writer) error {
	for _, section := range keys.Sections() {
		if _, err := fmt.Fprintf(w, "[%s]\n", section.Name); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
		for _, row := range section.Rows {
			for _, id := range row {
				if _, err := fmt.Fprintf(w, "%-14s %s\n", id, keys.Label(id)); err != nil {
					return fmt.Errorf("failed to write output: %w", err)
				}
			}
		}
	}
	return nil
}

func applyConfig[T any](cmd *cobra.Command, name string, target, value *T) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func defaultConfigTemplate() string {
	return fmt.Sprintf(`# keix configuration
# Uncomment a value to enable it. KEIX_* variables override the file;
# CLI flags override both.

[general]
# lang = %q               # UI and corpus language (en, ru)
# mode = %q           # Initial view: tester or typing

[tester]
# release-ms = %d          # Milliseconds without a repeat before a key is released

[typing]
# corpus = ""              # File with one phrase per line
# seed = 0                 # Phrase picker seed (0 uses the clock)
# history = true           # Record finished attempts
# focus-weak = false       # Bias phrases toward weak characters
# weak-top = %d             # Number of weak characters to focus on
# weak-factor = %.1f       # Weight factor for weak characters
# weak-window = %d         # Number of recent attempts to compute weak chars

[log]
# level = "info"           # debug, info, warn, error
# format = "text"          # text or json
# file = %q
`,
		defaultLang,
		defaultMode,
		defaultReleaseMs,
		defaultWeakTop,
		defaultWeakFactor,
		defaultWeakWindow,
		config.DefaultLogPath(),
	)
}

func validateConfig(cfg model.Config) error {
	if cfg.Mode != model.ModeTester && cfg.Mode != model.ModeTyping {
		return fmt.Errorf("--mode must be %q or %q", model.ModeTester, model.ModeTyping)
	}
	if cfg.Lang == "" {
		return fmt.Errorf("--lang must not be empty")
	}
	if cfg.ReleaseMs <= 0 {
		return fmt.Errorf("--release-ms must be > 0")
	}
	if cfg.WeakTop < 0 {
		return fmt.Errorf("--weak-top must be >= 0")
	}
	if cfg.WeakFactor < 0 {
		return fmt.Errorf("--weak-factor must be >= 0")
	}
	if cfg.WeakWindow < 0 {
		return fmt.Errorf("--weak-window must be >= 0")
	}
	return nil
}

func logErrf(format string, args ...any) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}
