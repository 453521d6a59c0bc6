package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/joho/godotenv/autoload"
	"github.com/san-kum/portfolio/internal/config"
	"github.com/san-kum/portfolio/internal/content"
	"github.com/san-kum/portfolio/internal/log"
	"github.com/spf13/cobra"
)

var (
	configFile  string
	contentFile string
	preset      string
	themeName   string
	seed        int64
	logLevel    string
	logFileName string

	count     int
	minValue  int
	maxValue  int
	stepDelay time.Duration
	pause     time.Duration

	// resolved in PersistentPreRunE
	cfg     *config.Config
	profile *content.Profile
	logFile *os.File
)

const interactive = "interactive"

// main registers the commands, launches the interactive portfolio when no
// subcommand is given and exits with status 1 if a command fails.
func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := newRootCmd().ExecuteContext(ctx)
	stop()
	if logFile != nil {
		logFile.Close()
	}
	if err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:               "portfolio",
		Short:             "terminal portfolio over a sorting animation",
		Annotations:       map[string]string{interactive: "true"},
		SilenceUsage:      true,
		PersistentPreRunE: setup,
		RunE:              runPortfolio,
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&configFile, "config", "", "config file path (yaml), defaults to $PORTFOLIO_CONFIG")
	pf.StringVar(&contentFile, "content", "", "profile override file (yaml)")
	pf.StringVar(&preset, "preset", "", "animation preset")
	pf.StringVar(&themeName, "theme", config.DefaultTheme, "color theme")
	pf.Int64Var(&seed, "seed", 0, "random seed, 0 for time based")
	pf.StringVar(&logLevel, "log-level", config.DefaultLogLevel, "log level")
	pf.StringVar(&logFileName, "log-file", "", "log file, interactive commands discard logs without one")
	pf.IntVar(&count, "count", config.DefaultConfig().Animation.Count, "number of bars")
	pf.IntVar(&minValue, "min", config.DefaultConfig().Animation.Min, "smallest bar value")
	pf.IntVar(&maxValue, "max", config.DefaultConfig().Animation.Max, "largest bar value")
	pf.DurationVar(&stepDelay, "step-delay", config.DefaultStepDelay, "delay after each swap")
	pf.DurationVar(&pause, "pause", config.DefaultPause, "dwell on the sorted sequence")

	rootCmd.AddCommand(
		newSortCmd(),
		newTraceCmd(),
		newPlotCmd(),
		newSVGCmd(),
		newPresetsCmd(),
		newContactCmd(),
		newConfigCmd(),
	)
	return rootCmd
}

// setup resolves the effective configuration. A preset replaces the
// animation defaults, a config file is decoded over the preset and flags
// set on the command line override both. LOG_LEVEL sits between the
// defaults and the config file.
func setup(cmd *cobra.Command, args []string) error {
	cfg = config.DefaultConfig()

	if preset != "" {
		p, ok := config.GetPreset(preset)
		if !ok {
			return fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		cfg.Apply(p)
	}
	if env := os.Getenv("LOG_LEVEL"); env != "" {
		cfg.Log.Level = env
	}

	path := configFile
	if path == "" {
		path = os.Getenv("PORTFOLIO_CONFIG")
	}
	if path != "" {
		if _, err := config.LoadInto(path, cfg); err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
	}

	flags := cmd.Flags()
	if flags.Changed("count") {
		cfg.Animation.Count = count
	}
	if flags.Changed("min") {
		cfg.Animation.Min = minValue
	}
	if flags.Changed("max") {
		cfg.Animation.Max = maxValue
	}
	if flags.Changed("step-delay") {
		cfg.Animation.StepDelay = stepDelay
	}
	if flags.Changed("pause") {
		cfg.Animation.Pause = pause
	}
	if flags.Changed("seed") {
		cfg.Animation.Seed = seed
	}
	if flags.Changed("theme") || cfg.Theme == "" {
		cfg.Theme = themeName
	}
	if flags.Changed("content") {
		cfg.Content = contentFile
	}
	if flags.Changed("log-level") || cfg.Log.Level == "" {
		cfg.Log.Level = logLevel
	}
	if flags.Changed("log-file") {
		cfg.Log.File = logFileName
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	if err := setupLogging(cmd.Annotations[interactive] == "true"); err != nil {
		return err
	}

	var err error
	if cfg.Content != "" {
		profile, err = content.Load(cfg.Content)
	} else {
		profile = content.Default()
	}
	if err != nil {
		return fmt.Errorf("failed to load content: %w", err)
	}

	l := log.WithComponent("cli")
	l.Debug().
		Str("command", cmd.Name()).
		Int("count", cfg.Animation.Count).
		Dur("step_delay", cfg.Animation.StepDelay).
		Str("theme", cfg.Theme).
		Msg("configuration resolved")
	return nil
}

// setupLogging sends logs to the configured file. Interactive commands
// own the terminal, so without a file their logs are dropped; the rest log
// to stderr.
func setupLogging(tty bool) error {
	log.Reset()
	if cfg.Log.File != "" {
		f, err := os.OpenFile(cfg.Log.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return fmt.Errorf("failed to open log file: %w", err)
		}
		logFile = f
		log.Configure(log.Config{Level: cfg.Log.Level, Output: f})
		return nil
	}
	if tty {
		log.Discard()
		return nil
	}
	log.Configure(log.Config{Level: cfg.Log.Level})
	return nil
}
