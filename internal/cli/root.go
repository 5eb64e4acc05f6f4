package cli

import (
	"fmt"
	"os"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/ezchuang/pomodoro4linux/internal/config"
	"github.com/ezchuang/pomodoro4linux/internal/core"
	"github.com/ezchuang/pomodoro4linux/internal/notify"
	"github.com/ezchuang/pomodoro4linux/internal/options"
	"github.com/ezchuang/pomodoro4linux/internal/storage"
	"github.com/ezchuang/pomodoro4linux/internal/ui"
)

const appID = "io.github.ezchuang.pomodoro4linux"

type flags struct {
	work       int
	rest       int
	configPath string
	dbPath     string
	noHistory  bool
	terminal   bool
	verbose    bool
}

func NewRootCommand() *cobra.Command {
	f := &flags{}
	cmd := &cobra.Command{
		Use:   "pomodoro4linux",
		Short: "Pomodoro timer in the system tray",
		Long: `pomodoro4linux alternates work and rest intervals from a tray icon.

The icon turns red while working and green while resting or paused; the
tooltip shows the time left. A dialog pops up when an interval ends.

Examples:
	# 25 minutes of work, 5 of rest
	pomodoro4linux

	# 50/10 in the terminal instead of the tray
	pomodoro4linux -w 50 -r 10 --tui`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, f)
		},
	}

	fl := cmd.Flags()
	fl.IntVarP(&f.work, "work", "w", options.DefaultWorkMinutes, "work interval in minutes")
	fl.IntVarP(&f.rest, "rest", "r", options.DefaultRestMinutes, "rest interval in minutes")
	fl.StringVar(&f.configPath, "config", config.DefaultPath(), "config file")
	fl.StringVar(&f.dbPath, "db", "", "history database (overrides config)")
	fl.BoolVar(&f.noHistory, "no-history", false, "do not record finished intervals")
	fl.BoolVar(&f.terminal, "tui", false, "run in the terminal instead of the system tray")
	fl.BoolVarP(&f.verbose, "verbose", "v", false, "debug logging")
	return cmd
}

func Execute() {
	if err := NewRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// resolve merges the config file with flags; flags win only when set.
func resolve(cmd *cobra.Command, f *flags) (*config.Config, error) {
	cfg, err := config.Load(f.configPath)
	if err != nil {
		return nil, err
	}
	if cmd.Flags().Changed("work") {
		if _, err := options.CheckMinutes("--work", f.work); err != nil {
			return nil, err
		}
		cfg.WorkMinutes = f.work
	}
	if cmd.Flags().Changed("rest") {
		if _, err := options.CheckMinutes("--rest", f.rest); err != nil {
			return nil, err
		}
		cfg.RestMinutes = f.rest
	}
	if f.dbPath != "" {
		cfg.Database = f.dbPath
	}
	if f.noHistory {
		cfg.Database = ""
	}
	// flags were checked above, so anything left came from the file
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", f.configPath, err)
	}
	return cfg, nil
}

func newLogger(verbose, terminal bool) (*zap.Logger, error) {
	zc := zap.NewProductionConfig()
	if verbose {
		zc.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	if terminal {
		// stderr would scribble over the alt screen
		zc.OutputPaths = []string{os.DevNull}
		zc.ErrorOutputPaths = []string{os.DevNull}
	}
	logger, err := zc.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return logger, nil
}

func run(cmd *cobra.Command, f *flags) error {
	cfg, err := resolve(cmd, f)
	if err != nil {
		return err
	}
	logger, err := newLogger(f.verbose, f.terminal)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	opts := cfg.Options()
	timer := core.NewTimer(opts.WorkSeconds(), opts.RestSeconds())
	logger.Info("starting",
		zap.Int("work_minutes", opts.Work),
		zap.Int("rest_minutes", opts.Rest),
		zap.Bool("terminal", f.terminal))

	uiOpts := []ui.Option{ui.WithLogger(logger)}
	if cfg.Notify {
		uiOpts = append(uiOpts, ui.WithNotifier(notify.New("")))
	}
	if cfg.Database != "" {
		history, err := storage.Open(cfg.Database)
		if err != nil {
			return err
		}
		defer history.Close()
		uiOpts = append(uiOpts, ui.WithRecorder(history))
		logger.Debug("history enabled", zap.String("path", cfg.Database))
	}

	if f.terminal {
		return ui.RunTerminal(ui.NewModel(timer, uiOpts...))
	}
	return runTray(timer, uiOpts)
}

func runTray(timer *core.Timer, uiOpts []ui.Option) error {
	a := app.NewWithID(appID)
	tray, err := ui.NewFyneTray(a)
	if err != nil {
		return err
	}
	dlg := ui.NewFyneDialog(a)

	uiOpts = append(uiOpts, ui.WithQuit(a.Quit), ui.WithDispatch(fyne.Do))
	u := ui.New(timer, tray, dlg, uiOpts...)
	u.StartTicking(core.NewTicker(time.Second))
	a.Run()
	return nil
}
