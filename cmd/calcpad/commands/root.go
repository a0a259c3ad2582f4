package commands

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/2112121/accounting-book-sub002/internal/calc"
	"github.com/2112121/accounting-book-sub002/internal/config"
	"github.com/2112121/accounting-book-sub002/internal/logger"
	"github.com/2112121/accounting-book-sub002/internal/tui"
)

// app carries what PersistentPreRunE resolved for the subcommands.
type app struct {
	configPath string
	logLevel   string
	logPath    string

	cfg *config.Config
}

// Execute runs the calcpad command line.
func Execute() error {
	defer func() {
		if err := logger.Global().Close(); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: failed to close logger: %v\n", err)
		}
	}()
	return NewRootCommand().Execute()
}

// NewRootCommand builds the command tree.
func NewRootCommand() *cobra.Command {
	a := &app{}
	var (
		seed     string
		copyOnly bool
	)

	root := &cobra.Command{
		Use:   "calcpad",
		Short: "Keypad calculator with deferred evaluation",
		Long: "calcpad opens a keypad calculator in the terminal. Press = or enter to evaluate,\n" +
			"u to print the result and exit, y to copy it to the clipboard.\n" +
			"When stdin is not a terminal, expressions are read line by line and evaluated.",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if !stdinIsTerminal(cmd) {
				return evaluateStream(cmd.InOrStdin(), cmd.OutOrStdout())
			}
			return a.runKeypad(cmd.OutOrStdout(), seed, copyOnly || a.cfg.CopyOnly)
		},
	}

	root.PersistentFlags().StringVar(&a.configPath, "config", "", "config file, .json or .yaml (default "+config.GetConfigPath()+")")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "log level: debug, info, warn, error, none")
	root.PersistentFlags().StringVar(&a.logPath, "log-path", "", "log file path")
	root.Flags().StringVarP(&seed, "seed", "s", "", "pre-filled expression, shown unevaluated")
	root.Flags().BoolVar(&copyOnly, "copy-only", false, "only offer the copy action")

	root.AddCommand(evalCmd(), keysCmd())
	return root
}

func (a *app) setup() error {
	path := a.configPath
	if path == "" {
		path = config.GetConfigPath()
	}

	cfg, err := config.Load(path)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	cfg.ApplyEnv()
	if a.logLevel != "" {
		cfg.LogLevel = a.logLevel
	}
	if a.logPath != "" {
		cfg.LogPath = a.logPath
	}
	a.cfg = cfg

	if err := logger.Init(logger.ParseLevel(cfg.LogLevel), cfg.ResolvedLogPath()); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	slog.SetDefault(slog.New(logger.NewSlogHandler(logger.Global())))

	logger.Debug("config loaded from %s: log_level=%s settle=%s copy_only=%v",
		path, cfg.LogLevel, cfg.SettleDelay(), cfg.CopyOnly)
	return nil
}

func (a *app) runKeypad(out io.Writer, seed string, copyOnly bool) error {
	logger.Info("starting keypad (seed=%q copy_only=%v)", seed, copyOnly)

	var used string
	c := calc.New(calc.Options{
		Seed:        seed,
		CopyOnly:    copyOnly,
		OnUseResult: func(result string) { used = result },
		OnDismiss:   func() { logger.Info("keypad dismissed") },
		Logger:      logger.Global(),
	})

	keypad := tui.NewKeypad(tui.Options{
		Calculator: c,
		Timing: tui.Timing{
			Settle:      a.cfg.SettleDelay(),
			Shake:       a.cfg.ShakeDuration(),
			CopyConfirm: a.cfg.CopyConfirmDuration(),
		},
	})

	if _, err := tea.NewProgram(keypad).Run(); err != nil {
		return fmt.Errorf("keypad failed: %w", err)
	}

	if used != "" {
		fmt.Fprintln(out, used)
	}
	return nil
}

func stdinIsTerminal(cmd *cobra.Command) bool {
	f, ok := cmd.InOrStdin().(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
