package commands

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/jask/revenda/internal/auth"
	"github.com/jask/revenda/internal/config"
	"github.com/jask/revenda/internal/logging"
	"github.com/jask/revenda/internal/seed"
	"github.com/jask/revenda/internal/session"
	"github.com/jask/revenda/internal/tui"
)

// options holds the persistent flags shared by every command.
type options struct {
	configPath string
	seedPath   string
	exportDir  string
}

func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	err := newRootCmd().ExecuteContext(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
	}
	return err
}

func newRootCmd() *cobra.Command {
	opts := &options{}
	root := &cobra.Command{
		Use:           "revenda",
		Short:         "Dealership back office in the terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(cmd.Context(), opts)
		},
	}

	root.PersistentFlags().StringVar(&opts.configPath, "config", "", "config file (default ~/.config/revenda/config.toml)")
	root.PersistentFlags().StringVar(&opts.seedPath, "seed", "", "seed file (.toml or .yaml) loaded into the session")
	root.PersistentFlags().StringVar(&opts.exportDir, "export-dir", "", "directory export files are written to")

	root.AddCommand(exportCmd(opts), passwdCmd(opts))
	return root
}

// env is what every command needs: resolved config, a logger and an open session.
type env struct {
	cfg     config.Config
	log     *slog.Logger
	sess    *session.Session
	closers []func() error
}

func (e *env) Close() {
	for i := len(e.closers) - 1; i >= 0; i-- {
		_ = e.closers[i]()
	}
}

// setup loads config, applies flag overrides and opens a seeded session.
func setup(ctx context.Context, opts *options) (*env, error) {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return nil, err
	}
	if opts.seedPath != "" {
		cfg.Seed.Path = opts.seedPath
	}
	if opts.exportDir != "" {
		cfg.Export.Dir = opts.exportDir
	}

	logger, closeLog, err := logging.Open(cfg.Log.File, cfg.Log.Level)
	if err != nil {
		return nil, err
	}
	e := &env{cfg: cfg, log: logger, closers: []func() error{closeLog}}

	var data seed.Data
	if !cfg.Seed.Empty {
		if data, err = seed.Load(cfg.Seed.Path); err != nil {
			e.Close()
			return nil, err
		}
	}

	sess, err := session.Open(ctx, session.Options{
		Seed:      data,
		Gate:      auth.NewGate(cfg.Auth.Email, cfg.Auth.PasswordHash),
		ExportDir: cfg.Export.Dir,
		Logger:    logger,
	})
	if err != nil {
		e.Close()
		return nil, fmt.Errorf("open session: %w", err)
	}
	e.sess = sess
	e.closers = append(e.closers, sess.Close)
	logger.Info("session opened", "session", sess.ID, "vehicles", len(data.Vehicles), "clients", len(data.Clients))
	return e, nil
}

func runTUI(ctx context.Context, opts *options) error {
	e, err := setup(ctx, opts)
	if err != nil {
		return err
	}
	defer e.Close()

	model := tui.New(ctx, e.sess, tui.Options{DateFormat: e.cfg.UI.DateFormat, Logger: e.log})
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run ui: %w", err)
	}
	e.log.Info("session closed", "session", e.sess.ID)
	return nil
}
