package app

import (
	"context"
	"errors"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/five82/padlink/internal/config"
	"github.com/five82/padlink/internal/gamepad"
	"github.com/five82/padlink/internal/linkstate"
	"github.com/five82/padlink/internal/logging"
	"github.com/five82/padlink/internal/prefs"
	"github.com/five82/padlink/internal/reconcile"
	"github.com/five82/padlink/internal/relay"
	"github.com/five82/padlink/internal/ui"
)

// Options configure the padlink overlay.
type Options struct {
	ConfigPath string
	PrefsPath  string // empty uses default ~/.config/padlink/prefs.toml
	Mode       string // overrides prefs and config when set
	FrameRate  int    // overrides config when positive
	Version    string
}

// Run boots the overlay until the user quits or the context is cancelled.
func Run(ctx context.Context, opts Options) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if opts.FrameRate > 0 {
		cfg.FrameRate = opts.FrameRate
	}

	userPrefs, _ := prefs.Load(opts.PrefsPath)

	mode, err := resolveMode(opts.Mode, userPrefs.Mode, cfg.Mode)
	if err != nil {
		return err
	}

	logger, closeLog, err := logging.New(logging.Options{
		Level:   cfg.LogLevel,
		Path:    cfg.LogPath(),
		Version: opts.Version,
	})
	if err != nil {
		return fmt.Errorf("init logging: %w", err)
	}
	defer func() { _ = closeLog() }()

	client, err := relay.NewClient(cfg.RelayAddr, cfg.RelayPath, logger.Named("relay"))
	if err != nil {
		return fmt.Errorf("init relay client: %w", err)
	}

	link := &linkstate.Store{}
	link.SetURL(client.URL())

	model, err := ui.New(ui.Options{
		Store:         gamepad.NewStore(),
		Link:          link,
		Mode:          mode,
		FrameInterval: cfg.FrameInterval(),
		ThemeName:     userPrefs.Theme,
		PrefsPath:     opts.PrefsPath,
		Logger:        logger.Named("ui"),
	})
	if err != nil {
		return err
	}

	relayCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	p := ui.NewProgram(relayCtx, model)
	client.OnConnect = func() {
		link.Connected()
		p.Send(ui.LinkChangedMsg{})
	}
	client.OnMessage = func(m relay.Message) {
		link.Frame()
		p.Send(ui.RelayMsg(m))
	}

	log := logger.Named("app")
	log.Info("starting overlay",
		zap.String("relay", client.URL()),
		zap.Stringer("mode", mode),
		zap.Duration("frame_interval", cfg.FrameInterval()))

	StartRelay(relayCtx, client, link, func() { p.Send(ui.LinkChangedMsg{}) }, log, defaultRetryBase)

	if _, err := p.Run(); err != nil {
		if ctx.Err() != nil && errors.Is(err, tea.ErrProgramKilled) {
			return nil
		}
		return fmt.Errorf("run overlay: %w", err)
	}
	log.Info("overlay exited")
	return nil
}

// resolveMode picks the first non-empty of flag, prefs and config.
func resolveMode(values ...string) (reconcile.Mode, error) {
	for _, v := range values {
		if strings.TrimSpace(v) == "" {
			continue
		}
		mode, err := reconcile.ParseMode(v)
		if err != nil {
			return reconcile.ModeAll, fmt.Errorf("invalid mode: %w", err)
		}
		return mode, nil
	}
	return reconcile.ModeAll, nil
}
