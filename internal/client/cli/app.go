package cli

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/dmitrijs2005/iceandfire/internal/buildinfo"
	"github.com/dmitrijs2005/iceandfire/internal/client/client"
	"github.com/dmitrijs2005/iceandfire/internal/client/config"
	"github.com/dmitrijs2005/iceandfire/internal/client/services"
	"github.com/dmitrijs2005/iceandfire/internal/client/ui"
	"github.com/dmitrijs2005/iceandfire/internal/filex"
	"github.com/dmitrijs2005/iceandfire/internal/logging"
	"github.com/dmitrijs2005/iceandfire/internal/tracing"
	"golang.org/x/term"
)

const serviceName = "iceandfire-client"

// screenFunc shows the characters screen until it is dismissed.
type screenFunc func(ctx context.Context, load ui.LoadFunc) (services.Result, error)

type App struct {
	config      *config.Config
	log         logging.Logger
	service     services.CharacterService
	shutdown    tracing.ShutdownFunc
	logCloser   io.Closer
	interactive bool
	screen      screenFunc
}

func NewApp(c *config.Config) (*App, error) {
	interactive := !c.Plain && term.IsTerminal(int(os.Stdout.Fd()))
	return newApp(c, os.Stdout, interactive)
}

func newApp(c *config.Config, stdout io.Writer, interactive bool) (*App, error) {
	ctx := context.Background()

	w, closer, err := openLog(c.LogFile)
	if err != nil {
		return nil, err
	}

	log, err := logging.New(c.LogBackend, c.LogLevel, w)
	if err != nil {
		closeQuietly(closer)
		return nil, fmt.Errorf("init logger: %w", err)
	}

	shutdown, err := tracing.Setup(ctx, c.OTLPEndpoint, serviceName, buildinfo.Version())
	if err != nil {
		closeQuietly(closer)
		return nil, fmt.Errorf("init tracing: %w", err)
	}

	dsn := c.DatabaseDSN
	open := func(ctx context.Context) (*sql.DB, error) {
		return client.InitDatabase(ctx, dsn)
	}
	svc := services.NewCharacterService(open, client.NewHTTPClient(c.RequestTimeout), c.CharacterURLs, log)

	screen := func(ctx context.Context, load ui.LoadFunc) (services.Result, error) {
		return ui.RunPlain(ctx, stdout, load)
	}
	if interactive {
		screen = func(ctx context.Context, load ui.LoadFunc) (services.Result, error) {
			return ui.RunInteractive(ctx, load)
		}
	}

	return &App{
		config:      c,
		log:         log,
		service:     svc,
		shutdown:    shutdown,
		logCloser:   closer,
		interactive: interactive,
		screen:      screen,
	}, nil
}

// Run shows the characters screen and returns when it is dismissed (plain
// mode: right after rendering).
func (a *App) Run(ctx context.Context) error {
	defer a.close(context.WithoutCancel(ctx))

	a.log.Info(ctx, "client started",
		"version", buildinfo.Version(),
		"database", a.config.DatabaseDSN,
		"urls", len(a.config.CharacterURLs),
		"interactive", a.interactive,
	)

	res, err := a.screen(ctx, a.service.Load)
	if errors.Is(err, ui.ErrNotLoaded) {
		a.log.Info(ctx, "screen closed before characters were loaded")
		return nil
	}
	if err != nil {
		a.log.Error(ctx, "screen failed", "error", err)
		return err
	}

	a.log.Debug(ctx, "screen closed", "ok", res.OK(), "characters", len(res.Characters))
	return nil
}

func (a *App) close(ctx context.Context) {
	if err := a.service.Close(); err != nil {
		a.log.Warn(ctx, "failed to close store", "error", err)
	}
	if err := a.shutdown(ctx); err != nil {
		a.log.Warn(ctx, "failed to shut down tracing", "error", err)
	}
	if s, ok := a.log.(interface{ Sync() error }); ok {
		_ = s.Sync()
	}
	closeQuietly(a.logCloser)
}

// openLog resolves the log destination; "-" is stderr. The interactive
// screen owns stdout, so logs never go there.
func openLog(path string) (io.Writer, io.Closer, error) {
	if path == "" || path == "-" {
		return os.Stderr, nil, nil
	}
	if _, err := filex.EnsureParentDir(path); err != nil {
		return nil, nil, fmt.Errorf("prepare log dir: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o640)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	return f, f, nil
}

func closeQuietly(c io.Closer) {
	if c != nil {
		_ = c.Close()
	}
}
