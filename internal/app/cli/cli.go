//go:generate mockgen -source=cli.go -destination=cli_mock.go -package=cli
package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"sync"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/fx"

	"logpanel/internal/app/errors"
	"logpanel/internal/app/panel"
	"logpanel/internal/app/source"
	"logpanel/internal/app/surface"
	"logpanel/internal/app/ui"
	"logpanel/internal/config"
	"logpanel/internal/config/logger"
)

// CLI defines the interface for cli operations
type CLI interface {
	Execute() (exitCode int, err error)
}

// Params contains the dependencies of the cli
type Params struct {
	fx.In

	Config  *config.Config
	Panels  panel.Builder
	Screen  *ui.Screen
	UI      ui.UI
	Sources source.Factory
	Logger  logger.Logger
}

// cli represents the command-line interface for the application
type cli struct {
	args    []string
	cfg     *config.Config
	panels  panel.Builder
	screen  *ui.Screen
	ui      ui.UI
	sources source.Factory
	out     io.Writer
	log     logger.Logger
}

// NewCLI creates a new cli instance reading the process arguments
func NewCLI(params Params) CLI {
	return &cli{
		args:    os.Args[1:],
		cfg:     params.Config,
		panels:  params.Panels,
		screen:  params.Screen,
		ui:      params.UI,
		sources: params.Sources,
		out:     os.Stdout,
		log:     params.Logger,
	}
}

// Execute parses the arguments and runs the selected command
func (c *cli) Execute() (int, error) {
	opts, err := Parse(c.args)
	if err != nil {
		fmt.Fprintln(c.out, RenderError(err))
		return 1, fmt.Errorf("%w: %w", errors.ErrUnknownCommand, err)
	}

	switch opts.Type {
	case CommandVersion:
		return c.handleVersion()
	case CommandHelp:
		return c.handleHelp()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := c.handleRun(ctx, opts); err != nil {
		c.log.Error().Err(err).Msg("Run failed")
		fmt.Fprintln(c.out, RenderError(err))

		return 1, err
	}

	return 0, nil
}

// handleRun attaches a panel, feeds it from the sources and detaches when the UI exits or ctx is done
func (c *cli) handleRun(ctx context.Context, opts *Options) error {
	sources, err := c.sources.Build(c.sourceConfig(opts))
	if err != nil {
		return err
	}

	panelOpts, err := panel.OptionsFromConfig(c.cfg)
	if err != nil {
		return err
	}

	var s surface.Surface = c.screen
	if opts.NoUI {
		s = ui.NewConsole(c.out)
	}

	p := c.panels(s)
	if err := p.Attach(panelOpts); err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var wg sync.WaitGroup

	for _, src := range sources {
		wg.Add(1)

		go func() {
			defer wg.Done()
			c.runSource(ctx, src, p)
		}()
	}

	if err := p.Info(fmt.Sprintf("%s v%s attached", config.AppName, config.Version)); err != nil {
		c.log.Warn().Err(err).Msg("Failed to log greeting")
	}

	var runErr error
	if opts.NoUI {
		<-ctx.Done()
	} else {
		runErr = c.runUI(ctx, p)
	}

	cancel()
	wg.Wait()

	failure := p.Failure()

	if err := p.Detach(); err != nil {
		c.log.Warn().Err(err).Msg("Failed to detach panel")
	}

	if runErr != nil {
		return runErr
	}

	return failure
}

// runUI blocks until the program exits; cancellation of ctx is a clean exit
func (c *cli) runUI(ctx context.Context, p *panel.Panel) error {
	program := c.ui(ctx, p.Resizer())

	if _, err := program.Run(); err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return nil
		}

		return err
	}

	return nil
}

func (c *cli) runSource(ctx context.Context, src source.Source, p *panel.Panel) {
	c.log.Debug().Msgf("Source '%s' started", src.Name())

	err := src.Run(ctx, p)

	switch {
	case err == nil:
		c.log.Debug().Msgf("Source '%s' stopped", src.Name())
	case source.IsClosed(err):
		c.log.Debug().Msgf("Source '%s' stopped, panel closed", src.Name())
	default:
		c.log.Error().Err(err).Msgf("Source '%s' failed", src.Name())
		_ = p.Err(fmt.Sprintf("source %s failed: %v", src.Name(), err))
	}
}

// sourceConfig applies the --tail and --stats flags over the configured sources
func (c *cli) sourceConfig(opts *Options) config.Sources {
	sources := c.cfg.Sources

	if opts.Tail != "" {
		tail := config.Tail{Dir: opts.Tail, Include: []string{config.TailInclude}}
		if sources.Tail != nil {
			tail.Include = sources.Tail.Include
			tail.Ignore = sources.Tail.Ignore
		}

		sources.Tail = &tail
	}

	if opts.Stats && sources.Stats == nil {
		sources.Stats = &config.Stats{Interval: config.StatsInterval}
	}

	return sources
}

// handleVersion displays version information
func (c *cli) handleVersion() (int, error) {
	c.log.Debug().Msg("Displaying version information")
	fmt.Fprintln(c.out, RenderTitle())

	return 0, nil
}

// handleHelp displays help information
func (c *cli) handleHelp() (int, error) {
	c.log.Debug().Msg("Displaying help information")
	fmt.Fprint(c.out, renderHelp())

	return 0, nil
}
