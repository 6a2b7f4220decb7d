package panel

import (
	"context"
	"fmt"
	"sync"

	"logpanel/internal/app/bus"
	"logpanel/internal/app/diag"
	"logpanel/internal/app/errors"
	"logpanel/internal/app/message"
	"logpanel/internal/app/pipeline"
	"logpanel/internal/app/surface"
	"logpanel/internal/config/logger"
)

// stream is the message queue and pipeline goroutine of one attach
type stream struct {
	bus    bus.Bus
	cancel context.CancelFunc
	done   chan struct{}
	err    error // set before done is closed
}

// Panel is one log panel bound to a rendering surface
type Panel struct {
	mu       sync.Mutex
	surface  surface.Surface
	streams  bus.Factory
	sink     diag.Sink
	resizer  *Resizer
	opts     Options
	stream   *stream
	attached bool
	log      logger.Logger
}

// New creates a detached panel drawing on s
func New(s surface.Surface, streams bus.Factory, sink diag.Sink, log logger.Logger) *Panel {
	log = log.WithComponent("PANEL")

	return &Panel{
		surface: s,
		streams: streams,
		sink:    sink,
		resizer: NewResizer(DefaultOptions().MinHeight, s.SetHeight, log),
		opts:    DefaultOptions(),
		log:     log,
	}
}

// Attach mounts the surface and starts a fresh stream.
// A panel whose stream failed may be attached again without Detach.
func (p *Panel) Attach(opts Options) error {
	opts, err := opts.normalize()
	if err != nil {
		return err
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if p.stream != nil {
		select {
		case <-p.stream.done:
			p.teardown()
		default:
			return errors.ErrPanelAlreadyAttached
		}
	}

	if err := p.surface.Mount(opts.MinHeight); err != nil {
		return err
	}

	p.resizer.Reset(opts.MinHeight)

	ctx, cancel := context.WithCancel(context.Background())

	s := &stream{
		bus:    p.streams(),
		cancel: cancel,
		done:   make(chan struct{}),
	}

	in := s.bus.Subscribe(ctx)
	pl := pipeline.New(opts.pipeline(), p.surface, p.log)

	go p.run(ctx, s, pl, in)

	p.stream = s
	p.opts = opts
	p.attached = true

	p.log.Info().
		Int("limit", opts.MessageLimit).
		Int("height", opts.MinHeight).
		Str("min_level", opts.MinLevel.String()).
		Msg("Panel attached")

	return nil
}

// Detach stops the stream, dropping any open window, and unmounts the surface
func (p *Panel) Detach() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.stream == nil {
		return errors.ErrPanelNotAttached
	}

	p.teardown()
	p.log.Info().Msg("Panel detached")

	return nil
}

// teardown must be called with p.mu held
func (p *Panel) teardown() {
	s := p.stream

	s.cancel()
	s.bus.Close()
	<-s.done

	p.surface.Unmount()
	p.resizer.Reset(p.opts.MinHeight)
	p.stream = nil
}

func (p *Panel) run(ctx context.Context, s *stream, pl *pipeline.Pipeline, in <-chan message.Message) {
	defer close(s.done)

	if err := pl.Run(ctx, in); err != nil {
		s.err = err
		s.cancel()
		s.bus.Close()
		p.sink.Report(err)
	}
}

// Log enqueues a message at the given severity
func (p *Panel) Log(level message.Severity, text string) error {
	if !level.Valid() {
		return fmt.Errorf("%w: %d", errors.ErrInvalidSeverity, int(level))
	}

	p.mu.Lock()
	s, attached := p.stream, p.attached
	p.mu.Unlock()

	if s == nil {
		if attached {
			return errors.ErrStreamClosed
		}

		return errors.ErrPanelNotAttached
	}

	select {
	case <-s.done:
		if s.err != nil {
			return fmt.Errorf("%w: %w", errors.ErrStreamClosed, s.err)
		}

		return errors.ErrStreamClosed
	default:
	}

	return s.bus.Publish(message.New(level, text))
}

// Info logs at info severity
func (p *Panel) Info(text string) error {
	return p.Log(message.Info, text)
}

// Warn logs at warn severity
func (p *Panel) Warn(text string) error {
	return p.Log(message.Warn, text)
}

// Err logs at error severity
func (p *Panel) Err(text string) error {
	return p.Log(message.Error, text)
}

// Failure returns the error that terminated the current stream, if any
func (p *Panel) Failure() error {
	p.mu.Lock()
	s := p.stream
	p.mu.Unlock()

	if s == nil {
		return nil
	}

	select {
	case <-s.done:
		return s.err
	default:
		return nil
	}
}

// Attached reports whether the panel currently has a stream
func (p *Panel) Attached() bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.stream != nil
}

// Options returns the options of the current or last attach
func (p *Panel) Options() Options {
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.opts
}

// Resizer returns the panel's resize controller
func (p *Panel) Resizer() *Resizer {
	return p.resizer
}
