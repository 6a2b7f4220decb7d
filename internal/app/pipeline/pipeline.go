package pipeline

import (
	"context"
	"fmt"
	"time"

	"logpanel/internal/app/errors"
	"logpanel/internal/app/message"
	"logpanel/internal/app/surface"
	"logpanel/internal/config/logger"
)

// Config holds the stage parameters of one pipeline
type Config struct {
	MessageLimit int
	MinLevel     message.Severity
	Window       time.Duration
}

// Pipeline moves messages from a stream onto a surface
type Pipeline struct {
	cfg      Config
	surface  surface.Surface
	filter   Filter
	window   Window
	renderer *Renderer
	evictor  *Evictor
	log      logger.Logger
}

// New creates a pipeline writing to s; cfg must already be validated
func New(cfg Config, s surface.Surface, log logger.Logger) *Pipeline {
	return &Pipeline{
		cfg:      cfg,
		surface:  s,
		filter:   NewFilter(cfg.MinLevel),
		renderer: NewRenderer(),
		evictor:  NewEvictor(cfg.MessageLimit),
		log:      log,
	}
}

// Run processes in until ctx is done or in is closed.
// A window still open at that point is dropped. Any failure ends the run with an error wrapping ErrStreamFailed.
func (p *Pipeline) Run(ctx context.Context, in <-chan message.Message) error {
	ticker := time.NewTicker(p.cfg.Window)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			p.dropPending("stream cancelled")
			return nil
		case msg, ok := <-in:
			if !ok {
				p.dropPending("stream closed")
				return nil
			}

			if p.filter.Accept(msg) {
				p.window.Add(msg)
			}
		case <-ticker.C:
			if ctx.Err() != nil {
				p.dropPending("stream cancelled")
				return nil
			}

			batch := p.window.Flush()
			if len(batch) == 0 {
				continue
			}

			if err := p.process(batch); err != nil {
				return fmt.Errorf("%w: %w", errors.ErrStreamFailed, err)
			}
		}
	}
}

// process truncates, renders and commits one closed window
func (p *Pipeline) process(batch []message.Message) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic while rendering batch: %v", r)
		}
	}()

	kept := Truncate(batch, p.cfg.MessageLimit)
	if dropped := len(batch) - len(kept); dropped > 0 {
		p.log.Debug().Msgf("Window over limit, dropped %d messages", dropped)
	}

	return p.commit(p.renderer.RenderBatch(kept))
}

// commit places fragments on the surface in order, evicting the oldest entry first whenever the limit is reached
func (p *Pipeline) commit(fragments []surface.Fragment) error {
	if !p.surface.Mounted() {
		return errors.ErrPanelNotAttached
	}

	for _, fragment := range fragments {
		if oldest, evict := p.evictor.Push(fragment.ID); evict {
			if err := p.surface.Remove(oldest); err != nil {
				return err
			}
		}

		if err := p.surface.Append(fragment); err != nil {
			return err
		}
	}

	p.surface.ScrollToBottom()

	return nil
}

func (p *Pipeline) dropPending(reason string) {
	if n := p.window.Len(); n > 0 {
		p.log.Debug().Msgf("%s, dropping %d pending messages", reason, n)
	}
}
