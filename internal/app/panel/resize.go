package panel

import (
	"context"
	"sync"

	"github.com/looplab/fsm"

	"logpanel/internal/config/logger"
)

// Resize states
const (
	Idle     = "idle"
	Dragging = "dragging"
)

// Resize events
const (
	press   = "press"
	release = "release"
)

// Resizer turns pointer drags on the panel handle into height changes.
// Heights and pointer positions share one unit; y grows downwards from the top of the viewport.
type Resizer struct {
	mu       sync.Mutex
	fsm      *fsm.FSM
	height   int
	viewport int
	apply    func(height int)
	log      logger.Logger
}

// NewResizer creates an idle resizer that reports new heights to apply
func NewResizer(height int, apply func(height int), log logger.Logger) *Resizer {
	r := &Resizer{
		height: height,
		apply:  apply,
		log:    log,
	}

	r.fsm = fsm.NewFSM(
		Idle,
		fsm.Events{
			{Name: press, Src: []string{Idle}, Dst: Dragging},
			{Name: release, Src: []string{Dragging}, Dst: Idle},
		},
		fsm.Callbacks{
			"after_event": func(_ context.Context, e *fsm.Event) {
				log.Debug().Msgf("RESIZE %s → %s", e.Src, e.Dst)
			},
		},
	)

	return r
}

// SetViewport records the height of the area the panel lives in; moves are ignored until it is positive
func (r *Resizer) SetViewport(height int) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.viewport = height
}

// PointerDown starts a drag; a press while already dragging is ignored
func (r *Resizer) PointerDown(y int) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.fsm.Event(context.Background(), press); err != nil {
		return false
	}

	r.log.Debug().Msgf("Drag started at y=%d", y)

	return true
}

// PointerMove resizes the panel while dragging and reports whether a height was applied
func (r *Resizer) PointerMove(y int) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.fsm.Is(Dragging) || r.viewport <= 0 {
		return false
	}

	r.height = clamp(r.viewport-y, MinHeight, r.viewport)
	r.apply(r.height)

	return true
}

// PointerUp ends the current drag
func (r *Resizer) PointerUp() {
	r.mu.Lock()
	defer r.mu.Unlock()

	_ = r.fsm.Event(context.Background(), release)
}

// Reset abandons any drag and sets the height without applying it
func (r *Resizer) Reset(height int) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.fsm.Is(Dragging) {
		_ = r.fsm.Event(context.Background(), release)
	}

	r.height = height
}

// Height returns the current panel height
func (r *Resizer) Height() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.height
}

// Dragging reports whether a drag is in progress
func (r *Resizer) Dragging() bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.fsm.Is(Dragging)
}

// clamp bounds v to [lo, hi]; hi wins when the viewport is smaller than lo
func clamp(v, lo, hi int) int {
	return min(max(v, lo), hi)
}
