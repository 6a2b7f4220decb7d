package pipeline

import "logpanel/internal/app/surface"

// Evictor is a sliding window of limit+1 rendered entry ids.
// Each push that fills the window yields the id that falls out the back.
type Evictor struct {
	limit int
	ids   []surface.EntryID
}

// NewEvictor creates an evictor keeping at most limit entries
func NewEvictor(limit int) *Evictor {
	return &Evictor{
		limit: limit,
		ids:   make([]surface.EntryID, 0, limit+1),
	}
}

// Push records a newly rendered entry and returns the oldest id when it must be evicted
func (e *Evictor) Push(id surface.EntryID) (surface.EntryID, bool) {
	e.ids = append(e.ids, id)

	if len(e.ids) <= e.limit {
		return 0, false
	}

	oldest := e.ids[0]
	e.ids = append(e.ids[:0], e.ids[1:]...)

	return oldest, true
}

// Len returns the number of entries currently inside the window
func (e *Evictor) Len() int {
	return len(e.ids)
}
