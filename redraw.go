package willowui

// Paintable is anything the RedrawScheduler can repaint.
type Paintable interface {
	Paint()
}

// RedrawScheduler collects widgets that need repainting and paints each of
// them once per frame, in the order they were first invalidated.
type RedrawScheduler struct {
	queue  []Paintable
	queued map[Paintable]bool
	spare  []Paintable
	// batch is the slice being painted while Flush runs.
	batch []Paintable

	// OnNeedsFrame is called when the queue goes from empty to non-empty, so
	// hosts that render on demand know a frame is wanted.
	OnNeedsFrame func()
}

// NewRedrawScheduler creates an empty scheduler.
func NewRedrawScheduler() *RedrawScheduler {
	return &RedrawScheduler{queued: make(map[Paintable]bool)}
}

// Invalidate queues p for the next Flush. Repeated calls before the flush
// are no-ops.
func (r *RedrawScheduler) Invalidate(p Paintable) {
	if p == nil || r.queued[p] {
		return
	}
	r.queued[p] = true
	r.queue = append(r.queue, p)
	if len(r.queue) == 1 && r.OnNeedsFrame != nil {
		r.OnNeedsFrame()
	}
}

// Queued reports whether p is waiting for a flush.
func (r *RedrawScheduler) Queued(p Paintable) bool {
	return r.queued[p]
}

// Len returns the number of queued items.
func (r *RedrawScheduler) Len() int {
	return len(r.queue)
}

// Remove drops p from the queue. Destroyed widgets must be removed so a
// flush never paints them. Removing an item from inside a paint also drops
// it from the batch being flushed.
func (r *RedrawScheduler) Remove(p Paintable) {
	if !r.queued[p] {
		return
	}
	delete(r.queued, p)
	for i, q := range r.batch {
		if q == p {
			r.batch[i] = nil
			break
		}
	}
	for i, q := range r.queue {
		if q == p {
			r.queue = append(r.queue[:i], r.queue[i+1:]...)
			break
		}
	}
}

// Flush paints every queued item once and returns how many were painted.
// Each item's queued flag is cleared before it paints, so an item that
// invalidates itself (or another painted item) during the flush is queued
// again for the next frame instead of being lost.
func (r *RedrawScheduler) Flush() int {
	if len(r.queue) == 0 {
		return 0
	}
	batch := r.queue
	r.queue = r.spare[:0]
	r.batch = batch

	painted := 0
	for i, p := range batch {
		if p == nil {
			// removed by an earlier paint in this batch
			continue
		}
		batch[i] = nil
		delete(r.queued, p)
		p.Paint()
		painted++
	}
	r.batch = nil
	r.spare = batch[:0]
	return painted
}
