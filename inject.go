package willowui

// injectAction is what a queued synthetic request does to its widget.
type injectAction uint8

const (
	injectMode injectAction = iota
	injectEnable
	injectDisable
	injectFocus
	injectBlur
)

// injectedRequest is a single synthetic input request. Widgets are looked up
// by name when the request is processed, so scripts may name widgets that
// are created later.
type injectedRequest struct {
	widget string
	action injectAction
	axis   Axis
	mode   Mode
}

// enabler and focuser are implemented by kinds that keep input state
// alongside their axes (drag in progress, editing).
type enabler interface {
	SetEnabled(enabled bool)
}

type focuser interface {
	FocusGained()
	FocusLost()
}

// InjectRequest queues a RequestMode(axis, mode) for the widget called name.
// The request is delivered at the start of the next Update, before
// controllers advance, with the same gating as real input.
func (rt *Runtime) InjectRequest(name string, axis Axis, mode Mode) {
	rt.injectQueue = append(rt.injectQueue, injectedRequest{
		widget: name, action: injectMode, axis: axis, mode: mode,
	})
}

// InjectEnable queues enabling or disabling the widget called name.
func (rt *Runtime) InjectEnable(name string, enabled bool) {
	action := injectDisable
	if enabled {
		action = injectEnable
	}
	rt.injectQueue = append(rt.injectQueue, injectedRequest{widget: name, action: action})
}

// InjectFocus queues the widget called name gaining or losing focus. Kinds
// with editing or activation behavior react as they do to real focus.
func (rt *Runtime) InjectFocus(name string, gained bool) {
	action := injectBlur
	if gained {
		action = injectFocus
	}
	rt.injectQueue = append(rt.injectQueue, injectedRequest{widget: name, action: action})
}

// PendingInjections returns the number of injected requests not yet
// delivered.
func (rt *Runtime) PendingInjections() int {
	return len(rt.injectQueue)
}

// processInjected delivers every queued request in order. Requests queued
// while delivering (by OnSettle handlers, say) wait for the next frame.
// Requests naming unknown widgets are dropped.
func (rt *Runtime) processInjected() {
	n := len(rt.injectQueue)
	if n == 0 {
		return
	}
	batch := rt.injectQueue[:n:n]
	rt.injectQueue = nil
	for _, req := range batch {
		w, ok := rt.byName[req.widget]
		if !ok {
			continue
		}
		rt.deliver(w, req)
	}
}

func (rt *Runtime) deliver(w *Widget, req injectedRequest) {
	switch req.action {
	case injectMode:
		w.RequestMode(req.axis, req.mode)
	case injectEnable, injectDisable:
		enabled := req.action == injectEnable
		if e, ok := w.Owner().(enabler); ok {
			e.SetEnabled(enabled)
		} else {
			w.SetEnabled(enabled)
		}
	case injectFocus, injectBlur:
		setFocus(w, req.action == injectFocus)
	}
}
