package willowui

import (
	"fmt"
	"os"
	"time"
)

// debugStats holds per-frame timing and redraw metrics.
// Only populated when Runtime.debug is true.
type debugStats struct {
	advanceTime time.Duration
	flushTime   time.Duration
	controllers int
	advanced    int
	painted     int
}

// debugLog prints timing and redraw stats to stderr.
func (rt *Runtime) debugLog(stats debugStats) {
	if !rt.debug {
		return
	}
	_, _ = fmt.Fprintf(os.Stderr,
		"[willowui] frame %d | advance: %v | flush: %v | total: %v\n",
		rt.frame, stats.advanceTime, stats.flushTime, stats.advanceTime+stats.flushTime)
	_, _ = fmt.Fprintf(os.Stderr,
		"[willowui] controllers: %d (%d playing) | painted: %d | queued: %d\n",
		stats.controllers, stats.advanced, stats.painted, rt.scheduler.Len())
}

// debugCheckDestroyed panics with a descriptive message when a destroyed
// widget is used. Only called in debug mode; release builds ignore the call.
func debugCheckDestroyed(w *Widget, op string) {
	if w.destroyed {
		panic(fmt.Sprintf("willowui debug: %s on destroyed widget %q (ID was %d)", op, w.Name, w.ID))
	}
}

// debugMaxControllers is the registered-controller count above which debug
// mode warns; widgets that are never destroyed keep their controllers alive.
const debugMaxControllers = 3000

func debugCheckControllerCount(rt *Runtime) {
	if n := len(rt.controllers); n > debugMaxControllers {
		_, _ = fmt.Fprintf(os.Stderr, "[willowui] warning: %d live animation controllers (threshold %d)\n",
			n, debugMaxControllers)
	}
}

// debugWarnReentrant reports a settle callback that arrived while resting.
func debugWarnReentrant(w *Widget, a Axis) {
	_, _ = fmt.Fprintf(os.Stderr, "[willowui] warning: %s settle on %q while resting (%s)\n",
		a, w.Name, KindReentrantSettle)
}
