// Package willowui is the state-transition and redraw core of a skinnable,
// retained-mode widget toolkit for [Ebitengine] games.
//
// Widgets (toggle buttons, sliders, text fields, panels) show orthogonal
// modes along independent axes: style (normal, hover, pressed, disabled,
// moving, active), focus, and small integer states. A skin compiled from a
// YAML blueprint says how each axis animates between two modes: for how
// many ticks, in which direction, with which sound. Willowui plays those
// transitions, queues the widgets whose appearance changed and repaints
// each of them at most once per frame.
//
// # Quick start
//
//	skin, err := willowui.LoadBlueprint(data)
//	if err != nil {
//		log.Fatal(err)
//	}
//	rt := willowui.NewRuntime(willowui.WithSkin(skin))
//	ok := willowui.NewToggleButton(rt, "ok", "OK", 2)
//	ok.Move(40, 40)
//	willowui.Run(rt, willowui.RunConfig{Title: "Demo", Width: 640, Height: 480})
//
// For full control, implement [ebiten.Game] yourself, feed an [InputRouter]
// and call [Runtime.Update] once per frame.
//
// # Transitions
//
// Each axis of a widget is driven by a [ModeTransitioner]. A request for a
// new mode is first passed through the kind's reroute strategy (a toggle
// goes from pressed to disabled through normal), then looked up in the
// skin's [TransitionTable]. No entry means the axis snaps. Otherwise the
// axis' [AnimationController] plays the transition; a request made while it
// plays is remembered in a single pending slot, the latest one winning, and
// taken up when the current transition settles.
//
// Durations are ticks. 0 is instant, [DurationInfinite] never settles and
// [DurationLoop] never settles and restarts at the end of every cycle.
//
// # Backends
//
// [Run] and [EbitenPainter] paint through Ebitengine, labels use the
// basicfont face through text/v2. The term subpackage paints into a tcell
// screen, the audio subpackage plays transition sounds with beep, and the
// ecs subpackage (a separate module) publishes mode events into a donburi
// world.
//
// [Ebitengine]: https://ebitengine.org
package willowui
