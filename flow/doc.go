// Package flow models the animated stage pipeline: a row of named stages joined
// by curved links, each link carrying particles that travel from one stage to the
// next, can be popped by a click and respawn after a delay.
//
// All geometry is in logical pixels. The package has no drawing or input code;
// a Scene is driven by explicit calls (Resize, Update, PointerMove, PointerLeave,
// Click) made from a single goroutine, and is read by the renderer between them.
package flow
