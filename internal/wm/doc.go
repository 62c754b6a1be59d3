/*
Package wm implements the desktop window manager as a pure state machine.

A Registry holds the immutable window definitions supplied by the host and
produces the initial State. Every transition goes through Apply, which takes
a State and a Command and returns the next State without mutating its input.
Manager is a thin owner of the current State for single-threaded callers such
as a bubbletea Update loop.

The manager never fails: commands naming an unknown window, or commands whose
precondition does not hold, leave the state unchanged.

Example usage:

	reg := wm.NewRegistry([]wm.Definition{
		{ID: "about", Title: "About", Size: geom.Size{Width: 40, Height: 12}},
		{ID: "contact", Title: "Contact", Size: geom.Size{Width: 36, Height: 10}},
	})
	m := wm.NewManager(reg)
	m.Open("about")
	m.Open("contact")
	m.Focus("about")
	for _, w := range m.State().Stack() {
		fmt.Println(w.ID, w.Z)
	}
*/
package wm
