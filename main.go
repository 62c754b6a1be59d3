// Deskfolio is a windowed desktop environment for the terminal: a boot
// screen, a login card, draggable icons and windows, and a taskbar.
package main

func main() {
	Execute()
}
