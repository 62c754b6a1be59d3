package main

import "time"

type Mode int

const (
	ModeBooting Mode = iota
	ModeLogin
	ModeDesktop
	ModeShuttingDown
	ModeRestarting
)

func (m Mode) String() string {
	switch m {
	case ModeBooting:
		return "booting"
	case ModeLogin:
		return "login"
	case ModeDesktop:
		return "desktop"
	case ModeShuttingDown:
		return "shutting_down"
	case ModeRestarting:
		return "restarting"
	default:
		return "unknown"
	}
}

type dragKind int

const (
	dragNone dragKind = iota
	dragIcon
	dragWindow
)

const (
	titleButtonWidth = 3
	statusDuration   = 3 * time.Second
	clockInterval    = time.Second
	maxTaskbarLabel  = 14
)
