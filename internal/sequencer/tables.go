package sequencer

import "time"

// Default durations.
const (
	DefaultBoot     = 5 * time.Second
	DefaultRestart  = 3 * time.Second
	DefaultShutdown = 4 * time.Second
	DefaultLogin    = time.Second
)

var (
	bootMessages = []string{
		"Initializing Deskfolio...",
		"Loading system components...",
		"Mounting virtual drives...",
		"Establishing network connection...",
		"Loading user profile...",
		"Applying personalization settings...",
		"Starting desktop environment...",
		"Almost there...",
	}
	restartMessages = []string{
		"Saving your settings...",
		"Closing applications...",
		"Restarting...",
		"Please wait...",
	}
	shutdownMessages = []string{
		"Saving your settings...",
		"Closing applications...",
		"Shutting down network connections...",
		"Deskfolio is shutting down...",
		"Goodbye!",
	}
	bootBanner = []string{
		"Deskfolio BIOS v1.0",
		"CPU: Emulated Terminal Processor @ 3.0GHz",
		"Memory Check: 65536K OK",
	}
)

func even(name string, msgs []string, total time.Duration) Sequence {
	if total <= 0 {
		total = time.Millisecond * time.Duration(len(msgs))
	}
	interval := total / time.Duration(len(msgs))
	steps := make([]Step, len(msgs))
	for i, m := range msgs {
		steps[i] = Step{Message: m, Duration: interval}
	}
	return Sequence{
		Name:         name,
		Steps:        steps,
		FadeDelay:    interval / 2,
		FadeDuration: 500 * time.Millisecond,
	}
}

// Boot returns the boot table: eight messages spread over total with a
// progress bar, a blinking cursor and a short fade.
func Boot(total time.Duration) Sequence {
	s := even("boot", bootMessages, total)
	s.Banner = bootBanner
	s.FadeDelay = 300 * time.Millisecond
	s.BlinkEvery = 500 * time.Millisecond
	return s
}

// Restart returns the restart table.
func Restart(total time.Duration) Sequence {
	return even("restart", restartMessages, total)
}

// Shutdown returns the shutdown table.
func Shutdown(total time.Duration) Sequence {
	return even("shutdown", shutdownMessages, total)
}

// Login returns the single-step delay between pressing Login and the desktop.
func Login(delay time.Duration) Sequence {
	if delay < 0 {
		delay = 0
	}
	return Sequence{
		Name:  "login",
		Steps: []Step{{Message: "Logging in...", Duration: delay}},
	}
}
