package core

// Status is the lifecycle state of a game simulation. Exactly one status
// holds at any time; Won and Lost are terminal and freeze the simulation
// until an explicit restart resets it.
type Status string

const (
	StatusPlaying   Status = "playing"
	StatusPaused    Status = "paused"
	StatusInSubMenu Status = "in-sub-menu" // an in-game overlay owns input
	StatusWon       Status = "won"
	StatusLost      Status = "lost"
)

// Terminal reports whether the status ends the run. Step is a no-op in a
// terminal status; only Reset (or a restart action) leaves it.
func (s Status) Terminal() bool {
	return s == StatusWon || s == StatusLost
}

// String returns the status name for logs and headless output.
func (s Status) String() string {
	return string(s)
}
