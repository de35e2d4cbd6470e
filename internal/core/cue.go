package core

// Cue is a fire-and-forget audio cue identifier emitted by games on
// specific transition edges. Cues carry no payload and require no
// acknowledgement; a missing audio collaborator never affects the
// simulation.
type Cue string

const (
	CueHit        Cue = "hit"
	CueWallBounce Cue = "wall-bounce"
	CuePickup     Cue = "pickup"
	CueShoot      Cue = "shoot"
	CueExplosion  Cue = "explosion"
	CueTierUp     Cue = "tier-up"
	CueGameOver   Cue = "game-over"
	CueWin        Cue = "win"
)
