package racer

import (
	"testing"

	"github.com/pkozlov/calcade/internal/core"
)

func testConfig() core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     7,
	}
}

func TestInitialState(t *testing.T) {
	g := New()
	g.Reset(testConfig())

	if g.lane != g.cfg.Lanes/2 {
		t.Errorf("initial lane = %d, expected middle lane %d", g.lane, g.cfg.Lanes/2)
	}
	if got := g.State(); got.Score != 0 || got.Status != core.StatusPlaying {
		t.Errorf("initial state = %+v", got)
	}
}

func TestDeterminism(t *testing.T) {
	cfg := testConfig()

	inputs := make([]core.InputFrame, 600)
	for i := range inputs {
		inputs[i] = core.NewInputFrame()
		switch (i / 40) % 3 {
		case 0:
			inputs[i].Set(core.ActionLeft)
		case 1:
			inputs[i].Set(core.ActionRight)
		}
	}

	run := func() []Snapshot {
		g := New()
		g.Reset(cfg)
		snaps := make([]Snapshot, 0, len(inputs))
		for _, in := range inputs {
			g.Step(in)
			snaps = append(snaps, g.Snapshot())
		}
		return snaps
	}

	s1 := run()
	s2 := run()
	for i := range s1 {
		if s1[i] != s2[i] {
			t.Fatalf("snapshots diverge at tick %d: %+v vs %+v", i, s1[i], s2[i])
		}
	}
}

func TestSteerOneLanePerPress(t *testing.T) {
	g := New()
	g.Reset(testConfig())
	start := g.lane

	// Holding the key for many ticks still moves one lane.
	in := core.NewInputFrame()
	in.Set(core.ActionLeft)
	for i := 0; i < 10; i++ {
		g.Step(in)
	}
	if g.lane != start-1 {
		t.Errorf("lane = %d after held left, expected %d", g.lane, start-1)
	}

	// Release and press again moves another lane.
	g.Step(core.NewInputFrame())
	g.Step(in)
	if g.lane != start-2 {
		t.Errorf("lane = %d after second press, expected %d", g.lane, start-2)
	}
}

func TestSteerClampsAtEdges(t *testing.T) {
	g := New()
	g.Reset(testConfig())
	g.lane = 0

	in := core.NewInputFrame()
	in.Set(core.ActionLeft)
	g.Step(in)

	if g.lane != 0 {
		t.Errorf("lane = %d, expected clamped at 0", g.lane)
	}
}

func TestOffFieldCarsDespawnAndScore(t *testing.T) {
	g := New()
	g.Reset(testConfig())

	// A car one step from the bottom edge, in another lane.
	other := (g.lane + 1) % g.cfg.Lanes
	g.traffic = append(g.traffic, car{lane: other, y: float64(g.runtime.ScreenH) - 0.1})

	res := g.Step(core.NewInputFrame())

	if len(g.traffic) != 0 {
		t.Errorf("traffic count = %d, expected car despawned", len(g.traffic))
	}
	if res.State.Score != g.cfg.NearMiss {
		t.Errorf("score = %d, expected near-miss payout %d", res.State.Score, g.cfg.NearMiss)
	}
}

func TestCollisionEndsGame(t *testing.T) {
	g := New()
	g.Reset(testConfig())

	// Drop a car just above the player row in the player's lane.
	g.traffic = append(g.traffic, car{lane: g.lane, y: float64(g.playerRow()) - 0.1})

	res := g.Step(core.NewInputFrame())
	if res.State.Status != core.StatusLost {
		t.Fatalf("status = %v, expected lost", res.State.Status)
	}

	gameOver := false
	for _, c := range res.Cues {
		if c == core.CueGameOver {
			gameOver = true
		}
	}
	if !gameOver {
		t.Error("crash should emit the game-over cue")
	}
}

func TestCollisionAtFullDifficulty(t *testing.T) {
	g := New()
	g.Reset(testConfig())

	// Past the progression cap a car covers more than one row per tick.
	// One just above the player must still crash, not step over the row.
	g.score = 100
	g.traffic = append(g.traffic, car{lane: g.lane, y: float64(g.playerRow()) - 0.05})

	res := g.Step(core.NewInputFrame())
	if res.State.Status != core.StatusLost {
		t.Fatalf("status = %v, expected lost at full speed", res.State.Status)
	}
}

func TestDodgedCarPassesThrough(t *testing.T) {
	g := New()
	g.Reset(testConfig())

	other := (g.lane + 1) % g.cfg.Lanes
	g.traffic = append(g.traffic, car{lane: other, y: float64(g.playerRow()) - 0.1})

	res := g.Step(core.NewInputFrame())
	if res.State.Status != core.StatusPlaying {
		t.Errorf("status = %v, expected still playing after a dodge", res.State.Status)
	}
}

func TestTerminalStateFreezes(t *testing.T) {
	g := New()
	g.Reset(testConfig())
	g.status = core.StatusLost

	before := g.Snapshot()
	in := core.NewInputFrame()
	in.Set(core.ActionLeft)
	for i := 0; i < 10; i++ {
		g.Step(in)
	}
	if after := g.Snapshot(); before != after {
		t.Errorf("terminal state mutated by ticks: %+v vs %+v", before, after)
	}
}

func TestRestartFromTerminal(t *testing.T) {
	g := New()
	g.Reset(testConfig())
	g.score = 30
	g.status = core.StatusLost

	in := core.NewInputFrame()
	in.Set(core.ActionRestart)
	res := g.Step(in)

	if res.State.Score != 0 || res.State.Status != core.StatusPlaying {
		t.Errorf("restart state = %+v", res.State)
	}
}
