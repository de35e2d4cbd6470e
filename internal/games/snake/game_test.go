package snake

import (
	"testing"

	"github.com/pkozlov/calcade/internal/core"
)

func testConfig() core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:  40,
		ScreenH:  20,
		TickRate: 60,
		Seed:     5,
	}
}

func TestInitialState(t *testing.T) {
	g := New()
	g.Reset(testConfig())

	if len(g.body) != 3 {
		t.Errorf("initial length = %d, expected 3", len(g.body))
	}
	if g.dir != (point{1, 0}) {
		t.Errorf("initial direction = %+v, expected right", g.dir)
	}
	if g.hits(g.food) {
		t.Error("food spawned inside the snake body")
	}
}

func TestDeterminism(t *testing.T) {
	cfg := testConfig()

	inputs := make([]core.InputFrame, 400)
	for i := range inputs {
		inputs[i] = core.NewInputFrame()
		switch (i / 50) % 4 {
		case 0:
			inputs[i].Set(core.ActionDown)
		case 1:
			inputs[i].Set(core.ActionLeft)
		case 2:
			inputs[i].Set(core.ActionUp)
		case 3:
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

func TestNoInstantReversal(t *testing.T) {
	g := New()
	g.Reset(testConfig())

	// Moving right; a left press must be rejected.
	in := core.NewInputFrame()
	in.Set(core.ActionLeft)
	g.bufferDirection(in)

	if g.nextDir != (point{1, 0}) {
		t.Errorf("nextDir = %+v, reversal should be rejected", g.nextDir)
	}

	// A perpendicular turn is accepted.
	in = core.NewInputFrame()
	in.Set(core.ActionUp)
	g.bufferDirection(in)
	if g.nextDir != (point{0, -1}) {
		t.Errorf("nextDir = %+v, expected up", g.nextDir)
	}
}

func TestBufferedDirectionAppliesOnMove(t *testing.T) {
	g := New()
	g.Reset(testConfig())
	head := g.body[0]

	// Press up once early in the interval; the move tick must honor it.
	in := core.NewInputFrame()
	in.Set(core.ActionUp)
	g.Step(in)

	none := core.NewInputFrame()
	for i := 0; i < baseMoveInterval+1 && g.dir != (point{0, -1}); i++ {
		g.Step(none)
	}
	if g.dir != (point{0, -1}) {
		t.Fatal("buffered turn never applied")
	}

	if g.body[0].y != head.y-1 {
		t.Errorf("head = %+v, expected a move up from %+v", g.body[0], head)
	}
}

func TestWallCollisionLoses(t *testing.T) {
	g := New()
	g.Reset(testConfig())

	none := core.NewInputFrame()
	for i := 0; i < 2000 && !g.status.Terminal(); i++ {
		g.Step(none) // runs right into the wall
	}

	if g.status != core.StatusLost {
		t.Fatalf("status = %v, expected lost at the wall", g.status)
	}
}

func TestSelfCollisionLoses(t *testing.T) {
	g := New()
	g.Reset(testConfig())

	// A body long enough to turn into: fabricate a hook shape.
	cx, cy := 20, 10
	g.body = []point{
		{cx, cy}, {cx - 1, cy}, {cx - 2, cy}, {cx - 2, cy + 1},
		{cx - 1, cy + 1}, {cx, cy + 1}, {cx + 1, cy + 1},
	}
	g.dir = point{1, 0}
	g.nextDir = point{0, 1} // turn straight into the body below

	g.moveTimer = 1
	res := g.Step(core.NewInputFrame())

	if res.State.Status != core.StatusLost {
		t.Fatalf("status = %v, expected lost on self collision", res.State.Status)
	}
}

func TestEatingGrowsAndScores(t *testing.T) {
	g := New()
	g.Reset(testConfig())

	// Put food directly ahead of the head.
	g.food = point{g.body[0].x + 1, g.body[0].y}
	lenBefore := len(g.body)

	g.moveTimer = 1
	res := g.Step(core.NewInputFrame())

	if res.State.Score != 1 {
		t.Errorf("score = %d, expected 1", res.State.Score)
	}
	if len(g.body) != lenBefore+1 {
		t.Errorf("length = %d, expected %d", len(g.body), lenBefore+1)
	}
	if g.hits(g.food) {
		t.Error("respawned food landed inside the snake body")
	}

	pickup := false
	for _, c := range res.Cues {
		if c == core.CuePickup {
			pickup = true
		}
	}
	if !pickup {
		t.Error("eating should emit the pickup cue")
	}
}

func TestSpeedIncreasesWithScore(t *testing.T) {
	g := New()
	g.Reset(testConfig())

	slow := g.moveInterval()
	g.score = 25
	fast := g.moveInterval()

	if fast >= slow {
		t.Errorf("interval did not shrink: %d -> %d", slow, fast)
	}

	g.score = 10000
	if g.moveInterval() < minMoveInterval {
		t.Errorf("interval below floor: %d", g.moveInterval())
	}
}

func TestTerminalStateFreezes(t *testing.T) {
	g := New()
	g.Reset(testConfig())
	g.status = core.StatusLost

	before := g.Snapshot()
	in := core.NewInputFrame()
	in.Set(core.ActionUp)
	for i := 0; i < 20; i++ {
		g.Step(in)
	}
	if after := g.Snapshot(); before != after {
		t.Errorf("terminal state mutated by ticks: %+v vs %+v", before, after)
	}
}

func TestRestartFromTerminal(t *testing.T) {
	g := New()
	g.Reset(testConfig())
	g.score = 9
	g.status = core.StatusLost

	in := core.NewInputFrame()
	in.Set(core.ActionRestart)
	res := g.Step(in)

	if res.State.Score != 0 || res.State.Status != core.StatusPlaying {
		t.Errorf("restart state = %+v", res.State)
	}
	if len(g.body) != 3 {
		t.Errorf("length after restart = %d, expected 3", len(g.body))
	}
}
