package shooter

import (
	"testing"

	"github.com/pkozlov/calcade/internal/core"
)

func testConfig() core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     99,
	}
}

func TestInitialState(t *testing.T) {
	g := New()
	g.Reset(testConfig())

	if g.shield != g.cfg.Player.ShieldPoints {
		t.Errorf("shield = %d, expected %d", g.shield, g.cfg.Player.ShieldPoints)
	}
	if got := g.State(); got.Score != 0 || got.Status != core.StatusPlaying {
		t.Errorf("initial state = %+v", got)
	}
}

func TestDeterminism(t *testing.T) {
	cfg := testConfig()

	inputs := make([]core.InputFrame, 500)
	for i := range inputs {
		inputs[i] = core.NewInputFrame()
		if i%3 == 0 {
			inputs[i].Set(core.ActionFire)
		}
		if (i/30)%2 == 0 {
			inputs[i].Set(core.ActionLeft)
		} else {
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

func TestFireCooldown(t *testing.T) {
	g := New()
	g.Reset(testConfig())

	// Park the ship at the bottom so the first bullet is still in flight
	// when the cooldown expires.
	g.shipY = float64(g.runtime.ScreenH - 1)

	in := core.NewInputFrame()
	in.Set(core.ActionFire)

	g.Step(in)
	if len(g.bullets) != 1 {
		t.Fatalf("bullets after first fire = %d, expected 1", len(g.bullets))
	}

	// Holding fire during the cooldown adds no bullets.
	for i := 0; i < g.cfg.Player.FireCooldown-1; i++ {
		g.Step(in)
	}
	if len(g.bullets) != 1 {
		t.Errorf("bullets during cooldown = %d, expected 1", len(g.bullets))
	}

	g.Step(in)
	if len(g.bullets) != 2 {
		t.Errorf("bullets after cooldown expired = %d, expected 2", len(g.bullets))
	}
}

func TestEnemyHomesTowardShip(t *testing.T) {
	g := New()
	g.Reset(testConfig())

	g.enemies = append(g.enemies, enemy{x: 0, y: 0})
	before := g.enemies[0]
	g.moveEnemies()
	after := g.enemies[0]

	distBefore := (g.shipX-before.x)*(g.shipX-before.x) + (g.shipY-before.y)*(g.shipY-before.y)
	distAfter := (g.shipX-after.x)*(g.shipX-after.x) + (g.shipY-after.y)*(g.shipY-after.y)
	if distAfter >= distBefore {
		t.Errorf("enemy did not close distance: %f -> %f", distBefore, distAfter)
	}
}

func TestEnemyOnShipHoldsPosition(t *testing.T) {
	g := New()
	g.Reset(testConfig())

	g.enemies = append(g.enemies, enemy{x: g.shipX, y: g.shipY})
	g.moveEnemies()

	if g.enemies[0].x != g.shipX || g.enemies[0].y != g.shipY {
		t.Error("zero-distance enemy should not move")
	}
}

func TestSpawnNeverOnShipCell(t *testing.T) {
	g := New()
	g.Reset(testConfig())

	// Park the ship on an edge so edge spawns could land on it.
	g.shipX = 0
	g.shipY = 12

	for i := 0; i < 200; i++ {
		g.spawnEnemy()
	}
	for _, e := range g.enemies {
		if int(e.x) == int(g.shipX) && int(e.y) == int(g.shipY) {
			t.Fatalf("enemy spawned on the ship cell: (%f, %f)", e.x, e.y)
		}
	}
}

func TestShieldDrainEndsGame(t *testing.T) {
	g := New()
	g.Reset(testConfig())
	g.shield = 1

	g.enemies = append(g.enemies, enemy{x: g.shipX, y: g.shipY})
	res := g.Step(core.NewInputFrame())

	if res.State.Status != core.StatusLost {
		t.Fatalf("status = %v, expected lost at shield 0", res.State.Status)
	}

	gameOver := false
	for _, c := range res.Cues {
		if c == core.CueGameOver {
			gameOver = true
		}
	}
	if !gameOver {
		t.Error("losing should emit the game-over cue")
	}
}

func TestContactCostsOneShieldPoint(t *testing.T) {
	g := New()
	g.Reset(testConfig())
	start := g.shield

	g.enemies = append(g.enemies, enemy{x: g.shipX, y: g.shipY})
	res := g.Step(core.NewInputFrame())

	if g.shield != start-1 {
		t.Errorf("shield = %d, expected %d", g.shield, start-1)
	}
	if len(g.enemies) != 0 {
		t.Error("contacting enemy should despawn")
	}
	if res.State.Status != core.StatusPlaying {
		t.Errorf("status = %v, expected still playing", res.State.Status)
	}
}

func TestBulletKillScores(t *testing.T) {
	g := New()
	g.Reset(testConfig())

	g.bullets = append(g.bullets, bullet{x: 10, y: 10})
	g.enemies = append(g.enemies, enemy{x: 10, y: 10})

	killed := g.resolveBulletHits()
	if killed != 1 {
		t.Fatalf("killed = %d, expected 1", killed)
	}
	if len(g.enemies) != 0 || len(g.bullets) != 0 {
		t.Error("both bullet and enemy should be consumed by the hit")
	}
}

func TestTerminalStateFreezes(t *testing.T) {
	g := New()
	g.Reset(testConfig())
	g.status = core.StatusLost

	before := g.Snapshot()
	in := core.NewInputFrame()
	in.Set(core.ActionFire)
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
	g.score = 42
	g.shield = 0
	g.status = core.StatusLost

	in := core.NewInputFrame()
	in.Set(core.ActionRestart)
	res := g.Step(in)

	if res.State.Score != 0 || res.State.Status != core.StatusPlaying {
		t.Errorf("restart state = %+v", res.State)
	}
	if g.shield != g.cfg.Player.ShieldPoints {
		t.Errorf("shield after restart = %d", g.shield)
	}
}

func TestShipStaysInBounds(t *testing.T) {
	g := New()
	g.Reset(testConfig())

	in := core.NewInputFrame()
	in.Set(core.ActionLeft)
	in.Set(core.ActionUp)

	for i := 0; i < 100; i++ {
		g.Step(in)
		if g.shipX < 0 || g.shipY < 0 ||
			g.shipX > float64(g.runtime.ScreenW-1) || g.shipY > float64(g.runtime.ScreenH-1) {
			t.Fatalf("tick %d: ship out of bounds (%f, %f)", i, g.shipX, g.shipY)
		}
	}
}
