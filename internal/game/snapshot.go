package game

import (
	"math"

	"github.com/Aditya232-rtx/bouncetales/internal/core"
)

// Snapshot captures the full simulation state as primitive values.
// Float positions and velocities are stored in millicells so two runs
// can be compared exactly. Used by tests and for save/restore.
type Snapshot struct {
	Tick  int
	State string

	BallX    int // millicells
	BallY    int
	BallVX   int
	BallVY   int
	Grounded bool

	Score           int
	Lives           int
	LevelIndex      int
	RespawnDelay    int
	LevelStartScore int

	// Flattened entity state: one group of values per entity.
	GemData    []int // collected flag per gem
	HazardData []int // x millicells, direction per hazard
	MoverData  []int // rect x millicells, direction per mover
	EffectData []int // type, expiry tick per active effect
}

func toMilli(v float64) int {
	return int(math.Round(v * 1000))
}

func fromMilli(v int) float64 {
	return float64(v) / 1000
}

// Snapshot returns the current simulation state.
func (g *Game) Snapshot() Snapshot {
	s := Snapshot{
		Tick:            g.tickCount,
		State:           g.state,
		BallX:           toMilli(g.ball.X),
		BallY:           toMilli(g.ball.Y),
		BallVX:          toMilli(g.ball.VX),
		BallVY:          toMilli(g.ball.VY),
		Grounded:        g.ball.Grounded,
		Score:           g.score,
		Lives:           g.lives,
		LevelIndex:      g.levelIndex,
		RespawnDelay:    g.respawnDelay,
		LevelStartScore: g.levelStartScore,
	}

	for _, gem := range g.level.Gems {
		flag := 0
		if gem.Collected {
			flag = 1
		}
		s.GemData = append(s.GemData, flag)
	}
	for _, h := range g.level.Hazards {
		s.HazardData = append(s.HazardData, toMilli(h.X), int(h.Dir))
	}
	for _, m := range g.level.Movers {
		s.MoverData = append(s.MoverData, toMilli(m.Rect.X), int(m.Dir))
	}
	for _, e := range g.effects.Effects {
		s.EffectData = append(s.EffectData, int(e.Type), e.UntilTick)
	}

	return s
}

// ApplySnapshot restores the simulation from a snapshot. The snapshot
// must come from a game on the same level layout.
func (g *Game) ApplySnapshot(s Snapshot) {
	if g.levelIndex != s.LevelIndex {
		g.loadLevel(core.Clamp(s.LevelIndex, 0, LevelCount()-1))
	}

	g.tickCount = s.Tick
	g.state = s.State
	g.ball.X = fromMilli(s.BallX)
	g.ball.Y = fromMilli(s.BallY)
	g.ball.VX = fromMilli(s.BallVX)
	g.ball.VY = fromMilli(s.BallVY)
	g.ball.Grounded = s.Grounded
	g.score = s.Score
	g.lives = s.Lives
	g.respawnDelay = s.RespawnDelay
	g.levelStartScore = s.LevelStartScore

	for i := range g.level.Gems {
		if i < len(s.GemData) {
			g.level.Gems[i].Collected = s.GemData[i] == 1
		}
	}
	for i := range g.level.Hazards {
		if i*2+1 < len(s.HazardData) {
			g.level.Hazards[i].X = fromMilli(s.HazardData[i*2])
			g.level.Hazards[i].Dir = float64(s.HazardData[i*2+1])
		}
	}
	for i := range g.level.Movers {
		if i*2+1 < len(s.MoverData) {
			g.level.Movers[i].Rect.X = fromMilli(s.MoverData[i*2])
			g.level.Movers[i].Dir = float64(s.MoverData[i*2+1])
		}
	}

	g.effects.Reset()
	for i := 0; i+1 < len(s.EffectData); i += 2 {
		g.effects.Effects = append(g.effects.Effects, &Effect{
			Type:      EffectType(s.EffectData[i]),
			UntilTick: s.EffectData[i+1],
		})
	}
}

// Hash produces a stable hash of the snapshot for determinism checks.
func (s Snapshot) Hash() uint64 {
	var h uint64 = 14695981039346656037

	mix := func(v int) {
		h = h*31 + uint64(v) //#nosec G115 -- hash mixing, overflow is fine
	}
	mixBool := func(b bool) {
		if b {
			mix(1)
		} else {
			mix(0)
		}
	}

	mix(s.Tick)
	for _, ch := range s.State {
		mix(int(ch))
	}
	mix(s.BallX)
	mix(s.BallY)
	mix(s.BallVX)
	mix(s.BallVY)
	mixBool(s.Grounded)
	mix(s.Score)
	mix(s.Lives)
	mix(s.LevelIndex)
	mix(s.RespawnDelay)
	mix(s.LevelStartScore)
	for _, v := range s.GemData {
		mix(v)
	}
	for _, v := range s.HazardData {
		mix(v)
	}
	for _, v := range s.MoverData {
		mix(v)
	}
	for _, v := range s.EffectData {
		mix(v)
	}
	return h
}
