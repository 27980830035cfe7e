package game

import (
	"fmt"

	"github.com/Aditya232-rtx/bouncetales/internal/config"
	"github.com/Aditya232-rtx/bouncetales/internal/core"
	"github.com/Aditya232-rtx/bouncetales/internal/registry"
	"github.com/Aditya232-rtx/bouncetales/internal/skin"
)

// Game states.
const (
	StatePlaying  = "playing"
	StatePaused   = "paused"
	StateCleared  = "cleared" // Level complete, waiting for confirm
	StateGameOver = "gameover"
	StateWin      = "win" // All levels cleared
)

// Display glyphs.
const (
	glyphPlatform = '█'
	glyphMover    = '▬'
	glyphWater    = '≈'
	glyphGoal     = '▒'
	glyphHazard   = '¤'
	glyphGlow     = '·'
)

// Package-level options applied on the next Reset. Set by the CLI and
// the menu before the game starts.
var (
	configPath       string
	difficultyPreset config.DifficultyPreset
	startLevel       int
	playerSkin       = skin.Default()
)

// SetConfigPath overrides the config file location.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset selects a difficulty preset ("" keeps config values).
func SetDifficultyPreset(preset string) {
	difficultyPreset = config.DifficultyPreset(preset)
}

// SetStartLevel selects the level the next run starts on.
// Out-of-range values are clamped when the run starts.
func SetStartLevel(index int) {
	startLevel = index
}

// SetSkin installs the player's customization for the next run.
// The skin is copied; later edits do not affect a run in progress.
func SetSkin(s skin.Skin) {
	s.Clamp()
	playerSkin = s
}

// Game is the bounce platformer. Pure simulation: no I/O, no timers.
type Game struct {
	runtime    core.RuntimeConfig
	cfg        config.BounceConfig
	difficulty *config.DifficultyManager
	sk         skin.Skin

	ball     *Ball
	level    *Level
	pristine *Level // Untouched copy of the current level for exact resets
	effects  *EffectManager

	state      string
	score      int
	lives      int
	levelIndex int
	tickCount  int

	respawnDelay    int // Ticks until control resumes after losing a life
	levelStartScore int // Score at level entry, restored on level reset

	worldTop       int // Rows reserved for the HUD
	offsetX        int // Horizontal centering offset
	screenTooSmall bool
	minScreenW     int
	minScreenH     int
}

// New creates an uninitialized game. Reset must be called before Step.
func New() registry.Game {
	return &Game{}
}

func init() {
	registry.Register("bounce", New)
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "bounce"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Bounce Tales"
}

// Reset initializes a fresh run: config, difficulty, skin, lives, and the
// starting level.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.runtime = cfg

	loaded, err := config.LoadBounce(configPath)
	if err != nil {
		loaded = config.DefaultBounceConfig()
	}
	if difficultyPreset != "" {
		config.ApplyBouncePreset(&loaded, difficultyPreset)
	}
	g.cfg = loaded
	g.difficulty = config.NewDifficultyManager(loaded.Difficulty)

	g.sk = playerSkin
	g.sk.Clamp()

	g.effects = NewEffectManager(DefaultEffectConfig())
	g.score = 0
	g.lives = loaded.Gameplay.Lives
	g.tickCount = 0
	g.respawnDelay = 0

	g.worldTop = 2
	g.loadLevel(core.Clamp(startLevel, 0, LevelCount()-1))
	g.state = StatePlaying
}

// loadLevel enters the level at the given index, keeping a pristine copy
// so a restart never re-parses.
func (g *Game) loadLevel(index int) {
	g.levelIndex = index
	g.pristine = GetLevel(index)
	g.level = g.pristine.Clone()
	g.levelStartScore = g.score
	g.effects.Reset()
	g.spawnBall()
	g.layout()
}

// resetLevel restores the current level exactly as it was on entry:
// gems respawn, hazards and movers return to their parsed positions,
// and the score reverts to its value at level entry.
func (g *Game) resetLevel() {
	g.level = g.pristine.Clone()
	g.score = g.levelStartScore
	g.effects.Reset()
	g.respawnDelay = 0
	g.spawnBall()
	g.state = StatePlaying
}

func (g *Game) spawnBall() {
	g.ball = NewBall(BallParams{
		X:      g.level.StartX,
		Y:      g.level.StartY,
		Radius: g.sk.Radius(),
		Bounce: g.sk.Bounce,
		Style: BallStyle{
			Color:        core.ParseColor(g.sk.Color),
			PatternColor: core.ParseColor(g.sk.PatternColor),
			Texture:      g.sk.Texture,
			Opacity:      g.sk.Opacity,
			Glow:         g.sk.Glow,
			GlowSize:     g.sk.GlowSize,
		},
	})
}

func (g *Game) layout() {
	g.minScreenW = g.level.Width
	g.minScreenH = g.level.Height + g.worldTop
	g.screenTooSmall = g.runtime.ScreenW < g.minScreenW || g.runtime.ScreenH < g.minScreenH
	g.offsetX = (g.runtime.ScreenW - g.level.Width) / 2
	if g.offsetX < 0 {
		g.offsetX = 0
	}
}

// Step advances the simulation by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	switch g.state {
	case StateGameOver, StateWin:
		if in.Has(core.ActionRestart) || in.Has(core.ActionConfirm) {
			g.Reset(g.runtime)
		}
		return g.result()

	case StateCleared:
		if in.Has(core.ActionConfirm) || in.Has(core.ActionJump) {
			if g.levelIndex+1 >= LevelCount() {
				g.state = StateWin
			} else {
				g.loadLevel(g.levelIndex + 1)
				g.state = StatePlaying
			}
		}
		return g.result()

	case StatePaused:
		if in.Has(core.ActionPause) {
			g.state = StatePlaying
		}
		return g.result()
	}

	// Playing
	if in.Has(core.ActionPause) {
		g.state = StatePaused
		return g.result()
	}
	if in.Has(core.ActionRestart) {
		g.resetLevel()
		return g.result()
	}

	g.tickCount++
	g.effects.Expire(g.tickCount)

	// World keeps moving during the respawn pause, the ball does not.
	g.updateMovers()
	g.updateHazards()

	if g.respawnDelay > 0 {
		g.respawnDelay--
		return g.result()
	}

	g.stepBall(in)
	g.collectGems()
	g.checkHazards()
	g.checkGoal()

	return g.result()
}

func (g *Game) result() core.StepResult {
	return core.StepResult{State: g.State()}
}

// updateMovers advances moving platforms and carries a ball standing on one.
func (g *Game) updateMovers() {
	for i := range g.level.Movers {
		m := &g.level.Movers[i]
		standing := g.ball.Grounded &&
			g.ball.X >= m.Rect.X-g.ball.Radius && g.ball.X <= m.Rect.Right()+g.ball.Radius &&
			g.ball.Y+g.ball.Radius >= m.Rect.Y-0.2 && g.ball.Y+g.ball.Radius <= m.Rect.Y+0.2
		delta := m.Update()
		if standing && g.respawnDelay == 0 {
			g.ball.X += delta
		}
	}
}

func (g *Game) updateHazards() {
	speed := g.difficulty.HazardSpeed(HazardBaseSpeed, g.levelIndex, g.tickCount)
	for i := range g.level.Hazards {
		g.level.Hazards[i].Update(speed)
	}
}

// stepBall applies input, gravity, and collisions for one tick.
func (g *Game) stepBall(in core.InputFrame) {
	b := g.ball
	phys := g.cfg.Physics

	// Jumping only works from the ground.
	if in.Has(core.ActionJump) && b.Grounded {
		b.VY = phys.JumpImpulse
		b.Grounded = false
	}

	accel := phys.MoveAccel
	if g.effects.Has(EffectSpeed) {
		accel *= g.effects.Config.SpeedAccelScale
	}
	switch {
	case in.Has(core.ActionLeft):
		b.VX -= accel
	case in.Has(core.ActionRight):
		b.VX += accel
	case b.Grounded:
		b.VX *= phys.Friction
		if b.VX > -0.001 && b.VX < 0.001 {
			b.VX = 0
		}
	}
	b.VX = core.ClampF(b.VX, -phys.MaxSpeedX, phys.MaxSpeedX)

	gravity := g.difficulty.Gravity(phys.Gravity, g.levelIndex, g.tickCount)
	if g.inWater() {
		gravity *= phys.WaterGravityScale
	}
	if g.effects.Has(EffectFeather) {
		gravity *= g.effects.Config.FeatherGravityScale
	}
	b.VY += gravity
	if b.VY > phys.MaxFallSpeed {
		b.VY = phys.MaxFallSpeed
	}

	b.Move()

	// The ball is airborne unless a collision below says otherwise.
	b.Grounded = false
	for _, p := range g.level.Platforms {
		g.collide(p)
	}
	for i := range g.level.Movers {
		g.collide(g.level.Movers[i].Rect)
	}

	// World bounds: the ball never leaves the level horizontally.
	if b.X < b.Radius {
		b.X = b.Radius
		b.VX *= phys.WallBounce
	} else if b.X > float64(g.level.Width)-b.Radius {
		b.X = float64(g.level.Width) - b.Radius
		b.VX *= phys.WallBounce
	}
}

// collide resolves the ball against one rectangle and applies the bounce
// response for the face that was hit.
func (g *Game) collide(r FRect) {
	b := g.ball
	phys := g.cfg.Physics

	switch ResolveCircleRect(b, r) {
	case CollisionTop:
		if b.VY > 0 {
			rebound := b.VY * b.Bounce
			if rebound <= phys.MinBounce {
				b.VY = 0
				b.Grounded = true
			} else {
				b.VY = -rebound
			}
		} else if b.VY == 0 {
			b.Grounded = true
		}
	case CollisionBottom:
		if b.VY < 0 {
			b.VY = -b.VY * 0.5
		}
	case CollisionLeft, CollisionRight:
		b.VX *= phys.WallBounce
	}
}

func (g *Game) inWater() bool {
	for _, w := range g.level.Water {
		if CircleOverlapsRect(g.ball.X, g.ball.Y, g.ball.Radius, w) {
			return true
		}
	}
	return false
}

// collectGems consumes gems the ball touches. Each gem triggers exactly once.
func (g *Game) collectGems() {
	b := g.ball
	reach := b.Radius + 0.5
	for i := range g.level.Gems {
		gem := &g.level.Gems[i]
		if gem.Collected {
			continue
		}
		dx := b.X - gem.X
		dy := b.Y - gem.Y
		if dx*dx+dy*dy > reach*reach {
			continue
		}
		gem.Collected = true

		switch gem.Type {
		case GemPoint:
			g.score += g.cfg.Gameplay.GemPoints
		case GemLife:
			g.lives++
		case GemFeather:
			g.effects.Add(EffectFeather, g.tickCount, g.effects.Config.DurationFeather)
		case GemSpeed:
			g.effects.Add(EffectSpeed, g.tickCount, g.effects.Config.DurationSpeed)
		}
	}
}

func (g *Game) checkHazards() {
	b := g.ball
	for i := range g.level.Hazards {
		if CircleOverlapsRect(b.X, b.Y, b.Radius, g.level.Hazards[i].Bounds()) {
			g.loseLife()
			return
		}
	}
	if b.Y > float64(g.level.Height)+2 {
		g.loseLife()
	}
}

// loseLife handles hazard contact or falling out of the world.
// Collected gems stay collected; only the ball respawns.
func (g *Game) loseLife() {
	g.lives--
	if g.lives <= 0 {
		g.lives = 0
		g.state = StateGameOver
		return
	}
	g.effects.Reset()
	g.spawnBall()
	g.respawnDelay = g.cfg.Gameplay.RespawnDelay
}

func (g *Game) checkGoal() {
	b := g.ball
	if !CircleOverlapsRect(b.X, b.Y, b.Radius, g.level.Goal) {
		return
	}
	g.score += g.cfg.Gameplay.LevelBonus * (g.levelIndex + 1)
	g.state = StateCleared
}

// LevelNumber returns the 1-based number of the current level.
func (g *Game) LevelNumber() int {
	return g.levelIndex + 1
}

// Won reports whether the run ended with every level cleared.
func (g *Game) Won() bool {
	return g.state == StateWin
}

// Cleared reports whether the current level was just completed and the
// game is sitting on the level-complete screen.
func (g *Game) Cleared() bool {
	return g.state == StateCleared
}

// State returns the platform-visible game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		GameOver: g.state == StateGameOver || g.state == StateWin,
		Paused:   g.state == StatePaused,
	}
}

// Render draws the HUD, level, and ball into the screen buffer.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.screenTooSmall {
		dst.DrawTextCentered(dst.Height()/2,
			fmt.Sprintf("Terminal too small: need %dx%d", g.minScreenW, g.minScreenH))
		return
	}

	g.renderHUD(dst)
	g.renderLevel(dst)
	g.renderBall(dst)
	g.renderOverlay(dst)
}

func (g *Game) renderHUD(dst *core.Screen) {
	dst.DrawText(1, 0, fmt.Sprintf("Score: %d", g.score))
	dst.DrawTextCentered(0, fmt.Sprintf("Lives: %d", g.lives))
	right := fmt.Sprintf("Level %d/%d  %s", g.levelIndex+1, LevelCount(), g.level.Name)
	dst.DrawText(dst.Width()-len([]rune(right))-1, 0, right)

	hud := ""
	if r := g.effects.Remaining(EffectFeather, g.tickCount); r > 0 {
		hud += fmt.Sprintf("Feather %ds  ", (r+59)/60)
	}
	if r := g.effects.Remaining(EffectSpeed, g.tickCount); r > 0 {
		hud += fmt.Sprintf("Speed %ds  ", (r+59)/60)
	}
	if hud != "" {
		dst.DrawTextColored(1, 1, hud, core.ColorBrightCyan)
	} else {
		dst.DrawHLine(0, 1, dst.Width(), '─')
	}
}

func (g *Game) renderLevel(dst *core.Screen) {
	for _, p := range g.level.Platforms {
		g.drawWorldRect(dst, p, glyphPlatform, core.ColorDefault)
	}
	for _, w := range g.level.Water {
		g.drawWorldRect(dst, w, glyphWater, core.ColorCyan)
	}
	g.drawWorldRect(dst, g.level.Goal, glyphGoal, core.ColorBrightYellow)
	for i := range g.level.Movers {
		g.drawWorldRect(dst, g.level.Movers[i].Rect, glyphMover, core.ColorWhite)
	}
	for i := range g.level.Hazards {
		h := &g.level.Hazards[i]
		dst.SetCell(g.offsetX+int(h.X), g.worldTop+int(h.Y), glyphHazard, core.ColorBrightRed)
	}
	for i := range g.level.Gems {
		gem := &g.level.Gems[i]
		if gem.Collected {
			continue
		}
		c := core.ColorYellow
		if gem.Type == GemLife {
			c = core.ColorRed
		}
		dst.SetCell(g.offsetX+int(gem.X), g.worldTop+int(gem.Y), gem.Type.Glyph(), c)
	}
}

func (g *Game) drawWorldRect(dst *core.Screen, r FRect, fill rune, c core.Color) {
	for y := int(r.Y); y < int(r.Y)+int(r.H); y++ {
		for x := int(r.X); x < int(r.X)+int(r.W); x++ {
			dst.SetCell(g.offsetX+x, g.worldTop+y, fill, c)
		}
	}
}

func (g *Game) renderBall(dst *core.Screen) {
	b := g.ball
	x := g.offsetX + b.CellX()
	y := g.worldTop + b.CellY()

	if b.Style.Glow {
		halo := core.ColorGray
		dst.SetCell(x-1, y, glyphGlow, halo)
		dst.SetCell(x+1, y, glyphGlow, halo)
		dst.SetCell(x, y-1, glyphGlow, halo)
		dst.SetCell(x, y+1, glyphGlow, halo)
		if b.Style.GlowSize >= 2.0 {
			dst.SetCell(x-1, y-1, glyphGlow, halo)
			dst.SetCell(x+1, y-1, glyphGlow, halo)
			dst.SetCell(x-1, y+1, glyphGlow, halo)
			dst.SetCell(x+1, y+1, glyphGlow, halo)
		}
	}

	c := b.Style.Color
	if b.Style.Opacity < 128 {
		c = core.ColorGray
	}
	dst.SetCell(x, y, textureGlyph(b.Style.Texture), c)
}

func textureGlyph(texture string) rune {
	switch texture {
	case "striped":
		return '◒'
	case "gradient":
		return '◐'
	case "polka":
		return '◌'
	default:
		return '●'
	}
}

func (g *Game) renderOverlay(dst *core.Screen) {
	switch g.state {
	case StatePaused:
		g.drawCenteredBox(dst, []string{"PAUSED", "", "Press P to resume"})
	case StateCleared:
		g.drawCenteredBox(dst, []string{
			fmt.Sprintf("Level %d cleared!", g.levelIndex+1),
			fmt.Sprintf("Score: %d", g.score),
			"",
			"Press Enter to continue",
		})
	case StateGameOver:
		g.drawCenteredBox(dst, []string{
			"GAME OVER",
			fmt.Sprintf("Final score: %d", g.score),
			"",
			"Press R to play again",
		})
	case StateWin:
		g.drawCenteredBox(dst, []string{
			"YOU WIN!",
			fmt.Sprintf("Final score: %d", g.score),
			"",
			"Press R to play again",
		})
	default:
		if g.respawnDelay > 0 {
			dst.DrawTextCentered(g.worldTop+g.level.Height/2, "Get ready...")
		}
	}
}

func (g *Game) drawCenteredBox(dst *core.Screen, lines []string) {
	width := 0
	for _, line := range lines {
		if n := len([]rune(line)); n > width {
			width = n
		}
	}
	width += 4
	height := len(lines) + 2

	box := core.NewRect((dst.Width()-width)/2, (dst.Height()-height)/2, width, height)
	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box)
	for i, line := range lines {
		dst.DrawTextCentered(box.Y+1+i, line)
	}
}
