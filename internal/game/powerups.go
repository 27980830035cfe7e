package game

// GemType represents the kinds of collectible gems.
type GemType int

const (
	GemPoint   GemType = iota // Awards points
	GemLife                   // Awards an extra life
	GemFeather                // Low gravity for a while
	GemSpeed                  // Faster horizontal acceleration for a while
)

// Glyph returns the display character for a gem type.
func (t GemType) Glyph() rune {
	switch t {
	case GemPoint:
		return '♦'
	case GemLife:
		return '♥'
	case GemFeather:
		return '^'
	case GemSpeed:
		return '+'
	default:
		return '?'
	}
}

// String returns the name of the gem type.
func (t GemType) String() string {
	switch t {
	case GemPoint:
		return "Gem"
	case GemLife:
		return "Life"
	case GemFeather:
		return "Feather"
	case GemSpeed:
		return "Speed"
	default:
		return "?"
	}
}

// Gem is a collectible placed by the level. Contact consumes it exactly once.
type Gem struct {
	Type      GemType
	X, Y      float64 // Center position
	Collected bool
}

// EffectType represents a timed effect granted by a gem.
type EffectType int

const (
	EffectFeather EffectType = iota // Gravity is scaled down
	EffectSpeed                     // Horizontal acceleration is scaled up
)

// String returns a short label for HUD display.
func (t EffectType) String() string {
	switch t {
	case EffectFeather:
		return "Feather"
	case EffectSpeed:
		return "Speed"
	default:
		return "?"
	}
}

// Effect is an active timed effect.
type Effect struct {
	Type      EffectType
	UntilTick int // Tick at which the effect expires
}

// TicksRemaining returns how many ticks until the effect expires.
func (e *Effect) TicksRemaining(currentTick int) int {
	remaining := e.UntilTick - currentTick
	if remaining < 0 {
		return 0
	}
	return remaining
}

// EffectConfig holds durations and strengths for gem effects.
type EffectConfig struct {
	// Durations in ticks (60 ticks = 1 second at 60 FPS)
	DurationFeather int
	DurationSpeed   int

	FeatherGravityScale float64 // Gravity multiplier while feather is active
	SpeedAccelScale     float64 // Acceleration multiplier while speed is active
}

// DefaultEffectConfig returns the default effect configuration.
func DefaultEffectConfig() EffectConfig {
	return EffectConfig{
		DurationFeather:     600, // 10 seconds
		DurationSpeed:       480, // 8 seconds
		FeatherGravityScale: 0.4,
		SpeedAccelScale:     1.6,
	}
}

// EffectManager tracks active timed effects.
type EffectManager struct {
	Config  EffectConfig
	Effects []*Effect
}

// NewEffectManager creates an effect manager.
func NewEffectManager(cfg EffectConfig) *EffectManager {
	return &EffectManager{
		Config:  cfg,
		Effects: make([]*Effect, 0),
	}
}

// Reset clears all active effects.
func (em *EffectManager) Reset() {
	em.Effects = em.Effects[:0]
}

// Add adds or extends an effect.
func (em *EffectManager) Add(effectType EffectType, currentTick, duration int) {
	for _, e := range em.Effects {
		if e.Type == effectType {
			e.UntilTick = currentTick + duration
			return
		}
	}
	em.Effects = append(em.Effects, &Effect{
		Type:      effectType,
		UntilTick: currentTick + duration,
	})
}

// Expire removes effects that have expired and returns their types.
func (em *EffectManager) Expire(currentTick int) []EffectType {
	expired := make([]EffectType, 0)
	active := em.Effects[:0]

	for _, e := range em.Effects {
		if e.UntilTick <= currentTick {
			expired = append(expired, e.Type)
		} else {
			active = append(active, e)
		}
	}

	em.Effects = active
	return expired
}

// Has returns true if the given effect is active.
func (em *EffectManager) Has(effectType EffectType) bool {
	for _, e := range em.Effects {
		if e.Type == effectType {
			return true
		}
	}
	return false
}

// Remaining returns ticks remaining for an effect, or 0 if not active.
func (em *EffectManager) Remaining(effectType EffectType, currentTick int) int {
	for _, e := range em.Effects {
		if e.Type == effectType {
			return e.TicksRemaining(currentTick)
		}
	}
	return 0
}
