// Package game implements the ball-bouncing platformer: a ball is steered
// from a start position to a gold goal across platforms, water, moving
// platforms, and patrolling hazards, collecting gems along the way.
package game

// Default geometry for entities produced by the level parser.
const (
	HazardPatrolRange = 5.0  // Cells a hazard walks to each side of its spawn
	MoverTravel       = 6.0  // Cells a moving platform travels from its parsed position
	MoverBaseSpeed    = 0.08 // Cells per tick
	HazardBaseSpeed   = 0.06 // Cells per tick before difficulty scaling
)

// Hazard is a patrolling enemy. Touching it costs a life.
type Hazard struct {
	X, Y       float64 // Center position
	MinX, MaxX float64 // Patrol bounds
	Dir        float64 // +1 or -1
}

// Bounds returns the hazard's contact rectangle.
func (h *Hazard) Bounds() FRect {
	return FRect{X: h.X - 0.5, Y: h.Y - 0.5, W: 1, H: 1}
}

// Update advances the patrol by the given speed, reversing at the bounds.
func (h *Hazard) Update(speed float64) {
	h.X += h.Dir * speed
	if h.X <= h.MinX {
		h.X = h.MinX
		h.Dir = 1
	} else if h.X >= h.MaxX {
		h.X = h.MaxX
		h.Dir = -1
	}
}

// Mover is a platform that sweeps horizontally between StartX and EndX.
type Mover struct {
	Rect   FRect
	StartX float64
	EndX   float64
	Speed  float64
	Dir    float64 // +1 or -1
}

// Update advances the platform and returns the distance moved this tick.
// The caller uses the delta to carry a ball standing on the platform.
func (m *Mover) Update() float64 {
	old := m.Rect.X
	m.Rect.X += m.Dir * m.Speed
	if m.Rect.X <= m.StartX {
		m.Rect.X = m.StartX
		m.Dir = 1
	} else if m.Rect.X >= m.EndX {
		m.Rect.X = m.EndX
		m.Dir = -1
	}
	return m.Rect.X - old
}

// Level is a playable level: static geometry plus entity spawns.
type Level struct {
	ID     string
	Name   string
	Width  int // World width in cells
	Height int // World height in cells

	Platforms []FRect // Solid ground
	Water     []FRect // Non-solid zones that halve gravity
	Gems      []Gem
	Hazards   []Hazard
	Movers    []Mover

	StartX, StartY float64 // Ball spawn (center)
	Goal           FRect   // Reaching this completes the level
}

// Clone creates a deep copy of the level. The pristine parse result is
// cloned on load so a reset never re-parses.
func (l *Level) Clone() *Level {
	clone := &Level{
		ID:     l.ID,
		Name:   l.Name,
		Width:  l.Width,
		Height: l.Height,
		StartX: l.StartX,
		StartY: l.StartY,
		Goal:   l.Goal,
	}
	clone.Platforms = append([]FRect(nil), l.Platforms...)
	clone.Water = append([]FRect(nil), l.Water...)
	clone.Gems = append([]Gem(nil), l.Gems...)
	clone.Hazards = append([]Hazard(nil), l.Hazards...)
	clone.Movers = append([]Mover(nil), l.Movers...)
	return clone
}

// GemsRemaining returns the number of uncollected gems.
func (l *Level) GemsRemaining() int {
	count := 0
	for _, g := range l.Gems {
		if !g.Collected {
			count++
		}
	}
	return count
}

// ParseLevel creates a Level from an ASCII map.
// Characters:
//
//	'#' = platform (horizontal runs merge into one rect)
//	'M' = moving platform (run travels MoverTravel cells to the right)
//	'~' = water zone
//	'*' = point gem
//	'L' = extra-life gem
//	'F' = feather gem (low gravity)
//	'+' = speed gem
//	'E' = patrolling hazard
//	'S' = ball start
//	'G' = goal region (cells merge into a bounding rect)
//	'.' = empty
func ParseLevel(id, name string, lines []string) *Level {
	level := &Level{ID: id, Name: name, Height: len(lines)}

	maxWidth := 0
	for _, line := range lines {
		if len(line) > maxWidth {
			maxWidth = len(line)
		}
	}
	level.Width = maxWidth

	goalMinX, goalMinY := maxWidth, len(lines)
	goalMaxX, goalMaxY := -1, -1

	for row, line := range lines {
		col := 0
		for col < len(line) {
			ch := line[col]
			switch {
			case ch == '#' || ch == 'M' || ch == '~':
				// Merge the horizontal run into a single rect
				start := col
				for col < len(line) && line[col] == ch {
					col++
				}
				rect := FRect{X: float64(start), Y: float64(row), W: float64(col - start), H: 1}
				switch ch {
				case '#':
					level.Platforms = append(level.Platforms, rect)
				case 'M':
					level.Movers = append(level.Movers, Mover{
						Rect:   rect,
						StartX: rect.X,
						EndX:   rect.X + MoverTravel,
						Speed:  MoverBaseSpeed,
						Dir:    1,
					})
				case '~':
					level.Water = append(level.Water, rect)
				}
				continue

			case ch == '*' || ch == 'L' || ch == 'F' || ch == '+':
				level.Gems = append(level.Gems, Gem{
					Type: gemTypeForChar(ch),
					X:    float64(col) + 0.5,
					Y:    float64(row) + 0.5,
				})

			case ch == 'E':
				x := float64(col) + 0.5
				level.Hazards = append(level.Hazards, Hazard{
					X:    x,
					Y:    float64(row) + 0.5,
					MinX: x - HazardPatrolRange,
					MaxX: x + HazardPatrolRange,
					Dir:  1,
				})

			case ch == 'S':
				level.StartX = float64(col) + 0.5
				level.StartY = float64(row) + 0.5

			case ch == 'G':
				if col < goalMinX {
					goalMinX = col
				}
				if col > goalMaxX {
					goalMaxX = col
				}
				if row < goalMinY {
					goalMinY = row
				}
				if row > goalMaxY {
					goalMaxY = row
				}
			}
			col++
		}
	}

	if goalMaxX >= 0 {
		level.Goal = FRect{
			X: float64(goalMinX),
			Y: float64(goalMinY),
			W: float64(goalMaxX - goalMinX + 1),
			H: float64(goalMaxY - goalMinY + 1),
		}
	}

	return level
}

func gemTypeForChar(ch byte) GemType {
	switch ch {
	case 'L':
		return GemLife
	case 'F':
		return GemFeather
	case '+':
		return GemSpeed
	default:
		return GemPoint
	}
}

// BuiltinLevels returns all built-in levels.
func BuiltinLevels() []*Level {
	return []*Level{
		// Level 1: flat ground with pits, a water pool, and one patrol.
		ParseLevel("meadow", "Rolling Meadow", []string{
			"............................................................",
			"............................................................",
			"............................................................",
			"............................................................",
			"........*..............*...................................",
			"......######.........######.........*......................",
			"....................................####............GGG....",
			"..............~~~~~..................................GGG....",
			"..S...........~~~~~...........E.....................#######.",
			"########..#############..############..######..............",
			"............................................................",
			"............................................................",
		}),

		// Level 2: vertical climb with a moving platform and water crossing.
		ParseLevel("cascade", "Gem Cascade", []string{
			"............................................................",
			"...................................................*...GGG..",
			"..................................................######....",
			"............................................................",
			"..........................*.........MMMM...................",
			".......................#######.............................",
			".........*....................................L............",
			"......#######................................####...........",
			"............................~~~~~~..........................",
			"..S.........................~~~~~~.............E............",
			"#########...########..############....######################",
			"............................................................",
		}),

		// Level 3: hazard gauntlet with feather and speed gems.
		ParseLevel("summit", "Storm Summit", []string{
			"............................................................",
			".....................................................GGG....",
			"....................................................######..",
			"..............F..................MMM........................",
			"............#####...........................*...............",
			"...........................................####.............",
			"......+..............E...........E..........................",
			"....#####......################################..............",
			"............................................................",
			"..S..........*.....L........................................",
			"##########..#####..####...###########..#####################",
			"............................................................",
		}),
	}
}

// GetLevel returns a fresh copy of the level at the given index.
// Out-of-range indexes clamp to the valid range.
func GetLevel(index int) *Level {
	levels := BuiltinLevels()
	if len(levels) == 0 {
		return ParseLevel("empty", "Empty", nil)
	}
	if index < 0 {
		index = 0
	}
	if index >= len(levels) {
		index = len(levels) - 1
	}
	return levels[index].Clone()
}

// LevelCount returns the total number of built-in levels.
func LevelCount() int {
	return len(BuiltinLevels())
}

// LevelNames returns display names in level order, for the level selector.
func LevelNames() []string {
	levels := BuiltinLevels()
	names := make([]string, len(levels))
	for i, l := range levels {
		names[i] = l.Name
	}
	return names
}
