package tetris

// Progression tracks score, level and speed. Score and speed never
// decrease and there is no cap on level or speed.
type Progression struct {
	score          int
	level          int
	speed          int
	cleared        int
	total          int
	pointsPerRow   int
	rowsPerLevel   int
	speedIncrement int
}

// NewProgression starts at level 1 with the given speed.
func NewProgression(initialSpeed, speedIncrement, rowsPerLevel, pointsPerRow int) *Progression {
	return &Progression{
		level:          1,
		speed:          initialSpeed,
		pointsPerRow:   pointsPerRow,
		rowsPerLevel:   rowsPerLevel,
		speedIncrement: speedIncrement,
	}
}

// RowsCleared scores n cleared rows one at a time and returns how many
// level-ups happened.
func (p *Progression) RowsCleared(n int) int {
	ups := 0
	for range n {
		p.score += p.pointsPerRow
		p.cleared++
		p.total++
		if p.cleared >= p.rowsPerLevel {
			p.level++
			p.speed += p.speedIncrement
			p.cleared = 0
			ups++
		}
	}
	return ups
}

func (p *Progression) Score() int { return p.score }

func (p *Progression) Level() int { return p.level }

// Speed is the tick rate in ticks per second.
func (p *Progression) Speed() int { return p.speed }

// ClearedRows counts rows cleared since the last level-up.
func (p *Progression) ClearedRows() int { return p.cleared }

// TotalRows counts every row cleared this session.
func (p *Progression) TotalRows() int { return p.total }
