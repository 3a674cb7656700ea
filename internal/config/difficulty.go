package config

// DifficultyManager computes the global obstacle speed.
// Speed grows by a fixed increment on every spawn event and is only capped
// when MaxSpeed is positive.
type DifficultyManager struct {
	cfg DifficultyConfig
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{cfg: cfg}
}

// InitialSpeed returns the speed at the start of a game.
func (d *DifficultyManager) InitialSpeed() float64 {
	return d.cap(d.cfg.InitialSpeed)
}

// Next returns the speed after one more spawn event.
func (d *DifficultyManager) Next(speed float64) float64 {
	return d.cap(speed + d.cfg.SpeedIncrement)
}

// SpeedAfter returns the speed after n spawn events.
func (d *DifficultyManager) SpeedAfter(n int) float64 {
	return d.cap(d.cfg.InitialSpeed + float64(n)*d.cfg.SpeedIncrement)
}

// IsEscalating reports whether speed changes at all.
func (d *DifficultyManager) IsEscalating() bool {
	return d.cfg.SpeedIncrement > 0
}

func (d *DifficultyManager) cap(speed float64) float64 {
	if d.cfg.MaxSpeed > 0 && speed > d.cfg.MaxSpeed {
		return d.cfg.MaxSpeed
	}
	return speed
}
