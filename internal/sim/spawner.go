package sim

// SpawnResult describes what one spawn event did.
type SpawnResult struct {
	Slot         int  // Index of the obstacle slot that was filled
	Appended     bool // Whether the store grew (false = an old slot was reused)
	BonusSpawned bool
}

// Spawn runs one spawn event: place an obstacle at the right edge, bump the
// spawn counter and the speed, then evaluate the bonus guard.
// It returns false without touching the state when the game is not active.
func (s *State) Spawn() (SpawnResult, bool) {
	if !s.Active() {
		return SpawnResult{}, false
	}

	var res SpawnResult
	o := s.freshObstacle()
	if s.params.Capacity <= 0 || len(s.Obstacles) < s.params.Capacity {
		s.Obstacles = append(s.Obstacles, o)
		res.Slot = len(s.Obstacles) - 1
		res.Appended = true
	} else {
		res.Slot = s.SpawnCount % s.params.Capacity
		s.Obstacles[res.Slot] = o
	}

	s.SpawnCount++
	s.Speed = s.difficulty.Next(s.Speed)
	res.BonusSpawned = s.spawnBonusIfDue()

	return res, true
}

// BonusDue reports whether the bonus guard currently holds: the spawn count
// is a positive multiple of the cadence and no bonus is active.
func (s *State) BonusDue() bool {
	every := s.params.BonusEvery
	return every > 0 &&
		s.SpawnCount > 0 &&
		s.SpawnCount%every == 0 &&
		s.Bonus == nil
}

// spawnBonusIfDue creates the bonus when the guard holds. It is evaluated
// whenever the spawn counter or the bonus presence changes.
func (s *State) spawnBonusIfDue() bool {
	if s.GameOver || !s.BonusDue() {
		return false
	}
	size := s.params.BonusSize
	s.Bonus = &Bonus{
		Top:  s.randomIn(s.Viewport.H - size),
		Left: s.randomIn(s.Viewport.W - size),
	}
	return true
}
