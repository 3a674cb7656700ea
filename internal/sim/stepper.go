package sim

// StepResult describes what one tick did.
type StepResult struct {
	Collected    bool // The avatar picked up the bonus this tick
	BonusSpawned bool // Picking it up made a new bonus due immediately
	Ended        bool // This tick ended the game
}

// Step advances the simulation by one tick:
//  1. move every obstacle left by the current speed, recycling those that
//     reach the left edge,
//  2. test the avatar against every obstacle (positions after the move),
//  3. test the avatar against the bonus,
//  4. add one to the score.
//
// Collision and scoring are not exclusive: the tick that ends the game still
// scores. Step returns false without touching the state when the game is not
// active.
func (s *State) Step() (StepResult, bool) {
	if !s.Active() {
		return StepResult{}, false
	}

	var res StepResult

	s.moveObstacles()

	if s.hitsObstacle() {
		res.Ended = true
		s.GameOver = true
	}

	if s.Bonus != nil {
		avatar := s.Avatar.Rect(s.params.AvatarSize)
		if avatar.Intersects(s.Bonus.Rect(s.params.BonusSize)) {
			s.Bonus = nil
			s.BonusCount++
			res.Collected = true
			res.BonusSpawned = s.spawnBonusIfDue()
		}
	}

	s.Score++

	return res, true
}

func (s *State) moveObstacles() {
	for i := range s.Obstacles {
		left := s.Obstacles[i].Left - s.Speed
		if left <= 0 {
			s.Obstacles[i] = s.freshObstacle()
			continue
		}
		s.Obstacles[i].Left = left
	}
}

func (s *State) hitsObstacle() bool {
	avatar := s.Avatar.Rect(s.params.AvatarSize)
	for _, o := range s.Obstacles {
		if avatar.Intersects(o.Rect(s.params.ObstacleSize)) {
			return true
		}
	}
	return false
}
