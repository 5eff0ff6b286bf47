package sim

// Rand is the random source used for obstacle respawns.
// *math/rand.Rand satisfies it.
type Rand interface {
	Float64() float64
}

// uniform draws from r using rng. The result lies in [r.Min, r.Max).
func uniform(rng Rand, r Range) float64 {
	v := r.Min + rng.Float64()*(r.Max-r.Min)
	if v >= r.Max && r.Max > r.Min {
		// Float rounding can land exactly on Max for huge ranges.
		v = r.Min
	}
	return v
}

// scrollRoads moves every segment left by distance and wraps the ones that
// leave the band. It returns the number of wrapped segments.
func scrollRoads(roads []RoadSegment, distance, wrapBelow, span float64) int {
	if distance <= 0 {
		return 0
	}
	wrapped := 0
	for i := range roads {
		roads[i].Pos.X -= distance
		if roads[i].Pos.X < wrapBelow {
			roads[i].Pos.X += span
			wrapped++
		}
	}
	return wrapped
}

// scrollObstacles moves every obstacle left by distance. Obstacles that pass
// respawnBelow get a fresh position from the spawn corridor; x and y are drawn
// independently. It returns the labels of respawned obstacles.
func scrollObstacles(obstacles []Obstacle, distance, respawnBelow float64, spawnX, spawnY Range, rng Rand) []Label {
	if distance <= 0 {
		return nil
	}
	var respawned []Label
	for i := range obstacles {
		obstacles[i].Pos.X -= distance
		if obstacles[i].Pos.X < respawnBelow {
			obstacles[i].Pos.X = uniform(rng, spawnX)
			obstacles[i].Pos.Y = uniform(rng, spawnY)
			respawned = append(respawned, obstacles[i].Label)
		}
	}
	return respawned
}
