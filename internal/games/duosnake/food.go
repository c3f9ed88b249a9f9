package duosnake

// Occupancy is anything that can say whether a cell is taken.
type Occupancy interface {
	Contains(c Coordinate) bool
}

// PlaceFood samples uniform cells until one is free.
// Terminates as long as excluded leaves at least one cell free, which the
// rules guarantee by capping growth below the cell count.
func PlaceFood(rng Rand, excluded Occupancy) Coordinate {
	for {
		c := RandomCoordinate(rng)
		if !excluded.Contains(c) {
			return c
		}
	}
}
