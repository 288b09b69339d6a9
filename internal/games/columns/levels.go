// Package columns implements the Columns falling-pair puzzle with campaign
// and endless modes. Pairs of colored blocks fall into a well; breaker
// blocks clear every connected block of their color they touch.
package columns

// Level defines a campaign level.
type Level struct {
	ID          int
	Name        string
	Target      int // Blocks to clear to finish the level
	DropEvery   int // Ticks between gravity steps
	BreakerOdds int // One block in N is a breaker
}

// Levels defines the 10 campaign levels with increasing difficulty.
// Gravity speeds up and breakers get rarer as the campaign goes on.
var Levels = []Level{
	{ID: 1, Name: "First Drops", Target: 20, DropEvery: 48, BreakerOdds: 3},
	{ID: 2, Name: "Stacking", Target: 30, DropEvery: 42, BreakerOdds: 3},
	{ID: 3, Name: "Colour Sense", Target: 40, DropEvery: 36, BreakerOdds: 4},
	{ID: 4, Name: "Chain Links", Target: 50, DropEvery: 32, BreakerOdds: 4},
	{ID: 5, Name: "Pressure", Target: 60, DropEvery: 28, BreakerOdds: 4},
	{ID: 6, Name: "Quick Hands", Target: 70, DropEvery: 24, BreakerOdds: 5},
	{ID: 7, Name: "Cascade", Target: 80, DropEvery: 20, BreakerOdds: 5},
	{ID: 8, Name: "Rare Breaks", Target: 90, DropEvery: 17, BreakerOdds: 6},
	{ID: 9, Name: "Freefall", Target: 100, DropEvery: 14, BreakerOdds: 6},
	{ID: 10, Name: "Column Master", Target: 120, DropEvery: 12, BreakerOdds: 7},
}

// LevelCount returns the number of campaign levels.
func LevelCount() int {
	return len(Levels)
}

// GetLevel returns the level at the given index (0-based).
// Returns nil if index is out of range.
func GetLevel(index int) *Level {
	if index < 0 || index >= len(Levels) {
		return nil
	}
	return &Levels[index]
}

// LevelNames returns the names of all levels.
func LevelNames() []string {
	names := make([]string, len(Levels))
	for i, lvl := range Levels {
		names[i] = lvl.Name
	}
	return names
}
