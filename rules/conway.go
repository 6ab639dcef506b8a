package rules

/*
ApplyConwayRules applies Conway's Game of Life rules to determine the next state of a cell.

Conway's Game of Life rules: (alive && neighbors == 2) || neighbors == 3

Fewer than 2 or more than 3 neighbours always yields a dead cell, a live cell
with 2 or 3 survives, and a dead cell with exactly 3 is born.
*/
func ApplyConwayRules(neighbors int, alive bool) bool {
	return (alive && neighbors == 2) || neighbors == 3
}
