package ui

import (
	"fmt"

	"sparse-life/internal/core"
)

// StatusLines formats the HUD text for the given statistics.
func StatusLines(name string, s core.Stats, paused bool) []string {
	state := "running"
	if paused {
		state = "paused"
	}
	return []string{
		fmt.Sprintf("%s (%s)", name, state),
		fmt.Sprintf("gen %d  pop %d", s.Generation, s.Population),
		fmt.Sprintf("workers %d", s.Workers),
		fmt.Sprintf("origin %d,%d", s.OriginX, s.OriginY),
	}
}
