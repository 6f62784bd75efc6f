package ui

import (
	"slices"
	"testing"

	"sparse-life/internal/core"
)

func TestStatusLines(t *testing.T) {
	got := StatusLines("life", core.Stats{Generation: 12, Population: 7, Workers: 4, OriginX: -100, OriginY: 3}, true)
	want := []string{
		"life (paused)",
		"gen 12  pop 7",
		"workers 4",
		"origin -100,3",
	}
	if !slices.Equal(got, want) {
		t.Fatalf("StatusLines = %q, want %q", got, want)
	}
	if running := StatusLines("life", core.Stats{}, false); running[0] != "life (running)" {
		t.Fatalf("unexpected header %q", running[0])
	}
}
