package core

// Size describes the dimensions of a simulation grid.
type Size struct {
	W int
	H int
}

// Sim is the contract the viewer drives. Cells is a row-major W*H raster of
// whatever part of the simulation is currently on screen.
type Sim interface {
	Name() string
	Size() Size
	Reset(seed int64) error
	Step() error
	Cells() []uint8
}

// Stats summarises the state shown on the HUD.
type Stats struct {
	Generation int
	Population int
	Workers    int
	OriginX    int64
	OriginY    int64
}

// StatsProvider is implemented by sims that expose HUD statistics.
type StatsProvider interface {
	Stats() Stats
}
