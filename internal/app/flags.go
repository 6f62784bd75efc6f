package app

import (
	"flag"
	"strings"

	"sparse-life/pkg/sims/life"
)

// Config represents the command-line parameters for the viewer.
type Config struct {
	Pattern string
	File    string
	Width   int
	Height  int
	Scale   int
	TPS     int
	Rate    int
	Seed    int64
	Life    life.Config
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Pattern: "r-pentomino",
		Width:   200,
		Height:  150,
		Scale:   4,
		TPS:     60,
		Rate:    10,
		Seed:    42,
		Life:    life.DefaultConfig(),
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	names := append(life.PatternNames(), SoupPattern)
	fs.StringVar(&c.Pattern, "pattern", c.Pattern, "seed pattern: "+strings.Join(names, ", "))
	fs.StringVar(&c.File, "file", c.File, "Life 1.06 file to load instead of a pattern")
	fs.IntVar(&c.Width, "w", c.Width, "viewport width in cells")
	fs.IntVar(&c.Height, "h", c.Height, "viewport height in cells")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "frames per second")
	fs.IntVar(&c.Rate, "rate", c.Rate, "generations per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for the soup pattern")
	fs.IntVar(&c.Life.Workers, "workers", c.Life.Workers, "worker goroutines per generation")
	fs.Int64Var(&c.Life.Bounds.Min, "min", c.Life.Bounds.Min, "lowest coordinate on either axis")
	fs.Int64Var(&c.Life.Bounds.Max, "max", c.Life.Bounds.Max, "highest coordinate on either axis")
}
