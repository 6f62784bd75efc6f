package life

import (
	"flag"
	"strconv"

	"sparse-life/pkg/core"
)

// Config controls a simulation run.
type Config struct {
	Generations int
	Workers     int
	Bounds      core.Bounds
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Generations: 10,
		Workers:     4,
		Bounds:      core.DefaultBounds(),
	}
}

// FromMap populates the config from a string map (flag-style key/value pairs).
// Unparseable or out-of-range values keep their defaults.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["generations"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.Generations = parsed
		}
	}
	if v, ok := cfg["workers"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Workers = parsed
		}
	}
	bounds := c.Bounds
	if v, ok := cfg["min"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			bounds.Min = parsed
		}
	}
	if v, ok := cfg["max"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			bounds.Max = parsed
		}
	}
	if bounds.Valid() {
		c.Bounds = bounds
	}
	return c
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Generations, "generations", c.Generations, "number of generations to simulate")
	fs.IntVar(&c.Workers, "workers", c.Workers, "worker goroutines per generation")
	fs.Int64Var(&c.Bounds.Min, "min", c.Bounds.Min, "lowest coordinate on either axis")
	fs.Int64Var(&c.Bounds.Max, "max", c.Bounds.Max, "highest coordinate on either axis")
}
