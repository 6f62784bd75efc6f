package life

import (
	"flag"
	"math"
	"testing"
)

func TestFromMapDefaults(t *testing.T) {
	c := FromMap(nil)
	if c != DefaultConfig() {
		t.Fatalf("FromMap(nil) = %+v, want defaults", c)
	}
	if c.Generations != 10 || c.Workers != 4 {
		t.Fatalf("unexpected defaults %+v", c)
	}
	if c.Bounds.Min != math.MinInt64 || c.Bounds.Max != math.MaxInt64 {
		t.Fatalf("default bounds should span int64, got %+v", c.Bounds)
	}
}

func TestFromMapParsesValues(t *testing.T) {
	c := FromMap(map[string]string{
		"generations": "3",
		"workers":     "8",
		"min":         "-100",
		"max":         "100",
	})
	if c.Generations != 3 || c.Workers != 8 || c.Bounds.Min != -100 || c.Bounds.Max != 100 {
		t.Fatalf("unexpected config %+v", c)
	}
}

func TestFromMapRejectsBadValues(t *testing.T) {
	c := FromMap(map[string]string{
		"generations": "-1",
		"workers":     "0",
		"min":         "10",
		"max":         "-10",
	})
	if c != DefaultConfig() {
		t.Fatalf("invalid values should keep defaults, got %+v", c)
	}
	c = FromMap(map[string]string{"workers": "many", "max": "9223372036854775808"})
	if c != DefaultConfig() {
		t.Fatalf("unparseable values should keep defaults, got %+v", c)
	}
}

func TestBindFlags(t *testing.T) {
	c := DefaultConfig()
	fs := flag.NewFlagSet("life", flag.ContinueOnError)
	c.Bind(fs)
	if err := fs.Parse([]string{"-generations", "50", "-workers", "2", "-min", "-5", "-max", "5"}); err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if c.Generations != 50 || c.Workers != 2 || c.Bounds.Min != -5 || c.Bounds.Max != 5 {
		t.Fatalf("flags not bound: %+v", c)
	}
}
