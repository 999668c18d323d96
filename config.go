package spmv

// Config holds the tunable, performance-only knobs for Compute. None of
// these affect correctness: they only change how work is sliced across
// workers and tiles.
type Config struct {
	// WorkersPerGroup is the tile-reduction scan width: the number of
	// lanes a cooperative group would use per tile. Combined with
	// ItemsPerLane it sets the tile-reduction batch size.
	WorkersPerGroup int

	// ItemsPerLane is the number of path steps each lane consumes per
	// tile. TileItems = WorkersPerGroup * ItemsPerLane.
	ItemsPerLane int

	// OverSubscriptionFactor multiplies the detected device parallelism
	// to pick the number of independent workers (W) the merge path is
	// split across. A factor > 1 helps when row lengths are uneven.
	OverSubscriptionFactor int

	// FixupWorkersPerGroup and FixupItemsPerLane size the batching for
	// the boundary-fixup pass, analogous to WorkersPerGroup and
	// ItemsPerLane but for the much smaller 2*W-length partials stream.
	FixupWorkersPerGroup int
	FixupItemsPerLane    int

	// Iterations is the number of times to repeat Compute for benchmark
	// timing; it has no effect on the result. Compute itself ignores
	// this field (it always runs once); it exists for the benchmark
	// harness in cmd/spmv-bench.
	Iterations int

	// MaxWorkers caps the number of independent workers (W) regardless
	// of detected parallelism and OverSubscriptionFactor. Zero means
	// unbounded (aside from the natural cap of the path length). Mainly
	// useful for tests that want deterministic, small worker counts.
	MaxWorkers int
}

// DefaultConfig returns the documented defaults.
func DefaultConfig() Config {
	return Config{
		WorkersPerGroup:        64,
		ItemsPerLane:           10,
		OverSubscriptionFactor: 4,
		FixupWorkersPerGroup:   256,
		FixupItemsPerLane:      4,
		Iterations:             1,
	}
}

// tileItems returns the C2 tile-reduction batch size.
func (c Config) tileItems() int {
	items := c.WorkersPerGroup * c.ItemsPerLane
	if items <= 0 {
		d := DefaultConfig()
		return d.WorkersPerGroup * d.ItemsPerLane
	}
	return items
}

// fixupTileItems returns the C4 streaming batch size.
func (c Config) fixupTileItems() int {
	items := c.FixupWorkersPerGroup * c.FixupItemsPerLane
	if items <= 0 {
		d := DefaultConfig()
		return d.FixupWorkersPerGroup * d.FixupItemsPerLane
	}
	return items
}

// overSubscription returns a valid (>=1) over-subscription factor.
func (c Config) overSubscription() int {
	if c.OverSubscriptionFactor <= 0 {
		return DefaultConfig().OverSubscriptionFactor
	}
	return c.OverSubscriptionFactor
}
