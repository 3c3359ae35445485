package bvh2

// Constants lifted verbatim from the original accelerator's enum
// (RadeonRays/src/accelerator/bvh2.h): kInvalidId, kMaxLeafPrimitives, and
// kMinSAHPrimitives. They are part of the public contract — callers may
// reason about the SAH-vs-median threshold — so they are exported here
// rather than kept as unexported package constants.
const (
	// InvalidID is the sentinel stored in addr_left, addr_right,
	// shape_id, and prim_id for the slots each node type doesn't use.
	InvalidID uint32 = 0xFFFFFFFF

	// MaxLeafPrimitives is the maximum number of triangles a leaf may
	// carry. This builder supports exactly one triangle per leaf and
	// nothing else; leaf_count always equals the input triangle count.
	MaxLeafPrimitives = 1

	// MinSAHPrimitives is the reference-count threshold below which the
	// split evaluator always uses the equal-count median strategy,
	// regardless of Config.UseSAH.
	MinSAHPrimitives = 32

	// DefaultNumBins is the bin count used when a Config leaves NumBins
	// unset (zero).
	DefaultNumBins = 64

	minNumBins = 2
)

// Config controls the builder's split strategy.
type Config struct {
	// TraversalCost is the fixed cost (T_traverse in spec §4.2) charged
	// for descending into an internal node during the binned SAH cost
	// estimate.
	TraversalCost float32
	// NumBins is the number of SAH bins per axis. Zero selects
	// DefaultNumBins; other values below 2 are clamped to 2 so every axis
	// always has at least one candidate split plane.
	NumBins int
	// UseSAH enables binned SAH splitting for slices with at least
	// MinSAHPrimitives references; smaller slices always use median
	// splitting regardless of this flag.
	UseSAH bool
}

// DefaultConfig returns the builder's default configuration: SAH disabled,
// 64 bins, zero traversal cost (a median-split build, matching the
// accelerator's own zero-value Config behavior).
func DefaultConfig() Config {
	return Config{TraversalCost: 0, NumBins: DefaultNumBins, UseSAH: false}
}

func (c Config) normalized() Config {
	if c.NumBins < minNumBins {
		if c.NumBins == 0 {
			c.NumBins = DefaultNumBins
		} else {
			c.NumBins = minNumBins
		}
	}
	return c
}
