package format

type (
	CompressionType uint8
	MergeStrategy   uint8
)

const (
	CompressionNone CompressionType = 0x1 // CompressionNone represents no compression.
	CompressionZstd CompressionType = 0x2 // CompressionZstd represents Zstandard compression.
	CompressionS2   CompressionType = 0x3 // CompressionS2 represents S2 compression.
	CompressionLZ4  CompressionType = 0x4 // CompressionLZ4 represents LZ4 compression.

	// MergeBarrier runs one goroutine per partition; workers meet at a barrier and
	// scatter their own runs using an exclusive prefix sum of the local counts.
	MergeBarrier MergeStrategy = 0x1
	// MergeCoordinator schedules partitions onto a fixed-size worker pool; workers
	// hand their local results to a single coordinator that performs the scatter.
	MergeCoordinator MergeStrategy = 0x2
)

// CompressionTypes lists the built-in compression types in ascending order.
var CompressionTypes = []CompressionType{
	CompressionNone,
	CompressionZstd,
	CompressionS2,
	CompressionLZ4,
}

func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionZstd:
		return "Zstd"
	case CompressionS2:
		return "S2"
	case CompressionLZ4:
		return "LZ4"
	default:
		return "Unknown"
	}
}

func (s MergeStrategy) String() string {
	switch s {
	case MergeBarrier:
		return "barrier"
	case MergeCoordinator:
		return "coordinator"
	default:
		return "unknown"
	}
}

// ParseMergeStrategy returns the strategy whose String form is name.
// The second result is false if no strategy matches.
func ParseMergeStrategy(name string) (MergeStrategy, bool) {
	switch name {
	case "barrier":
		return MergeBarrier, true
	case "coordinator":
		return MergeCoordinator, true
	default:
		return 0, false
	}
}
