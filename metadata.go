package stegoqr

import "time"

// MetadataVersion tags the metadata layout.
const MetadataVersion = "1.0"

// Metadata describes one encode or decode operation. It is emit-only
// and never persisted into the code itself.
type Metadata struct {
	Version         string
	Timestamp       time.Time
	FlippedCount    int
	ECLevelUsed     Level
	CapacityUsedPct float64
	// SkippedFlips counts flips refused by the pre-flip function
	// pattern re-check. Nonzero values indicate an analyzer bug.
	SkippedFlips int
}
