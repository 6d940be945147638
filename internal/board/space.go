package board

// SpaceState holds the board's storage geometry as last reported by a
// successful space query. The zero value means "unknown": no query has
// succeeded yet, or a reflash has invalidated the previous answer.
type SpaceState struct {
	// BlockSize is the allocation unit in bytes. Always > 0 for a
	// resolved state; a reported zero block size is rejected at parse
	// time rather than stored.
	BlockSize uint64

	// FreeBlocks is the number of free allocation units.
	FreeBlocks uint64
}

// Known reports whether the state came from a successful space query.
func (s SpaceState) Known() bool {
	return s.BlockSize > 0
}

// FreeBytes returns the free capacity in bytes.
func (s SpaceState) FreeBytes() uint64 {
	return s.FreeBlocks * s.BlockSize
}

// Headroom thresholds below which a write is considered unsafe. They
// guard against off-by-one accounting and filesystem metadata overhead.
const (
	// minFreeBytesK210 is the byte headroom required on k210 boards.
	minFreeBytesK210 = 100

	// minFreeBlocksESP is the block headroom required on esp boards.
	minFreeBlocksESP = 2
)

// RequiredUnits returns the space a file of the given size occupies on
// the board, in the family's accounting unit: bytes for k210, whole
// blocks for esp families. blockSize must be > 0 for block-based
// families; callers obtain it from a resolved SpaceState.
func RequiredUnits(size int64, family Family, blockSize uint64) uint64 {
	if size <= 0 {
		return 0
	}
	if !family.BlockBased() {
		return uint64(size)
	}
	return (uint64(size) + blockSize - 1) / blockSize
}
