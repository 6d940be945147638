package board

import (
	"github.com/boardstrap/boardstrap/internal/manifest"
)

// ShouldReflash decides whether the board must be reflashed before the
// manifest can be written. It sums the space required by every file that
// will actually be transferred (the program entry file always, library
// files only when absent from the last listing) and compares the result
// against the family's headroom threshold.
//
// space must be a resolved SpaceState; callers reach this decision only
// after a successful space query.
func ShouldReflash(files []manifest.File, existing *ExistingFiles, space SpaceState, family Family) bool {
	var required uint64
	for _, f := range files {
		if !f.Program && existing.Present(f.Name) {
			continue
		}
		required += RequiredUnits(f.Size, family, space.BlockSize)
	}

	if family.BlockBased() {
		// Signed arithmetic: required may exceed the free count.
		return int64(space.FreeBlocks)-int64(required) < minFreeBlocksESP
	}
	return int64(space.FreeBytes())-int64(required) < minFreeBytesK210
}
