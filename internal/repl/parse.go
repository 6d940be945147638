package repl

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/boardstrap/boardstrap/internal/board"
)

// ErrParse wraps malformed discovery or space-query output. Callers
// treat it like any other discovery failure: fall back to a reflash.
var ErrParse = errors.New("malformed tool output")

// parseListing turns the transfer tool's ls output into filenames: one
// per line, carriage returns and path separators stripped, blanks
// dropped.
func parseListing(output string) []string {
	var names []string
	for _, line := range strings.Split(output, "\n") {
		name := strings.TrimSpace(strings.ReplaceAll(line, "\r", ""))
		name = strings.ReplaceAll(name, "/", "")
		if name == "" {
			continue
		}
		names = append(names, name)
	}
	return names
}

// spaceRecord is the structured record printed by the restspace command.
// The tool emits it with Python-style single quotes.
type spaceRecord struct {
	BlockSize  uint64 `json:"bsize"`
	FreeBlocks uint64 `json:"bfree"`
}

// parseSpace extracts block size and free-block count from restspace
// output. The record is the last non-empty line; quotes are normalized
// before decoding. A zero block size is rejected: it would make every
// later space computation meaningless, so it is treated as an unresolved
// reply rather than a zero-capacity board.
func parseSpace(output string) (board.SpaceState, error) {
	record := lastLine(output)
	if record == "" {
		return board.SpaceState{}, fmt.Errorf("%w: empty space reply", ErrParse)
	}

	normalized := strings.ReplaceAll(record, "'", `"`)
	var rec spaceRecord
	if err := json.Unmarshal([]byte(normalized), &rec); err != nil {
		return board.SpaceState{}, fmt.Errorf("%w: %q: %v", ErrParse, record, err)
	}
	if rec.BlockSize == 0 {
		return board.SpaceState{}, fmt.Errorf("%w: space reply has zero block size", ErrParse)
	}

	return board.SpaceState{BlockSize: rec.BlockSize, FreeBlocks: rec.FreeBlocks}, nil
}

func lastLine(output string) string {
	lines := strings.Split(output, "\n")
	for i := len(lines) - 1; i >= 0; i-- {
		if line := strings.TrimSpace(strings.ReplaceAll(lines[i], "\r", "")); line != "" {
			return line
		}
	}
	return ""
}
