// Package manifest builds the ordered set of files designated for upload
// in one provisioning run: the program entry file followed by any library
// files found in the configured library directories.
package manifest

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// ProgramName is the fixed on-device name of the program entry file. The
// MicroPython runtime executes it on boot regardless of the local name of
// the source file.
const ProgramName = "main.py"

// File is a single entry in the upload manifest.
type File struct {
	// Path is the absolute local path of the file.
	Path string

	// Name is the filename the board will see.
	Name string

	// Size is the file size in bytes at manifest build time.
	Size int64

	// Program marks the program entry file, which is always written
	// even when a same-named file already exists on the board.
	Program bool
}

// Manifest is the ordered sequence of files to write. The program entry
// file is always first.
type Manifest struct {
	Files []File
}

// Build stats the program file and scans each library directory one level
// deep (non-recursive) for regular files. Library files are ordered by
// directory, then by filename.
func Build(programPath string, libDirs []string) (*Manifest, error) {
	abs, err := filepath.Abs(programPath)
	if err != nil {
		return nil, fmt.Errorf("resolve program path: %w", err)
	}
	info, err := os.Stat(abs)
	if err != nil {
		return nil, fmt.Errorf("stat program file: %w", err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("program path %s is a directory", abs)
	}

	m := &Manifest{
		Files: []File{{
			Path:    abs,
			Name:    ProgramName,
			Size:    info.Size(),
			Program: true,
		}},
	}

	for _, dir := range libDirs {
		libs, err := scanLibDir(dir)
		if err != nil {
			return nil, err
		}
		m.Files = append(m.Files, libs...)
	}

	return m, nil
}

// scanLibDir lists one library directory, skipping subdirectories and
// hidden files.
func scanLibDir(dir string) ([]File, error) {
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("resolve library dir: %w", err)
	}
	entries, err := os.ReadDir(absDir)
	if err != nil {
		return nil, fmt.Errorf("read library dir: %w", err)
	}

	var files []File
	for _, entry := range entries {
		if entry.IsDir() || strings.HasPrefix(entry.Name(), ".") {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			return nil, fmt.Errorf("stat library file %s: %w", entry.Name(), err)
		}
		files = append(files, File{
			Path: filepath.Join(absDir, entry.Name()),
			Name: entry.Name(),
			Size: info.Size(),
		})
	}

	sort.Slice(files, func(i, j int) bool { return files[i].Name < files[j].Name })
	return files, nil
}
