package viewer

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
)

// newestSnapshot returns the lexicographically-last NNNNNN.txt file in
// runDir, which is also the most recently written one since macro-step
// numbers are zero-padded and monotonically increasing.
func newestSnapshot(runDir string) (string, error) {
	entries, err := os.ReadDir(runDir)
	if err != nil {
		return "", fmt.Errorf("viewer: read run directory: %w", err)
	}

	var names []string
	for _, e := range entries {
		if !e.IsDir() && filepath.Ext(e.Name()) == ".txt" {
			names = append(names, e.Name())
		}
	}
	if len(names) == 0 {
		return "", fmt.Errorf("viewer: no snapshots found in %s", runDir)
	}
	sort.Strings(names)
	return filepath.Join(runDir, names[len(names)-1]), nil
}

// loadChain reads and parses the newest snapshot in runDir.
func loadChain(runDir string) ([]Frame, error) {
	path, err := newestSnapshot(runDir)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("viewer: read snapshot %s: %w", path, err)
	}
	return ParseChain(string(data))
}
