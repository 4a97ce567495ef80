package chain

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// NewRunDir creates and returns a fresh run directory named
// out-YYYY-MM-DD-HH-MM-SS under base, rooted at the given time.
func NewRunDir(base string, at time.Time) (string, error) {
	dir := filepath.Join(base, at.Format("out-2006-01-02-15-04-05"))
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("chain: create run directory: %w", err)
	}
	return dir, nil
}

// WriteSnapshot persists seq as the run directory's zero-padded macro-step
// file, overwriting any existing file of the same name.
func WriteSnapshot(runDir string, macroStep int, seq *Sequence) error {
	name := filepath.Join(runDir, fmt.Sprintf("%06d.txt", macroStep))
	if err := os.WriteFile(name, []byte(seq.render()), 0o644); err != nil {
		return fmt.Errorf("chain: write snapshot %s: %w", name, err)
	}
	return nil
}
