package main

import (
	"errors"
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"undeath/ui/internal/viewer"
)

// config represents the command-line parameters for the viewer.
type config struct {
	RunDir string
	Scale  int
	FPS    int
}

// newConfig returns a config populated with sensible defaults.
func newConfig() *config {
	return &config{Scale: 12, FPS: 8}
}

// bind attaches the configuration to the provided FlagSet.
func (c *config) bind(fs *flag.FlagSet) {
	fs.StringVar(&c.RunDir, "run-dir", c.RunDir, "run directory containing NNNNNN.txt snapshots")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.FPS, "fps", c.FPS, "chain playback rate in frames per second")
}

func main() {
	cfg := newConfig()
	cfg.bind(flag.CommandLine)
	flag.Parse()

	if cfg.RunDir == "" {
		log.Fatal("missing required -run-dir flag")
	}

	game := viewer.NewGame(cfg.RunDir, cfg.Scale, cfg.FPS)

	ebiten.SetWindowTitle("undeath — chain viewer")
	ebiten.SetWindowResizable(true)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
