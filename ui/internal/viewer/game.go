package viewer

import (
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

var (
	aliveColor = color.RGBA{R: 0xf0, G: 0xf0, B: 0xf0, A: 0xff}
	deadColor  = color.RGBA{R: 0x10, G: 0x10, B: 0x18, A: 0xff}
)

// Game is a read-only ebiten.Game that plays back the chain persisted in a
// run directory, reloading it from disk whenever a newer snapshot appears.
type Game struct {
	runDir    string
	scale     int
	step      *fixedStep
	pollEvery time.Duration
	lastPoll  time.Time
	frames    []Frame
	cursor    int
	img       *ebiten.Image
	buf       []byte
}

// NewGame constructs a Game that plays back runDir's snapshots at the
// given pixel scale and playback rate.
func NewGame(runDir string, scale, fps int) *Game {
	return &Game{
		runDir:    runDir,
		scale:     scale,
		step:      newFixedStep(fps),
		pollEvery: time.Second,
	}
}

// Update advances playback and periodically reloads the run directory's
// newest snapshot.
func (g *Game) Update() error {
	now := time.Now()
	if g.lastPoll.IsZero() || now.Sub(g.lastPoll) >= g.pollEvery {
		g.lastPoll = now
		if frames, err := loadChain(g.runDir); err == nil && len(frames) > 0 {
			g.frames = frames
			if g.cursor >= len(g.frames) {
				g.cursor = 0
			}
		}
	}

	if g.step.shouldAdvance() && len(g.frames) > 0 {
		g.cursor = (g.cursor + 1) % len(g.frames)
	}
	return nil
}

// Draw renders the current frame, allocating the backing image lazily
// once the first frame's dimensions are known.
func (g *Game) Draw(screen *ebiten.Image) {
	if len(g.frames) == 0 {
		return
	}
	f := g.frames[g.cursor]
	if g.img == nil || g.buf == nil {
		g.img = ebiten.NewImage(f.W, f.H)
		g.buf = make([]byte, 4*f.W*f.H)
	}

	fillBinaryRGBA(g.buf, f.Cells, aliveColor, deadColor)
	g.img.ReplacePixels(g.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(g.scale), float64(g.scale))
	screen.DrawImage(g.img, op)
}

// Layout reports the window size for the current frame at the configured
// scale.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if len(g.frames) == 0 {
		return outsideWidth, outsideHeight
	}
	f := g.frames[g.cursor]
	return f.W * g.scale, f.H * g.scale
}
