package viewer

import "testing"

const blockRender = `    0 1
   ┌──┐
 0 │██  │
 1 │██  │
   └──┘`

func TestParseFrameDecodesAliveAndDead(t *testing.T) {
	f, err := ParseFrame(blockRender)
	if err != nil {
		t.Fatalf("ParseFrame: %v", err)
	}
	if f.W != 2 || f.H != 2 {
		t.Fatalf("got %dx%d, want 2x2", f.W, f.H)
	}
	want := []uint8{1, 0, 1, 0}
	for i, c := range want {
		if f.Cells[i] != c {
			t.Fatalf("cell %d = %d, want %d", i, f.Cells[i], c)
		}
	}
}

func TestParseChainSplitsOnBlankLines(t *testing.T) {
	chain := blockRender + "\n\n\n" + blockRender
	frames, err := ParseChain(chain)
	if err != nil {
		t.Fatalf("ParseChain: %v", err)
	}
	if len(frames) != 2 {
		t.Fatalf("got %d frames, want 2", len(frames))
	}
}
