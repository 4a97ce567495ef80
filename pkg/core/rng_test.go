package core

import "testing"

func TestShuffleIsDeterministicForASeed(t *testing.T) {
	run := func() []int {
		data := []int{0, 1, 2, 3, 4, 5, 6, 7}
		rng := NewRNG(42)
		rng.Shuffle(len(data), func(i, j int) { data[i], data[j] = data[j], data[i] })
		return data
	}
	a, b := run(), run()
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("shuffle with the same seed diverged at index %d: %d vs %d", i, a[i], b[i])
		}
	}
}

func TestShufflePreservesElements(t *testing.T) {
	data := []int{0, 1, 2, 3, 4, 5, 6, 7}
	rng := NewRNG(7)
	rng.Shuffle(len(data), func(i, j int) { data[i], data[j] = data[j], data[i] })

	seen := make(map[int]bool, len(data))
	for _, v := range data {
		seen[v] = true
	}
	for i := 0; i < 8; i++ {
		if !seen[i] {
			t.Fatalf("shuffle lost element %d", i)
		}
	}
}
